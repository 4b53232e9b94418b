package x

// Validater is any struct that can be validated.
// Not the same as a Validator, which votes on the blocks.
type Validater interface {
	Validate() error
}

// MustValidate panics if obj is not valid. Use it for values built by the
// program itself, never for user input.
func MustValidate(obj Validater) {
	if err := obj.Validate(); err != nil {
		panic(err)
	}
}
