package errors

import (
	"fmt"
)

// Field attributes err to the named field of a model or message. Nested
// fields use dot notation, such as Metadata.Schema, and list elements their
// index, such as Signatures.0. Field returns nil when err is nil.
func Field(name string, err error, description string, args ...interface{}) error {
	if isNilErr(err) {
		return nil
	}
	if len(args) > 0 {
		description = fmt.Sprintf(description, args...)
	}
	return &fieldError{name: name, desc: description, cause: withStack(err)}
}

type fieldError struct {
	name  string
	desc  string
	cause error
}

func (e *fieldError) Error() string {
	if e.desc == "" {
		return fmt.Sprintf("field %q: %s", e.name, e.cause)
	}
	return fmt.Sprintf("field %q: %s: %s", e.name, e.desc, e.cause)
}

func (e *fieldError) Cause() error {
	return e.cause
}

// Field returns the name of the field.
func (e *fieldError) Field() string {
	return e.name
}

type fielder interface {
	Field() string
}

// FieldErrors returns the errors attributed to given field name, found
// anywhere in err including all members of error groups.
func FieldErrors(err error, name string) []error {
	var found []error
	for !isNilErr(err) {
		if f, ok := err.(fielder); ok && f.Field() == name {
			return append(found, err)
		}
		if group, ok := err.(unpacker); ok {
			for _, member := range group.Unpack() {
				found = append(found, FieldErrors(member, name)...)
			}
			return found
		}
		c, ok := err.(causer)
		if !ok {
			break
		}
		err = c.Cause()
	}
	return found
}
