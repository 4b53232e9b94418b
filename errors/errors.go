package errors

import (
	"fmt"
	"reflect"

	"github.com/pkg/errors"
)

// Kinds shared by all extensions. Extensions register theirs from 1000
// upwards.
var (
	// ErrUnauthorized is returned when a required signature is missing.
	ErrUnauthorized = Register(2, "unauthorized")

	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = Register(3, "not found")

	// ErrMsg is returned when a transaction message is missing or cannot
	// be handled.
	ErrMsg = Register(4, "invalid message")

	// ErrModel is returned when a stored entity cannot be loaded.
	ErrModel = Register(5, "invalid model")

	// ErrHuman is returned when the code is used in a way it was never
	// meant to be.
	ErrHuman = Register(7, "coding error")

	// ErrEmpty is returned when a required value is empty.
	ErrEmpty = Register(9, "value is empty")

	// ErrState is returned when the stored state contradicts itself.
	ErrState = Register(10, "invalid state")

	// ErrType is returned when a value is not of the expected type.
	ErrType = Register(11, "invalid type")

	// ErrInvalidAmount is returned for a zero or otherwise unusable
	// amount.
	ErrInvalidAmount = Register(13, "invalid amount")

	// ErrInput is returned for malformed input.
	ErrInput = Register(14, "invalid input")

	// ErrOverflow is returned when a sum does not fit its type.
	ErrOverflow = Register(16, "an operation cannot be completed due to value overflow")

	// ErrUnderflow is returned when a difference would drop below zero.
	ErrUnderflow = Register(17, "an operation cannot be completed due to value underflow")

	// ErrDatabase is returned when the storage fails.
	ErrDatabase = Register(18, "database")

	// ErrMetadata is returned when metadata is missing or invalid.
	ErrMetadata = Register(19, "invalid metadata")

	// ErrPanic is set when a panic was recovered.
	ErrPanic = Register(111222, "panic")
)

// registry holds every kind by its code. Code 1 belongs to internal errors.
var registry = map[uint32]*Error{
	internalABCICode: {code: internalABCICode, desc: internalABCILog},
}

// Register declares a new error kind. It panics when the code is taken, so
// call it from package level declarations only.
func Register(code uint32, description string) *Error {
	if prev, ok := registry[code]; ok {
		panic(fmt.Sprintf("error code %d is already registered as %q", code, prev.desc))
	}
	e := &Error{code: code, desc: description}
	registry[code] = e
	return e
}

// Error is a registered error kind. Wrap it to add context.
type Error struct {
	code uint32
	desc string
}

func (e Error) Error() string {
	return e.desc
}

// ABCICode returns the code results carry for this kind.
func (e Error) ABCICode() uint32 {
	return e.code
}

// New returns this kind wrapped with given description.
func (e *Error) New(description string) error {
	return Wrap(e, description)
}

// Is returns true if err is this kind or wraps it. For a group of errors
// one matching member is enough. A nil kind matches nil errors only.
func (e *Error) Is(err error) bool {
	if e == nil {
		return isNilErr(err)
	}
	for err != nil {
		if err == error(e) {
			return true
		}
		if group, ok := err.(unpacker); ok {
			for _, member := range group.Unpack() {
				if e.Is(member) {
					return true
				}
			}
			return false
		}
		c, ok := err.(causer)
		if !ok {
			return false
		}
		err = c.Cause()
	}
	return false
}

// Wrap returns err with description prepended to its message. The first
// wrap records a stack trace. Wrapping nil returns nil.
func Wrap(err error, description string) error {
	if err == nil {
		return nil
	}
	return &wrapped{msg: description, cause: withStack(err)}
}

// Wrapf is Wrap with a formatted description.
func Wrapf(err error, format string, args ...interface{}) error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

type wrapped struct {
	msg   string
	cause error
}

func (w *wrapped) Error() string {
	return w.msg + ": " + w.cause.Error()
}

func (w *wrapped) Cause() error {
	return w.cause
}

// Format prints the stack trace of the wrapped error for %+v.
func (w *wrapped) Format(s fmt.State, verb rune) {
	switch {
	case verb == 'v' && s.Flag('+'):
		fmt.Fprintf(s, "%s: %+v", w.msg, w.cause)
	case verb == 'q':
		fmt.Fprintf(s, "%q", w.Error())
	default:
		fmt.Fprint(s, w.Error())
	}
}

// Recover turns a panic into an ErrPanic assigned to err. Call it deferred.
func Recover(err *error) {
	if r := recover(); r != nil {
		*err = Wrapf(ErrPanic, "%v", r)
	}
}

type causer interface {
	Cause() error
}

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// withStack attaches a stack trace unless err or one of its causes carries
// one already.
func withStack(err error) error {
	if stackTrace(err) != nil {
		return err
	}
	return errors.WithStack(err)
}

// stackTrace returns the first stack trace found in the chain of err.
func stackTrace(err error) errors.StackTrace {
	for err != nil {
		if st, ok := err.(stackTracer); ok {
			return st.StackTrace()
		}
		c, ok := err.(causer)
		if !ok {
			return nil
		}
		err = c.Cause()
	}
	return nil
}

// isNilErr returns true for nil and for a nil pointer stored in the error
// interface.
func isNilErr(err error) bool {
	if err == nil {
		return true
	}
	v := reflect.ValueOf(err)
	return v.Kind() == reflect.Ptr && v.IsNil()
}
