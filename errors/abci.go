package errors

import (
	"fmt"
)

const (
	// SuccessABCICode is the code of a successful result.
	SuccessABCICode uint32 = 0

	internalABCICode uint32 = 1
	internalABCILog         = "internal error"
)

// ABCIInfo returns the code and log a result reports for err.
//
// The code is the one of the kind err wraps. Errors that wrap no registered
// kind are internal and get code 1. Their message may expose details of the
// node, so unless debug is set it is replaced with "internal error". In
// debug mode every log carries the full error including the stack trace.
func ABCIInfo(err error, debug bool) (uint32, string) {
	if isNilErr(err) {
		return SuccessABCICode, ""
	}
	code := abciCode(err)
	switch {
	case debug:
		return code, fmt.Sprintf("%+v", err)
	case code == internalABCICode:
		return code, internalABCILog
	default:
		return code, err.Error()
	}
}

type coder interface {
	ABCICode() uint32
}

// abciCode returns the code of the first kind found in the chain of err.
func abciCode(err error) uint32 {
	if isNilErr(err) {
		return SuccessABCICode
	}
	for !isNilErr(err) {
		if c, ok := err.(coder); ok {
			return c.ABCICode()
		}
		next, ok := err.(causer)
		if !ok {
			break
		}
		err = next.Cause()
	}
	return internalABCICode
}
