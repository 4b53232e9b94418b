/*
Package assert provides the handful of test assertions used across the
vault packages. Every helper stops the test on failure.
*/
package assert

import (
	"reflect"
	"testing"

	"github.com/iov-one/vault/errors"
)

// Nil fails unless value is nil or a nil pointer, slice, map, chan, func or
// interface. Errors are printed with %+v to include their stack trace.
func Nil(t testing.TB, value interface{}) {
	t.Helper()
	if !isNil(value) {
		t.Fatalf("want nil, got %+v", value)
	}
}

func isNil(value interface{}) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// Equal fails unless want and got are deeply equal.
func Equal(t testing.TB, want, got interface{}) {
	t.Helper()
	if !reflect.DeepEqual(want, got) {
		t.Fatalf("values not equal\nwant %T %v\n got %T %v", want, want, got, got)
	}
}

// Panics fails unless fn panics.
func Panics(t testing.TB, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatal("want a panic")
		}
	}()
	fn()
}

// IsErr fails unless got is want or want.Is(got) holds.
func IsErr(t testing.TB, want, got error) {
	t.Helper()
	if want == got {
		return
	}
	if w, ok := want.(interface{ Is(error) bool }); ok && w.Is(got) {
		return
	}
	t.Fatalf("want %q, got %+v", want, got)
}

// FieldError fails unless err holds an error of kind want for the named
// field. Pass a nil want to require that the field has no error.
func FieldError(t testing.TB, err error, field string, want *errors.Error) {
	t.Helper()
	errs := errors.FieldErrors(err, field)
	if want == nil {
		if len(errs) != 0 {
			t.Fatalf("want no %q error, got %q", field, errs)
		}
		return
	}
	for _, e := range errs {
		if want.Is(e) {
			return
		}
	}
	t.Fatalf("want %q error %q, got %q", field, want, errs)
}
