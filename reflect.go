package vault

import (
	"reflect"

	"github.com/iov-one/vault/errors"
)

// assign copies src into the value dst points to. Both a destination of the
// source type and a destination of the type the source points to are
// accepted, so that
//
//   var msg DepositMsg
//   assign(&msg, tx.Msg)
//
// works the same as assigning into a *DepositMsg.
func assign(dst interface{}, src interface{}) error {
	if dst == nil || src == nil {
		return errors.Wrap(errors.ErrType, "nil value")
	}
	dv := reflect.ValueOf(dst)
	if dv.Kind() != reflect.Ptr || dv.IsNil() {
		return errors.Wrapf(errors.ErrType, "destination %T is not a non nil pointer", dst)
	}
	target := dv.Elem()
	sv := reflect.ValueOf(src)

	switch {
	case sv.Type().AssignableTo(target.Type()):
		target.Set(sv)
	case sv.Kind() == reflect.Ptr && !sv.IsNil() && sv.Elem().Type().AssignableTo(target.Type()):
		target.Set(sv.Elem())
	default:
		return errors.Wrapf(errors.ErrType, "cannot load %T into %T", src, dst)
	}
	return nil
}
