package orm

import (
	"reflect"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
)

// Model is a value stored by a ModelBucket. It is CloneableData under a
// name that reads better at the call site.
type Model interface {
	vault.Persistent
	Validate() error
	Copy() CloneableData
}

// ModelBucket stores models of a single type by primary key, without the
// Object wrapper of Bucket.
type ModelBucket interface {
	// One loads the model under key into dest. It fails with ErrNotFound
	// for a missing key and with ErrType if dest is of another type.
	One(db vault.ReadOnlyKVStore, key []byte, dest Model) error

	// Has returns nil if key exists and ErrNotFound otherwise.
	Has(db vault.ReadOnlyKVStore, key []byte) error

	// Put validates and stores m under key.
	Put(db vault.KVStore, key []byte, m Model) error

	// Delete removes key. It fails with ErrNotFound if there is nothing to
	// remove.
	Delete(db vault.KVStore, key []byte) error

	// Each calls fn with every stored model in key order, each time with a
	// new instance.
	Each(db vault.ReadOnlyKVStore, fn func(key []byte, m Model) error) error

	// Register serves the bucket content under "/<name>".
	Register(name string, r vault.QueryRouter)
}

// NewModelBucket returns a bucket for models of the same type as m.
func NewModelBucket(name string, m Model) ModelBucket {
	return &modelBucket{
		bucket: NewBucket(name, NewSimpleObj(nil, m)),
		typ:    reflect.TypeOf(m),
	}
}

type modelBucket struct {
	bucket Bucket
	typ    reflect.Type
}

var _ ModelBucket = (*modelBucket)(nil)

func (mb *modelBucket) One(db vault.ReadOnlyKVStore, key []byte, dest Model) error {
	obj, err := mb.bucket.Get(db, key)
	if err != nil {
		return err
	}
	if obj == nil || obj.Value() == nil {
		return errors.Wrapf(errors.ErrNotFound, "%T not in the store", dest)
	}
	src := reflect.ValueOf(obj.Value())
	dst := reflect.ValueOf(dest)
	if !src.Type().AssignableTo(dst.Type()) {
		return errors.Wrapf(errors.ErrType, "%T cannot be represented as %T", obj.Value(), dest)
	}
	dst.Elem().Set(src.Elem())
	return nil
}

func (mb *modelBucket) Has(db vault.ReadOnlyKVStore, key []byte) error {
	// The store panics on a nil key.
	if key == nil {
		return errors.ErrNotFound
	}
	switch ok, err := mb.bucket.Has(db, key); {
	case err != nil:
		return err
	case !ok:
		return errors.ErrNotFound
	}
	return nil
}

func (mb *modelBucket) Put(db vault.KVStore, key []byte, m Model) error {
	if t := reflect.TypeOf(m); t != mb.typ {
		return errors.Wrapf(errors.ErrType, "cannot store %s type in this bucket", t)
	}
	if err := m.Validate(); err != nil {
		return errors.Wrap(err, "invalid model")
	}
	return errors.Wrap(mb.bucket.Save(db, NewSimpleObj(key, m)), "cannot store in the database")
}

func (mb *modelBucket) Delete(db vault.KVStore, key []byte) error {
	if err := mb.Has(db, key); err != nil {
		return err
	}
	return mb.bucket.Delete(db, key)
}

func (mb *modelBucket) Each(db vault.ReadOnlyKVStore, fn func(key []byte, m Model) error) error {
	return mb.bucket.Each(db, func(obj Object) error {
		return fn(obj.Key(), obj.Value().(Model))
	})
}

func (mb *modelBucket) Register(name string, r vault.QueryRouter) {
	mb.bucket.Register(name, r)
}
