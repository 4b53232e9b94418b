/*
Package orm stores typed records in a key value store.

The state is split into buckets. A bucket holds values of a single type
under the prefix "<name>:" and addresses them by a primary key. Records
can be loaded one at a time or iterated in key order, and every bucket can
be exposed to ABCI queries.
*/
package orm

import (
	"fmt"
	"regexp"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
)

var isBucketName = regexp.MustCompile(`^[a-z_]{3,16}$`).MatchString

// Bucket stores objects of the prototype's type under a common prefix.
// Extensions usually embed it in a type safe wrapper.
type Bucket struct {
	name   string
	prefix []byte
	proto  Cloneable
}

var _ vault.QueryHandler = Bucket{}

// NewBucket panics unless name is 3 to 16 lower case letters or "_".
func NewBucket(name string, proto Cloneable) Bucket {
	if !isBucketName(name) {
		panic(fmt.Sprintf("Illegal bucket: %s", name))
	}
	return Bucket{name: name, prefix: []byte(name + ":"), proto: proto}
}

func (b Bucket) Name() string {
	return b.name
}

// DBKey returns prefix and key in a newly allocated slice.
func (b Bucket) DBKey(key []byte) []byte {
	out := make([]byte, 0, len(b.prefix)+len(key))
	return append(append(out, b.prefix...), key...)
}

// Get loads the object stored under key, or nil.
func (b Bucket) Get(db vault.ReadOnlyKVStore, key []byte) (Object, error) {
	raw, err := db.Get(b.DBKey(key))
	if err != nil || raw == nil {
		return nil, err
	}
	return b.Parse(key, raw)
}

func (b Bucket) Has(db vault.ReadOnlyKVStore, key []byte) (bool, error) {
	return db.Has(b.DBKey(key))
}

// Parse decodes a stored value into a new object with the given key.
func (b Bucket) Parse(key, raw []byte) (Object, error) {
	obj := b.proto.Clone()
	if err := obj.Value().Unmarshal(raw); err != nil {
		return nil, errors.Wrapf(errors.ErrModel, "cannot unmarshal %s: %s", b.name, err)
	}
	obj.SetKey(key)
	return obj, nil
}

// Save validates and writes obj.
func (b Bucket) Save(db vault.KVStore, obj Object) error {
	if err := obj.Validate(); err != nil {
		return err
	}
	raw, err := obj.Value().Marshal()
	if err != nil {
		return err
	}
	return db.Set(b.DBKey(obj.Key()), raw)
}

func (b Bucket) Delete(db vault.KVStore, key []byte) error {
	return db.Delete(b.DBKey(key))
}

// Each calls fn for every object in key order and stops at the first
// error.
func (b Bucket) Each(db vault.ReadOnlyKVStore, fn func(Object) error) error {
	models, err := queryPrefix(db, b.prefix)
	if err != nil {
		return err
	}
	for _, m := range models {
		obj, err := b.Parse(m.Key[len(b.prefix):], m.Value)
		if err != nil {
			return err
		}
		if err := fn(obj); err != nil {
			return err
		}
	}
	return nil
}

// Register serves the bucket under "/<name>", or under the bucket name if
// name is empty.
func (b Bucket) Register(name string, r vault.QueryRouter) {
	if name == "" {
		name = b.name
	}
	r.Register("/"+name, b)
}

// Query looks up data as a key, or as a key prefix with the "prefix"
// modifier. Result keys include the bucket prefix.
func (b Bucket) Query(db vault.ReadOnlyKVStore, mod string, data []byte) ([]vault.Model, error) {
	switch mod {
	case vault.KeyQueryMod:
		key := b.DBKey(data)
		value, err := db.Get(key)
		if err != nil || value == nil {
			return nil, err
		}
		return []vault.Model{vault.Pair(key, value)}, nil
	case vault.PrefixQueryMod:
		return queryPrefix(db, b.DBKey(data))
	}
	return nil, errors.Wrapf(errors.ErrInput, "unknown mod: %s", mod)
}
