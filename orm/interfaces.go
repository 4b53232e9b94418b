package orm

import (
	"github.com/iov-one/vault"
	"github.com/iov-one/vault/x"
)

// Object pairs a value with the key it is stored under inside a bucket.
type Object interface {
	Key() []byte
	SetKey([]byte)
	Cloneable
	x.Validater
	Value() vault.Persistent
}

// Cloneable returns an empty object of the same type to load data into.
type Cloneable interface {
	Clone() Object
}

// CloneableData is a value that can be wrapped by a SimpleObj.
type CloneableData interface {
	x.Validater
	vault.Persistent
	Copy() CloneableData
}
