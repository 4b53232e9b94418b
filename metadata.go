package vault

import (
	"github.com/iov-one/vault/errors"
)

// Metadata is carried as the first field by every persisted model and every
// message. Schema declares the version of the layout that follows.
type Metadata struct {
	Schema uint32 `protobuf:"varint,1,opt,name=schema,proto3"`
}

// Validate returns an error if the schema version is not set.
func (m *Metadata) Validate() error {
	if m == nil {
		return errors.Wrap(errors.ErrMetadata, "missing metadata")
	}
	if m.Schema < 1 {
		return errors.Wrap(errors.ErrMetadata, "schema version must be at least 1")
	}
	return nil
}

// Copy returns a copy of this object. This method is helpful when implementing
// orm.CloneableData interface to make a copy of the header.
func (m *Metadata) Copy() *Metadata {
	if m == nil {
		return nil
	}
	cpy := *m
	return &cpy
}
