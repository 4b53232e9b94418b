/*
Package codec serializes models, messages and transactions with the
protobuf wire format.

Types describe their layout with protobuf struct tags and are encoded by
the reflection based gogo/protobuf marshaller. A type that exposes its own
Marshal method must hand a method-less twin of itself to this package,
otherwise gogo would call back into that method.
*/
package codec

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/vault/errors"
)

// Marshaller is anything that can be represented in binary.
type Marshaller interface {
	Marshal() ([]byte, error)
}

// Unmarshaller is anything that can be loaded from binary.
type Unmarshaller interface {
	Unmarshal([]byte) error
}

// Marshal encodes a tagged struct. Zero values are omitted, so an empty
// message serializes to an empty slice.
func Marshal(msg proto.Message) ([]byte, error) {
	bz, err := proto.Marshal(msg)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "marshal %T: %s", msg, err)
	}
	return bz, nil
}

// Unmarshal resets msg and loads raw into it. Unknown fields are skipped so
// that older code can read newer records.
func Unmarshal(raw []byte, msg proto.Message) error {
	if err := proto.Unmarshal(raw, msg); err != nil {
		return errors.Wrapf(errors.ErrInput, "unmarshal %T: %s", msg, err)
	}
	return nil
}
