package vault

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/vault/codec"
)

type wireMetadata Metadata

func (m *wireMetadata) Reset()         { *m = wireMetadata{} }
func (m *wireMetadata) String() string { return proto.CompactTextString(m) }
func (*wireMetadata) ProtoMessage()    {}

// Marshal writes the metadata in the protobuf wire format.
func (m *Metadata) Marshal() ([]byte, error) {
	if m == nil {
		return nil, nil
	}
	return codec.Marshal((*wireMetadata)(m))
}

// Unmarshal loads the metadata from the protobuf wire format.
func (m *Metadata) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, (*wireMetadata)(m))
}
