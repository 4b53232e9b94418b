package sigs

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/vault/codec"
)

type wireStdSignature StdSignature

func (m *wireStdSignature) Reset()         { *m = wireStdSignature{} }
func (m *wireStdSignature) String() string { return proto.CompactTextString(m) }
func (*wireStdSignature) ProtoMessage()    {}

func (s *StdSignature) Marshal() ([]byte, error) {
	return codec.Marshal((*wireStdSignature)(s))
}

func (s *StdSignature) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, (*wireStdSignature)(s))
}

type wireUserData UserData

func (m *wireUserData) Reset()         { *m = wireUserData{} }
func (m *wireUserData) String() string { return proto.CompactTextString(m) }
func (*wireUserData) ProtoMessage()    {}

func (u *UserData) Marshal() ([]byte, error) {
	return codec.Marshal((*wireUserData)(u))
}

func (u *UserData) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, (*wireUserData)(u))
}
