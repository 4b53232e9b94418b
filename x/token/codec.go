package token

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/vault/codec"
)

type wireMint Mint

func (m *wireMint) Reset()         { *m = wireMint{} }
func (m *wireMint) String() string { return proto.CompactTextString(m) }
func (*wireMint) ProtoMessage()    {}

func (m *Mint) Marshal() ([]byte, error) {
	return codec.Marshal((*wireMint)(m))
}

func (m *Mint) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, (*wireMint)(m))
}

type wireAccount Account

func (m *wireAccount) Reset()         { *m = wireAccount{} }
func (m *wireAccount) String() string { return proto.CompactTextString(m) }
func (*wireAccount) ProtoMessage()    {}

func (a *Account) Marshal() ([]byte, error) {
	return codec.Marshal((*wireAccount)(a))
}

func (a *Account) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, (*wireAccount)(a))
}

type wireCreateMintMsg CreateMintMsg

func (m *wireCreateMintMsg) Reset()         { *m = wireCreateMintMsg{} }
func (m *wireCreateMintMsg) String() string { return proto.CompactTextString(m) }
func (*wireCreateMintMsg) ProtoMessage()    {}

func (m *CreateMintMsg) Marshal() ([]byte, error) {
	return codec.Marshal((*wireCreateMintMsg)(m))
}

func (m *CreateMintMsg) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, (*wireCreateMintMsg)(m))
}

type wireMintToMsg MintToMsg

func (m *wireMintToMsg) Reset()         { *m = wireMintToMsg{} }
func (m *wireMintToMsg) String() string { return proto.CompactTextString(m) }
func (*wireMintToMsg) ProtoMessage()    {}

func (m *MintToMsg) Marshal() ([]byte, error) {
	return codec.Marshal((*wireMintToMsg)(m))
}

func (m *MintToMsg) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, (*wireMintToMsg)(m))
}

type wireTransferMsg TransferMsg

func (m *wireTransferMsg) Reset()         { *m = wireTransferMsg{} }
func (m *wireTransferMsg) String() string { return proto.CompactTextString(m) }
func (*wireTransferMsg) ProtoMessage()    {}

func (m *TransferMsg) Marshal() ([]byte, error) {
	return codec.Marshal((*wireTransferMsg)(m))
}

func (m *TransferMsg) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, (*wireTransferMsg)(m))
}
