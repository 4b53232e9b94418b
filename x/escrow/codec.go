package escrow

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/vault/codec"
)

type wireState State

func (m *wireState) Reset()         { *m = wireState{} }
func (m *wireState) String() string { return proto.CompactTextString(m) }
func (*wireState) ProtoMessage()    {}

func (s *State) Marshal() ([]byte, error) {
	return codec.Marshal((*wireState)(s))
}

func (s *State) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, (*wireState)(s))
}

type wireUserState UserState

func (m *wireUserState) Reset()         { *m = wireUserState{} }
func (m *wireUserState) String() string { return proto.CompactTextString(m) }
func (*wireUserState) ProtoMessage()    {}

func (u *UserState) Marshal() ([]byte, error) {
	return codec.Marshal((*wireUserState)(u))
}

func (u *UserState) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, (*wireUserState)(u))
}

type wireInitializeMsg InitializeMsg

func (m *wireInitializeMsg) Reset()         { *m = wireInitializeMsg{} }
func (m *wireInitializeMsg) String() string { return proto.CompactTextString(m) }
func (*wireInitializeMsg) ProtoMessage()    {}

func (m *InitializeMsg) Marshal() ([]byte, error) {
	return codec.Marshal((*wireInitializeMsg)(m))
}

func (m *InitializeMsg) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, (*wireInitializeMsg)(m))
}

type wireDepositMsg DepositMsg

func (m *wireDepositMsg) Reset()         { *m = wireDepositMsg{} }
func (m *wireDepositMsg) String() string { return proto.CompactTextString(m) }
func (*wireDepositMsg) ProtoMessage()    {}

func (m *DepositMsg) Marshal() ([]byte, error) {
	return codec.Marshal((*wireDepositMsg)(m))
}

func (m *DepositMsg) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, (*wireDepositMsg)(m))
}

type wireWithdrawMsg WithdrawMsg

func (m *wireWithdrawMsg) Reset()         { *m = wireWithdrawMsg{} }
func (m *wireWithdrawMsg) String() string { return proto.CompactTextString(m) }
func (*wireWithdrawMsg) ProtoMessage()    {}

func (m *WithdrawMsg) Marshal() ([]byte, error) {
	return codec.Marshal((*wireWithdrawMsg)(m))
}

func (m *WithdrawMsg) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, (*wireWithdrawMsg)(m))
}
