package app

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/vault"
	"github.com/iov-one/vault/codec"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/x/escrow"
	"github.com/iov-one/vault/x/sigs"
	"github.com/iov-one/vault/x/token"
)

// Tx is the transaction of the vault application. It carries the
// signatures and exactly one message. On the wire every message type has
// its own field, see txWire.
type Tx struct {
	Signatures []*sigs.StdSignature
	Msg        vault.Msg
}

// make sure tx fulfills all interfaces
var _ vault.Tx = (*Tx)(nil)
var _ sigs.SignedTx = (*Tx)(nil)

// TxDecoder creates a Tx and unmarshals bytes into it
func TxDecoder(bz []byte) (vault.Tx, error) {
	tx := new(Tx)
	if err := tx.Unmarshal(bz); err != nil {
		return nil, err
	}
	return tx, nil
}

// GetMsg returns the single message of this transaction.
func (tx *Tx) GetMsg() (vault.Msg, error) {
	if tx.Msg == nil {
		return nil, errors.Wrap(errors.ErrMsg, "no message in transaction")
	}
	return tx.Msg, nil
}

// GetSignatures returns all signatures of this transaction.
func (tx *Tx) GetSignatures() []*sigs.StdSignature {
	return tx.Signatures
}

// GetSignBytes returns the bytes to sign...
func (tx *Tx) GetSignBytes() ([]byte, error) {
	// temporarily unset the signatures, as the sign bytes
	// should only come from the data itself, not previous signatures
	sigs := tx.Signatures
	tx.Signatures = nil

	bz, err := tx.Marshal()

	// reset the signatures after calculating the bytes
	tx.Signatures = sigs
	return bz, err
}

// txWire is the protobuf layout of a Tx. Field numbers must never be
// reused.
type txWire struct {
	Signatures    []*sigs.StdSignature  `protobuf:"bytes,1,rep,name=signatures,proto3"`
	CreateMintMsg *token.CreateMintMsg  `protobuf:"bytes,2,opt,name=create_mint_msg,proto3"`
	MintToMsg     *token.MintToMsg      `protobuf:"bytes,3,opt,name=mint_to_msg,proto3"`
	TransferMsg   *token.TransferMsg    `protobuf:"bytes,4,opt,name=transfer_msg,proto3"`
	InitializeMsg *escrow.InitializeMsg `protobuf:"bytes,5,opt,name=initialize_msg,proto3"`
	DepositMsg    *escrow.DepositMsg    `protobuf:"bytes,6,opt,name=deposit_msg,proto3"`
	WithdrawMsg   *escrow.WithdrawMsg   `protobuf:"bytes,7,opt,name=withdraw_msg,proto3"`
}

func (m *txWire) Reset()         { *m = txWire{} }
func (m *txWire) String() string { return proto.CompactTextString(m) }
func (*txWire) ProtoMessage()    {}

func (tx *Tx) Marshal() ([]byte, error) {
	w := txWire{Signatures: tx.Signatures}
	switch msg := tx.Msg.(type) {
	case nil:
	case *token.CreateMintMsg:
		w.CreateMintMsg = msg
	case *token.MintToMsg:
		w.MintToMsg = msg
	case *token.TransferMsg:
		w.TransferMsg = msg
	case *escrow.InitializeMsg:
		w.InitializeMsg = msg
	case *escrow.DepositMsg:
		w.DepositMsg = msg
	case *escrow.WithdrawMsg:
		w.WithdrawMsg = msg
	default:
		return nil, errors.Wrapf(errors.ErrMsg, "unsupported message %T", msg)
	}
	return codec.Marshal(&w)
}

func (tx *Tx) Unmarshal(raw []byte) error {
	var w txWire
	if err := codec.Unmarshal(raw, &w); err != nil {
		return err
	}
	msgs := w.messages()
	if len(msgs) > 1 {
		return errors.Wrap(errors.ErrMsg, "more than one message in transaction")
	}
	*tx = Tx{Signatures: w.Signatures}
	if len(msgs) == 1 {
		tx.Msg = msgs[0]
	}
	return nil
}

// messages returns every message field that is set.
func (m *txWire) messages() []vault.Msg {
	var msgs []vault.Msg
	if m.CreateMintMsg != nil {
		msgs = append(msgs, m.CreateMintMsg)
	}
	if m.MintToMsg != nil {
		msgs = append(msgs, m.MintToMsg)
	}
	if m.TransferMsg != nil {
		msgs = append(msgs, m.TransferMsg)
	}
	if m.InitializeMsg != nil {
		msgs = append(msgs, m.InitializeMsg)
	}
	if m.DepositMsg != nil {
		msgs = append(msgs, m.DepositMsg)
	}
	if m.WithdrawMsg != nil {
		msgs = append(msgs, m.WithdrawMsg)
	}
	return msgs
}
