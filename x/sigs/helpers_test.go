package sigs

import (
	"github.com/iov-one/vault"
	"github.com/iov-one/vault/vaulttest"
)

// StdTx is a transaction mock carrying signatures.
type StdTx struct {
	vault.Tx
	Signatures []*StdSignature
}

var _ SignedTx = (*StdTx)(nil)
var _ vault.Tx = (*StdTx)(nil)

func NewStdTx(payload []byte) *StdTx {
	msg := &vaulttest.Msg{RoutePath: "test/mock", Serialized: payload}
	return &StdTx{Tx: &vaulttest.Tx{Msg: msg}}
}

func (tx StdTx) GetSignatures() []*StdSignature {
	return tx.Signatures
}

func (tx StdTx) GetSignBytes() ([]byte, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, err
	}
	return msg.Marshal()
}

// SigCheckHandler stores the seen signers on each call
type SigCheckHandler struct {
	Signers []vault.Condition
}

var _ vault.Handler = (*SigCheckHandler)(nil)

func (s *SigCheckHandler) Check(ctx vault.Context, store vault.KVStore, tx vault.Tx) (*vault.CheckResult, error) {
	s.Signers = Authenticate{}.GetConditions(ctx)
	return &vault.CheckResult{}, nil
}

func (s *SigCheckHandler) Deliver(ctx vault.Context, store vault.KVStore, tx vault.Tx) (*vault.DeliverResult, error) {
	s.Signers = Authenticate{}.GetConditions(ctx)
	return &vault.DeliverResult{}, nil
}
