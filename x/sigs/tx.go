package sigs

import (
	"github.com/iov-one/vault/crypto"
	"github.com/iov-one/vault/errors"
)

// SignedTx represents a transaction that contains signatures,
// which can be verified by the sigs.Decorator
type SignedTx interface {
	// GetSignBytes returns the canonical byte representation of the
	// transaction without signatures.
	GetSignBytes() ([]byte, error)

	// GetSignatures returns the signatures of signers who signed the tx.
	GetSignatures() []*StdSignature
}

// StdSignature is a signature together with the public key it can be
// verified with and the signer sequence it was created for.
type StdSignature struct {
	Sequence  int64             `protobuf:"varint,1,opt,name=sequence,proto3"`
	Pubkey    *crypto.PublicKey `protobuf:"bytes,2,opt,name=pubkey,proto3"`
	Signature *crypto.Signature `protobuf:"bytes,4,opt,name=signature,proto3"`
}

// GetSequence returns the sequence or zero for a nil signature.
func (s *StdSignature) GetSequence() int64 {
	if s == nil {
		return 0
	}
	return s.Sequence
}

// Validate ensures the StdSignature meets basic standards
func (s *StdSignature) Validate() error {
	seq := s.GetSequence()
	if seq < 0 {
		return errors.Wrap(ErrInvalidSequence, "negative")
	}
	if len(s.Pubkey.GetEd25519()) == 0 {
		return errors.Wrap(errors.ErrUnauthorized, "missing public key")
	}
	if len(s.Signature.GetEd25519()) == 0 {
		return errors.Wrap(errors.ErrUnauthorized, "missing signature")
	}
	return nil
}
