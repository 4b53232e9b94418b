package sigs

import (
	"crypto/sha512"
	"encoding/binary"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/crypto"
	"github.com/iov-one/vault/errors"
)

// SignCodeV1 prefixes every signed payload and versions the layout built
// by BuildSignBytes.
var SignCodeV1 = []byte{0, 0xCA, 0xFE, 0}

// VerifyTxSignatures verifies every signature of tx and advances the
// sequence of each signer. Signer conditions are returned in signature
// order. A transaction without signatures yields an empty list.
func VerifyTxSignatures(db vault.KVStore, tx SignedTx, chainID string) ([]vault.Condition, error) {
	payload, err := tx.GetSignBytes()
	if err != nil {
		return nil, err
	}
	sigs := tx.GetSignatures()
	conds := make([]vault.Condition, len(sigs))
	for i, sig := range sigs {
		if conds[i], err = VerifySignature(db, sig, payload, chainID); err != nil {
			return nil, errors.Wrapf(err, "signature %d", i)
		}
	}
	return conds, nil
}

// VerifySignature checks sig over payload on the given chain. The signer
// record is created on first use and its sequence must equal the one the
// signature was made for.
func VerifySignature(db vault.KVStore, sig *StdSignature, payload []byte, chainID string) (vault.Condition, error) {
	if err := sig.Validate(); err != nil {
		return nil, err
	}
	digest, err := BuildSignBytes(payload, chainID, sig.Sequence)
	if err != nil {
		return nil, err
	}

	users := NewBucket()
	obj, err := users.GetOrCreate(db, sig.Pubkey)
	if err != nil {
		return nil, err
	}
	user := AsUser(obj)
	if !user.Pubkey.Verify(digest, sig.Signature) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "invalid signature")
	}
	if err := user.CheckAndIncrementSequence(sig.Sequence); err != nil {
		return nil, err
	}
	if err := users.Save(db, obj); err != nil {
		return nil, err
	}
	return user.Pubkey.Condition(), nil
}

/*
BuildSignBytes returns the digest a signer signs for a transaction:

  sha512(SignCodeV1 | uint8 len(chainID) | chainID | int64 seq big endian | payload)

Hashing keeps the signed message at a fixed size, which hardware wallets
require.
*/
func BuildSignBytes(payload []byte, chainID string, seq int64) ([]byte, error) {
	if seq < 0 {
		return nil, errors.Wrap(ErrInvalidSequence, "negative")
	}
	if !vault.IsValidChainID(chainID) {
		return nil, errors.Wrapf(errors.ErrInput, "chain id: %v", chainID)
	}
	var nonce [8]byte
	binary.BigEndian.PutUint64(nonce[:], uint64(seq))

	h := sha512.New()
	h.Write(SignCodeV1)
	h.Write([]byte{byte(len(chainID))})
	h.Write([]byte(chainID))
	h.Write(nonce[:])
	h.Write(payload)
	return h.Sum(nil), nil
}

// BuildSignBytesTx is BuildSignBytes over the sign bytes of tx.
func BuildSignBytesTx(tx SignedTx, chainID string, seq int64) ([]byte, error) {
	payload, err := tx.GetSignBytes()
	if err != nil {
		return nil, err
	}
	return BuildSignBytes(payload, chainID, seq)
}

// SignTx signs tx for the given chain and signer sequence.
func SignTx(signer crypto.Signer, tx SignedTx, chainID string, seq int64) (*StdSignature, error) {
	digest, err := BuildSignBytesTx(tx, chainID, seq)
	if err != nil {
		return nil, err
	}
	sig, err := signer.Sign(digest)
	if err != nil {
		return nil, err
	}
	return &StdSignature{Sequence: seq, Pubkey: signer.PublicKey(), Signature: sig}, nil
}
