package crypto

import (
	"encoding/hex"

	"github.com/iov-one/vault/errors"
	"github.com/stellar/go/exp/crypto/derivation"
	"golang.org/x/crypto/ed25519"
)

const signatureSize = ed25519.SignatureSize

var _ Signer = (*PrivateKey)(nil)

// Verify reports whether sig was produced for message by the holder of
// this key. Malformed keys and signatures never verify.
func (p *PublicKey) Verify(message []byte, sig *Signature) bool {
	pub := p.GetEd25519()
	if len(pub) != ed25519.PublicKeySize || len(sig.GetEd25519()) != signatureSize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(pub), message, sig.Ed25519)
}

// Sign returns the signature of message.
func (p *PrivateKey) Sign(message []byte) (*Signature, error) {
	switch len(p.GetEd25519()) {
	case 0:
		return nil, errors.Wrap(errors.ErrEmpty, "private key")
	case ed25519.PrivateKeySize:
	default:
		return nil, errors.Wrap(errors.ErrInput, "invalid ed25519 private key")
	}
	return &Signature{Ed25519: ed25519.Sign(ed25519.PrivateKey(p.Ed25519), message)}, nil
}

// PublicKey returns the public half of the key or nil for an empty key.
func (p *PrivateKey) PublicKey() *PublicKey {
	if len(p.GetEd25519()) != ed25519.PrivateKeySize {
		return nil
	}
	pub := ed25519.PrivateKey(p.Ed25519).Public().(ed25519.PublicKey)
	return &PublicKey{Ed25519: pub}
}

// GenPrivKeyEd25519 returns a random new private key
func GenPrivKeyEd25519() *PrivateKey {
	_, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		panic(err)
	}
	return &PrivateKey{Ed25519: priv}
}

// PrivKeyEd25519FromSeed deterministically generates a private key from a
// 32 byte seed. It panics on any other seed length.
func PrivKeyEd25519FromSeed(seed []byte) *PrivateKey {
	return &PrivateKey{Ed25519: ed25519.NewKeyFromSeed(seed)}
}

// PrivKeyEd25519FromPath derives a private key from a hex encoded master seed
// using SLIP-10 along given path, ie. "m/44'/234'/0'". An empty path uses
// the first 32 bytes of the seed directly.
func PrivKeyEd25519FromPath(hexSeed, path string) (*PrivateKey, error) {
	seed, err := hex.DecodeString(hexSeed)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInput, "seed is not hex encoded")
	}
	if path == "" {
		if len(seed) < ed25519.SeedSize {
			return nil, errors.Wrapf(errors.ErrInput, "seed must be at least %d bytes", ed25519.SeedSize)
		}
		return PrivKeyEd25519FromSeed(seed[:ed25519.SeedSize]), nil
	}
	k, err := derivation.DeriveForPath(path, seed)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "derive %q: %s", path, err)
	}
	return PrivKeyEd25519FromSeed(k.Key), nil
}
