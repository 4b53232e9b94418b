/*
Package crypto holds the ed25519 keys and signatures used to authorize
transactions. Every type carries its raw key material in a single bytes
field, so a zero value means "no key".
*/
package crypto

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/vault"
	"github.com/iov-one/vault/codec"
	"github.com/iov-one/vault/errors"
)

// ExtensionName is used for the conditions we get from signatures
const ExtensionName = "sigs"

// Signer is the functionality we use from a private key.
// No serializing to support hardware devices as well.
type Signer interface {
	Sign(message []byte) (*Signature, error)
	PublicKey() *PublicKey
}

// PublicKey holds a raw 32 byte ed25519 public key.
type PublicKey struct {
	Ed25519 []byte `protobuf:"bytes,1,opt,name=ed25519,proto3"`
}

// PrivateKey holds a raw 64 byte ed25519 private key, the seed followed by
// the public key.
type PrivateKey struct {
	Ed25519 []byte `protobuf:"bytes,1,opt,name=ed25519,proto3"`
}

// Signature holds a raw 64 byte ed25519 signature.
type Signature struct {
	Ed25519 []byte `protobuf:"bytes,1,opt,name=ed25519,proto3"`
}

func (p *PublicKey) GetEd25519() []byte {
	if p == nil {
		return nil
	}
	return p.Ed25519
}

func (p *PrivateKey) GetEd25519() []byte {
	if p == nil {
		return nil
	}
	return p.Ed25519
}

func (s *Signature) GetEd25519() []byte {
	if s == nil {
		return nil
	}
	return s.Ed25519
}

// Condition returns the signature condition of this key or nil when no key
// is set. p.Condition().Address() is the account the key controls.
func (p *PublicKey) Condition() vault.Condition {
	if len(p.GetEd25519()) == 0 {
		return nil
	}
	return vault.NewCondition(ExtensionName, "ed25519", p.Ed25519)
}

// Address is a shortcut to Condition().Address()
func (p *PublicKey) Address() vault.Address {
	c := p.Condition()
	if c == nil {
		return nil
	}
	return c.Address()
}

// Validate ensures the signature carries a payload of the expected size.
func (s *Signature) Validate() error {
	switch n := len(s.GetEd25519()); n {
	case 0:
		return errors.Wrap(errors.ErrEmpty, "signature")
	case signatureSize:
		return nil
	default:
		return errors.Wrapf(errors.ErrInput, "ed25519 signature must be %d bytes, got %d", signatureSize, n)
	}
}

type wirePublicKey PublicKey

func (m *wirePublicKey) Reset()         { *m = wirePublicKey{} }
func (m *wirePublicKey) String() string { return proto.CompactTextString(m) }
func (*wirePublicKey) ProtoMessage()    {}

func (p *PublicKey) Marshal() ([]byte, error) {
	return codec.Marshal((*wirePublicKey)(p))
}

func (p *PublicKey) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, (*wirePublicKey)(p))
}

type wirePrivateKey PrivateKey

func (m *wirePrivateKey) Reset()         { *m = wirePrivateKey{} }
func (m *wirePrivateKey) String() string { return proto.CompactTextString(m) }
func (*wirePrivateKey) ProtoMessage()    {}

func (p *PrivateKey) Marshal() ([]byte, error) {
	return codec.Marshal((*wirePrivateKey)(p))
}

func (p *PrivateKey) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, (*wirePrivateKey)(p))
}

type wireSignature Signature

func (m *wireSignature) Reset()         { *m = wireSignature{} }
func (m *wireSignature) String() string { return proto.CompactTextString(m) }
func (*wireSignature) ProtoMessage()    {}

func (s *Signature) Marshal() ([]byte, error) {
	return codec.Marshal((*wireSignature)(s))
}

func (s *Signature) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, (*wireSignature)(s))
}
