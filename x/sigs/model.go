package sigs

import (
	"github.com/iov-one/vault"
	"github.com/iov-one/vault/crypto"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/orm"
)

// BucketName is the key prefix of the signer records.
const BucketName = "sigs"

// maxSequence is the largest integer a javascript client represents
// exactly, Number.MAX_SAFE_INTEGER.
const maxSequence = 1<<53 - 1

// UserData is the replay protection state kept for every signer.
type UserData struct {
	Metadata *vault.Metadata   `protobuf:"bytes,1,opt,name=metadata,proto3"`
	Pubkey   *crypto.PublicKey `protobuf:"bytes,2,opt,name=pubkey,proto3"`
	Sequence int64             `protobuf:"varint,3,opt,name=sequence,proto3"`
}

var _ orm.CloneableData = (*UserData)(nil)

// Validate requires a non negative sequence. A record that was used at
// least once must know its public key.
func (u *UserData) Validate() error {
	errs := errors.AppendField(nil, "Metadata", u.Metadata.Validate())
	switch {
	case u.Sequence < 0:
		errs = errors.AppendField(errs, "Sequence", ErrInvalidSequence)
	case u.Sequence > 0 && u.Pubkey == nil:
		errs = errors.Append(errs, errors.Field("Sequence", ErrInvalidSequence, "needs Pubkey"))
	}
	return errs
}

func (u *UserData) Copy() orm.CloneableData {
	cp := *u
	cp.Metadata = u.Metadata.Copy()
	return &cp
}

// CheckAndIncrementSequence advances the sequence by one if it equals
// expected.
func (u *UserData) CheckAndIncrementSequence(expected int64) error {
	if u.Sequence != expected {
		return errors.Wrapf(ErrInvalidSequence, "mismatch expected %d, got %d", expected, u.Sequence)
	}
	if u.Sequence >= maxSequence {
		return errors.Wrap(errors.ErrOverflow, "sequence out of range")
	}
	u.Sequence++
	return nil
}

// AsUser returns the UserData held by obj, or nil.
func AsUser(obj orm.Object) *UserData {
	if obj == nil || obj.Value() == nil {
		return nil
	}
	return obj.Value().(*UserData)
}

// NewUser returns a fresh record for pubkey, keyed by its address. A nil
// key gives the empty prototype used by the bucket.
func NewUser(pubkey *crypto.PublicKey) orm.Object {
	var key vault.Address
	if pubkey != nil {
		key = pubkey.Address()
	}
	return orm.NewSimpleObj(key, &UserData{
		Metadata: &vault.Metadata{Schema: 1},
		Pubkey:   pubkey,
	})
}

// Bucket stores UserData by signer address.
type Bucket struct {
	orm.Bucket
}

// NewBucket returns the signer records bucket.
func NewBucket() Bucket {
	return Bucket{Bucket: orm.NewBucket(BucketName, NewUser(nil))}
}

// GetOrCreate loads the record of pubkey, or returns a new unsaved one.
func (b Bucket) GetOrCreate(db vault.KVStore, pubkey *crypto.PublicKey) (orm.Object, error) {
	obj, err := b.Get(db, pubkey.Address())
	if err != nil {
		return nil, err
	}
	if obj == nil {
		obj = NewUser(pubkey)
	}
	return obj, nil
}

// NextNonce returns the sequence the next signature of signer must use.
// Unknown signers start at zero.
func NextNonce(db vault.ReadOnlyKVStore, signer vault.Address) (int64, error) {
	obj, err := NewBucket().Get(db, signer)
	if err != nil {
		return 0, errors.Wrap(err, "load signer")
	}
	if u := AsUser(obj); u != nil {
		return u.Sequence, nil
	}
	return 0, nil
}
