package escrow

import (
	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/orm"
)

const (
	stateBucketName     = "escrow"
	userStateBucketName = "userstate"
)

// State is the singleton escrow configuration.
type State struct {
	Metadata *vault.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3"`
	// Owner is the address that initialized the escrow.
	Owner vault.Address `protobuf:"bytes,2,opt,name=owner,proto3"`
	// Mint is the only token type the escrow accepts.
	Mint vault.Address `protobuf:"bytes,3,opt,name=mint,proto3"`
	// Bump is the value used to derive the escrow address.
	Bump uint32 `protobuf:"varint,4,opt,name=bump,proto3"`
}

var _ orm.Model = (*State)(nil)

func (s *State) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", s.Metadata.Validate())
	errs = errors.AppendField(errs, "Owner", s.Owner.Validate())
	errs = errors.AppendField(errs, "Mint", s.Mint.Validate())
	if s.Bump > 255 {
		errs = errors.Append(errs, errors.Field("Bump", errors.ErrInput, "must fit in one byte"))
	}
	return errs
}

func (s *State) Copy() orm.CloneableData {
	return &State{
		Metadata: s.Metadata.Copy(),
		Owner:    s.Owner.Clone(),
		Mint:     s.Mint.Clone(),
		Bump:     s.Bump,
	}
}

// UserState is the balance a single depositor holds in the escrow.
type UserState struct {
	Metadata *vault.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3"`
	// Owner is the depositor.
	Owner vault.Address `protobuf:"bytes,2,opt,name=owner,proto3"`
	// Amount is the sum of deposits minus the sum of withdrawals, in the
	// smallest token unit.
	Amount uint64 `protobuf:"varint,3,opt,name=amount,proto3"`
	// Bump is the value used to derive the user state address.
	Bump uint32 `protobuf:"varint,4,opt,name=bump,proto3"`
}

var _ orm.Model = (*UserState)(nil)

func (u *UserState) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", u.Metadata.Validate())
	errs = errors.AppendField(errs, "Owner", u.Owner.Validate())
	if u.Bump > 255 {
		errs = errors.Append(errs, errors.Field("Bump", errors.ErrInput, "must fit in one byte"))
	}
	return errs
}

func (u *UserState) Copy() orm.CloneableData {
	return &UserState{
		Metadata: u.Metadata.Copy(),
		Owner:    u.Owner.Clone(),
		Amount:   u.Amount,
		Bump:     u.Bump,
	}
}

// NewStateBucket returns the bucket holding the escrow state under the
// escrow address.
func NewStateBucket() orm.ModelBucket {
	return orm.NewModelBucket(stateBucketName, &State{})
}

// NewUserStateBucket returns the bucket holding user balances under their
// user state addresses.
func NewUserStateBucket() orm.ModelBucket {
	return orm.NewModelBucket(userStateBucketName, &UserState{})
}

// LoadState returns the escrow state. ErrNotInitialized is returned if the
// escrow was never initialized.
func LoadState(db vault.ReadOnlyKVStore) (*State, error) {
	key, _ := EscrowAddress()
	var s State
	switch err := NewStateBucket().One(db, key, &s); {
	case err == nil:
		return &s, nil
	case errors.ErrNotFound.Is(err):
		return nil, errors.Wrap(ErrNotInitialized, "no escrow state")
	default:
		return nil, err
	}
}

// LoadUserState returns the balance record of given owner. ErrNotFound is
// returned if the owner never deposited.
func LoadUserState(db vault.ReadOnlyKVStore, owner vault.Address) (*UserState, error) {
	key, _, err := UserStateAddress(owner)
	if err != nil {
		return nil, err
	}
	var u UserState
	if err := NewUserStateBucket().One(db, key, &u); err != nil {
		return nil, err
	}
	return &u, nil
}
