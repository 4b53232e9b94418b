package token

import (
	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/orm"
)

const (
	// MaxDecimals is the greatest number of decimal places a mint can
	// declare.
	MaxDecimals = 18

	mintBucketName    = "mint"
	accountBucketName = "tokenaccount"
)

// Mint declares a token type.
type Mint struct {
	Metadata *vault.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3"`
	// Authority is the only address allowed to issue new tokens.
	Authority vault.Address `protobuf:"bytes,2,opt,name=authority,proto3"`
	// Decimals is the number of base 10 digits to the right of the
	// decimal point.
	Decimals uint32 `protobuf:"varint,3,opt,name=decimals,proto3"`
	// Supply is the total amount of tokens issued, in the smallest unit.
	Supply uint64 `protobuf:"varint,4,opt,name=supply,proto3"`
}

var _ orm.Model = (*Mint)(nil)

func (m *Mint) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Authority", m.Authority.Validate())
	if m.Decimals > MaxDecimals {
		errs = errors.Append(errs, errors.Field("Decimals", errors.ErrInput, "must not be greater than %d", MaxDecimals))
	}
	return errs
}

func (m *Mint) Copy() orm.CloneableData {
	return &Mint{
		Metadata:  m.Metadata.Copy(),
		Authority: m.Authority.Clone(),
		Decimals:  m.Decimals,
		Supply:    m.Supply,
	}
}

// Account holds a balance of a single mint.
type Account struct {
	Metadata *vault.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3"`
	Owner    vault.Address   `protobuf:"bytes,2,opt,name=owner,proto3"`
	Mint     vault.Address   `protobuf:"bytes,3,opt,name=mint,proto3"`
	Amount   uint64          `protobuf:"varint,4,opt,name=amount,proto3"`
}

var _ orm.Model = (*Account)(nil)

func (a *Account) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", a.Metadata.Validate())
	errs = errors.AppendField(errs, "Owner", a.Owner.Validate())
	errs = errors.AppendField(errs, "Mint", a.Mint.Validate())
	return errs
}

func (a *Account) Copy() orm.CloneableData {
	return &Account{
		Metadata: a.Metadata.Copy(),
		Owner:    a.Owner.Clone(),
		Mint:     a.Mint.Clone(),
		Amount:   a.Amount,
	}
}

// NewMintBucket returns a bucket for storing mints under their address.
func NewMintBucket() orm.ModelBucket {
	return orm.NewModelBucket(mintBucketName, &Mint{})
}

// NewAccountBucket returns a bucket for storing token accounts under their
// associated address.
func NewAccountBucket() orm.ModelBucket {
	return orm.NewModelBucket(accountBucketName, &Account{})
}
