package token

import (
	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/orm"
	"github.com/iov-one/vault/x"
)

// Controller is the interface other extensions use to move tokens.
type Controller interface {
	// TransferChecked moves amount between two accounts of the same mint.
	// The owner of the source account must be authorized by the context.
	// Decimals must match the mint declaration.
	TransferChecked(ctx vault.Context, db vault.KVStore, source, destination, mint vault.Address, amount uint64, decimals uint32) error

	// MintTo issues new tokens into the destination account. The mint
	// authority must be authorized by the context.
	MintTo(ctx vault.Context, db vault.KVStore, mint, destination vault.Address, amount uint64) error
}

// Custodian holds accounts whose balance is accounted for by another
// extension. Tokens may enter such an account only when the custodian
// authorizes the credit, so that its bookkeeping always matches the
// account balance.
type Custodian interface {
	// Holds returns true if accounts of given owner are in custody.
	Holds(owner vault.Address) bool
	// CanCredit returns true if ctx may increase the balance of an
	// account of given owner.
	CanCredit(ctx vault.Context, owner vault.Address) bool
}

// NewController returns a controller that authorizes operations with given
// authenticator. Credits into accounts held by any of the custodians are
// refused unless that custodian allows them.
func NewController(auth x.Authenticator, custodians ...Custodian) Controller {
	return &controller{
		auth:       auth,
		custodians: custodians,
		mints:      NewMintBucket(),
		accounts:   NewAccountBucket(),
	}
}

type controller struct {
	auth       x.Authenticator
	custodians []Custodian
	mints      orm.ModelBucket
	accounts   orm.ModelBucket
}

// checkCredit returns ErrUnauthorized if an account of given owner is held
// in custody and ctx is not allowed to credit it.
func (c *controller) checkCredit(ctx vault.Context, owner vault.Address) error {
	for _, cs := range c.custodians {
		if cs.Holds(owner) && !cs.CanCredit(ctx, owner) {
			return errors.Wrapf(errors.ErrUnauthorized, "account of %s is held in custody", owner)
		}
	}
	return nil
}

var _ Controller = (*controller)(nil)

func (c *controller) TransferChecked(
	ctx vault.Context,
	db vault.KVStore,
	source, destination, mint vault.Address,
	amount uint64,
	decimals uint32,
) error {
	if amount == 0 {
		return errors.Wrap(errors.ErrInvalidAmount, "transfer amount must be positive")
	}
	m, err := GetMint(db, mint)
	if err != nil {
		return err
	}
	if m.Decimals != decimals {
		return errors.Wrapf(ErrDecimalsMismatch, "mint declares %d, got %d", m.Decimals, decimals)
	}

	var src Account
	if err := c.accounts.One(db, source, &src); err != nil {
		return errors.Wrap(err, "source account")
	}
	if !src.Mint.Equals(mint) {
		return errors.Wrap(ErrMintMismatch, "source account")
	}
	if !c.auth.HasAddress(ctx, src.Owner) {
		return errors.Wrap(errors.ErrUnauthorized, "source account owner signature missing")
	}
	if src.Amount < amount {
		return errors.Wrapf(ErrInsufficientSourceFunds, "balance %d, requested %d", src.Amount, amount)
	}

	if source.Equals(destination) {
		return nil
	}

	var dst Account
	if err := c.accounts.One(db, destination, &dst); err != nil {
		return errors.Wrap(err, "destination account")
	}
	if !dst.Mint.Equals(mint) {
		return errors.Wrap(ErrMintMismatch, "destination account")
	}
	if err := c.checkCredit(ctx, dst.Owner); err != nil {
		return err
	}
	if dst.Amount+amount < dst.Amount {
		return errors.Wrap(errors.ErrOverflow, "destination balance")
	}

	src.Amount -= amount
	dst.Amount += amount
	if err := c.accounts.Put(db, source, &src); err != nil {
		return errors.Wrap(err, "save source account")
	}
	if err := c.accounts.Put(db, destination, &dst); err != nil {
		return errors.Wrap(err, "save destination account")
	}

	vault.GetLogger(ctx).Debug("token transfer",
		"mint", mint, "source", source, "destination", destination, "amount", amount)
	return nil
}

func (c *controller) MintTo(ctx vault.Context, db vault.KVStore, mint, destination vault.Address, amount uint64) error {
	if amount == 0 {
		return errors.Wrap(errors.ErrInvalidAmount, "mint amount must be positive")
	}
	m, err := GetMint(db, mint)
	if err != nil {
		return err
	}
	if !c.auth.HasAddress(ctx, m.Authority) {
		return errors.Wrap(errors.ErrUnauthorized, "mint authority signature missing")
	}
	var dst Account
	if err := c.accounts.One(db, destination, &dst); err != nil {
		return errors.Wrap(err, "destination account")
	}
	if err := c.checkCredit(ctx, dst.Owner); err != nil {
		return err
	}
	return issue(db, m, mint, destination, amount)
}

// issue increases both the mint supply and the destination balance. The
// caller is responsible for authorization.
func issue(db vault.KVStore, m *Mint, mint, destination vault.Address, amount uint64) error {
	var dst Account
	if err := NewAccountBucket().One(db, destination, &dst); err != nil {
		return errors.Wrap(err, "destination account")
	}
	if !dst.Mint.Equals(mint) {
		return errors.Wrap(ErrMintMismatch, "destination account")
	}
	if m.Supply+amount < m.Supply {
		return errors.Wrap(errors.ErrOverflow, "mint supply")
	}
	// Every balance is bounded by the supply, so the account cannot
	// overflow once the supply did not.
	m.Supply += amount
	dst.Amount += amount

	if err := NewMintBucket().Put(db, mint, m); err != nil {
		return errors.Wrap(err, "save mint")
	}
	if err := NewAccountBucket().Put(db, destination, &dst); err != nil {
		return errors.Wrap(err, "save destination account")
	}
	return nil
}

// GetMint returns the mint stored under given address.
func GetMint(db vault.ReadOnlyKVStore, mint vault.Address) (*Mint, error) {
	var m Mint
	if err := NewMintBucket().One(db, mint, &m); err != nil {
		return nil, errors.Wrap(err, "mint")
	}
	return &m, nil
}

// Balance returns the amount held by the token account with given address.
// A missing account holds nothing.
func Balance(db vault.ReadOnlyKVStore, account vault.Address) (uint64, error) {
	var a Account
	switch err := NewAccountBucket().One(db, account, &a); {
	case err == nil:
		return a.Amount, nil
	case errors.ErrNotFound.Is(err):
		return 0, nil
	default:
		return 0, err
	}
}

// AssociatedAddress returns the address of the associated token account of
// given owner and mint.
func AssociatedAddress(owner, mint vault.Address) vault.Address {
	seed := make([]byte, 0, len(owner)+len(mint))
	seed = append(seed, owner...)
	seed = append(seed, mint...)
	return vault.NewCondition("token", "ata", seed).Address()
}

// EnsureAccount creates the associated token account of given owner and
// mint unless it already exists. The account address is returned.
func EnsureAccount(db vault.KVStore, owner, mint vault.Address) (vault.Address, error) {
	if _, err := GetMint(db, mint); err != nil {
		return nil, err
	}
	addr := AssociatedAddress(owner, mint)
	accounts := NewAccountBucket()
	switch err := accounts.Has(db, addr); {
	case err == nil:
		return addr, nil
	case !errors.ErrNotFound.Is(err):
		return nil, err
	}
	acc := &Account{
		Metadata: &vault.Metadata{Schema: 1},
		Owner:    owner,
		Mint:     mint,
	}
	if err := accounts.Put(db, addr, acc); err != nil {
		return nil, errors.Wrap(err, "create account")
	}
	return addr, nil
}

// MintAddress returns the address of the mint created with given sequence
// value.
func MintAddress(seq int64) vault.Address {
	return vault.NewCondition("token", "mint", orm.EncodeSequence(seq)).Address()
}

// CreateMint declares a new token type and returns its address.
func CreateMint(db vault.KVStore, authority vault.Address, decimals uint32) (vault.Address, error) {
	seq := orm.NewSequence(mintBucketName, "id")
	n, err := seq.NextInt(db)
	if err != nil {
		return nil, errors.Wrap(err, "mint sequence")
	}
	addr := MintAddress(n)
	m := &Mint{
		Metadata:  &vault.Metadata{Schema: 1},
		Authority: authority,
		Decimals:  decimals,
	}
	if err := NewMintBucket().Put(db, addr, m); err != nil {
		return nil, errors.Wrap(err, "save mint")
	}
	return addr, nil
}
