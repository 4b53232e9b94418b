package escrow

import (
	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/orm"
	"github.com/iov-one/vault/x"
	"github.com/iov-one/vault/x/token"
)

// Controller executes escrow operations. The escrow state is loaded by the
// caller and passed in explicitly.
type Controller struct {
	auth   x.Authenticator
	tokens token.Controller
	states orm.ModelBucket
	users  orm.ModelBucket
}

// NewController returns a controller that checks signatures with auth and
// moves funds with tokens. The token controller must recognize the escrow
// Authenticate conditions for withdrawals to succeed, and should hold
// Custody so that the custody account is credited by deposits only.
func NewController(auth x.Authenticator, tokens token.Controller) *Controller {
	return &Controller{
		auth:   auth,
		tokens: tokens,
		states: NewStateBucket(),
		users:  NewUserStateBucket(),
	}
}

// Initialize creates the escrow state for given owner and mint, together
// with the custody account. The owner must be authorized by the context.
func (c *Controller) Initialize(ctx vault.Context, db vault.KVStore, owner, mint vault.Address) (*State, error) {
	if !c.auth.HasAddress(ctx, owner) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "owner signature missing")
	}
	var state *State
	err := atomically(db, func(db vault.KVStore) error {
		var err error
		state, err = initialize(db, owner, mint)
		return err
	})
	if err != nil {
		return nil, err
	}
	vault.GetLogger(ctx).Info("escrow initialized", "owner", owner, "mint", mint)
	return state, nil
}

func initialize(db vault.KVStore, owner, mint vault.Address) (*State, error) {
	key, bump := EscrowAddress()
	bucket := NewStateBucket()
	switch err := bucket.Has(db, key); {
	case err == nil:
		return nil, errors.Wrap(ErrAlreadyInitialized, "escrow state exists")
	case !errors.ErrNotFound.Is(err):
		return nil, err
	}
	if _, err := token.GetMint(db, mint); err != nil {
		return nil, err
	}

	state := &State{
		Metadata: &vault.Metadata{Schema: 1},
		Owner:    owner,
		Mint:     mint,
		Bump:     uint32(bump),
	}
	if err := bucket.Put(db, key, state); err != nil {
		return nil, errors.Wrap(err, "save escrow state")
	}
	if _, err := token.EnsureAccount(db, key.Address(), mint); err != nil {
		return nil, errors.Wrap(err, "custody account")
	}
	return state, nil
}

// Deposit moves amount from the depositor token account into custody and
// credits the depositor balance. The transfer is authorized by the
// depositor signature. The updated balance record is returned.
func (c *Controller) Deposit(ctx vault.Context, db vault.KVStore, state *State, depositor vault.Address, amount uint64) (*UserState, error) {
	if amount == 0 {
		return nil, errors.Wrap(errors.ErrInvalidAmount, "deposit amount must be positive")
	}
	if state == nil {
		return nil, errors.Wrap(ErrNotInitialized, "no escrow state")
	}
	if !c.auth.HasAddress(ctx, depositor) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "depositor signature missing")
	}

	key, bump, err := UserStateAddress(depositor)
	if err != nil {
		return nil, err
	}
	user, err := c.loadOrCreate(db, key, depositor, bump)
	if err != nil {
		return nil, err
	}
	if user.Amount+amount < user.Amount {
		return nil, errors.Wrap(errors.ErrOverflow, "user balance")
	}

	mint, err := token.GetMint(db, state.Mint)
	if err != nil {
		return nil, err
	}

	err = atomically(db, func(db vault.KVStore) error {
		custody, err := token.EnsureAccount(db, escrowAddr.Address(), state.Mint)
		if err != nil {
			return errors.Wrap(err, "custody account")
		}
		source, err := token.EnsureAccount(db, depositor, state.Mint)
		if err != nil {
			return errors.Wrap(err, "depositor account")
		}
		if err := c.tokens.TransferChecked(withDepositRight(ctx), db, source, custody, state.Mint, amount, mint.Decimals); err != nil {
			return errors.Wrap(err, "transfer to custody")
		}

		user.Amount += amount
		if err := c.users.Put(db, key, user); err != nil {
			return errors.Wrap(err, "save user state")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	vault.GetLogger(ctx).Debug("escrow deposit", "depositor", depositor, "amount", amount, "balance", user.Amount)
	return user, nil
}

// Withdraw moves amount from custody to the caller token account and debits
// the caller balance. The transfer is authorized by the escrow itself, never
// by the caller. The updated balance record is returned.
func (c *Controller) Withdraw(ctx vault.Context, db vault.KVStore, state *State, caller vault.Address, amount uint64) (*UserState, error) {
	if amount == 0 {
		return nil, errors.Wrap(errors.ErrInvalidAmount, "withdraw amount must be positive")
	}
	if state == nil {
		return nil, errors.Wrap(ErrNotInitialized, "no escrow state")
	}
	if caller == nil || !c.auth.HasAddress(ctx, caller) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "caller signature missing")
	}

	key, _, err := UserStateAddress(caller)
	if err != nil {
		return nil, err
	}
	var user UserState
	switch err := c.users.One(db, key, &user); {
	case errors.ErrNotFound.Is(err):
		return nil, errors.Wrap(errors.ErrUnauthorized, "caller has no balance")
	case err != nil:
		return nil, err
	}
	if !user.Owner.Equals(caller) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "balance owned by another address")
	}
	if amount > user.Amount {
		return nil, errors.Wrapf(ErrInsufficientFunds, "balance %d, requested %d", user.Amount, amount)
	}

	mint, err := token.GetMint(db, state.Mint)
	if err != nil {
		return nil, err
	}

	err = atomically(db, func(db vault.KVStore) error {
		destination, err := token.EnsureAccount(db, caller, state.Mint)
		if err != nil {
			return errors.Wrap(err, "caller account")
		}
		custody := CustodyAddress(state.Mint)
		custodyCtx := withCustodyAuthority(ctx)
		if err := c.tokens.TransferChecked(custodyCtx, db, custody, destination, state.Mint, amount, mint.Decimals); err != nil {
			return errors.Wrap(err, "transfer from custody")
		}

		user.Amount -= amount
		if err := c.users.Put(db, key, &user); err != nil {
			return errors.Wrap(err, "save user state")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	vault.GetLogger(ctx).Debug("escrow withdraw", "caller", caller, "amount", amount, "balance", user.Amount)
	return &user, nil
}

func (c *Controller) loadOrCreate(db vault.ReadOnlyKVStore, key ProgramAddress, owner vault.Address, bump uint8) (*UserState, error) {
	var user UserState
	switch err := c.users.One(db, key, &user); {
	case err == nil:
		return &user, nil
	case errors.ErrNotFound.Is(err):
		return &UserState{
			Metadata: &vault.Metadata{Schema: 1},
			Owner:    owner,
			Bump:     uint32(bump),
		}, nil
	default:
		return nil, err
	}
}

// atomically runs fn over a cache of db. Writes reach db only if fn
// succeeds. Stores that cannot be cached are used directly.
func atomically(db vault.KVStore, fn func(vault.KVStore) error) error {
	cacheable, ok := db.(vault.CacheableKVStore)
	if !ok {
		return fn(db)
	}
	cache := cacheable.CacheWrap()
	if err := fn(cache); err != nil {
		cache.Discard()
		return err
	}
	if err := cache.Write(); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return nil
}

// Audit checks that the sum of all user balances equals the custody account
// balance. ErrState is returned on mismatch.
func Audit(db vault.ReadOnlyKVStore) error {
	var total uint64
	err := NewUserStateBucket().Each(db, func(key []byte, m orm.Model) error {
		u, ok := m.(*UserState)
		if !ok {
			return errors.Wrapf(errors.ErrType, "%T", m)
		}
		if total+u.Amount < total {
			return errors.Wrap(errors.ErrOverflow, "sum of user balances")
		}
		total += u.Amount
		return nil
	})
	if err != nil {
		return err
	}

	state, err := LoadState(db)
	switch {
	case ErrNotInitialized.Is(err):
		if total != 0 {
			return errors.Wrapf(errors.ErrState, "%d deposited without escrow state", total)
		}
		return nil
	case err != nil:
		return err
	}

	custody, err := token.Balance(db, CustodyAddress(state.Mint))
	if err != nil {
		return err
	}
	if custody != total {
		return errors.Wrapf(errors.ErrState, "custody holds %d, users own %d", custody, total)
	}
	return nil
}
