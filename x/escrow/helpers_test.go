package escrow

import (
	"context"
	"testing"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/store"
	"github.com/iov-one/vault/vaulttest"
	"github.com/iov-one/vault/x"
	"github.com/iov-one/vault/x/token"
	"github.com/stretchr/testify/require"
)

// unit is one whole token of a mint with nine decimals.
const unit uint64 = 1000000000

// testEnv is a store with a single mint and controllers wired the same way
// the application wires them.
type testEnv struct {
	t         testing.TB
	db        vault.CacheableKVStore
	auth      *vaulttest.CtxAuth
	tokens    token.Controller
	ctrl      *Controller
	authority vault.Condition
	mint      vault.Address
}

func newTestEnv(t testing.TB) *testEnv {
	t.Helper()
	auth := &vaulttest.CtxAuth{Key: "auth"}
	tokens := token.NewController(x.ChainAuth(auth, Authenticate{}), Custody{})
	env := &testEnv{
		t:         t,
		db:        store.MemStore(),
		auth:      auth,
		tokens:    tokens,
		ctrl:      NewController(auth, tokens),
		authority: vaulttest.NewCondition(),
	}
	mint, err := token.CreateMint(env.db, env.authority.Address(), 9)
	require.NoError(t, err)
	env.mint = mint
	return env
}

// ctx returns a context authenticating given signers.
func (e *testEnv) ctx(signers ...vault.Condition) vault.Context {
	return e.auth.SetConditions(context.Background(), signers...)
}

// fund mints amount into the associated account of owner.
func (e *testEnv) fund(owner vault.Address, amount uint64) {
	e.t.Helper()
	account, err := token.EnsureAccount(e.db, owner, e.mint)
	require.NoError(e.t, err)
	require.NoError(e.t, e.tokens.MintTo(e.ctx(e.authority), e.db, e.mint, account, amount))
}

// initialize configures the escrow with owner as the owner.
func (e *testEnv) initialize(owner vault.Condition) *State {
	e.t.Helper()
	state, err := e.ctrl.Initialize(e.ctx(owner), e.db, owner.Address(), e.mint)
	require.NoError(e.t, err)
	return state
}

// wallet returns the token balance of the associated account of owner.
func (e *testEnv) wallet(owner vault.Address) uint64 {
	e.t.Helper()
	b, err := token.Balance(e.db, token.AssociatedAddress(owner, e.mint))
	require.NoError(e.t, err)
	return b
}

// custody returns the custody account balance.
func (e *testEnv) custody() uint64 {
	e.t.Helper()
	b, err := token.Balance(e.db, CustodyAddress(e.mint))
	require.NoError(e.t, err)
	return b
}

// deposited returns the escrow balance of owner, zero if none recorded.
func (e *testEnv) deposited(owner vault.Address) uint64 {
	e.t.Helper()
	u, err := LoadUserState(e.db, owner)
	if errors.ErrNotFound.Is(err) {
		return 0
	}
	require.NoError(e.t, err)
	return u.Amount
}

// audit fails the test if the custody invariant does not hold.
func (e *testEnv) audit() {
	e.t.Helper()
	require.NoError(e.t, Audit(e.db))
}
