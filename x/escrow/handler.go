package escrow

import (
	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/x"
	"github.com/iov-one/vault/x/token"
	"github.com/tendermint/tendermint/libs/common"
)

const (
	initializeCost int64 = 300
	depositCost    int64 = 50
	withdrawCost   int64 = 50
)

// RegisterRoutes will instantiate and register all handlers in this
// package.
func RegisterRoutes(r vault.Registry, auth x.Authenticator, tokens token.Controller) {
	ctrl := NewController(auth, tokens)
	r.Handle(&InitializeMsg{}, &InitializeHandler{auth: auth, ctrl: ctrl})
	r.Handle(&DepositMsg{}, &DepositHandler{auth: auth, ctrl: ctrl})
	r.Handle(&WithdrawMsg{}, &WithdrawHandler{auth: auth, ctrl: ctrl})
}

// RegisterQuery will register the escrow state bucket as "/escrow" and the
// user balances as "/userstates".
func RegisterQuery(qr vault.QueryRouter) {
	NewStateBucket().Register("escrow", qr)
	NewUserStateBucket().Register("userstates", qr)
}

// InitializeHandler creates the escrow state.
type InitializeHandler struct {
	auth x.Authenticator
	ctrl *Controller
}

var _ vault.Handler = (*InitializeHandler)(nil)

// Check verifies the message and that the escrow is not configured yet.
func (h *InitializeHandler) Check(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.CheckResult, error) {
	msg, _, err := h.load(ctx, tx)
	if err != nil {
		return nil, err
	}
	if _, err := LoadState(db); err == nil {
		return nil, errors.Wrap(ErrAlreadyInitialized, "escrow state exists")
	} else if !ErrNotInitialized.Is(err) {
		return nil, err
	}
	if _, err := token.GetMint(db, msg.Mint); err != nil {
		return nil, err
	}
	return &vault.CheckResult{GasAllocated: initializeCost}, nil
}

// Deliver stores the escrow state with the main signer as the owner. The
// state and mint checks are left to the controller.
func (h *InitializeHandler) Deliver(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.DeliverResult, error) {
	msg, owner, err := h.load(ctx, tx)
	if err != nil {
		return nil, err
	}
	if _, err := h.ctrl.Initialize(ctx, db, owner, msg.Mint); err != nil {
		return nil, err
	}
	key, _ := EscrowAddress()
	return &vault.DeliverResult{
		Data: key,
		Tags: []common.KVPair{
			{Key: []byte("escrow.owner"), Value: []byte(owner.String())},
		},
	}, nil
}

// load returns the message and the address of the main signer, which
// becomes the owner.
func (h *InitializeHandler) load(ctx vault.Context, tx vault.Tx) (*InitializeMsg, vault.Address, error) {
	var msg InitializeMsg
	if err := vault.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	owner := x.MainSigner(ctx, h.auth)
	if owner == nil {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "owner signature missing")
	}
	return &msg, owner.Address(), nil
}

// DepositHandler moves tokens into custody.
type DepositHandler struct {
	auth x.Authenticator
	ctrl *Controller
}

var _ vault.Handler = (*DepositHandler)(nil)

// Check verifies the message, the escrow state and the depositor signature.
func (h *DepositHandler) Check(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &vault.CheckResult{GasAllocated: depositCost}, nil
}

// Deliver transfers the tokens and credits the depositor balance.
func (h *DepositHandler) Deliver(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.DeliverResult, error) {
	msg, state, depositor, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if _, err := h.ctrl.Deposit(ctx, db, state, depositor, msg.Amount); err != nil {
		return nil, err
	}
	key, _, err := UserStateAddress(depositor)
	if err != nil {
		return nil, err
	}
	return &vault.DeliverResult{Data: key}, nil
}

func (h *DepositHandler) validate(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*DepositMsg, *State, vault.Address, error) {
	var msg DepositMsg
	if err := vault.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, errors.Wrap(err, "load msg")
	}
	state, err := LoadState(db)
	if err != nil {
		return nil, nil, nil, err
	}
	depositor := msg.Depositor
	if depositor == nil {
		signer := x.MainSigner(ctx, h.auth)
		if signer == nil {
			return nil, nil, nil, errors.Wrap(errors.ErrUnauthorized, "depositor signature missing")
		}
		depositor = signer.Address()
	}
	if !h.auth.HasAddress(ctx, depositor) {
		return nil, nil, nil, errors.Wrap(errors.ErrUnauthorized, "depositor signature missing")
	}
	return &msg, state, depositor, nil
}

// WithdrawHandler moves tokens out of custody.
type WithdrawHandler struct {
	auth x.Authenticator
	ctrl *Controller
}

var _ vault.Handler = (*WithdrawHandler)(nil)

// Check verifies the message, the escrow state and that the caller owns a
// balance.
func (h *WithdrawHandler) Check(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &vault.CheckResult{GasAllocated: withdrawCost}, nil
}

// Deliver transfers the tokens and debits the caller balance.
func (h *WithdrawHandler) Deliver(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.DeliverResult, error) {
	msg, state, caller, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if _, err := h.ctrl.Withdraw(ctx, db, state, caller, msg.Amount); err != nil {
		return nil, err
	}
	key, _, err := UserStateAddress(caller)
	if err != nil {
		return nil, err
	}
	return &vault.DeliverResult{Data: key}, nil
}

func (h *WithdrawHandler) validate(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*WithdrawMsg, *State, vault.Address, error) {
	var msg WithdrawMsg
	if err := vault.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, errors.Wrap(err, "load msg")
	}
	state, err := LoadState(db)
	if err != nil {
		return nil, nil, nil, err
	}
	signer := x.MainSigner(ctx, h.auth)
	if signer == nil {
		return nil, nil, nil, errors.Wrap(errors.ErrUnauthorized, "caller signature missing")
	}
	return &msg, state, signer.Address(), nil
}
