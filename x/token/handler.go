package token

import (
	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/x"
)

const (
	createMintCost int64 = 100
	mintToCost     int64 = 50
	transferCost   int64 = 20
)

// RegisterRoutes will instantiate and register all handlers in this
// package.
func RegisterRoutes(r vault.Registry, auth x.Authenticator, ctrl Controller) {
	r.Handle(&CreateMintMsg{}, &CreateMintHandler{auth: auth})
	r.Handle(&MintToMsg{}, &MintToHandler{auth: auth, ctrl: ctrl})
	r.Handle(&TransferMsg{}, &TransferHandler{auth: auth, ctrl: ctrl})
}

// RegisterQuery will register the mint bucket as "/mints" and the account
// bucket as "/tokenaccounts".
func RegisterQuery(qr vault.QueryRouter) {
	NewMintBucket().Register("mints", qr)
	NewAccountBucket().Register("tokenaccounts", qr)
}

// CreateMintHandler declares new token types.
type CreateMintHandler struct {
	auth x.Authenticator
}

var _ vault.Handler = (*CreateMintHandler)(nil)

func (h *CreateMintHandler) Check(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.CheckResult, error) {
	if _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	return &vault.CheckResult{GasAllocated: createMintCost}, nil
}

func (h *CreateMintHandler) Deliver(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.DeliverResult, error) {
	msg, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	addr, err := CreateMint(db, msg.Authority, msg.Decimals)
	if err != nil {
		return nil, err
	}
	vault.GetLogger(ctx).Info("mint created", "mint", addr, "authority", msg.Authority)
	return &vault.DeliverResult{Data: addr}, nil
}

func (h *CreateMintHandler) validate(ctx vault.Context, tx vault.Tx) (*CreateMintMsg, error) {
	var msg CreateMintMsg
	if err := vault.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if len(h.auth.GetConditions(ctx)) == 0 {
		return nil, errors.Wrap(errors.ErrUnauthorized, "signature missing")
	}
	return &msg, nil
}

// MintToHandler issues new tokens.
type MintToHandler struct {
	auth x.Authenticator
	ctrl Controller
}

var _ vault.Handler = (*MintToHandler)(nil)

func (h *MintToHandler) Check(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &vault.CheckResult{GasAllocated: mintToCost}, nil
}

func (h *MintToHandler) Deliver(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	account, err := EnsureAccount(db, msg.Destination, msg.Mint)
	if err != nil {
		return nil, errors.Wrap(err, "destination account")
	}
	if err := h.ctrl.MintTo(ctx, db, msg.Mint, account, msg.Amount); err != nil {
		return nil, err
	}
	return &vault.DeliverResult{Data: account}, nil
}

func (h *MintToHandler) validate(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*MintToMsg, error) {
	var msg MintToMsg
	if err := vault.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	m, err := GetMint(db, msg.Mint)
	if err != nil {
		return nil, err
	}
	if !h.auth.HasAddress(ctx, m.Authority) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "mint authority signature missing")
	}
	return &msg, nil
}

// TransferHandler moves tokens between owners.
type TransferHandler struct {
	auth x.Authenticator
	ctrl Controller
}

var _ vault.Handler = (*TransferHandler)(nil)

func (h *TransferHandler) Check(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.CheckResult, error) {
	if _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	return &vault.CheckResult{GasAllocated: transferCost}, nil
}

func (h *TransferHandler) Deliver(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.DeliverResult, error) {
	msg, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	destination, err := EnsureAccount(db, msg.Destination, msg.Mint)
	if err != nil {
		return nil, errors.Wrap(err, "destination account")
	}
	source := AssociatedAddress(msg.Source, msg.Mint)
	if err := h.ctrl.TransferChecked(ctx, db, source, destination, msg.Mint, msg.Amount, msg.Decimals); err != nil {
		return nil, err
	}
	return &vault.DeliverResult{}, nil
}

func (h *TransferHandler) validate(ctx vault.Context, tx vault.Tx) (*TransferMsg, error) {
	var msg TransferMsg
	if err := vault.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.Source) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "source owner signature missing")
	}
	return &msg, nil
}
