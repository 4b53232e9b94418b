package vaulttest

import (
	"context"

	"github.com/iov-one/vault"
)

// Auth authenticates a fixed set of conditions in every context: Signer,
// when set, followed by Signers.
type Auth struct {
	Signer  vault.Condition
	Signers []vault.Condition
}

func (a *Auth) GetConditions(vault.Context) []vault.Condition {
	if a.Signer == nil {
		return a.Signers
	}
	return append([]vault.Condition{a.Signer}, a.Signers...)
}

func (a *Auth) HasAddress(ctx vault.Context, addr vault.Address) bool {
	return hasAddress(a.GetConditions(ctx), addr)
}

// CtxAuth authenticates the conditions stored in a context under Key, so
// that every request of a test can be signed by someone else.
type CtxAuth struct {
	Key string
}

// SetConditions returns a copy of ctx signed by conds.
func (a *CtxAuth) SetConditions(ctx vault.Context, conds ...vault.Condition) vault.Context {
	return context.WithValue(ctx, a.Key, conds)
}

func (a *CtxAuth) GetConditions(ctx vault.Context) []vault.Condition {
	conds, _ := ctx.Value(a.Key).([]vault.Condition)
	return conds
}

func (a *CtxAuth) HasAddress(ctx vault.Context, addr vault.Address) bool {
	return hasAddress(a.GetConditions(ctx), addr)
}

func hasAddress(conds []vault.Condition, addr vault.Address) bool {
	for _, c := range conds {
		if addr.Equals(c.Address()) {
			return true
		}
	}
	return false
}
