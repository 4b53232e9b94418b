package sigs

import (
	"context"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/x"
)

type ctxKey struct{}

// withSigners is unexported so that only the Decorator can vouch for a
// signer.
func withSigners(ctx vault.Context, signers []vault.Condition) vault.Context {
	return context.WithValue(ctx, ctxKey{}, signers)
}

// Authenticate reports the signers the Decorator verified.
type Authenticate struct{}

var _ x.Authenticator = Authenticate{}

// GetConditions returns the signer conditions in signature order, or nil
// outside of a signed transaction.
func (Authenticate) GetConditions(ctx vault.Context) []vault.Condition {
	signers, _ := ctx.Value(ctxKey{}).([]vault.Condition)
	return signers
}

// HasAddress tells whether addr belongs to one of the signers.
func (a Authenticate) HasAddress(ctx vault.Context, addr vault.Address) bool {
	for _, c := range a.GetConditions(ctx) {
		if c.Address().Equals(addr) {
			return true
		}
	}
	return false
}
