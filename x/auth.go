package x

import (
	"github.com/iov-one/vault"
)

// Authenticator reveals which conditions signed the transaction carried by
// a context. Handlers receive one in their constructor so that the set of
// accepted signers can be extended without touching them.
type Authenticator interface {
	// GetConditions returns every condition satisfied in this context.
	GetConditions(vault.Context) []vault.Condition
	// HasAddress reports whether addr is one of those conditions.
	HasAddress(vault.Context, vault.Address) bool
}

// MultiAuth is the union of several Authenticators.
type MultiAuth []Authenticator

var _ Authenticator = MultiAuth{}

// ChainAuth returns an Authenticator that accepts whatever any of auths
// accepts. Conditions are reported in the order of auths.
func ChainAuth(auths ...Authenticator) MultiAuth {
	return MultiAuth(auths)
}

func (m MultiAuth) GetConditions(ctx vault.Context) []vault.Condition {
	var res []vault.Condition
	for _, a := range m {
		res = append(res, a.GetConditions(ctx)...)
	}
	return res
}

func (m MultiAuth) HasAddress(ctx vault.Context, addr vault.Address) bool {
	for _, a := range m {
		if a.HasAddress(ctx, addr) {
			return true
		}
	}
	return false
}

// MainSigner returns the first condition reported by auth, or nil when the
// transaction is unsigned.
func MainSigner(ctx vault.Context, auth Authenticator) vault.Condition {
	if signers := auth.GetConditions(ctx); len(signers) > 0 {
		return signers[0]
	}
	return nil
}
