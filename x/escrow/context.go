package escrow

import (
	"context"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/x"
	"github.com/iov-one/vault/x/token"
)

type contextKey int // local to the escrow module

const (
	contextKeyCustody contextKey = iota
	contextKeyDeposit
)

// withCustodyAuthority is a private method, as only this module can act on
// behalf of the escrow address.
func withCustodyAuthority(ctx vault.Context) vault.Context {
	addr, _ := EscrowAddress()
	return context.WithValue(ctx, contextKeyCustody, addr.Condition())
}

// withDepositRight marks ctx as a deposit in progress. Only then the
// custody account may be credited.
func withDepositRight(ctx vault.Context) vault.Context {
	return context.WithValue(ctx, contextKeyDeposit, true)
}

// Authenticate grants the escrow condition to operations running under the
// custody authority.
type Authenticate struct{}

var _ x.Authenticator = Authenticate{}

// GetConditions returns the escrow condition if the custody authority was
// granted to this context.
func (a Authenticate) GetConditions(ctx vault.Context) []vault.Condition {
	val, _ := ctx.Value(contextKeyCustody).(vault.Condition)
	if val == nil {
		return nil
	}
	return []vault.Condition{val}
}

// HasAddress returns true iff this address is in GetConditions
func (a Authenticate) HasAddress(ctx vault.Context, addr vault.Address) bool {
	for _, s := range a.GetConditions(ctx) {
		if addr.Equals(s.Address()) {
			return true
		}
	}
	return false
}

// Custody keeps tokens from entering the custody account other than through
// Deposit, which records the owner of every credited token.
type Custody struct{}

var _ token.Custodian = Custody{}

// Holds returns true for the escrow address.
func (Custody) Holds(owner vault.Address) bool {
	return owner.Equals(escrowAddr.Address())
}

// CanCredit returns true while a deposit is being executed.
func (Custody) CanCredit(ctx vault.Context, owner vault.Address) bool {
	ok, _ := ctx.Value(contextKeyDeposit).(bool)
	return ok
}
