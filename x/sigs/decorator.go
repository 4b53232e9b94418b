/*
Package sigs authenticates transactions by their ed25519 signatures.

The Decorator verifies every signature before the message handler runs and
exposes the signers through Authenticate. Each signer has a sequence that
must be part of the signed bytes and grows by one with every transaction,
which prevents replays.
*/
package sigs

import (
	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
)

// signatureVerifyCost is the gas charged on CheckTx for every valid
// signature.
const signatureVerifyCost = 500

// RegisterQuery exposes the signer records under "/auth".
func RegisterQuery(qr vault.QueryRouter) {
	NewBucket().Register("auth", qr)
}

// Decorator verifies signatures and passes the signers down the stack.
type Decorator struct {
	allowMissingSigs bool
}

var _ vault.Decorator = Decorator{}

// NewDecorator returns a decorator that refuses unsigned transactions.
func NewDecorator() Decorator {
	return Decorator{}
}

// AllowMissingSigs lets unsigned transactions through with no signers.
func (d Decorator) AllowMissingSigs() Decorator {
	d.allowMissingSigs = true
	return d
}

// authenticate returns ctx extended with the signers of tx. Transactions
// that cannot carry signatures are returned unchanged with a zero count.
func (d Decorator) authenticate(ctx vault.Context, db vault.KVStore, tx vault.Tx) (vault.Context, int, error) {
	stx, ok := tx.(SignedTx)
	if !ok {
		return ctx, 0, nil
	}
	signers, err := VerifyTxSignatures(db, stx, vault.GetChainID(ctx))
	if err != nil {
		return nil, 0, errors.Wrap(err, "cannot verify signatures")
	}
	if len(signers) == 0 && !d.allowMissingSigs {
		return nil, 0, errors.Wrap(errors.ErrUnauthorized, "missing signature")
	}
	return withSigners(ctx, signers), len(signers), nil
}

// Check verifies the signatures and charges gas for each of them.
func (d Decorator) Check(ctx vault.Context, db vault.KVStore, tx vault.Tx, next vault.Checker) (*vault.CheckResult, error) {
	ctx, n, err := d.authenticate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	res, err := next.Check(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	res.GasAllocated += int64(n * signatureVerifyCost)
	return res, nil
}

// Deliver verifies the signatures.
func (d Decorator) Deliver(ctx vault.Context, db vault.KVStore, tx vault.Tx, next vault.Deliverer) (*vault.DeliverResult, error) {
	ctx, _, err := d.authenticate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	return next.Deliver(ctx, db, tx)
}
