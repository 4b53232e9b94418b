package utils

import (
	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
)

// Recovery turns a panic further down the stack into an ErrPanic error,
// so that a broken transaction fails instead of halting the node.
type Recovery struct{}

var _ vault.Decorator = Recovery{}

func NewRecovery() Recovery {
	return Recovery{}
}

func (Recovery) Check(ctx vault.Context, db vault.KVStore, tx vault.Tx, next vault.Checker) (res *vault.CheckResult, err error) {
	defer errors.Recover(&err)
	res, err = next.Check(ctx, db, tx)
	return res, err
}

func (Recovery) Deliver(ctx vault.Context, db vault.KVStore, tx vault.Tx, next vault.Deliverer) (res *vault.DeliverResult, err error) {
	defer errors.Recover(&err)
	res, err = next.Deliver(ctx, db, tx)
	return res, err
}
