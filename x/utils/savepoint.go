package utils

import (
	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
)

// Savepoint runs the rest of the stack on a cache of the store. The cache
// is written only if the call succeeds, so a failing transaction leaves no
// partial writes behind. It is enabled per phase with OnCheck and
// OnDeliver.
type Savepoint struct {
	onCheck   bool
	onDeliver bool
}

var _ vault.Decorator = Savepoint{}

// NewSavepoint returns a Savepoint that is active in no phase.
func NewSavepoint() Savepoint {
	return Savepoint{}
}

// OnCheck activates the savepoint for CheckTx.
func (s Savepoint) OnCheck() Savepoint {
	s.onCheck = true
	return s
}

// OnDeliver activates the savepoint for DeliverTx.
func (s Savepoint) OnDeliver() Savepoint {
	s.onDeliver = true
	return s
}

func (s Savepoint) Check(ctx vault.Context, db vault.KVStore, tx vault.Tx, next vault.Checker) (*vault.CheckResult, error) {
	var res *vault.CheckResult
	err := isolate(s.onCheck, db, func(db vault.KVStore) (err error) {
		res, err = next.Check(ctx, db, tx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (s Savepoint) Deliver(ctx vault.Context, db vault.KVStore, tx vault.Tx, next vault.Deliverer) (*vault.DeliverResult, error) {
	var res *vault.DeliverResult
	err := isolate(s.onDeliver, db, func(db vault.KVStore) (err error) {
		res, err = next.Deliver(ctx, db, tx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// isolate calls fn on a cache of db and keeps its writes only on success.
// Stores that cannot be cache wrapped are passed through.
func isolate(active bool, db vault.KVStore, fn func(vault.KVStore) error) error {
	cacheable, ok := db.(vault.CacheableKVStore)
	if !active || !ok {
		return fn(db)
	}
	cache := cacheable.CacheWrap()
	if err := fn(cache); err != nil {
		cache.Discard()
		return err
	}
	return errors.Wrap(cache.Write(), "writing savepoint")
}
