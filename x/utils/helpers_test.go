package utils

import (
	"github.com/iov-one/vault"
)

// writeHandler writes the given key/value pair to the KVStore and returns
// the configured error (nil for success).
type writeHandler struct {
	key   []byte
	value []byte
	err   error
}

var _ vault.Handler = writeHandler{}

func (h writeHandler) Check(ctx vault.Context, store vault.KVStore, tx vault.Tx) (*vault.CheckResult, error) {
	if err := store.Set(h.key, h.value); err != nil {
		return nil, err
	}
	if h.err != nil {
		return nil, h.err
	}
	return &vault.CheckResult{}, nil
}

func (h writeHandler) Deliver(ctx vault.Context, store vault.KVStore, tx vault.Tx) (*vault.DeliverResult, error) {
	if err := store.Set(h.key, h.value); err != nil {
		return nil, err
	}
	if h.err != nil {
		return nil, h.err
	}
	return &vault.DeliverResult{}, nil
}

// writeDecorator writes the given key/value pair to the KVStore, either
// before or after calling down the stack. The result of the wrapped
// handler is returned untouched.
type writeDecorator struct {
	key   []byte
	value []byte
	after bool
}

var _ vault.Decorator = writeDecorator{}

func (d writeDecorator) Check(ctx vault.Context, store vault.KVStore, tx vault.Tx, next vault.Checker) (*vault.CheckResult, error) {
	if !d.after {
		if err := store.Set(d.key, d.value); err != nil {
			return nil, err
		}
	}
	res, err := next.Check(ctx, store, tx)
	if d.after {
		if serr := store.Set(d.key, d.value); serr != nil {
			return nil, serr
		}
	}
	return res, err
}

func (d writeDecorator) Deliver(ctx vault.Context, store vault.KVStore, tx vault.Tx, next vault.Deliverer) (*vault.DeliverResult, error) {
	if !d.after {
		if err := store.Set(d.key, d.value); err != nil {
			return nil, err
		}
	}
	res, err := next.Deliver(ctx, store, tx)
	if d.after {
		if serr := store.Set(d.key, d.value); serr != nil {
			return nil, serr
		}
	}
	return res, err
}

type panicHandler struct{}

var _ vault.Handler = panicHandler{}

func (p panicHandler) Check(ctx vault.Context, store vault.KVStore, tx vault.Tx) (*vault.CheckResult, error) {
	panic("check panic")
}

func (p panicHandler) Deliver(ctx vault.Context, store vault.KVStore, tx vault.Tx) (*vault.DeliverResult, error) {
	panic("deliver panic")
}
