package app

import (
	"context"
	"testing"

	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/store"
	"github.com/iov-one/vault/vaulttest"
	"github.com/iov-one/vault/vaulttest/assert"
	"github.com/iov-one/vault/x/utils"
)

func TestChain(t *testing.T) {
	c1 := &vaulttest.Decorator{}
	c2 := &vaulttest.Decorator{}
	h := &vaulttest.Handler{}

	stack := ChainDecorators(
		c1,
		utils.NewLogging(),
		nil,
		utils.NewRecovery(),
		c2,
	).WithHandler(h)

	ctx := context.Background()
	db := store.MemStore()
	tx := &vaulttest.Tx{Msg: &vaulttest.Msg{RoutePath: "test/chain"}}

	_, err := stack.Check(ctx, db, tx)
	assert.Nil(t, err)
	_, err = stack.Deliver(ctx, db, tx)
	assert.Nil(t, err)

	assert.Equal(t, 2, c1.CallCount())
	assert.Equal(t, 2, c2.CallCount())
	assert.Equal(t, 1, h.CheckCallCount())
	assert.Equal(t, 1, h.DeliverCallCount())
}

func TestChainStopsAtFirstError(t *testing.T) {
	h := &vaulttest.Handler{}
	stack := ChainDecorators(
		utils.NewRecovery(),
		&vaulttest.Decorator{DeliverErr: errors.ErrUnauthorized},
	).WithHandler(h)

	tx := &vaulttest.Tx{Msg: &vaulttest.Msg{RoutePath: "test/chain"}}
	_, err := stack.Deliver(context.Background(), store.MemStore(), tx)
	assert.IsErr(t, errors.ErrUnauthorized, err)
	assert.Equal(t, 0, h.CallCount())
}

func TestChainSkipsNil(t *testing.T) {
	var typedNil *vaulttest.Decorator
	d := &vaulttest.Decorator{}
	got := ChainDecorators(nil, d).Chain(typedNil, nil)
	assert.Equal(t, Decorators{d}, got)
	assert.Equal(t, 0, len(ChainDecorators(nil, typedNil)))
}
