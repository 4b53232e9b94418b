package app

import (
	"context"
	"testing"

	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/store"
	"github.com/iov-one/vault/vaulttest"
	"github.com/iov-one/vault/vaulttest/assert"
)

func TestRouter(t *testing.T) {
	var (
		r       = NewRouter()
		good    = &vaulttest.Handler{}
		bad     = &vaulttest.Handler{DeliverErr: errors.ErrUnauthorized, CheckErr: errors.ErrUnauthorized}
		ctx     = context.Background()
		db      = store.MemStore()
		goodMsg = &vaulttest.Msg{RoutePath: "test/good"}
		badMsg  = &vaulttest.Msg{RoutePath: "test/bad"}
	)

	r.Handle(goodMsg, good)
	r.Handle(badMsg, bad)

	assert.Panics(t, func() { r.Handle(goodMsg, good) })
	assert.Panics(t, func() { r.Handle(&vaulttest.Msg{RoutePath: "l:7"}, good) })

	_, err := r.Check(ctx, db, &vaulttest.Tx{Msg: goodMsg})
	assert.Nil(t, err)
	_, err = r.Deliver(ctx, db, &vaulttest.Tx{Msg: goodMsg})
	assert.Nil(t, err)
	assert.Equal(t, 2, good.CallCount())

	_, err = r.Deliver(ctx, db, &vaulttest.Tx{Msg: badMsg})
	assert.IsErr(t, errors.ErrUnauthorized, err)
	assert.Equal(t, 1, bad.CallCount())

	missing := &vaulttest.Tx{Msg: &vaulttest.Msg{RoutePath: "test/missing"}}
	_, err = r.Check(ctx, db, missing)
	assert.IsErr(t, errors.ErrNotFound, err)
	_, err = r.Deliver(ctx, db, missing)
	assert.IsErr(t, errors.ErrNotFound, err)

	_, err = r.Deliver(ctx, db, &vaulttest.Tx{})
	assert.IsErr(t, errors.ErrMsg, err)

	_, err = r.Deliver(ctx, db, &vaulttest.Tx{Err: errors.ErrInput})
	assert.IsErr(t, errors.ErrInput, err)

	assert.Equal(t, 2, good.CallCount())
}
