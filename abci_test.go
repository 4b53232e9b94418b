package vault_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tendermint/tendermint/libs/common"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
)

func TestCreateErrorResult(t *testing.T) {
	cases := map[string]struct {
		err     error
		debug   bool
		wantLog string
		code    uint32
	}{
		"registered error": {
			err:     errors.Wrap(errors.ErrNotFound, "escrow"),
			wantLog: "escrow: not found",
			code:    errors.ErrNotFound.ABCICode(),
		},
		"internal error is redacted": {
			err:     fmt.Errorf("disk on fire"),
			wantLog: "internal error",
			code:    1,
		},
		"internal error in debug mode": {
			err:     fmt.Errorf("disk on fire"),
			debug:   true,
			wantLog: "disk on fire",
			code:    1,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			dres := vault.DeliverTxError(tc.err, tc.debug)
			assert.Equal(t, tc.code, dres.Code)
			assert.True(t, strings.HasPrefix(dres.Log, "cannot deliver tx: "+tc.wantLog), dres.Log)

			cres := vault.CheckTxError(tc.err, tc.debug)
			assert.Equal(t, tc.code, cres.Code)
			assert.True(t, strings.HasPrefix(cres.Log, "cannot check tx: "+tc.wantLog), cres.Log)
		})
	}
}

func TestCreateResults(t *testing.T) {
	tags := []common.KVPair{{Key: []byte("action"), Value: []byte("escrow/deposit")}}
	d, msg := []byte{1, 3, 4}, "got it"
	dres := vault.DeliverResult{Data: d, Log: msg, Tags: tags, GasUsed: 7}
	ad := dres.ToABCI()
	assert.EqualValues(t, d, ad.Data)
	assert.Equal(t, msg, ad.Log)
	assert.Equal(t, tags, ad.Tags)
	assert.Equal(t, int64(7), ad.GasUsed)
	assert.Equal(t, uint32(0), ad.Code)

	cres := vault.CheckResult{Log: "aok", GasAllocated: 12345}
	ac := cres.ToABCI()
	assert.Equal(t, "aok", ac.Log)
	assert.Equal(t, int64(12345), ac.GasWanted)
	assert.Equal(t, uint32(0), ac.Code)
}

func TestResultOrError(t *testing.T) {
	res := vault.DeliverOrError(&vault.DeliverResult{Log: "fine"}, nil, false)
	assert.Equal(t, uint32(0), res.Code)
	assert.Equal(t, "fine", res.Log)

	res = vault.DeliverOrError(nil, errors.ErrUnauthorized, false)
	assert.Equal(t, errors.ErrUnauthorized.ABCICode(), res.Code)

	chk := vault.CheckOrError(&vault.CheckResult{GasAllocated: 50}, nil, false)
	assert.Equal(t, int64(50), chk.GasWanted)

	chk = vault.CheckOrError(nil, errors.ErrInput, false)
	assert.Equal(t, errors.ErrInput.ABCICode(), chk.Code)
}
