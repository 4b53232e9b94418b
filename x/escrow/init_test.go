package escrow

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/store"
	"github.com/iov-one/vault/vaulttest"
	"github.com/iov-one/vault/x/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenesis(t *testing.T) {
	owner := vaulttest.NewCondition().Address()
	authority := vaulttest.NewCondition().Address()

	cases := map[string]struct {
		genesis   string
		wantErr   *errors.Error
		wantState bool
	}{
		"escrow over a genesis mint": {
			genesis: fmt.Sprintf(`{
				"token": {"mints": [{"authority": %q, "decimals": 9}]},
				"escrow": {"owner": %q, "mint": %q}
			}`, authority, owner, token.MintAddress(1)),
			wantState: true,
		},
		"no escrow section": {
			genesis: fmt.Sprintf(`{
				"token": {"mints": [{"authority": %q, "decimals": 9}]}
			}`, authority),
			wantState: false,
		},
		"unknown mint": {
			genesis: fmt.Sprintf(`{
				"escrow": {"owner": %q, "mint": %q}
			}`, owner, token.MintAddress(1)),
			wantErr: errors.ErrNotFound,
		},
		"missing owner": {
			genesis: fmt.Sprintf(`{
				"token": {"mints": [{"authority": %q, "decimals": 9}]},
				"escrow": {"mint": %q}
			}`, authority, token.MintAddress(1)),
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var opts vault.Options
			require.NoError(t, json.Unmarshal([]byte(tc.genesis), &opts))

			db := store.MemStore()
			var tokenInit token.Initializer
			require.NoError(t, tokenInit.FromGenesis(opts, db))

			var init Initializer
			err := init.FromGenesis(opts, db)
			if tc.wantErr != nil {
				assert.True(t, tc.wantErr.Is(err), "unexpected error: %+v", err)
				return
			}
			require.NoError(t, err)

			state, err := LoadState(db)
			if !tc.wantState {
				assert.True(t, ErrNotInitialized.Is(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, owner, state.Owner)
			assert.Equal(t, token.MintAddress(1), state.Mint)

			balance, err := token.Balance(db, CustodyAddress(state.Mint))
			require.NoError(t, err)
			assert.Equal(t, uint64(0), balance)
			require.NoError(t, Audit(db))
		})
	}
}
