package x

import (
	"context"
	"testing"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/vaulttest"
	"github.com/stretchr/testify/assert"
)

func TestChainAuth(t *testing.T) {
	owner := vaulttest.NewCondition()
	depositor := vaulttest.NewCondition()
	stranger := vaulttest.NewCondition()

	signed := &vaulttest.CtxAuth{Key: "signed"}
	unsigned := &vaulttest.CtxAuth{Key: "unsigned"}
	ctx := signed.SetConditions(context.Background(), depositor)

	cases := map[string]struct {
		auth     Authenticator
		wantMain vault.Condition
		wantAll  []vault.Condition
	}{
		"nothing to authenticate": {
			auth: ChainAuth(),
		},
		"single authenticator": {
			auth:     ChainAuth(&vaulttest.Auth{Signer: owner}),
			wantMain: owner,
			wantAll:  []vault.Condition{owner},
		},
		"conditions keep the order of authenticators": {
			auth:     ChainAuth(signed, unsigned, &vaulttest.Auth{Signer: owner}),
			wantMain: depositor,
			wantAll:  []vault.Condition{depositor, owner},
		},
		"context without conditions": {
			auth: ChainAuth(unsigned),
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			assert.Equal(t, tc.wantMain, MainSigner(ctx, tc.auth))
			assert.Equal(t, tc.wantAll, tc.auth.GetConditions(ctx))
			for _, c := range tc.wantAll {
				assert.True(t, tc.auth.HasAddress(ctx, c.Address()))
			}
			assert.False(t, tc.auth.HasAddress(ctx, stranger.Address()))
		})
	}
}
