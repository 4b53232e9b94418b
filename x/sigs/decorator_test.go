package sigs

import (
	"context"
	"testing"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/crypto"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecorator(t *testing.T) {
	const chainID = "deco-rate"
	ctx := vault.WithChainID(context.Background(), chainID)
	priv := crypto.GenPrivKeyEd25519()
	signer := []vault.Condition{priv.PublicKey().Condition()}

	tx := NewStdTx([]byte("art"))
	first, err := SignTx(priv, tx, chainID, 0)
	require.NoError(t, err)
	second, err := SignTx(priv, tx, chainID, 1)
	require.NoError(t, err)

	steps := []struct {
		name    string
		dec     Decorator
		sigs    []*StdSignature
		wantErr *errors.Error
		signers []vault.Condition
	}{
		{"unsigned", NewDecorator(), nil, errors.ErrUnauthorized, nil},
		{"signed", NewDecorator(), []*StdSignature{first}, nil, signer},
		{"replay", NewDecorator(), []*StdSignature{first}, ErrInvalidSequence, nil},
		{"unsigned allowed", NewDecorator().AllowMissingSigs(), nil, nil, []vault.Condition{}},
		{"next sequence", NewDecorator().AllowMissingSigs(), []*StdSignature{second}, nil, signer},
	}

	run := map[string]func(Decorator, vault.KVStore, *SigCheckHandler) error{
		"check": func(d Decorator, db vault.KVStore, h *SigCheckHandler) error {
			_, err := d.Check(ctx, db, tx, h)
			return err
		},
		"deliver": func(d Decorator, db vault.KVStore, h *SigCheckHandler) error {
			_, err := d.Deliver(ctx, db, tx, h)
			return err
		},
	}
	for phase, fn := range run {
		t.Run(phase, func(t *testing.T) {
			db := store.MemStore()
			for _, s := range steps {
				h := new(SigCheckHandler)
				tx.Signatures = s.sigs
				err := fn(s.dec, db, h)
				if s.wantErr != nil {
					assert.True(t, s.wantErr.Is(err), "%s: %+v", s.name, err)
					continue
				}
				require.NoError(t, err, s.name)
				assert.Equal(t, s.signers, h.Signers, s.name)
			}
		})
	}
}

func TestDecoratorChargesGasPerSignature(t *testing.T) {
	const chainID = "gas-chain"
	ctx := vault.WithChainID(context.Background(), chainID)

	tx := NewStdTx([]byte("payload"))
	for i := 0; i < 2; i++ {
		sig, err := SignTx(crypto.GenPrivKeyEd25519(), tx, chainID, 0)
		require.NoError(t, err)
		tx.Signatures = append(tx.Signatures, sig)
	}

	res, err := NewDecorator().Check(ctx, store.MemStore(), tx, new(SigCheckHandler))
	require.NoError(t, err)
	assert.Equal(t, int64(2*signatureVerifyCost), res.GasAllocated)
}

func TestDecoratorIgnoresUnsignableTx(t *testing.T) {
	ctx := vault.WithChainID(context.Background(), "plain-chain")
	h := new(SigCheckHandler)
	tx := NewStdTx([]byte("payload")).Tx

	_, err := NewDecorator().Deliver(ctx, store.MemStore(), tx, h)
	require.NoError(t, err)
	assert.Nil(t, h.Signers)
}

func TestNextNonceFollowsDeliver(t *testing.T) {
	const chainID = "nonce-chain"
	ctx := vault.WithChainID(context.Background(), chainID)
	kv := store.MemStore()
	priv := crypto.GenPrivKeyEd25519()
	addr := priv.PublicKey().Address()

	for want := int64(0); want < 3; want++ {
		n, err := NextNonce(kv, addr)
		require.NoError(t, err)
		require.Equal(t, want, n)

		tx := NewStdTx([]byte("payload"))
		sig, err := SignTx(priv, tx, chainID, n)
		require.NoError(t, err)
		tx.Signatures = []*StdSignature{sig}
		_, err = NewDecorator().Deliver(ctx, kv, tx, new(SigCheckHandler))
		require.NoError(t, err)
	}
}
