package sigs

import (
	"testing"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/crypto"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSignBytes(t *testing.T) {
	const chainID = "test-sign-bytes"
	payload := []byte("foobar")

	base, err := BuildSignBytes(payload, chainID, 17)
	require.NoError(t, err)
	assert.Len(t, base, 64)

	fromTx, err := BuildSignBytesTx(NewStdTx(payload), chainID, 17)
	require.NoError(t, err)
	assert.Equal(t, base, fromTx)

	variants := map[string]struct {
		payload []byte
		chainID string
		seq     int64
	}{
		"payload":  {[]byte("blast"), chainID, 17},
		"chain id": {payload, chainID + "2", 17},
		"sequence": {payload, chainID, 18},
	}
	for name, v := range variants {
		t.Run(name, func(t *testing.T) {
			got, err := BuildSignBytes(v.payload, v.chainID, v.seq)
			require.NoError(t, err)
			assert.NotEqual(t, base, got)
		})
	}

	_, err = BuildSignBytes(payload, chainID, -1)
	assert.True(t, ErrInvalidSequence.Is(err))
	_, err = BuildSignBytes(payload, "short", 0)
	assert.True(t, errors.ErrInput.Is(err))
}

func TestVerifySignature(t *testing.T) {
	const chainID = "emo-music-2345"
	priv := crypto.GenPrivKeyEd25519()
	payload := []byte("my special valentine")
	tx := NewStdTx(payload)

	sign := func(seq int64) *StdSignature {
		sig, err := SignTx(priv, tx, chainID, seq)
		require.NoError(t, err)
		return sig
	}

	again, err := SignTx(priv, tx, chainID, 2)
	require.NoError(t, err)
	assert.Equal(t, sign(2), again, "ed25519 signatures are deterministic")

	tampered := sign(2)
	tampered.Signature = &crypto.Signature{Ed25519: append([]byte{}, tampered.Signature.Ed25519...)}
	tampered.Signature.Ed25519[0] ^= 0xFF

	kv := store.MemStore()
	steps := []struct {
		name    string
		sig     *StdSignature
		chainID string
		wantErr *errors.Error
	}{
		{"sequence must start at zero", sign(1), chainID, ErrInvalidSequence},
		{"empty signature", new(StdSignature), chainID, errors.ErrUnauthorized},
		{"first", sign(0), chainID, nil},
		{"second", sign(1), chainID, nil},
		{"replay", sign(1), chainID, ErrInvalidSequence},
		{"gap", sign(13), chainID, ErrInvalidSequence},
		{"other chain", sign(2), "metal-2345", errors.ErrUnauthorized},
		{"invalid chain id", sign(2), "metal", errors.ErrInput},
		{"tampered", tampered, chainID, errors.ErrUnauthorized},
		{"third", sign(2), chainID, nil},
	}
	for _, s := range steps {
		cond, err := VerifySignature(kv, s.sig, payload, s.chainID)
		if s.wantErr != nil {
			assert.True(t, s.wantErr.Is(err), "%s: %+v", s.name, err)
			continue
		}
		require.NoError(t, err, s.name)
		assert.Equal(t, priv.PublicKey().Condition(), cond, s.name)
	}

	n, err := NextNonce(kv, priv.PublicKey().Address())
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestVerifyTxSignatures(t *testing.T) {
	const chainID = "hot_summer_days"
	alice := crypto.GenPrivKeyEd25519()
	bob := crypto.GenPrivKeyEd25519()
	tx := NewStdTx([]byte("ice cream"))
	other := NewStdTx([]byte("sorbet"))

	sign := func(key *crypto.PrivateKey, tx SignedTx, seq int64) *StdSignature {
		sig, err := SignTx(key, tx, chainID, seq)
		require.NoError(t, err)
		return sig
	}

	kv := store.MemStore()
	cases := []struct {
		name string
		sigs []*StdSignature
		want []vault.Condition
		ok   bool
	}{
		{"unsigned", nil, []vault.Condition{}, true},
		{"signed another payload", []*StdSignature{sign(alice, other, 0)}, nil, false},
		{"one signer", []*StdSignature{sign(alice, tx, 0)}, []vault.Condition{alice.PublicKey().Condition()}, true},
		{"replay next to a new signer", []*StdSignature{sign(alice, tx, 0), sign(bob, tx, 0)}, nil, false},
		{
			"two signers",
			[]*StdSignature{sign(alice, tx, 1), sign(bob, tx, 0)},
			[]vault.Condition{alice.PublicKey().Condition(), bob.PublicKey().Condition()},
			true,
		},
	}
	for _, tc := range cases {
		tx.Signatures = tc.sigs
		got, err := VerifyTxSignatures(kv, tx, chainID)
		if !tc.ok {
			assert.Error(t, err, tc.name)
			continue
		}
		require.NoError(t, err, tc.name)
		assert.Equal(t, tc.want, got, tc.name)
	}
}
