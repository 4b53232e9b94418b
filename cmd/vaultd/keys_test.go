package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeysCmdIsDeterministic(t *testing.T) {
	const seed = "000102030405060708090a0b0c0d0e0f"
	args := []string{"-seed", seed, "-path", "m/0'"}

	var first, second bytes.Buffer
	require.NoError(t, keysCmd(&first, args))
	require.NoError(t, keysCmd(&second, args))
	assert.Equal(t, first.String(), second.String())

	key, err := crypto.PrivKeyEd25519FromPath(seed, "m/0'")
	require.NoError(t, err)
	addr := key.PublicKey().Address()
	assert.Contains(t, first.String(), "address: "+addr.String())

	lines := strings.Split(strings.TrimSpace(first.String()), "\n")
	require.Len(t, lines, 3)
	b32 := strings.TrimSpace(strings.TrimPrefix(lines[1], "bech32:"))
	parsed, err := vault.ParseAddress("bech32:" + b32)
	require.NoError(t, err)
	assert.Equal(t, addr, parsed)
}

func TestKeysCmdRejectsBadSeed(t *testing.T) {
	var out bytes.Buffer
	assert.Error(t, keysCmd(&out, []string{"-seed", "not-hex"}))
}
