package vaulttest

import (
	"crypto/rand"
	"io/ioutil"
	"os"
	"testing"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/crypto"
	"github.com/iov-one/vault/store/iavl"
)

// NewKey returns a fresh ed25519 key.
func NewKey() crypto.Signer {
	return crypto.GenPrivKeyEd25519()
}

// NewCondition returns the signature condition of a fresh key.
func NewCondition() vault.Condition {
	return NewKey().PublicKey().Condition()
}

// RandomAddr returns a valid random address.
func RandomAddr(t testing.TB) vault.Address {
	t.Helper()
	a := make(vault.Address, vault.AddressLength)
	if _, err := rand.Read(a); err != nil {
		t.Fatalf("cannot read random address: %s", err)
	}
	return a
}

// ParseAddress is vault.ParseAddress that fails the test on error.
func ParseAddress(t testing.TB, encoded string) vault.Address {
	t.Helper()
	addr, err := vault.ParseAddress(encoded)
	if err != nil {
		t.Fatalf("cannot parse address %q: %s", encoded, err)
	}
	return addr
}

// CommitKVStore returns an iavl store in a temporary directory, the same
// engine a node runs on. Call cleanup to remove the directory.
func CommitKVStore(t testing.TB) (db vault.CommitKVStore, cleanup func()) {
	t.Helper()
	dir, err := ioutil.TempDir("", "vaulttest")
	if err != nil {
		t.Fatalf("cannot create temporary directory: %s", err)
	}
	cs, err := iavl.NewCommitStore(dir, "db")
	if err != nil {
		os.RemoveAll(dir)
		t.Fatalf("cannot create commit store: %s", err)
	}
	return cs, func() { os.RemoveAll(dir) }
}
