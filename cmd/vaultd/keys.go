package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"

	"github.com/iov-one/vault/crypto"
	"github.com/iov-one/vault/errors"
)

// keysCmd derives an ed25519 key and prints its address. Without a seed a
// random key is generated.
func keysCmd(out io.Writer, args []string) error {
	var seed, path string
	keysFlags := flag.NewFlagSet("keys", flag.ContinueOnError)
	keysFlags.StringVar(&seed, "seed", "", "hex encoded master seed, random if empty")
	keysFlags.StringVar(&path, "path", "m/44'/234'/0'", "SLIP-10 derivation path")
	if err := keysFlags.Parse(args); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}

	var key *crypto.PrivateKey
	if seed == "" {
		key = crypto.GenPrivKeyEd25519()
	} else {
		k, err := crypto.PrivKeyEd25519FromPath(seed, path)
		if err != nil {
			return err
		}
		key = k
	}

	addr := key.PublicKey().Address()
	b32, err := addr.Bech32()
	if err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	fmt.Fprintf(out, "address: %s\n", addr)
	fmt.Fprintf(out, "bech32:  %s\n", b32)
	fmt.Fprintf(out, "pubkey:  %s\n", hex.EncodeToString(key.PublicKey().GetEd25519()))
	return nil
}
