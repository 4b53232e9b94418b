package app

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/crypto"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/x/escrow"
	"github.com/iov-one/vault/x/token"
)

const (
	defaultDecimals = 9
	// maxDecimals keeps the initial balance of 1000 whole tokens within
	// uint64.
	maxDecimals = 16
	// initialWhole is the amount of whole tokens given to the owner.
	initialWhole = 1000
)

// GenInitOptions will produce the app state of a dev chain: one mint with
// the given owner as the authority, 1000 whole tokens in the owner account
// and the escrow configured for that mint.
//
// Arguments are the optional owner address and mint decimals. Without an
// address a new key is generated and printed.
func GenInitOptions(args []string) (json.RawMessage, error) {
	var owner vault.Address
	if len(args) > 0 {
		addr, err := vault.ParseAddress(args[0])
		if err != nil {
			return nil, errors.Wrap(err, "owner address")
		}
		if err := addr.Validate(); err != nil {
			return nil, errors.Wrap(err, "owner address")
		}
		owner = addr
	} else {
		// if no address provided, auto-generate one
		// and print out the keys
		addr, keys, err := GenerateCoinKey()
		if err != nil {
			return nil, err
		}
		owner = addr
		fmt.Println(keys)
	}

	decimals := uint32(defaultDecimals)
	if len(args) > 1 {
		d, err := strconv.ParseUint(args[1], 10, 32)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrInput, "decimals %q", args[1])
		}
		decimals = uint32(d)
	}
	if decimals > maxDecimals {
		return nil, errors.Wrapf(errors.ErrInput, "at most %d decimals supported", maxDecimals)
	}

	amount := uint64(initialWhole)
	for i := uint32(0); i < decimals; i++ {
		amount *= 10
	}

	state := struct {
		Token  token.Genesis  `json:"token"`
		Escrow escrow.Genesis `json:"escrow"`
	}{
		Token: token.Genesis{
			Mints: []token.GenesisMint{{
				Authority: owner,
				Decimals:  decimals,
				Balances:  []token.GenesisBalance{{Owner: owner, Amount: amount}},
			}},
		},
		Escrow: escrow.Genesis{
			Owner: owner,
			Mint:  token.MintAddress(1),
		},
	}
	return json.MarshalIndent(state, "", "  ")
}

type output struct {
	Pubkey *crypto.PublicKey  `json:"pub_key"`
	Secret *crypto.PrivateKey `json:"secret"`
}

// GenerateCoinKey returns the address of a public key,
// along with a json representation of the keys.
// You can give coins to this address and
// import the keys in a client to use them
func GenerateCoinKey() (vault.Address, string, error) {
	privKey := crypto.GenPrivKeyEd25519()
	pubKey := privKey.PublicKey()
	addr := pubKey.Address()

	out := output{Pubkey: pubKey, Secret: privKey}
	keys, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, "", err
	}
	return addr, string(keys), nil
}
