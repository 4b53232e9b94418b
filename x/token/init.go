package token

import (
	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
)

const optKey = "token"

// Genesis is the "token" section of the genesis file.
type Genesis struct {
	Mints []GenesisMint `json:"mints"`
}

// GenesisMint declares a mint together with its initial balances. Mints
// are created in declaration order, so the n-th mint is stored under
// MintAddress(n).
type GenesisMint struct {
	Authority vault.Address    `json:"authority"`
	Decimals  uint32           `json:"decimals"`
	Balances  []GenesisBalance `json:"balances"`
}

// GenesisBalance is an initial balance of the owner's associated account.
type GenesisBalance struct {
	Owner  vault.Address `json:"owner"`
	Amount uint64        `json:"amount"`
}

// Initializer fulfils the Initializer interface to load data from the
// genesis file.
type Initializer struct{}

var _ vault.Initializer = (*Initializer)(nil)

// FromGenesis will parse initial mint info from genesis and save it to the
// database.
func (*Initializer) FromGenesis(opts vault.Options, db vault.KVStore) error {
	var gen Genesis
	if err := opts.ReadOptions(optKey, &gen); err != nil {
		return errors.Wrap(err, "cannot load token genesis")
	}
	for i, gm := range gen.Mints {
		if err := gm.Authority.Validate(); err != nil {
			return errors.Wrapf(err, "mint %d authority", i)
		}
		mint, err := CreateMint(db, gm.Authority, gm.Decimals)
		if err != nil {
			return errors.Wrapf(err, "mint %d", i)
		}
		m, err := GetMint(db, mint)
		if err != nil {
			return err
		}
		for _, b := range gm.Balances {
			if err := b.Owner.Validate(); err != nil {
				return errors.Wrapf(err, "mint %d balance owner", i)
			}
			if b.Amount == 0 {
				continue
			}
			account, err := EnsureAccount(db, b.Owner, mint)
			if err != nil {
				return err
			}
			if err := issue(db, m, mint, account, b.Amount); err != nil {
				return errors.Wrapf(err, "mint %d balance %s", i, b.Owner)
			}
		}
	}
	return nil
}
