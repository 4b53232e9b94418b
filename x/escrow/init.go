package escrow

import (
	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
)

const optKey = "escrow"

// Genesis is the "escrow" section of the genesis file. When present, the
// escrow is initialized at chain start.
type Genesis struct {
	Owner vault.Address `json:"owner"`
	Mint  vault.Address `json:"mint"`
}

// Initializer fulfils the Initializer interface to load data from the
// genesis file.
type Initializer struct{}

var _ vault.Initializer = (*Initializer)(nil)

// FromGenesis initializes the escrow if the genesis declares it. The mint
// must be created by an earlier initializer.
func (*Initializer) FromGenesis(opts vault.Options, db vault.KVStore) error {
	var gen *Genesis
	if err := opts.ReadOptions(optKey, &gen); err != nil {
		return errors.Wrap(err, "cannot load escrow genesis")
	}
	if gen == nil {
		return nil
	}
	if err := gen.Owner.Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	if err := gen.Mint.Validate(); err != nil {
		return errors.Wrap(err, "mint")
	}
	if _, err := initialize(db, gen.Owner, gen.Mint); err != nil {
		return errors.Wrap(err, "initialize escrow")
	}
	return nil
}
