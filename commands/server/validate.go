package server

import (
	"encoding/json"
	"io/ioutil"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/store"
)

// ValidateGenesis runs the initializer over the app_state of each genesis
// file, discarding the result. The first failing file is reported.
func ValidateGenesis(ini vault.Initializer, genesisPaths []string) error {
	for _, path := range genesisPaths {
		if err := validateGenesis(ini, path); err != nil {
			return errors.Wrap(err, path)
		}
	}
	return nil
}

func validateGenesis(ini vault.Initializer, genesisPath string) error {
	b, err := ioutil.ReadFile(genesisPath)
	if err != nil {
		return errors.Wrap(errors.ErrInput, "cannot read genesis file")
	}

	var genesis struct {
		State vault.Options `json:"app_state"`
	}
	if err := json.Unmarshal(b, &genesis); err != nil {
		return errors.Wrap(errors.ErrInput, "cannot JSON deserialize genesis")
	}

	// Use in memory store because we want to discard the result.
	db := store.MemStore()

	if err := ini.FromGenesis(genesis.State, db); err != nil {
		return errors.Wrap(err, "cannot initialize from genesis")
	}
	return nil
}
