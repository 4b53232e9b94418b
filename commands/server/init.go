package server

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/iov-one/vault/errors"
	cmn "github.com/tendermint/tendermint/libs/common"
	"github.com/tendermint/tendermint/libs/log"
)

// GenOptions can parse command-line and flag to
// generate default app_state for the genesis file.
// This is application-specific
type GenOptions func(args []string) (json.RawMessage, error)

// GenesisDoc involves some tendermint-specific structures we don't
// want to parse, so we just grab it into a raw object format,
// so we can add one line.
type GenesisDoc map[string]json.RawMessage

// GenesisPath returns the location of the genesis file under home.
func GenesisPath(home string) string {
	return filepath.Join(home, "config", "genesis.json")
}

// InitCmd will add the application state to the genesis file under home. A
// missing genesis file is created with a random chain ID. Tendermint fills
// in the validator set when it runs its own init over the same home.
func InitCmd(gen GenOptions, logger log.Logger, home string, args []string) error {
	genFile := GenesisPath(home)
	if !fileExists(genFile) {
		if err := writeEmptyGenesis(genFile); err != nil {
			return err
		}
		logger.Info("Generated genesis file", "path", genFile)
	}

	// no app_state, leave like tendermint
	if gen == nil {
		return nil
	}

	// Now, we want to add the custom app_state
	appState, err := gen(args)
	if err != nil {
		return err
	}
	if err := addGenesisOptions(genFile, appState); err != nil {
		return err
	}
	logger.Info("App state written", "path", genFile)
	return nil
}

func fileExists(filePath string) bool {
	_, err := os.Stat(filePath)
	return !os.IsNotExist(err)
}

func writeEmptyGenesis(filename string) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	chainID, err := json.Marshal("vault-" + cmn.RandStr(6))
	if err != nil {
		return err
	}
	doc := GenesisDoc{"chain_id": chainID}
	return writeGenesis(filename, doc)
}

func addGenesisOptions(filename string, appState json.RawMessage) error {
	bz, err := ioutil.ReadFile(filename)
	if err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}

	var doc GenesisDoc
	if err := json.Unmarshal(bz, &doc); err != nil {
		return errors.Wrap(errors.ErrInput, "cannot parse genesis file")
	}

	doc["app_state"] = appState
	return writeGenesis(filename, doc)
}

func writeGenesis(filename string, doc GenesisDoc) error {
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	if err := ioutil.WriteFile(filename, out, 0600); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	return nil
}
