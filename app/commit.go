package app

import (
	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
)

// CommitStore keeps the committed state together with the two caches that
// collect writes between commits: one for DeliverTx and a throwaway one
// for CheckTx.
type CommitStore struct {
	committed vault.CommitKVStore
	deliver   vault.KVCacheWrap
	check     vault.KVCacheWrap
}

// NewCommitStore loads the latest version of db. It panics if the state on
// disk cannot be read.
func NewCommitStore(db vault.CommitKVStore) *CommitStore {
	if err := db.LoadLatestVersion(); err != nil {
		panic(err)
	}
	cs := &CommitStore{committed: db}
	cs.reset()
	return cs
}

func (cs *CommitStore) reset() {
	cs.deliver = cs.committed.CacheWrap()
	cs.check = cs.committed.CacheWrap()
}

// CommitInfo returns the version and hash of the last commit.
func (cs *CommitStore) CommitInfo() (vault.CommitID, error) {
	return cs.committed.LatestVersion()
}

// Commit writes the deliver cache into the committed state and persists
// it. Pending check writes are dropped.
func (cs *CommitStore) Commit() (vault.CommitID, error) {
	if err := cs.deliver.Write(); err != nil {
		return vault.CommitID{}, errors.Wrap(err, "flush deliver cache")
	}
	cs.check.Discard()
	id, err := cs.committed.Commit()
	if err != nil {
		return id, err
	}
	cs.reset()
	return id, nil
}

// CheckStore is the state used by CheckTx.
func (cs *CommitStore) CheckStore() vault.CacheableKVStore {
	return cs.check
}

// DeliverStore is the state used by DeliverTx and genesis.
func (cs *CommitStore) DeliverStore() vault.CacheableKVStore {
	return cs.deliver
}

// The "_wv:" prefix is reserved for data owned by the application itself.
var chainIDKey = []byte("_wv:chainID")

// loadChainID returns the stored chain id or an empty string before
// genesis.
func loadChainID(db vault.ReadOnlyKVStore) (string, error) {
	raw, err := db.Get(chainIDKey)
	if err != nil {
		return "", errors.Wrap(err, "load chain id")
	}
	return string(raw), nil
}

// saveChainID writes the chain id once. A second write is refused.
func saveChainID(db vault.KVStore, chainID string) error {
	if !vault.IsValidChainID(chainID) {
		return errors.Wrapf(errors.ErrInput, "chain id: %v", chainID)
	}
	switch ok, err := db.Has(chainIDKey); {
	case err != nil:
		return errors.Wrap(err, "load chain id")
	case ok:
		return errors.Wrap(errors.ErrUnauthorized, "chain id is set at genesis only")
	}
	if err := db.Set(chainIDKey, []byte(chainID)); err != nil {
		return errors.Wrap(err, "save chain id")
	}
	return nil
}
