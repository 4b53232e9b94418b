/*
Package iavl provides the persistent commit store of the application. State
lives in an IAVL+ tree, every Commit saves a new version and returns its merkle
root, which tendermint records as the app hash.
*/
package iavl

import (
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/store"
	"github.com/tendermint/iavl"
	dbm "github.com/tendermint/tendermint/libs/db"
)

// DefaultCacheSize is the number of tree nodes kept in memory.
const DefaultCacheSize = 10000

// CommitStore is a store.CommitKVStore over an IAVL+ tree.
type CommitStore struct {
	tree *iavl.MutableTree
}

var _ store.CommitKVStore = CommitStore{}

// NewCommitStore creates a new store with disk backing. name is the
// database name within the dir directory.
func NewCommitStore(dir, name string) (CommitStore, error) {
	db, err := dbm.NewGoLevelDB(name, dir)
	if err != nil {
		return CommitStore{}, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return CommitStore{tree: iavl.NewMutableTree(db, DefaultCacheSize)}, nil
}

// NewMemCommitStore creates a store that lives only in memory. Commits
// still produce versions and hashes, which makes it useful for tests.
func NewMemCommitStore() CommitStore {
	return CommitStore{tree: iavl.NewMutableTree(dbm.NewMemDB(), DefaultCacheSize)}
}

// Get reads key from the last saved version, ignoring uncommitted writes.
func (s CommitStore) Get(key []byte) ([]byte, error) {
	_, val := s.tree.GetVersioned(key, s.tree.Version())
	return val, nil
}

// Commit saves the working tree as a new version.
func (s CommitStore) Commit() (store.CommitID, error) {
	hash, version, err := s.tree.SaveVersion()
	if err != nil {
		return store.CommitID{}, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return store.CommitID{Version: version, Hash: hash}, nil
}

// LoadLatestVersion loads the newest complete version from disk. A
// commit interrupted by a crash is never visible.
func (s CommitStore) LoadLatestVersion() error {
	if _, err := s.tree.Load(); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return nil
}

func (s CommitStore) LatestVersion() (store.CommitID, error) {
	return store.CommitID{Version: s.tree.Version(), Hash: s.tree.Hash()}, nil
}

// Adapter returns a wrapped version of the tree.
//
// Data written here is stored in the tree and saved with the next Commit.
func (s CommitStore) Adapter() store.CacheableKVStore {
	return store.BTreeCacheable{KVStore: adapter{tree: s.tree}}
}

// CacheWrap buffers writes in memory until Write passes them to the
// working tree.
func (s CommitStore) CacheWrap() store.KVCacheWrap {
	return s.Adapter().CacheWrap()
}

// adapter converts the working tree into a KVStore.
type adapter struct {
	tree *iavl.MutableTree
}

var _ store.KVStore = adapter{}

func (a adapter) Get(key []byte) ([]byte, error) {
	_, val := a.tree.Get(key)
	return val, nil
}

func (a adapter) Has(key []byte) (bool, error) {
	return a.tree.Has(key), nil
}

func (a adapter) Set(key, value []byte) error {
	a.tree.Set(key, value)
	return nil
}

func (a adapter) Delete(key []byte) error {
	a.tree.Remove(key)
	return nil
}

// NewBatch returns a batch. The tree itself is only persisted by Commit,
// so applying the operations one by one is safe.
func (a adapter) NewBatch() store.Batch {
	return store.NewNonAtomicBatch(a)
}

func (a adapter) Iterator(start, end []byte) (store.Iterator, error) {
	return a.collect(start, end, true), nil
}

func (a adapter) ReverseIterator(start, end []byte) (store.Iterator, error) {
	return a.collect(start, end, false), nil
}

// collect loads the range eagerly, the tree offers callbacks only.
func (a adapter) collect(start, end []byte, ascending bool) store.Iterator {
	var models []store.Model
	a.tree.IterateRange(start, end, ascending, func(key, value []byte) (stop bool) {
		models = append(models, store.Model{Key: key, Value: value})
		return false
	})
	return store.NewSliceIterator(models)
}
