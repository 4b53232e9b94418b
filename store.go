package vault

// ReadOnlyKVStore reads keys and ranges. Get returns nil for a missing
// key.
type ReadOnlyKVStore interface {
	Get(key []byte) ([]byte, error)
	Has(key []byte) (bool, error)

	// Iterator walks [start, end) in ascending key order. A nil bound is
	// open. The range must not be written to while the iterator is open.
	Iterator(start, end []byte) (Iterator, error)
	// ReverseIterator walks [start, end) in descending key order.
	ReverseIterator(start, end []byte) (Iterator, error)
}

// SetDeleter is the write half shared by stores and batches. Callers must
// not modify key or value after passing them in.
type SetDeleter interface {
	Set(key, value []byte) error
	Delete(key []byte) error
}

// KVStore is the storage every handler works against.
type KVStore interface {
	ReadOnlyKVStore
	SetDeleter
	NewBatch() Batch
}

// Batch collects writes and applies them with Write.
type Batch interface {
	SetDeleter
	Write() error
}

/*
Iterator is a cursor over a key range:

  it, err := db.Iterator(start, end)
  if err != nil {
    return err
  }
  defer it.Close()
  for ; it.Valid(); err = it.Next() {
    key, value := it.Key(), it.Value()
  }

Key and Value panic once Valid returns false. The returned slices must
not be modified.
*/
type Iterator interface {
	Valid() bool
	Next() error
	Key() []byte
	Value() []byte
	Close()
}

// CacheableKVStore can stack a write cache on top of itself.
type CacheableKVStore interface {
	KVStore
	CacheWrap() KVCacheWrap
}

// KVCacheWrap buffers writes over a parent store and reads through it.
// Write applies the buffer to the parent, Discard drops it. Cache wraps
// nest, which gives savepoint semantics.
type KVCacheWrap interface {
	CacheableKVStore
	Write() error
	Discard()
}

// CommitKVStore is the persistent root store. Each Commit creates a new
// version identified by the merkle root of the state.
type CommitKVStore interface {
	// Get reads the last committed state.
	Get(key []byte) ([]byte, error)
	CacheWrap() KVCacheWrap
	Commit() (CommitID, error)
	// LoadLatestVersion restores the last complete commit, also after a
	// crash in the middle of one.
	LoadLatestVersion() error
	LatestVersion() (CommitID, error)
}

// CommitID identifies a committed version.
type CommitID struct {
	Version int64
	Hash    []byte
}
