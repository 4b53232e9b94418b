package store

import "github.com/iov-one/vault"

// Move references for all storage types into this package
// for shorter names everywhere

type (
	ReadOnlyKVStore  = vault.ReadOnlyKVStore
	SetDeleter       = vault.SetDeleter
	KVStore          = vault.KVStore
	Batch            = vault.Batch
	Iterator         = vault.Iterator
	CacheableKVStore = vault.CacheableKVStore
	KVCacheWrap      = vault.KVCacheWrap
	CommitKVStore    = vault.CommitKVStore
	CommitID         = vault.CommitID
	Model            = vault.Model
)
