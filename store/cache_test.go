package store

import (
	"testing"

	"github.com/iov-one/vault/vaulttest/assert"
)

func openMemStore() (CacheableKVStore, func()) {
	return MemStore(), func() {}
}

func TestMemStoreGetSet(t *testing.T) {
	NewTestSuite(openMemStore).GetSet(t)
}

func TestMemStoreCacheConflicts(t *testing.T) {
	NewTestSuite(openMemStore).CacheConflicts(t)
}

func TestMemStoreIteratorWithConflicts(t *testing.T) {
	NewTestSuite(openMemStore).IteratorWithConflicts(t)
}

func TestMemStoreFuzzIterator(t *testing.T) {
	NewTestSuite(openMemStore).FuzzIterator(t)
}

func TestNestedCacheWraps(t *testing.T) {
	s := NewTestSuite(openMemStore)
	base := MemStore()
	outer := base.CacheWrap()
	inner := outer.CacheWrap()

	k, v := []byte("escrow"), []byte("state")
	assert.Nil(t, inner.Set(k, v))
	s.AssertGetHas(t, outer, k, nil, false)
	inner.Discard()

	inner = outer.CacheWrap()
	assert.Nil(t, inner.Set(k, v))
	assert.Nil(t, inner.Write())
	s.AssertGetHas(t, outer, k, v, true)
	s.AssertGetHas(t, base, k, nil, false)

	assert.Nil(t, outer.Write())
	s.AssertGetHas(t, base, k, v, true)
}
