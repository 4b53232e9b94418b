package store

import (
	"bytes"

	"github.com/google/btree"
)

// btreeDegree keeps the nodes small, cache wraps rarely hold more than a
// handful of writes.
const btreeDegree = 2

// BTreeCacheable gives any KVStore a btree backed CacheWrap.
type BTreeCacheable struct {
	KVStore
}

var _ CacheableKVStore = BTreeCacheable{}

// CacheWrap buffers writes until Write flushes them to the wrapped store.
func (b BTreeCacheable) CacheWrap() KVCacheWrap {
	return newCacheWrap(b.KVStore, b.NewBatch(), nil)
}

// MemStore returns a store without persistence. Writing its cache wraps
// is the only way to change it.
func MemStore() CacheableKVStore {
	var empty EmptyKVStore
	return newCacheWrap(empty, empty.NewBatch(), nil)
}

// entry is a write recorded by a cacheWrap, either a new value or a
// removal.
type entry struct {
	key     []byte
	value   []byte
	deleted bool
}

func (e *entry) Less(than btree.Item) bool {
	return bytes.Compare(e.key, than.(*entry).key) < 0
}

// cacheWrap serves reads from its own writes first and from parent for
// everything else. Writes reach parent only through batch.
type cacheWrap struct {
	tree   *btree.BTree
	free   *btree.FreeList
	parent ReadOnlyKVStore
	batch  Batch
}

var _ KVCacheWrap = (*cacheWrap)(nil)

// newCacheWrap creates a cache over parent. free may be shared between
// nested wraps, a nil list allocates a new one.
func newCacheWrap(parent ReadOnlyKVStore, batch Batch, free *btree.FreeList) *cacheWrap {
	if free == nil {
		free = btree.NewFreeList(btree.DefaultFreeListSize)
	}
	return &cacheWrap{
		tree:   btree.NewWithFreeList(btreeDegree, free),
		free:   free,
		parent: parent,
		batch:  batch,
	}
}

func (c *cacheWrap) CacheWrap() KVCacheWrap {
	return newCacheWrap(c, c.NewBatch(), c.free)
}

func (c *cacheWrap) NewBatch() Batch {
	return NewNonAtomicBatch(c)
}

// Write flushes all buffered writes to the parent and empties the cache.
func (c *cacheWrap) Write() error {
	err := c.batch.Write()
	c.Discard()
	return err
}

// Discard drops the buffered writes. The batch is not reset, a discarded
// wrap must not be written.
func (c *cacheWrap) Discard() {
	c.tree.Clear(true)
}

func (c *cacheWrap) Set(key, value []byte) error {
	c.tree.ReplaceOrInsert(&entry{key: key, value: value})
	return c.batch.Set(key, value)
}

func (c *cacheWrap) Delete(key []byte) error {
	c.tree.ReplaceOrInsert(&entry{key: key, deleted: true})
	return c.batch.Delete(key)
}

func (c *cacheWrap) Get(key []byte) ([]byte, error) {
	if e := c.cached(key); e != nil {
		if e.deleted {
			return nil, nil
		}
		return e.value, nil
	}
	return c.parent.Get(key)
}

func (c *cacheWrap) Has(key []byte) (bool, error) {
	if e := c.cached(key); e != nil {
		return !e.deleted, nil
	}
	return c.parent.Has(key)
}

func (c *cacheWrap) Iterator(start, end []byte) (Iterator, error) {
	parent, err := c.parent.Iterator(start, end)
	if err != nil {
		return nil, err
	}
	it, err := newMergeIterator(c.span(start, end), parent, false)
	if err != nil {
		return nil, err
	}
	return it, nil
}

func (c *cacheWrap) ReverseIterator(start, end []byte) (Iterator, error) {
	parent, err := c.parent.ReverseIterator(start, end)
	if err != nil {
		return nil, err
	}
	entries := c.span(start, end)
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	it, err := newMergeIterator(entries, parent, true)
	if err != nil {
		return nil, err
	}
	return it, nil
}

func (c *cacheWrap) cached(key []byte) *entry {
	if item := c.tree.Get(&entry{key: key}); item != nil {
		return item.(*entry)
	}
	return nil
}

// span returns the cached entries within [start, end) in ascending order.
// A nil bound is open.
func (c *cacheWrap) span(start, end []byte) []*entry {
	var res []*entry
	visit := func(item btree.Item) bool {
		e := item.(*entry)
		if end != nil && bytes.Compare(e.key, end) >= 0 {
			return false
		}
		res = append(res, e)
		return true
	}
	if start == nil {
		c.tree.Ascend(visit)
	} else {
		c.tree.AscendGreaterOrEqual(&entry{key: start}, visit)
	}
	return res
}
