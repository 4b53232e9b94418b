package store

import (
	"bytes"
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/iov-one/vault/vaulttest/assert"
)

// TestSuite checks that a CacheableKVStore implementation and the cache
// wraps it creates behave like every other store. Store packages call it
// from their own tests.
type TestSuite struct {
	open func() (CacheableKVStore, func())
}

// NewTestSuite runs every check on a fresh store returned by open. The
// returned function releases the store.
func NewTestSuite(open func() (base CacheableKVStore, cleanup func())) *TestSuite {
	return &TestSuite{open: open}
}

// GetSet checks that cache wraps read through to their parent and keep
// their own writes until Write.
func (s *TestSuite) GetSet(t *testing.T) {
	base, cleanup := s.open()
	defer cleanup()

	s.AssertGetHas(t, base, []byte("owner"), nil, false)
	assert.Nil(t, base.Set([]byte("owner"), []byte("alice")))
	s.AssertGetHas(t, base, []byte("owner"), []byte("alice"), true)

	cache := base.CacheWrap()
	s.AssertGetHas(t, cache, []byte("owner"), []byte("alice"), true)

	assert.Nil(t, cache.Set([]byte("mint"), []byte("m1")))
	assert.Nil(t, cache.Delete([]byte("owner")))
	s.AssertGetHas(t, cache, []byte("mint"), []byte("m1"), true)
	s.AssertGetHas(t, cache, []byte("owner"), nil, false)
	s.AssertGetHas(t, base, []byte("mint"), nil, false)
	s.AssertGetHas(t, base, []byte("owner"), []byte("alice"), true)

	assert.Nil(t, cache.Write())
	s.AssertGetHas(t, base, []byte("mint"), []byte("m1"), true)
	s.AssertGetHas(t, base, []byte("owner"), nil, false)

	dropped := base.CacheWrap()
	assert.Nil(t, dropped.Set([]byte("owner"), []byte("bob")))
	dropped.Discard()
	s.AssertGetHas(t, base, []byte("owner"), nil, false)
}

// CacheConflicts checks that sibling cache wraps are isolated and that the
// last written one wins.
func (s *TestSuite) CacheConflicts(t *testing.T) {
	base, cleanup := s.open()
	defer cleanup()

	assert.Nil(t, base.Set([]byte("amount"), []byte("10")))
	assert.Nil(t, base.Set([]byte("bump"), []byte("254")))

	first := base.CacheWrap()
	second := base.CacheWrap()
	assert.Nil(t, first.Set([]byte("amount"), []byte("20")))
	assert.Nil(t, first.Delete([]byte("bump")))
	assert.Nil(t, second.Set([]byte("amount"), []byte("30")))

	s.AssertGetHas(t, second, []byte("amount"), []byte("30"), true)
	s.AssertGetHas(t, second, []byte("bump"), []byte("254"), true)

	assert.Nil(t, first.Write())
	s.AssertGetHas(t, base, []byte("amount"), []byte("20"), true)
	s.AssertGetHas(t, base, []byte("bump"), nil, false)

	assert.Nil(t, second.Write())
	s.AssertGetHas(t, base, []byte("amount"), []byte("30"), true)
	s.AssertGetHas(t, base, []byte("bump"), nil, false)
}

// IteratorWithConflicts checks that iteration over a cache wrap returns
// its overrides instead of the parent values and hides its removals.
func (s *TestSuite) IteratorWithConflicts(t *testing.T) {
	base, cleanup := s.open()
	defer cleanup()

	for _, k := range []string{"a", "b", "c", "d"} {
		assert.Nil(t, base.Set([]byte(k), []byte("base-"+k)))
	}
	cache := base.CacheWrap()
	assert.Nil(t, cache.Set([]byte("b"), []byte("cache-b")))
	assert.Nil(t, cache.Delete([]byte("c")))
	assert.Nil(t, cache.Set([]byte("e"), []byte("cache-e")))
	assert.Nil(t, cache.Delete([]byte("f")))

	want := state{
		"a": []byte("base-a"),
		"b": []byte("cache-b"),
		"d": []byte("base-d"),
		"e": []byte("cache-e"),
	}
	for _, r := range []struct{ start, end []byte }{
		{nil, nil},
		{[]byte("b"), nil},
		{nil, []byte("d")},
		{[]byte("b"), []byte("e")},
		{[]byte("c"), []byte("d")},
	} {
		s.assertRange(t, cache, want, r.start, r.end)
	}

	assert.Nil(t, cache.Write())
	s.assertRange(t, base, want, nil, nil)
}

// FuzzIterator compares iteration over random cache wraps with the
// expected content.
func (s *TestSuite) FuzzIterator(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	for round := 0; round < 20; round++ {
		t.Run(fmt.Sprintf("round %d", round), func(t *testing.T) {
			base, cleanup := s.open()
			defer cleanup()

			want := make(state)
			randomWrites(t, rnd, base, want, 30)
			cache := base.CacheWrap()
			randomWrites(t, rnd, cache, want, 30)

			s.assertRange(t, cache, want, nil, nil)
			for i := 0; i < 5; i++ {
				start, end := randomKey(rnd), randomKey(rnd)
				if bytes.Compare(start, end) > 0 {
					start, end = end, start
				}
				s.assertRange(t, cache, want, start, end)
				s.assertRange(t, cache, want, start, nil)
				s.assertRange(t, cache, want, nil, end)
			}
		})
	}
}

// AssertGetHas checks both the Get and Has result for key.
func (s *TestSuite) AssertGetHas(t testing.TB, kv ReadOnlyKVStore, key, val []byte, has bool) {
	t.Helper()
	got, err := kv.Get(key)
	assert.Nil(t, err)
	assert.Equal(t, val, got)
	exists, err := kv.Has(key)
	assert.Nil(t, err)
	assert.Equal(t, has, exists)
}

func (s *TestSuite) assertRange(t testing.TB, kv ReadOnlyKVStore, want state, start, end []byte) {
	t.Helper()

	it, err := kv.Iterator(start, end)
	assert.Nil(t, err)
	assert.Equal(t, want.between(start, end), drain(t, it))

	it, err = kv.ReverseIterator(start, end)
	assert.Nil(t, err)
	reversed := want.between(start, end)
	for i, j := 0, len(reversed)-1; i < j; i, j = i+1, j-1 {
		reversed[i], reversed[j] = reversed[j], reversed[i]
	}
	assert.Equal(t, reversed, drain(t, it))
}

// state is the content a store is expected to hold.
type state map[string][]byte

// between returns the models with a key in [start, end) in ascending order.
func (st state) between(start, end []byte) []Model {
	res := make([]Model, 0, len(st))
	for k, v := range st {
		key := []byte(k)
		if start != nil && bytes.Compare(key, start) < 0 {
			continue
		}
		if end != nil && bytes.Compare(key, end) >= 0 {
			continue
		}
		res = append(res, Model{Key: key, Value: v})
	}
	sort.Slice(res, func(i, j int) bool { return bytes.Compare(res[i].Key, res[j].Key) < 0 })
	return res
}

func drain(t testing.TB, it Iterator) []Model {
	t.Helper()
	defer it.Close()
	res := make([]Model, 0)
	for ; it.Valid(); assert.Nil(t, it.Next()) {
		res = append(res, Model{Key: it.Key(), Value: it.Value()})
	}
	return res
}

// randomWrites sets or deletes n random keys. Keys are drawn from a small
// space so that writes often hit existing keys.
func randomWrites(t testing.TB, rnd *rand.Rand, kv KVStore, want state, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		key := randomKey(rnd)
		if rnd.Intn(4) == 0 {
			assert.Nil(t, kv.Delete(key))
			delete(want, string(key))
			continue
		}
		value := []byte(fmt.Sprintf("value-%d", rnd.Int()))
		assert.Nil(t, kv.Set(key, value))
		want[string(key)] = value
	}
}

func randomKey(rnd *rand.Rand) []byte {
	return []byte{byte('a' + rnd.Intn(8)), byte('a' + rnd.Intn(8))}
}
