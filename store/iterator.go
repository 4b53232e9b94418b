package store

import (
	"bytes"

	"github.com/iov-one/vault/errors"
)

// mergeIterator walks the cached entries of a cacheWrap and the iterator of
// its parent side by side. A cached entry shadows the parent entry with the
// same key and cached removals are never returned.
type mergeIterator struct {
	cache   []*entry
	parent  Iterator
	reverse bool
}

var _ Iterator = (*mergeIterator)(nil)

// newMergeIterator expects cache to be sorted in the iteration order.
func newMergeIterator(cache []*entry, parent Iterator, reverse bool) (*mergeIterator, error) {
	it := &mergeIterator{cache: cache, parent: parent, reverse: reverse}
	if err := it.skipRemoved(); err != nil {
		it.Close()
		return nil, err
	}
	return it, nil
}

// head reports which side holds the current key. Both are true when a
// cached entry overrides the parent.
func (m *mergeIterator) head() (cache, parent bool) {
	cache = len(m.cache) > 0
	parent = m.parent != nil && m.parent.Valid()
	if !cache || !parent {
		return cache, parent
	}
	cmp := bytes.Compare(m.cache[0].key, m.parent.Key())
	if m.reverse {
		cmp = -cmp
	}
	return cmp <= 0, cmp >= 0
}

func (m *mergeIterator) Valid() bool {
	cache, parent := m.head()
	return cache || parent
}

func (m *mergeIterator) Next() error {
	cache, parent := m.head()
	if !cache && !parent {
		return errors.Wrap(errors.ErrHuman, "iterator advanced past the end")
	}
	if err := m.advance(cache, parent); err != nil {
		return err
	}
	return m.skipRemoved()
}

func (m *mergeIterator) Key() []byte {
	switch cache, parent := m.head(); {
	case cache:
		return m.cache[0].key
	case parent:
		return m.parent.Key()
	}
	panic("iterator advanced past the end")
}

func (m *mergeIterator) Value() []byte {
	switch cache, parent := m.head(); {
	case cache:
		return m.cache[0].value
	case parent:
		return m.parent.Value()
	}
	panic("iterator advanced past the end")
}

func (m *mergeIterator) Close() {
	if m.parent != nil {
		m.parent.Close()
	}
	m.cache = nil
}

func (m *mergeIterator) advance(cache, parent bool) error {
	if cache {
		m.cache = m.cache[1:]
	}
	if parent {
		return m.parent.Next()
	}
	return nil
}

// skipRemoved moves past cached removals together with the parent entries
// they hide.
func (m *mergeIterator) skipRemoved() error {
	for {
		cache, parent := m.head()
		if !cache || !m.cache[0].deleted {
			return nil
		}
		if err := m.advance(cache, parent); err != nil {
			return err
		}
	}
}
