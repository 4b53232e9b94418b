package store

import (
	"github.com/iov-one/vault/errors"
)

// SliceIterator iterates over models that are already loaded.
type SliceIterator struct {
	models []Model
}

var _ Iterator = (*SliceIterator)(nil)

// NewSliceIterator iterates over models in the given order.
func NewSliceIterator(models []Model) *SliceIterator {
	return &SliceIterator{models: models}
}

func (s *SliceIterator) Valid() bool {
	return len(s.models) > 0
}

func (s *SliceIterator) Next() error {
	if !s.Valid() {
		return errors.Wrap(errors.ErrHuman, "iterator advanced past the end")
	}
	s.models = s.models[1:]
	return nil
}

func (s *SliceIterator) Key() []byte {
	return s.current().Key
}

func (s *SliceIterator) Value() []byte {
	return s.current().Value
}

func (s *SliceIterator) Close() {
	s.models = nil
}

func (s *SliceIterator) current() Model {
	if !s.Valid() {
		panic("iterator advanced past the end")
	}
	return s.models[0]
}

// EmptyKVStore holds nothing and ignores writes. It is the bottom layer of
// MemStore.
type EmptyKVStore struct{}

var _ KVStore = EmptyKVStore{}

func (EmptyKVStore) Get([]byte) ([]byte, error) { return nil, nil }

func (EmptyKVStore) Has([]byte) (bool, error) { return false, nil }

func (EmptyKVStore) Set(key, value []byte) error { return nil }

func (EmptyKVStore) Delete([]byte) error { return nil }

func (e EmptyKVStore) NewBatch() Batch { return NewNonAtomicBatch(e) }

func (EmptyKVStore) Iterator(start, end []byte) (Iterator, error) {
	return NewSliceIterator(nil), nil
}

func (EmptyKVStore) ReverseIterator(start, end []byte) (Iterator, error) {
	return NewSliceIterator(nil), nil
}

// NonAtomicBatch records writes and replays them on Write. A failure
// halfway leaves the earlier writes applied, so only use it over stores
// that live in memory.
type NonAtomicBatch struct {
	out SetDeleter
	ops []func(SetDeleter) error
}

var _ Batch = (*NonAtomicBatch)(nil)

// NewNonAtomicBatch returns an empty batch writing to out.
func NewNonAtomicBatch(out SetDeleter) *NonAtomicBatch {
	return &NonAtomicBatch{out: out}
}

func (b *NonAtomicBatch) Set(key, value []byte) error {
	b.ops = append(b.ops, func(out SetDeleter) error { return out.Set(key, value) })
	return nil
}

func (b *NonAtomicBatch) Delete(key []byte) error {
	b.ops = append(b.ops, func(out SetDeleter) error { return out.Delete(key) })
	return nil
}

// Write applies the recorded writes in order and empties the batch.
func (b *NonAtomicBatch) Write() error {
	ops := b.ops
	b.ops = nil
	for _, op := range ops {
		if err := op(b.out); err != nil {
			return err
		}
	}
	return nil
}

// Len returns the number of writes waiting for Write.
func (b *NonAtomicBatch) Len() int {
	return len(b.ops)
}
