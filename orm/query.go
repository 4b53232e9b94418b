package orm

import (
	"bytes"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
)

// ConsumeIterator drains it into a slice and closes it.
func ConsumeIterator(it vault.Iterator) ([]vault.Model, error) {
	defer it.Close()
	var models []vault.Model
	for it.Valid() {
		models = append(models, vault.Pair(it.Key(), it.Value()))
		if err := it.Next(); err != nil {
			return nil, err
		}
	}
	return models, nil
}

func queryPrefix(db vault.ReadOnlyKVStore, prefix []byte) ([]vault.Model, error) {
	it, err := db.Iterator(prefix, prefixRangeEnd(prefix))
	if err != nil {
		return nil, err
	}
	return ConsumeIterator(it)
}

// prefixRangeEnd returns the smallest key greater than every key starting
// with prefix, or nil when there is none.
func prefixRangeEnd(prefix []byte) []byte {
	trimmed := bytes.TrimRight(prefix, "\xff")
	if len(trimmed) == 0 {
		return nil
	}
	end := append([]byte{}, trimmed...)
	end[len(end)-1]++
	return end
}

// RegisterQuery serves raw store access, without bucket prefixes, under
// "/".
func RegisterQuery(qr vault.QueryRouter) {
	qr.Register("/", rawQuery{})
}

type rawQuery struct{}

func (rawQuery) Query(db vault.ReadOnlyKVStore, mod string, data []byte) ([]vault.Model, error) {
	switch mod {
	case vault.KeyQueryMod:
		value, err := db.Get(data)
		if err != nil || value == nil {
			return nil, err
		}
		return []vault.Model{vault.Pair(data, value)}, nil
	case vault.PrefixQueryMod:
		return queryPrefix(db, data)
	}
	return nil, errors.Wrapf(errors.ErrInput, "unknown mod: %s", mod)
}
