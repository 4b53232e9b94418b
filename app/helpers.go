package app

import (
	"bytes"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/store"
	abci "github.com/tendermint/tendermint/abci/types"
)

// ABCIStore reads the committed state of an application through its Query
// method. Buckets accept it as a store, so models can be loaded the same
// way handlers load them.
type ABCIStore struct {
	app abci.Application
}

var _ vault.ReadOnlyKVStore = (*ABCIStore)(nil)

// NewABCIStore returns a store reading from given application.
func NewABCIStore(app abci.Application) *ABCIStore {
	return &ABCIStore{app: app}
}

func (a *ABCIStore) query(path string, data []byte) (abci.ResponseQuery, error) {
	res := a.app.Query(abci.RequestQuery{Path: path, Data: data})
	if res.Code != 0 {
		return res, errors.Wrapf(errors.ErrDatabase, "query %s: %s", path, res.Log)
	}
	return res, nil
}

// Get returns the value stored under key, or nil if there is none.
func (a *ABCIStore) Get(key []byte) ([]byte, error) {
	res, err := a.query("/", key)
	if err != nil {
		return nil, err
	}
	var values ResultSet
	if err := values.Unmarshal(res.Value); err != nil {
		return nil, errors.Wrap(err, "values")
	}
	if len(values.Results) == 0 {
		return nil, nil
	}
	return values.Results[0], nil
}

// Has returns true if a value is stored under key.
func (a *ABCIStore) Has(key []byte) (bool, error) {
	v, err := a.Get(key)
	return len(v) > 0, err
}

// Iterator lists the pairs with keys in [start, end). A nil bound is
// open. The whole state is fetched with one prefix query and filtered
// locally, so this is meant for tools and tests only.
func (a *ABCIStore) Iterator(start, end []byte) (vault.Iterator, error) {
	res, err := a.query("/?prefix", nil)
	if err != nil {
		return nil, err
	}
	all, err := toModels(res.Key, res.Value)
	if err != nil {
		return nil, err
	}

	models := make([]vault.Model, 0, len(all))
	for _, m := range all {
		if start != nil && bytes.Compare(m.Key, start) < 0 {
			continue
		}
		if end != nil && bytes.Compare(m.Key, end) >= 0 {
			continue
		}
		models = append(models, m)
	}
	return store.NewSliceIterator(models), nil
}

// ReverseIterator is not supported.
func (a *ABCIStore) ReverseIterator(start, end []byte) (vault.Iterator, error) {
	return nil, errors.Wrap(errors.ErrHuman, "reverse iteration is not supported")
}

// toModels joins the key and value result sets of a prefix query.
func toModels(rawKeys, rawValues []byte) ([]vault.Model, error) {
	var keys, values ResultSet
	if err := keys.Unmarshal(rawKeys); err != nil {
		return nil, errors.Wrap(err, "keys")
	}
	if err := values.Unmarshal(rawValues); err != nil {
		return nil, errors.Wrap(err, "values")
	}
	return JoinResults(&keys, &values)
}
