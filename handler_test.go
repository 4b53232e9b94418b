package vault

import (
	"encoding/json"
	"testing"

	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/vaulttest/assert"
)

func TestReadOptions(t *testing.T) {
	var o Options
	assert.Nil(t, json.Unmarshal([]byte(`{"escrow": {"owner": "abc"}, "broken": [1, 2]}`), &o))

	var conf struct {
		Owner string `json:"owner"`
	}
	assert.Nil(t, o.ReadOptions("escrow", &conf))
	assert.Equal(t, "abc", conf.Owner)

	conf.Owner = "unchanged"
	assert.Nil(t, o.ReadOptions("missing", &conf))
	assert.Equal(t, "unchanged", conf.Owner)

	if err := o.ReadOptions("broken", &conf); err == nil {
		t.Fatal("want an error for a mismatched genesis section")
	}
}

type recordingInit struct {
	name  string
	calls *[]string
	err   error
}

func (r recordingInit) FromGenesis(Options, KVStore) error {
	*r.calls = append(*r.calls, r.name)
	return r.err
}

func TestChainInitializers(t *testing.T) {
	var calls []string
	ok := ChainInitializers(
		recordingInit{name: "token", calls: &calls},
		recordingInit{name: "escrow", calls: &calls},
	)
	assert.Nil(t, ok.FromGenesis(Options{}, nil))
	assert.Equal(t, []string{"token", "escrow"}, calls)

	calls = nil
	failing := ChainInitializers(
		recordingInit{name: "token", calls: &calls, err: errors.ErrNotFound},
		recordingInit{name: "escrow", calls: &calls},
	)
	assert.IsErr(t, errors.ErrNotFound, failing.FromGenesis(Options{}, nil))
	assert.Equal(t, []string{"token"}, calls)
}
