package app

import (
	"testing"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/vaulttest/assert"
)

func TestJoinResults(t *testing.T) {
	models := []vault.Model{
		vault.Pair([]byte("a"), []byte("1")),
		vault.Pair([]byte("b"), nil),
	}
	rawKeys, err := ResultsFromKeys(models).Marshal()
	assert.Nil(t, err)
	rawValues, err := ResultsFromValues(models).Marshal()
	assert.Nil(t, err)

	got, err := toModels(rawKeys, rawValues)
	assert.Nil(t, err)
	assert.Equal(t, 2, len(got))
	assert.Equal(t, []byte("b"), got[1].Key)
	assert.Equal(t, 0, len(got[1].Value))

	_, err = JoinResults(ResultsFromKeys(models), ResultsFromValues(models[:1]))
	assert.IsErr(t, errors.ErrState, err)
}

func TestUnmarshalOneResult(t *testing.T) {
	inner := &ResultSet{Results: [][]byte{[]byte("x")}}
	raw, err := inner.Marshal()
	assert.Nil(t, err)
	outer, err := (&ResultSet{Results: [][]byte{raw, []byte("ignored")}}).Marshal()
	assert.Nil(t, err)

	var got ResultSet
	assert.Nil(t, UnmarshalOneResult(outer, &got))
	assert.Equal(t, [][]byte{[]byte("x")}, got.Results)

	// An empty set leaves the destination untouched.
	empty, err := (&ResultSet{}).Marshal()
	assert.Nil(t, err)
	assert.Nil(t, UnmarshalOneResult(empty, &got))
	assert.Equal(t, [][]byte{[]byte("x")}, got.Results)
}
