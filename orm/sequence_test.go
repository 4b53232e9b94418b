package orm

import (
	"bytes"
	"testing"

	"github.com/iov-one/vault/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequence(t *testing.T) {
	db := store.MemStore()

	cases := map[string]struct {
		bucket     string
		name       string
		increments int64
	}{
		"first sequence":               {"mint", "id", 22},
		"same bucket, different name":  {"mint", "other", 11},
		"different bucket, same name":  {"account", "id", 3},
		"continues a running sequence": {"mint", "id", 18},
	}

	totals := make(map[string]int64)
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			s := NewSequence(tc.bucket, tc.name)
			init, orig, err := s.Current(db)
			require.NoError(t, err)

			var val int64
			for i := int64(0); i < tc.increments; i++ {
				val, err = s.NextInt(db)
				require.NoError(t, err)
			}
			assert.Equal(t, init+tc.increments, val)

			// Raw values must sort the same way as integers.
			_, last, err := s.Current(db)
			require.NoError(t, err)
			assert.Equal(t, 1, bytes.Compare(last, orig))
			totals[tc.bucket+tc.name] += tc.increments
			assert.Equal(t, totals[tc.bucket+tc.name], val)
		})
	}
}

func TestSequenceNextVal(t *testing.T) {
	db := store.MemStore()
	s := NewSequence("mint", "id")

	raw, err := s.NextVal(db)
	require.NoError(t, err)
	assert.Equal(t, EncodeSequence(1), raw)
	assert.Equal(t, int64(1), DecodeSequence(raw))
	assert.Equal(t, int64(0), DecodeSequence(nil))
}
