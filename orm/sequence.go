package orm

import (
	"encoding/binary"

	"github.com/iov-one/vault"
)

// Sequence is a persistent counter stored under "_s.<bucket>:<name>".
// Its values are encoded big endian, so that byte order and numeric order
// agree and they can be used as keys.
type Sequence struct {
	key []byte
}

func NewSequence(bucket, name string) Sequence {
	return Sequence{key: []byte("_s." + bucket + ":" + name)}
}

// NextInt increments the counter and returns the new value. The first
// value is 1.
func (s Sequence) NextInt(db vault.KVStore) (int64, error) {
	n, _, err := s.Current(db)
	if err != nil {
		return 0, err
	}
	n++
	return n, db.Set(s.key, EncodeSequence(n))
}

// NextVal is NextInt returning the encoded value.
func (s Sequence) NextVal(db vault.KVStore) ([]byte, error) {
	n, err := s.NextInt(db)
	if err != nil {
		return nil, err
	}
	return EncodeSequence(n), nil
}

// Current returns the last value handed out without changing the
// counter. An unused sequence is at zero.
func (s Sequence) Current(db vault.ReadOnlyKVStore) (int64, []byte, error) {
	raw, err := db.Get(s.key)
	if err != nil {
		return 0, nil, err
	}
	return DecodeSequence(raw), raw, nil
}

// EncodeSequence returns n as 8 big endian bytes.
func EncodeSequence(n int64) []byte {
	var raw [8]byte
	binary.BigEndian.PutUint64(raw[:], uint64(n))
	return raw[:]
}

// DecodeSequence reverses EncodeSequence. Nil decodes to zero.
func DecodeSequence(raw []byte) int64 {
	if raw == nil {
		return 0
	}
	return int64(binary.BigEndian.Uint64(raw))
}
