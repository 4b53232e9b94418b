package app

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/vault"
	"github.com/iov-one/vault/codec"
	"github.com/iov-one/vault/errors"
)

// ResultSet holds a list of byte slices. Query responses carry all keys in
// one ResultSet and all values in another.
type ResultSet struct {
	Results [][]byte `protobuf:"bytes,1,rep,name=results,proto3"`
}

var _ vault.Persistent = (*ResultSet)(nil)

type wireResultSet ResultSet

func (m *wireResultSet) Reset()         { *m = wireResultSet{} }
func (m *wireResultSet) String() string { return proto.CompactTextString(m) }
func (*wireResultSet) ProtoMessage()    {}

// Marshal serializes every result, including empty ones.
func (r *ResultSet) Marshal() ([]byte, error) {
	return codec.Marshal((*wireResultSet)(r))
}

// Unmarshal loads the set from its binary form.
func (r *ResultSet) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, (*wireResultSet)(r))
}

// ResultsFromKeys returns a ResultSet of all keys
// given a set of models
func ResultsFromKeys(models []vault.Model) *ResultSet {
	res := make([][]byte, len(models))
	for i, m := range models {
		res[i] = m.Key
	}
	return &ResultSet{Results: res}
}

// ResultsFromValues returns a ResultSet of all values
// given a set of models
func ResultsFromValues(models []vault.Model) *ResultSet {
	res := make([][]byte, len(models))
	for i, m := range models {
		res[i] = m.Value
	}
	return &ResultSet{Results: res}
}

// JoinResults inverts ResultsFromKeys and ResultsFromValues
// and makes then a consistent whole again
func JoinResults(keys, values *ResultSet) ([]vault.Model, error) {
	kref, vref := keys.Results, values.Results
	if len(kref) != len(vref) {
		return nil, errors.Wrapf(errors.ErrState, "%d keys and %d values", len(kref), len(vref))
	}
	mods := make([]vault.Model, len(kref))
	for i := range mods {
		mods[i] = vault.Pair(kref[i], vref[i])
	}
	return mods, nil
}

// UnmarshalOneResult will parse a resultset, and
// it if is not empty, unmarshal the first result into o
func UnmarshalOneResult(bz []byte, o vault.Persistent) error {
	var res ResultSet
	if err := res.Unmarshal(bz); err != nil {
		return err
	}
	if len(res.Results) == 0 {
		return nil
	}
	return o.Unmarshal(res.Results[0])
}
