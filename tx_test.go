package vault

import (
	"testing"

	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/vaulttest/assert"
)

type demoMsg struct {
	Num int
	err error
}

func (demoMsg) Path() string               { return "demo/msg" }
func (m demoMsg) Validate() error          { return m.err }
func (demoMsg) Marshal() ([]byte, error)   { return []byte("foo"), nil }
func (*demoMsg) Unmarshal(bz []byte) error { return nil }

var _ Msg = (*demoMsg)(nil)

type demoTx struct {
	msg Msg
	err error
}

func (tx demoTx) GetMsg() (Msg, error)    { return tx.msg, tx.err }
func (demoTx) Marshal() ([]byte, error)   { return nil, nil }
func (*demoTx) Unmarshal(bz []byte) error { return nil }

func TestLoadMsg(t *testing.T) {
	cases := map[string]struct {
		tx      Tx
		dest    interface{}
		wantErr *errors.Error
		want    interface{}
	}{
		"message loaded into a value": {
			tx:   &demoTx{msg: &demoMsg{Num: 17}},
			dest: &demoMsg{},
			want: &demoMsg{Num: 17},
		},
		"message loaded into a pointer": {
			tx:   &demoTx{msg: &demoMsg{Num: 4}},
			dest: new(*demoMsg),
			want: func() interface{} { m := &demoMsg{Num: 4}; return &m }(),
		},
		"message is invalid": {
			tx:      &demoTx{msg: &demoMsg{Num: 1, err: errors.ErrInput}},
			dest:    &demoMsg{},
			wantErr: errors.ErrInput,
		},
		"transaction error": {
			tx:      &demoTx{err: errors.ErrState},
			dest:    &demoMsg{},
			wantErr: errors.ErrState,
		},
		"no message": {
			tx:      &demoTx{},
			dest:    &demoMsg{},
			wantErr: errors.ErrMsg,
		},
		"destination of a different type": {
			tx:      &demoTx{msg: &demoMsg{Num: 3}},
			dest:    new(string),
			wantErr: errors.ErrType,
		},
		"destination is not a pointer": {
			tx:      &demoTx{msg: &demoMsg{Num: 3}},
			dest:    demoMsg{},
			wantErr: errors.ErrType,
		},
		"destination is a nil pointer": {
			tx:      &demoTx{msg: &demoMsg{Num: 3}},
			dest:    (*demoMsg)(nil),
			wantErr: errors.ErrType,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := LoadMsg(tc.tx, tc.dest)
			if tc.wantErr != nil {
				assert.IsErr(t, tc.wantErr, err)
				return
			}
			assert.Nil(t, err)
			assert.Equal(t, tc.want, tc.dest)
		})
	}
}

func TestLoadMsgCopiesIntoValue(t *testing.T) {
	msg := &demoMsg{Num: 5}
	var dest demoMsg
	assert.Nil(t, LoadMsg(&demoTx{msg: msg}, &dest))
	assert.Equal(t, 5, dest.Num)

	msg.Num = 6
	assert.Equal(t, 5, dest.Num)
}

func TestValidatePath(t *testing.T) {
	for _, p := range []string{"escrow/deposit", "token/create_mint", "a-b/c_d"} {
		assert.Nil(t, ValidatePath(p))
	}
	for _, p := range []string{"", "escrow", "escrow/", "/deposit", "escrow/deposit/all", "esc row/deposit"} {
		assert.IsErr(t, errors.ErrInput, ValidatePath(p))
	}
}

func TestGetPath(t *testing.T) {
	assert.Equal(t, "demo/msg", GetPath(&demoTx{msg: &demoMsg{}}))
	assert.Equal(t, "(missing)", GetPath(&demoTx{}))
	assert.Equal(t, "(missing)", GetPath(&demoTx{err: errors.ErrMsg}))
}
