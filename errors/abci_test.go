package errors

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestABCIInfo(t *testing.T) {
	cases := map[string]struct {
		err      error
		debug    bool
		wantCode uint32
		wantLog  string
	}{
		"no error": {
			wantCode: SuccessABCICode,
		},
		"nil kind": {
			err:      (*Error)(nil),
			wantCode: SuccessABCICode,
		},
		"registered kind": {
			err:      ErrUnauthorized,
			wantCode: 2,
			wantLog:  "unauthorized",
		},
		"wrapped kind": {
			err:      Wrap(Wrap(ErrNotFound, "user state"), "withdraw"),
			wantCode: 3,
			wantLog:  "withdraw: user state: not found",
		},
		"group reports its first kind": {
			err:      Append(io.EOF, Field("Amount", ErrInvalidAmount, "")),
			wantCode: 13,
		},
		"internal error is redacted": {
			err:      io.EOF,
			wantCode: 1,
			wantLog:  "internal error",
		},
		"wrapped internal error is redacted": {
			err:      Wrap(io.ErrUnexpectedEOF, "read block"),
			wantCode: 1,
			wantLog:  "internal error",
		},
		"custom coder": {
			err:      frozen{},
			wantCode: 4242,
			wantLog:  "frozen",
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			code, log := ABCIInfo(tc.err, tc.debug)
			assert.Equal(t, tc.wantCode, code)
			if tc.wantLog != "" {
				assert.Equal(t, tc.wantLog, log)
			}
		})
	}
}

func TestABCIInfoInDebugMode(t *testing.T) {
	code, log := ABCIInfo(Wrap(io.EOF, "read block"), true)
	assert.Equal(t, uint32(1), code)
	assert.True(t, strings.HasPrefix(log, "read block: EOF"), log)
	assert.True(t, strings.Contains(log, "errors/abci_test.go"), log)

	code, log = ABCIInfo(frozen{}, true)
	assert.Equal(t, uint32(4242), code)
	assert.Equal(t, "frozen", log)
}

type frozen struct{}

func (frozen) ABCICode() uint32 { return 4242 }

func (frozen) Error() string { return "frozen" }
