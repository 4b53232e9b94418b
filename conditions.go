package vault

import (
	"bytes"
	"fmt"
	"regexp"

	"github.com/iov-one/vault/errors"
)

// conditionFormat matches "extension/type/data". Data is binary and may
// contain newlines, hence the (?s) flag.
var conditionFormat = regexp.MustCompile(`(?s)^([a-zA-Z0-9_\-]{3,8})/([a-zA-Z0-9_\-]{3,8})/(.+)$`)

// Condition describes who may authorize an action. It is the byte string
// extension/type/data, for example the ed25519 public key of a signer
// under "sigs/ed25519/" or a derived escrow authority. Only the hash of a
// condition, its Address, is ever stored.
type Condition []byte

// NewCondition joins the three sections of a condition.
func NewCondition(ext, typ string, data []byte) Condition {
	c := make(Condition, 0, len(ext)+len(typ)+2+len(data))
	c = append(c, ext...)
	c = append(c, '/')
	c = append(c, typ...)
	c = append(c, '/')
	return append(c, data...)
}

// Parse splits a well formed condition into its sections.
func (c Condition) Parse() (ext, typ string, data []byte, err error) {
	m := conditionFormat.FindSubmatch(c)
	if m == nil {
		return "", "", nil, errors.Wrapf(errors.ErrInput, "condition: %X", []byte(c))
	}
	return string(m[1]), string(m[2]), m[3], nil
}

// Validate fails unless the condition can be parsed.
func (c Condition) Validate() error {
	if !conditionFormat.Match(c) {
		return errors.Wrapf(errors.ErrInput, "condition: %X", []byte(c))
	}
	return nil
}

// Address returns the digest of the condition.
func (c Condition) Address() Address {
	return NewAddress(c)
}

func (c Condition) Equals(o Condition) bool {
	return bytes.Equal(c, o)
}

// String keeps extension and type readable and prints the data as hex.
func (c Condition) String() string {
	ext, typ, data, err := c.Parse()
	if err != nil {
		return fmt.Sprintf("Invalid Condition: %X", []byte(c))
	}
	return fmt.Sprintf("%s/%s/%X", ext, typ, data)
}
