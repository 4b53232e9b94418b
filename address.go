package vault

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/btcsuite/btcutil/bech32"
	"github.com/iov-one/vault/errors"
)

// AddressLength is the size of every address. It may be changed in an
// init function, never once a store holds addresses.
var AddressLength = 20

// Bech32Prefix is the human readable part of bech32 rendered addresses.
const Bech32Prefix = "vault"

// Address is the truncated sha256 digest of a Condition. Accounts and
// records are keyed by it.
type Address []byte

// NewAddress hashes data into an address. Nil data gives a nil address.
func NewAddress(data []byte) Address {
	if data == nil {
		return nil
	}
	sum := sha256.Sum256(data)
	return Address(sum[:AddressLength])
}

// Validate fails unless the address has AddressLength bytes.
func (a Address) Validate() error {
	if len(a) != AddressLength {
		return errors.Wrapf(errors.ErrInput, "address: %v", a)
	}
	return nil
}

func (a Address) Equals(o Address) bool {
	return bytes.Equal(a, o)
}

// Clone returns a copy that shares no memory with a.
func (a Address) Clone() Address {
	if a == nil {
		return nil
	}
	return append(Address{}, a...)
}

// String prints upper case hex, or "(nil)" for an empty address.
func (a Address) String() string {
	if len(a) == 0 {
		return "(nil)"
	}
	return strings.ToUpper(hex.EncodeToString(a))
}

// Bech32 renders the address with the Bech32Prefix human readable part.
func (a Address) Bech32() (string, error) {
	data, err := bech32.ConvertBits(a, 8, 5, true)
	if err != nil {
		return "", errors.Wrapf(errors.ErrInput, "bech32 payload: %s", err)
	}
	return bech32.Encode(Bech32Prefix, data)
}

// MarshalJSON writes upper case hex instead of the base64 used for
// byte slices.
func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(strings.ToUpper(hex.EncodeToString(a)))
}

// UnmarshalJSON accepts any form understood by ParseAddress.
func (a *Address) UnmarshalJSON(raw []byte) error {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return errors.Wrap(err, "cannot decode json")
	}
	addr, err := ParseAddress(s)
	if err != nil {
		return err
	}
	*a = addr
	return nil
}

// ParseAddress reads "hex:<hex>", "bech32:<bech32>" or
// "cond:<ext>/<type>/<hex data>". Without a prefix the input is hex. An
// empty value yields a nil address.
func ParseAddress(s string) (Address, error) {
	format, value := "hex", s
	if i := strings.IndexByte(s, ':'); i >= 0 {
		format, value = s[:i], s[i+1:]
	}
	if value == "" {
		return nil, nil
	}

	var addr Address
	switch format {
	case "hex":
		raw, err := hex.DecodeString(value)
		if err != nil {
			return nil, errors.Wrap(errors.ErrInput, "cannot decode hex")
		}
		addr = raw
	case "bech32":
		_, data, err := bech32.Decode(value)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrInput, "deserialize bech32: %s", err)
		}
		if addr, err = bech32.ConvertBits(data, 5, 8, false); err != nil {
			return nil, errors.Wrapf(errors.ErrInput, "bech32 payload: %s", err)
		}
	case "cond":
		c, err := conditionFromString(value)
		if err != nil {
			return nil, err
		}
		return c.Address(), nil
	default:
		return nil, errors.Wrapf(errors.ErrType, "unknown format %q", format)
	}
	if err := addr.Validate(); err != nil {
		return nil, err
	}
	return addr, nil
}

// conditionFromString reverses Condition.String.
func conditionFromString(s string) (Condition, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return nil, errors.Wrap(errors.ErrInput, "invalid condition format")
	}
	data, err := hex.DecodeString(parts[2])
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "malformed condition data: %s", err)
	}
	c := NewCondition(parts[0], parts[1], data)
	return c, c.Validate()
}
