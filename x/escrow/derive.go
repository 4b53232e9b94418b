package escrow

import (
	"crypto/sha256"
	"fmt"

	"filippo.io/edwards25519"
	"github.com/btcsuite/btcutil/base58"
	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/x/token"
)

const (
	// MaxSeeds is the greatest number of seeds a derived address can be
	// built from, not counting the bump.
	MaxSeeds = 16
	// MaxSeedLength is the greatest size in bytes of a single seed.
	MaxSeedLength = 32

	pdaMarker = "ProgramDerivedAddress"

	escrowSeed    = "Escrow"
	userStateSeed = "UserState"
)

// ProgramID identifies this extension in every derived address.
var ProgramID = mustDecodeProgramID("HsWWZRxGbhSi56q9EqHHwpNvPF8sH993MXP6JMvuNjDH")

func mustDecodeProgramID(s string) []byte {
	raw := base58.Decode(s)
	if len(raw) != 32 {
		panic(fmt.Sprintf("invalid program id %q", s))
	}
	return raw
}

// ProgramAddress is a 32 byte key derived from seeds. It is never a valid
// ed25519 public key, so nobody holds a private key for it.
type ProgramAddress []byte

// Condition returns the condition only this extension can grant.
func (p ProgramAddress) Condition() vault.Condition {
	return vault.NewCondition("escrow", "pda", p)
}

// Address returns the vault address of the derived condition.
func (p ProgramAddress) Address() vault.Address {
	return p.Condition().Address()
}

// Equals returns true if both keys are the same.
func (p ProgramAddress) Equals(o ProgramAddress) bool {
	return vault.Address(p).Equals(vault.Address(o))
}

// String returns the base58 form of the key.
func (p ProgramAddress) String() string {
	return base58.Encode(p)
}

// CreateProgramAddress computes the address for given seeds and bump. It
// fails if the result is a point on the ed25519 curve.
func CreateProgramAddress(bump uint8, seeds ...[]byte) (ProgramAddress, error) {
	if err := validateSeeds(seeds); err != nil {
		return nil, err
	}
	key := hashSeeds(bump, seeds)
	if isOnCurve(key) {
		return nil, errors.Wrapf(errors.ErrInput, "bump %d derives a key on the ed25519 curve", bump)
	}
	return key, nil
}

// FindProgramAddress returns the first off curve address for given seeds,
// trying bump values from 255 down to 0. The bump used is returned as well.
func FindProgramAddress(seeds ...[]byte) (ProgramAddress, uint8, error) {
	if err := validateSeeds(seeds); err != nil {
		return nil, 0, err
	}
	for bump := 255; bump >= 0; bump-- {
		key := hashSeeds(uint8(bump), seeds)
		if !isOnCurve(key) {
			return key, uint8(bump), nil
		}
	}
	return nil, 0, errors.Wrap(errors.ErrState, "no off curve address for seeds")
}

func validateSeeds(seeds [][]byte) error {
	if len(seeds) > MaxSeeds {
		return errors.Wrapf(errors.ErrInput, "%d seeds, at most %d allowed", len(seeds), MaxSeeds)
	}
	for i, s := range seeds {
		if len(s) > MaxSeedLength {
			return errors.Wrapf(errors.ErrInput, "seed %d is %d bytes long, at most %d allowed", i, len(s), MaxSeedLength)
		}
	}
	return nil
}

func hashSeeds(bump uint8, seeds [][]byte) []byte {
	h := sha256.New()
	for _, s := range seeds {
		_, _ = h.Write(s)
	}
	_, _ = h.Write([]byte{bump})
	_, _ = h.Write(ProgramID)
	_, _ = h.Write([]byte(pdaMarker))
	return h.Sum(nil)
}

// isOnCurve returns true if key is a valid compressed ed25519 point.
func isOnCurve(key []byte) bool {
	_, err := new(edwards25519.Point).SetBytes(key)
	return err == nil
}

var escrowAddr, escrowBump = mustFind([]byte(escrowSeed))

func mustFind(seeds ...[]byte) (ProgramAddress, uint8) {
	addr, bump, err := FindProgramAddress(seeds...)
	if err != nil {
		panic(err)
	}
	return addr, bump
}

// EscrowAddress returns the address the singleton escrow state is stored
// under, together with its bump.
func EscrowAddress() (ProgramAddress, uint8) {
	return escrowAddr, escrowBump
}

// UserStateAddress returns the address the balance of given owner is stored
// under, together with its bump.
func UserStateAddress(owner vault.Address) (ProgramAddress, uint8, error) {
	return FindProgramAddress([]byte(userStateSeed), owner)
}

// CustodyAddress returns the token account holding all deposits of given
// mint. It is owned by the escrow address.
func CustodyAddress(mint vault.Address) vault.Address {
	return token.AssociatedAddress(escrowAddr.Address(), mint)
}
