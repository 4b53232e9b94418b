package escrow

import (
	"bytes"
	"testing"

	"github.com/iov-one/vault/crypto"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/vaulttest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgramID(t *testing.T) {
	assert.Len(t, ProgramID, 32)
	assert.Equal(t, "HsWWZRxGbhSi56q9EqHHwpNvPF8sH993MXP6JMvuNjDH", ProgramAddress(ProgramID).String())
}

func TestFindProgramAddress(t *testing.T) {
	seeds := [][]byte{[]byte("UserState"), vaulttest.NewCondition().Address()}

	addr, bump, err := FindProgramAddress(seeds...)
	require.NoError(t, err)
	assert.Len(t, addr, 32)
	assert.False(t, isOnCurve(addr), "derived address must not be a public key")

	again, againBump, err := FindProgramAddress(seeds...)
	require.NoError(t, err)
	assert.True(t, addr.Equals(again))
	assert.Equal(t, bump, againBump)

	created, err := CreateProgramAddress(bump, seeds...)
	require.NoError(t, err)
	assert.True(t, addr.Equals(created))

	// Every bump above the found one derives a point on the curve.
	for b := 255; b > int(bump); b-- {
		_, err := CreateProgramAddress(uint8(b), seeds...)
		assert.True(t, errors.ErrInput.Is(err), "bump %d", b)
	}
}

func TestCreateProgramAddressRejectsCurvePoints(t *testing.T) {
	seeds := [][]byte{[]byte("Escrow")}
	for b := 0; b < 256; b++ {
		if !isOnCurve(hashSeeds(uint8(b), seeds)) {
			continue
		}
		_, err := CreateProgramAddress(uint8(b), seeds...)
		assert.True(t, errors.ErrInput.Is(err))
		return
	}
	t.Fatal("no bump derives a curve point")
}

func TestIsOnCurve(t *testing.T) {
	pub := crypto.GenPrivKeyEd25519().PublicKey().GetEd25519()
	assert.True(t, isOnCurve(pub))
}

func TestDistinctSeedsGiveDistinctAddresses(t *testing.T) {
	alice := vaulttest.NewCondition().Address()
	bob := vaulttest.NewCondition().Address()

	escrow, _ := EscrowAddress()
	a, _, err := UserStateAddress(alice)
	require.NoError(t, err)
	b, _, err := UserStateAddress(bob)
	require.NoError(t, err)

	assert.False(t, a.Equals(b))
	assert.False(t, a.Equals(escrow))
	assert.False(t, b.Equals(escrow))

	// Seed boundaries matter only through the hash input, so a tag and an
	// identity cannot be swapped for one another.
	swapped, _, err := FindProgramAddress(alice, []byte("UserState"))
	require.NoError(t, err)
	assert.False(t, a.Equals(swapped))
}

func TestSeedLimits(t *testing.T) {
	_, _, err := FindProgramAddress(bytes.Repeat([]byte{1}, MaxSeedLength+1))
	assert.True(t, errors.ErrInput.Is(err))

	many := make([][]byte, MaxSeeds+1)
	for i := range many {
		many[i] = []byte{byte(i)}
	}
	_, _, err = FindProgramAddress(many...)
	assert.True(t, errors.ErrInput.Is(err))

	_, err = CreateProgramAddress(255, many...)
	assert.True(t, errors.ErrInput.Is(err))

	_, _, err = FindProgramAddress(many[:MaxSeeds]...)
	assert.NoError(t, err)
}

func TestProgramAddressCondition(t *testing.T) {
	addr, _ := EscrowAddress()
	ext, typ, data, err := addr.Condition().Parse()
	require.NoError(t, err)
	assert.Equal(t, "escrow", ext)
	assert.Equal(t, "pda", typ)
	assert.Equal(t, []byte(addr), data)
	assert.Equal(t, addr.Condition().Address(), addr.Address())
	assert.NoError(t, addr.Address().Validate())
}

func TestCustodyAddress(t *testing.T) {
	mint := vaulttest.NewCondition().Address()
	other := vaulttest.NewCondition().Address()
	assert.Equal(t, CustodyAddress(mint), CustodyAddress(mint))
	assert.NotEqual(t, CustodyAddress(mint), CustodyAddress(other))

	escrow, _ := EscrowAddress()
	assert.False(t, escrow.Address().Equals(CustodyAddress(mint)))
}
