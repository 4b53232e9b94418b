package token

import (
	"github.com/iov-one/vault/errors"
)

// token extension reserves 1030 ~ 1039
var (
	// ErrInsufficientSourceFunds is returned when the source account of a
	// transfer does not hold the requested amount.
	ErrInsufficientSourceFunds = errors.Register(1030, "insufficient source funds")

	// ErrMintMismatch is returned when an account does not hold tokens of
	// the requested mint.
	ErrMintMismatch = errors.Register(1031, "mint mismatch")

	// ErrDecimalsMismatch is returned when a checked operation declares a
	// different number of decimals than the mint.
	ErrDecimalsMismatch = errors.Register(1032, "decimals mismatch")
)
