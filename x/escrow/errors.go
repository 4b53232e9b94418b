package escrow

import (
	"github.com/iov-one/vault/errors"
)

var (
	ErrAlreadyInitialized = errors.Register(1020, "escrow already initialized")
	ErrNotInitialized     = errors.Register(1021, "escrow not initialized")
	ErrInsufficientFunds  = errors.Register(1022, "insufficient funds in escrow account")
)
