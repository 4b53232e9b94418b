package escrow

import (
	"crypto/sha256"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
)

const (
	pathInitializeMsg = "escrow/initialize"
	pathDepositMsg    = "escrow/deposit"
	pathWithdrawMsg   = "escrow/withdraw"
)

// discriminator returns the eight byte instruction tag for given name.
func discriminator(name string) []byte {
	sum := sha256.Sum256([]byte("global:" + name))
	return sum[:8]
}

// InitializeMsg configures the escrow for a single mint. The main signer
// becomes the owner.
type InitializeMsg struct {
	Metadata *vault.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3"`
	Mint     vault.Address   `protobuf:"bytes,2,opt,name=mint,proto3"`
}

var _ vault.Msg = (*InitializeMsg)(nil)

func (InitializeMsg) Path() string {
	return pathInitializeMsg
}

// Discriminator returns the instruction tag.
func (InitializeMsg) Discriminator() []byte {
	return discriminator("initialize")
}

func (m *InitializeMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Mint", m.Mint.Validate())
	return errs
}

// DepositMsg moves tokens from the depositor into the custody account.
type DepositMsg struct {
	Metadata *vault.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3"`
	Amount   uint64          `protobuf:"varint,2,opt,name=amount,proto3"`
	// Depositor defaults to the main signer. If set, it must have signed
	// the transaction.
	Depositor vault.Address `protobuf:"bytes,3,opt,name=depositor,proto3"`
}

var _ vault.Msg = (*DepositMsg)(nil)

func (DepositMsg) Path() string {
	return pathDepositMsg
}

// Discriminator returns the instruction tag.
func (DepositMsg) Discriminator() []byte {
	return discriminator("deposit")
}

func (m *DepositMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if m.Amount == 0 {
		errs = errors.Append(errs, errors.Field("Amount", errors.ErrInvalidAmount, "must be positive"))
	}
	if m.Depositor != nil {
		errs = errors.AppendField(errs, "Depositor", m.Depositor.Validate())
	}
	return errs
}

// WithdrawMsg moves tokens from the custody account back to the main
// signer, up to the amount they deposited.
type WithdrawMsg struct {
	Metadata *vault.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3"`
	Amount   uint64          `protobuf:"varint,2,opt,name=amount,proto3"`
}

var _ vault.Msg = (*WithdrawMsg)(nil)

func (WithdrawMsg) Path() string {
	return pathWithdrawMsg
}

// Discriminator returns the instruction tag.
func (WithdrawMsg) Discriminator() []byte {
	return discriminator("withdraw")
}

func (m *WithdrawMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if m.Amount == 0 {
		errs = errors.Append(errs, errors.Field("Amount", errors.ErrInvalidAmount, "must be positive"))
	}
	return errs
}

