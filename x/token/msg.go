package token

import (
	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
)

const (
	pathCreateMintMsg = "token/create_mint"
	pathMintToMsg     = "token/mint_to"
	pathTransferMsg   = "token/transfer"
)

// CreateMintMsg declares a new token type.
type CreateMintMsg struct {
	Metadata  *vault.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3"`
	Authority vault.Address   `protobuf:"bytes,2,opt,name=authority,proto3"`
	Decimals  uint32          `protobuf:"varint,3,opt,name=decimals,proto3"`
}

var _ vault.Msg = (*CreateMintMsg)(nil)

func (CreateMintMsg) Path() string {
	return pathCreateMintMsg
}

func (m *CreateMintMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Authority", m.Authority.Validate())
	if m.Decimals > MaxDecimals {
		errs = errors.Append(errs, errors.Field("Decimals", errors.ErrInput, "must not be greater than %d", MaxDecimals))
	}
	return errs
}

// MintToMsg issues new tokens into the associated account of the
// destination owner. The account is created if it does not exist.
type MintToMsg struct {
	Metadata    *vault.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3"`
	Mint        vault.Address   `protobuf:"bytes,2,opt,name=mint,proto3"`
	Destination vault.Address   `protobuf:"bytes,3,opt,name=destination,proto3"`
	Amount      uint64          `protobuf:"varint,4,opt,name=amount,proto3"`
}

var _ vault.Msg = (*MintToMsg)(nil)

func (MintToMsg) Path() string {
	return pathMintToMsg
}

func (m *MintToMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Mint", m.Mint.Validate())
	errs = errors.AppendField(errs, "Destination", m.Destination.Validate())
	if m.Amount == 0 {
		errs = errors.Append(errs, errors.Field("Amount", errors.ErrInvalidAmount, "must be positive"))
	}
	return errs
}

// TransferMsg moves tokens between the associated accounts of the source
// and destination owners. The destination account is created if it does not
// exist.
type TransferMsg struct {
	Metadata    *vault.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3"`
	Mint        vault.Address   `protobuf:"bytes,2,opt,name=mint,proto3"`
	Source      vault.Address   `protobuf:"bytes,3,opt,name=source,proto3"`
	Destination vault.Address   `protobuf:"bytes,4,opt,name=destination,proto3"`
	Amount      uint64          `protobuf:"varint,5,opt,name=amount,proto3"`
	Decimals    uint32          `protobuf:"varint,6,opt,name=decimals,proto3"`
}

var _ vault.Msg = (*TransferMsg)(nil)

func (TransferMsg) Path() string {
	return pathTransferMsg
}

func (m *TransferMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Mint", m.Mint.Validate())
	errs = errors.AppendField(errs, "Source", m.Source.Validate())
	errs = errors.AppendField(errs, "Destination", m.Destination.Validate())
	if m.Amount == 0 {
		errs = errors.Append(errs, errors.Field("Amount", errors.ErrInvalidAmount, "must be positive"))
	}
	if m.Decimals > MaxDecimals {
		errs = errors.Append(errs, errors.Field("Decimals", errors.ErrInput, "must not be greater than %d", MaxDecimals))
	}
	return errs
}

