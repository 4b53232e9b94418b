package app

import (
	"github.com/iov-one/vault"
	"github.com/iov-one/vault/commands"
	"github.com/iov-one/vault/crypto"
	"github.com/iov-one/vault/x"
	"github.com/iov-one/vault/x/escrow"
	"github.com/iov-one/vault/x/sigs"
	"github.com/iov-one/vault/x/token"
)

// examplesChainID is used to sign the example transaction.
const examplesChainID = "vault-examples"

// Examples returns sample encodings of the messages and of a signed
// transaction, for client implementations to test against.
func Examples() []commands.Example {
	key := crypto.PrivKeyEd25519FromSeed(make([]byte, 32))
	owner := key.PublicKey().Address()
	mint := token.MintAddress(1)
	meta := &vault.Metadata{Schema: 1}

	initialize := &escrow.InitializeMsg{Metadata: meta, Mint: mint}
	deposit := &escrow.DepositMsg{Metadata: meta, Amount: 300000000000}
	withdraw := &escrow.WithdrawMsg{Metadata: meta, Amount: 200000000000}
	createMint := &token.CreateMintMsg{Metadata: meta, Authority: owner, Decimals: 9}

	for _, m := range []vault.Msg{initialize, deposit, withdraw, createMint} {
		x.MustValidate(m)
	}

	tx := &Tx{Msg: deposit}
	sig, err := sigs.SignTx(key, tx, examplesChainID, 0)
	if err != nil {
		panic(err)
	}
	tx.Signatures = []*sigs.StdSignature{sig}

	return []commands.Example{
		{Filename: "pub_key", Obj: key.PublicKey()},
		{Filename: "create_mint_msg", Obj: createMint},
		{Filename: "initialize_msg", Obj: initialize},
		{Filename: "deposit_msg", Obj: deposit},
		{Filename: "withdraw_msg", Obj: withdraw},
		{Filename: "signed_deposit_tx", Obj: tx},
	}
}
