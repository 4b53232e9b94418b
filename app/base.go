package app

import (
	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	abci "github.com/tendermint/tendermint/abci/types"
)

// BaseApp is a complete abci.Application. Transactions are decoded and
// passed to a single handler, usually a decorator chain ending in a Router.
type BaseApp struct {
	*StoreApp
	decoder vault.TxDecoder
	handler vault.Handler
}

var _ abci.Application = BaseApp{}

// NewBaseApp wires decoder and handler on top of the given StoreApp. With
// debug set, error responses carry the full error chain.
func NewBaseApp(s *StoreApp, decoder vault.TxDecoder, handler vault.Handler, debug bool) BaseApp {
	return BaseApp{
		StoreApp: s.WithDebug(debug),
		decoder:  decoder,
		handler:  handler,
	}
}

// CheckTx runs the transaction against the check state.
func (b BaseApp) CheckTx(raw []byte) abci.ResponseCheckTx {
	tx, err := b.decode(raw)
	if err != nil {
		return vault.CheckTxError(err, b.debug)
	}
	ctx := b.txContext("check_tx", tx)
	res, err := b.handler.Check(ctx, b.CheckStore(), tx)
	return vault.CheckOrError(res, err, b.debug)
}

// DeliverTx runs the transaction against the deliver state.
func (b BaseApp) DeliverTx(raw []byte) abci.ResponseDeliverTx {
	tx, err := b.decode(raw)
	if err != nil {
		return vault.DeliverTxError(err, b.debug)
	}
	ctx := b.txContext("deliver_tx", tx)
	res, err := b.handler.Deliver(ctx, b.DeliverStore(), tx)
	return vault.DeliverOrError(res, err, b.debug)
}

func (b BaseApp) txContext(call string, tx vault.Tx) vault.Context {
	return vault.WithLogInfo(b.BlockContext(), "call", call, "path", vault.GetPath(tx))
}

// decode turns a decoder panic on hostile input into an error.
func (b BaseApp) decode(raw []byte) (tx vault.Tx, err error) {
	defer errors.Recover(&err)
	return b.decoder(raw)
}
