package vault

import (
	"github.com/iov-one/vault/errors"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/common"
)

// CheckResult is what a handler reports for an accepted CheckTx. Failures
// are returned as errors, never encoded in a result.
type CheckResult struct {
	// Data is machine readable, for example the key of a new record.
	Data []byte
	Log  string
	// GasAllocated bounds the work the transaction may cause.
	GasAllocated int64
}

// ToABCI converts the result into the tendermint response.
func (c CheckResult) ToABCI() abci.ResponseCheckTx {
	return abci.ResponseCheckTx{Data: c.Data, Log: c.Log, GasWanted: c.GasAllocated}
}

// DeliverResult is what a handler reports for an executed DeliverTx.
type DeliverResult struct {
	Data []byte
	Log  string
	// Tags are indexed by tendermint and make transactions searchable.
	Tags    []common.KVPair
	GasUsed int64
}

// ToABCI converts the result into the tendermint response.
func (d DeliverResult) ToABCI() abci.ResponseDeliverTx {
	return abci.ResponseDeliverTx{Data: d.Data, Log: d.Log, Tags: d.Tags, GasUsed: d.GasUsed}
}

// CheckOrError returns the response for err, or for result if err is nil.
func CheckOrError(result *CheckResult, err error, debug bool) abci.ResponseCheckTx {
	if err != nil {
		return CheckTxError(err, debug)
	}
	return result.ToABCI()
}

// DeliverOrError returns the response for err, or for result if err is
// nil.
func DeliverOrError(result *DeliverResult, err error, debug bool) abci.ResponseDeliverTx {
	if err != nil {
		return DeliverTxError(err, debug)
	}
	return result.ToABCI()
}

// CheckTxError turns err into a failed CheckTx response. Outside of debug
// mode internal errors are redacted.
func CheckTxError(err error, debug bool) abci.ResponseCheckTx {
	code, log := abciError("check", err, debug)
	return abci.ResponseCheckTx{Code: code, Log: log}
}

// DeliverTxError turns err into a failed DeliverTx response.
func DeliverTxError(err error, debug bool) abci.ResponseDeliverTx {
	code, log := abciError("deliver", err, debug)
	return abci.ResponseDeliverTx{Code: code, Log: log}
}

func abciError(phase string, err error, debug bool) (uint32, string) {
	code, log := errors.ABCIInfo(err, debug)
	if code == errors.SuccessABCICode {
		return code, log
	}
	return code, "cannot " + phase + " tx: " + log
}
