package utils

import (
	"time"

	"github.com/iov-one/vault"
	"github.com/tendermint/tendermint/libs/log"
)

// Logging writes one entry per transaction with its duration in
// microseconds. Failures are logged as errors, accepted deliveries as info
// and accepted checks as debug.
type Logging struct{}

var _ vault.Decorator = Logging{}

func NewLogging() Logging {
	return Logging{}
}

func (Logging) Check(ctx vault.Context, db vault.KVStore, tx vault.Tx, next vault.Checker) (*vault.CheckResult, error) {
	start := time.Now()
	res, err := next.Check(ctx, db, tx)
	l := logEntry(ctx, start, err)
	if err != nil {
		l.Error("")
		return nil, err
	}
	l.Debug(res.Log)
	return res, nil
}

func (Logging) Deliver(ctx vault.Context, db vault.KVStore, tx vault.Tx, next vault.Deliverer) (*vault.DeliverResult, error) {
	start := time.Now()
	res, err := next.Deliver(ctx, db, tx)
	l := logEntry(ctx, start, err)
	if err != nil {
		l.Error("")
		return nil, err
	}
	l.Info(res.Log)
	return res, nil
}

func logEntry(ctx vault.Context, start time.Time, err error) log.Logger {
	l := vault.GetLogger(ctx).With("duration", time.Since(start)/time.Microsecond)
	if err != nil {
		l = l.With("err", err)
	}
	return l
}
