package vault

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/iov-one/vault/errors"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

// Context is the standard library context. Values fixed for a block, such
// as height and chain id, travel through it. Each has a WithX setter and a
// getter. Setters of values that must not change within a block panic when
// the value is already present.
type Context = context.Context

type ctxKey int

const (
	keyHeader ctxKey = iota
	keyHeight
	keyChainID
	keyLogger
	keyBlockTime
)

// DefaultLogger is returned by GetLogger for contexts without a logger.
var DefaultLogger = log.NewNopLogger()

// IsValidChainID tells if a chain id is 6 to 20 characters of letters,
// digits, "_" and "-".
var IsValidChainID = regexp.MustCompile(`^[a-zA-Z0-9_\-]{6,20}$`).MatchString

// withOnce stores value under key and panics if the key is already set.
func withOnce(ctx Context, key ctxKey, name string, value interface{}) Context {
	if ctx.Value(key) != nil {
		panic(name + " already set")
	}
	return context.WithValue(ctx, key, value)
}

// WithHeader stores the block header. It panics if one is set.
func WithHeader(ctx Context, header abci.Header) Context {
	return withOnce(ctx, keyHeader, "Header", header)
}

// GetHeader returns the block header, if any.
func GetHeader(ctx Context) (abci.Header, bool) {
	h, ok := ctx.Value(keyHeader).(abci.Header)
	return h, ok
}

// WithHeight stores the block height. It panics if one is set.
func WithHeight(ctx Context, height int64) Context {
	return withOnce(ctx, keyHeight, "Height", height)
}

// GetHeight returns the block height, if any.
func GetHeight(ctx Context) (int64, bool) {
	h, ok := ctx.Value(keyHeight).(int64)
	return h, ok
}

// WithBlockTime stores the block time converted to UTC.
func WithBlockTime(ctx Context, t time.Time) Context {
	return context.WithValue(ctx, keyBlockTime, t.UTC())
}

// BlockTime returns the time of the current block. A missing or zero time
// is an error.
func BlockTime(ctx Context) (time.Time, error) {
	t, ok := ctx.Value(keyBlockTime).(time.Time)
	if !ok {
		return time.Time{}, errors.Wrap(errors.ErrEmpty, "block time not present in the context")
	}
	if t.IsZero() {
		return t, errors.Wrap(errors.ErrEmpty, "zero block time")
	}
	return t, nil
}

// WithChainID stores the chain id. It panics on an invalid id or if one
// is set.
func WithChainID(ctx Context, chainID string) Context {
	if !IsValidChainID(chainID) {
		panic(fmt.Sprintf("Invalid chain ID: %s", chainID))
	}
	return withOnce(ctx, keyChainID, "Chain ID", chainID)
}

// GetChainID returns the chain id. Every transaction runs with one, so a
// missing id panics.
func GetChainID(ctx Context) string {
	id, ok := ctx.Value(keyChainID).(string)
	if !ok {
		panic("Chain id not present in the context")
	}
	return id
}

// WithLogger replaces the logger of ctx.
func WithLogger(ctx Context, logger log.Logger) Context {
	return context.WithValue(ctx, keyLogger, logger)
}

// GetLogger returns the logger of ctx or DefaultLogger.
func GetLogger(ctx Context) log.Logger {
	if logger, ok := ctx.Value(keyLogger).(log.Logger); ok {
		return logger
	}
	return DefaultLogger
}

// WithLogInfo returns ctx with a logger that adds keyvals to every entry.
func WithLogInfo(ctx Context, keyvals ...interface{}) Context {
	return WithLogger(ctx, GetLogger(ctx).With(keyvals...))
}
