package vault

import (
	"encoding/json"
)

// Checker validates a transaction against the check state.
type Checker interface {
	Check(ctx Context, store KVStore, tx Tx) (*CheckResult, error)
}

// Deliverer executes a transaction against the deliver state.
type Deliverer interface {
	Deliver(ctx Context, store KVStore, tx Tx) (*DeliverResult, error)
}

// Handler processes the messages of one extension, for example escrow
// deposits.
type Handler interface {
	Checker
	Deliverer
}

// Decorator runs around the rest of the handler stack, passed in as next.
// Authentication, logging and savepoints are decorators.
type Decorator interface {
	Check(ctx Context, store KVStore, tx Tx, next Checker) (*CheckResult, error)
	Deliver(ctx Context, store KVStore, tx Tx, next Deliverer) (*DeliverResult, error)
}

// Registry binds messages to their handler.
type Registry interface {
	Handle(Msg, Handler)
}

// Options is the app_state of the genesis file, split by top level key.
type Options map[string]json.RawMessage

// ReadOptions decodes the section under key into obj. A missing section
// leaves obj untouched.
func (o Options) ReadOptions(key string, obj interface{}) error {
	raw, ok := o[key]
	if !ok || len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, obj)
}

// Initializer loads the genesis state of an extension.
type Initializer interface {
	FromGenesis(Options, KVStore) error
}

// ChainInitializers returns an Initializer running inits in order and
// stopping at the first failure.
func ChainInitializers(inits ...Initializer) Initializer {
	return initializers(inits)
}

type initializers []Initializer

func (list initializers) FromGenesis(opts Options, db KVStore) error {
	for _, init := range list {
		if err := init.FromGenesis(opts, db); err != nil {
			return err
		}
	}
	return nil
}
