/*
Package vaulttest holds fakes and fixtures shared by the tests of every
vault package. Nothing here may be imported by production code.
*/
package vaulttest

import "github.com/iov-one/vault"

// calls counts how many times the check and deliver paths of a fake ran,
// whether they failed or not.
type calls struct {
	checks   int
	delivers int
}

func (c *calls) CheckCallCount() int   { return c.checks }
func (c *calls) DeliverCallCount() int { return c.delivers }
func (c *calls) CallCount() int        { return c.checks + c.delivers }

// Handler returns the configured result, or the configured error when set.
type Handler struct {
	calls

	CheckResult   vault.CheckResult
	CheckErr      error
	DeliverResult vault.DeliverResult
	DeliverErr    error
}

var _ vault.Handler = (*Handler)(nil)

func (h *Handler) Check(vault.Context, vault.KVStore, vault.Tx) (*vault.CheckResult, error) {
	h.checks++
	if h.CheckErr != nil {
		return nil, h.CheckErr
	}
	res := h.CheckResult
	return &res, nil
}

func (h *Handler) Deliver(vault.Context, vault.KVStore, vault.Tx) (*vault.DeliverResult, error) {
	h.delivers++
	if h.DeliverErr != nil {
		return nil, h.DeliverErr
	}
	res := h.DeliverResult
	return &res, nil
}

// Decorator fails with CheckErr or DeliverErr when set, otherwise it hands
// the transaction to the next handler untouched.
type Decorator struct {
	calls

	CheckErr   error
	DeliverErr error
}

var _ vault.Decorator = (*Decorator)(nil)

func (d *Decorator) Check(ctx vault.Context, db vault.KVStore, tx vault.Tx, next vault.Checker) (*vault.CheckResult, error) {
	d.checks++
	if d.CheckErr != nil {
		return nil, d.CheckErr
	}
	return next.Check(ctx, db, tx)
}

func (d *Decorator) Deliver(ctx vault.Context, db vault.KVStore, tx vault.Tx, next vault.Deliverer) (*vault.DeliverResult, error) {
	d.delivers++
	if d.DeliverErr != nil {
		return nil, d.DeliverErr
	}
	return next.Deliver(ctx, db, tx)
}

// Decorate returns a handler that runs h behind d.
func Decorate(h vault.Handler, d vault.Decorator) vault.Handler {
	return decorated{handler: h, decorator: d}
}

type decorated struct {
	handler   vault.Handler
	decorator vault.Decorator
}

func (d decorated) Check(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.CheckResult, error) {
	return d.decorator.Check(ctx, db, tx, d.handler)
}

func (d decorated) Deliver(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.DeliverResult, error) {
	return d.decorator.Deliver(ctx, db, tx, d.handler)
}

// Tx carries Msg, or fails with Err. It cannot be serialized.
type Tx struct {
	Msg vault.Msg
	Err error
}

var _ vault.Tx = (*Tx)(nil)

func (tx *Tx) GetMsg() (vault.Msg, error) { return tx.Msg, tx.Err }
func (tx *Tx) Marshal() ([]byte, error)   { panic("vaulttest: Tx cannot be marshaled") }
func (tx *Tx) Unmarshal([]byte) error     { panic("vaulttest: Tx cannot be unmarshaled") }

// Msg is routed to RoutePath. Serialized is both its binary form and what
// Unmarshal stores. Err, when set, fails validation and serialization.
type Msg struct {
	RoutePath  string
	Serialized []byte
	Err        error
}

var _ vault.Msg = (*Msg)(nil)

func (m *Msg) Path() string             { return m.RoutePath }
func (m *Msg) Validate() error          { return m.Err }
func (m *Msg) Marshal() ([]byte, error) { return m.Serialized, m.Err }

func (m *Msg) Unmarshal(raw []byte) error {
	m.Serialized = raw
	return m.Err
}
