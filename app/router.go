package app

import (
	"fmt"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
)

// Router allows us to register many handlers with different paths and then
// direct each message to the proper handler.
//
// Minimal interface modeled after net/http.ServeMux
type Router struct {
	routes map[string]vault.Handler
}

var _ vault.Registry = (*Router)(nil)
var _ vault.Handler = (*Router)(nil)

// NewRouter returns a new empty router instance.
func NewRouter() *Router {
	return &Router{
		routes: make(map[string]vault.Handler, 10),
	}
}

// Handle registers a handler for the path of the given message. It panics
// when the path is malformed or already taken.
func (r *Router) Handle(m vault.Msg, h vault.Handler) {
	path := m.Path()
	if err := vault.ValidatePath(path); err != nil {
		panic(err)
	}
	if _, ok := r.routes[path]; ok {
		panic(fmt.Sprintf("re-registering route: %s", path))
	}
	r.routes[path] = h
}

// handler returns the handler registered for the message carried by the
// transaction.
func (r *Router) handler(tx vault.Tx) (vault.Handler, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot load message")
	}
	if msg == nil {
		return nil, errors.Wrap(errors.ErrMsg, "no message in transaction")
	}
	path := msg.Path()
	h, ok := r.routes[path]
	if !ok {
		return nil, errors.Wrapf(errors.ErrNotFound, "no handler for message path %q", path)
	}
	return h, nil
}

// Check dispatches to the proper handler based on path
func (r *Router) Check(ctx vault.Context, store vault.KVStore, tx vault.Tx) (*vault.CheckResult, error) {
	h, err := r.handler(tx)
	if err != nil {
		return nil, err
	}
	return h.Check(ctx, store, tx)
}

// Deliver dispatches to the proper handler based on path
func (r *Router) Deliver(ctx vault.Context, store vault.KVStore, tx vault.Tx) (*vault.DeliverResult, error) {
	h, err := r.handler(tx)
	if err != nil {
		return nil, err
	}
	return h.Deliver(ctx, store, tx)
}
