package vault

import (
	"fmt"
)

// Modifiers understood by the bucket query handlers. The modifier follows
// the "?" of a query path.
const (
	KeyQueryMod    = ""
	PrefixQueryMod = "prefix"
)

// Model is one key value pair of a query result.
type Model struct {
	Key   []byte
	Value []byte
}

// Pair returns a Model.
func Pair(key, value []byte) Model {
	return Model{Key: key, Value: value}
}

// QueryHandler answers queries against the committed state.
type QueryHandler interface {
	Query(db ReadOnlyKVStore, mod string, data []byte) ([]Model, error)
}

// QueryRegister adds the query handlers of one extension.
type QueryRegister func(QueryRouter)

// QueryRouter maps query paths to handlers, much like http.ServeMux does
// for URLs.
type QueryRouter struct {
	routes map[string]QueryHandler
}

func NewQueryRouter() QueryRouter {
	return QueryRouter{routes: make(map[string]QueryHandler)}
}

// RegisterAll runs every register function against the router.
func (r QueryRouter) RegisterAll(regs ...QueryRegister) {
	for _, register := range regs {
		register(r)
	}
}

// Register binds h to path. A path can be bound only once.
func (r QueryRouter) Register(path string, h QueryHandler) {
	if _, dup := r.routes[path]; dup {
		panic(fmt.Sprintf("Re-registering route: %s", path))
	}
	r.routes[path] = h
}

// Handler returns the handler bound to path or nil.
func (r QueryRouter) Handler(path string) QueryHandler {
	return r.routes[path]
}
