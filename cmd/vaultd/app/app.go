/*
Package app links together all the various components
to construct the vaultd app.
*/
package app

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/app"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/orm"
	"github.com/iov-one/vault/store/iavl"
	"github.com/iov-one/vault/x"
	"github.com/iov-one/vault/x/escrow"
	"github.com/iov-one/vault/x/sigs"
	"github.com/iov-one/vault/x/token"
	"github.com/iov-one/vault/x/utils"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

// Authenticator returns the typical authentication, public key signatures,
// extended with the escrow custody authority.
func Authenticator() x.Authenticator {
	return x.ChainAuth(sigs.Authenticate{}, escrow.Authenticate{})
}

// Chain returns a chain of decorators, to handle authentication,
// logging, and recovery
func Chain() app.Decorators {
	return app.ChainDecorators(
		utils.NewLogging(),
		utils.NewRecovery(),
		// on CheckTx, bad tx don't affect state
		utils.NewSavepoint().OnCheck(),
		sigs.NewDecorator(),
		// on DeliverTx, bad tx will increment nonce even if the
		// message fails
		utils.NewSavepoint().OnDeliver(),
		utils.NewActionTagger(),
	)
}

// Router returns a router dispatching token and escrow messages. Both
// extensions share one token controller, which leaves crediting the custody
// account to the escrow.
func Router(authFn x.Authenticator) *app.Router {
	r := app.NewRouter()
	tokens := token.NewController(authFn, escrow.Custody{})
	token.RegisterRoutes(r, authFn, tokens)
	escrow.RegisterRoutes(r, authFn, tokens)
	return r
}

// QueryRouter returns a default query router,
// allowing access to "/escrow", "/userstates", "/mints", "/tokenaccounts",
// "/auth" and "/"
func QueryRouter() vault.QueryRouter {
	r := vault.NewQueryRouter()
	r.RegisterAll(
		escrow.RegisterQuery,
		token.RegisterQuery,
		sigs.RegisterQuery,
		orm.RegisterQuery,
	)
	return r
}

// Initializers returns the genesis loaders in dependency order. The escrow
// refers to a mint, so tokens load first.
func Initializers() vault.Initializer {
	return vault.ChainInitializers(
		&token.Initializer{},
		&escrow.Initializer{},
	)
}

// Stack wires up a standard router with a standard decorator
// chain. This can be passed into BaseApp.
func Stack() vault.Handler {
	return Chain().WithHandler(Router(Authenticator()))
}

// Application constructs a basic ABCI application with
// the given arguments. If you are not sure what to use
// for the Handler, just use Stack().
func Application(name string, h vault.Handler, tx vault.TxDecoder, dbPath string, debug bool) (app.BaseApp, error) {
	kv, err := CommitKVStore(dbPath)
	if err != nil {
		return app.BaseApp{}, err
	}
	store := app.NewStoreApp(name, kv, QueryRouter(), context.Background())
	base := app.NewBaseApp(store, tx, h, debug)
	return base, nil
}

// CommitKVStore returns an initialized KVStore that persists
// the data to the named path.
func CommitKVStore(dbPath string) (vault.CommitKVStore, error) {
	// memory backed case, just for testing
	if dbPath == "" {
		return iavl.NewMemCommitStore(), nil
	}

	// Expand the path fully
	path, err := filepath.Abs(dbPath)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "invalid database name: %s", dbPath)
	}

	// Some external calls accidently add a ".db", which is now removed
	path = strings.TrimSuffix(path, filepath.Ext(path))

	// Split the database name into it's components (dir, name)
	dir := filepath.Dir(path)
	name := filepath.Base(path)
	kv, err := iavl.NewCommitStore(dir, name)
	if err != nil {
		return nil, err
	}
	return kv, nil
}

// GenerateApp is used to create a stub for server/start.go command
func GenerateApp(home string, logger log.Logger, debug bool) (abci.Application, error) {
	// db goes in a subdir, but "" -> "" for memdb
	var dbPath string
	if home != "" {
		dbPath = filepath.Join(home, "vault.db")
	}

	application, err := Application("vaultd", Stack(), TxDecoder, dbPath, debug)
	if err != nil {
		return nil, err
	}
	application.WithInit(Initializers())
	application.WithLogger(logger)
	return application, nil
}
