package app

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

// StoreApp implements the state related half of abci.Application: genesis,
// block boundaries, commits and queries. BaseApp embeds it and adds the
// transaction processing.
//
// Info, InitChain, BeginBlock, EndBlock and Commit take no user input, so a
// failure there means the node is broken and is reported with a panic.
type StoreApp struct {
	name    string
	db      *CommitStore
	queries vault.QueryRouter
	genesis vault.Initializer
	logger  log.Logger
	debug   bool

	// chainID is empty until genesis was processed.
	chainID string

	// base holds values valid for the whole process, block is rebuilt on
	// every BeginBlock on top of base.
	base  vault.Context
	block vault.Context
}

// NewStoreApp loads the latest state of db and restores the chain id and
// height from it. It panics when the state cannot be read.
func NewStoreApp(name string, db vault.CommitKVStore, queries vault.QueryRouter, ctx vault.Context) *StoreApp {
	s := &StoreApp{
		name:    name,
		db:      NewCommitStore(db),
		queries: queries,
		logger:  log.NewNopLogger(),
	}
	s.base = vault.WithLogger(ctx, s.logger)

	chainID, err := loadChainID(s.DeliverStore())
	if err != nil {
		panic(err)
	}
	if chainID != "" {
		s.setChainID(chainID)
	}

	info, err := s.db.CommitInfo()
	if err != nil {
		panic(err)
	}
	s.block = vault.WithHeight(s.base, info.Version)
	return s
}

// WithInit registers the genesis initializer run by InitChain.
func (s *StoreApp) WithInit(init vault.Initializer) *StoreApp {
	s.genesis = init
	return s
}

// WithDebug includes the full error chain in query responses.
func (s *StoreApp) WithDebug(debug bool) *StoreApp {
	s.debug = debug
	return s
}

// WithLogger replaces the logger available to every handler through the
// context.
func (s *StoreApp) WithLogger(logger log.Logger) *StoreApp {
	s.logger = logger
	s.base = vault.WithLogger(s.base, logger)
	s.block = vault.WithLogger(s.block, logger)
	return s
}

// GetChainID returns the chain id set at genesis.
func (s *StoreApp) GetChainID() string {
	return s.chainID
}

func (s *StoreApp) setChainID(chainID string) {
	s.chainID = chainID
	s.base = vault.WithChainID(s.base, chainID)
}

// BlockContext is the context of the block being processed.
func (s *StoreApp) BlockContext() vault.Context {
	return s.block
}

// DeliverStore returns the state DeliverTx writes to.
func (s *StoreApp) DeliverStore() vault.CacheableKVStore {
	return s.db.DeliverStore()
}

// CheckStore returns the state CheckTx writes to.
func (s *StoreApp) CheckStore() vault.CacheableKVStore {
	return s.db.CheckStore()
}

// Info reports the last committed height and app hash so that tendermint
// can replay missing blocks.
func (s *StoreApp) Info(abci.RequestInfo) abci.ResponseInfo {
	info, err := s.db.CommitInfo()
	if err != nil {
		panic(err)
	}
	s.logger.Info("Info synced", "height", info.Version, "hash", fmt.Sprintf("%X", info.Hash))
	return abci.ResponseInfo{
		Data:             s.name,
		Version:          vault.Version(),
		LastBlockHeight:  info.Version,
		LastBlockAppHash: info.Hash,
	}
}

// SetOption is not supported.
func (s *StoreApp) SetOption(abci.RequestSetOption) abci.ResponseSetOption {
	return abci.ResponseSetOption{Log: "Not Implemented"}
}

// InitChain saves the chain id and loads the app_state section of the
// genesis file. It can succeed only once in the life of a chain.
func (s *StoreApp) InitChain(req abci.RequestInitChain) abci.ResponseInitChain {
	if err := s.initChain(req.ChainId, req.AppStateBytes); err != nil {
		panic(err)
	}
	return abci.ResponseInitChain{}
}

func (s *StoreApp) initChain(chainID string, appState []byte) error {
	if s.chainID != "" {
		return errors.Wrapf(errors.ErrState, "chain %s already initialized", s.chainID)
	}
	if len(appState) == 0 {
		return errors.Wrap(errors.ErrState, "app_state missing from genesis.json")
	}
	var opts vault.Options
	if err := json.Unmarshal(appState, &opts); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	if err := saveChainID(s.DeliverStore(), chainID); err != nil {
		return err
	}
	s.setChainID(chainID)
	if s.genesis == nil {
		return nil
	}
	return s.genesis.FromGenesis(opts, s.DeliverStore())
}

// BeginBlock makes the header, height and block time available to the
// transactions of the block.
func (s *StoreApp) BeginBlock(req abci.RequestBeginBlock) abci.ResponseBeginBlock {
	ctx := vault.WithHeader(s.base, req.Header)
	ctx = vault.WithHeight(ctx, req.Header.GetHeight())
	s.block = vault.WithBlockTime(ctx, req.Header.GetTime())
	return abci.ResponseBeginBlock{}
}

// EndBlock never changes the validator set.
func (s *StoreApp) EndBlock(abci.RequestEndBlock) abci.ResponseEndBlock {
	return abci.ResponseEndBlock{}
}

// Commit persists the block and returns the new app hash.
func (s *StoreApp) Commit() abci.ResponseCommit {
	id, err := s.db.Commit()
	if err != nil {
		panic(err)
	}
	s.logger.Debug("Commit synced", "height", id.Version, "hash", fmt.Sprintf("%X", id.Hash))
	return abci.ResponseCommit{Data: id.Hash}
}

/*
Query reads the last committed state.

The request path selects a registered query handler, for example "/" for
raw keys or "/escrow/users". A suffix after "?" is passed to the handler as
modifier, "?prefix" turns the lookup into a prefix scan.

Both Key and Value of the response hold a serialized ResultSet, so a query
can return any number of models with keys and values at matching indexes.
*/
func (s *StoreApp) Query(req abci.RequestQuery) abci.ResponseQuery {
	path, mod := splitPath(req.Path)
	handler := s.queries.Handler(path)
	if handler == nil {
		return s.queryError(errors.Wrapf(errors.ErrNotFound, "unexpected query path: %v", req.Path))
	}

	info, err := s.db.CommitInfo()
	if err != nil {
		return s.queryError(err)
	}
	snapshot := s.db.committed.CacheWrap()
	defer snapshot.Discard()

	models, err := handler.Query(snapshot, mod, req.Data)
	if err != nil {
		return s.queryError(err)
	}
	keys, err := ResultsFromKeys(models).Marshal()
	if err != nil {
		return s.queryError(err)
	}
	values, err := ResultsFromValues(models).Marshal()
	if err != nil {
		return s.queryError(err)
	}
	return abci.ResponseQuery{Height: info.Version, Key: keys, Value: values}
}

// splitPath separates the handler path from the modifier following "?".
func splitPath(path string) (string, string) {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		return path[:i], path[i+1:]
	}
	return path, ""
}

func (s *StoreApp) queryError(err error) abci.ResponseQuery {
	code, log := errors.ABCIInfo(err, s.debug)
	return abci.ResponseQuery{Code: code, Log: log}
}
