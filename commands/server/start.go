package server

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/iov-one/vault/errors"
	"github.com/tendermint/tendermint/abci/server"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

const (
	flagBind     = "bind"
	flagDebug    = "debug"
	flagLogLevel = "log_level"
)

type startOptions struct {
	addr     string
	debug    bool
	logLevel string
}

func parseStartFlags(args []string) (startOptions, error) {
	var opts startOptions
	startFlags := flag.NewFlagSet("start", flag.ContinueOnError)
	startFlags.StringVar(&opts.addr, flagBind, "tcp://localhost:26658", "address server listens on")
	startFlags.BoolVar(&opts.debug, flagDebug, false, "call stack returned on error")
	startFlags.StringVar(&opts.logLevel, flagLogLevel, "info", "minimal log level: debug, info, error or none")
	if err := startFlags.Parse(args); err != nil {
		return opts, errors.Wrap(errors.ErrInput, err.Error())
	}
	return opts, nil
}

// AppGenerator lets us lazily initialize app, using home dir
// and logger potentially initialized with other flags
type AppGenerator func(home string, logger log.Logger, debug bool) (abci.Application, error)

// StartCmd initializes the application and serves it over the ABCI socket
// protocol until the process is signalled.
func StartCmd(gen AppGenerator, logger log.Logger, home string, args []string) error {
	opts, err := parseStartFlags(args)
	if err != nil {
		return err
	}
	logger, err = FilterLogger(logger, opts.logLevel)
	if err != nil {
		return err
	}

	// Generate the app in the proper dir
	app, err := gen(home, logger, opts.debug)
	if err != nil {
		return err
	}

	logger.Info("Starting ABCI app", "bind", opts.addr)

	svr, err := server.NewServer(opts.addr, "socket", app)
	if err != nil {
		return fmt.Errorf("cannot create listener: %v", err)
	}
	svr.SetLogger(logger.With("module", "abci-server"))
	if err := svr.Start(); err != nil {
		return fmt.Errorf("cannot start server: %v", err)
	}

	// Wait for a termination signal.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
	logger.Info("Stopping ABCI app")
	return svr.Stop()
}

// FilterLogger returns logger limited to entries of given level or above.
func FilterLogger(logger log.Logger, level string) (log.Logger, error) {
	opt, err := log.AllowLevel(level)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	return log.NewFilter(logger, opt), nil
}
