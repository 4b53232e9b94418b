package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/iov-one/vault"
	vaultd "github.com/iov-one/vault/cmd/vaultd/app"
	"github.com/iov-one/vault/commands"
	"github.com/iov-one/vault/commands/server"
	"github.com/tendermint/tendermint/libs/log"
)

var (
	flagHome = "home"
	varHome  *string
)

func init() {
	defaultHome := filepath.Join(os.ExpandEnv("$HOME"), ".vaultd")
	varHome = flag.String(flagHome, defaultHome, "directory to store files under")

	flag.CommandLine.Usage = helpMessage
}

func helpMessage() {
	fmt.Println("vaultd")
	fmt.Println("          Single token escrow node")
	fmt.Println("")
	fmt.Println("help      Print this message")
	fmt.Println("init      Initialize app options in genesis file")
	fmt.Println("start     Run the abci server")
	fmt.Println("validate  Check the app state of genesis files")
	fmt.Println("keys      Derive a key and print its address")
	fmt.Println("testgen   Write example encodings to a directory")
	fmt.Println("version   Print the app version")
	fmt.Println(`
  -home string
        directory to store files under (default "$HOME/.vaultd")`)
}

func main() {
	logger := log.NewTMLogger(log.NewSyncWriter(os.Stdout)).
		With("module", "vault")

	flag.Parse()
	if flag.NArg() == 0 {
		fmt.Println("Missing command:")
		helpMessage()
		os.Exit(1)
	}

	cmd := flag.Arg(0)
	rest := flag.Args()[1:]

	var err error
	switch cmd {
	case "help":
		helpMessage()
	case "init":
		err = server.InitCmd(vaultd.GenInitOptions, logger, *varHome, rest)
	case "start":
		err = server.StartCmd(vaultd.GenerateApp, logger, *varHome, rest)
	case "validate":
		paths := rest
		if len(paths) == 0 {
			paths = []string{server.GenesisPath(*varHome)}
		}
		err = server.ValidateGenesis(vaultd.Initializers(), paths)
	case "keys":
		err = keysCmd(os.Stdout, rest)
	case "testgen":
		err = commands.TestGenCmd(vaultd.Examples(), rest)
	case "version":
		fmt.Println(vault.Version())
	default:
		err = fmt.Errorf("unknown command: %s", cmd)
	}

	if err != nil {
		fmt.Printf("Error: %+v\n\n", err)
		helpMessage()
		os.Exit(1)
	}
}
