package app

import (
	"fmt"
	"os"
	"runtime"

	"github.com/symbolkit/symbol-go/cli/address"
	"github.com/symbolkit/symbol-go/cli/mosaic"
	"github.com/symbolkit/symbol-go/cli/namespace"
	"github.com/symbolkit/symbol-go/cli/proof"
	"github.com/symbolkit/symbol-go/cli/tx"
	"github.com/symbolkit/symbol-go/pkg/config"
	"github.com/urfave/cli"
)

func versionPrinter(c *cli.Context) {
	_, _ = fmt.Fprintf(c.App.Writer, "symbol-go\nVersion: %s\nGoVersion: %s\n",
		config.Version,
		runtime.Version(),
	)
}

// New creates a symbol-go instance of [cli.App] with all commands included.
func New() *cli.App {
	cli.VersionPrinter = versionPrinter
	ctl := cli.NewApp()
	ctl.Name = "symbol-go"
	ctl.Version = config.Version
	ctl.Usage = "Offline toolkit for Symbol identifiers, state proofs and transactions"
	ctl.ErrWriter = os.Stdout

	ctl.Commands = append(ctl.Commands, address.NewCommands()...)
	ctl.Commands = append(ctl.Commands, namespace.NewCommands()...)
	ctl.Commands = append(ctl.Commands, mosaic.NewCommands()...)
	ctl.Commands = append(ctl.Commands, proof.NewCommands()...)
	ctl.Commands = append(ctl.Commands, tx.NewCommands()...)
	return ctl
}
