package address

import (
	"errors"
	"fmt"

	"github.com/symbolkit/symbol-go/cli/options"
	"github.com/symbolkit/symbol-go/pkg/encoding/address"
	"github.com/symbolkit/symbol-go/pkg/encoding/address/nis1"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

var errNoPublicKey = errors.New("no public key given, use --pubkey")

// NewCommands returns 'address' command.
func NewCommands() []cli.Command {
	pubFlag := cli.StringFlag{
		Name:  "pubkey, p",
		Usage: "hex-encoded public key",
	}
	return []cli.Command{{
		Name:  "address",
		Usage: "Derive, parse and validate account addresses",
		Subcommands: []cli.Command{
			{
				Name:      "derive",
				Usage:     "Derive an address from a public key",
				UsageText: "symbol-go address derive --pubkey <hex> [--mainnet | --testnet | --network <name>]",
				Action:    derive,
				Flags:     append([]cli.Flag{pubFlag, options.Debug}, options.Network...),
			},
			{
				Name:      "parse",
				Usage:     "Parse an address given in raw, pretty or hex form",
				UsageText: "symbol-go address parse <address>",
				Action:    parse,
				Flags:     []cli.Flag{options.Debug},
			},
			{
				Name:      "nis1",
				Usage:     "Derive a NIS1 address from a public key",
				UsageText: "symbol-go address nis1 --pubkey <hex> [--mainnet | --testnet | --network <name>]",
				Action:    deriveNIS1,
				Flags:     append([]cli.Flag{pubFlag}, options.Network...),
			},
		},
	}}
}

func derive(ctx *cli.Context) error {
	pub := ctx.String("pubkey")
	if pub == "" {
		return cli.NewExitError(errNoPublicKey, 1)
	}
	net, err := options.GetNetwork(ctx)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	log, sync, err := options.GetLoggerFromContext(ctx)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	defer func() { _ = sync() }()

	a, err := address.FromPublicKeyHex(pub, net)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	log.Debug("address derived", zap.Stringer("network", net), zap.String("pubkey", pub))
	printAddress(ctx, a)
	return nil
}

func parse(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return cli.NewExitError(errors.New("expected exactly one address"), 1)
	}
	log, sync, err := options.GetLoggerFromContext(ctx)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	defer func() { _ = sync() }()

	text := ctx.Args().First()
	a, err := address.DecodeString(text)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	log.Debug("address parsed", zap.String("input", text))
	fmt.Fprintf(ctx.App.Writer, "Network: %s\n", a.NetworkType())
	printAddress(ctx, a)
	fmt.Fprintf(ctx.App.Writer, "Valid: %t\n", a.IsValid())
	return nil
}

func deriveNIS1(ctx *cli.Context) error {
	pub := ctx.String("pubkey")
	if pub == "" {
		return cli.NewExitError(errNoPublicKey, 1)
	}
	net, err := options.GetNetwork(ctx)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	a, err := nis1.FromPublicKeyHex(pub, net)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	fmt.Fprintf(ctx.App.Writer, "Address: %s\n", a)
	fmt.Fprintf(ctx.App.Writer, "Pretty: %s\n", a.Pretty())
	fmt.Fprintf(ctx.App.Writer, "Encoded: %s\n", a.Encoded())
	return nil
}

func printAddress(ctx *cli.Context, a address.Address) {
	fmt.Fprintf(ctx.App.Writer, "Address: %s\n", a)
	fmt.Fprintf(ctx.App.Writer, "Pretty: %s\n", a.Pretty())
	fmt.Fprintf(ctx.App.Writer, "Encoded: %s\n", a.Encoded())
}
