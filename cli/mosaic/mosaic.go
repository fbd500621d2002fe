package mosaic

import (
	"errors"
	"fmt"

	"github.com/symbolkit/symbol-go/cli/flags"
	"github.com/symbolkit/symbol-go/cli/options"
	"github.com/symbolkit/symbol-go/pkg/mosaic"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

// NewCommands returns 'mosaic' command.
func NewCommands() []cli.Command {
	return []cli.Command{{
		Name:  "mosaic",
		Usage: "Compute mosaic identifiers",
		Subcommands: []cli.Command{{
			Name:      "id",
			Usage:     "Derive the id of a mosaic from its owner and nonce",
			UsageText: "symbol-go mosaic id --owner <address> [--nonce <hex>]",
			Action:    printID,
			Flags: []cli.Flag{
				flags.AddressFlag{
					Name:  "owner, o",
					Usage: "address of the mosaic owner",
				},
				cli.StringFlag{
					Name:  "nonce",
					Usage: "8 hex characters of the nonce, random if omitted",
				},
				options.Debug,
			},
		}},
	}}
}

func printID(ctx *cli.Context) error {
	owner, ok := ctx.Generic("owner").(*flags.Address)
	if !ok || !owner.IsSet {
		return cli.NewExitError(errors.New("no owner given, use --owner"), 1)
	}
	a, ok := owner.Unresolved().Address()
	if !ok {
		return cli.NewExitError(errors.New("owner can't be a namespace alias"), 1)
	}
	log, sync, err := options.GetLoggerFromContext(ctx)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	defer func() { _ = sync() }()

	var (
		nonce mosaic.Nonce
		id    mosaic.ID
	)
	if s := ctx.String("nonce"); s != "" {
		nonce, err = mosaic.NonceDecodeString(s)
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		id = mosaic.NewID(nonce, a)
		if !id.Valid() {
			log.Warn("derived id has the namespace flag set, it can't be used in transactions",
				zap.Stringer("nonce", nonce), zap.Stringer("id", id))
		}
	} else {
		// Random nonces are redrawn until the id is usable on the wire.
		for {
			nonce, err = mosaic.NewRandomNonce()
			if err != nil {
				return cli.NewExitError(err, 1)
			}
			id = mosaic.NewID(nonce, a)
			if id.Valid() {
				break
			}
		}
		log.Debug("generated random nonce", zap.Stringer("nonce", nonce))
	}
	fmt.Fprintf(ctx.App.Writer, "Nonce: %s\n", nonce)
	fmt.Fprintf(ctx.App.Writer, "ID: %s\n", id)
	return nil
}
