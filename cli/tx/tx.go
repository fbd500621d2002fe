package tx

import (
	"errors"
	"fmt"
	"time"

	"github.com/symbolkit/symbol-go/cli/flags"
	"github.com/symbolkit/symbol-go/cli/input"
	"github.com/symbolkit/symbol-go/cli/options"
	"github.com/symbolkit/symbol-go/pkg/config"
	"github.com/symbolkit/symbol-go/pkg/core/transaction"
	"github.com/symbolkit/symbol-go/pkg/crypto/keys"
	"github.com/symbolkit/symbol-go/pkg/encoding/fixedn"
	"github.com/symbolkit/symbol-go/pkg/mosaic"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

// NewCommands returns 'tx' command.
func NewCommands() []cli.Command {
	transferFlags := append([]cli.Flag{
		flags.AddressFlag{
			Name:  "recipient, r",
			Usage: "recipient address or namespace alias (@name)",
		},
		flags.MosaicsFlag{
			Name:  "mosaic",
			Usage: "mosaic to send as id:amount in atomic units, may be repeated",
		},
		cli.StringFlag{
			Name:  "amount",
			Usage: "amount of the network currency in whole units, e.g. 1.5",
		},
		cli.StringFlag{
			Name:  "message",
			Usage: "plain text message",
		},
		cli.Uint64Flag{
			Name:  "fee",
			Usage: "maximum fee in atomic units (configuration value by default)",
		},
		cli.DurationFlag{
			Name:  "ttl",
			Usage: "time before the deadline (configuration value by default)",
		},
		cli.Uint64Flag{
			Name:  "deadline",
			Usage: "raw deadline in milliseconds since the network epoch (overrides --ttl)",
		},
		cli.StringFlag{
			Name:  "key, k",
			Usage: "hex-encoded private key (prompted for if omitted)",
		},
	}, options.ConfigFlags...)
	return []cli.Command{{
		Name:  "tx",
		Usage: "Build, sign and hash transactions",
		Subcommands: []cli.Command{
			{
				Name:      "transfer",
				Usage:     "Create and sign a transfer transaction",
				UsageText: "symbol-go tx transfer --recipient <address> [--mosaic <id:amount>] [--amount <n>] [--message <text>] [--key <hex>]",
				Action:    transfer,
				Flags:     transferFlags,
			},
			{
				Name:      "hash",
				Usage:     "Compute the hash of a signed transaction payload",
				UsageText: "symbol-go tx hash --payload <hex>",
				Action:    hashPayload,
				Flags: append([]cli.Flag{
					cli.StringFlag{Name: "payload", Usage: "hex-encoded transaction payload"},
				}, options.ConfigFlags...),
			},
		},
	}}
}

func transfer(ctx *cli.Context) error {
	recipient, ok := ctx.Generic("recipient").(*flags.Address)
	if !ok || !recipient.IsSet {
		return cli.NewExitError(errors.New("no recipient given, use --recipient"), 1)
	}
	cfg, err := options.GetConfigFromContext(ctx)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	log, sync, err := options.HandleLoggingParams(ctx.Bool("debug"), cfg.ApplicationConfiguration)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	defer func() { _ = sync() }()
	pc := cfg.ProtocolConfiguration

	var mosaics []mosaic.Mosaic
	if m, ok := ctx.Generic("mosaic").(*flags.Mosaics); ok && m != nil {
		mosaics = append(mosaics, *m...)
	}
	if s := ctx.String("amount"); s != "" {
		m, err := currencyAmount(s, pc)
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		mosaics = append(mosaics, m)
	}

	body, err := transaction.NewTransfer(recipient.Unresolved(), mosaics, transaction.NewPlainMessage(ctx.String("message")))
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	deadline, err := getDeadline(ctx, pc)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	fee := pc.MaxFee
	if ctx.IsSet("fee") {
		fee = ctx.Uint64("fee")
	}
	key, err := getKey(ctx)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	t := transaction.New(pc.Network, deadline, fee, body)
	signed, err := transaction.Sign(t, key, pc.GenerationHash)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	log.Info("transfer signed",
		zap.Stringer("network", pc.Network),
		zap.Stringer("recipient", recipient.Unresolved()),
		zap.Int("mosaics", len(body.Mosaics)),
		zap.Uint64("deadline", deadline.Uint64()),
		zap.Uint64("fee", fee))
	fmt.Fprintf(ctx.App.Writer, "Payload: %s\n", signed.Payload)
	fmt.Fprintf(ctx.App.Writer, "Hash: %s\n", signed.Hash)
	return nil
}

func hashPayload(ctx *cli.Context) error {
	payload := ctx.String("payload")
	if payload == "" {
		return cli.NewExitError(errors.New("no payload given, use --payload"), 1)
	}
	cfg, err := options.GetConfigFromContext(ctx)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	h, err := transaction.Hash(payload, cfg.ProtocolConfiguration.GenerationHash)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	fmt.Fprintf(ctx.App.Writer, "Hash: %s\n", h)
	return nil
}

func currencyAmount(s string, pc config.ProtocolConfiguration) (mosaic.Mosaic, error) {
	amount, err := fixedn.FromString(s, int(pc.CurrencyDivisibility))
	if err != nil {
		return mosaic.Mosaic{}, err
	}
	id, err := mosaic.NewUnresolvedID(pc.CurrencyMosaicID)
	if err != nil {
		return mosaic.Mosaic{}, err
	}
	return mosaic.NewAbsolute(id, amount)
}

func getDeadline(ctx *cli.Context, pc config.ProtocolConfiguration) (transaction.Deadline, error) {
	if ctx.IsSet("deadline") {
		return transaction.DeadlineFromUint64(ctx.Uint64("deadline")), nil
	}
	ttl := pc.DeadlineDuration()
	if ctx.IsSet("ttl") {
		ttl = ctx.Duration("ttl")
	}
	return transaction.NewDeadline(time.Now(), ttl, pc.EpochAdjustment)
}

func getKey(ctx *cli.Context) (*keys.PrivateKey, error) {
	s := ctx.String("key")
	if s == "" {
		var err error
		s, err = input.ReadPassword("Enter private key > ")
		if err != nil {
			return nil, fmt.Errorf("error reading private key: %w", err)
		}
	}
	return keys.NewPrivateKeyFromHex(s)
}
