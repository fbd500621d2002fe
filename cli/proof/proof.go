package proof

import (
	"errors"
	"fmt"

	"github.com/symbolkit/symbol-go/cli/options"
	"github.com/symbolkit/symbol-go/pkg/core/mpt"
	"github.com/symbolkit/symbol-go/pkg/util"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

// NewCommands returns 'proof' command.
func NewCommands() []cli.Command {
	return []cli.Command{{
		Name:  "proof",
		Usage: "Work with state Merkle proofs",
		Subcommands: []cli.Command{{
			Name:      "verify",
			Usage:     "Parse a raw proof and check it against the expected root",
			UsageText: "symbol-go proof verify --raw <hex> --root <hex> [--state <hex>]",
			Action:    verify,
			Flags: []cli.Flag{
				cli.StringFlag{Name: "raw", Usage: "hex-encoded proof path"},
				cli.StringFlag{Name: "root", Usage: "expected root hash"},
				cli.StringFlag{Name: "state", Usage: "state hash the proof leaf must hold"},
				options.Debug,
			},
		}},
	}}
}

func verify(ctx *cli.Context) error {
	raw := ctx.String("raw")
	if raw == "" {
		return cli.NewExitError(errors.New("no proof given, use --raw"), 1)
	}
	root, err := util.Uint256DecodeStringBE(ctx.String("root"))
	if err != nil {
		return cli.NewExitError(fmt.Errorf("bad root hash: %w", err), 1)
	}
	log, sync, err := options.GetLoggerFromContext(ctx)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	defer func() { _ = sync() }()

	tree, err := mpt.ParseTreeString(raw)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	for i, n := range tree.Nodes {
		fmt.Fprintf(ctx.App.Writer, "%d %s %s\n", i, n.Type(), n.Hash())
	}

	valid := true
	if err := tree.Verify(root); err != nil {
		log.Debug("proof verification failed", zap.Error(err))
		valid = false
	}
	if s := ctx.String("state"); s != "" {
		state, err := util.Uint256DecodeStringBE(s)
		if err != nil {
			return cli.NewExitError(fmt.Errorf("bad state hash: %w", err), 1)
		}
		p, err := mpt.NewStateMerkleProof(state, raw, root)
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		log.Debug("state proof", zap.Stringer("leaf", p.LeafValue), zap.Stringer("state", p.StateHash))
		valid = p.Valid
	}
	fmt.Fprintf(ctx.App.Writer, "Valid: %t\n", valid)
	return nil
}
