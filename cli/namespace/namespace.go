package namespace

import (
	"errors"
	"fmt"
	"strings"

	"github.com/symbolkit/symbol-go/cli/options"
	"github.com/symbolkit/symbol-go/pkg/config"
	"github.com/symbolkit/symbol-go/pkg/namespace"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

// NewCommands returns 'namespace' command.
func NewCommands() []cli.Command {
	return []cli.Command{{
		Name:  "namespace",
		Usage: "Compute namespace identifiers",
		Subcommands: []cli.Command{{
			Name:      "id",
			Usage:     "Print the id of every level of the given namespace names",
			UsageText: "symbol-go namespace id [--config-path <path> | --config-file <file>] <name> [<name> ...]",
			Action:    printIDs,
			Flags:     options.ConfigFlags,
		}},
	}}
}

// getAppConfig returns the application configuration when one of the config
// flags is given and the defaults otherwise.
func getAppConfig(ctx *cli.Context) (config.ApplicationConfiguration, error) {
	if ctx.String("config-file") == "" && ctx.String("config-path") == "" {
		return config.ApplicationConfiguration{NamespaceCacheSize: config.DefaultNamespaceCacheSize}, nil
	}
	cfg, err := options.GetConfigFromContext(ctx)
	if err != nil {
		return config.ApplicationConfiguration{}, err
	}
	return cfg.ApplicationConfiguration, nil
}

func printIDs(ctx *cli.Context) error {
	if ctx.NArg() == 0 {
		return cli.NewExitError(errors.New("no namespace name given"), 1)
	}
	appCfg, err := getAppConfig(ctx)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	log, sync, err := options.HandleLoggingParams(ctx.Bool("debug"), appCfg)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	defer func() { _ = sync() }()

	cache := namespace.NewCache(appCfg.NamespaceCacheSize, log)
	log.Debug("namespace cache created", zap.Int("size", appCfg.NamespaceCacheSize))
	for _, name := range ctx.Args() {
		path, err := cache.Resolve(name)
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		parts := strings.Split(name, ".")
		for i, id := range path {
			fmt.Fprintf(ctx.App.Writer, "%s: %s\n", strings.Join(parts[:i+1], "."), id)
		}
	}
	return nil
}
