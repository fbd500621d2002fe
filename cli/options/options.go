/*
Package options contains a set of common CLI options and helper functions to use them.
*/
package options

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/symbolkit/symbol-go/pkg/config"
	"github.com/symbolkit/symbol-go/pkg/config/netmode"
	"github.com/urfave/cli"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Network is a set of flags for choosing the network to operate on
// (privatetest/mainnet/testnet or any network by name).
var Network = []cli.Flag{
	cli.BoolFlag{Name: "mainnet, m", Usage: "use mainnet network configuration (if --config-file option is not specified)"},
	cli.BoolFlag{Name: "testnet, t", Usage: "use testnet network configuration (if --config-file option is not specified)"},
	cli.StringFlag{Name: "network, n", Usage: "network name (mainnet, testnet, private, privatetest, mijin, mijintest)"},
}

// Config is a flag for commands that use network configuration.
var Config = cli.StringFlag{
	Name:  "config-path",
	Usage: "path to directory with per-network configuration files (may be overridden by --config-file option for the configuration file)",
}

// ConfigFile is a flag for commands that use network configuration and provide
// path to the specific config file instead of config path.
var ConfigFile = cli.StringFlag{
	Name:  "config-file",
	Usage: "path to the configuration file (overrides --config-path option)",
}

// Debug is a flag for commands that allow debug logging.
var Debug = cli.BoolFlag{
	Name:  "debug, d",
	Usage: "enable debug logging (overrides configuration)",
}

// ConfigFlags is the set of flags needed by GetConfigFromContext.
var ConfigFlags = append([]cli.Flag{Config, ConfigFile, Debug}, Network...)

// GetNetwork examines Context's flags and returns the appropriate network. It
// defaults to PrivateTest if no flags are given.
func GetNetwork(ctx *cli.Context) (netmode.Type, error) {
	var net = netmode.PrivateTest
	if ctx.Bool("testnet") {
		net = netmode.TestNet
	}
	if ctx.Bool("mainnet") {
		net = netmode.MainNet
	}
	if name := ctx.String("network"); name != "" {
		return netmode.FromString(name)
	}
	return net, nil
}

// GetConfigFromContext looks at the path and the mode flags in the given config and
// returns an appropriate config.
func GetConfigFromContext(ctx *cli.Context) (config.Config, error) {
	if configFile := ctx.String("config-file"); configFile != "" {
		return config.LoadFile(configFile)
	}
	var configPath = config.DefaultConfigPath
	if argCp := ctx.String("config-path"); argCp != "" {
		configPath = argCp
	}
	net, err := GetNetwork(ctx)
	if err != nil {
		return config.Config{}, err
	}
	return config.Load(configPath, net)
}

// HandleLoggingParams reads logging parameters.
// If a user selected debug level -- function enables it.
// If logPath is configured -- function creates a dir and a file for logging.
// The returned function must be called to flush the logger.
func HandleLoggingParams(debug bool, cfg config.ApplicationConfiguration) (*zap.Logger, func() error, error) {
	var (
		level = zapcore.InfoLevel
		err   error
	)
	if len(cfg.LogLevel) > 0 {
		level, err = zapcore.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, nil, fmt.Errorf("log setting: %w", err)
		}
	}
	if debug {
		level = zapcore.DebugLevel
	}

	cc := zap.NewProductionConfig()
	cc.DisableCaller = true
	cc.DisableStacktrace = true
	cc.EncoderConfig.EncodeDuration = zapcore.StringDurationEncoder
	cc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	cc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cc.Encoding = "console"
	cc.Level = zap.NewAtomicLevelAt(level)
	cc.Sampling = nil

	if logPath := cfg.LogPath; logPath != "" {
		if err := os.MkdirAll(filepath.Dir(logPath), os.ModePerm); err != nil {
			return nil, nil, fmt.Errorf("could not create dir for logger: %w", err)
		}
		cc.OutputPaths = []string{logPath}
	}

	log, err := cc.Build()
	if err != nil {
		return nil, nil, err
	}
	return log, log.Sync, nil
}

// GetLoggerFromContext builds a logger for commands that have no config of
// their own, only the debug flag is taken into account.
func GetLoggerFromContext(ctx *cli.Context) (*zap.Logger, func() error, error) {
	return HandleLoggingParams(ctx.Bool("debug"), config.ApplicationConfiguration{})
}
