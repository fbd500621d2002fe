package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/symbolkit/symbol-go/pkg/config/netmode"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is the default path to the config directory.
	DefaultConfigPath = "./config"
	// DefaultDeadlineHours is the default transaction lifetime.
	DefaultDeadlineHours = 2
	// DefaultNamespaceCacheSize is the default number of cached namespace
	// paths.
	DefaultNamespaceCacheSize = 1024
)

// Version is the version of the tool, set at build time.
var Version string

// Config top level struct representing the config
// for the tool.
type Config struct {
	ProtocolConfiguration    ProtocolConfiguration    `yaml:"ProtocolConfiguration"`
	ApplicationConfiguration ApplicationConfiguration `yaml:"ApplicationConfiguration"`
}

// Load attempts to load the config from the given
// path for the given network.
func Load(path string, net netmode.Type) (Config, error) {
	configPath := filepath.Join(path, fmt.Sprintf("protocol.%s.yml", net))
	return LoadFile(configPath)
}

// LoadFile loads config from the provided path. Unknown fields are an error.
func LoadFile(configPath string) (Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return Config{}, fmt.Errorf("config '%s' doesn't exist", configPath)
	}

	configData, err := os.ReadFile(configPath)
	if err != nil {
		return Config{}, fmt.Errorf("unable to read config: %w", err)
	}

	config := Config{
		ProtocolConfiguration: ProtocolConfiguration{
			DeadlineHours: DefaultDeadlineHours,
		},
		ApplicationConfiguration: ApplicationConfiguration{
			LogLevel:           "info",
			NamespaceCacheSize: DefaultNamespaceCacheSize,
		},
	}
	decoder := yaml.NewDecoder(bytes.NewReader(configData))
	decoder.KnownFields(true)
	err = decoder.Decode(&config)
	if err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config YAML: %w", err)
	}

	err = config.Validate()
	if err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return config, nil
}

// Validate checks both configuration sections.
func (c Config) Validate() error {
	if err := c.ProtocolConfiguration.Validate(); err != nil {
		return err
	}
	return c.ApplicationConfiguration.Validate()
}
