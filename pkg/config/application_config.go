package config

import (
	"fmt"

	"go.uber.org/zap/zapcore"
)

// ApplicationConfiguration config specific to the tool.
type ApplicationConfiguration struct {
	LogLevel string `yaml:"LogLevel"`
	LogPath  string `yaml:"LogPath"`
	// NamespaceCacheSize is the number of namespace paths kept in memory.
	NamespaceCacheSize int `yaml:"NamespaceCacheSize"`
}

// Validate checks ApplicationConfiguration for internal consistency.
func (a ApplicationConfiguration) Validate() error {
	if _, err := zapcore.ParseLevel(a.LogLevel); err != nil {
		return fmt.Errorf("invalid LogLevel: %w", err)
	}
	if a.NamespaceCacheSize < 0 {
		return fmt.Errorf("negative NamespaceCacheSize %d", a.NamespaceCacheSize)
	}
	return nil
}
