package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/symbolkit/symbol-go/pkg/config/netmode"
	"github.com/symbolkit/symbol-go/pkg/errs"
	"github.com/symbolkit/symbol-go/pkg/mosaic"
	"github.com/symbolkit/symbol-go/pkg/util"
)

// ProtocolConfiguration represents the network parameters transactions are
// built for.
type ProtocolConfiguration struct {
	Network netmode.Type `yaml:"Network"`
	// GenerationHash is the hash of the nemesis block, it's mixed into every
	// signature to bind it to the network.
	GenerationHash util.Uint256 `yaml:"GenerationHash"`
	// EpochAdjustment is the network epoch in Unix seconds.
	EpochAdjustment  uint64    `yaml:"EpochAdjustment"`
	CurrencyMosaicID mosaic.ID `yaml:"CurrencyMosaicID"`
	// CurrencyDivisibility is used to convert relative amounts.
	CurrencyDivisibility uint8  `yaml:"CurrencyDivisibility"`
	MaxFee               uint64 `yaml:"MaxFee"`
	DeadlineHours        int    `yaml:"DeadlineHours"`
}

// Validate checks ProtocolConfiguration for internal consistency.
func (p ProtocolConfiguration) Validate() error {
	if !p.Network.IsValid() {
		return fmt.Errorf("%w: %s", errs.ErrUnknownNetwork, p.Network)
	}
	if p.GenerationHash.IsZero() {
		return errors.New("GenerationHash is not set")
	}
	if p.EpochAdjustment == 0 {
		return errors.New("EpochAdjustment is not set")
	}
	if p.DeadlineHours <= 0 {
		return fmt.Errorf("DeadlineHours must be positive, got %d", p.DeadlineHours)
	}
	if p.CurrencyDivisibility > mosaic.MaxDivisibility {
		return fmt.Errorf("CurrencyDivisibility %d is above %d", p.CurrencyDivisibility, mosaic.MaxDivisibility)
	}
	return nil
}

// DeadlineDuration returns the configured transaction lifetime.
func (p ProtocolConfiguration) DeadlineDuration() time.Duration {
	return time.Duration(p.DeadlineHours) * time.Hour
}
