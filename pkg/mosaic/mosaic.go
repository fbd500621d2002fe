package mosaic

import (
	"fmt"

	"github.com/holiman/uint256"
	"github.com/symbolkit/symbol-go/pkg/errs"
	"github.com/symbolkit/symbol-go/pkg/io"
)

const (
	// MaxDivisibility is the maximum number of decimal places of a mosaic.
	MaxDivisibility = 6
	// MaxAmount is the maximum absolute amount of any mosaic.
	MaxAmount uint64 = 9_000_000_000_000_000
)

// Mosaic is an amount of some (possibly aliased) mosaic in atomic units.
type Mosaic struct {
	ID     UnresolvedID
	Amount uint64
}

// NewAbsolute creates a Mosaic with the amount given in atomic units.
func NewAbsolute(id UnresolvedID, amount uint64) (Mosaic, error) {
	if amount > MaxAmount {
		return Mosaic{}, fmt.Errorf("%w: amount %d must be in the range of 0 and %d atomic units",
			errs.ErrAmountOutOfRange, amount, MaxAmount)
	}
	return Mosaic{ID: id, Amount: amount}, nil
}

// NewRelative creates a Mosaic with the amount given in whole units, it's
// multiplied by 10^divisibility to get atomic units.
func NewRelative(id UnresolvedID, amount uint64, divisibility uint8) (Mosaic, error) {
	if divisibility > MaxDivisibility {
		return Mosaic{}, fmt.Errorf("%w: divisibility %d must be in the range of 0 and %d",
			errs.ErrAmountOutOfRange, divisibility, MaxDivisibility)
	}
	var (
		pow = new(uint256.Int).Exp(uint256.NewInt(10), uint256.NewInt(uint64(divisibility)))
		abs = new(uint256.Int).Mul(uint256.NewInt(amount), pow)
	)
	if abs.Gt(uint256.NewInt(MaxAmount)) {
		return Mosaic{}, fmt.Errorf("%w: relative amount %d must be in the range of 0 and %d units",
			errs.ErrAmountOutOfRange, amount, MaxAmount/pow.Uint64())
	}
	return Mosaic{ID: id, Amount: abs.Uint64()}, nil
}

// EncodeBinary implements the io.Encodable interface.
func (m Mosaic) EncodeBinary(w *io.BinWriter) {
	w.WriteU64LE(m.ID.Uint64())
	w.WriteU64LE(m.Amount)
}

// DecodeBinary implements the io.Decodable interface.
func (m *Mosaic) DecodeBinary(r *io.BinReader) {
	m.ID = UnresolvedIDFromUint64(r.ReadU64LE())
	m.Amount = r.ReadU64LE()
}

// String implements the stringer interface.
func (m Mosaic) String() string {
	return fmt.Sprintf("%s:%d", m.ID, m.Amount)
}
