/*
Package fixedn converts between decimal strings and amounts in atomic units of
a mosaic with the given divisibility.
*/
package fixedn

import (
	"fmt"
	"strings"

	"github.com/holiman/uint256"
	"github.com/symbolkit/symbol-go/pkg/errs"
)

const maxPrecision = 19

var ten = uint256.NewInt(10)

// FromString parses s, a non-negative decimal number with at most precision
// fractional digits, and returns it multiplied by 10^precision.
func FromString(s string, precision int) (uint64, error) {
	if precision < 0 || precision > maxPrecision {
		return 0, fmt.Errorf("%w: precision %d", errs.ErrInputFormat, precision)
	}
	ip, fp, _ := strings.Cut(s, ".")
	if ip == "" && fp == "" {
		return 0, fmt.Errorf("%w: empty amount", errs.ErrInputFormat)
	}
	if len(fp) > precision {
		return 0, fmt.Errorf("%w: amount %q has more than %d decimal places", errs.ErrInputFormat, s, precision)
	}
	digits := ip + fp + strings.Repeat("0", precision-len(fp))
	v := new(uint256.Int)
	for _, c := range digits {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: invalid amount %q", errs.ErrInputFormat, s)
		}
		v.Mul(v, ten)
		v.AddUint64(v, uint64(c-'0'))
		if !v.IsUint64() {
			return 0, fmt.Errorf("%w: amount %q overflows", errs.ErrAmountOutOfRange, s)
		}
	}
	return v.Uint64(), nil
}

// ToString formats v in atomic units as a decimal number with precision
// fractional digits, trailing zeroes are dropped.
func ToString(v uint64, precision int) string {
	s := fmt.Sprintf("%0*d", precision+1, v)
	if precision == 0 {
		return s
	}
	ip, fp := s[:len(s)-precision], strings.TrimRight(s[len(s)-precision:], "0")
	if fp == "" {
		return ip
	}
	return ip + "." + fp
}
