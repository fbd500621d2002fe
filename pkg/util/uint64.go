package util

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/symbolkit/symbol-go/pkg/errs"
)

// Uint64DTO is the [lower, higher] pair of 32-bit words used by REST
// responses to carry 64-bit values.
type Uint64DTO [2]uint32

// Uint64ToDTO splits v into its lower and higher 32-bit words.
func Uint64ToDTO(v uint64) Uint64DTO {
	return Uint64DTO{uint32(v), uint32(v >> 32)}
}

// Uint64 joins the DTO words back into a single value.
func (d Uint64DTO) Uint64() uint64 {
	return uint64(d[1])<<32 | uint64(d[0])
}

// Uint64DecodeString decodes 16 hex characters as a big-endian 64-bit value.
func Uint64DecodeString(s string) (uint64, error) {
	if len(s) != 16 {
		return 0, fmt.Errorf("%w: expected 16 hex characters got %d", errs.ErrInputFormat, len(s))
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", errs.ErrInputFormat, err)
	}
	return binary.BigEndian.Uint64(b), nil
}

// Uint64ToHex returns 16 upper case hex characters of v in big-endian order.
func Uint64ToHex(v uint64) string {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	return strings.ToUpper(hex.EncodeToString(b[:]))
}
