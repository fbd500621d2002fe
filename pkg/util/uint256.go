package util

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/symbolkit/symbol-go/pkg/errs"
)

// Uint256Size is the size of Uint256 in bytes.
const Uint256Size = 32

// Uint256 is a 32 byte long value used for hashes and keys. Unlike NEO-style
// values it is kept and printed in natural (big-endian) byte order.
type Uint256 [Uint256Size]uint8

// Uint256DecodeStringBE attempts to decode the given hex string into a Uint256.
// Both lower and upper case digits are accepted.
func Uint256DecodeStringBE(s string) (u Uint256, err error) {
	if len(s) != Uint256Size*2 {
		return u, fmt.Errorf("%w: expected string size of %d got %d", errs.ErrInputFormat, Uint256Size*2, len(s))
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return u, fmt.Errorf("%w: %v", errs.ErrInputFormat, err)
	}
	return Uint256DecodeBytesBE(b)
}

// Uint256DecodeBytesBE attempts to decode the given slice into a Uint256.
func Uint256DecodeBytesBE(b []byte) (u Uint256, err error) {
	if len(b) != Uint256Size {
		return u, fmt.Errorf("%w: expected []byte of size %d got %d", errs.ErrInputFormat, Uint256Size, len(b))
	}
	copy(u[:], b)
	return u, nil
}

// BytesBE returns a byte slice representation of u.
func (u Uint256) BytesBE() []byte {
	return u[:]
}

// Equals returns true if both Uint256 values are the same.
func (u Uint256) Equals(other Uint256) bool {
	return u == other
}

// IsZero tells whether all bytes of u are zero.
func (u Uint256) IsZero() bool {
	return u == Uint256{}
}

// CompareTo compares two Uint256 with each other. Possible output: 1, -1, 0
//
//	 1 implies u > other.
//	-1 implies u < other.
//	 0 implies  u = other.
func (u Uint256) CompareTo(other Uint256) int { return bytes.Compare(u[:], other[:]) }

// String implements the stringer interface, it returns upper case hex.
func (u Uint256) String() string {
	return strings.ToUpper(hex.EncodeToString(u[:]))
}

// UnmarshalJSON implements the json unmarshaller interface.
func (u *Uint256) UnmarshalJSON(data []byte) (err error) {
	var js string
	if err = json.Unmarshal(data, &js); err != nil {
		return err
	}
	*u, err = Uint256DecodeStringBE(strings.TrimPrefix(js, "0x"))
	return err
}

// MarshalJSON implements the json marshaller interface.
func (u Uint256) MarshalJSON() ([]byte, error) {
	return []byte(`"` + u.String() + `"`), nil
}

// UnmarshalYAML implements the YAML Unmarshaler interface.
func (u *Uint256) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	var err error
	*u, err = Uint256DecodeStringBE(s)
	return err
}

// MarshalYAML implements the YAML Marshaler interface.
func (u Uint256) MarshalYAML() (any, error) {
	return u.String(), nil
}
