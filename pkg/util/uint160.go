package util

import (
	"encoding/hex"
	"strings"
)

// Uint160Size is the size of Uint160 in bytes.
const Uint160Size = 20

// Uint160 is a 20 byte long digest, the account part of every address.
type Uint160 [Uint160Size]uint8

// BytesBE returns a byte slice representation of u.
func (u Uint160) BytesBE() []byte {
	return u[:]
}

// Equals returns true if both Uint160 values are the same.
func (u Uint160) Equals(other Uint160) bool {
	return u == other
}

// String implements the stringer interface, it returns upper case hex.
func (u Uint160) String() string {
	return strings.ToUpper(hex.EncodeToString(u[:]))
}
