package netmode

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/symbolkit/symbol-go/pkg/errs"
)

const (
	// MainNet is the Symbol public main network.
	MainNet Type = 0x68
	// TestNet is the Symbol public test network.
	TestNet Type = 0x98
	// Private is a private network.
	Private Type = 0x78
	// PrivateTest is a private test network, it's the default for tools.
	PrivateTest Type = 0xA8
	// Mijin is the Mijin network.
	Mijin Type = 0x60
	// MijinTest is the Mijin test network.
	MijinTest Type = 0x90
)

// Type is the network identifier embedded in addresses and in the
// version byte pair of transactions.
type Type byte

// All returns every supported network in a stable order.
func All() []Type {
	return []Type{MainNet, TestNet, Private, PrivateTest, Mijin, MijinTest}
}

// FromByte returns a network type for the given identifier byte.
func FromByte(b byte) (Type, error) {
	n := Type(b)
	if !n.IsValid() {
		return 0, fmt.Errorf("%w: byte 0x%02X", errs.ErrUnknownNetwork, b)
	}
	return n, nil
}

// FromPrefix returns a network type by the first character of a base32
// address. Lower case letters are accepted.
func FromPrefix(c byte) (Type, error) {
	switch c {
	case 'N', 'n':
		return MainNet, nil
	case 'T', 't':
		return TestNet, nil
	case 'P', 'p':
		return Private, nil
	case 'V', 'v':
		return PrivateTest, nil
	case 'M', 'm':
		return Mijin, nil
	case 'S', 's':
		return MijinTest, nil
	}
	return 0, fmt.Errorf("%w: address prefix %q", errs.ErrUnknownNetwork, c)
}

// FromString parses a network name as returned by String.
func FromString(s string) (Type, error) {
	for _, n := range All() {
		if strings.EqualFold(s, n.String()) {
			return n, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", errs.ErrUnknownNetwork, s)
}

// IsValid tells whether n is one of the supported networks.
func (n Type) IsValid() bool {
	switch n {
	case MainNet, TestNet, Private, PrivateTest, Mijin, MijinTest:
		return true
	}
	return false
}

// Prefix returns the first character of base32 addresses on the network.
func (n Type) Prefix() byte {
	switch n {
	case MainNet:
		return 'N'
	case TestNet:
		return 'T'
	case Private:
		return 'P'
	case PrivateTest:
		return 'V'
	case Mijin:
		return 'M'
	case MijinTest:
		return 'S'
	}
	return 0
}

// String implements the stringer interface.
func (n Type) String() string {
	switch n {
	case MainNet:
		return "mainnet"
	case TestNet:
		return "testnet"
	case Private:
		return "private"
	case PrivateTest:
		return "privatetest"
	case Mijin:
		return "mijin"
	case MijinTest:
		return "mijintest"
	default:
		return "net 0x" + strconv.FormatUint(uint64(n), 16)
	}
}

// MarshalText implements the encoding.TextMarshaler interface.
func (n Type) MarshalText() ([]byte, error) {
	if !n.IsValid() {
		return nil, fmt.Errorf("%w: byte 0x%02X", errs.ErrUnknownNetwork, byte(n))
	}
	return []byte(n.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface, it's also
// used by YAML configuration decoding.
func (n *Type) UnmarshalText(text []byte) error {
	t, err := FromString(string(text))
	if err != nil {
		return err
	}
	*n = t
	return nil
}
