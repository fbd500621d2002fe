package address

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/symbolkit/symbol-go/pkg/config/netmode"
	"github.com/symbolkit/symbol-go/pkg/errs"
	"github.com/symbolkit/symbol-go/pkg/namespace"
)

// aliasFlag is set in the first byte of an address-sized value carrying a
// namespace alias instead of an account digest.
const aliasFlag = 0x01

// Kind tells which variant an UnresolvedAddress holds.
type Kind byte

const (
	// KindAddress is a direct account address.
	KindAddress Kind = iota
	// KindAlias is a namespace resolved to an address by the network.
	KindAlias
)

// UnresolvedAddress is either an account address or a namespace alias that
// the network resolves to an address.
type UnresolvedAddress struct {
	kind    Kind
	address Address
	alias   namespace.ID
}

// NewUnresolved wraps a direct address.
func NewUnresolved(a Address) UnresolvedAddress {
	return UnresolvedAddress{kind: KindAddress, address: a}
}

// NewAlias wraps a namespace alias.
func NewAlias(id namespace.ID) UnresolvedAddress {
	return UnresolvedAddress{kind: KindAlias, alias: id}
}

// UnresolvedFromBytes decodes the wire form. A set alias flag in the first
// byte means the next 8 bytes are a little-endian namespace id.
func UnresolvedFromBytes(b []byte) (UnresolvedAddress, error) {
	if len(b) != Size {
		return UnresolvedAddress{}, fmt.Errorf("%w: unresolved address must be %d bytes, got %d", errs.ErrInputFormat, Size, len(b))
	}
	if b[0]&aliasFlag != 0 {
		return NewAlias(namespace.ID(binary.LittleEndian.Uint64(b[1:9]))), nil
	}
	a, err := DecodeBytes(b)
	if err != nil {
		return UnresolvedAddress{}, err
	}
	return NewUnresolved(a), nil
}

// UnresolvedFromHex decodes the hex wire form.
func UnresolvedFromHex(s string) (UnresolvedAddress, error) {
	if len(s) != EncodedLength {
		return UnresolvedAddress{}, fmt.Errorf("%w: unresolved address has to be %d characters long, got %d", errs.ErrInputFormat, EncodedLength, len(s))
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return UnresolvedAddress{}, fmt.Errorf("%w: unresolved address: %v", errs.ErrInputFormat, err)
	}
	return UnresolvedFromBytes(b)
}

// Kind returns the variant held.
func (u UnresolvedAddress) Kind() Kind {
	return u.kind
}

// IsAlias tells whether u is a namespace alias.
func (u UnresolvedAddress) IsAlias() bool {
	return u.kind == KindAlias
}

// Address returns the direct address, ok is false for aliases.
func (u UnresolvedAddress) Address() (Address, bool) {
	return u.address, u.kind == KindAddress
}

// Alias returns the namespace id, ok is false for direct addresses.
func (u UnresolvedAddress) Alias() (namespace.ID, bool) {
	return u.alias, u.kind == KindAlias
}

// Bytes returns the wire form. Direct addresses are written as is, aliases
// as [net|0x01] ++ LE(namespace id) padded with zeroes.
func (u UnresolvedAddress) Bytes(net netmode.Type) [Size]byte {
	switch u.kind {
	case KindAlias:
		var b [Size]byte
		b[0] = byte(net) | aliasFlag
		binary.LittleEndian.PutUint64(b[1:9], uint64(u.alias))
		return b
	default:
		return u.address
	}
}

// String returns the raw form of a direct address or the hex id of an alias.
func (u UnresolvedAddress) String() string {
	if u.kind == KindAlias {
		return u.alias.String()
	}
	return u.address.String()
}
