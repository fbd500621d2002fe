package mosaic

import (
	"github.com/symbolkit/symbol-go/pkg/namespace"
	"github.com/symbolkit/symbol-go/pkg/util"
)

// UnresolvedID is either a mosaic id or a namespace alias resolved to a
// mosaic by the network. Both share the same 8-byte wire form, namespace
// ids are told apart by their most significant bit.
type UnresolvedID struct {
	alias bool
	value uint64
}

// NewUnresolvedID wraps a mosaic id. An id with the namespace flag set would
// read back as an alias, so it is rejected.
func NewUnresolvedID(id ID) (UnresolvedID, error) {
	if _, err := checkID(uint64(id)); err != nil {
		return UnresolvedID{}, err
	}
	return UnresolvedID{value: uint64(id)}, nil
}

// NewAliasID wraps a namespace alias.
func NewAliasID(id namespace.ID) UnresolvedID {
	return UnresolvedID{alias: true, value: uint64(id)}
}

// UnresolvedIDFromUint64 classifies a wire value.
func UnresolvedIDFromUint64(v uint64) UnresolvedID {
	return UnresolvedID{alias: namespace.IsNamespace(v), value: v}
}

// UnresolvedIDDecodeString classifies 16 big-endian hex characters.
func UnresolvedIDDecodeString(s string) (UnresolvedID, error) {
	v, err := util.Uint64DecodeString(s)
	if err != nil {
		return UnresolvedID{}, err
	}
	return UnresolvedIDFromUint64(v), nil
}

// IsAlias tells whether u is a namespace alias.
func (u UnresolvedID) IsAlias() bool {
	return u.alias
}

// MosaicID returns the mosaic id, ok is false for aliases.
func (u UnresolvedID) MosaicID() (ID, bool) {
	return ID(u.value), !u.alias
}

// NamespaceID returns the namespace id, ok is false for mosaic ids.
func (u UnresolvedID) NamespaceID() (namespace.ID, bool) {
	return namespace.ID(u.value), u.alias
}

// Uint64 returns the wire value.
func (u UnresolvedID) Uint64() uint64 {
	return u.value
}

// String returns 16 upper case hex characters.
func (u UnresolvedID) String() string {
	return util.Uint64ToHex(u.value)
}
