/*
Package mosaic implements mosaic identifiers, nonces, flags and amounts.
*/
package mosaic

import (
	"encoding/binary"
	"fmt"

	"github.com/symbolkit/symbol-go/pkg/crypto/hash"
	"github.com/symbolkit/symbol-go/pkg/encoding/address"
	"github.com/symbolkit/symbol-go/pkg/errs"
	"github.com/symbolkit/symbol-go/pkg/namespace"
	"github.com/symbolkit/symbol-go/pkg/util"
)

// ID is a mosaic identifier.
type ID uint64

// NewID derives the id of a mosaic created by owner with the given nonce.
// The result is the first 8 little-endian bytes of the SHA3-256 of nonce and
// owner, so about half of the nonces give an id with the namespace flag set.
// Such an id can't be told apart from an alias on the wire, see Valid.
func NewID(nonce Nonce, owner address.Address) ID {
	h := hash.Sha3256Concat(nonce[:], owner[:])
	return ID(binary.LittleEndian.Uint64(h[:8]))
}

// Valid tells whether id has the namespace flag bit clear and so can be
// used where mosaic ids and aliases share the wire form.
func (id ID) Valid() bool {
	return !namespace.IsNamespace(uint64(id))
}

func checkID(v uint64) (ID, error) {
	if namespace.IsNamespace(v) {
		return 0, fmt.Errorf("%w: mosaic id %s has the namespace flag set",
			errs.ErrInputFormat, util.Uint64ToHex(v))
	}
	return ID(v), nil
}

// IDDecodeString decodes a mosaic id from 16 big-endian hex characters.
func IDDecodeString(s string) (ID, error) {
	v, err := util.Uint64DecodeString(s)
	if err != nil {
		return 0, fmt.Errorf("mosaic id: %w", err)
	}
	return checkID(v)
}

// IDFromDTO makes an id out of its [lower, higher] representation. Values
// with the namespace flag set are rejected.
func IDFromDTO(dto util.Uint64DTO) (ID, error) {
	return checkID(dto.Uint64())
}

// DTO returns the [lower, higher] representation of id.
func (id ID) DTO() util.Uint64DTO {
	return util.Uint64ToDTO(uint64(id))
}

// String implements the stringer interface, it returns 16 upper case hex
// characters.
func (id ID) String() string {
	return util.Uint64ToHex(uint64(id))
}

// MarshalText implements the encoding.TextMarshaler interface.
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (id *ID) UnmarshalText(text []byte) error {
	v, err := IDDecodeString(string(text))
	if err != nil {
		return err
	}
	*id = v
	return nil
}
