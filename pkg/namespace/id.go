/*
Package namespace derives 64-bit namespace identifiers from dotted names.
Every derived id has its most significant bit set, which is what tells an
unresolved 8-byte wire value apart from a mosaic id.
*/
package namespace

import (
	"encoding/binary"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/symbolkit/symbol-go/pkg/crypto/hash"
	"github.com/symbolkit/symbol-go/pkg/errs"
	"github.com/symbolkit/symbol-go/pkg/util"
)

// Flag is the bit set in every namespace id.
const Flag uint64 = 1 << 63

// ErrInvalidNamePart is returned for empty names and for name parts with
// characters outside of [a-z0-9_-] (or starting with '_' or '-').
var ErrInvalidNamePart = fmt.Errorf("%w: invalid namespace name part", errs.ErrInputFormat)

var partRegexp = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// ID is a namespace identifier.
type ID uint64

// FromParent computes the id of the child namespace part under parent.
func FromParent(parent ID, part string) (ID, error) {
	if !partRegexp.MatchString(part) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNamePart, part)
	}
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(parent))
	h := hash.Sha3256Concat(buf[:], []byte(part))
	return ID(binary.LittleEndian.Uint64(h[:8]) | Flag), nil
}

// FullPath returns ids of every level of the given dotted name, root first.
func FullPath(name string) ([]ID, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("%w: empty name", ErrInvalidNamePart)
	}
	var (
		parts  = strings.Split(name, ".")
		path   = make([]ID, 0, len(parts))
		parent ID
		err    error
	)
	for _, part := range parts {
		parent, err = FromParent(parent, part)
		if err != nil {
			return nil, err
		}
		path = append(path, parent)
	}
	return path, nil
}

// FromName returns the id of the given dotted name (the last element of
// its FullPath).
func FromName(name string) (ID, error) {
	path, err := FullPath(name)
	if err != nil {
		return 0, err
	}
	return path[len(path)-1], nil
}

// IDDecodeString decodes a namespace id from 16 big-endian hex characters.
func IDDecodeString(s string) (ID, error) {
	v, err := util.Uint64DecodeString(s)
	if err != nil {
		return 0, fmt.Errorf("namespace id: %w", err)
	}
	return ID(v), nil
}

// IDFromDTO makes an id out of its [lower, higher] representation.
func IDFromDTO(dto util.Uint64DTO) ID {
	return ID(dto.Uint64())
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

// IsNamespace tells whether the value has the namespace flag set.
func IsNamespace(v uint64) bool {
	return v&Flag != 0
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
	if !IsNamespace(uint64(v)) {
		return errors.New("namespace id must have the most significant bit set")
	}
	*id = v
	return nil
}
