package mosaic

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/symbolkit/symbol-go/pkg/errs"
)

// NonceSize is the length of a mosaic nonce.
const NonceSize = 4

// Nonce is a random value making mosaic ids of the same owner unique.
type Nonce [NonceSize]byte

// NewRandomNonce generates a nonce from crypto/rand.
func NewRandomNonce() (Nonce, error) {
	var n Nonce
	if _, err := rand.Read(n[:]); err != nil {
		return n, fmt.Errorf("failed to generate nonce: %w", err)
	}
	return n, nil
}

// NonceFromUint32 makes a nonce out of its little-endian integer form.
func NonceFromUint32(v uint32) Nonce {
	var n Nonce
	binary.LittleEndian.PutUint32(n[:], v)
	return n
}

// NonceDecodeString decodes a nonce from 8 hex characters.
func NonceDecodeString(s string) (Nonce, error) {
	var n Nonce
	if len(s) != NonceSize*2 {
		return n, fmt.Errorf("%w: invalid hex size for nonce, should be %d but received %d", errs.ErrInputFormat, NonceSize*2, len(s))
	}
	if _, err := hex.Decode(n[:], []byte(s)); err != nil {
		return n, fmt.Errorf("%w: nonce: %v", errs.ErrInputFormat, err)
	}
	return n, nil
}

// Uint32 returns the little-endian integer form used by REST DTOs.
func (n Nonce) Uint32() uint32 {
	return binary.LittleEndian.Uint32(n[:])
}

// String returns upper case hex of the nonce bytes.
func (n Nonce) String() string {
	return strings.ToUpper(hex.EncodeToString(n[:]))
}
