package keys

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/symbolkit/symbol-go/pkg/config/netmode"
	"github.com/symbolkit/symbol-go/pkg/encoding/address"
	"github.com/symbolkit/symbol-go/pkg/errs"
)

// PrivateKeySize is the size of a serialized private key (the Ed25519 seed).
const PrivateKeySize = ed25519.SeedSize

// SignatureSize is the size of an Ed25519 signature.
const SignatureSize = ed25519.SignatureSize

// Signer produces signatures for arbitrary data.
type Signer interface {
	PublicKey() *PublicKey
	Sign(data []byte) []byte
}

// PrivateKey represents an account private key and provides a high level API
// around ed25519.PrivateKey.
type PrivateKey struct {
	ed25519.PrivateKey
}

var _ Signer = (*PrivateKey)(nil)

// NewPrivateKey creates a new random private key.
func NewPrivateKey() (*PrivateKey, error) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, err
	}
	return &PrivateKey{priv}, nil
}

// NewPrivateKeyFromHex returns a PrivateKey created from the given hex
// encoded seed.
func NewPrivateKeyFromHex(str string) (*PrivateKey, error) {
	b, err := hex.DecodeString(str)
	if err != nil {
		return nil, fmt.Errorf("%w: private key hex: %v", errs.ErrInputFormat, err)
	}
	return NewPrivateKeyFromBytes(b)
}

// NewPrivateKeyFromBytes returns a PrivateKey from the given 32-byte seed.
func NewPrivateKeyFromBytes(b []byte) (*PrivateKey, error) {
	if len(b) != PrivateKeySize {
		return nil, fmt.Errorf("%w: invalid byte length: expected %d bytes got %d",
			errs.ErrInputFormat, PrivateKeySize, len(b))
	}
	return &PrivateKey{ed25519.NewKeyFromSeed(b)}, nil
}

// PublicKey derives the public key from the private key.
func (p *PrivateKey) PublicKey() *PublicKey {
	var pub PublicKey
	copy(pub[:], p.PrivateKey.Public().(ed25519.PublicKey))
	return &pub
}

// Address derives the account address on the given network.
func (p *PrivateKey) Address(net netmode.Type) (address.Address, error) {
	return p.PublicKey().Address(net)
}

// Sign signs arbitrary length data using the private key.
func (p *PrivateKey) Sign(data []byte) []byte {
	return ed25519.Sign(p.PrivateKey, data)
}

// String implements the stringer interface.
func (p *PrivateKey) String() string {
	return hex.EncodeToString(p.Bytes())
}

// Bytes returns the seed of the PrivateKey.
func (p *PrivateKey) Bytes() []byte {
	return append([]byte(nil), p.PrivateKey.Seed()...)
}
