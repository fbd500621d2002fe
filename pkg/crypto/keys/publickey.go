package keys

import (
	"bytes"
	"crypto/ed25519"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/symbolkit/symbol-go/pkg/config/netmode"
	"github.com/symbolkit/symbol-go/pkg/encoding/address"
	"github.com/symbolkit/symbol-go/pkg/errs"
	"github.com/symbolkit/symbol-go/pkg/io"
)

// PublicKeySize is the size of a serialized public key.
const PublicKeySize = ed25519.PublicKeySize

// PublicKeys is a list of public keys.
type PublicKeys []*PublicKey

func (keys PublicKeys) Len() int      { return len(keys) }
func (keys PublicKeys) Swap(i, j int) { keys[i], keys[j] = keys[j], keys[i] }
func (keys PublicKeys) Less(i, j int) bool {
	return keys[i].Cmp(keys[j]) == -1
}

// Contains checks whether passed param contained in PublicKeys.
func (keys PublicKeys) Contains(pKey *PublicKey) bool {
	for _, key := range keys {
		if key.Equal(pKey) {
			return true
		}
	}
	return false
}

// PublicKey is an Ed25519 public key.
type PublicKey [PublicKeySize]byte

// NewPublicKeyFromString returns a public key created from the
// given hex string.
func NewPublicKeyFromString(s string) (*PublicKey, error) {
	b, err := hex.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("%w: public key hex: %v", errs.ErrInputFormat, err)
	}
	pubKey := new(PublicKey)
	if err := pubKey.DecodeBytes(b); err != nil {
		return nil, err
	}
	return pubKey, nil
}

// DecodeBytes decodes a PublicKey from the given slice of bytes.
func (p *PublicKey) DecodeBytes(data []byte) error {
	if len(data) != PublicKeySize {
		return fmt.Errorf("%w: public key is %d bytes, expected %d", errs.ErrInputFormat, len(data), PublicKeySize)
	}
	copy(p[:], data)
	return nil
}

// Equal returns true in case public keys are equal.
func (p *PublicKey) Equal(key *PublicKey) bool {
	return *p == *key
}

// Cmp compares two keys byte-wise.
func (p *PublicKey) Cmp(key *PublicKey) int {
	return bytes.Compare(p[:], key[:])
}

// Bytes returns a copy of the key bytes.
func (p *PublicKey) Bytes() []byte {
	return append([]byte(nil), p[:]...)
}

// Address returns the account address of the key on the given network.
func (p *PublicKey) Address(net netmode.Type) (address.Address, error) {
	return address.FromPublicKey(p[:], net)
}

// Verify returns true if the signature is valid for the data.
func (p *PublicKey) Verify(signature []byte, data []byte) bool {
	if len(signature) != SignatureSize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(p[:]), data, signature)
}

// DecodeBinary decodes a PublicKey from the given BinReader.
func (p *PublicKey) DecodeBinary(r *io.BinReader) {
	r.ReadBytes(p[:])
}

// EncodeBinary encodes a PublicKey to the given BinWriter.
func (p *PublicKey) EncodeBinary(w *io.BinWriter) {
	w.WriteBytes(p[:])
}

// String implements the Stringer interface.
func (p *PublicKey) String() string {
	return strings.ToUpper(hex.EncodeToString(p[:]))
}

// MarshalJSON implements the json.Marshaler interface.
func (p PublicKey) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (p *PublicKey) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	pk, err := NewPublicKeyFromString(s)
	if err != nil {
		return err
	}
	*p = *pk
	return nil
}
