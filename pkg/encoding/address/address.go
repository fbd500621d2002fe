/*
Package address implements Symbol account addresses: derivation from a
public key and the raw (base32), pretty (hyphen-grouped) and encoded (hex)
text forms.
*/
package address

import (
	"bytes"
	"encoding/base32"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/symbolkit/symbol-go/pkg/config/netmode"
	"github.com/symbolkit/symbol-go/pkg/crypto/hash"
	"github.com/symbolkit/symbol-go/pkg/errs"
)

const (
	// Size is the length of a decoded address.
	Size = 24
	// ChecksumSize is the number of checksum bytes at the end of an address.
	ChecksumSize = 3
	// RawLength is the length of the base32 form.
	RawLength = 39
	// EncodedLength is the length of the hex form.
	EncodedLength = Size * 2
	// PublicKeySize is the length of an account public key.
	PublicKeySize = 32

	// digestedSize is the length of the checksummed prefix, network byte
	// plus the account digest.
	digestedSize = 21
	// groupSize is the length of hyphen-separated groups of the pretty form.
	groupSize = 6
)

// Address is a network-scoped account digest:
// network(1) ++ ripemd160(sha3(public key))(20) ++ checksum(3).
type Address [Size]byte

// FromPublicKey derives the address of the given public key on the network.
func FromPublicKey(pub []byte, net netmode.Type) (Address, error) {
	var a Address
	if len(pub) != PublicKeySize {
		return a, fmt.Errorf("%w: public key must be %d bytes, got %d", errs.ErrInputFormat, PublicKeySize, len(pub))
	}
	if !net.IsValid() {
		return a, fmt.Errorf("%w: %s", errs.ErrUnknownNetwork, net)
	}
	digest := hash.Hash160(pub)
	a[0] = byte(net)
	copy(a[1:digestedSize], digest[:])
	copy(a[digestedSize:], hash.Checksum(a[:digestedSize], ChecksumSize))
	return a, nil
}

// FromPublicKeyHex derives the address of the hex-encoded public key.
func FromPublicKeyHex(pub string, net netmode.Type) (Address, error) {
	if len(pub) != PublicKeySize*2 {
		return Address{}, fmt.Errorf("%w: public key must be %d hex characters, got %d", errs.ErrInputFormat, PublicKeySize*2, len(pub))
	}
	b, err := hex.DecodeString(pub)
	if err != nil {
		return Address{}, fmt.Errorf("%w: public key: %v", errs.ErrInputFormat, err)
	}
	return FromPublicKey(b, net)
}

// DecodeString parses an address given in raw, pretty or encoded form.
// Surrounding whitespace is ignored and base32 input is case-insensitive.
// The checksum is not verified, see IsValid for that.
func DecodeString(s string) (Address, error) {
	s = strings.TrimSpace(s)
	if len(s) == EncodedLength {
		return DecodeEncoded(s)
	}
	return DecodeRaw(s)
}

// DecodeRaw parses the raw or the pretty form.
func DecodeRaw(s string) (Address, error) {
	var a Address
	raw := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), "-", ""))
	if len(raw) != RawLength {
		return a, fmt.Errorf("%w: address %s has to be %d characters long", errs.ErrInputFormat, raw, RawLength)
	}
	if _, err := netmode.FromPrefix(raw[0]); err != nil {
		return a, err
	}
	b, err := base32.StdEncoding.DecodeString(raw + "=")
	if err != nil {
		return a, fmt.Errorf("%w: address %s: %v", errs.ErrInputFormat, raw, err)
	}
	copy(a[:], b)
	return a, nil
}

// DecodeEncoded parses the hex form. The network is checked the same way
// as for the raw form, by the leading base32 character.
func DecodeEncoded(s string) (Address, error) {
	var a Address
	if len(s) != EncodedLength {
		return a, fmt.Errorf("%w: encoded address has to be %d characters long, got %d", errs.ErrInputFormat, EncodedLength, len(s))
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return a, fmt.Errorf("%w: encoded address: %v", errs.ErrInputFormat, err)
	}
	copy(a[:], b)
	if _, err := a.network(); err != nil {
		return Address{}, err
	}
	return a, nil
}

// DecodeBytes makes an address out of its binary form.
func DecodeBytes(b []byte) (Address, error) {
	var a Address
	if len(b) != Size {
		return a, fmt.Errorf("%w: address must be %d bytes, got %d", errs.ErrInputFormat, Size, len(b))
	}
	copy(a[:], b)
	return a, nil
}

// IsValidRaw tells whether s is a well-formed raw address with a correct
// checksum. It never fails.
func IsValidRaw(s string) bool {
	if len(s) != RawLength || !strings.ContainsRune("AIQY", rune(s[len(s)-1])) {
		return false
	}
	b, err := base32.StdEncoding.DecodeString(s + "=")
	if err != nil {
		return false
	}
	var a Address
	copy(a[:], b)
	return a.IsValid()
}

// IsValidEncoded tells whether s is a well-formed hex address with a correct
// checksum. It never fails.
func IsValidEncoded(s string) bool {
	if len(s) != EncodedLength {
		return false
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return false
	}
	var a Address
	copy(a[:], b)
	return a.IsValid()
}

// IsValid recomputes the checksum and checks the network byte.
func (a Address) IsValid() bool {
	if !netmode.Type(a[0]).IsValid() {
		return false
	}
	return bytes.Equal(a[digestedSize:], hash.Checksum(a[:digestedSize], ChecksumSize))
}

// NetworkType returns the network of the address. Alias addresses carry a
// flag in the low bits of the first byte which doesn't affect the network.
func (a Address) NetworkType() netmode.Type {
	n, _ := a.network()
	return n
}

func (a Address) network() (netmode.Type, error) {
	return netmode.FromByte(a[0] &^ 0x07)
}

// BytesBE returns the binary form of the address.
func (a Address) BytesBE() []byte {
	return a[:]
}

// String returns the raw base32 form.
func (a Address) String() string {
	return strings.TrimRight(base32.StdEncoding.EncodeToString(a[:]), "=")
}

// Pretty returns the raw form split into hyphen-separated groups of six.
func (a Address) Pretty() string {
	return prettify(a.String())
}

// Encoded returns the upper case hex form.
func (a Address) Encoded() string {
	return strings.ToUpper(hex.EncodeToString(a[:]))
}

// MarshalJSON implements the json.Marshaler interface.
func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (a *Address) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := DecodeString(s)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

func prettify(raw string) string {
	var sb strings.Builder
	for i := 0; i < len(raw); i += groupSize {
		if i > 0 {
			sb.WriteByte('-')
		}
		end := i + groupSize
		if end > len(raw) {
			end = len(raw)
		}
		sb.WriteString(raw[i:end])
	}
	return sb.String()
}
