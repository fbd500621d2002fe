/*
Package nis1 implements legacy NIS1 account addresses, the 200-bit family
using Keccak-256 and a 4-byte checksum. They are needed to work with accounts
created before the Symbol launch.
*/
package nis1

import (
	"bytes"
	"encoding/base32"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/symbolkit/symbol-go/pkg/config/netmode"
	"github.com/symbolkit/symbol-go/pkg/crypto/hash"
	"github.com/symbolkit/symbol-go/pkg/errs"
)

const (
	// Size is the length of a decoded address.
	Size = 25
	// ChecksumSize is the number of checksum bytes at the end of an address.
	ChecksumSize = 4
	// RawLength is the length of the base32 form.
	RawLength = 40
	// PublicKeySize is the length of an account public key.
	PublicKeySize = 32

	digestedSize = 21
)

// Address is network(1) ++ ripemd160(keccak256(public key))(20) ++ checksum(4).
type Address [Size]byte

func checkNetwork(net netmode.Type) error {
	switch net {
	case netmode.MainNet, netmode.TestNet, netmode.Mijin:
		return nil
	}
	return fmt.Errorf("%w: %s is not a NIS1 network", errs.ErrUnknownNetwork, net)
}

// FromPublicKey derives the address of the given public key on the network.
func FromPublicKey(pub []byte, net netmode.Type) (Address, error) {
	var a Address
	if len(pub) != PublicKeySize {
		return a, fmt.Errorf("%w: public key must be %d bytes, got %d", errs.ErrInputFormat, PublicKeySize, len(pub))
	}
	if err := checkNetwork(net); err != nil {
		return a, err
	}
	digest := hash.Keccak160(pub)
	a[0] = byte(net)
	copy(a[1:digestedSize], digest[:])
	copy(a[digestedSize:], hash.KeccakChecksum(a[:digestedSize], ChecksumSize))
	return a, nil
}

// FromPublicKeyHex derives the address of the hex-encoded public key.
func FromPublicKeyHex(pub string, net netmode.Type) (Address, error) {
	b, err := hex.DecodeString(pub)
	if err != nil {
		return Address{}, fmt.Errorf("%w: public key: %v", errs.ErrInputFormat, err)
	}
	return FromPublicKey(b, net)
}

// DecodeString parses the raw or the pretty form of an address.
func DecodeString(s string) (Address, error) {
	var a Address
	raw := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), "-", ""))
	if len(raw) != RawLength {
		return a, fmt.Errorf("%w: invalid NIS1 address length %d", errs.ErrInputFormat, len(raw))
	}
	net, err := netmode.FromPrefix(raw[0])
	if err != nil {
		return a, err
	}
	if err := checkNetwork(net); err != nil {
		return a, err
	}
	b, err := base32.StdEncoding.DecodeString(raw)
	if err != nil {
		return a, fmt.Errorf("%w: address %s: %v", errs.ErrInputFormat, raw, err)
	}
	copy(a[:], b)
	return a, nil
}

// IsValid recomputes the checksum and checks the network byte.
func (a Address) IsValid() bool {
	if checkNetwork(netmode.Type(a[0])) != nil {
		return false
	}
	return bytes.Equal(a[digestedSize:], hash.KeccakChecksum(a[:digestedSize], ChecksumSize))
}

// NetworkType returns the network of the address.
func (a Address) NetworkType() netmode.Type {
	return netmode.Type(a[0])
}

// String returns the raw base32 form.
func (a Address) String() string {
	return base32.StdEncoding.EncodeToString(a[:])
}

// Pretty returns the raw form split into hyphen-separated groups of six.
func (a Address) Pretty() string {
	raw := a.String()
	parts := make([]string, 0, (len(raw)+5)/6)
	for i := 0; i < len(raw); i += 6 {
		end := i + 6
		if end > len(raw) {
			end = len(raw)
		}
		parts = append(parts, raw[i:end])
	}
	return strings.Join(parts, "-")
}

// Encoded returns the upper case hex form.
func (a Address) Encoded() string {
	return strings.ToUpper(hex.EncodeToString(a[:]))
}
