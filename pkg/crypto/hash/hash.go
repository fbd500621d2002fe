package hash

import (
	"github.com/symbolkit/symbol-go/pkg/util"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // ripemd160 is part of the address format
	"golang.org/x/crypto/sha3"
)

// Sha3256 hashes the incoming byte slice using the SHA3-256 algorithm.
func Sha3256(data []byte) util.Uint256 {
	return sha3.Sum256(data)
}

// Sha3256Concat hashes the concatenation of the given slices without
// allocating an intermediate buffer.
func Sha3256Concat(parts ...[]byte) util.Uint256 {
	var hash util.Uint256
	h := sha3.New256()
	for _, p := range parts {
		_, _ = h.Write(p)
	}
	h.Sum(hash[:0])
	return hash
}

// Keccak256 hashes the incoming byte slice using the original (pre-FIPS)
// Keccak-256 algorithm, as NIS1 does.
func Keccak256(data []byte) util.Uint256 {
	var hash util.Uint256
	h := sha3.NewLegacyKeccak256()
	_, _ = h.Write(data)
	h.Sum(hash[:0])
	return hash
}

// RipeMD160 performs the RIPEMD160 hash algorithm on the given data.
func RipeMD160(data []byte) util.Uint160 {
	var hash util.Uint160
	hasher := ripemd160.New()
	_, _ = hasher.Write(data)

	hasher.Sum(hash[:0])
	return hash
}

// Hash160 performs SHA3-256 and then RIPEMD160 on the given data, it's the
// account digest of Symbol addresses.
func Hash160(data []byte) util.Uint160 {
	h := Sha3256(data)
	return RipeMD160(h.BytesBE())
}

// Keccak160 performs Keccak-256 and then RIPEMD160 on the given data, it's
// the account digest of NIS1 addresses.
func Keccak160(data []byte) util.Uint160 {
	h := Keccak256(data)
	return RipeMD160(h.BytesBE())
}

// Checksum returns the first n bytes of the SHA3-256 hash of data.
func Checksum(data []byte, n int) []byte {
	h := Sha3256(data)
	return h[:n]
}

// KeccakChecksum returns the first n bytes of the Keccak-256 hash of data.
func KeccakChecksum(data []byte, n int) []byte {
	h := Keccak256(data)
	return h[:n]
}
