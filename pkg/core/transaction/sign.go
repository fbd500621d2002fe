package transaction

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/symbolkit/symbol-go/pkg/config/netmode"
	"github.com/symbolkit/symbol-go/pkg/crypto/hash"
	"github.com/symbolkit/symbol-go/pkg/crypto/keys"
	"github.com/symbolkit/symbol-go/pkg/encoding/address"
	"github.com/symbolkit/symbol-go/pkg/errs"
	"github.com/symbolkit/symbol-go/pkg/util"
)

// signedPart returns the part of a serialized transaction covered by the
// signature and the hash. For aggregates only the common fields and the
// transactions hash are covered, cosignatures are appended later.
func signedPart(b []byte, typ Type) ([]byte, error) {
	end := len(b)
	if typ.IsAggregate() {
		end = HeaderLen + AggregateSignedLen
	}
	if len(b) < HeaderLen || len(b) < end {
		return nil, fmt.Errorf("%w: %s transaction is %d bytes long", errs.ErrInputFormat, typ, len(b))
	}
	return b[HeaderLen:end], nil
}

// SigningBytes returns the data a signer signs for the serialized
// transaction: the generation hash followed by the signed part.
func SigningBytes(b []byte, generationHash util.Uint256, typ Type) ([]byte, error) {
	part, err := signedPart(b, typ)
	if err != nil {
		return nil, err
	}
	res := make([]byte, 0, util.Uint256Size+len(part))
	res = append(res, generationHash[:]...)
	return append(res, part...), nil
}

// SignedTransaction is a signed transaction ready to be announced.
type SignedTransaction struct {
	// Payload is the uppercase hex of the serialized transaction.
	Payload string
	Hash    util.Uint256
	Signer  keys.PublicKey
	Type    Type
	Network netmode.Type
}

// Sign signs the transaction for the network identified by generationHash.
// The transaction itself is not modified.
func Sign(tx *Transaction, signer keys.Signer, generationHash util.Uint256) (*SignedTransaction, error) {
	pub := signer.PublicKey()
	t := *tx
	t.Signer = *pub
	t.Signature = [keys.SignatureSize]byte{}
	b, err := t.Bytes()
	if err != nil {
		return nil, err
	}
	data, err := SigningBytes(b, generationHash, t.Type())
	if err != nil {
		return nil, err
	}
	sig := signer.Sign(data)
	if len(sig) != keys.SignatureSize {
		return nil, fmt.Errorf("signer returned %d byte signature", len(sig))
	}

	payload := make([]byte, 0, len(b))
	payload = append(payload, b[:signatureIndex]...)
	payload = append(payload, sig...)
	payload = append(payload, pub[:]...)
	payload = append(payload, b[HeaderLen-4:]...)

	h, err := HashBytes(payload, generationHash)
	if err != nil {
		return nil, err
	}
	return &SignedTransaction{
		Payload: strings.ToUpper(hex.EncodeToString(payload)),
		Hash:    h,
		Signer:  *pub,
		Type:    t.Type(),
		Network: t.Network,
	}, nil
}

// Hash computes the hash of a hex encoded transaction payload.
func Hash(payload string, generationHash util.Uint256) (util.Uint256, error) {
	b, err := hex.DecodeString(strings.TrimSpace(payload))
	if err != nil {
		return util.Uint256{}, fmt.Errorf("%w: payload hex: %v", errs.ErrInputFormat, err)
	}
	return HashBytes(b, generationHash)
}

// HashBytes computes the hash of a serialized transaction:
// SHA3-256(signature ++ signer ++ generation hash ++ signed part).
// The size field does not affect the result.
func HashBytes(b []byte, generationHash util.Uint256) (util.Uint256, error) {
	part, err := signedPart(b, PayloadType(b))
	if err != nil {
		return util.Uint256{}, err
	}
	return hash.Sha3256Concat(b[signatureIndex:signerIndex], b[signerIndex:HeaderLen-4], generationHash[:], part), nil
}

// PayloadType returns the type field of a serialized transaction or zero if
// it's too short.
func PayloadType(b []byte) Type {
	if len(b) < TypeIndex+2 {
		return 0
	}
	return Type(binary.LittleEndian.Uint16(b[TypeIndex:]))
}

// SignerAddress returns the address of the signer.
func (s *SignedTransaction) SignerAddress() (address.Address, error) {
	return s.Signer.Address(s.Network)
}

// Bytes returns the decoded payload.
func (s *SignedTransaction) Bytes() ([]byte, error) {
	b, err := hex.DecodeString(s.Payload)
	if err != nil {
		return nil, fmt.Errorf("%w: payload hex: %v", errs.ErrInputFormat, err)
	}
	return b, nil
}

// VerifySignature checks the payload signature against the signer.
func (s *SignedTransaction) VerifySignature(generationHash util.Uint256) (bool, error) {
	b, err := s.Bytes()
	if err != nil {
		return false, err
	}
	data, err := SigningBytes(b, generationHash, PayloadType(b))
	if err != nil {
		return false, err
	}
	var signer keys.PublicKey
	copy(signer[:], b[signerIndex:])
	if !signer.Equal(&s.Signer) {
		return false, nil
	}
	return signer.Verify(b[signatureIndex:signerIndex], data), nil
}

// Cosign creates a cosignature of the signed transaction.
func Cosign(s *SignedTransaction, signer keys.Signer) Cosignature {
	c := Cosignature{Signer: *signer.PublicKey()}
	copy(c.Signature[:], signer.Sign(s.Hash[:]))
	return c
}

// VerifyCosignature checks a cosignature against the transaction hash.
func VerifyCosignature(h util.Uint256, c Cosignature) bool {
	return c.Signer.Verify(c.Signature[:], h[:])
}
