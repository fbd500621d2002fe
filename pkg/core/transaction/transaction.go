/*
Package transaction implements the binary layout of Symbol transactions,
their signing and their hashing.
*/
package transaction

import (
	"fmt"

	"github.com/symbolkit/symbol-go/pkg/config/netmode"
	"github.com/symbolkit/symbol-go/pkg/crypto/keys"
	"github.com/symbolkit/symbol-go/pkg/io"
)

// Layout offsets of a serialized transaction.
const (
	// HeaderLen is the size of the part preceding the signed data: size,
	// reserved, signature, signer and reserved fields.
	HeaderLen = 4 + 4 + keys.SignatureSize + keys.PublicKeySize + 4
	// TypeIndex is the offset of the type field.
	TypeIndex = HeaderLen + 2
	// BodyIndex is the offset of the type specific part.
	BodyIndex = TypeIndex + 2 + 8 + 8
	// AggregateSignedLen is the signed part of aggregates: the common fields
	// and the transactions hash.
	AggregateSignedLen = BodyIndex - HeaderLen + 32

	signatureIndex = 8
	signerIndex    = signatureIndex + keys.SignatureSize
)

// Body is the type specific part of a transaction.
type Body interface {
	Type() Type
	// EncodeBody writes the body, unresolved addresses are encoded for net.
	EncodeBody(w *io.BinWriter, net netmode.Type)
}

// Common holds the fields shared by all transactions.
type Common struct {
	Network   netmode.Type
	Version   byte
	Deadline  Deadline
	MaxFee    uint64
	Signature [keys.SignatureSize]byte
	Signer    keys.PublicKey
}

// Transaction is a transaction ready to be serialized and signed.
type Transaction struct {
	Common
	Body Body
}

// New creates an unsigned transaction with the default version.
func New(net netmode.Type, deadline Deadline, maxFee uint64, body Body) *Transaction {
	return &Transaction{
		Common: Common{
			Network:  net,
			Version:  DefaultVersion,
			Deadline: deadline,
			MaxFee:   maxFee,
		},
		Body: body,
	}
}

// Type returns the body type.
func (t *Transaction) Type() Type {
	return t.Body.Type()
}

// Bytes returns the serialized transaction.
func (t *Transaction) Bytes() ([]byte, error) {
	if t.Body == nil {
		return nil, fmt.Errorf("transaction has no body")
	}
	body := io.NewBufBinWriter()
	t.Body.EncodeBody(body.BinWriter, t.Network)
	if body.Err != nil {
		return nil, fmt.Errorf("encoding %s body: %w", t.Type(), body.Err)
	}
	b := body.Bytes()

	w := io.NewBufBinWriter()
	w.WriteU32LE(uint32(BodyIndex + len(b)))
	w.WriteZeroes(4)
	w.WriteBytes(t.Signature[:])
	w.WriteBytes(t.Signer[:])
	w.WriteZeroes(4)
	w.WriteB(t.Version)
	w.WriteB(byte(t.Network))
	w.WriteU16LE(uint16(t.Type()))
	w.WriteU64LE(t.MaxFee)
	w.WriteU64LE(uint64(t.Deadline))
	w.WriteBytes(b)
	if w.Err != nil {
		return nil, w.Err
	}
	return w.Bytes(), nil
}
