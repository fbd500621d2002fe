package transaction

import (
	"fmt"

	"github.com/symbolkit/symbol-go/pkg/config/netmode"
	"github.com/symbolkit/symbol-go/pkg/crypto/hash"
	"github.com/symbolkit/symbol-go/pkg/crypto/keys"
	"github.com/symbolkit/symbol-go/pkg/errs"
	"github.com/symbolkit/symbol-go/pkg/io"
	"github.com/symbolkit/symbol-go/pkg/util"
)

// EmbeddedHeaderLen is the size of the header of an embedded transaction:
// size, reserved, signer, reserved, version, network and type.
const EmbeddedHeaderLen = 4 + 4 + keys.PublicKeySize + 4 + 1 + 1 + 2

// embeddedAlignment is the alignment of embedded transactions within an
// aggregate.
const embeddedAlignment = 8

// EmbeddedTransaction is an inner transaction of an aggregate. It has no
// fee, deadline or signature of its own.
type EmbeddedTransaction struct {
	Signer  keys.PublicKey
	Network netmode.Type
	Version byte
	Body    Body
}

// NewEmbedded creates an embedded transaction with the default version.
func NewEmbedded(signer keys.PublicKey, net netmode.Type, body Body) EmbeddedTransaction {
	return EmbeddedTransaction{Signer: signer, Network: net, Version: DefaultVersion, Body: body}
}

// Bytes returns the serialized embedded transaction without padding.
func (e EmbeddedTransaction) Bytes() ([]byte, error) {
	if e.Body == nil {
		return nil, fmt.Errorf("embedded transaction has no body")
	}
	if e.Body.Type().IsAggregate() {
		return nil, fmt.Errorf("%w: aggregates can't be embedded", errs.ErrInputFormat)
	}
	body := io.NewBufBinWriter()
	e.Body.EncodeBody(body.BinWriter, e.Network)
	if body.Err != nil {
		return nil, body.Err
	}
	b := body.Bytes()

	w := io.NewBufBinWriter()
	w.WriteU32LE(uint32(EmbeddedHeaderLen + len(b)))
	w.WriteZeroes(4)
	w.WriteBytes(e.Signer[:])
	w.WriteZeroes(4)
	w.WriteB(e.Version)
	w.WriteB(byte(e.Network))
	w.WriteU16LE(uint16(e.Body.Type()))
	w.WriteBytes(b)
	if w.Err != nil {
		return nil, w.Err
	}
	return w.Bytes(), nil
}

// Hash returns the hash of the embedded transaction, used as a leaf of the
// aggregate transactions hash.
func (e EmbeddedTransaction) Hash() (util.Uint256, error) {
	b, err := e.Bytes()
	if err != nil {
		return util.Uint256{}, err
	}
	return hash.Sha3256(b), nil
}

// Cosignature is an additional signature of an aggregate.
type Cosignature struct {
	Version   uint64
	Signer    keys.PublicKey
	Signature [keys.SignatureSize]byte
}

// EncodeBinary implements io.Encodable.
func (c Cosignature) EncodeBinary(w *io.BinWriter) {
	w.WriteU64LE(c.Version)
	w.WriteBytes(c.Signer[:])
	w.WriteBytes(c.Signature[:])
}

// DecodeBinary implements io.Decodable.
func (c *Cosignature) DecodeBinary(r *io.BinReader) {
	c.Version = r.ReadU64LE()
	r.ReadBytes(c.Signer[:])
	r.ReadBytes(c.Signature[:])
}

// Aggregate bundles embedded transactions signed together.
type Aggregate struct {
	// Kind is either AggregateCompleteType or AggregateBondedType.
	Kind         Type
	Transactions []EmbeddedTransaction
	Cosignatures []Cosignature
}

var _ Body = (*Aggregate)(nil)

// NewAggregateComplete creates a complete aggregate body.
func NewAggregateComplete(txs []EmbeddedTransaction, cosigs []Cosignature) *Aggregate {
	return &Aggregate{Kind: AggregateCompleteType, Transactions: txs, Cosignatures: cosigs}
}

// NewAggregateBonded creates a bonded aggregate body.
func NewAggregateBonded(txs []EmbeddedTransaction) *Aggregate {
	return &Aggregate{Kind: AggregateBondedType, Transactions: txs}
}

// Type implements Body interface.
func (a *Aggregate) Type() Type {
	if a.Kind.IsAggregate() {
		return a.Kind
	}
	return AggregateCompleteType
}

// TransactionsHash returns the Merkle root of the embedded transaction
// hashes.
func (a *Aggregate) TransactionsHash() (util.Uint256, error) {
	hashes := make([]util.Uint256, len(a.Transactions))
	for i, tx := range a.Transactions {
		h, err := tx.Hash()
		if err != nil {
			return util.Uint256{}, fmt.Errorf("embedded transaction %d: %w", i, err)
		}
		hashes[i] = h
	}
	return hash.CalcMerkleRoot(hashes), nil
}

// EncodeBody implements Body interface.
func (a *Aggregate) EncodeBody(w *io.BinWriter, _ netmode.Type) {
	txsHash, err := a.TransactionsHash()
	if err != nil {
		w.Err = err
		return
	}
	payload := io.NewBufBinWriter()
	for _, tx := range a.Transactions {
		b, err := tx.Bytes()
		if err != nil {
			w.Err = err
			return
		}
		payload.WriteBytes(b)
		payload.WriteZeroes(padding(len(b)))
	}
	if payload.Err != nil {
		w.Err = payload.Err
		return
	}
	p := payload.Bytes()

	w.WriteBytes(txsHash[:])
	w.WriteU32LE(uint32(len(p)))
	w.WriteZeroes(4)
	w.WriteBytes(p)
	io.WriteArray(w, a.Cosignatures)
}

func padding(n int) int {
	return (embeddedAlignment - n%embeddedAlignment) % embeddedAlignment
}
