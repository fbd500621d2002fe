/*
Package mpt implements verification of compact Merkle-Patricia state proofs.
A proof is a flat byte stream of branch nodes, root first, optionally
terminated by a single leaf node.
*/
package mpt

import (
	"errors"
	"fmt"

	"github.com/symbolkit/symbol-go/pkg/errs"
	"github.com/symbolkit/symbol-go/pkg/io"
	"github.com/symbolkit/symbol-go/pkg/util"
)

// NodeType represents node type marker.
type NodeType byte

// Node types definitions.
const (
	BranchT NodeType = 0x00
	LeafT   NodeType = 0xFF
)

// Parse errors, all of them wrap errs.ErrParse.
var (
	// ErrUnexpectedMarker is returned for a node marker that is neither
	// BranchT nor LeafT.
	ErrUnexpectedMarker = fmt.Errorf("%w: unexpected node marker", errs.ErrParse)
	// ErrTruncated is returned when the stream ends in the middle of a node.
	ErrTruncated = fmt.Errorf("%w: truncated proof", errs.ErrParse)
	// ErrBadLinkBit is returned for a branch link index outside of 0..15.
	ErrBadLinkBit = fmt.Errorf("%w: link bit out of range", errs.ErrParse)
	// ErrTrailingData is returned for data following a leaf node.
	ErrTrailingData = fmt.Errorf("%w: data after leaf node", errs.ErrParse)
	// ErrEmptyProof is returned for an empty stream.
	ErrEmptyProof = fmt.Errorf("%w: empty proof", errs.ErrParse)
)

// Node represents common interface of proof nodes.
type Node interface {
	io.Serializable
	Hash() util.Uint256
	Type() NodeType
	// EncodedPath returns the compact path encoding of the node.
	EncodedPath() []byte
}

// NodeObject represents Node together with its type.
// It is used for serialization/deserialization where type info
// is also expected.
type NodeObject struct {
	Node
}

// String implements the stringer interface.
func (t NodeType) String() string {
	switch t {
	case BranchT:
		return "Branch"
	case LeafT:
		return "Leaf"
	default:
		return fmt.Sprintf("Unknown(0x%02X)", byte(t))
	}
}

// EncodeBinary implements io.Encodable.
func (n NodeObject) EncodeBinary(w *io.BinWriter) {
	w.WriteB(byte(n.Node.Type()))
	n.Node.EncodeBinary(w)
}

// DecodeBinary implements io.Decodable.
func (n *NodeObject) DecodeBinary(r *io.BinReader) {
	typ := NodeType(r.ReadB())
	if r.Err != nil {
		return
	}
	switch typ {
	case BranchT:
		n.Node = new(BranchNode)
	case LeafT:
		n.Node = new(LeafNode)
	default:
		r.Err = fmt.Errorf("%w: 0x%02X at offset %d", ErrUnexpectedMarker, byte(typ), r.Pos-1)
		return
	}
	n.Node.DecodeBinary(r)
}

// readErr converts a reader error to the parse error taxonomy.
func readErr(err error, pos int) error {
	if errors.Is(err, errs.ErrParse) {
		return err
	}
	return fmt.Errorf("%w at offset %d: %v", ErrTruncated, pos, err)
}
