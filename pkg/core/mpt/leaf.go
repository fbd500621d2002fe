package mpt

import (
	"fmt"

	"github.com/symbolkit/symbol-go/pkg/errs"
	"github.com/symbolkit/symbol-go/pkg/io"
	"github.com/symbolkit/symbol-go/pkg/util"
)

// LeafNode represents a proof terminator holding a value hash.
type LeafNode struct {
	BaseNode
	Path        []byte
	NibbleCount byte
	Value       util.Uint256
}

var _ Node = (*LeafNode)(nil)

// NewLeafNode returns a leaf node with the given path and value. The path
// must hold exactly nibbleCount nibbles.
func NewLeafNode(path []byte, nibbleCount byte, value util.Uint256) (*LeafNode, error) {
	if len(path) != pathLength(nibbleCount) {
		return nil, fmt.Errorf("%w: path is %d bytes, %d nibbles need %d", errs.ErrInputFormat, len(path), nibbleCount, pathLength(nibbleCount))
	}
	return &LeafNode{
		Path:        append([]byte(nil), path...),
		NibbleCount: nibbleCount,
		Value:       value,
	}, nil
}

// Type implements Node interface.
func (n *LeafNode) Type() NodeType { return LeafT }

// Hash implements Node interface.
func (n *LeafNode) Hash() util.Uint256 {
	return n.getHash(n)
}

// EncodedPath implements Node interface.
func (n *LeafNode) EncodedPath() []byte {
	return EncodePath(n.Path, int(n.NibbleCount), true)
}

func (n *LeafNode) hashData() []byte {
	return append(n.EncodedPath(), n.Value[:]...)
}

// EncodeBinary implements io.Serializable.
func (n *LeafNode) EncodeBinary(w *io.BinWriter) {
	w.WriteB(n.NibbleCount)
	w.WriteBytes(n.Path)
	w.WriteBytes(n.Value[:])
}

// DecodeBinary implements io.Serializable.
func (n *LeafNode) DecodeBinary(r *io.BinReader) {
	n.NibbleCount = r.ReadB()
	n.Path = r.ReadN(pathLength(n.NibbleCount))
	r.ReadBytes(n.Value[:])
	n.invalidateCache()
}
