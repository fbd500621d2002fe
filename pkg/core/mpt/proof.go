package mpt

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/symbolkit/symbol-go/pkg/errs"
	"github.com/symbolkit/symbol-go/pkg/io"
	"github.com/symbolkit/symbol-go/pkg/util"
)

// Verification errors.
var (
	// ErrRootMismatch is returned when the first node hash differs from the
	// expected root.
	ErrRootMismatch = errors.New("proof root hash mismatch")
	// ErrBrokenLink is returned when a branch has no link to the node
	// following it.
	ErrBrokenLink = errors.New("proof branch does not link to the next node")
)

// Tree is a parsed proof: branches from the root down, optionally ending
// with a leaf.
type Tree struct {
	Nodes []Node
}

// ParseTree parses a raw proof. Parsing stops at the first leaf, any bytes
// after it fail with ErrTrailingData. No partial tree is returned on error.
func ParseTree(raw []byte) (*Tree, error) {
	if len(raw) == 0 {
		return nil, ErrEmptyProof
	}
	var (
		r = io.NewBinReaderFromBuf(raw)
		t = new(Tree)
	)
	for r.Len() > 0 {
		start := r.Pos
		var n NodeObject
		n.DecodeBinary(r)
		if r.Err != nil {
			return nil, readErr(r.Err, start)
		}
		t.Nodes = append(t.Nodes, n.Node)
		if n.Node.Type() == LeafT {
			if r.Len() != 0 {
				return nil, fmt.Errorf("%w: %d bytes at offset %d", ErrTrailingData, r.Len(), r.Pos)
			}
			break
		}
	}
	return t, nil
}

// ParseTreeString parses a hex-encoded proof.
func ParseTreeString(s string) (*Tree, error) {
	raw, err := hex.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("%w: proof hex: %v", errs.ErrInputFormat, err)
	}
	return ParseTree(raw)
}

// Root returns the first node of the tree.
func (t *Tree) Root() Node {
	if len(t.Nodes) == 0 {
		return nil
	}
	return t.Nodes[0]
}

// RootHash returns the recomputed hash of the root node.
func (t *Tree) RootHash() util.Uint256 {
	if root := t.Root(); root != nil {
		return root.Hash()
	}
	return util.Uint256{}
}

// Leaf returns the terminating leaf if there is one.
func (t *Tree) Leaf() (*LeafNode, bool) {
	if len(t.Nodes) == 0 {
		return nil, false
	}
	l, ok := t.Nodes[len(t.Nodes)-1].(*LeafNode)
	return l, ok
}

// Bytes returns the serialized tree.
func (t *Tree) Bytes() []byte {
	w := io.NewBufBinWriter()
	for _, n := range t.Nodes {
		NodeObject{n}.EncodeBinary(w.BinWriter)
	}
	return w.Bytes()
}

// Verify checks that the root hashes to expected and that every branch
// links to the node following it.
func (t *Tree) Verify(expected util.Uint256) error {
	if h := t.RootHash(); !h.Equals(expected) {
		return fmt.Errorf("%w: got %s, expected %s", ErrRootMismatch, h, expected)
	}
	for i := 0; i+1 < len(t.Nodes); i++ {
		b, ok := t.Nodes[i].(*BranchNode)
		if !ok {
			return fmt.Errorf("%w: node %d is a %s", ErrBrokenLink, i, t.Nodes[i].Type())
		}
		next := t.Nodes[i+1].Hash()
		if !b.hasLinkTo(next) {
			return fmt.Errorf("%w: node %d, child %s", ErrBrokenLink, i, next)
		}
	}
	return nil
}

func (b *BranchNode) hasLinkTo(h util.Uint256) bool {
	for _, l := range b.Links {
		if l.Hash.Equals(h) {
			return true
		}
	}
	return false
}

// VerifyProof parses a hex-encoded proof and checks it against the expected
// root. Malformed input is reported as an error, a well-formed proof that
// does not match gives false.
func VerifyProof(rawHex string, expected util.Uint256) (bool, error) {
	t, err := ParseTreeString(rawHex)
	if err != nil {
		return false, err
	}
	return t.Verify(expected) == nil, nil
}
