package mpt

import (
	"fmt"
	"sort"

	"github.com/symbolkit/symbol-go/pkg/errs"
	"github.com/symbolkit/symbol-go/pkg/io"
	"github.com/symbolkit/symbol-go/pkg/util"
)

// childrenCount is the number of link slots in a branch.
const childrenCount = 16

// Link is a single present child of a branch: the nibble it hangs off and
// the hash of the child node.
type Link struct {
	Bit  byte
	Hash util.Uint256
}

// BranchNode represents a node with up to 16 children addressed by nibble.
type BranchNode struct {
	BaseNode
	Path        []byte
	NibbleCount byte
	LinkMask    uint16
	Links       []Link
}

var _ Node = (*BranchNode)(nil)

// NewBranchNode returns a new branch node with the given path and links.
// Links are sorted by bit, bits must be unique and in 0..15.
func NewBranchNode(path []byte, nibbleCount byte, links []Link) (*BranchNode, error) {
	if len(path) != pathLength(nibbleCount) {
		return nil, fmt.Errorf("%w: path is %d bytes, %d nibbles need %d", errs.ErrInputFormat, len(path), nibbleCount, pathLength(nibbleCount))
	}
	b := &BranchNode{
		Path:        append([]byte(nil), path...),
		NibbleCount: nibbleCount,
		Links:       append([]Link(nil), links...),
	}
	sort.Slice(b.Links, func(i, j int) bool { return b.Links[i].Bit < b.Links[j].Bit })
	for _, l := range b.Links {
		if l.Bit >= childrenCount {
			return nil, fmt.Errorf("%w: %d", ErrBadLinkBit, l.Bit)
		}
		if b.LinkMask&(1<<l.Bit) != 0 {
			return nil, fmt.Errorf("%w: duplicate bit %d", ErrBadLinkBit, l.Bit)
		}
		b.LinkMask |= 1 << l.Bit
	}
	return b, nil
}

// Type implements Node interface.
func (b *BranchNode) Type() NodeType { return BranchT }

// Hash implements Node interface.
func (b *BranchNode) Hash() util.Uint256 {
	return b.getHash(b)
}

// EncodedPath implements Node interface.
func (b *BranchNode) EncodedPath() []byte {
	return EncodePath(b.Path, int(b.NibbleCount), false)
}

// HasLink reports whether the branch has a child at the given nibble.
func (b *BranchNode) HasLink(bit byte) bool {
	return bit < childrenCount && b.LinkMask&(1<<bit) != 0
}

// Link returns the child hash at the given nibble.
func (b *BranchNode) Link(bit byte) (util.Uint256, bool) {
	for _, l := range b.Links {
		if l.Bit == bit {
			return l.Hash, true
		}
	}
	return util.Uint256{}, false
}

// hashData returns the encoded path followed by 16 link slots, absent ones
// zero-filled.
func (b *BranchNode) hashData() []byte {
	path := b.EncodedPath()
	data := make([]byte, len(path)+childrenCount*util.Uint256Size)
	copy(data, path)
	for _, l := range b.Links {
		copy(data[len(path)+int(l.Bit)*util.Uint256Size:], l.Hash[:])
	}
	return data
}

// EncodeBinary implements io.Serializable. The marker is not written.
func (b *BranchNode) EncodeBinary(w *io.BinWriter) {
	w.WriteB(b.NibbleCount)
	w.WriteBytes(b.Path)
	w.WriteU16LE(b.LinkMask)
	for _, l := range b.Links {
		w.WriteBytes(l.Hash[:])
	}
}

// DecodeBinary implements io.Serializable. The marker is expected to be
// consumed already.
func (b *BranchNode) DecodeBinary(r *io.BinReader) {
	b.NibbleCount = r.ReadB()
	b.Path = r.ReadN(pathLength(b.NibbleCount))
	b.LinkMask = r.ReadU16LE()
	if r.Err != nil {
		return
	}
	b.Links = b.Links[:0]
	for bit := byte(0); bit < childrenCount; bit++ {
		if b.LinkMask&(1<<bit) == 0 {
			continue
		}
		l := Link{Bit: bit}
		r.ReadBytes(l.Hash[:])
		if r.Err != nil {
			return
		}
		b.Links = append(b.Links, l)
	}
	b.invalidateCache()
}
