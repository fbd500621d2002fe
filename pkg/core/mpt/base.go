package mpt

import (
	"github.com/symbolkit/symbol-go/pkg/crypto/hash"
	"github.com/symbolkit/symbol-go/pkg/util"
)

// BaseNode implements hash caching every node needs. It's a basic node
// building block intended to be included into all node types.
type BaseNode struct {
	hash      util.Uint256
	hashValid bool
}

// hashable is implemented by nodes to provide their hash pre-image.
type hashable interface {
	hashData() []byte
}

// getHash returns a hash of this BaseNode.
func (b *BaseNode) getHash(n hashable) util.Uint256 {
	if !b.hashValid {
		b.updateHash(n)
	}
	return b.hash
}

// updateHash updates hash field for this BaseNode.
func (b *BaseNode) updateHash(n hashable) {
	b.hash = hash.Sha3256(n.hashData())
	b.hashValid = true
}

// invalidateCache sets all cache fields to invalid state.
func (b *BaseNode) invalidateCache() {
	b.hashValid = false
}
