package mpt

import (
	"github.com/symbolkit/symbol-go/pkg/util"
)

// StateMerkleProof ties a state hash to a proof path and the root it is
// checked against.
type StateMerkleProof struct {
	StateHash util.Uint256
	Tree      *Tree
	RootHash  util.Uint256
	LeafValue util.Uint256
	Valid     bool
}

// NewStateMerkleProof parses the proof and checks it. The proof is valid when
// it ends with a leaf holding stateHash and verifies against expectedRoot.
func NewStateMerkleProof(stateHash util.Uint256, rawHex string, expectedRoot util.Uint256) (*StateMerkleProof, error) {
	t, err := ParseTreeString(rawHex)
	if err != nil {
		return nil, err
	}
	p := &StateMerkleProof{
		StateHash: stateHash,
		Tree:      t,
		RootHash:  t.RootHash(),
	}
	leaf, ok := t.Leaf()
	if ok {
		p.LeafValue = leaf.Value
	}
	p.Valid = ok && leaf.Value.Equals(stateHash) && t.Verify(expectedRoot) == nil
	return p, nil
}
