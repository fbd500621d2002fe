package hash

import (
	"github.com/symbolkit/symbol-go/pkg/util"
)

// CalcMerkleRoot calculates the SHA3-256 Merkle root hash value for the
// given slice of hashes, the one used for aggregate transaction hashes. When
// a level has an odd number of nodes, the last one is paired with itself.
// It uses the given slice as a scratchpad, so it will destroy its contents in
// the process. An empty slice gives a zero hash.
func CalcMerkleRoot(hashes []util.Uint256) util.Uint256 {
	if len(hashes) == 0 {
		return util.Uint256{}
	}
	for len(hashes) > 1 {
		if len(hashes)%2 == 1 {
			hashes = append(hashes, hashes[len(hashes)-1])
		}
		for i := 0; i < len(hashes)/2; i++ {
			hashes[i] = Sha3256Concat(hashes[2*i][:], hashes[2*i+1][:])
		}
		hashes = hashes[:len(hashes)/2]
	}
	return hashes[0]
}
