package mpt

// pathLength returns the number of bytes holding nibbleCount nibbles.
func pathLength(nibbleCount byte) int {
	return (int(nibbleCount) + 1) / 2
}

// nibbleAt returns the i-th nibble of the path, high nibble first.
func nibbleAt(path []byte, i int) byte {
	b := path[i/2]
	if i%2 == 0 {
		return b >> 4
	}
	return b & 0x0F
}

// EncodePath returns the compact (hex-prefix) encoding of the first
// nibbleCount nibbles of path. The high nibble of the first byte holds flags:
// 0x2 for leaves and 0x1 for an odd number of nibbles, in which case the low
// nibble holds the first path nibble. The rest is packed two nibbles per
// byte. The result is nibbleCount/2+1 bytes long. It panics if path is
// shorter than nibbleCount nibbles.
func EncodePath(path []byte, nibbleCount int, isLeaf bool) []byte {
	encoded := make([]byte, nibbleCount/2+1)
	if isLeaf {
		encoded[0] = 0x20
	}
	i := 0
	if nibbleCount%2 == 1 {
		encoded[0] |= 0x10 | nibbleAt(path, 0)
		i++
	}
	for ; i < nibbleCount; i += 2 {
		encoded[i/2+1] = nibbleAt(path, i)<<4 | nibbleAt(path, i+1)
	}
	return encoded
}
