package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUint160(t *testing.T) {
	var u Uint160
	u[0] = 0xAB
	u[19] = 0x01
	require.Equal(t, "AB00000000000000000000000000000000000001", u.String())
	require.Len(t, u.BytesBE(), Uint160Size)
	require.True(t, u.Equals(u))
	require.False(t, u.Equals(Uint160{}))
}
