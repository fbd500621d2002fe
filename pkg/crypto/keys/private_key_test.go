package keys

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/symbolkit/symbol-go/pkg/config/netmode"
	"github.com/symbolkit/symbol-go/pkg/errs"
)

const (
	testPrivateKey = "26b64cb10f005e5988a36744ca19e20d835ccc7c105aaa5f3b212da593180930"
	testPublicKey  = "9801508C58666C746F471538E43002B85B1CD542F9874B2861183919BA8787B6"
	testSignature  = "975C178C61B3AD1706559796E8C18AE98182AAE547AEC3C3EBDB988D57553D60" +
		"0146635E4814F688C2591BD7333C64D80E23272518C6321F6B471FF7FF67ED0C"
)

func TestPrivateKey(t *testing.T) {
	priv, err := NewPrivateKeyFromHex(testPrivateKey)
	require.NoError(t, err)
	require.Equal(t, testPrivateKey, priv.String())
	require.Equal(t, testPublicKey, priv.PublicKey().String())

	testCases := map[netmode.Type]string{
		netmode.TestNet: "TDLGYM2CBZKBDGK3VT6KFMUM6HE7LXL2WGIUNBY",
		netmode.MainNet: "NDLGYM2CBZKBDGK3VT6KFMUM6HE7LXL2WEK6PPI",
	}
	for net, expected := range testCases {
		addr, err := priv.Address(net)
		require.NoError(t, err)
		assert.Equal(t, expected, addr.String(), net.String())
	}
	_, err = priv.Address(netmode.Type(0x17))
	require.ErrorIs(t, err, errs.ErrUnknownNetwork)
}

func TestPrivateKeyErrors(t *testing.T) {
	_, err := NewPrivateKeyFromHex("zz")
	require.ErrorIs(t, err, errs.ErrInputFormat)

	_, err = NewPrivateKeyFromBytes(make([]byte, 31))
	require.ErrorIs(t, err, errs.ErrInputFormat)
}

func TestSign(t *testing.T) {
	priv, err := NewPrivateKeyFromHex(testPrivateKey)
	require.NoError(t, err)

	sig := priv.Sign([]byte("symbol"))
	require.Equal(t, testSignature, strings.ToUpper(hex.EncodeToString(sig)))

	pub := priv.PublicKey()
	require.True(t, pub.Verify(sig, []byte("symbol")))
	require.False(t, pub.Verify(sig, []byte("symbo1")))
	require.False(t, pub.Verify(sig[:10], []byte("symbol")))
}

func TestNewPrivateKey(t *testing.T) {
	priv, err := NewPrivateKey()
	require.NoError(t, err)
	restored, err := NewPrivateKeyFromBytes(priv.Bytes())
	require.NoError(t, err)
	require.True(t, priv.PublicKey().Equal(restored.PublicKey()))
}
