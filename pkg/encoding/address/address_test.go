package address

import (
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/symbolkit/symbol-go/pkg/config/netmode"
	"github.com/symbolkit/symbol-go/pkg/errs"
)

const publicKey = "2E834140FD66CF87B254A693A2C7862C819217B676D3943267156625E816EC6F"

func TestFromPublicKey(t *testing.T) {
	testCases := map[netmode.Type]string{
		netmode.PrivateTest: "VATNE7Q5BITMUTRRN6IB4I7FLSDRDWZA35C4KNQ",
		netmode.Private:     "PATNE7Q5BITMUTRRN6IB4I7FLSDRDWZA35OETNI",
		netmode.MainNet:     "NATNE7Q5BITMUTRRN6IB4I7FLSDRDWZA34SQ33Y",
		netmode.TestNet:     "TATNE7Q5BITMUTRRN6IB4I7FLSDRDWZA37JGO5Q",
	}
	for net, expected := range testCases {
		t.Run(net.String(), func(t *testing.T) {
			a, err := FromPublicKeyHex(publicKey, net)
			require.NoError(t, err)
			require.Equal(t, expected, a.String())
			require.Equal(t, net, a.NetworkType())
			require.Equal(t, byte(net), a.BytesBE()[0])
			require.True(t, a.IsValid())
			require.True(t, IsValidRaw(a.String()))
			require.True(t, IsValidEncoded(a.Encoded()))

			decoded, err := DecodeString(a.String())
			require.NoError(t, err)
			require.Equal(t, a, decoded)
		})
	}

	a, err := FromPublicKeyHex("b4f12e7c9f6946091e2cb8b6d3a12b50d17ccbbf646386ea27ce2946a7423dcf", netmode.PrivateTest)
	require.NoError(t, err)
	require.Equal(t, "VARNASAS2BIAB6LMFA3FPMGBPGIJGK6IJGOH3FA", a.String())
}

func TestFromPublicKeyErrors(t *testing.T) {
	_, err := FromPublicKeyHex(publicKey[2:], netmode.MainNet)
	require.ErrorIs(t, err, errs.ErrInputFormat)
	_, err = FromPublicKeyHex("ZZ"+publicKey[2:], netmode.MainNet)
	require.ErrorIs(t, err, errs.ErrInputFormat)
	_, err = FromPublicKey(make([]byte, 33), netmode.MainNet)
	require.ErrorIs(t, err, errs.ErrInputFormat)
	_, err = FromPublicKey(make([]byte, 32), netmode.Type(0x17))
	require.ErrorIs(t, err, errs.ErrUnknownNetwork)
}

func TestDeterministic(t *testing.T) {
	pub, err := hex.DecodeString(publicKey)
	require.NoError(t, err)
	for _, net := range netmode.All() {
		a1, err := FromPublicKey(pub, net)
		require.NoError(t, err)
		a2, err := FromPublicKey(pub, net)
		require.NoError(t, err)
		require.Equal(t, a1, a2)
		require.Equal(t, net.Prefix(), a1.String()[0])
		require.True(t, a1.IsValid())
	}
}

func TestPretty(t *testing.T) {
	a, err := FromPublicKeyHex(publicKey, netmode.PrivateTest)
	require.NoError(t, err)
	require.Equal(t, "VATNE7-Q5BITM-UTRRN6-IB4I7F-LSDRDW-ZA35C4-KNQ", a.Pretty())

	parsed, err := DecodeString("VATNE7-Q5BITM-UTRRN6-IB4I7F-LSDRDW-ZA35C4-KNQ")
	require.NoError(t, err)
	require.Equal(t, a, parsed)
	require.Equal(t, netmode.PrivateTest, parsed.NetworkType())
}

func TestDecodeString(t *testing.T) {
	t.Run("networks", func(t *testing.T) {
		for raw, net := range map[string]netmode.Type{
			"VATNE7Q5BITMUTRRN6IB4I7FLSDRDWZA35C4KNQ": netmode.PrivateTest,
			"PATNE7Q5BITMUTRRN6IB4I7FLSDRDWZA35OETNI": netmode.Private,
			"NATNE7Q5BITMUTRRN6IB4I7FLSDRDWZA34SQ33Y": netmode.MainNet,
			"TATNE7Q5BITMUTRRN6IB4I7FLSDRDWZA37JGO5Q": netmode.TestNet,
		} {
			a, err := DecodeString(raw)
			require.NoError(t, err)
			require.Equal(t, net, a.NetworkType())
		}
	})
	t.Run("lower case", func(t *testing.T) {
		a, err := DecodeString("tatne7q5bitmutrrn6ib4i7flsdrdwza37jgo5q")
		require.NoError(t, err)
		require.Equal(t, "TATNE7Q5BITMUTRRN6IB4I7FLSDRDWZA37JGO5Q", a.String())
	})
	t.Run("whitespace", func(t *testing.T) {
		a, err := DecodeString(" \tTATNE7Q5BITMUTRRN6IB4I7FLSDRDWZA37JGO5Q\n")
		require.NoError(t, err)
		require.Equal(t, "TATNE7Q5BITMUTRRN6IB4I7FLSDRDWZA37JGO5Q", a.String())
	})
	t.Run("equality", func(t *testing.T) {
		a, err := DecodeString("TATNE7Q5BITMUTRRN6IB4I7FLSDRDWZA37JGO5Q")
		require.NoError(t, err)
		b, err := DecodeString("TATNE7Q5BITMUTRRN6IB4I7FLSDRDWZA37JGO5Q")
		require.NoError(t, err)
		c, err := DecodeString("TDR6EW2WBHJQDYMNGFX2UBZHMMZC5PGL2YBO3KA")
		require.NoError(t, err)
		require.Equal(t, a, b)
		require.NotEqual(t, a, c)
	})
	t.Run("encoded", func(t *testing.T) {
		encoded := "917E7E29A01014C2F3000000000000000000000000000000"
		a, err := DecodeString(encoded)
		require.NoError(t, err)
		require.Equal(t, encoded, a.Encoded())
		require.Equal(t, netmode.MijinTest, a.NetworkType())

		a, err = DecodeString("6823BB7C3C089D996585466380EDBDC19D4959184893E38C")
		require.NoError(t, err)
		require.Equal(t, netmode.MainNet, a.NetworkType())
		require.True(t, a.IsValid())
	})
	t.Run("unknown network", func(t *testing.T) {
		_, err := DecodeString("ZCTVW23D2MN5VE4AQ4TZIDZENGNOZXPRPSDRSFR")
		require.ErrorIs(t, err, errs.ErrUnknownNetwork)
		_, err = DecodeString("0023BB7C3C089D996585466380EDBDC19D4959184893E38C")
		require.ErrorIs(t, err, errs.ErrUnknownNetwork)
	})
	t.Run("bad length", func(t *testing.T) {
		_, err := DecodeString("ZCTVW234AQ4TZIDZENGNOZXPRPSDRSFRF")
		require.ErrorIs(t, err, errs.ErrInputFormat)
		_, err = DecodeString("")
		require.ErrorIs(t, err, errs.ErrInputFormat)
	})
	t.Run("bad alphabet", func(t *testing.T) {
		_, err := DecodeString("TATNE7Q5BITMUTRRN6IB4I7FLSDRDWZA37JGO51")
		require.ErrorIs(t, err, errs.ErrInputFormat)
		_, err = DecodeString("Z823BB7C3C089D996585466380EDBDC19D4959184893E38C")
		require.ErrorIs(t, err, errs.ErrInputFormat)
	})
	t.Run("bytes", func(t *testing.T) {
		_, err := DecodeBytes(make([]byte, 25))
		require.ErrorIs(t, err, errs.ErrInputFormat)
	})
}

func TestIsValidRaw(t *testing.T) {
	for _, raw := range []string{
		"VATNE7Q5BITMUTRRN6IB4I7FLSDRDWZA35C4KNQ",
		"NAR3W7B4BCOZSZMFIZRYB3N5YGOUSWIYJCJ6HDA",
		"TDZ4373ASEGJ7S7GQTKF26TIIMC7HK5EWEPHRSI",
		"PDZ4373ASEGJ7S7GQTKF26TIIMC7HK5EWELJG3Y",
		"MCOVTFVVDZGNURZFU4IJLJR37X5TXNWMTTARXZQ",
	} {
		assert.True(t, IsValidRaw(raw), raw)
	}
	for _, raw := range []string{
		"SATNE7Q5BITMUTRRN6YB4I7FLSDRDWZA34I2PMQ", // checksum
		"SATNE7Q5BITMUTRRN6IB4I7FLSDRDWZA34I2PQQ", // hash
		"AATNE7Q5BITMUTRRN6IB4I7FLSDRDWZA34I2PMQ", // prefix
		"VATNE7Q5BITMUTRRN6IB4I7FLSDRDWZA35C4KNB", // last character
		"VATNE7Q5BITMUTRRN6IB4I7FLSDRDWZA35C4KN",  // length
		"",
	} {
		assert.False(t, IsValidRaw(raw), raw)
	}
}

func TestIsValidEncoded(t *testing.T) {
	const encoded = "6823BB7C3C089D996585466380EDBDC19D4959184893E38C"
	require.True(t, IsValidEncoded(encoded))
	require.False(t, IsValidEncoded("Z823BB7C3C089D996585466380EDBDC19D4959184893E38C"))
	require.False(t, IsValidEncoded("6823BB7C3C089D996585466380EDBDC19D4959184893E38D"))
	require.False(t, IsValidEncoded(encoded+"EE"))
	require.False(t, IsValidEncoded(" \t "+encoded))
	require.False(t, IsValidEncoded(encoded+" \t "))
	require.False(t, IsValidEncoded(" \t "+encoded+" \t "))
}

func TestAddressJSON(t *testing.T) {
	a, err := FromPublicKeyHex(publicKey, netmode.TestNet)
	require.NoError(t, err)

	data, err := json.Marshal(a)
	require.NoError(t, err)
	require.Equal(t, `"TATNE7Q5BITMUTRRN6IB4I7FLSDRDWZA37JGO5Q"`, string(data))

	var actual Address
	require.NoError(t, json.Unmarshal(data, &actual))
	require.Equal(t, a, actual)
	require.Error(t, json.Unmarshal([]byte(`"TATNE7"`), &actual))
	require.Error(t, json.Unmarshal([]byte(`42`), &actual))
}
