package keys

import (
	"encoding/json"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/symbolkit/symbol-go/pkg/errs"
	"github.com/symbolkit/symbol-go/pkg/io"
)

func TestNewPublicKeyFromString(t *testing.T) {
	pub, err := NewPublicKeyFromString(testPublicKey)
	require.NoError(t, err)
	require.Equal(t, testPublicKey, pub.String())

	_, err = NewPublicKeyFromString("AB")
	require.ErrorIs(t, err, errs.ErrInputFormat)
	_, err = NewPublicKeyFromString("XY")
	require.ErrorIs(t, err, errs.ErrInputFormat)
}

func TestPublicKeyJSON(t *testing.T) {
	pub, err := NewPublicKeyFromString(testPublicKey)
	require.NoError(t, err)

	data, err := json.Marshal(pub)
	require.NoError(t, err)
	require.Equal(t, `"`+testPublicKey+`"`, string(data))

	var actual PublicKey
	require.NoError(t, json.Unmarshal(data, &actual))
	require.True(t, pub.Equal(&actual))
}

func TestPublicKeyBinary(t *testing.T) {
	pub, err := NewPublicKeyFromString(testPublicKey)
	require.NoError(t, err)

	w := io.NewBufBinWriter()
	pub.EncodeBinary(w.BinWriter)
	data := w.Bytes()
	require.Len(t, data, PublicKeySize)

	var actual PublicKey
	r := io.NewBinReaderFromBuf(data)
	actual.DecodeBinary(r)
	require.NoError(t, r.Err)
	require.Equal(t, *pub, actual)
}

func TestPublicKeysSort(t *testing.T) {
	a := &PublicKey{3}
	b := &PublicKey{1}
	c := &PublicKey{2}
	keys := PublicKeys{a, b, c}
	sort.Sort(keys)
	require.Equal(t, PublicKeys{b, c, a}, keys)
	require.True(t, keys.Contains(&PublicKey{2}))
	require.False(t, keys.Contains(&PublicKey{4}))
}
