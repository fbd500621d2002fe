package namespace

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/symbolkit/symbol-go/pkg/errs"
	"github.com/symbolkit/symbol-go/pkg/util"
)

func TestFromName(t *testing.T) {
	t.Run("root", func(t *testing.T) {
		id, err := FromName("nem")
		require.NoError(t, err)
		require.Equal(t, util.Uint64DTO{929036875, 2226345261}, id.DTO())
		require.Equal(t, util.Uint64DTO{0x375ffa4b, 0x84b3552d}, id.DTO())
		require.Equal(t, "84B3552D375FFA4B", id.String())
	})
	t.Run("subnamespace", func(t *testing.T) {
		id, err := FromName("nem.subnem")
		require.NoError(t, err)
		require.Equal(t, util.Uint64DTO{373240754, 3827892399}, id.DTO())
	})
	t.Run("msb is always set", func(t *testing.T) {
		for _, name := range []string{"a", "symbol", "symbol.xym", "0-9_", "a.b.c"} {
			id, err := FromName(name)
			require.NoError(t, err)
			require.True(t, IsNamespace(uint64(id)), name)
		}
	})
}

func TestFullPath(t *testing.T) {
	foo, err := FromParent(0, "foo")
	require.NoError(t, err)
	bar, err := FromParent(foo, "bar")
	require.NoError(t, err)
	baz, err := FromParent(bar, "baz")
	require.NoError(t, err)

	path, err := FullPath("foo.bar.baz")
	require.NoError(t, err)
	require.Equal(t, []ID{foo, bar, baz}, path)

	// Order matters.
	other, err := FromName("baz.bar.foo")
	require.NoError(t, err)
	require.NotEqual(t, baz, other)
}

func TestInvalidNames(t *testing.T) {
	for _, name := range []string{"", "a:b:c", "a::b", "a..b", ".a", "a.", "Nem", "_a", "-a", "a.b c", "é"} {
		_, err := FullPath(name)
		require.ErrorIs(t, err, ErrInvalidNamePart, name)
		require.ErrorIs(t, err, errs.ErrInputFormat, name)
	}
}

func TestIDDecodeString(t *testing.T) {
	id, err := IDDecodeString("9550CA3FC9B41FC5")
	require.NoError(t, err)
	require.True(t, IsNamespace(uint64(id)))
	require.Equal(t, "9550CA3FC9B41FC5", id.String())
	require.Equal(t, id, IDFromDTO(id.DTO()))

	_, err = IDDecodeString("9550CA3FC9B41F")
	require.ErrorIs(t, err, errs.ErrInputFormat)
}

func TestIDText(t *testing.T) {
	id, err := FromName("nem")
	require.NoError(t, err)
	text, err := id.MarshalText()
	require.NoError(t, err)

	var actual ID
	require.NoError(t, actual.UnmarshalText(text))
	require.Equal(t, id, actual)

	require.Error(t, actual.UnmarshalText([]byte("11F4B1B3AC033DB5")))
	require.Error(t, actual.UnmarshalText([]byte("zz")))
}
