package flags

import (
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/symbolkit/symbol-go/pkg/errs"
	"github.com/symbolkit/symbol-go/pkg/namespace"
)

func TestParseMosaic(t *testing.T) {
	m, err := ParseMosaic("3A8416DB2D53B6C8:1000000")
	require.NoError(t, err)
	require.Equal(t, uint64(0x3A8416DB2D53B6C8), m.ID.Uint64())
	require.Equal(t, uint64(1000000), m.Amount)
	require.False(t, m.ID.IsAlias())

	m, err = ParseMosaic("@symbol.xym:10")
	require.NoError(t, err)
	require.True(t, m.ID.IsAlias())
	id, err := namespace.FromName("symbol.xym")
	require.NoError(t, err)
	ns, ok := m.ID.NamespaceID()
	require.True(t, ok)
	require.Equal(t, id, ns)

	for _, bad := range []string{"", "3A8416DB2D53B6C8", "3A8416DB2D53B6C8:-1", "XYZ:1", "@:1"} {
		_, err := ParseMosaic(bad)
		require.Error(t, err, bad)
	}

	_, err = ParseMosaic("3A8416DB2D53B6C8:9000000000000001")
	require.ErrorIs(t, err, errs.ErrAmountOutOfRange)
}

func TestMosaicsFlag(t *testing.T) {
	var value Mosaics
	f := MosaicsFlag{Name: "mosaic", Usage: "id:amount", Value: &value}
	require.Equal(t, "--mosaic value\tid:amount", f.String())

	set := flag.NewFlagSet("flagSet", flag.ContinueOnError)
	set.SetOutput(io.Discard)
	f.Apply(set)
	require.NoError(t, set.Parse([]string{"--mosaic", "3A8416DB2D53B6C8:1", "--mosaic", "@symbol.xym:2"}))
	require.Len(t, value, 2)
	require.Equal(t, "3A8416DB2D53B6C8:1", value[0].String())

	require.Error(t, set.Parse([]string{"--mosaic", "bad"}))
}
