package transaction

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestType(t *testing.T) {
	require.Equal(t, "Transfer", TransferType.String())
	require.Equal(t, "AggregateBonded", AggregateBondedType.String())
	require.Equal(t, "Unknown(0x0001)", Type(1).String())
	require.True(t, AggregateCompleteType.IsAggregate())
	require.True(t, AggregateBondedType.IsAggregate())
	require.False(t, TransferType.IsAggregate())
	require.True(t, NodeKeyLinkType.IsValid())
	require.False(t, Type(0).IsValid())
	require.Len(t, typeNames, 24)
}

func TestPayloadType(t *testing.T) {
	b := make([]byte, BodyIndex)
	b[TypeIndex] = 0x54
	b[TypeIndex+1] = 0x41
	require.Equal(t, TransferType, PayloadType(b))
	require.Equal(t, Type(0), PayloadType(b[:TypeIndex+1]))
}

func TestLayoutOffsets(t *testing.T) {
	require.Equal(t, 108, HeaderLen)
	require.Equal(t, 110, TypeIndex)
	require.Equal(t, 128, BodyIndex)
	require.Equal(t, 52, AggregateSignedLen)
	require.Equal(t, 48, EmbeddedHeaderLen)
}
