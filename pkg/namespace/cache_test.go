package namespace

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestCache(t *testing.T) {
	c := NewCache(2, zaptest.NewLogger(t))

	expected, err := FullPath("nem.subnem")
	require.NoError(t, err)

	path, err := c.Resolve("nem.subnem")
	require.NoError(t, err)
	require.Equal(t, expected, path)
	require.Equal(t, 1, c.Len())

	// Callers can't corrupt cached values.
	path[0] = 0
	path, err = c.Resolve("nem.subnem")
	require.NoError(t, err)
	require.Equal(t, expected, path)

	id, err := c.ID("nem.subnem")
	require.NoError(t, err)
	require.Equal(t, expected[1], id)

	_, err = c.Resolve("a::b")
	require.ErrorIs(t, err, ErrInvalidNamePart)
	require.Equal(t, 1, c.Len())

	_, err = c.ID("foo")
	require.NoError(t, err)
	_, err = c.ID("bar")
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())
}

func TestCacheDefaults(t *testing.T) {
	c := NewCache(0, nil)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := c.ID("symbol.xym")
			require.NoError(t, err)
		}()
	}
	wg.Wait()
	require.Equal(t, 1, c.Len())
}
