package fixedn

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/symbolkit/symbol-go/pkg/errs"
)

func TestFromString(t *testing.T) {
	testCases := []struct {
		s         string
		precision int
		expected  uint64
	}{
		{"1", 6, 1000000},
		{"1.5", 6, 1500000},
		{"0.000001", 6, 1},
		{".25", 2, 25},
		{"12.", 2, 1200},
		{"42", 0, 42},
		{"9000000000", 6, 9000000000000000},
		{"18446744073709551615", 0, 18446744073709551615},
	}
	for _, tc := range testCases {
		v, err := FromString(tc.s, tc.precision)
		require.NoError(t, err, tc.s)
		assert.Equal(t, tc.expected, v, tc.s)
	}
}

func TestFromStringErrors(t *testing.T) {
	for _, s := range []string{"", ".", "1.0000001", "-1", "1e6", "1,5", "0x10"} {
		_, err := FromString(s, 6)
		require.True(t, errors.Is(err, errs.ErrInputFormat), s)
	}
	_, err := FromString("18446744073709551616", 0)
	require.True(t, errors.Is(err, errs.ErrAmountOutOfRange))
	_, err = FromString("1", 20)
	require.True(t, errors.Is(err, errs.ErrInputFormat))
}

func TestToString(t *testing.T) {
	assert.Equal(t, "1", ToString(1000000, 6))
	assert.Equal(t, "1.5", ToString(1500000, 6))
	assert.Equal(t, "0.000001", ToString(1, 6))
	assert.Equal(t, "0", ToString(0, 6))
	assert.Equal(t, "42", ToString(42, 0))

	for _, s := range []string{"123.456", "0.1", "7"} {
		v, err := FromString(s, 6)
		require.NoError(t, err)
		assert.Equal(t, s, ToString(v, 6))
	}
}
