package input

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/term"
)

func TestReadPassword(t *testing.T) {
	in := bytes.NewBufferString("secret\r")
	Terminal = term.NewTerminal(ReadWriter{Reader: in, Writer: io.Discard}, "")
	t.Cleanup(func() { Terminal = nil })

	pass, err := ReadPassword("Enter key > ")
	require.NoError(t, err)
	require.Equal(t, "secret", pass)
}
