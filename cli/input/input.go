/*
Package input reads secrets from the user with echo disabled.
*/
package input

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Terminal is a terminal used for input. If `nil`, /dev/tty is used.
var Terminal *term.Terminal

// ReadWriter combines reader and writer.
type ReadWriter struct {
	io.Reader
	io.Writer
}

// ReadPassword reads the user's secret with prompt, echo is disabled.
func ReadPassword(prompt string) (string, error) {
	if Terminal != nil {
		return Terminal.ReadPassword(prompt)
	}
	return readSecurePassword(prompt)
}

// readSecurePassword reads the user's secret with prompt directly from /dev/tty.
func readSecurePassword(prompt string) (string, error) {
	f, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return "", err
	}
	defer f.Close()
	_, err = f.WriteString(prompt)
	if err != nil {
		return "", err
	}
	pass, err := term.ReadPassword(int(f.Fd()))
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	_, err = f.WriteString("\n")
	return string(pass), err
}
