package main

import (
	"testing"
)

const ownerAddress = "VARNASAS2BIAB6LMFA3FPMGBPGIJGK6IJGOH3FA"

func TestMosaicID(t *testing.T) {
	e := newExecutor(t)

	t.Run("no owner", func(t *testing.T) {
		e.RunWithError(t, "symbol-go", "mosaic", "id", "--nonce", "00000000")
	})
	t.Run("alias owner", func(t *testing.T) {
		e.RunWithError(t, "symbol-go", "mosaic", "id", "--owner", "@symbol", "--nonce", "00000000")
	})
	t.Run("bad nonce", func(t *testing.T) {
		e.RunWithError(t, "symbol-go", "mosaic", "id", "--owner", ownerAddress, "--nonce", "0000")
	})
	t.Run("known", func(t *testing.T) {
		e.Run(t, "symbol-go", "mosaic", "id", "--owner", ownerAddress, "--nonce", "00000000")
		e.checkNextLine(t, "^Nonce: 00000000$")
		e.checkNextLine(t, "^ID: 6619015AB39268AC$")
		e.checkEOF(t)

		e.Run(t, "symbol-go", "mosaic", "id", "--owner", ownerAddress, "--nonce", "12345678")
		e.checkNextLine(t, "^Nonce: 12345678$")
		e.checkNextLine(t, "^ID: BC4999D117A4A967$")
		e.checkEOF(t)
	})
	t.Run("random nonce", func(t *testing.T) {
		e.Run(t, "symbol-go", "mosaic", "id", "--owner", ownerAddress)
		e.checkNextLine(t, "^Nonce: [0-9A-F]{8}$")
		e.checkNextLine(t, "^ID: [0-7][0-9A-F]{15}$")
		e.checkEOF(t)
	})
}
