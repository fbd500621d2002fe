/*
Package errs holds the error kinds shared by the codec packages. Every error
returned from address, identifier, proof and transaction decoding wraps one of
them, so callers can classify failures with errors.Is.
*/
package errs

import "errors"

var (
	// ErrInputFormat is returned for non-hex or non-base32 text, wrong
	// lengths and invalid name characters.
	ErrInputFormat = errors.New("invalid input format")
	// ErrParse is returned for malformed proof streams.
	ErrParse = errors.New("parse error")
	// ErrUnknownNetwork is returned when a network byte or address prefix
	// is not in the supported table.
	ErrUnknownNetwork = errors.New("unknown network")
	// ErrAmountOutOfRange is returned for mosaic amounts or divisibility
	// outside of network bounds.
	ErrAmountOutOfRange = errors.New("amount out of range")
)
