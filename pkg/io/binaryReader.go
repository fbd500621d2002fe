package io

import (
	"encoding/binary"
	"io"
)

// BinReader reads little-endian fields from an in-memory buffer. It tracks
// the current position and latches the first error: reading past the end of
// Data sets Err to io.ErrUnexpectedEOF and every further read returns zero
// values.
type BinReader struct {
	Data []byte
	Pos  int
	Err  error
}

// NewBinReaderFromBuf makes a BinReader from byte buffer.
func NewBinReaderFromBuf(b []byte) *BinReader {
	return &BinReader{Data: b}
}

// Len returns the number of unread bytes.
func (r *BinReader) Len() int {
	return len(r.Data) - r.Pos
}

// next returns the next n bytes of Data or nil if there are not enough.
func (r *BinReader) next(n int) []byte {
	if r.Err != nil {
		return nil
	}
	if n < 0 || r.Len() < n {
		r.Err = io.ErrUnexpectedEOF
		return nil
	}
	b := r.Data[r.Pos : r.Pos+n]
	r.Pos += n
	return b
}

// ReadU64LE reads a little-endian encoded uint64 value.
func (r *BinReader) ReadU64LE() uint64 {
	if b := r.next(8); b != nil {
		return binary.LittleEndian.Uint64(b)
	}
	return 0
}

// ReadU32LE reads a little-endian encoded uint32 value.
func (r *BinReader) ReadU32LE() uint32 {
	if b := r.next(4); b != nil {
		return binary.LittleEndian.Uint32(b)
	}
	return 0
}

// ReadU16LE reads a little-endian encoded uint16 value.
func (r *BinReader) ReadU16LE() uint16 {
	if b := r.next(2); b != nil {
		return binary.LittleEndian.Uint16(b)
	}
	return 0
}

// ReadB reads a byte.
func (r *BinReader) ReadB() byte {
	if b := r.next(1); b != nil {
		return b[0]
	}
	return 0
}

// ReadBytes copies fixed-size data into the given slice.
func (r *BinReader) ReadBytes(buf []byte) {
	if b := r.next(len(buf)); b != nil {
		copy(buf, b)
	}
}

// ReadN returns a copy of the next n bytes.
func (r *BinReader) ReadN(n int) []byte {
	b := r.next(n)
	if b == nil {
		return nil
	}
	res := make([]byte, n)
	copy(res, b)
	return res
}

// Skip advances the position by n bytes.
func (r *BinReader) Skip(n int) {
	r.next(n)
}
