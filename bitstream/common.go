// Copyright 2026, The cmplab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package bitstream implements the bit channel shared by all cmplab codecs.
//
// Values of 0 to 32 bits are packed into 32-bit words starting at the least
// significant bit. Each full word is emitted as 4 bytes in big-endian order.
// When a writer is closed, a single 1 bit is appended after the last data bit
// and the rest of the final word is zero padded. This terminator lets the
// reader tell the padding apart from data, so that a decoder sees the end of
// the stream exactly where the encoder stopped writing. A writer that never
// wrote any bits produces no output at all.
//
// There is no magic number, version, or length prefix. The decoder must be
// told out-of-band which algorithm produced a stream.
package bitstream

const (
	wordBits  = 32
	wordBytes = 4

	// MaxBits is the maximum number of bits in a single read or write.
	MaxBits = wordBits
)

// Error is the wrapper type for errors specific to this library.
type Error string

func (e Error) Error() string { return "bitstream: " + string(e) }

var (
	ErrInvalidWidth error = Error("bit width out of range")
	ErrClosed       error = Error("write to closed writer")
)
