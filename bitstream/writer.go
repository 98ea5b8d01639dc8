// Copyright 2026, The cmplab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bitstream

import (
	"bufio"
	"encoding/binary"
	"io"

	"github.com/cmplab/cmplab/internal"
)

// Writer packs variable-width values into a byte stream.
// A Writer is owned by a single encoding session and must be closed at its end.
type Writer struct {
	wr      *bufio.Writer
	bufBits uint32 // Pending bits, filled starting at the LSB
	numBits uint   // Number of pending bits in bufBits (always < 32)
	offset  int64  // Number of bytes emitted, including buffered ones
	wrote   bool   // Whether any bit was written in this session
	closed  bool
	err     error // Persistent error
}

// NewWriter returns a Writer that emits words to w.
func NewWriter(w io.Writer) *Writer {
	bw := new(Writer)
	bw.Reset(w)
	return bw
}

// Reset discards the Writer's state and starts a new session on w.
// Pending bits from the previous session are lost.
func (bw *Writer) Reset(w io.Writer) {
	*bw = Writer{}
	if b, ok := w.(*bufio.Writer); ok {
		bw.wr = b
	} else {
		bw.wr = bufio.NewWriter(w)
	}
}

// Offset reports the number of bytes emitted so far.
func (bw *Writer) Offset() int64 {
	return bw.offset
}

// WriteBits writes the lower nb bits of v, where nb is in 0..32.
// Bits of v above nb are ignored. Writing zero bits is a no-op.
func (bw *Writer) WriteBits(v uint32, nb uint) error {
	if bw.err != nil {
		return bw.err
	}
	if bw.closed {
		return ErrClosed
	}
	if nb > MaxBits {
		return ErrInvalidWidth
	}
	if nb == 0 {
		return nil
	}
	bw.wrote = true

	v &= internal.MaskUint32(nb)
	if left := wordBits - bw.numBits; left < nb {
		// Fill up the current word, then continue with the bits of v that
		// did not fit.
		bw.bufBits |= v << bw.numBits
		bw.flushWord()
		v >>= left
		nb -= left
	}
	bw.bufBits |= v << bw.numBits
	bw.numBits += nb
	if bw.numBits == wordBits {
		bw.flushWord()
	}
	return bw.err
}

// Close terminates the session. If any bit was written, the terminator bit is
// appended and the final word is emitted with its unused high bits zeroed.
// Close flushes buffered output but does not close the underlying io.Writer.
func (bw *Writer) Close() error {
	if bw.closed {
		return bw.err
	}
	bw.closed = true
	if bw.err != nil {
		return bw.err
	}
	if bw.wrote {
		bw.bufBits |= 1 << bw.numBits
		bw.flushWord()
	}
	if bw.err == nil {
		bw.err = bw.wr.Flush()
	}
	return bw.err
}

func (bw *Writer) flushWord() {
	var buf [wordBytes]byte
	binary.BigEndian.PutUint32(buf[:], bw.bufBits)
	bw.bufBits, bw.numBits = 0, 0
	if bw.err != nil {
		return
	}
	n, err := bw.wr.Write(buf[:])
	bw.offset += int64(n)
	bw.err = err
}
