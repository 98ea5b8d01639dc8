// Copyright 2026, The cmplab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bitstream

import (
	"bufio"
	"encoding/binary"
	"io"
	"math/bits"

	"github.com/cmplab/cmplab/internal"
)

// Reader unpacks variable-width values written by a Writer.
//
// The Reader refills one 32-bit word at a time and peeks a single byte ahead
// to learn whether the word just loaded is the final one. In the final word,
// the highest set bit is the terminator and only the bits below it are data.
// Thus, reading never yields padding bits as data.
type Reader struct {
	rd      *bufio.Reader
	bufBits uint32 // Current word
	numBits uint   // Number of data bits in bufBits
	pos     uint   // Number of bits of bufBits already consumed
	last    bool   // Whether bufBits is the final word
	offset  int64  // Number of bytes read from the underlying io.Reader
	err     error  // Persistent error
}

// NewReader returns a Reader over r. The first word is loaded lazily on the
// first call to ReadBits.
func NewReader(r io.Reader) *Reader {
	br := new(Reader)
	br.Reset(r)
	return br
}

// Reset discards the Reader's state and starts a new session on r.
func (br *Reader) Reset(r io.Reader) {
	*br = Reader{}
	if b, ok := r.(*bufio.Reader); ok {
		br.rd = b
	} else {
		br.rd = bufio.NewReader(r)
	}
}

// Offset reports the number of bytes consumed from the underlying reader.
func (br *Reader) Offset() int64 {
	return br.offset
}

// ReadBits reads nb bits, where nb is in 0..32, and returns them in the lower
// bits of the result. Reading zero bits always succeeds.
//
// It returns io.EOF if the stream ended before the read began, and
// io.ErrUnexpectedEOF if it ended partway through the read. In the latter case
// the bits that were available are still returned.
func (br *Reader) ReadBits(nb uint) (uint32, error) {
	if nb > MaxBits {
		return 0, ErrInvalidWidth
	}
	var val uint32
	var got uint
	for got < nb {
		if br.pos == br.numBits {
			if err := br.fill(); err != nil {
				if got > 0 && err == io.EOF {
					err = io.ErrUnexpectedEOF
				}
				return val, err
			}
			continue
		}
		cnt := nb - got
		if avail := br.numBits - br.pos; cnt > avail {
			cnt = avail
		}
		val |= ((br.bufBits >> br.pos) & internal.MaskUint32(cnt)) << got
		br.pos += cnt
		got += cnt
	}
	return val, nil
}

// fill loads the next word from the underlying reader.
func (br *Reader) fill() error {
	if br.err != nil {
		return br.err
	}
	if br.last {
		br.err = io.EOF
		return br.err
	}

	var buf [wordBytes]byte
	cnt, err := io.ReadFull(br.rd, buf[:])
	br.offset += int64(cnt)
	switch err {
	case nil:
		if _, err := br.rd.Peek(1); err == io.EOF {
			br.last = true
		} else if err != nil {
			br.err = err
			return err
		}
	case io.ErrUnexpectedEOF:
		// A truncated word is zero extended and treated as the final one.
		br.last = true
	default:
		br.err = err
		return err
	}

	br.bufBits = binary.BigEndian.Uint32(buf[:])
	br.numBits, br.pos = wordBits, 0
	if br.last {
		// Drop the terminator and the padding above it.
		br.numBits = uint(bits.Len32(br.bufBits))
		if br.numBits > 0 {
			br.numBits--
		}
	}
	return nil
}
