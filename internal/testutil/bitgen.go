// Copyright 2026, The cmplab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package testutil

import (
	"encoding/binary"
	"errors"
	"regexp"
	"strconv"
	"strings"
)

var (
	reBin = regexp.MustCompile("^[01]{1,32}$")
	reDec = regexp.MustCompile("^D[0-9]+:[0-9]+$")
	reHex = regexp.MustCompile("^H[0-9]+:[0-9a-fA-F]{1,8}$")
	reQnt = regexp.MustCompile("[*][0-9]+$")
)

// DecodeBitGen decodes a BitGen formatted string into a bitstream.
//
// The BitGen format allows bit-streams to be generated from a series of tokens
// describing bits in the resulting stream. It is designed for testing purposes
// by aiding a human in the manual scripting of codec streams from individual
// bit-strings, while allowing comments that encode authorial intent.
//
// The format consists of a series of tokens separated by white space of any
// kind. The '#' character is used for commenting. Thus, any bytes on a given
// line that appear after the '#' character are ignored.
//
// A token of the pattern "[01]{1,32}" forms a bit-string (e.g. 11010).
// The right-most bit of the bit-string is written first.
//
// A token of the pattern "D[0-9]+:[0-9]+" or "H[0-9]+:[0-9a-fA-F]{1,8}"
// represents either a decimal value or a hexadecimal value, respectively.
// The first number is the bit-length, between 0 and 32 bits, and must be long
// enough to hold the value. The least-significant bits are written first, as
// with a single call to bitstream.Writer.WriteBits.
//
// A token decorator of the pattern "[*][0-9]+" may trail any token. This is
// a quantifier decorator which indicates that the current token is to be
// repeated some number of times.
//
// Bits are packed into 32-bit words starting at the least-significant bit and
// each word is emitted in big-endian order. If any bit was written, a single
// terminator bit is appended and the final word is zero padded.
//
// Example BitGen string for an LZW stream of "aaa":
//
//	D9:97  # Literal 'a'
//	D9:256 # Dictionary entry {97, 'a'}
//
// Generated output stream (in hexadecimal):
//
//	"00060061"
func DecodeBitGen(str string) ([]byte, error) {
	// Tokenize the input string by removing comments and superfluous spaces.
	var toks []string
	for _, s := range strings.Split(str, "\n") {
		if i := strings.IndexByte(s, '#'); i >= 0 {
			s = s[:i]
		}
		toks = append(toks, strings.Fields(s)...)
	}

	var wb wordBuffer
	for _, t := range toks {
		// Check for quantifier decorators.
		rep := 1
		if reQnt.MatchString(t) {
			i := strings.LastIndexByte(t, '*')
			tt, tn := t[:i], t[i+1:]
			n, err := strconv.Atoi(tn)
			if err != nil {
				return nil, errors.New("testutil: invalid quantified token: " + t)
			}
			t, rep = tt, n
		}

		switch {
		case reBin.MatchString(t):
			// Handle binary tokens.
			var v uint32
			for _, b := range t {
				v <<= 1
				v |= uint32(b - '0')
			}
			for i := 0; i < rep; i++ {
				wb.WriteBits(v, uint(len(t)))
			}
		case reDec.MatchString(t) || reHex.MatchString(t):
			// Handle decimal and hexadecimal tokens.
			i := strings.IndexByte(t, ':')
			tb, tn, tv := t[0], t[1:i], t[i+1:]

			base := 10
			if tb == 'H' {
				base = 16
			}

			n, err1 := strconv.Atoi(tn)
			v, err2 := strconv.ParseUint(tv, base, 32)
			if err1 != nil || err2 != nil || n > 32 {
				return nil, errors.New("testutil: invalid numeric token: " + t)
			}
			if n < 32 && v&((1<<uint(n))-1) != v {
				return nil, errors.New("testutil: integer overflow on token: " + t)
			}
			for i := 0; i < rep; i++ {
				wb.WriteBits(uint32(v), uint(n))
			}
		default:
			// Handle invalid tokens.
			return nil, errors.New("testutil: invalid token: " + t)
		}
	}
	return wb.Bytes(), nil
}

// wordBuffer is a bit-at-a-time implementation of bitstream.Writer.
// It is implemented here so that the bitstream tests have an independent
// reference for the stream layout.
type wordBuffer struct {
	b     []byte
	word  uint32
	n     uint
	wrote bool
}

func (w *wordBuffer) WriteBits(v uint32, n uint) {
	for i := uint(0); i < n; i++ {
		w.writeBit(v&(1<<i) != 0)
	}
}

func (w *wordBuffer) writeBit(bit bool) {
	w.wrote = true
	if bit {
		w.word |= 1 << w.n
	}
	if w.n++; w.n == 32 {
		w.b = binary.BigEndian.AppendUint32(w.b, w.word)
		w.word, w.n = 0, 0
	}
}

func (w *wordBuffer) Bytes() []byte {
	if !w.wrote {
		return nil
	}
	w.word |= 1 << w.n
	return binary.BigEndian.AppendUint32(w.b, w.word)
}
