// Copyright 2026, The cmplab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lzw

import (
	"bufio"
	"io"

	"github.com/cmplab/cmplab/bitstream"
	"github.com/cmplab/cmplab/internal"
)

// dictionary holds the decoder side of the LZW table in parent-pointer form.
type dictionary struct {
	prefix []uint32 // Index of the entry this one extends; unused for roots
	suffix []byte   // Last symbol of the entry
	first  []byte   // First symbol of the entry's expansion
	length []uint32 // Length of the entry's expansion
	buf    []byte   // Scratch space for expand
}

func newDictionary() *dictionary {
	d := &dictionary{
		prefix: make([]uint32, internal.AlphabetSize, MaxDictSize),
		suffix: make([]byte, internal.AlphabetSize, MaxDictSize),
		first:  make([]byte, internal.AlphabetSize, MaxDictSize),
		length: make([]uint32, internal.AlphabetSize, MaxDictSize),
	}
	for i := 0; i < internal.AlphabetSize; i++ {
		d.suffix[i] = byte(i)
		d.first[i] = byte(i)
		d.length[i] = 1
	}
	return d
}

func (d *dictionary) Len() uint32 { return uint32(len(d.suffix)) }

func (d *dictionary) Append(prefix uint32, suffix byte) {
	d.prefix = append(d.prefix, prefix)
	d.suffix = append(d.suffix, suffix)
	d.first = append(d.first, d.first[prefix])
	d.length = append(d.length, d.length[prefix]+1)
}

// Expand returns the symbols of entry idx in order. The returned slice is only
// valid until the next call to Expand.
func (d *dictionary) Expand(idx uint32) []byte {
	n := int(d.length[idx])
	if cap(d.buf) < n {
		d.buf = make([]byte, n, 2*n)
	}
	buf := d.buf[:n]
	for i := n - 1; i >= 0; i-- {
		buf[i] = d.suffix[idx]
		idx = d.prefix[idx]
	}
	return buf
}

// Decode reads LZW codes from br and writes the decoded bytes to w.
// Decoding stops without error when the stream ends on a code boundary.
func Decode(br *bitstream.Reader, w io.Writer) (err error) {
	wr := bufio.NewWriter(w)
	defer func() {
		if ferr := wr.Flush(); err == nil {
			err = ferr
		}
	}()

	width := initWidth
	code, err := br.ReadBits(width)
	if err == io.EOF {
		return nil
	} else if err != nil {
		return err
	}
	if code >= internal.AlphabetSize {
		return ErrCorrupt
	}
	wr.WriteByte(byte(code))

	d := newDictionary()
	for prev := code; ; prev = code {
		code, err = br.ReadBits(width)
		if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}

		if top := d.Len(); top < MaxDictSize {
			// The encoder may emit the entry it has just defined, before the
			// decoder has seen it. That entry starts with prev's first symbol.
			first := d.first[prev]
			if code < top {
				first = d.first[code]
			}
			d.Append(prev, first)
		}
		if code >= d.Len() {
			return ErrCorrupt
		}
		if d.Len() >= 1<<width-2 {
			width++
		}

		if _, err := wr.Write(d.Expand(code)); err != nil {
			return err
		}
	}
}
