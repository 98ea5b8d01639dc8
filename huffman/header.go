// Copyright 2026, The cmplab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import (
	"io"

	"github.com/boljen/go-bitmap"

	"github.com/cmplab/cmplab/bitstream"
	"github.com/cmplab/cmplab/internal"
)

func writeHeader(bw *bitstream.Writer, ct CodeTable) error {
	if err := bw.WriteBits(uint32(len(ct)), internal.CountBits); err != nil {
		return err
	}
	for _, c := range ct {
		if err := bw.WriteBits(uint32(c.Sym), internal.SymbolBits); err != nil {
			return err
		}
		if err := bw.WriteBits(uint32(c.Len-1), lenBits); err != nil {
			return err
		}
	}
	return nil
}

// readHeader reads the code table from br. It returns io.EOF if the stream
// is entirely empty.
func readHeader(br *bitstream.Reader) (ct CodeTable, err error) {
	defer errRecover(&err)

	count, err := br.ReadBits(internal.CountBits)
	if err != nil {
		return nil, err
	}
	if count > internal.AlphabetSize {
		return nil, ErrCorrupt
	}

	seen := bitmap.New(internal.AlphabetSize)
	for i := 0; i < int(count); i++ {
		c := Code{
			Sym: byte(mustReadBits(br, internal.SymbolBits)),
			Len: uint(mustReadBits(br, lenBits)) + 1,
		}
		if seen.Get(int(c.Sym)) {
			return nil, ErrCorrupt
		}
		seen.Set(int(c.Sym), true)
		if i > 0 {
			if p := ct[i-1]; c.Len < p.Len || (c.Len == p.Len && c.Sym < p.Sym) {
				return nil, ErrCorrupt
			}
		}
		ct = append(ct, c)
	}

	lens := ct.Lengths()
	return Canonical(&lens), nil
}

// mustReadBits reads nb bits from br. Since the header is only read once a
// count has been seen, running out of bits is unexpected.
func mustReadBits(br *bitstream.Reader, nb uint) uint32 {
	v, err := br.ReadBits(nb)
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	if err != nil {
		panic(err)
	}
	return v
}
