// Copyright 2026, The cmplab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import (
	"sort"

	"github.com/cmplab/cmplab/bitstream"
	"github.com/cmplab/cmplab/internal"
)

// Code is the canonical prefix code for a single symbol.
type Code struct {
	Sym byte
	Len uint   // Number of bits, 1..MaxCodeLen
	Val uint64 // Code bits, right aligned
}

// CodeTable lists codes in ascending (length, symbol) order.
type CodeTable []Code

// Canonical assigns canonical codes to every symbol with a nonzero length.
//
// Codes are handed out in ascending (length, symbol) order starting at zero.
// Codes of equal length are consecutive integers, and the running code is
// shifted left whenever the length increases.
func Canonical(lens *Lengths) CodeTable {
	var ct CodeTable
	for sym, n := range lens {
		if n > 0 {
			ct = append(ct, Code{Sym: byte(sym), Len: n})
		}
	}
	sort.Slice(ct, func(i, j int) bool {
		if ct[i].Len != ct[j].Len {
			return ct[i].Len < ct[j].Len
		}
		return ct[i].Sym < ct[j].Sym
	})

	var next uint64
	for i := range ct {
		if i > 0 {
			next <<= ct[i].Len - ct[i-1].Len
		}
		ct[i].Val = next
		next++
	}
	return ct
}

// Lengths reports the code length of every symbol in the table.
func (ct CodeTable) Lengths() Lengths {
	var lens Lengths
	for _, c := range ct {
		lens[c.Sym] = c.Len
	}
	return lens
}

// encode writes the code to bw, most-significant bit first. Codes longer than
// a single write are split into chunks, starting with the highest bits.
func (c Code) encode(bw *bitstream.Writer) error {
	for rem := c.Len; rem > 0; {
		n := rem
		if n > bitstream.MaxBits {
			n = bitstream.MaxBits
		}
		rem -= n
		chunk := uint32(c.Val>>rem) & internal.MaskUint32(n)
		if err := bw.WriteBits(internal.ReverseUint32N(chunk, n), n); err != nil {
			return err
		}
	}
	return nil
}
