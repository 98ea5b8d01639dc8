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

// Encode reads r until io.EOF and writes the LZW codes to bw.
// Empty input produces no codes. The caller is responsible for closing bw.
func Encode(r io.Reader, bw *bitstream.Writer) error {
	rd := bufio.NewReader(r)

	index, err := rd.ReadByte()
	if err == io.EOF {
		return nil
	} else if err != nil {
		return err
	}

	var (
		cur   = uint32(index) // Current match
		top   = uint32(internal.AlphabetSize)
		width = initWidth
		dict  = make(map[uint32]uint32)
	)
	for {
		sym, err := rd.ReadByte()
		if err == io.EOF {
			break
		} else if err != nil {
			return err
		}

		key := dictKey(cur, sym)
		if succ, ok := dict[key]; ok {
			cur = succ
			continue
		}

		if top < MaxDictSize {
			dict[key] = top
			top++
		}
		if err := bw.WriteBits(cur, width); err != nil {
			return err
		}
		if top >= 1<<width-1 {
			width++
		}
		cur = uint32(sym)
	}
	return bw.WriteBits(cur, width)
}
