// Copyright 2026, The cmplab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import (
	"bufio"
	"io"

	"github.com/cmplab/cmplab/bitstream"
)

// Encode reads r until io.EOF and writes the code table followed by the coded
// symbols to bw. The input is read twice: once to count frequencies, and
// again from the same starting offset to emit codes.
// The caller is responsible for closing bw.
func Encode(r io.ReadSeeker, bw *bitstream.Writer) error {
	start, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return err
	}
	freqs, err := CountFrequencies(r)
	if err != nil {
		return err
	}
	if _, err := r.Seek(start, io.SeekStart); err != nil {
		return err
	}

	lens, err := BuildTree(&freqs).CodeLengths()
	if err != nil {
		return err
	}
	ct := Canonical(&lens)
	if err := writeHeader(bw, ct); err != nil {
		return err
	}

	var codes [numLeaves]Code
	for _, c := range ct {
		codes[c.Sym] = c
	}
	rd := bufio.NewReader(r)
	for {
		c, err := rd.ReadByte()
		if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}
		if codes[c].Len == 0 {
			return ErrInputChanged
		}
		if err := codes[c].encode(bw); err != nil {
			return err
		}
	}
}
