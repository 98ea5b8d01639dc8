// Copyright 2026, The cmplab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package zle

import (
	"bufio"
	"io"

	"github.com/cmplab/cmplab/bitstream"
)

// Encode reads r until io.EOF and writes the zero-length encoding to bw.
// The caller is responsible for closing bw.
func Encode(r io.Reader, bw *bitstream.Writer) error {
	rd := bufio.NewReader(r)
	for {
		c, err := rd.ReadByte()
		if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}
		if err := bw.WriteBits(uint32(c), litBits); err != nil {
			return err
		}
		if c != 0 {
			continue
		}

		// Count the rest of the run. A nonzero byte that ends the run is
		// put back so that it is written as the next literal.
		run := 1
		for run < MaxRun {
			c, err := rd.ReadByte()
			if err == io.EOF {
				break
			} else if err != nil {
				return err
			}
			if c != 0 {
				rd.UnreadByte()
				break
			}
			run++
		}
		if err := bw.WriteBits(uint32(run-1), runBits); err != nil {
			return err
		}
	}
}
