// Copyright 2026, The cmplab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package zle

import (
	"bufio"
	"io"

	"github.com/cmplab/cmplab/bitstream"
)

var zeros [4096]byte

// Decode reads a zero-length encoding from br and writes the decoded bytes
// to w. Decoding stops without error when the stream ends on a field
// boundary, including right after a literal zero.
func Decode(br *bitstream.Reader, w io.Writer) (err error) {
	wr := bufio.NewWriter(w)
	defer func() {
		if ferr := wr.Flush(); err == nil {
			err = ferr
		}
	}()

	for {
		c, err := br.ReadBits(litBits)
		if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}
		if err := wr.WriteByte(byte(c)); err != nil {
			return err
		}
		if c != 0 {
			continue
		}

		// The literal was the first zero of the run.
		n, err := br.ReadBits(runBits)
		if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}
		for n > 0 {
			cnt := uint32(len(zeros))
			if cnt > n {
				cnt = n
			}
			if _, err := wr.Write(zeros[:cnt]); err != nil {
				return err
			}
			n -= cnt
		}
	}
}
