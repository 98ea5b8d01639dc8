// Copyright 2026, The cmplab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import (
	"bufio"
	"io"

	"github.com/cmplab/cmplab/bitstream"
)

// decodeNode is a node of the decoding tree. Internal nodes have at least one
// child, while leaves have none and carry the decoded symbol.
type decodeNode struct {
	child [2]int32 // Index of each child, or 0 if absent
	sym   byte
	leaf  bool
}

// decodeTree is a child-pointer tree where node 0 is the root.
type decodeTree []decodeNode

// newDecodeTree builds the decoding tree for ct. It reports ErrCorrupt if the
// codes do not form a prefix code.
func newDecodeTree(ct CodeTable) (decodeTree, error) {
	t := decodeTree{{}}
	for _, c := range ct {
		if c.Len < MaxCodeLen && c.Val>>c.Len != 0 {
			return nil, ErrCorrupt // Lengths are over-subscribed
		}
		var n int32
		for i := c.Len; i > 0; i-- {
			if t[n].leaf {
				return nil, ErrCorrupt
			}
			b := (c.Val >> (i - 1)) & 1
			next := t[n].child[b]
			if next == 0 {
				next = int32(len(t))
				t = append(t, decodeNode{})
				t[n].child[b] = next
			} else if i == 1 {
				return nil, ErrCorrupt
			}
			n = next
		}
		t[n].sym, t[n].leaf = c.Sym, true
	}
	return t, nil
}

// Decode reads a code table followed by coded symbols from br and writes the
// decoded bytes to w. An empty stream decodes to no output.
//
// Decoding stops without error when the stream ends on a code boundary.
// A stream that ends partway through a code reports io.ErrUnexpectedEOF, and
// a bit sequence that matches no code reports ErrCorrupt.
func Decode(br *bitstream.Reader, w io.Writer) (err error) {
	ct, err := readHeader(br)
	if err == io.EOF {
		return nil
	} else if err != nil {
		return err
	}
	t, err := newDecodeTree(ct)
	if err != nil {
		return err
	}

	wr := bufio.NewWriter(w)
	defer func() {
		if ferr := wr.Flush(); err == nil {
			err = ferr
		}
	}()

	var n int32
	for {
		b, err := br.ReadBits(1)
		if err == io.EOF {
			if n != 0 {
				return io.ErrUnexpectedEOF
			}
			return nil
		} else if err != nil {
			return err
		}

		if n = t[n].child[b]; n == 0 {
			return ErrCorrupt
		}
		if t[n].leaf {
			if err := wr.WriteByte(t[n].sym); err != nil {
				return err
			}
			n = 0
		}
	}
}
