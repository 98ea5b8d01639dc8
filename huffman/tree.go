// Copyright 2026, The cmplab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import (
	"bufio"
	"io"

	"github.com/cmplab/cmplab/internal"
)

const (
	numLeaves = internal.AlphabetSize
	numNodes  = 2*numLeaves - 1 // Leaves plus the most synthetic nodes a tree can have

	noNode = -1
)

// Frequencies holds the number of occurrences of each symbol.
type Frequencies [numLeaves]uint64

// CountFrequencies reads r until io.EOF and counts every symbol.
func CountFrequencies(r io.Reader) (Frequencies, error) {
	var freqs Frequencies
	rd := bufio.NewReader(r)
	for {
		c, err := rd.ReadByte()
		if err == io.EOF {
			return freqs, nil
		} else if err != nil {
			return freqs, err
		}
		freqs[c]++
	}
}

// Tree is a Huffman tree in parent-pointer form.
//
// Node ids 0 through 255 are the leaves for the symbols of the same value.
// Synthetic nodes are numbered from 256 upwards in the order they are created,
// so the root is always the last node created.
type Tree struct {
	parent [numNodes]int
	freq   [numNodes]uint64
	root   int
	size   int // Number of node ids in use, leaves included
}

// BuildTree builds the Huffman tree for the symbols with nonzero frequency.
//
// The two least frequent nodes are repeatedly merged into a new synthetic
// node. Ties are broken in favor of the lower node id. If there is only one
// symbol, that leaf is the root. If there are no symbols, the tree is empty.
func BuildTree(freqs *Frequencies) *Tree {
	t := &Tree{root: noNode, size: numLeaves}
	for i := range t.parent {
		t.parent[i] = noNode
	}
	copy(t.freq[:], freqs[:])

	h := nodeHeap{freq: &t.freq}
	for sym, f := range freqs {
		if f > 0 {
			h.Push(sym)
		}
	}
	for h.Len() > 1 {
		a, b := h.Pop(), h.Pop()
		id := t.size
		t.size++
		t.freq[id] = t.freq[a] + t.freq[b]
		t.parent[a], t.parent[b] = id, id
		h.Push(id)
	}
	if h.Len() == 1 {
		t.root = h.Pop()
	}
	return t
}

// Root reports the root node id, or -1 if the tree is empty.
func (t *Tree) Root() int { return t.root }

// Parent reports the parent of node id, or -1 if it has none.
func (t *Tree) Parent(id int) int { return t.parent[id] }

// Freq reports the combined frequency of all leaves under node id.
func (t *Tree) Freq(id int) uint64 { return t.freq[id] }

// Lengths holds the code length of each symbol, where zero marks a symbol
// that has no code.
type Lengths [numLeaves]uint

// CodeLengths reports the depth of every leaf, measured in edges from the
// root. A tree with a single leaf assigns it a length of one.
func (t *Tree) CodeLengths() (Lengths, error) {
	var lens Lengths
	if t.root == noNode {
		return lens, nil
	}
	if t.root < numLeaves {
		lens[t.root] = 1
		return lens, nil
	}
	for sym := range lens {
		if t.freq[sym] == 0 {
			continue
		}
		var n uint
		for id := sym; id != t.root; id = t.parent[id] {
			n++
		}
		if n > MaxCodeLen {
			return lens, ErrCodeTooLong
		}
		lens[sym] = n
	}
	return lens, nil
}
