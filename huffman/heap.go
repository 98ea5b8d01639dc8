// Copyright 2026, The cmplab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

// nodeHeap is a binary min-heap of node ids ordered by frequency.
// Nodes of equal frequency are ordered by id, so that the order in which nodes
// are popped is fully determined by their frequencies.
type nodeHeap struct {
	ids  []int
	freq *[numNodes]uint64
}

func (h *nodeHeap) Len() int { return len(h.ids) }

func (h *nodeHeap) less(i, j int) bool {
	a, b := h.ids[i], h.ids[j]
	if h.freq[a] != h.freq[b] {
		return h.freq[a] < h.freq[b]
	}
	return a < b
}

func (h *nodeHeap) Push(id int) {
	h.ids = append(h.ids, id)
	h.up(len(h.ids) - 1)
}

func (h *nodeHeap) Pop() int {
	id := h.ids[0]
	last := len(h.ids) - 1
	h.ids[0] = h.ids[last]
	h.ids = h.ids[:last]
	if last > 0 {
		h.down(0)
	}
	return id
}

// up percolates the node at i towards the root.
func (h *nodeHeap) up(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if !h.less(i, p) {
			break
		}
		h.ids[i], h.ids[p] = h.ids[p], h.ids[i]
		i = p
	}
}

// down percolates the node at i towards the leaves, always swapping with the
// smaller child.
func (h *nodeHeap) down(i int) {
	n := len(h.ids)
	for {
		c := 2*i + 1
		if c >= n {
			break
		}
		if r := c + 1; r < n && h.less(r, c) {
			c = r
		}
		if !h.less(c, i) {
			break
		}
		h.ids[i], h.ids[c] = h.ids[c], h.ids[i]
		i = c
	}
}
