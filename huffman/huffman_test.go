// Copyright 2026, The cmplab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmplab/cmplab/bitstream"
	"github.com/cmplab/cmplab/internal/testutil"
)

func encode(t *testing.T, input []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	bw := bitstream.NewWriter(&buf)
	require.NoError(t, Encode(bytes.NewReader(input), bw))
	require.NoError(t, bw.Close())
	return buf.Bytes()
}

func decode(input []byte) ([]byte, error) {
	var buf bytes.Buffer
	err := Decode(bitstream.NewReader(bytes.NewReader(input)), &buf)
	return buf.Bytes(), err
}

func TestHeap(t *testing.T) {
	rand := testutil.NewRand(0)
	var freq [numNodes]uint64
	h := nodeHeap{freq: &freq}
	for id := range freq {
		freq[id] = uint64(rand.Intn(16))
		h.Push(id)
	}

	prev := h.Pop()
	for h.Len() > 0 {
		id := h.Pop()
		if freq[id] < freq[prev] || (freq[id] == freq[prev] && id < prev) {
			t.Fatalf("pop order violated: node %d (freq %d) after node %d (freq %d)", id, freq[id], prev, freq[prev])
		}
		prev = id
	}
}

func TestBuildTree(t *testing.T) {
	var freqs Frequencies
	freqs['a'], freqs['b'], freqs['c'], freqs['d'] = 5, 2, 1, 1
	tree := BuildTree(&freqs)

	// The two rarest symbols are merged first.
	assert.Equal(t, numLeaves, tree.Parent('c'))
	assert.Equal(t, numLeaves, tree.Parent('d'))
	assert.Equal(t, numLeaves+2, tree.Root())
	assert.Equal(t, uint64(9), tree.Freq(tree.Root()))
	assert.Equal(t, noNode, tree.Parent(tree.Root()))
	assert.Equal(t, noNode, tree.Parent('e'))

	lens, err := tree.CodeLengths()
	require.NoError(t, err)
	var want Lengths
	want['a'], want['b'], want['c'], want['d'] = 1, 2, 3, 3
	if diff := cmp.Diff(want, lens); diff != "" {
		t.Errorf("CodeLengths mismatch (-want +got):\n%s", diff)
	}
}

func TestCodeLengths(t *testing.T) {
	fibonacci := func(n int) *Frequencies {
		var freqs Frequencies
		freqs[0], freqs[1] = 1, 1
		for i := 2; i < n; i++ {
			freqs[i] = freqs[i-1] + freqs[i-2]
		}
		return &freqs
	}

	var vectors = []struct {
		desc    string
		freqs   *Frequencies
		maxLen  uint
		numSyms int
		err     error
	}{
		{desc: "empty", freqs: new(Frequencies)},
		{desc: "single symbol", freqs: &Frequencies{'z': 1000}, maxLen: 1, numSyms: 1},
		{desc: "two symbols", freqs: &Frequencies{0: 1, 255: 1 << 40}, maxLen: 1, numSyms: 2},
		{desc: "longest allowed", freqs: fibonacci(MaxCodeLen + 1), maxLen: MaxCodeLen, numSyms: MaxCodeLen + 1},
		{desc: "too long", freqs: fibonacci(MaxCodeLen + 2), err: ErrCodeTooLong},
	}

	for _, v := range vectors {
		t.Run(v.desc, func(t *testing.T) {
			lens, err := BuildTree(v.freqs).CodeLengths()
			if err != v.err {
				t.Fatalf("error mismatch: got %v, want %v", err, v.err)
			}
			if err != nil {
				return
			}
			var maxLen uint
			var numSyms int
			for _, n := range lens {
				if n > maxLen {
					maxLen = n
				}
				if n > 0 {
					numSyms++
				}
			}
			assert.Equal(t, v.maxLen, maxLen)
			assert.Equal(t, v.numSyms, numSyms)
		})
	}
}

func TestCanonical(t *testing.T) {
	var lens Lengths
	lens['a'], lens['b'], lens['c'], lens['d'] = 1, 2, 3, 3
	got := Canonical(&lens)
	want := CodeTable{
		{Sym: 'a', Len: 1, Val: 0x0}, // 0
		{Sym: 'b', Len: 2, Val: 0x2}, // 10
		{Sym: 'c', Len: 3, Val: 0x6}, // 110
		{Sym: 'd', Len: 3, Val: 0x7}, // 111
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Canonical mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, lens, got.Lengths())

	// Codes of equal length are consecutive when sorted by symbol.
	lens = Lengths{}
	lens[9], lens[3], lens[200], lens[7] = 2, 2, 2, 2
	got = Canonical(&lens)
	for i, c := range got {
		assert.Equal(t, uint64(i), c.Val)
	}
	assert.Equal(t, []byte{3, 7, 9, 200}, []byte{got[0].Sym, got[1].Sym, got[2].Sym, got[3].Sym})
}

func TestEncoder(t *testing.T) {
	var vectors = []struct {
		desc   string
		input  string
		output string // BitGen formatted
	}{{
		desc:   "empty",
		input:  "",
		output: "D9:0",
	}, {
		desc:  "single symbol",
		input: "zzz",
		output: `
			D9:1 D8:122 D6:0 # Table: z=0
			0*3
		`,
	}, {
		desc:  "skewed",
		input: "aaaaabbcd",
		output: `
			D9:4             # Count
			D8:97  D6:0      # a=0
			D8:98  D6:1      # b=10
			D8:99  D6:2      # c=110
			D8:100 D6:2      # d=111

			# Codes are written starting with the most-significant bit,
			# while BitGen writes the right-most bit first.
			0*5 01*2 011 111
		`,
	}}

	for _, v := range vectors {
		t.Run(v.desc, func(t *testing.T) {
			got := encode(t, []byte(v.input))
			want := testutil.MustDecodeBitGen(v.output)
			if !bytes.Equal(got, want) {
				t.Errorf("output mismatch:\ngot  %x\nwant %x", got, want)
			}
		})
	}
}

func TestDecoder(t *testing.T) {
	const table = "D9:4 D8:97 D6:0 D8:98 D6:1 D8:99 D6:2 D8:100 D6:2"
	var vectors = []struct {
		desc   string
		input  string // BitGen formatted
		output string
		err    error
	}{{
		desc: "empty stream",
	}, {
		desc:  "empty table",
		input: "D9:0",
	}, {
		desc:   "skewed",
		input:  table + " 111 011 01 0",
		output: "dcba",
	}, {
		desc:   "stream ends within a code",
		input:  table + " 0 1",
		output: "a",
		err:    io.ErrUnexpectedEOF,
	}, {
		desc:  "count exceeds alphabet",
		input: "D9:257",
		err:   ErrCorrupt,
	}, {
		desc:  "duplicate symbol",
		input: "D9:2 D8:97 D6:0 D8:97 D6:0",
		err:   ErrCorrupt,
	}, {
		desc:  "unsorted symbols",
		input: "D9:2 D8:98 D6:0 D8:97 D6:0",
		err:   ErrCorrupt,
	}, {
		desc:  "unsorted lengths",
		input: "D9:2 D8:97 D6:1 D8:98 D6:0",
		err:   ErrCorrupt,
	}, {
		desc:  "over-subscribed lengths",
		input: "D9:3 D8:97 D6:0 D8:98 D6:0 D8:99 D6:0",
		err:   ErrCorrupt,
	}, {
		desc:  "truncated table",
		input: "D9:2 D8:97 D6:0 D8:98",
		err:   io.ErrUnexpectedEOF,
	}, {
		desc:   "unassigned code",
		input:  "D9:1 D8:122 D6:0 0 1",
		output: "z",
		err:    ErrCorrupt,
	}, {
		desc:  "payload without table",
		input: "D9:0 0",
		err:   ErrCorrupt,
	}}

	for _, v := range vectors {
		t.Run(v.desc, func(t *testing.T) {
			got, err := decode(testutil.MustDecodeBitGen(v.input))
			if !errors.Is(err, v.err) {
				t.Errorf("error mismatch: got %v, want %v", err, v.err)
			}
			if string(got) != v.output {
				t.Errorf("output mismatch: got %q, want %q", got, v.output)
			}
		})
	}
}

func TestLongCodes(t *testing.T) {
	// A maximally skewed code where symbol i has length i+1, up to the limit.
	var lens Lengths
	for i := 0; i < MaxCodeLen; i++ {
		lens[i] = uint(i + 1)
	}
	lens[MaxCodeLen] = MaxCodeLen
	ct := Canonical(&lens)

	var input []byte
	for i := MaxCodeLen; i >= 0; i-- {
		input = append(input, byte(i), byte(i/2))
	}

	var buf bytes.Buffer
	bw := bitstream.NewWriter(&buf)
	require.NoError(t, writeHeader(bw, ct))
	for _, c := range input {
		require.NoError(t, ct[c].encode(bw))
	}
	require.NoError(t, bw.Close())

	got, err := decode(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, input, got)
}

func TestRoundTrip(t *testing.T) {
	rand := testutil.NewRand(0)
	var vectors = []struct {
		desc  string
		input []byte
	}{
		{"empty", nil},
		{"single byte", []byte{0}},
		{"single symbol", bytes.Repeat([]byte{0xff}, 1000)},
		{"two symbols", []byte(strings.Repeat("ab", 100) + "a")},
		{"all byte values", func() []byte {
			b := make([]byte, 1024)
			for i := range b {
				b[i] = byte(i)
			}
			return b
		}()},
		{"text", testutil.MustLoadFile("../testdata/gettysburg.txt", -1)},
		{"random", rand.Bytes(1 << 16)},
		{"repeats", rand.RepeatBytes(1 << 16)},
		{"sparse", rand.SparseBytes(1<<16, 50)},
	}

	for _, v := range vectors {
		t.Run(v.desc, func(t *testing.T) {
			got, err := decode(encode(t, v.input))
			require.NoError(t, err)
			if !bytes.Equal(got, v.input) {
				t.Errorf("output mismatch: got %d bytes, want %d bytes", len(got), len(v.input))
			}
		})
	}
}

func TestEncoderSeek(t *testing.T) {
	// Encoding starts and rewinds to the current offset, not the file start.
	input := []byte("skip:payload")
	rd := bytes.NewReader(input)
	_, err := rd.Seek(5, io.SeekStart)
	require.NoError(t, err)

	var buf bytes.Buffer
	bw := bitstream.NewWriter(&buf)
	require.NoError(t, Encode(rd, bw))
	require.NoError(t, bw.Close())

	got, err := decode(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, "payload", string(got))
}
