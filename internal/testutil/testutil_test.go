// Copyright 2026, The cmplab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package testutil

import (
	"bytes"
	"encoding/hex"
	"testing"
)

func TestDecodeBitGen(t *testing.T) {
	var vectors = []struct {
		input  string
		output string // Hex encoded
		valid  bool
	}{
		{input: "", output: "", valid: true},
		{input: "# Only a comment", output: "", valid: true},
		{input: "1", output: "00000003", valid: true},
		{input: "0", output: "00000002", valid: true},
		{input: "10", output: "00000006", valid: true},
		{input: "1*8", output: "000001ff", valid: true},
		{input: "H8:ab", output: "000001ab", valid: true},
		{input: "D9:97 D9:256 # Codes", output: "00060061", valid: true},
		{input: "H32:12345678", output: "1234567800000001", valid: true},
		{input: "0*32", output: "0000000000000001", valid: true},
		{input: "D0:0", output: "", valid: true},
		{input: "D8:256", valid: false},
		{input: "H33:0", valid: false},
		{input: "12", valid: false},
		{input: "X:abcd", valid: false},
	}

	for i, v := range vectors {
		got, err := DecodeBitGen(v.input)
		if valid := err == nil; valid != v.valid {
			t.Errorf("test %d, validity mismatch: got %v, want %v", i, valid, v.valid)
			continue
		}
		if !v.valid {
			continue
		}
		if output := hex.EncodeToString(got); output != v.output {
			t.Errorf("test %d, output mismatch:\ngot  %s\nwant %s", i, output, v.output)
		}
	}
}

func TestResizeData(t *testing.T) {
	in := []byte("abc")
	if got := ResizeData(in, -1); !bytes.Equal(got, in) {
		t.Errorf("ResizeData(-1) = %q, want %q", got, in)
	}
	if got := ResizeData(in, 2); !bytes.Equal(got, []byte("ab")) {
		t.Errorf("ResizeData(2) = %q, want %q", got, "ab")
	}
	want := []byte{'a', 'b', 'c', 'a' ^ 1, 'b' ^ 1, 'c' ^ 1, 'a' ^ 2}
	if got := ResizeData(in, 7); !bytes.Equal(got, want) {
		t.Errorf("ResizeData(7) = %q, want %q", got, want)
	}
}

func TestSparseBytes(t *testing.T) {
	rand := NewRand(0)
	b := rand.SparseBytes(1<<16, 300)
	if len(b) != 1<<16 {
		t.Fatalf("length mismatch: got %d, want %d", len(b), 1<<16)
	}
	if b[0] != 0 {
		t.Errorf("first byte: got %d, want 0", b[0])
	}
	var run, maxRun int
	for _, c := range b {
		if c == 0 {
			run++
		} else {
			run = 0
		}
		if run > maxRun {
			maxRun = run
		}
	}
	if maxRun < 2 {
		t.Errorf("unexpected longest zero run: %d", maxRun)
	}
}

func TestRandDeterministic(t *testing.T) {
	a, b := NewRand(5).Bytes(100), NewRand(5).Bytes(100)
	if !bytes.Equal(a, b) {
		t.Errorf("same seed produced different output")
	}
	for nb := uint(0); nb <= 32; nb++ {
		if v := NewRand(int(nb)).Uint32(nb); nb < 32 && v>>nb != 0 {
			t.Errorf("Uint32(%d) = %#x, exceeds width", nb, v)
		}
	}
}
