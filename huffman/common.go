// Copyright 2026, The cmplab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package huffman implements a two-pass canonical Huffman codec over the
// cmplab bit channel.
//
// The encoder counts symbol frequencies over the whole input, builds a
// Huffman tree, and derives canonical codes from the resulting code lengths.
// The stream starts with a table header from which the decoder rebuilds the
// same codes:
//
//	count  [9 bits]  number of coded symbols, 0..256
//	count times, in ascending (length, symbol) order:
//		symbol [8 bits]
//		length [6 bits]  code length minus one
//
// The payload that follows is the code of every input symbol, each code
// written most-significant bit first.
package huffman

import "runtime"

const (
	// MaxCodeLen is the longest code length that the header can describe.
	MaxCodeLen = 64

	lenBits = 6 // Bits used to encode a code length minus one
)

// Error is the wrapper type for errors specific to this library.
type Error string

func (e Error) Error() string { return "huffman: " + string(e) }

var (
	ErrCorrupt      error = Error("stream is corrupted")
	ErrCodeTooLong  error = Error("code length exceeds limit")
	ErrInputChanged error = Error("input changed between passes")
)

func errRecover(err *error) {
	switch ex := recover().(type) {
	case nil:
		// Do nothing.
	case runtime.Error:
		panic(ex)
	case error:
		*err = ex
	default:
		panic(ex)
	}
}
