// Copyright 2026, The cmplab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package lzw implements a variable-width Lempel-Ziv-Welch codec over the
// cmplab bit channel.
//
// The dictionary starts with one entry per byte value. Each emitted code is a
// dictionary index written with the current code width, which begins at 9 bits
// and grows by one whenever the dictionary is about to outgrow it. The
// dictionary stops growing at MaxDictSize entries; codes are still emitted
// afterwards, but no new entries are defined.
package lzw

import "github.com/cmplab/cmplab/internal"

const (
	// MaxDictSize is the maximum number of dictionary entries,
	// including the AlphabetSize root entries.
	MaxDictSize = 1 << 16

	// initWidth is the starting code width, which is wide enough to hold
	// every root entry plus the first defined one.
	initWidth uint = internal.CountBits
)

// Error is the wrapper type for errors specific to this library.
type Error string

func (e Error) Error() string { return "lzw: " + string(e) }

var (
	ErrCorrupt error = Error("stream is corrupted")
)

// dictKey packs a (prefix, suffix) pair into a single map key.
func dictKey(prefix uint32, suffix byte) uint32 {
	return prefix<<8 | uint32(suffix)
}
