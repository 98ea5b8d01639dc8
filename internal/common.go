// Copyright 2026, The cmplab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package internal holds the alphabet parameters and bit helpers shared by the
// cmplab codecs.
//
// For performance reasons, these helpers lack strong error checking and
// require that the caller ensure that strict invariants are kept.
package internal

const (
	// AlphabetSize is the number of distinct input symbols (one byte each).
	AlphabetSize = 256

	// SymbolBits is the number of bits needed to hold any symbol,
	// which is bits.Len(AlphabetSize-1).
	SymbolBits = 8

	// CountBits is the number of bits needed to hold a count of symbols in
	// the range 0..AlphabetSize, which is bits.Len(AlphabetSize).
	CountBits = 9
)

// ReverseLUT returns the input key with its bits reversed.
var ReverseLUT [256]byte

func init() {
	for i := range ReverseLUT {
		b := uint8(i)
		b = (b&0xaa)>>1 | (b&0x55)<<1
		b = (b&0xcc)>>2 | (b&0x33)<<2
		b = (b&0xf0)>>4 | (b&0x0f)<<4
		ReverseLUT[i] = b
	}
}

// ReverseUint32 reverses all bits of v.
func ReverseUint32(v uint32) (x uint32) {
	x |= uint32(ReverseLUT[byte(v>>0)]) << 24
	x |= uint32(ReverseLUT[byte(v>>8)]) << 16
	x |= uint32(ReverseLUT[byte(v>>16)]) << 8
	x |= uint32(ReverseLUT[byte(v>>24)]) << 0
	return x
}

// ReverseUint32N reverses the lower n bits of v, where n is in 0..32.
// The upper bits of v are ignored.
func ReverseUint32N(v uint32, n uint) (x uint32) {
	if n == 0 {
		return 0
	}
	return ReverseUint32(v << (32 - n))
}

// MaskUint32 returns a mask of the lower n bits, where n is in 0..32.
func MaskUint32(n uint) uint32 {
	return uint32(uint64(1)<<n - 1)
}
