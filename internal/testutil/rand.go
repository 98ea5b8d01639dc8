// Copyright 2026, The cmplab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package testutil

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/binary"
)

// Rand implements a deterministic pseudo-random number generator.
// This differs from the math.Rand in that the exact output will be consistent
// across different versions of Go.
type Rand struct {
	cipher.Block
	blk [aes.BlockSize]byte
}

func NewRand(seed int) *Rand {
	var key [aes.BlockSize]byte
	binary.LittleEndian.PutUint64(key[:], uint64(seed))
	r, _ := aes.NewCipher(key[:])
	return &Rand{Block: r}
}

func (r *Rand) Int() int {
	r.Encrypt(r.blk[:], r.blk[:])
	return int(binary.LittleEndian.Uint64(r.blk[:8]) >> 2)
}

func (r *Rand) Intn(n int) int {
	return r.Int() % n
}

// Uint32 returns a value with nb random lower bits, where nb is in 0..32.
func (r *Rand) Uint32(nb uint) uint32 {
	r.Encrypt(r.blk[:], r.blk[:])
	return uint32(binary.LittleEndian.Uint64(r.blk[:8]) & (1<<nb - 1))
}

func (r *Rand) Bytes(n int) []byte {
	b := make([]byte, n)
	bb := b
	for len(bb) > 0 {
		r.Encrypt(r.blk[:], r.blk[:])
		cnt := copy(bb, r.blk[:])
		bb = bb[cnt:]
	}
	return b
}

// SparseBytes returns n bytes where runs of zeros alternate with short runs
// of random bytes. Zero runs have lengths in 1..maxRun.
func (r *Rand) SparseBytes(n, maxRun int) []byte {
	b := make([]byte, 0, n)
	for len(b) < n {
		for i := r.Intn(maxRun) + 1; i > 0 && len(b) < n; i-- {
			b = append(b, 0)
		}
		for i := r.Intn(8); i > 0 && len(b) < n; i-- {
			b = append(b, byte(r.Intn(255)+1))
		}
	}
	return b
}

// RepeatBytes returns n bytes where most of the data is a copy of some
// earlier portion of the output. Such data heavily favors dictionary coders,
// while the random literal portions defeat pure entropy coding.
func (r *Rand) RepeatBytes(n int) []byte {
	randLen := func() int {
		lo := 4 << uint(r.Intn(7)) // 4..256
		return lo + r.Intn(lo)
	}
	randDist := func(max int) int {
		hi := 2 << uint(r.Intn(15)) // 2..32768
		d := hi/2 + r.Intn(hi/2)
		if d > max {
			d = 1 + r.Intn(max)
		}
		return d
	}

	b := append(make([]byte, 0, n+512), r.Bytes(randLen())...)
	for len(b) < n {
		if r.Intn(10) == 0 {
			b = append(b, r.Bytes(randLen())...)
			continue
		}
		d, l := randDist(len(b)), randLen()
		for i := 0; i < l; i++ {
			b = append(b, b[len(b)-d])
		}
	}
	return b[:n]
}
