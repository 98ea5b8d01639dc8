// Copyright 2026, The cmplab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package zle implements zero-length encoding, a run-length scheme that only
// compresses runs of zero bytes.
//
// Every byte is written as an 8-bit literal. A literal zero is always followed
// by a 16-bit field holding the number of zeros in the run minus one, where
// the literal itself counts as the first zero of the run. Runs longer than
// MaxRun are split, so the zero that follows a full run starts a new literal.
package zle

import "github.com/cmplab/cmplab/internal"

const (
	// MaxRun is the longest run of zeros a single run field can describe.
	MaxRun = 1 << runBits

	runBits uint = 16
	litBits uint = internal.SymbolBits
)
