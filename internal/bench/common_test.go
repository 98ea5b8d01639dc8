// Copyright 2026, The cmplab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetName(t *testing.T) {
	assert.Equal(t, "gettysburg.txt:1e4", getName("../testdata/gettysburg.txt", 1e4))
	assert.Equal(t, "@sparse:1K", getName("@sparse", 1024))
	assert.Equal(t, "foo:64K", getName("foo", 1<<16))
}

func TestLoadInput(t *testing.T) {
	Paths = []string{"../../testdata"}

	b, err := LoadInput("gettysburg.txt", 1<<12)
	require.NoError(t, err)
	assert.Len(t, b, 1<<12)

	b, err = LoadInput("@random", 100)
	require.NoError(t, err)
	assert.Len(t, b, 100)

	_, err = LoadInput("@nope", 100)
	assert.Error(t, err)
	_, err = LoadInput("does-not-exist.txt", 100)
	assert.Error(t, err)
}

func TestCodecsRegistered(t *testing.T) {
	for _, name := range []string{"lzw", "huff", "zle", "flate", "zstd", "xz"} {
		assert.Contains(t, Codecs(), name)
	}
}

func TestRatioSuite(t *testing.T) {
	Paths = []string{"../../testdata"}
	codecs := []string{"zle", "lzw"}
	files := []string{"@sparse", "gettysburg.txt"}
	sizes := []int{1 << 12, 1 << 14}

	var ticks int
	results, names := BenchmarkRatioSuite(codecs, files, sizes, func() { ticks++ })
	assert.Equal(t, len(codecs)*len(files)*len(sizes), ticks)
	require.Len(t, results, len(files)*len(sizes))
	assert.Equal(t, []string{"@sparse:4K", "@sparse:16K", "gettysburg.txt:4K", "gettysburg.txt:16K"}, names)

	for i, row := range results {
		require.Len(t, row, len(codecs))
		assert.Equal(t, 1.0, row[0].D, "row %d", i)
		for j, r := range row {
			assert.Greater(t, r.R, 0.0, "row %d, codec %s", i, codecs[j])
		}
	}
}
