// Copyright 2026, The cmplab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package bench compares the cmplab algorithms with each other and with
// general purpose compressors with respect to encode speed, decode speed,
// and ratio.
package bench

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path"
	"regexp"
	"runtime"
	"sort"
	"strings"
	"testing"

	"github.com/dsnet/golib/unitconv"

	"github.com/cmplab/cmplab/internal/testutil"
)

const (
	TestEncodeRate = iota
	TestDecodeRate
	TestCompressRatio
)

// Encoder compresses all of input and writes the result to w.
type Encoder func(w io.Writer, input []byte) error

// Decoder decompresses all of r and writes the result to w.
type Decoder func(w io.Writer, r io.Reader) error

var (
	Encoders = make(map[string]Encoder)
	Decoders = make(map[string]Decoder)

	// List of search paths for test files.
	Paths []string
)

func RegisterEncoder(name string, enc Encoder) { Encoders[name] = enc }
func RegisterDecoder(name string, dec Decoder) { Decoders[name] = dec }

// Codecs lists the names of all codecs with both an encoder and a decoder.
func Codecs() []string {
	var names []string
	for name := range Encoders {
		if _, ok := Decoders[name]; ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Generators produce synthetic test inputs of a requested size. They are
// selected in place of test files by prefixing their name with '@'.
var Generators = map[string]func(n int) []byte{
	"random":  func(n int) []byte { return testutil.NewRand(0).Bytes(n) },
	"repeats": func(n int) []byte { return testutil.NewRand(0).RepeatBytes(n) },
	"sparse":  func(n int) []byte { return testutil.NewRand(0).SparseBytes(n, 1024) },
}

// LoadInput loads the first n bytes of the named input. If n < 0, the whole
// input file is used.
func LoadInput(name string, n int) ([]byte, error) {
	if strings.HasPrefix(name, "@") {
		gen, ok := Generators[name[1:]]
		if !ok {
			return nil, fmt.Errorf("bench: unknown generator %q", name)
		}
		if n < 0 {
			n = 1 << 20
		}
		return gen(n), nil
	}
	return testutil.LoadFile(getPath(name), n)
}

// BenchmarkEncoder benchmarks a single encoder on the given input data and
// reports the result.
func BenchmarkEncoder(input []byte, enc Encoder) testing.BenchmarkResult {
	return testing.Benchmark(func(b *testing.B) {
		b.StopTimer()
		if enc == nil {
			b.Fatalf("unexpected error: nil Encoder")
		}
		runtime.GC()
		b.StartTimer()
		for i := 0; i < b.N; i++ {
			if err := enc(io.Discard, input); err != nil {
				b.Fatalf("unexpected error: %v", err)
			}
			b.SetBytes(int64(len(input)))
		}
	})
}

type Result struct {
	R float64 // Rate (MB/s) or ratio (rawSize/compSize)
	D float64 // Delta ratio relative to primary benchmark
}

// BenchmarkEncoderSuite runs multiple benchmarks across all encoder
// implementations, files, and sizes.
//
// The values returned have the following structure:
//
//	results: [len(files)*len(sizes)][len(encs)]Result
//	names:   [len(files)*len(sizes)]string
func BenchmarkEncoderSuite(encs, files []string, sizes []int, tick func()) (results [][]Result, names []string) {
	return benchmarkSuite(encs, files, sizes, tick,
		func(input []byte, enc string) Result {
			result := BenchmarkEncoder(input, Encoders[enc])
			if result.N == 0 {
				return Result{}
			}
			us := (float64(result.T.Nanoseconds()) / 1e3) / float64(result.N)
			rate := float64(result.Bytes) / us
			return Result{R: rate}
		})
}

// BenchmarkDecoder benchmarks a single decoder on the given pre-compressed
// input data and reports the result.
func BenchmarkDecoder(input []byte, dec Decoder) testing.BenchmarkResult {
	return testing.Benchmark(func(b *testing.B) {
		b.StopTimer()
		if dec == nil {
			b.Fatalf("unexpected error: nil Decoder")
		}
		runtime.GC()
		b.StartTimer()
		for i := 0; i < b.N; i++ {
			cw := new(countWriter)
			if err := dec(cw, bytes.NewReader(input)); err != nil {
				b.Fatalf("unexpected error: %v", err)
			}
			b.SetBytes(cw.n)
		}
	})
}

// BenchmarkDecoderSuite runs multiple benchmarks across all decoder
// implementations, files, and sizes. Each decoder is given input produced by
// the encoder of the same name.
//
// The values returned have the following structure:
//
//	results: [len(files)*len(sizes)][len(decs)]Result
//	names:   [len(files)*len(sizes)]string
func BenchmarkDecoderSuite(decs, files []string, sizes []int, tick func()) (results [][]Result, names []string) {
	return benchmarkSuite(decs, files, sizes, tick,
		func(input []byte, dec string) Result {
			enc := Encoders[dec]
			if enc == nil {
				return Result{}
			}
			buf := new(bytes.Buffer)
			if err := enc(buf, input); err != nil {
				return Result{}
			}
			output := buf.Bytes()

			result := BenchmarkDecoder(output, Decoders[dec])
			if result.N == 0 {
				return Result{}
			}
			us := (float64(result.T.Nanoseconds()) / 1e3) / float64(result.N)
			rate := float64(result.Bytes) / us
			return Result{R: rate}
		})
}

// BenchmarkRatioSuite runs multiple benchmarks across all encoder
// implementations, files, and sizes.
//
// The values returned have the following structure:
//
//	results: [len(files)*len(sizes)][len(encs)]Result
//	names:   [len(files)*len(sizes)]string
func BenchmarkRatioSuite(encs, files []string, sizes []int, tick func()) (results [][]Result, names []string) {
	return benchmarkSuite(encs, files, sizes, tick,
		func(input []byte, enc string) Result {
			cw := new(countWriter)
			if err := Encoders[enc](cw, input); err != nil {
				return Result{}
			}
			ratio := float64(len(input)) / float64(cw.n)
			return Result{R: ratio}
		})
}

type benchFunc func(input []byte, codec string) Result

func benchmarkSuite(codecs, files []string, sizes []int, tick func(), run benchFunc) ([][]Result, []string) {
	// Allocate buffers for the result.
	d0 := len(files) * len(sizes)
	d1 := len(codecs)
	results := make([][]Result, d0)
	for i := range results {
		results[i] = make([]Result, d1)
	}
	names := make([]string, d0)

	// Run the benchmark for every codec, file, and size.
	var i int
	for _, f := range files {
		for _, n := range sizes {
			b, err := LoadInput(f, n)
			name := getName(f, len(b))
			for j, c := range codecs {
				if tick != nil {
					tick()
				}
				names[i] = name
				if err == nil {
					results[i][j] = run(b, c)
				}
				results[i][j].D = results[i][j].R / results[i][0].R
			}
			i++
		}
	}
	return results, names
}

type countWriter struct{ n int64 }

func (cw *countWriter) Write(b []byte) (int, error) {
	cw.n += int64(len(b))
	return len(b), nil
}

func getPath(file string) string {
	if path.IsAbs(file) {
		return file
	}
	for _, p := range Paths {
		p = path.Join(p, file)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return file
}

func getName(f string, n int) string {
	var sn string
	switch n {
	case 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9, 1e10, 1e11, 1e12:
		s := fmt.Sprintf("%e", float64(n))
		re := regexp.MustCompile("\\.0*e\\+0*")
		sn = re.ReplaceAllString(s, "e")
	default:
		s := unitconv.FormatPrefix(float64(n), unitconv.Base1024, 2)
		sn = strings.Replace(s, ".00", "", -1)
	}
	return fmt.Sprintf("%s:%s", path.Base(f), sn)
}
