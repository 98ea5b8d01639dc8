// Copyright 2026, The cmplab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Benchmark tool to compare the cmplab algorithms against each other and
// against general purpose compressors. Individual implementations are
// referred to as codecs.
//
// Example usage:
//
//	$ cmplab-bench \
//		--tests  encRate,ratio     \
//		--codecs lzw,huff,zle,zstd \
//		--files  gettysburg.txt,@sparse \
//		--sizes  1e4,1e5,1Mi
package main

import (
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/dsnet/golib/unitconv"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/cmplab/cmplab/internal/bench"
)

const (
	defaultTests = "encRate,decRate,ratio"
	defaultFiles = "gettysburg.txt,@random,@repeats,@sparse"
	defaultPaths = "testdata"
	defaultSizes = "1e4,1e5,1e6"
)

var (
	testToEnum = map[string]int{
		"encRate": bench.TestEncodeRate,
		"decRate": bench.TestDecodeRate,
		"ratio":   bench.TestCompressRatio,
	}
	enumToTest = map[int]string{
		bench.TestEncodeRate:    "encRate",
		bench.TestDecodeRate:    "decRate",
		bench.TestCompressRatio: "ratio",
	}
)

var sep = regexp.MustCompile("[,:]")

func main() {
	log.SetFlags(0)
	log.SetPrefix("cmplab-bench: ")
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "cmplab-bench",
		Usage: "compare encode rate, decode rate, and ratio across codecs",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "tests", Value: defaultTests, Usage: "list of different benchmark tests"},
			&cli.StringFlag{Name: "codecs", Value: strings.Join(bench.Codecs(), ","), Usage: "list of codecs to benchmark"},
			&cli.StringFlag{Name: "paths", Value: defaultPaths, Usage: "list of paths to search for test files"},
			&cli.StringFlag{Name: "files", Value: defaultFiles, Usage: "list of input files (or @generators) to benchmark"},
			&cli.StringFlag{Name: "sizes", Value: defaultSizes, Usage: "list of input sizes to benchmark"},
		},
		Action: run,
	}
}

type config struct {
	tests  []int
	codecs []string
	paths  []string
	files  []string
	sizes  []int
}

func parseConfig(c *cli.Context) (cfg config, err error) {
	cfg.paths = sep.Split(c.String("paths"), -1)
	cfg.files = sep.Split(c.String("files"), -1)
	for _, s := range sep.Split(c.String("codecs"), -1) {
		if bench.Encoders[s] == nil || bench.Decoders[s] == nil {
			return cfg, errors.Errorf("invalid codec: %q", s)
		}
		cfg.codecs = append(cfg.codecs, s)
	}
	for _, s := range sep.Split(c.String("tests"), -1) {
		t, ok := testToEnum[s]
		if !ok {
			return cfg, errors.Errorf("invalid test: %q", s)
		}
		cfg.tests = append(cfg.tests, t)
	}
	for _, s := range sep.Split(c.String("sizes"), -1) {
		nf, err := unitconv.ParsePrefix(s, unitconv.AutoParse)
		if err != nil || nf < 1 {
			return cfg, errors.Errorf("invalid size: %q", s)
		}
		cfg.sizes = append(cfg.sizes, int(nf))
	}
	return cfg, nil
}

func run(c *cli.Context) error {
	cfg, err := parseConfig(c)
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}

	ts := time.Now()
	bench.Paths = cfg.paths
	runBenchmarks(c.App.Writer, c.App.ErrWriter, cfg)
	fmt.Fprintf(c.App.Writer, "RUNTIME: %v\n", time.Since(ts))
	return nil
}

func runBenchmarks(w, progress io.Writer, cfg config) {
	for _, t := range cfg.tests {
		var results [][]bench.Result
		var names []string
		var title, suffix string

		fmt.Fprintf(w, "BENCHMARK: %s\n", enumToTest[t])

		// Progress ticker.
		var cnt int
		tick := func() {
			total := len(cfg.codecs) * len(cfg.files) * len(cfg.sizes)
			pct := 100.0 * float64(cnt) / float64(total)
			fmt.Fprintf(progress, "\t[%6.2f%%] %d of %d\r", pct, cnt, total)
			cnt++
		}

		// Perform the bench. This may take some time.
		switch t {
		case bench.TestEncodeRate:
			title, suffix = "MB/s", ""
			results, names = bench.BenchmarkEncoderSuite(cfg.codecs, cfg.files, cfg.sizes, tick)
		case bench.TestDecodeRate:
			title, suffix = "MB/s", ""
			results, names = bench.BenchmarkDecoderSuite(cfg.codecs, cfg.files, cfg.sizes, tick)
		case bench.TestCompressRatio:
			title, suffix = "ratio", "x"
			results, names = bench.BenchmarkRatioSuite(cfg.codecs, cfg.files, cfg.sizes, tick)
		default:
			panic("unknown test")
		}

		printResults(w, results, names, cfg.codecs, title, suffix)
		fmt.Fprintln(w)
	}
}

func printResults(w io.Writer, results [][]bench.Result, names, codecs []string, title, suffix string) {
	// Allocate result table.
	cells := make([][]string, 1+len(names))
	for i := range cells {
		cells[i] = make([]string, 1+2*len(codecs))
	}

	// Label the first row.
	cells[0][0] = "benchmark"
	for i, c := range codecs {
		cells[0][1+2*i] = c + " " + title
		cells[0][2+2*i] = "delta"
	}

	// Insert all rows.
	for j, row := range results {
		cells[1+j][0] = names[j]
		for i, r := range row {
			if r.R != 0 && !math.IsNaN(r.R) && !math.IsInf(r.R, 0) {
				cells[1+j][1+2*i] = fmt.Sprintf("%.2f", r.R) + suffix
			}
			if r.D != 0 && !math.IsNaN(r.D) && !math.IsInf(r.D, 0) {
				cells[1+j][2+2*i] = fmt.Sprintf("%.2f", r.D) + "x"
			}
		}
	}

	// Compute the maximum lengths.
	maxLens := make([]int, 1+2*len(codecs))
	for _, row := range cells {
		for i, s := range row {
			if maxLens[i] < len(s) {
				maxLens[i] = len(s)
			}
		}
	}

	// Print padded versions of all cells.
	for _, row := range cells {
		var sb strings.Builder
		sb.WriteString("\t")
		for i, s := range row {
			switch {
			case i == 0: // Column 0
				s = s + strings.Repeat(" ", maxLens[i]-len(s))
			case i%2 == 1: // Column 1, 3, 5, 7, ...
				s = strings.Repeat(" ", 6+maxLens[i]-len(s)) + s
			case i%2 == 0: // Column 2, 4, 6, 8, ...
				s = strings.Repeat(" ", 2+maxLens[i]-len(s)) + s
			}
			sb.WriteString(s)
		}
		fmt.Fprintln(w, strings.TrimRight(sb.String(), " "))
	}
}
