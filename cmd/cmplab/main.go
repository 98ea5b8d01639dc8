// Copyright 2026, The cmplab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Command cmplab encodes and decodes data with one of the cmplab algorithms.
//
// Example usage:
//
//	$ cmplab lzw encode < input.txt > input.lzw
//	$ cmplab lzw decode < input.lzw > output.txt
//	$ cmplab --verbose --input input.txt huff roundtrip > /dev/null
//	cmplab: huff roundtrip: 1.48Ki raw, 876 encoded (ratio 0.578)
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/cmplab/cmplab"
)

const (
	exitRuntime = 1
	exitUsage   = 2
)

var modes = map[string]func(cmplab.Algorithm, io.ReadSeeker, io.Writer) (cmplab.Stats, error){
	"encode":    cmplab.Encode,
	"roundtrip": cmplab.RoundTrip,
	"decode": func(alg cmplab.Algorithm, r io.ReadSeeker, w io.Writer) (cmplab.Stats, error) {
		return cmplab.Decode(alg, r, w)
	},
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("cmplab: ")

	app := newApp(cmplab.DefaultRegistry())
	if err := app.Run(os.Args); err != nil {
		log.Fatalf("fatal error: %v", err)
	}
}

func newApp(reg *cmplab.Registry) *cli.App {
	return &cli.App{
		Name:      "cmplab",
		Usage:     "Encode and decode data with simple compression algorithms",
		ArgsUsage: "ALGORITHM encode|decode|roundtrip",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Usage:   "read from `FILE` instead of stdin",
				EnvVars: []string{"CMPLAB_INPUT"},
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "write to `FILE` instead of stdout",
				EnvVars: []string{"CMPLAB_OUTPUT"},
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "print statistics to stderr",
				EnvVars: []string{"CMPLAB_VERBOSE"},
			},
			&cli.BoolFlag{
				Name:  "list",
				Usage: "list the available algorithms and exit",
			},
		},
		Action: func(c *cli.Context) error {
			return run(c, reg)
		},
		OnUsageError: func(c *cli.Context, err error, _ bool) error {
			return cli.Exit(err.Error(), exitUsage)
		},
	}
}

// usageError prints the help text to stderr, keeping stdout free for data.
func usageError(c *cli.Context, format string, args ...interface{}) error {
	cli.HelpPrinter(c.App.ErrWriter, cli.AppHelpTemplate, c.App)
	return cli.Exit(fmt.Sprintf(format, args...), exitUsage)
}

func run(c *cli.Context, reg *cmplab.Registry) (err error) {
	if c.Bool("list") {
		for _, name := range reg.Names() {
			if _, err := io.WriteString(c.App.Writer, name+"\n"); err != nil {
				return err
			}
		}
		return nil
	}

	if c.NArg() != 2 {
		return usageError(c, "expected 2 arguments, got %d", c.NArg())
	}
	algName, modeName := c.Args().Get(0), c.Args().Get(1)
	alg, err := reg.Lookup(algName)
	if err != nil {
		return usageError(c, "%v", err)
	}
	mode, ok := modes[modeName]
	if !ok {
		return usageError(c, "unknown mode %q", modeName)
	}

	var closers []io.Closer
	defer func() {
		var merr *multierror.Error
		for _, cl := range closers {
			if cerr := cl.Close(); cerr != nil {
				merr = multierror.Append(merr, cerr)
			}
		}
		if cerr := merr.ErrorOrNil(); cerr != nil && err == nil {
			err = cli.Exit(cerr.Error(), exitRuntime)
		}
	}()

	var rd io.Reader = c.App.Reader
	if path := c.String("input"); path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return cli.Exit(errors.Wrap(err, "open input").Error(), exitRuntime)
		}
		closers = append(closers, f)
		rd = f
	}
	var wr io.Writer = c.App.Writer
	if path := c.String("output"); path != "" && path != "-" {
		f, err := os.Create(path)
		if err != nil {
			return cli.Exit(errors.Wrap(err, "create output").Error(), exitRuntime)
		}
		closers = append(closers, f)
		wr = f
	}

	rs, err := cmplab.Spool(rd)
	if err != nil {
		return cli.Exit(errors.Wrap(err, "read input").Error(), exitRuntime)
	}
	st, err := mode(alg, rs, wr)
	if err != nil {
		return cli.Exit(errors.Wrapf(err, "%s %s", algName, modeName).Error(), exitRuntime)
	}

	if c.Bool("verbose") {
		logger := log.New(c.App.ErrWriter, "cmplab: ", 0)
		logger.Printf("%s %s: %s raw, %s encoded (ratio %.3f)",
			algName, modeName, formatSize(st.RawBytes), formatSize(st.EncodedBytes), st.Ratio())
	}
	return nil
}
