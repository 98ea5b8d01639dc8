// Copyright 2026, The cmplab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build !no_ref_lib

package bench

import (
	"io"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

func init() {
	RegisterEncoder("flate",
		func(w io.Writer, input []byte) error {
			zw, err := flate.NewWriter(w, flate.DefaultCompression)
			if err != nil {
				return err
			}
			return writeClose(zw, input)
		})
	RegisterDecoder("flate",
		func(w io.Writer, r io.Reader) error {
			zr := flate.NewReader(r)
			if _, err := io.Copy(w, zr); err != nil {
				zr.Close()
				return err
			}
			return zr.Close()
		})
	RegisterEncoder("zstd",
		func(w io.Writer, input []byte) error {
			zw, err := zstd.NewWriter(w, zstd.WithEncoderConcurrency(1))
			if err != nil {
				return err
			}
			return writeClose(zw, input)
		})
	RegisterDecoder("zstd",
		func(w io.Writer, r io.Reader) error {
			zr, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
			if err != nil {
				return err
			}
			defer zr.Close()
			_, err = io.Copy(w, zr)
			return err
		})
	RegisterEncoder("xz",
		func(w io.Writer, input []byte) error {
			zw, err := xz.NewWriter(w)
			if err != nil {
				return err
			}
			return writeClose(zw, input)
		})
	RegisterDecoder("xz",
		func(w io.Writer, r io.Reader) error {
			zr, err := xz.NewReader(r)
			if err != nil {
				return err
			}
			_, err = io.Copy(w, zr)
			return err
		})
}

func writeClose(wc io.WriteCloser, input []byte) error {
	if _, err := wc.Write(input); err != nil {
		wc.Close()
		return err
	}
	return wc.Close()
}
