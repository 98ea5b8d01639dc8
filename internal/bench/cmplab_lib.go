// Copyright 2026, The cmplab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import (
	"bytes"
	"io"

	"github.com/cmplab/cmplab"
)

func init() {
	reg := cmplab.DefaultRegistry()
	for _, name := range reg.Names() {
		alg, _ := reg.Lookup(name)
		RegisterEncoder(name,
			func(w io.Writer, input []byte) error {
				_, err := cmplab.Encode(alg, bytes.NewReader(input), w)
				return err
			})
		RegisterDecoder(name,
			func(w io.Writer, r io.Reader) error {
				_, err := cmplab.Decode(alg, r, w)
				return err
			})
	}
}
