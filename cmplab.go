// Copyright 2026, The cmplab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package cmplab is a small laboratory of lossless compression codecs.
//
// Every codec reads raw bytes and writes a bit stream through the bitstream
// package, or the reverse. Streams carry no container format, so a decoder
// must be told which algorithm produced a stream. The algorithms are looked up
// by name through a Registry:
//
//	lzw   variable-width Lempel-Ziv-Welch
//	huff  two-pass canonical Huffman
//	zle   zero-length encoding
package cmplab

import (
	"fmt"
	"io"

	"github.com/cmplab/cmplab/bitstream"
	"github.com/cmplab/cmplab/huffman"
	"github.com/cmplab/cmplab/lzw"
	"github.com/cmplab/cmplab/zle"
)

// EncodeFunc reads raw bytes from r until io.EOF and writes the encoded form
// to bw. It must not close bw.
type EncodeFunc func(r io.ReadSeeker, bw *bitstream.Writer) error

// DecodeFunc reads an encoded stream from br and writes the raw bytes to w.
type DecodeFunc func(br *bitstream.Reader, w io.Writer) error

// Algorithm is a named pair of codec functions.
type Algorithm struct {
	Name   string
	Encode EncodeFunc
	Decode DecodeFunc
}

// Error is the wrapper type for errors specific to this library.
type Error string

func (e Error) Error() string { return "cmplab: " + string(e) }

var (
	ErrUnknownAlgorithm error = Error("unknown algorithm")
	ErrInvalidAlgorithm error = Error("invalid algorithm")
)

// Registry is an immutable set of algorithms indexed by name.
type Registry struct {
	algs   []Algorithm
	byName map[string]int
}

// NewRegistry returns a Registry holding algs in the given order.
// Every algorithm must have a unique, non-empty name and both functions.
func NewRegistry(algs ...Algorithm) (*Registry, error) {
	r := &Registry{byName: make(map[string]int)}
	for _, a := range algs {
		switch {
		case a.Name == "":
			return nil, fmt.Errorf("%w: empty name", ErrInvalidAlgorithm)
		case a.Encode == nil || a.Decode == nil:
			return nil, fmt.Errorf("%w: %q lacks a codec function", ErrInvalidAlgorithm, a.Name)
		}
		if _, ok := r.byName[a.Name]; ok {
			return nil, fmt.Errorf("%w: duplicate name %q", ErrInvalidAlgorithm, a.Name)
		}
		r.byName[a.Name] = len(r.algs)
		r.algs = append(r.algs, a)
	}
	return r, nil
}

// DefaultRegistry returns a Registry with every algorithm in this module.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(
		Algorithm{Name: "lzw", Encode: encodeStream(lzw.Encode), Decode: lzw.Decode},
		Algorithm{Name: "huff", Encode: huffman.Encode, Decode: huffman.Decode},
		Algorithm{Name: "zle", Encode: encodeStream(zle.Encode), Decode: zle.Decode},
	)
	if err != nil {
		panic(err)
	}
	return r
}

// encodeStream adapts a single-pass encoder to an EncodeFunc.
func encodeStream(fn func(io.Reader, *bitstream.Writer) error) EncodeFunc {
	return func(r io.ReadSeeker, bw *bitstream.Writer) error { return fn(r, bw) }
}

// Lookup returns the algorithm with exactly the given name.
func (r *Registry) Lookup(name string) (Algorithm, error) {
	i, ok := r.byName[name]
	if !ok {
		return Algorithm{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
	return r.algs[i], nil
}

// Names lists the registered algorithm names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.algs))
	for i, a := range r.algs {
		names[i] = a.Name
	}
	return names
}
