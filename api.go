// Copyright 2026, The cmplab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package cmplab

import (
	"io"

	"github.com/dsnet/golib/memfile"

	"github.com/cmplab/cmplab/bitstream"
)

// Stats reports the amount of data a driver moved.
type Stats struct {
	InputBytes  int64 // Bytes consumed from the input
	OutputBytes int64 // Bytes written to the output

	RawBytes     int64 // Size of the unencoded data
	EncodedBytes int64 // Size of the encoded stream
}

// Ratio reports the encoded size relative to the raw size,
// or 0 if there was no raw data.
func (s Stats) Ratio() float64 {
	if s.RawBytes == 0 {
		return 0
	}
	return float64(s.EncodedBytes) / float64(s.RawBytes)
}

type countWriter struct {
	w io.Writer
	n int64
}

func (cw *countWriter) Write(b []byte) (int, error) {
	n, err := cw.w.Write(b)
	cw.n += int64(n)
	return n, err
}

// Encode encodes all of r with alg and writes the stream to w.
// The bit stream is closed before returning, but w is not.
func Encode(alg Algorithm, r io.ReadSeeker, w io.Writer) (Stats, error) {
	start, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return Stats{}, err
	}
	bw := bitstream.NewWriter(w)
	err = alg.Encode(r, bw)
	if cerr := bw.Close(); err == nil {
		err = cerr
	}
	st := Stats{OutputBytes: bw.Offset(), EncodedBytes: bw.Offset()}
	if end, serr := r.Seek(0, io.SeekCurrent); serr == nil {
		st.InputBytes, st.RawBytes = end-start, end-start
	}
	return st, err
}

// Decode decodes the stream in r with alg and writes the raw bytes to w.
func Decode(alg Algorithm, r io.Reader, w io.Writer) (Stats, error) {
	br := bitstream.NewReader(r)
	cw := &countWriter{w: w}
	err := alg.Decode(br, cw)
	return Stats{
		InputBytes:   br.Offset(),
		OutputBytes:  cw.n,
		RawBytes:     cw.n,
		EncodedBytes: br.Offset(),
	}, err
}

// RoundTrip encodes r with alg into an in-memory file and decodes that file
// into w. Nothing is persisted in between.
func RoundTrip(alg Algorithm, r io.ReadSeeker, w io.Writer) (Stats, error) {
	tmp := memfile.New(nil)
	enc, err := Encode(alg, r, tmp)
	if err != nil {
		return enc, err
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		return enc, err
	}
	dec, err := Decode(alg, tmp, w)
	return Stats{
		InputBytes:   enc.InputBytes,
		OutputBytes:  dec.OutputBytes,
		RawBytes:     enc.RawBytes,
		EncodedBytes: enc.EncodedBytes,
	}, err
}

// Spool returns r as an io.ReadSeeker. If r cannot seek, such as a pipe,
// all of r is first read into memory.
func Spool(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		if _, err := rs.Seek(0, io.SeekCurrent); err == nil {
			return rs, nil
		}
	}
	f := memfile.New(nil)
	if _, err := io.Copy(f, r); err != nil {
		return nil, err
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	return f, nil
}
