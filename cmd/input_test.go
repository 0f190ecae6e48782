/*
 * Copyright (C) 2026 Cloudius Systems, Ltd.
 *
 * This work is open source software, licensed under the terms of the
 * BSD license as described in the LICENSE file in the top-level directory.
 */

package cmd

import (
	"bytes"
	"strings"

	"github.com/pkg/errors"

	. "github.com/cloudius-systems/ginfo/testing"
	. "gopkg.in/check.v1"
)

type failingReader struct {
	data []byte
}

func (r *failingReader) Read(p []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, errors.New("stream closed")
	}
	n := copy(p, r.data)
	r.data = r.data[n:]
	return n, nil
}

type inputSuite struct{}

var _ = Suite(&inputSuite{})

func (*inputSuite) TestReadStdinHeaderRaw(c *C) {
	header, err := ReadStdinHeader(bytes.NewReader(UnixHeader), false)

	c.Assert(err, IsNil)
	c.Check(header[:], DeepEquals, UnixHeader)
}

func (*inputSuite) TestReadStdinHeaderBase64FirstLineOnly(c *C) {
	stdin := strings.NewReader(UnixHeaderBase64 + "\nthis line is never read\n")

	header, err := ReadStdinHeader(stdin, true)

	c.Assert(err, IsNil)
	c.Check(header[:], DeepEquals, UnixHeader)
}

func (*inputSuite) TestReadFileHeaderBase64WholeFile(c *C) {
	// Base64 files are decoded as a whole, so a trailing second line is part of the payload.
	paths, err := PrepareFiles(c.MkDir(), map[string][]byte{
		"/one.b64": []byte(UnixHeaderBase64 + "\n"),
		"/two.b64": []byte(UnixHeaderBase64 + "\nthis line is read too\n"),
	})
	c.Assert(err, IsNil)

	header, err := ReadFileHeader(paths["/one.b64"], true)
	c.Assert(err, IsNil)
	c.Check(header[:], DeepEquals, UnixHeader)

	_, err = ReadFileHeader(paths["/two.b64"], true)
	c.Check(err, ErrorCauseIs, ErrMalformedBase64)
}

func (*inputSuite) TestReadTruncated(c *C) {
	m := []struct {
		comment  string
		input    string
		isBase64 bool
		err      string
	}{
		{
			"empty",
			"",
			false,
			"read 0 of 10 bytes: input is shorter than a gzip header",
		},
		{
			"nine bytes",
			"\x1f\x8b\x08\x00\x00\x00\x00\x00\x00",
			false,
			"read 9 of 10 bytes: input is shorter than a gzip header",
		},
		{
			"nine decoded bytes",
			"H4sIAAAAAAAA\n",
			true,
			"decoded 9 of 10 bytes: input is shorter than a gzip header",
		},
	}
	for i, args := range m {
		c.Logf("CASE #%d: %s", i, args.comment)

		// This is what we're testing here.
		header, err := ReadStdinHeader(strings.NewReader(args.input), args.isBase64)

		// Expectations.
		c.Check(err, ErrorCauseIs, ErrTruncated)
		c.Check(err, ErrorMatches, args.err)
		c.Check(header, DeepEquals, [10]byte{})
	}
}

func (*inputSuite) TestReadMalformedBase64(c *C) {
	_, err := ReadStdinHeader(strings.NewReader("H4sI*AAAAAAAAw==\n"), true)

	c.Check(err, ErrorCauseIs, ErrMalformedBase64)
	c.Check(err, ErrorMatches, "illegal base64 data at input byte 4: malformed base64 input")
}

func (*inputSuite) TestReadStreamError(c *C) {
	m := []struct {
		comment  string
		isBase64 bool
	}{
		{"raw", false},
		{"base64", true},
	}
	for i, args := range m {
		c.Logf("CASE #%d: %s", i, args.comment)

		_, err := ReadStdinHeader(&failingReader{data: []byte{0x1f, 0x8b}}, args.isBase64)

		c.Check(err, ErrorMatches, "reading input: stream closed")
		c.Check(errors.Cause(err), Not(Equals), ErrTruncated)
	}
}
