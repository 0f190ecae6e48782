/*
 * Copyright (C) 2026 Cloudius Systems, Ltd.
 *
 * This work is open source software, licensed under the terms of the
 * BSD license as described in the LICENSE file in the top-level directory.
 */

package cmd

import (
	"bufio"
	"encoding/base64"
	"io"
	"io/ioutil"
	"os"
	"strings"

	"github.com/cloudius-systems/ginfo/image/gzip"
	"github.com/pkg/errors"
)

var (
	// ErrTruncated is the cause of every error about input that ends before
	// a full gzip header could be read.
	ErrTruncated = errors.New("input is shorter than a gzip header")

	// ErrMalformedBase64 is the cause of every error about base64 text that
	// could not be decoded.
	ErrMalformedBase64 = errors.New("malformed base64 input")
)

// ReadFileHeader returns the first gzip.HeaderSize bytes of the named file.
// When isBase64 is set the whole file is read as base64 text and the header
// is taken from the decoded payload.
func ReadFileHeader(path string, isBase64 bool) ([gzip.HeaderSize]byte, error) {
	if isBase64 {
		data, err := ioutil.ReadFile(path)
		if err != nil {
			return [gzip.HeaderSize]byte{}, errors.Wrap(err, "reading input")
		}
		return decodeBase64(string(data))
	}

	f, err := os.Open(path)
	if err != nil {
		return [gzip.HeaderSize]byte{}, errors.Wrap(err, "reading input")
	}
	defer f.Close()
	return readRaw(f)
}

// ReadStdinHeader is like ReadFileHeader but reads from r, normally the
// process' standard input. In base64 mode only the first line is consumed.
func ReadStdinHeader(r io.Reader, isBase64 bool) ([gzip.HeaderSize]byte, error) {
	if isBase64 {
		line, err := bufio.NewReader(r).ReadString('\n')
		if err != nil && err != io.EOF {
			return [gzip.HeaderSize]byte{}, errors.Wrap(err, "reading input")
		}
		return decodeBase64(line)
	}
	return readRaw(r)
}

func readRaw(r io.Reader) ([gzip.HeaderSize]byte, error) {
	var header [gzip.HeaderSize]byte
	n, err := io.ReadFull(r, header[:])
	switch err {
	case nil:
		return header, nil
	case io.EOF, io.ErrUnexpectedEOF:
		return [gzip.HeaderSize]byte{}, errors.Wrapf(ErrTruncated, "read %d of %d bytes", n, gzip.HeaderSize)
	default:
		return [gzip.HeaderSize]byte{}, errors.Wrap(err, "reading input")
	}
}

func decodeBase64(text string) ([gzip.HeaderSize]byte, error) {
	var header [gzip.HeaderSize]byte
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(text))
	if err != nil {
		return header, errors.Wrap(ErrMalformedBase64, err.Error())
	}
	if len(decoded) < gzip.HeaderSize {
		return header, errors.Wrapf(ErrTruncated, "decoded %d of %d bytes", len(decoded), gzip.HeaderSize)
	}
	copy(header[:], decoded)
	return header, nil
}
