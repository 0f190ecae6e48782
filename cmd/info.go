/*
 * Copyright (C) 2026 Cloudius Systems, Ltd.
 *
 * This work is open source software, licensed under the terms of the
 * BSD license as described in the LICENSE file in the top-level directory.
 */

package cmd

import (
	"fmt"
	"io"

	"github.com/cloudius-systems/ginfo/image/gzip"
)

// Info reads a gzip header from path, or from stdin when path is empty, and
// prints what it contains. Nothing is printed when the header cannot be read.
func Info(w io.Writer, stdin io.Reader, path string, isBase64 bool) error {
	var header [gzip.HeaderSize]byte
	var err error
	if path == "" {
		header, err = ReadStdinHeader(stdin, isBase64)
	} else {
		header, err = ReadFileHeader(path, isBase64)
	}
	if err != nil {
		return err
	}

	PrintReport(w, gzip.Decode(header))
	return nil
}

func PrintReport(w io.Writer, r *gzip.Report) {
	if !r.Valid {
		fmt.Fprintln(w, "Not a valid GZip file.")
		return
	}
	fmt.Fprintln(w, "Valid GZip file.")
	fmt.Fprintf(w, "Compression Method: %d\n", r.Method)
	fmt.Fprintf(w, "Flags: %s\n", r.FlagBits())
	fmt.Fprintf(w, "Modification Time: %s\n", r.TimeString())
	fmt.Fprintf(w, "OS: %s\n", r.OS)
}
