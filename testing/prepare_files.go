/*
 * Copyright (C) 2017 XLAB, Ltd.
 *
 * This work is open source software, licensed under the terms of the
 * BSD license as described in the LICENSE file in the top-level directory.
 */

package testing

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
)

//
// Common Header Templates
//

// UnixHeader is the smallest valid gzip header: DEFLATE, no flags, no
// modification time, created on Unix.
var UnixHeader = []byte{0x1f, 0x8b, 0x08, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x03}

// UnixHeaderBase64 is UnixHeader in standard padded base64.
const UnixHeaderBase64 string = "H4sIAAAAAAAAAw=="

// PrepareFiles realizes map[filepath]content into given directory and
// returns the absolute path of every file written, keyed like the input.
// E.g. directory = /tmp/sample, files = {"/in/test.gz" => UnixHeader} will result in
//
// /tmp/sample/
//        |- in/
//            |- test.gz
//
// where test.gz will contain the raw bytes of UnixHeader.
func PrepareFiles(directory string, files map[string][]byte) (map[string]string, error) {
	paths := map[string]string{}
	for name, content := range files {
		path := filepath.Join(directory, strings.TrimPrefix(name, "/"))

		// Create directory structure.
		if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
			return nil, err
		}
		// Create file with content.
		if err := ioutil.WriteFile(path, content, 0600); err != nil {
			return nil, err
		}
		paths[name] = path
	}

	return paths, nil
}
