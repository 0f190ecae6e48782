/*
 * Copyright (C) 2017 XLAB, Ltd.
 *
 * This work is open source software, licensed under the terms of the
 * BSD license as described in the LICENSE file in the top-level directory.
 */

package testing

import (
	"strings"
)

// FixIndent turns an indented inline block into the exact text a command
// prints. Tabs are dropped, the leading newline that follows the opening
// backtick is removed, and whitespace before the final newline is trimmed.
// This way expected output can be written nicely aligned with other code:
//
//     FixIndent(`
//         Valid GZip file.
//         Compression Method: 8
//     `)
//
// yields "Valid GZip file.\nCompression Method: 8\n".
func FixIndent(s string) string {
	s = strings.Replace(s, "\t", "", -1)
	s = strings.TrimLeft(s, "\n")
	s = strings.TrimRight(s, " \n")
	if s == "" {
		return ""
	}
	return s + "\n"
}
