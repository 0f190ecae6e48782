/*
 * Copyright (C) 2026 Cloudius Systems, Ltd.
 *
 * This work is open source software, licensed under the terms of the
 * BSD license as described in the LICENSE file in the top-level directory.
 */

package gzip

// OSCode identifies the file system on which compression took place.
type OSCode uint8

const (
	OS_FAT     OSCode = 0
	OS_UNIX    OSCode = 3
	OS_NTFS    OSCode = 11
	OS_UNKNOWN OSCode = 255
)

var osNames = map[OSCode]string{
	0:   "FAT filesystem (MS-DOS, Windows NT/9x)",
	1:   "Amiga",
	2:   "VMS (or OpenVMS)",
	3:   "Unix",
	4:   "VM/CMS",
	5:   "Atari TOS",
	6:   "HPFS filesystem (OS/2, NT)",
	7:   "Macintosh",
	8:   "Z-System",
	9:   "CP/M",
	10:  "TOPS-20",
	11:  "NTFS filesystem (Windows NT)",
	12:  "QDOS",
	13:  "Acorn RISCOS",
	255: "unknown",
}

// String returns the name of the operating system. Codes missing from the
// table are reported as "other".
func (o OSCode) String() string {
	if name, ok := osNames[o]; ok {
		return name
	}
	return "other"
}
