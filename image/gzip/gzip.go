/*
 * Copyright (C) 2026 Cloudius Systems, Ltd.
 *
 * This work is open source software, licensed under the terms of the
 * BSD license as described in the LICENSE file in the top-level directory.
 */

package gzip

import (
	"encoding/binary"
	"fmt"
	"time"
)

const (
	ID1 = 0x1f
	ID2 = 0x8b

	// HeaderSize is the length of the fixed part of a gzip member header.
	HeaderSize = 10

	METHOD_DEFLATE = 8

	FRIENDLY_TIME_F = "2006-01-02 15:04:05"
)

// Header mirrors the fixed 10-byte layout at the start of every gzip member.
type Header struct {
	ID1     uint8
	ID2     uint8
	Method  uint8
	Flags   uint8
	ModTime uint32
	// ExtraFlags (XFL) is read to keep OS at offset 9 but is never reported.
	ExtraFlags uint8
	OS         OSCode
}

// Report is the decoded view of a gzip header. When Valid is false none of
// the other fields are populated.
type Report struct {
	Valid   bool
	Method  uint8
	Flags   uint8
	ModTime uint32
	OS      OSCode
}

// ParseHeader splits raw into the header fields. The XFL byte is kept so
// OS stays at offset 9.
func ParseHeader(raw [HeaderSize]byte) Header {
	return Header{
		ID1:        raw[0],
		ID2:        raw[1],
		Method:     raw[2],
		Flags:      raw[3],
		ModTime:    binary.LittleEndian.Uint32(raw[4:8]),
		ExtraFlags: raw[8],
		OS:         OSCode(raw[9]),
	}
}

func (h *Header) HasMagic() bool {
	return h.ID1 == ID1 && h.ID2 == ID2
}

// Decode interprets exactly HeaderSize raw bytes. Every byte value is legal
// input, so decoding never fails; a bad magic yields a report with Valid unset.
func Decode(raw [HeaderSize]byte) *Report {
	header := ParseHeader(raw)
	if !header.HasMagic() {
		return &Report{}
	}
	return &Report{
		Valid:   true,
		Method:  header.Method,
		Flags:   header.Flags,
		ModTime: header.ModTime,
		OS:      header.OS,
	}
}

// FlagBits renders the FLG byte as eight binary digits, most significant first.
func (r *Report) FlagBits() string {
	return fmt.Sprintf("%08b", r.Flags)
}

// Time returns MTIME as a UTC instant. A zero MTIME is not special-cased and
// maps to the Unix epoch.
func (r *Report) Time() time.Time {
	return time.Unix(int64(r.ModTime), 0).UTC()
}

func (r *Report) TimeString() string {
	return r.Time().Format(FRIENDLY_TIME_F)
}
