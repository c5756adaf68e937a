package network_wifi

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

var (
	utf8BOM    = []byte{0xEF, 0xBB, 0xBF}
	utf16LEBOM = []byte{0xFF, 0xFE}
	utf16BEBOM = []byte{0xFE, 0xFF}
)

// DecodeOutput turns raw tool output into text. UTF-8 is tried first, then
// UTF-16 (PowerShell redirections produce it). Anything else is read as code
// page 850, the OEM page netsh writes to a pipe on western Windows installs,
// so decoding never fails.
func DecodeOutput(raw []byte) string {
	endianness, isUTF16 := detectUTF16(raw)
	if !isUTF16 && utf8.Valid(raw) {
		return string(bytes.TrimPrefix(raw, utf8BOM))
	}

	if isUTF16 {
		decoded, err := unicode.UTF16(endianness, unicode.UseBOM).NewDecoder().Bytes(raw)
		if err == nil && utf8.Valid(decoded) {
			return string(decoded)
		}
	}

	decoded, err := charmap.CodePage850.NewDecoder().Bytes(raw)
	if err != nil {
		return string(raw)
	}
	return string(decoded)
}

// detectUTF16 reports whether raw starts with a UTF-16 byte order mark, or is
// even-length with NUL bytes in a third or more of its odd (little endian) or
// even (big endian) positions, which ASCII-range UTF-16 always has.
func detectUTF16(raw []byte) (unicode.Endianness, bool) {
	if bytes.HasPrefix(raw, utf16LEBOM) {
		return unicode.LittleEndian, true
	}
	if bytes.HasPrefix(raw, utf16BEBOM) {
		return unicode.BigEndian, true
	}
	if len(raw) < 2 || len(raw)%2 != 0 {
		return unicode.LittleEndian, false
	}

	var evenNUL, oddNUL int
	for i, b := range raw {
		if b != 0 {
			continue
		}
		if i%2 == 0 {
			evenNUL++
		} else {
			oddNUL++
		}
	}
	half := len(raw) / 2
	switch {
	case oddNUL*3 >= half && oddNUL >= evenNUL:
		return unicode.LittleEndian, true
	case evenNUL*3 >= half:
		return unicode.BigEndian, true
	}
	return unicode.LittleEndian, false
}
