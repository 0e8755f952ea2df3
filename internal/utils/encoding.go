package utils

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DecodeOutput converts captured process output to UTF-8 text. Output that
// starts with a UTF-16 or UTF-8 byte order mark is decoded accordingly and the
// mark is dropped; anything else is passed through unchanged.
//
// .NET tools on Windows commonly write UTF-16 when redirected, which would
// otherwise show up on the console as interleaved NUL bytes.
func DecodeOutput(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	decoder := unicode.BOMOverride(encoding.Nop.NewDecoder())
	out, _, err := transform.Bytes(decoder, b)
	if err != nil {
		return string(b)
	}
	return string(out)
}
