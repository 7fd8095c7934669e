// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package escape handles quoting of strings for diagnostic output.
package escape

import (
	"unicode/utf8"

	"go4.org/mem"
)

var controlEsc = [...]byte{
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	' ':  ' ', // sentinel
}

const hexDigit = "0123456789abcdef"

// Quote returns a copy of src enclosed in double quotation marks, with
// control characters, quotes, and backslashes escaped as in JSON.
func Quote(src mem.RO) []byte {
	return AppendQuote(make([]byte, 0, src.Len()+2), src)
}

// AppendQuote appends the quoted form of src to buf and returns the extended
// buffer. See Quote.
func AppendQuote(buf []byte, src mem.RO) []byte {
	buf = append(buf, '"')
	for src.Len() > 0 {
		r, n := mem.DecodeRune(src)
		src = src.SliceFrom(n)

		switch {
		case r == utf8.RuneError && n == 1:
			// Invalid UTF-8 is rendered as the replacement rune.
			buf = append(buf, `\ufffd`...)
		case r < ' ':
			if b := controlEsc[r]; b != 0 {
				buf = append(buf, '\\', b)
			} else {
				buf = append(buf, '\\', 'u', '0', '0', hexDigit[r>>4], hexDigit[r&15])
			}
		case r == '\\' || r == '"':
			buf = append(buf, '\\', byte(r))
		case r == '\u2028': // line separator
			buf = append(buf, `\u2028`...)
		case r == '\u2029': // paragraph separator
			buf = append(buf, `\u2029`...)
		default:
			buf = utf8.AppendRune(buf, r)
		}
	}
	return append(buf, '"')
}
