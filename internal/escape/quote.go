// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

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

// Quote escapes src for inclusion between the quotation marks of a JSON
// string. Quotation marks are not added.
func Quote(src mem.RO) []byte {
	buf := make([]byte, 0, src.Len()+2)
	for src.Len() != 0 {
		r, n := mem.DecodeRune(src)
		src = src.SliceFrom(n)

		switch {
		case r == utf8.RuneError:
			buf = append(buf, `\ufffd`...)
		case r < ' ':
			if b := controlEsc[r]; b != 0 {
				buf = append(buf, '\\', b)
			} else {
				buf = append(buf, '\\', 'u', '0', '0', hexDigit[r>>4], hexDigit[r&15])
			}
		case r == '\\' || r == '"':
			buf = append(buf, '\\', byte(r))
		case r == '\u2028' || r == '\u2029':
			// Valid in JSON, but not in JavaScript source.
			buf = append(buf, '\\', 'u', '2', '0', '2', hexDigit[r&15])
		default:
			buf = utf8.AppendRune(buf, r)
		}
	}
	return buf
}
