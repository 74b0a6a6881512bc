// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package escape handles quoting and unquoting of JSON strings.
package escape

import (
	"errors"
	"unicode/utf16"
	"unicode/utf8"

	"go4.org/mem"
)

var simpleEsc = [...]byte{
	'"':  '"',
	'\\': '\\',
	'/':  '/',
	'b':  '\b',
	'f':  '\f',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
}

// Unquote decodes the contents of a JSON string. The input must have the
// enclosing double quotation marks already removed.
//
// Escape sequences are replaced with their unescaped equivalents. A \u escape
// for a high surrogate followed by a \u escape for a low surrogate is decoded
// as a single rune. Invalid escapes and unpaired surrogates are replaced by
// the Unicode replacement rune. Unquote reports an error for an incomplete
// escape sequence.
func Unquote(src mem.RO) ([]byte, error) {
	i := mem.IndexByte(src, '\\')
	if i < 0 {
		return mem.Append(nil, src), nil
	}

	dec := make([]byte, 0, src.Len())
	for i >= 0 {
		dec = mem.Append(dec, src.SliceTo(i))
		src = src.SliceFrom(i + 1)
		if src.Len() == 0 {
			return nil, errors.New("incomplete escape sequence")
		}

		c := src.At(0)
		src = src.SliceFrom(1)
		if c == 'u' {
			r, rest, err := decodeU(src)
			if err != nil {
				return nil, err
			}
			dec = utf8.AppendRune(dec, r)
			src = rest
		} else if int(c) < len(simpleEsc) && simpleEsc[c] != 0 {
			dec = append(dec, simpleEsc[c])
		} else {
			dec = utf8.AppendRune(dec, utf8.RuneError)
		}
		i = mem.IndexByte(src, '\\')
	}
	return mem.Append(dec, src), nil
}

// decodeU decodes the hex digits of a \u escape at the front of src, whose
// "\u" prefix has already been consumed. If the escape denotes a high
// surrogate and another \u escape for a low surrogate follows, both are
// consumed. It returns the decoded rune and the remaining input.
func decodeU(src mem.RO) (rune, mem.RO, error) {
	if src.Len() < 4 {
		return 0, src, errors.New("incomplete Unicode escape")
	}
	v, ok := parseHex(src.SliceTo(4))
	src = src.SliceFrom(4)
	if !ok {
		return utf8.RuneError, src, nil
	}
	r := rune(v)
	if !utf16.IsSurrogate(r) {
		return r, src, nil
	}

	// Look for a trailing low surrogate. If none is present, this surrogate
	// is unpaired and cannot be represented.
	if src.Len() >= 6 && src.At(0) == '\\' && src.At(1) == 'u' {
		if lo, ok := parseHex(src.Slice(2, 6)); ok {
			if p := utf16.DecodeRune(r, rune(lo)); p != utf8.RuneError {
				return p, src.SliceFrom(6), nil
			}
		}
	}
	return utf8.RuneError, src, nil
}

func parseHex(data mem.RO) (int32, bool) {
	var v int32
	for i := 0; i < data.Len(); i++ {
		b := data.At(i)
		v <<= 4
		switch {
		case '0' <= b && b <= '9':
			v += int32(b - '0')
		case 'a' <= b && b <= 'f':
			v += int32(b - 'a' + 10)
		case 'A' <= b && b <= 'F':
			v += int32(b - 'A' + 10)
		default:
			return 0, false
		}
	}
	return v, true
}
