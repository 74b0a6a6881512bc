// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package joxide

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode"

	"go4.org/mem"
)

// Kind is the type of a lexical token in the JSON grammar.
type Kind byte

// Constants defining the valid Kind values.
const (
	Invalid     Kind = iota // invalid token, or no kind
	Null                    // constant: null
	Bool                    // constant: true or false
	Number                  // number, with optional fraction and exponent
	String                  // quoted string
	Colon                   // colon ":"
	Comma                   // comma ","
	OpenCurly               // left brace "{"
	CloseCurly              // right brace "}"
	OpenSquare              // left square bracket "["
	CloseSquare             // right square bracket "]"
	Ident                   // bare word other than a constant
)

var kindStr = [...]string{
	Invalid:     "invalid token",
	Null:        "null",
	Bool:        "bool",
	Number:      "number",
	String:      "string",
	Colon:       `":"`,
	Comma:       `","`,
	OpenCurly:   `"{"`,
	CloseCurly:  `"}"`,
	OpenSquare:  `"["`,
	CloseSquare: `"]"`,
	Ident:       "identifier",
}

func (k Kind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return kindStr[Invalid]
	}
	return kindStr[v]
}

// A Scanner reads lexical tokens from an input stream.  Each call to Next
// advances the scanner to the next token, or reports false at the end of the
// input or on error.
type Scanner struct {
	r    *bufio.Reader
	buf  bytes.Buffer // current token
	kind Kind
	err  error

	pos, end int // start and end offsets of current token
	last     int // size in bytes of last-read input rune

	// Apparent line and column offsets (0-based)
	pline, pcol int
	eline, ecol int
}

// NewScanner constructs a new lexical scanner that consumes input from r.
func NewScanner(r io.Reader) *Scanner {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Scanner{r: br}
}

// Next advances s to the next token of the input and reports whether a token
// is available. At the end of input Next returns false and Err returns nil;
// if scanning fails, Next returns false and Err reports the failure.
func (s *Scanner) Next() bool {
	if s.err != nil {
		return false
	}
	s.buf.Reset()
	s.kind = Invalid

	for {
		s.pos, s.pline, s.pcol = s.end, s.eline, s.ecol
		ch, err := s.rune()
		if err == io.EOF {
			return false
		} else if err != nil {
			s.fail(err)
			return false
		}

		// Discard whitespace.
		if isSpace(ch) {
			if ch == '\n' {
				s.eline++
				s.ecol = 0
			}
			continue
		}

		var serr error
		if k, ok := selfDelim(ch); ok {
			s.buf.WriteRune(ch)
			s.kind = k
		} else if isNumStart(ch) {
			serr = s.scanNumber(ch)
		} else if ch == '"' {
			serr = s.scanString(ch)
		} else if isWordStart(ch) {
			serr = s.scanWord(ch)
		} else {
			serr = s.failf("unexpected %q", ch)
		}
		return serr == nil
	}
}

// Kind returns the type of the current token.
func (s *Scanner) Kind() Kind { return s.kind }

// Err returns the error that stopped the scanner, or nil if it stopped at the
// end of the input.
func (s *Scanner) Err() error { return s.err }

// Text returns the undecoded text of the current token.  The return value is
// only valid until the next call of Next. The caller must copy the contents of
// the returned slice if it is needed beyond that.
func (s *Scanner) Text() []byte { return s.buf.Bytes() }

// Span returns the location span of the current token.
func (s *Scanner) Span() Span { return Span{Pos: s.pos, End: s.end} }

// Location returns the complete location of the current token.
func (s *Scanner) Location() Location {
	return Location{
		Span:  s.Span(),
		First: LineCol{Line: s.pline + 1, Column: s.pcol},
		Last:  LineCol{Line: s.eline + 1, Column: s.ecol},
	}
}

func (s *Scanner) scanString(open rune) error {
	s.buf.WriteRune(open)
	var esc bool
	for {
		ch, err := s.rune()
		if err == io.EOF {
			return s.failf("unterminated string")
		} else if err != nil {
			return s.fail(err)
		} else if ch == open && !esc {
			s.buf.WriteRune(ch)
			s.kind = String
			return nil
		}
		if esc {
			// We are awaiting the completion of a \-escape.
			switch ch {
			case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
				s.buf.WriteByte(byte(ch))
			case 'u':
				s.buf.WriteByte(byte(ch))
				if err := s.readHex4(); err != nil {
					return s.failf("invalid Unicode escape: %w", err)
				}
			default:
				return s.failf("invalid %q after escape", ch)
			}
			esc = false
		} else if ch < ' ' {
			return s.failf("unescaped control %q", ch)
		} else if ch > unicode.MaxRune {
			return s.failf("invalid Unicode rune %q", ch)
		} else {
			s.buf.WriteRune(ch)
			esc = ch == '\\'
		}
	}
}

func (s *Scanner) scanNumber(start rune) error {
	s.buf.WriteRune(start)

	if start == '-' {
		// If there is a leading sign, we need at least one digit.
		// Otherwise, we already have one in start.
		ch, err := s.require(isDigit, "digit")
		if err != nil {
			return err
		}
		s.buf.WriteRune(ch)
	}

	// Consume the remainder of the integer part.
	_, ch, err := s.readWhile(isDigit)

	// Check for extra leading zeroes, which are disallowed by the JSON grammar.
	// That is: 0.12 is OK, 01.2 is not.
	if hasExtraLeadingZeroes(s.buf.Bytes()) {
		return s.failf("extra leading zeroes")
	}
	s.kind = Number
	if err == io.EOF {
		return nil
	} else if err != nil {
		return s.fail(err)
	}

	// If a decimal point follows, consume a fractional part.
	if ch == '.' {
		s.buf.WriteRune(ch)
		var nr int
		nr, ch, err = s.readWhile(isDigit)
		if err != nil && err != io.EOF {
			return s.fail(err)
		} else if nr == 0 {
			return s.failf("no digits after decimal point")
		} else if err == io.EOF {
			return nil
		}
	}

	// If an exponent follows, consume it.
	if ch != 'E' && ch != 'e' {
		s.unrune()
		return nil
	}

	s.buf.WriteRune(ch)
	ch, err = s.require(isExpStart, "sign or digit")
	if err != nil {
		return err
	}
	s.buf.WriteRune(ch)
	nr, _, err := s.readWhile(isDigit)
	if nr == 0 && (ch == '-' || ch == '+') {
		// It's OK to have no digits if the previous rune was not a sign,
		// otherwise we have to have at least one.
		return s.failf("missing exponent digits")
	} else if err == io.EOF {
		return nil
	} else if err != nil {
		return s.fail(err)
	}
	s.unrune()
	return nil
}

// scanWord consumes a bare word, and classifies it as one of the constants
// true, false, null or else as an identifier.
func (s *Scanner) scanWord(first rune) error {
	s.buf.WriteRune(first)
	_, _, err := s.readWhile(isWordRune)
	if err == nil {
		s.unrune()
	} else if err != io.EOF {
		return s.fail(err)
	}

	switch word := mem.B(s.buf.Bytes()); {
	case word.Equal(mem.S("null")):
		s.kind = Null
	case word.Equal(mem.S("true")), word.Equal(mem.S("false")):
		s.kind = Bool
	default:
		s.kind = Ident
	}
	return nil
}

func (s *Scanner) rune() (rune, error) {
	ch, nb, err := s.r.ReadRune()
	s.last = nb
	s.end += nb
	s.ecol += nb
	return ch, err
}

func (s *Scanner) unrune() {
	s.end -= s.last
	s.ecol -= s.last
	s.last = 0
	s.r.UnreadRune()
}

// require reads a single rune matching f from the input, or returns an error
// mentioning the desired label.
func (s *Scanner) require(f func(rune) bool, label string) (rune, error) {
	ch, err := s.rune()
	if err != nil {
		return 0, s.failf("want %s, got error: %w", label, err)
	} else if !f(ch) {
		s.unrune()
		return 0, s.failf("got %q, want %s", ch, label)
	}
	return ch, nil
}

// readWhile consumes runes matching f from the input until EOF or until a rune
// not matching f is found. The first non-matching rune (if any) is returned.
// It is the caller's responsibility to unread this rune, if desired.
// The int reports the number of runes consumed.
func (s *Scanner) readWhile(f func(rune) bool) (int, rune, error) {
	var nr int
	for {
		ch, err := s.rune()
		if err != nil {
			return nr, 0, err
		} else if !f(ch) {
			return nr, ch, nil
		}
		s.buf.WriteRune(ch)
		nr++
	}
}

// readHex4 reads exactly 4 hexadecimal digits from the input.
func (s *Scanner) readHex4() error {
	for range 4 {
		ch, err := s.rune()
		if err != nil {
			return err
		} else if !isHexDigit(ch) {
			return fmt.Errorf("not a hex digit: %q", ch)
		}
		s.buf.WriteRune(ch)
	}
	return nil
}

type posError struct {
	at  LineCol
	pos int
	err error
}

func (p posError) Error() string {
	return fmt.Sprintf("%s (offset %d)", p.err.Error(), p.pos)
}

func (p posError) Unwrap() error { return p.err }

func (s *Scanner) fail(err error) error {
	s.err = posError{
		at:  LineCol{Line: s.eline + 1, Column: s.ecol},
		pos: s.end,
		err: err,
	}
	return s.err
}

func (s *Scanner) failf(msg string, args ...any) error {
	return s.fail(fmt.Errorf(msg, args...))
}

func isSpace(ch rune) bool {
	return ch == ' ' || ch == '\r' || ch == '\n' || ch == '\t'
}

func isNumStart(ch rune) bool { return ch == '-' || isDigit(ch) }
func isExpStart(ch rune) bool { return ch == '-' || ch == '+' || isDigit(ch) }
func isDigit(ch rune) bool    { return '0' <= ch && ch <= '9' }
func isLetter(ch rune) bool   { return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') }
func isWordStart(ch rune) bool {
	return isLetter(ch) || ch == '_' || ch == '$'
}
func isWordRune(ch rune) bool { return isWordStart(ch) || isDigit(ch) }

func isHexDigit(ch rune) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

// hasExtraLeadingZeroes reports whether the representation of an integer in
// buf has redundant leading zeroes, which JSON disallows.
//
// OK: 0, 0.1, -1.0, -0.1 are all OK.
// Bad: -01, 01.2, -01.0, 00.1.
func hasExtraLeadingZeroes(buf []byte) bool {
	if buf[0] == '-' {
		buf = buf[1:] // skip leading sign
	}
	if buf[0] == '0' {
		// A leading zero is OK if it's the only digit.
		return len(buf) > 1
	}
	return false
}

var self = [...]Kind{OpenCurly, CloseCurly, OpenSquare, CloseSquare, Comma, Colon}

func selfDelim(ch rune) (Kind, bool) {
	i := strings.IndexRune("{}[],:", ch)
	if i >= 0 {
		return self[i], true
	}
	return Invalid, false
}
