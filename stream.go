// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package joxide

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Tokenize reads all of r and returns the tokens it contains, in order. In
// case of a lexical error, the tokens scanned before the error are returned
// along with an error of concrete type [*SyntaxError].
func Tokenize(r io.Reader) ([]Token, error) {
	s := NewScanner(r)
	var out []Token
	for s.Next() {
		tok, err := decode(s)
		if err != nil {
			return out, &SyntaxError{
				Location: s.Location().First,
				Message:  err.Error(),
				err:      err,
			}
		}
		out = append(out, tok)
	}
	if err := s.Err(); err != nil {
		return out, syntaxError(err)
	}
	return out, nil
}

// TokenizeString is a convenience wrapper for [Tokenize] on a string.
func TokenizeString(s string) ([]Token, error) { return Tokenize(strings.NewReader(s)) }

// decode constructs a token from the current state of s, decoding the
// payload of strings and numbers.
func decode(s *Scanner) (Token, error) {
	tok := Token{Kind: s.Kind(), Location: s.Location()}
	switch tok.Kind {
	case Bool:
		tok.Bool = string(s.Text()) == "true"
	case Number:
		v, err := strconv.ParseFloat(string(s.Text()), 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return tok, fmt.Errorf("invalid number: %w", err)
		}
		tok.Number = v
	case String:
		dec, err := Unquote(string(s.Text()))
		if err != nil {
			return tok, fmt.Errorf("invalid string: %w", err)
		}
		tok.Text = string(dec)
	case Ident:
		tok.Text = string(s.Text())
	}
	return tok, nil
}

func syntaxError(err error) *SyntaxError {
	var perr posError
	if errors.As(err, &perr) {
		return &SyntaxError{Location: perr.at, Message: perr.err.Error(), err: perr.err}
	}
	return &SyntaxError{Message: err.Error(), err: err}
}

// SyntaxError is the concrete type of lexical errors reported by [Tokenize].
type SyntaxError struct {
	Location LineCol
	Message  string

	err error
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	return fmt.Sprintf("at %s: %s", s.Location, s.Message)
}

// Unwrap supports error wrapping.
func (s *SyntaxError) Unwrap() error { return s.err }
