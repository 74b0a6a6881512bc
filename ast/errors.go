// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"fmt"

	"github.com/jayvdb/joxide"
)

// ErrorKind classifies the ways a token stream can fail to parse.
// An ErrorKind is itself an error, so that callers can test the kind of a
// parse failure with errors.Is:
//
//	if errors.Is(err, ast.DuplicateKey) { ... }
type ErrorKind byte

const (
	UnexpectedEnd   ErrorKind = iota + 1 // the input ended where a token was required
	UnexpectedToken                      // a token does not fit the grammar at its position
	DuplicateKey                         // an object key repeats an earlier key of the same object
	TrailingComma                        // a comma is not followed by another element
	KeyNotInQuotes                       // an object key is not a quoted string
	MissingColon                         // an object key is not followed by a colon
	TooDeep                              // containers are nested beyond the depth limit
	ExtraInput                           // tokens remain after a complete value
)

var errorStr = [...]string{
	UnexpectedEnd:   "unexpected end of input",
	UnexpectedToken: "unexpected token",
	DuplicateKey:    "duplicate object key",
	TrailingComma:   "trailing comma",
	KeyNotInQuotes:  "object key not in quotes",
	MissingColon:    "missing colon",
	TooDeep:         "nesting too deep",
	ExtraInput:      "extra input after value",
}

// Error satisfies the error interface.
func (k ErrorKind) Error() string {
	if k > 0 && int(k) < len(errorStr) {
		return errorStr[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", k)
}

// ParseError is the concrete type of errors reported by the parser. It
// records the kind of failure and the evidence for it.
type ParseError struct {
	Kind ErrorKind

	// Token, if not nil, points to the offending token in the input.
	// It is nil for UnexpectedEnd.
	Token *joxide.Token

	// Expected, if not joxide.Invalid, is the kind of token that was
	// required at the position of Token.
	Expected joxide.Kind
}

// Error satisfies the error interface.
func (e *ParseError) Error() string {
	if e.Token == nil {
		return e.Kind.Error()
	}
	var msg string
	switch {
	case e.Expected != joxide.Invalid:
		msg = fmt.Sprintf("%v: expected %v, got %v", e.Kind, e.Expected, e.Token)
	case e.Kind == TrailingComma:
		msg = e.Kind.Error()
	default:
		msg = fmt.Sprintf("%v: %v", e.Kind, e.Token)
	}
	return fmt.Sprintf("at %s: %s", e.Token.Location.First, msg)
}

// Unwrap returns the kind of e, so that errors.Is can match it.
func (e *ParseError) Unwrap() error { return e.Kind }

func newError(kind ErrorKind, tok *joxide.Token, want joxide.Kind) *ParseError {
	return &ParseError{Kind: kind, Token: tok, Expected: want}
}
