// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"io"

	"github.com/jayvdb/joxide"
)

// DefaultMaxDepth is the nesting limit for objects and arrays used when
// Options.MaxDepth is zero.
const DefaultMaxDepth = 1000

// Options control the behaviour of the parser. A nil *Options is ready for
// use and provides default values.
type Options struct {
	// MaxDepth bounds how deeply objects and arrays may be nested. If zero,
	// DefaultMaxDepth is used. If negative, nesting is not bounded.
	MaxDepth int

	// RequireEOF, if true, requires that the input contain exactly one value.
	// Any tokens remaining after the first complete value are reported as an
	// ExtraInput error. By default, trailing tokens are not examined.
	RequireEOF bool
}

func (o *Options) maxDepth() int {
	switch {
	case o == nil || o.MaxDepth == 0:
		return DefaultMaxDepth
	case o.MaxDepth < 0:
		return -1
	default:
		return o.MaxDepth
	}
}

func (o *Options) requireEOF() bool { return o != nil && o.RequireEOF }

// Parse parses and returns the JSON value at the front of tokens, using
// default options. Tokens after the first complete value are ignored.
// In case of error, the concrete type of the error is [*ParseError].
func Parse(tokens []joxide.Token) (Value, error) { return (*Options)(nil).Parse(tokens) }

// ParseReader reads and tokenizes all of r, then parses the value at the
// front of the input as [Parse] does. Lexical errors are reported as
// [*joxide.SyntaxError].
func ParseReader(r io.Reader) (Value, error) { return (*Options)(nil).ParseReader(r) }

// ParseSingle reads and tokenizes all of r, and parses it as a single value.
// If any tokens remain after the value, it reports an ExtraInput error.
func ParseSingle(r io.Reader) (Value, error) {
	return (&Options{RequireEOF: true}).ParseReader(r)
}

// Parse parses and returns the JSON value at the front of tokens. In case of
// error, the concrete type of the error is [*ParseError], and its Token (if
// any) points into tokens.
func (o *Options) Parse(tokens []joxide.Token) (Value, error) {
	p := &parser{toks: tokens, maxDepth: o.maxDepth()}
	v, next, err := p.value(0)
	if err != nil {
		return nil, err
	}
	if o.requireEOF() && next < len(tokens) {
		return nil, newError(ExtraInput, &tokens[next], joxide.Invalid)
	}
	return v, nil
}

// ParseReader reads and tokenizes all of r, then parses the result as
// [Options.Parse] does.
func (o *Options) ParseReader(r io.Reader) (Value, error) {
	toks, err := joxide.Tokenize(r)
	if err != nil {
		return nil, err
	}
	return o.Parse(toks)
}

// A parser holds the state of a single call to Parse. Each parsing method
// takes the offset of the token where it begins, and reports the offset of
// the first token it did not consume.
type parser struct {
	toks     []joxide.Token
	maxDepth int // negative for no limit
	depth    int
}

// at returns the token at offset i, or nil if i is past the end of the input.
func (p *parser) at(i int) *joxide.Token {
	if i < len(p.toks) {
		return &p.toks[i]
	}
	return nil
}

// expect returns the token at offset i if it has kind want. If the input has
// ended, it reports UnexpectedEnd; if the token has another kind it reports
// an error of the given kind.
func (p *parser) expect(want joxide.Kind, mismatch ErrorKind, i int) (*joxide.Token, *ParseError) {
	tok := p.at(i)
	if tok == nil {
		return nil, newError(UnexpectedEnd, nil, joxide.Invalid)
	} else if tok.Kind != want {
		return nil, newError(mismatch, tok, want)
	}
	return tok, nil
}

// value parses a single value of any type beginning at offset i.
func (p *parser) value(i int) (Value, int, *ParseError) {
	tok := p.at(i)
	if tok == nil {
		return nil, i, newError(UnexpectedEnd, nil, joxide.Invalid)
	}
	switch tok.Kind {
	case joxide.Null:
		return Null{}, i + 1, nil
	case joxide.Bool:
		return Bool(tok.Bool), i + 1, nil
	case joxide.Number:
		return Number(tok.Number), i + 1, nil
	case joxide.String:
		return String(tok.Text), i + 1, nil
	case joxide.OpenCurly:
		return p.object(i)
	case joxide.OpenSquare:
		return p.array(i)
	default:
		return nil, i, newError(UnexpectedToken, tok, joxide.Invalid)
	}
}

// A member is a single key-value pair of an object.
type member struct {
	key   string
	value Value
}

// keyValue parses a "key": value pair beginning at offset i.
func (p *parser) keyValue(i int) (member, int, *ParseError) {
	key, err := p.expectKey(i)
	if err != nil {
		return member{}, i, err
	}
	if _, err := p.expect(joxide.Colon, MissingColon, i+1); err != nil {
		return member{}, i, err
	}
	v, next, err := p.value(i + 2)
	if err != nil {
		return member{}, i, err
	}
	return member{key: key.Text, value: v}, next, nil
}

// expectKey returns the token at offset i if it is a string. A close brace
// is reported as UnexpectedToken, since it ends the object rather than
// being a malformed key.
func (p *parser) expectKey(i int) (*joxide.Token, *ParseError) {
	tok := p.at(i)
	switch {
	case tok == nil:
		return nil, newError(UnexpectedEnd, nil, joxide.Invalid)
	case tok.Kind == joxide.String:
		return tok, nil
	case tok.Kind == joxide.CloseCurly:
		return nil, newError(UnexpectedToken, tok, joxide.String)
	default:
		return nil, newError(KeyNotInQuotes, tok, joxide.Invalid)
	}
}

// object parses an object whose open brace is at offset start.
func (p *parser) object(start int) (Value, int, *ParseError) {
	err := p.enter(start)
	defer p.leave()
	if err != nil {
		return nil, start, err
	}

	obj := make(Object)
	end, err := forEachComma(p, start+1, p.keyValue, func(m member, key *joxide.Token) *ParseError {
		if _, ok := obj[m.key]; ok {
			return newError(DuplicateKey, key, joxide.Invalid)
		}
		obj[m.key] = m.value
		return nil
	})
	if err != nil {
		return nil, start, err
	}
	if _, err := p.expect(joxide.CloseCurly, UnexpectedToken, end); err != nil {
		return nil, start, err
	}
	return obj, end + 1, nil
}

// array parses an array whose open bracket is at offset start.
func (p *parser) array(start int) (Value, int, *ParseError) {
	err := p.enter(start)
	defer p.leave()
	if err != nil {
		return nil, start, err
	}

	var arr Array
	end, err := forEachComma(p, start+1, p.value, func(v Value, _ *joxide.Token) *ParseError {
		arr = append(arr, v)
		return nil
	})
	if err != nil {
		return nil, start, err
	}
	if _, err := p.expect(joxide.CloseSquare, UnexpectedToken, end); err != nil {
		return nil, start, err
	}
	if arr == nil {
		arr = Array{}
	}
	return arr, end + 1, nil
}

// enter records entry to a container whose opening token is at offset i,
// and reports TooDeep if this exceeds the nesting limit. Each call to enter
// must be paired with a call to leave.
func (p *parser) enter(i int) *ParseError {
	p.depth++
	if p.maxDepth >= 0 && p.depth > p.maxDepth {
		return newError(TooDeep, p.at(i), joxide.Invalid)
	}
	return nil
}

func (p *parser) leave() { p.depth-- }

// forEachComma parses a comma-separated list of elements beginning at offset
// start. It calls elem to parse each element, and add to accumulate the
// element into the caller's container; add is also given the first token of
// the element, to locate any error it reports. On success, forEachComma
// returns the offset of the first token after the list, which the caller
// must check for the closing bracket.
//
// The list ends when no comma follows an element, or when elem reports
// UnexpectedToken for the token at which the element would begin. Any other
// error from elem or add ends the parse. A comma that is not followed by an
// element is reported as TrailingComma.
func forEachComma[E any](p *parser, start int, elem func(int) (E, int, *ParseError), add func(E, *joxide.Token) *ParseError) (int, *ParseError) {
	i := start
	var lastComma *joxide.Token // set when a comma has no element after it yet
	for {
		e, next, err := elem(i)
		if err != nil {
			if err.Kind == UnexpectedToken && err.Token == p.at(i) {
				break // no element begins here
			}
			return i, err
		}
		if err := add(e, p.at(i)); err != nil {
			return i, err
		}
		lastComma = nil
		i = next

		comma, err := p.expect(joxide.Comma, UnexpectedToken, i)
		if err != nil {
			break
		}
		lastComma = comma
		i++
	}
	if lastComma != nil {
		return i, newError(TrailingComma, lastComma, joxide.Invalid)
	}
	return i, nil
}
