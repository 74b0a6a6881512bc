// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package joxide implements a strict JSON scanner that produces a stream of
// located tokens, for use with the parser in package ast.
//
// # Scanning
//
// The Scanner type implements a lexical scanner for JSON.  Construct a scanner
// from an io.Reader and call its Next method to iterate over the stream. Next
// advances to the next input token and reports whether one is available:
//
//	s := joxide.NewScanner(input)
//	for s.Next() {
//	   log.Printf("Next token: %v at %v", s.Kind(), s.Location())
//	}
//
// When Next returns false, Err reports nil if the input was fully consumed.
// Any other error indicates an I/O or lexical error in the input.
//
//	if err := s.Err(); err != nil {
//	   log.Fatalf("Scanning failed: %v", err)
//	}
//
// Bare words other than true, false, and null are scanned as Ident tokens
// rather than rejected, so that the parser can report them in context.
//
// # Tokens
//
// Tokenize reads an entire input and returns a slice of decoded tokens. Each
// Token carries its payload (a Boolean, a number, or the unescaped text of a
// string) and its Location in the input. A lexical error is reported with
// concrete type *joxide.SyntaxError, along with the tokens read before it:
//
//	toks, err := joxide.Tokenize(input)
//	if err != nil {
//	   log.Fatalf("Tokenize failed: %v", err)
//	}
//	v, err := ast.Parse(toks)
//
// # Parsing
//
// Package ast converts a token slice into a tree of values. Parse errors have
// concrete type *ast.ParseError, which reports the kind of failure and points
// to the offending token in the slice. Its Location gives the line and column
// of the problem.
package joxide
