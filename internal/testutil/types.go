// Package testutil defines support code for unit tests.
package testutil

import (
	"testing"

	"github.com/jayvdb/joxide"
)

// MustTokenize tokenizes input and returns the resulting tokens, or fails t.
func MustTokenize(t testing.TB, input string) []joxide.Token {
	t.Helper()
	toks, err := joxide.TokenizeString(input)
	if err != nil {
		t.Fatalf("Tokenize %#q: %v", input, err)
	}
	return toks
}

// Kinds returns the kinds of toks, in order.
func Kinds(toks []joxide.Token) []joxide.Kind {
	var out []joxide.Kind
	for _, tok := range toks {
		out = append(out, tok.Kind)
	}
	return out
}
