// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package joxide

import (
	"fmt"
	"strconv"
)

// A Token is a single decoded lexical token together with its location in
// the source text. Tokens are not modified once produced.
type Token struct {
	Kind Kind

	Bool   bool    // for Bool tokens
	Number float64 // for Number tokens
	Text   string  // for String tokens, unquoted; for Ident tokens, the word

	Location Location
}

// String renders t as it would appear in a diagnostic.
func (t Token) String() string {
	switch t.Kind {
	case Null:
		return "null"
	case Bool:
		return strconv.FormatBool(t.Bool)
	case Number:
		return strconv.FormatFloat(t.Number, 'g', -1, 64)
	case String:
		return Quote(t.Text)
	case Ident:
		return t.Text
	case Invalid:
		return Invalid.String()
	default:
		return fmt.Sprintf("%c", kindStr[t.Kind][1])
	}
}
