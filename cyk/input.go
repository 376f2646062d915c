package cyk

import (
	"strings"

	"github.com/quenbyako/cyk/grammar"
)

// Chars splits s into single-rune terminals.
func Chars(s string) []grammar.Symbol {
	res := make([]grammar.Symbol, 0, len(s))
	for _, r := range s {
		res = append(res, grammar.Symbol(r))
	}

	return res
}

// Fields splits s into terminals around runs of white space, for grammars
// with multi-character terminals.
func Fields(s string) []grammar.Symbol {
	fields := strings.Fields(s)
	res := make([]grammar.Symbol, len(fields))
	for i, f := range fields {
		res[i] = grammar.Symbol(f)
	}

	return res
}
