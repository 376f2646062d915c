package grammar

import (
	"errors"
	"fmt"
)

var (
	ErrStartNotVariable  = errors.New("start symbol is not a variable")
	ErrUndeclaredHead    = errors.New("head is not a declared variable")
	ErrNotCNF            = errors.New("rule is not in Chomsky normal form")
	ErrUndeclaredSymbol  = errors.New("symbol is not declared")
	ErrAmbiguousUniverse = errors.New("symbol is both variable and terminal")
)

// RuleError describes a single broken rule. Use errors.Is to get the reason.
type RuleError struct {
	Head Symbol
	Body Replacement
	Err  error
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("%v -> %v: %v", e.Head, e.Body, e.Err)
}

func (e *RuleError) Unwrap() error { return e.Err }

// SymbolError describes a symbol declared in a wrong way.
type SymbolError struct {
	Symbol Symbol
	Err    error
}

func (e *SymbolError) Error() string { return fmt.Sprintf("%q: %v", string(e.Symbol), e.Err) }
func (e *SymbolError) Unwrap() error { return e.Err }
