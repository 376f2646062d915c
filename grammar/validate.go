package grammar

import (
	"errors"
)

// Validate checks that grammar is a well formed CNF grammar: start symbol is
// a variable, no symbol is both variable and terminal, every head is a
// declared variable and every body is either a single declared terminal or
// two declared variables.
//
// Parsers never call Validate: rules which break these constraints are just
// never matched. All problems are reported at once, joined with errors.Join.
func (g *Grammar) Validate() error {
	var errs []error

	if !g.Variables.Has(g.Start) {
		errs = append(errs, &SymbolError{Symbol: g.Start, Err: ErrStartNotVariable})
	}

	for _, s := range Symbols(g.Variables) {
		if g.Terminals.Has(s) {
			errs = append(errs, &SymbolError{Symbol: s, Err: ErrAmbiguousUniverse})
		}
	}

	g.Each(func(head Symbol, body Replacement) bool {
		if err := g.checkRule(head, body); err != nil {
			errs = append(errs, &RuleError{Head: head, Body: body, Err: err})
		}
		return true
	})

	return errors.Join(errs...)
}

func (g *Grammar) checkRule(head Symbol, body Replacement) error {
	if !g.Variables.Has(head) {
		return ErrUndeclaredHead
	}

	switch len(body) {
	case 1:
		if g.Terminals.Has(body[0]) {
			return nil
		}
		if g.Variables.Has(body[0]) {
			return ErrNotCNF
		}
		return ErrUndeclaredSymbol
	case 2:
		for _, s := range body {
			if g.Terminals.Has(s) {
				return ErrNotCNF
			}
			if !g.Variables.Has(s) {
				return ErrUndeclaredSymbol
			}
		}
		return nil
	default:
		return ErrNotCNF
	}
}
