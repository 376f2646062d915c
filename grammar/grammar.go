package grammar

import (
	"fmt"
	"strings"
)

const stringPadding = 4

func pad(minus int) string { return strings.Repeat(" ", max(stringPadding-minus, 0)) }

// Grammar is a context-free grammar in Chomsky normal form: every rule is
// either A -> B C or A -> a.
//
// Grammar is built once and never changed after that: parsers only read it,
// so a single grammar can be shared between any number of goroutines.
type Grammar struct {
	Start     Symbol
	Variables Set[Symbol]
	Terminals Set[Symbol]

	Productions
}

// New creates an empty grammar. Start symbol is always added to variables.
func New(start Symbol, variables, terminals []Symbol) *Grammar {
	return &Grammar{
		Start:     start,
		Variables: NewSet(variables...).Append(start),
		Terminals: NewSet(terminals...),
	}
}

// Add is a shortcut for AddProduction(head, Replacement(body)).
func (g *Grammar) Add(head Symbol, body ...Symbol) *Grammar {
	g.AddProduction(head, body)
	return g
}

// Producers reports variables producing exactly replacement. Unlike
// VariablesProducing it doesn't copy anything, so result must be used only for
// reading.
func (g *Grammar) Producers(replacement Replacement) Set[Symbol] { return g.producing(replacement) }

// String prints grammar rules, one block per variable:
//
//	S   : A B
//	    ;
//	B   : "b"
//	    | A B
//	    ;
func (g *Grammar) String() string {
	strs := make([]string, 0, len(g.forward))

	for _, head := range g.Heads() {
		rules := g.ReplacementsFor(head)
		if len(rules) == 0 {
			continue
		}

		str := head.String()
		if len(str) <= stringPadding {
			str += pad(len(str)) + ":"
		} else {
			str += "\n" + pad(0) + ":"
		}

		str += " " + g.stringBody(rules[0])
		for _, rule := range rules[1:] {
			str += "\n" + pad(0) + "| " + g.stringBody(rule)
		}
		str += "\n" + pad(0) + ";"

		strs = append(strs, str)
	}

	return strings.Join(strs, "\n")
}

// stringBody quotes terminals, so the output can be read back by Parse.
func (g *Grammar) stringBody(r Replacement) string {
	parts := make([]string, len(r))
	for i, s := range r {
		if g.Terminals.Has(s) {
			parts[i] = fmt.Sprintf("%q", string(s))
		} else {
			parts[i] = s.String()
		}
	}

	return strings.Join(parts, " ")
}
