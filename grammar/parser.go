package grammar

import (
	"fmt"
	"io"

	"github.com/alecthomas/participle/v2"
)

// textual notation of a CNF grammar:
//
//	S : A B ;
//	A : "a" ;
//	B : "b" | A B ;
//
// identifiers are variables, quoted strings are terminals.
type file struct {
	P []production `parser:"@@*"`
}

type production struct {
	Head string     `parser:"@Ident ':'"`
	Alts []sequence `parser:"@@ ( '|' @@ )* ';'"`
}

type sequence struct {
	T []term `parser:"@@+"`
}

type term struct {
	Terminal *string `parser:"@String |"`
	Variable *string `parser:"@Ident"`
}

func (f *file) normalize(start Symbol) (*Grammar, error) {
	if start == "" {
		if len(f.P) == 0 {
			return nil, ErrNoStart
		}
		start = Symbol(f.P[0].Head)
	}

	g := New(start, nil, nil)
	for _, p := range f.P {
		head := Symbol(p.Head)
		g.Variables = g.Variables.Append(head)

		for _, alt := range p.Alts {
			body := make(Replacement, len(alt.T))
			for i, t := range alt.T {
				body[i] = t.normalize(g)
			}
			g.AddProduction(head, body)
		}
	}

	return g, nil
}

func (t term) normalize(g *Grammar) Symbol {
	switch {
	case t.Terminal != nil:
		s := Symbol(*t.Terminal)
		g.Terminals = g.Terminals.Append(s)
		return s
	case t.Variable != nil:
		s := Symbol(*t.Variable)
		g.Variables = g.Variables.Append(s)
		return s
	default:
		panic("wut")
	}
}

var parser = participle.MustBuild[file](
	participle.Unquote("String"),
	participle.Elide("Comment"),
)

// Parse reads a grammar written in textual notation. If start is empty, head
// of the first production becomes the start symbol.
//
// Variables and terminals are collected from the rules themselves, so a
// grammar read by Parse never has undeclared symbols.
func Parse(name string, input io.Reader, start Symbol) (*Grammar, error) {
	f, err := parser.Parse(name, input)
	if err != nil {
		return nil, fmt.Errorf("parsing grammar: %w", err)
	}

	return f.normalize(start)
}
