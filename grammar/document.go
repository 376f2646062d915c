package grammar

import (
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
)

// Document is a declarative form of a grammar. Field names follow the JSON
// layout grammars are usually shipped in:
//
//	{
//	  "Start": "S",
//	  "Variables": ["S", "A", "B"],
//	  "Terminals": ["a", "b"],
//	  "Productions": [{"head": "S", "body": ["A", "B"]}, ...]
//	}
//
// YAML documents with the same keys are accepted too.
type Document struct {
	Start       string               `yaml:"Start"`
	Variables   []string             `yaml:"Variables"`
	Terminals   []string             `yaml:"Terminals"`
	Productions []ProductionDocument `yaml:"Productions"`
}

type ProductionDocument struct {
	Head string   `yaml:"head"`
	Body []string `yaml:"body"`
}

var ErrNoStart = errors.New("start symbol is not set")

// Decode reads a single JSON or YAML document and builds grammar from it.
// Document is not checked for CNF conformance, see Validate for that.
func Decode(r io.Reader) (*Grammar, error) {
	var doc Document
	if err := yaml.NewDecoder(r, yaml.DisallowUnknownField()).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding grammar: %w", err)
	}
	if doc.Start == "" {
		return nil, ErrNoStart
	}

	return doc.Grammar(), nil
}

// Grammar registers every production of the document with AddProduction.
func (d Document) Grammar() *Grammar {
	g := New(Symbol(d.Start), toSymbols(d.Variables), toSymbols(d.Terminals))
	for _, p := range d.Productions {
		g.AddProduction(Symbol(p.Head), toSymbols(p.Body))
	}

	return g
}

// Document is the opposite of Document.Grammar.
func (g *Grammar) Document() Document {
	doc := Document{
		Start:       string(g.Start),
		Variables:   fromSymbols(Symbols(g.Variables)),
		Terminals:   fromSymbols(Symbols(g.Terminals)),
		Productions: make([]ProductionDocument, 0, g.Len()),
	}
	g.Each(func(head Symbol, body Replacement) bool {
		doc.Productions = append(doc.Productions, ProductionDocument{Head: string(head), Body: fromSymbols(body)})
		return true
	})

	return doc
}

func toSymbols(s []string) []Symbol {
	res := make([]Symbol, len(s))
	for i, item := range s {
		res[i] = Symbol(item)
	}
	return res
}

func fromSymbols[S ~[]Symbol](s S) []string {
	res := make([]string, len(s))
	for i, item := range s {
		res[i] = string(item)
	}
	return res
}
