// Package cyk checks whether a string belongs to the language of a grammar in
// Chomsky normal form, using Cocke-Younger-Kasami algorithm.
//
// The table is filled bottom-up: span 0 from terminal rules, then every next
// span from the cells of smaller spans. A cell of span i is written once, after
// every split point is processed, and only when all spans below i are done.
package cyk

import (
	"sync"

	"github.com/tliron/commonlog"

	"github.com/quenbyako/cyk/grammar"
	"github.com/quenbyako/cyk/slices"
)

type Option func(*Parser)

// WithWorkers fills cells of the same span with n goroutines. Spans are still
// processed one after another. n <= 1 means sequential fill.
func WithWorkers(n int) Option { return func(p *Parser) { p.workers = n } }

// WithObserver calls f right after a cell is finalized. With more than one
// worker f is called concurrently.
func WithObserver(f func(c Coord, variables []grammar.Symbol)) Option {
	return func(p *Parser) { p.observe = f }
}

func WithLogger(log commonlog.Logger) Option { return func(p *Parser) { p.log = log } }

// Parser runs CYK over a single grammar. It never changes the grammar, so
// one parser can be used from many goroutines.
type Parser struct {
	g       *grammar.Grammar
	workers int
	observe func(Coord, []grammar.Symbol)
	log     commonlog.Logger
}

func New(g *grammar.Grammar, opts ...Option) *Parser {
	p := &Parser{g: g, log: commonlog.GetLogger("cyk")}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Run is a shortcut for New(g).Run(input).
func Run(g *grammar.Grammar, input []grammar.Symbol) (accepted bool, table *Table) {
	return New(g).Run(input)
}

// Run builds the table for input and reports whether the start symbol derives
// the whole input.
//
// Empty input is always rejected, and its table has no rows: a CNF grammar has
// no way to derive an empty string.
func (p *Parser) Run(input []grammar.Symbol) (accepted bool, table *Table) {
	table = newTable(input)

	top, ok := table.Top()
	if !ok {
		p.log.Debug("empty input, rejecting")
		return false, table
	}

	p.fill(table)

	accepted = table.Has(top, p.g.Start)
	p.log.Debugf("input of %d symbols: top cell %v, accepted=%v", len(input), FormatCell(table.Cell(top)), accepted)

	return accepted, table
}

func (p *Parser) fill(t *Table) {
	for start, term := range t.input {
		t.rows[0][start] = p.g.VariablesProducing(grammar.Unit(term))
		p.finalized(t, Coord{Span: 0, Start: start})
	}

	for span := 1; span < len(t.rows); span++ {
		if p.workers > 1 {
			p.fillSpanParallel(t, span)
		} else {
			for start := range t.rows[span] {
				p.fillCell(t, Coord{Span: span, Start: start})
			}
		}
		p.log.Debugf("span %d is done", span)
	}
}

// fillSpanParallel splits the row into contiguous chunks, one per worker.
// Every cell is written by exactly one goroutine, and rows of smaller spans are
// only read, so no locking is needed. Returns when the whole row is done.
func (p *Parser) fillSpanParallel(t *Table, span int) {
	row := t.rows[span]
	chunk := (len(row) + p.workers - 1) / p.workers

	var wg sync.WaitGroup
	for from := 0; from < len(row); from += chunk {
		to := min(from+chunk, len(row))

		wg.Add(1)
		go func(from, to int) {
			defer wg.Done()
			for start := from; start < to; start++ {
				p.fillCell(t, Coord{Span: span, Start: start})
			}
		}(from, to)
	}
	wg.Wait()
}

// fillCell unions producers of every (left, right) pair over every split
// point k: left part is cell (k, start), right part is cell
// (span-k-1, start+k+1).
func (p *Parser) fillCell(t *Table, c Coord) {
	res := make(grammar.Set[grammar.Symbol])

	for k := 0; k < c.Span; k++ {
		left := t.Cell(Coord{Span: k, Start: c.Start})
		right := t.Cell(Coord{Span: c.Span - k - 1, Start: c.Start + k + 1})
		// Possibles skips empty lists, but an empty side means no pairs at all
		if len(left) == 0 || len(right) == 0 {
			continue
		}

		for _, pair := range slices.Possibles([][]grammar.Symbol{left, right}) {
			res = res.Merge(p.g.Producers(pair))
		}
	}

	t.rows[c.Span][c.Start] = res
	p.finalized(t, c)
}

func (p *Parser) finalized(t *Table, c Coord) {
	if p.observe != nil {
		p.observe(c, t.Cell(c))
	}
}
