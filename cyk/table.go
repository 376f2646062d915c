package cyk

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/quenbyako/cyk/grammar"
	"github.com/quenbyako/cyk/slices"
)

// Coord addresses a single cell of a table: Span is length of the covered
// substring minus one, Start is its first position.
type Coord struct{ Span, Start int }

func (c Coord) String() string { return fmt.Sprintf("cell[%v:%v]", c.Span, c.Start) }

// координаты:
//
//	span n-1 │ (n-1, 0)
//	   ...   │   ...      ...
//	span 1   │ (1, 0)   (1, 1)   ...  (1, n-2)
//	span 0   │ (0, 0)   (0, 1)   ...  (0, n-2)  (0, n-1)
//	         └──────────────────────────────────────────
//	           input[0] input[1] ...             input[n-1]

// Table is a triangular CYK table: row span has exactly len(input)-span
// cells, cell (span, start) keeps variables deriving
// input[start:start+span+1].
type Table struct {
	input []grammar.Symbol
	rows  [][]grammar.Set[grammar.Symbol]
}

func newTable(input []grammar.Symbol) *Table {
	n := len(input)
	t := &Table{
		input: append([]grammar.Symbol(nil), input...),
		rows:  make([][]grammar.Set[grammar.Symbol], n),
	}
	for span := range t.rows {
		t.rows[span] = make([]grammar.Set[grammar.Symbol], n-span)
	}

	return t
}

// Input returns symbols the table was built for.
func (t *Table) Input() []grammar.Symbol { return append([]grammar.Symbol(nil), t.input...) }

// Len returns number of rows, which equals to length of the input.
func (t *Table) Len() int { return len(t.rows) }

// RowLen returns number of cells in the row.
func (t *Table) RowLen(span int) int { return len(t.rows[span]) }

// Cell returns variables of the cell in ascending order. Panics if c is out of
// the table, like indexing a slice does.
func (t *Table) Cell(c Coord) []grammar.Symbol { return grammar.Symbols(t.rows[c.Span][c.Start]) }

// Has reports whether v derives the substring of the cell.
func (t *Table) Has(c Coord, v grammar.Symbol) bool { return t.rows[c.Span][c.Start].Has(v) }

// Top returns the cell covering the whole input. Table of an empty input has
// no top cell.
func (t *Table) Top() (Coord, bool) {
	if len(t.rows) == 0 {
		return Coord{}, false
	}

	return Coord{Span: len(t.rows) - 1, Start: 0}, true
}

// Cells calls f for every cell, bottom row first, left to right.
func (t *Table) Cells(f func(c Coord, variables []grammar.Symbol)) {
	for span, row := range t.rows {
		for start := range row {
			c := Coord{Span: span, Start: start}
			f(c, t.Cell(c))
		}
	}
}

// String draws the table with the widest span on top and input symbols as a
// header.
func (t *Table) String() string {
	buf := bytes.NewBuffer(nil)
	w := tablewriter.NewWriter(buf)
	w.SetAutoFormatHeaders(false)
	w.SetAlignment(tablewriter.ALIGN_CENTER)

	w.SetHeader(slices.Remap(t.input, func(_ int, s grammar.Symbol) string { return s.String() }))

	for span := len(t.rows) - 1; span >= 0; span-- {
		row := make([]string, len(t.input))
		for start := range t.rows[span] {
			row[start] = FormatCell(t.Cell(Coord{Span: span, Start: start}))
		}
		w.Append(row)
	}

	w.Render()

	return buf.String()
}

// FormatCell prints variables as a set: {A, B}, or ∅ if there are none.
func FormatCell(variables []grammar.Symbol) string {
	if len(variables) == 0 {
		return "∅"
	}

	return "{" + strings.Join(slices.Remap(variables, func(_ int, s grammar.Symbol) string { return s.String() }), ", ") + "}"
}
