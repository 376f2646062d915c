// Package render turns finished CYK tables into documents for humans.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/quenbyako/cyk/cyk"
	"github.com/quenbyako/cyk/grammar"
	"github.com/quenbyako/cyk/slices"
)

//go:embed templates
var embeddedFS embed.FS

var templates = template.Must(template.New("").Funcs(template.FuncMap{
	"cell": cyk.FormatCell,
}).ParseFS(embeddedFS, "templates/*.html.tmpl"))

type page struct {
	Input    []string
	Rows     []row
	Start    string
	Accepted bool
}

type row struct {
	Span  int
	Cells []cell
	// Empty is number of placeholders after the last cell, so every row has
	// as many columns as the input.
	Empty []struct{}
}

type cell struct {
	Variables []grammar.Symbol
	HasStart  bool
}

// HTML writes a standalone HTML document with the table: the widest span on
// top, input symbols along the bottom edge. Cells containing start are
// highlighted.
func HTML(w io.Writer, t *cyk.Table, start grammar.Symbol) error {
	p := page{
		Input: slices.Remap(t.Input(), func(_ int, s grammar.Symbol) string { return s.String() }),
		Start: start.String(),
	}
	if top, ok := t.Top(); ok {
		p.Accepted = t.Has(top, start)
	}

	for span := t.Len() - 1; span >= 0; span-- {
		r := row{Span: span, Empty: make([]struct{}, span)}
		for pos := 0; pos < t.RowLen(span); pos++ {
			c := cyk.Coord{Span: span, Start: pos}
			r.Cells = append(r.Cells, cell{Variables: t.Cell(c), HasStart: t.Has(c, start)})
		}
		p.Rows = append(p.Rows, r)
	}

	if err := templates.ExecuteTemplate(w, "table.html.tmpl", p); err != nil {
		return fmt.Errorf("rendering table: %w", err)
	}

	return nil
}
