package cyk_test

import (
	"fmt"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quenbyako/cyk/cyk"
	"github.com/quenbyako/cyk/grammar"
)

// a a* b
func abGrammar() *grammar.Grammar {
	return grammar.New("S", []grammar.Symbol{"S", "A", "B"}, []grammar.Symbol{"a", "b"}).
		Add("S", "A", "B").
		Add("A", "a").
		Add("B", "b").
		Add("B", "A", "B")
}

// rows returns formatted cells, bottom row first.
func rows(t *cyk.Table) [][]string {
	res := make([][]string, t.Len())
	t.Cells(func(c cyk.Coord, variables []grammar.Symbol) {
		res[c.Span] = append(res[c.Span], cyk.FormatCell(variables))
	})
	return res
}

func TestRun(t *testing.T) {
	for _, tt := range []struct {
		input    string
		accepted bool
		rows     [][]string
	}{{
		input:    "ab",
		accepted: true,
		rows: [][]string{
			{"{A}", "{B}"},
			{"{B, S}"},
		},
	}, {
		input:    "abb",
		accepted: false,
		rows: [][]string{
			{"{A}", "{B}", "{B}"},
			{"{B, S}", "∅"},
			{"∅"},
		},
	}, {
		input:    "aab",
		accepted: true,
		rows: [][]string{
			{"{A}", "{A}", "{B}"},
			{"∅", "{B, S}"},
			{"{B, S}"},
		},
	}, {
		input:    "ba",
		accepted: false,
		rows: [][]string{
			{"{B}", "{A}"},
			{"∅"},
		},
	}, {
		input:    "a",
		accepted: false,
		rows: [][]string{
			{"{A}"},
		},
	}, {
		input:    "abc",
		accepted: false,
		rows: [][]string{
			{"{A}", "{B}", "∅"},
			{"{B, S}", "∅"},
			{"∅"},
		},
	}, {
		input:    "",
		accepted: false,
		rows:     [][]string{},
	}} {
		t.Run(fmt.Sprintf("%q", tt.input), func(t *testing.T) {
			accepted, table := cyk.Run(abGrammar(), cyk.Chars(tt.input))
			require.Equal(t, tt.accepted, accepted)
			require.Equal(t, tt.rows, rows(table))
		})
	}
}

func TestRun_EmptyInput(t *testing.T) {
	accepted, table := cyk.Run(abGrammar(), nil)
	require.False(t, accepted)
	require.Equal(t, 0, table.Len())

	_, ok := table.Top()
	require.False(t, ok)
}

func TestRun_DoesNotChangeGrammar(t *testing.T) {
	g := abGrammar()
	before := g.Document()

	cyk.Run(g, cyk.Chars("aaabxb"))
	require.Equal(t, before, g.Document())
}

func TestRun_MalformedGrammar(t *testing.T) {
	// undeclared head and a long rule: never matched, but nothing breaks
	g := abGrammar().Add("X", "a").Add("S", "A", "A", "B")

	accepted, table := cyk.Run(g, cyk.Chars("aab"))
	require.True(t, accepted)
	require.Equal(t, []grammar.Symbol{"A", "X"}, table.Cell(cyk.Coord{Span: 0, Start: 0}))
}

func TestTable_Shape(t *testing.T) {
	for n := 0; n < 8; n++ {
		_, table := cyk.Run(abGrammar(), cyk.Chars(randomInput(rand.New(rand.NewSource(int64(n))), n)))
		require.Equal(t, n, table.Len())
		for span := 0; span < n; span++ {
			require.Equal(t, n-span, table.RowLen(span))
		}
	}
}

func TestTable_Input(t *testing.T) {
	input := cyk.Chars("ab")
	_, table := cyk.Run(abGrammar(), input)
	input[0] = "z"

	require.Equal(t, []grammar.Symbol{"a", "b"}, table.Input())
}

func TestRun_BottomUp(t *testing.T) {
	for _, workers := range []int{1, 3} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			var mu sync.Mutex
			var order []cyk.Coord
			p := cyk.New(abGrammar(), cyk.WithWorkers(workers), cyk.WithObserver(func(c cyk.Coord, _ []grammar.Symbol) {
				mu.Lock()
				defer mu.Unlock()
				order = append(order, c)
			}))

			input := cyk.Chars("aaaabab")
			_, table := p.Run(input)

			n := len(input)
			require.Len(t, order, n*(n+1)/2)

			seen := make(map[cyk.Coord]bool)
			done := make([]int, n) // finalized cells per span
			for _, c := range order {
				require.False(t, seen[c], "%v finalized twice", c)
				seen[c] = true
				for span := 0; span < c.Span; span++ {
					require.Equal(t, table.RowLen(span), done[span], "%v finalized before span %d was done", c, span)
				}
				done[c.Span]++
			}
		})
	}
}

func TestRun_ParallelMatchesSequential(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		g := randomGrammar(rnd)
		input := cyk.Chars(randomInput(rnd, 1+rnd.Intn(12)))

		accepted, table := cyk.Run(g, input)
		parAccepted, parTable := cyk.New(g, cyk.WithWorkers(4)).Run(input)

		require.Equal(t, accepted, parAccepted)
		require.Equal(t, rows(table), rows(parTable))
	}
}

// Every cell must be the union over all split points and all pairs, checked
// against a top-down memoized derivation.
func TestRun_CellsMatchDerivations(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for i := 0; i < 30; i++ {
		g := randomGrammar(rnd)
		input := cyk.Chars(randomInput(rnd, 1+rnd.Intn(9)))

		accepted, table := cyk.Run(g, input)
		d := newDeriver(g, input)

		table.Cells(func(c cyk.Coord, variables []grammar.Symbol) {
			for _, v := range grammar.Symbols(g.Variables) {
				require.Equal(t, d.derives(v, c.Start, c.Start+c.Span+1), table.Has(c, v), "grammar:\n%v\ninput %v, %v, %v", g, input, c, v)
			}
		})
		require.Equal(t, d.derives(g.Start, 0, len(input)), accepted)
	}
}

type deriver struct {
	g     *grammar.Grammar
	input []grammar.Symbol
	memo  map[string]bool
}

func newDeriver(g *grammar.Grammar, input []grammar.Symbol) *deriver {
	return &deriver{g: g, input: input, memo: make(map[string]bool)}
}

// derives reports whether v derives input[from:to].
func (d *deriver) derives(v grammar.Symbol, from, to int) bool {
	key := fmt.Sprintf("%v/%d/%d", v, from, to)
	if res, ok := d.memo[key]; ok {
		return res
	}

	res := false
	for _, body := range d.g.ReplacementsFor(v) {
		switch {
		case len(body) == 1 && to-from == 1:
			res = res || body[0] == d.input[from]
		case len(body) == 2 && to-from > 1:
			for mid := from + 1; mid < to && !res; mid++ {
				res = d.derives(body[0], from, mid) && d.derives(body[1], mid, to)
			}
		}
		if res {
			break
		}
	}

	d.memo[key] = res
	return res
}

func randomGrammar(rnd *rand.Rand) *grammar.Grammar {
	variables := []grammar.Symbol{"S", "A", "B", "C"}
	terminals := []grammar.Symbol{"a", "b"}

	g := grammar.New("S", variables, terminals)
	for i := 0; i < 4+rnd.Intn(10); i++ {
		head := variables[rnd.Intn(len(variables))]
		if rnd.Intn(3) == 0 {
			g.Add(head, terminals[rnd.Intn(len(terminals))])
		} else {
			g.Add(head, variables[rnd.Intn(len(variables))], variables[rnd.Intn(len(variables))])
		}
	}
	return g
}

func randomInput(rnd *rand.Rand, n int) string {
	res := make([]byte, n)
	for i := range res {
		res[i] = "ab"[rnd.Intn(2)]
	}
	return string(res)
}
