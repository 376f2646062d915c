package grammar

import (
	"github.com/quenbyako/cyk/slices"
)

// Productions holds rules of a grammar indexed in both directions: from a
// variable to everything it expands to, and from a replacement back to every
// variable producing it. The zero value is ready to use.
//
// Reverse index is always the transpose of the forward one, AddProduction is
// the only way to change either of them.
type Productions struct {
	forward map[Symbol]HashSet[Replacement]
	reverse map[uint64][]producers
}

// producers is a reverse index entry. Entries are bucketed by hash of the
// replacement, so a collision never mixes up two different right sides.
type producers struct {
	rhs   Replacement
	heads Set[Symbol]
}

// AddProduction registers variable -> replacement. Adding the same rule twice
// changes nothing.
func (p *Productions) AddProduction(variable Symbol, replacement Replacement) {
	if p.forward == nil {
		p.forward = make(map[Symbol]HashSet[Replacement])
	}
	if p.reverse == nil {
		p.reverse = make(map[uint64][]producers)
	}

	replacement = replacement.clone()
	p.forward[variable] = p.forward[variable].Append(replacement)

	h := mustHash(replacement)
	bucket := p.reverse[h]
	if i := slices.IndexFunc(bucket, func(e producers) bool { return e.rhs.Eq(replacement) }); i >= 0 {
		bucket[i].heads = bucket[i].heads.Append(variable)
		return
	}
	p.reverse[h] = append(bucket, producers{rhs: replacement, heads: NewSet(variable)})
}

// ReplacementsFor returns every replacement of variable, sorted. Unknown
// variables have no replacements.
func (p *Productions) ReplacementsFor(variable Symbol) []Replacement {
	rules, ok := p.forward[variable]
	if !ok {
		return []Replacement{}
	}

	res := slices.Remap(rules.Values(), func(_ int, r Replacement) Replacement { return r.clone() })
	return slices.SortFunc(res, Replacement.Cmp)
}

// VariablesProducing returns every variable which has exactly replacement as
// its right side. Returned set is a copy and can be modified by the caller.
func (p *Productions) VariablesProducing(replacement Replacement) Set[Symbol] {
	return p.producing(replacement).Clone()
}

// producing is VariablesProducing without the copy. Result must not be
// modified.
func (p *Productions) producing(replacement Replacement) Set[Symbol] {
	for _, e := range p.reverse[mustHash(replacement)] {
		if e.rhs.Eq(replacement) {
			return e.heads
		}
	}

	return nil
}

// Heads returns every variable with at least one production, sorted.
func (p *Productions) Heads() []Symbol { return slices.SortedKeys(p.forward) }

// Len returns number of distinct rules.
func (p *Productions) Len() (n int) {
	for _, rules := range p.forward {
		n += len(rules)
	}
	return n
}

// Each calls f for every rule, ordered by head and then by replacement.
// Iteration stops when f returns false.
func (p *Productions) Each(f func(head Symbol, body Replacement) bool) {
	for _, head := range p.Heads() {
		for _, body := range p.ReplacementsFor(head) {
			if !f(head, body) {
				return
			}
		}
	}
}
