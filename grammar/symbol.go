package grammar

import (
	"encoding/binary"
	"strings"

	"github.com/zeebo/xxh3"

	"github.com/quenbyako/cyk/slices"
)

const epsilonSymbol = "ε"

// Symbol is a single variable or terminal. Which universe it belongs to is
// decided by the grammar, not by the symbol itself.
type Symbol string

func (s Symbol) String() string        { return string(s) }
func (s Symbol) Hash() (uint64, error) { return xxh3.HashString(string(s)), nil }

// Replacement is the right side of a single production. Order matters: A B
// and B A are different replacements.
type Replacement []Symbol

// Unit is a replacement of a single terminal, i.e. right side of A -> a.
func Unit(terminal Symbol) Replacement { return Replacement{terminal} }

// Pair is a replacement of two variables, i.e. right side of A -> B C.
func Pair(left, right Symbol) Replacement { return Replacement{left, right} }

func (r Replacement) String() string {
	if len(r) == 0 {
		return epsilonSymbol
	}

	return strings.Join(slices.Remap(r, func(_ int, s Symbol) string { return s.String() }), " ")
}

func (r Replacement) Eq(j Replacement) bool { return slices.Equal(r, j) }
func (r Replacement) Cmp(j Replacement) int { return slices.Compare(r, j) }

// Hash mixes hashes of every symbol, so ("ab", "c") and ("a", "bc") never
// share the same input bytes.
func (r Replacement) Hash() (uint64, error) {
	if len(r) == 0 {
		return emptyHash, nil
	}

	res := make([]byte, 0, len(r)*8)
	for _, s := range r {
		h, _ := s.Hash()
		res = binary.LittleEndian.AppendUint64(res, h)
	}

	return xxh3.Hash(res), nil
}

func (r Replacement) clone() Replacement { return append(Replacement(nil), r...) }
