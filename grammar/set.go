package grammar

import (
	"fmt"
	"strings"

	"github.com/quenbyako/cyk/slices"
)

// xxh3 of empty input
const emptyHash uint64 = 0x2d06800538d394c2

// WTF??? https://github.com/golang/go/issues/46477
type Set[T comparable] map[T]struct{}

func NewSet[T comparable](items ...T) Set[T] {
	s := make(Set[T], len(items))
	for _, item := range items {
		s[item] = struct{}{}
	}
	return s
}

func (s Set[T]) Append(k ...T) Set[T] {
	if s == nil {
		s = make(Set[T], len(k))
	}
	for _, item := range k {
		s[item] = struct{}{}
	}
	return s
}

// Merge adds every item of o to s.
func (s Set[T]) Merge(o Set[T]) Set[T] {
	if s == nil {
		s = make(Set[T], len(o))
	}
	for item := range o {
		s[item] = struct{}{}
	}
	return s
}

func (s Set[T]) Has(k T) bool {
	_, ok := s[k]
	return ok
}

func (s Set[T]) Clone() Set[T] { return make(Set[T], len(s)).Merge(s) }

// Symbols returns symbols of the set in ascending order.
func Symbols(s Set[Symbol]) []Symbol { return slices.SortedKeys(s) }

func (s Set[T]) String() string {
	items := make([]string, 0, len(s))
	for item := range s {
		items = append(items, fmt.Sprint(item))
	}

	return "set[" + strings.Join(slices.SortFunc(items, strings.Compare), " ") + "]"
}

type Hasher interface {
	Hash() (uint64, error)
}

// HashSet keeps items by their hash. Equal items must produce equal hashes.
type HashSet[T Hasher] map[uint64]T

func (s HashSet[T]) Has(k T) bool {
	if s == nil {
		return false
	}

	_, ok := s[mustHash(k)]
	return ok
}

func (s HashSet[T]) Append(k ...T) HashSet[T] {
	if s == nil {
		s = make(HashSet[T], len(k))
	}

	for _, item := range k {
		s[mustHash(item)] = item
	}

	return s
}

func (s HashSet[T]) Values() []T {
	res := make([]T, 0, len(s))
	for _, item := range s {
		res = append(res, item)
	}

	return res
}

func mustHash[T Hasher](k T) uint64 {
	h, err := k.Hash()
	if err != nil {
		panic(err)
	}

	return h
}
