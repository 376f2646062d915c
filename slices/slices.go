// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package slices defines various functions useful with slices of any type.
// Unless otherwise specified, these functions all apply to the elements
// of a slice at index 0 <= i < len(s).
package slices

import (
	"cmp"
	"maps"
	stdslices "slices"
)

// Equal reports whether two slices are equal: the same length and all
// elements equal. If the lengths are different, Equal returns false.
// Otherwise, the elements are compared in increasing index order, and the
// comparison stops at the first unequal pair.
func Equal[E comparable](s1, s2 []E) bool {
	if len(s1) != len(s2) {
		return false
	}
	for i := range s1 {
		if s1[i] != s2[i] {
			return false
		}
	}
	return true
}

// Compare compares the elements of s1 and s2.
// The elements are compared sequentially, starting at index 0,
// until one element is not equal to the other.
// The result of comparing the first non-matching elements is returned.
// If both slices are equal until one of them ends, the shorter slice is
// considered less than the longer one.
// The result is 0 if s1 == s2, -1 if s1 < s2, and +1 if s1 > s2.
func Compare[E cmp.Ordered](s1, s2 []E) int {
	s2len := len(s2)
	for i, v1 := range s1 {
		if i >= s2len {
			return +1
		}
		if c := cmp.Compare(v1, s2[i]); c != 0 {
			return c
		}
	}
	if len(s1) < s2len {
		return -1
	}
	return 0
}

func ToMap[S ~[]T, T comparable](s S) map[T]struct{} {
	res := make(map[T]struct{}, len(s))
	for _, item := range s {
		res[item] = struct{}{}
	}

	return res
}

// Index returns the index of the first occurrence of v in s,
// or -1 if not present.
func Index[S ~[]T, T comparable](s S, v T) int {
	return IndexFunc(s, func(item T) bool { return item == v })
}

// IndexFunc returns the first index i satisfying f(s[i]),
// or -1 if none do.
func IndexFunc[S ~[]T, T any](s S, f func(T) bool) int {
	for i, v := range s {
		if f(v) {
			return i
		}
	}
	return -1
}

// Contains reports whether v is present in s.
func Contains[S ~[]T, T comparable](s S, v T) bool         { return Index(s, v) >= 0 }
func ContainsFunc[S ~[]T, T any](s S, f func(T) bool) bool { return IndexFunc(s, f) >= 0 }

// Clip removes unused capacity from the slice, returning s[:len(s):len(s)].
func Clip[S ~[]E, E any](s S) S { return s[:len(s):len(s)] }

func Remap[S ~[]T, T, U any](s S, f func(int, T) U) []U {
	res := make([]U, len(s))
	for i, item := range s {
		res[i] = f(i, item)
	}
	return res
}

// Possibles returns every combination that takes one element from each of
// the lists, in order. Empty lists are skipped, so callers that need a strict
// Cartesian product must check for them first.
func Possibles[S ~[]T, T any](z []S) []S {
	if len(z) == 0 {
		return []S{}
	}
	if len(z[0]) == 0 {
		return Possibles(z[1:])
	}

	res := []S{}
	morePossibilities := Possibles(z[1:])
	for _, elem := range z[0] {
		if len(morePossibilities) == 0 {
			res = append(res, S{elem})
		}
		for _, nextItems := range morePossibilities {
			res = append(res, append(S{elem}, nextItems...))
		}
	}
	return res
}

// Filter MODIFIES s, so only one possible way to use func is s = Filter(s, ...)
func Filter[S ~[]T, T any](s S, f func(T) bool) S {
	i := 0
	for _, item := range s {
		if f(item) {
			s[i] = item
			i++
		}
	}

	return Clip(s[:i])
}

// SortFunc sorts s in place and returns it, so it can be chained.
func SortFunc[S ~[]T, T any](s S, f func(a, b T) int) S {
	stdslices.SortFunc(s, f)
	return s
}

// SortedKeys returns keys of m in ascending order.
func SortedKeys[M ~map[K]V, K cmp.Ordered, V any](m M) []K {
	return stdslices.Sorted(maps.Keys(m))
}
