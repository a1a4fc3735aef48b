// Package setutil provides a small generic set for collecting ids.
package setutil

import (
	"cmp"
	"slices"
)

// Set is an unordered collection of distinct values.
type Set[T cmp.Ordered] struct {
	items map[T]struct{}
}

func New[T cmp.Ordered](values ...T) *Set[T] {
	s := &Set[T]{items: make(map[T]struct{}, len(values))}
	s.AddAll(values)
	return s
}

func (s *Set[T]) Add(v T) {
	s.items[v] = struct{}{}
}

func (s *Set[T]) AddAll(values []T) {
	for _, v := range values {
		s.items[v] = struct{}{}
	}
}

func (s *Set[T]) Has(v T) bool {
	_, ok := s.items[v]
	return ok
}

func (s *Set[T]) Len() int {
	return len(s.items)
}

// Sorted returns the members in ascending order.
func (s *Set[T]) Sorted() []T {
	out := make([]T, 0, len(s.items))
	for v := range s.items {
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}
