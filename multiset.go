// Package multiset implements an in-memory ordered multiset. Values are kept
// in a balanced binary search tree together with the number of times they
// occur, and an in-order chain threaded through the tree makes each step of
// an ordered traversal O(1).
//
// A Multiset is not safe for concurrent use. Callers must serialize access.
package multiset

import (
	"cmp"
	"iter"

	"github.com/ajwerner/multiset/internal/counted"
)

// Multiset is an ordered collection of values with occurrence counts.
type Multiset[T any] struct {
	s counted.Set[T, struct{}]
}

// Make returns an empty Multiset of an ordered type.
func Make[T cmp.Ordered](opts ...Option) *Multiset[T] {
	return MakeFunc[T](cmp.Compare[T], opts...)
}

// MakeFunc returns an empty Multiset ordered by cmp.
func MakeFunc[T any](cmp func(T, T) int, opts ...Option) *Multiset[T] {
	return &Multiset[T]{
		s: counted.Make[T, struct{}](cmp, nil, opts),
	}
}

// Insert adds one occurrence of v. It returns true if v was not present.
func (m *Multiset[T]) Insert(v T) bool { return m.s.Insert(v) }

// InsertN adds n occurrences of v.
func (m *Multiset[T]) InsertN(v T, n int) error { return m.s.InsertN(v, n) }

// Remove removes one occurrence of v. It returns false if v was not present.
func (m *Multiset[T]) Remove(v T) bool { return m.s.Remove(v) }

// RemoveN removes n occurrences of v, or none if fewer are present.
func (m *Multiset[T]) RemoveN(v T, n int) error { return m.s.RemoveN(v, n) }

// RemoveAll removes v entirely and returns the number of occurrences removed.
func (m *Multiset[T]) RemoveAll(v T) int { return m.s.RemoveAll(v) }

// Count returns the number of occurrences of v.
func (m *Multiset[T]) Count(v T) int { return m.s.Count(v) }

// Contains reports whether v is present.
func (m *Multiset[T]) Contains(v T) bool { return m.s.Contains(v) }

// Len returns the total number of occurrences.
func (m *Multiset[T]) Len() int { return m.s.Len() }

// Distinct returns the number of distinct values.
func (m *Multiset[T]) Distinct() int { return m.s.Distinct() }

// Height returns the height of the underlying tree.
func (m *Multiset[T]) Height() int { return m.s.Height() }

func (m *Multiset[T]) Min() (T, bool) { return m.s.Min() }

func (m *Multiset[T]) Max() (T, bool) { return m.s.Max() }

// All yields each distinct value and its count in ascending order.
func (m *Multiset[T]) All() iter.Seq2[T, int] { return m.s.All() }

// Values yields every occurrence in ascending order.
func (m *Multiset[T]) Values() iter.Seq[T] { return m.s.Values() }

// Clear removes all values.
func (m *Multiset[T]) Clear() { m.s.Clear() }

func (m *Multiset[T]) String() string { return m.s.String() }

// Dump renders the shape of the underlying tree.
func (m *Multiset[T]) Dump() string { return m.s.Dump() }

// Verify checks the invariants of the underlying tree. A non-nil error
// wraps ErrCorrupt and indicates a bug.
func (m *Multiset[T]) Verify() error { return m.s.Verify() }

// MakeIter returns an Iterator positioned nowhere. It must not be used after
// the Multiset is modified.
func (m *Multiset[T]) MakeIter() Iterator[T] {
	return Iterator[T]{it: m.s.Tree().MakeIter()}
}
