// Package interval provides a multiset of intervals which can efficiently
// enumerate the stored intervals overlapping a query.
//
// An interval with an end covers [key, end). An interval without an end is
// a point covering only its key.
package interval

import (
	"fmt"
	"iter"

	"github.com/ajwerner/multiset"
	"github.com/ajwerner/multiset/internal/counted"
)

// Set is a multiset of intervals of type I with bounds of type K. Intervals
// are ordered by cmp, which must order by key first.
type Set[I, K any] struct {
	s counted.Set[I, aug[K]]
	u *updater[I, K]
}

// MakeSet constructs a Set. If hasEnd is nil, every interval has an end.
func MakeSet[I, K any](
	cmpK func(K, K) int,
	cmp func(I, I) int,
	key, end func(I) K,
	hasEnd func(I) bool,
	opts ...multiset.Option,
) *Set[I, K] {
	if hasEnd == nil {
		hasEnd = func(I) bool { return true }
	}
	u := &updater[I, K]{
		key:    key,
		end:    end,
		cmp:    cmpK,
		hasEnd: hasEnd,
	}
	return &Set[I, K]{
		s: counted.Make[I, aug[K]](cmp, u, opts),
		u: u,
	}
}

func (s *Set[I, K]) Insert(v I) bool          { return s.s.Insert(v) }
func (s *Set[I, K]) InsertN(v I, n int) error { return s.s.InsertN(v, n) }
func (s *Set[I, K]) Remove(v I) bool          { return s.s.Remove(v) }
func (s *Set[I, K]) RemoveN(v I, n int) error { return s.s.RemoveN(v, n) }
func (s *Set[I, K]) RemoveAll(v I) int        { return s.s.RemoveAll(v) }
func (s *Set[I, K]) Count(v I) int            { return s.s.Count(v) }
func (s *Set[I, K]) Contains(v I) bool        { return s.s.Contains(v) }
func (s *Set[I, K]) Len() int                 { return s.s.Len() }
func (s *Set[I, K]) Distinct() int            { return s.s.Distinct() }
func (s *Set[I, K]) Height() int              { return s.s.Height() }
func (s *Set[I, K]) All() iter.Seq2[I, int]   { return s.s.All() }
func (s *Set[I, K]) Clear()                   { s.s.Clear() }
func (s *Set[I, K]) String() string           { return s.s.String() }

// Overlapping yields every stored interval overlapping bounds with its
// count, in order.
func (s *Set[I, K]) Overlapping(bounds I) iter.Seq2[I, int] {
	return func(yield func(I, int) bool) {
		it := s.MakeIter()
		for it.FirstOverlap(bounds); it.Valid(); it.NextOverlap() {
			if !yield(it.Cur(), it.Count()) {
				return
			}
		}
	}
}

// Verify checks the structural invariants of the tree and that every
// subtree records the upper bound of its intervals.
func (s *Set[I, K]) Verify() error {
	if err := s.s.Verify(); err != nil {
		return err
	}
	for n := s.s.Tree().First(); n != nil; n = n.Next() {
		if got, exp := n.GetA().keyBound, s.u.findUpperBound(n); got.compare(s.u.cmp, exp) != 0 {
			return fmt.Errorf("upper bound of %v is %v, expected %v: %w",
				n.Value(), got.k, exp.k, multiset.ErrCorrupt)
		}
	}
	return nil
}

func (s *Set[I, K]) MakeIter() Iterator[I, K] {
	return Iterator[I, K]{
		Iterator: s.s.Tree().MakeIter(),
		t:        s.s.Tree(),
		u:        s.u,
	}
}
