// Package orderstat provides a multiset which answers order statistic
// queries, such as the i-th smallest occurrence or the rank of a value, in
// logarithmic time.
package orderstat

import (
	"cmp"
	"iter"
	"math"

	"github.com/ajwerner/multiset"
	"github.com/ajwerner/multiset/internal/abstract"
	"github.com/ajwerner/multiset/internal/counted"
)

type Multiset[T any] struct {
	s counted.Set[T, aug]
}

func Make[T cmp.Ordered](opts ...multiset.Option) *Multiset[T] {
	return MakeFunc[T](cmp.Compare[T], opts...)
}

func MakeFunc[T any](cmp func(T, T) int, opts ...multiset.Option) *Multiset[T] {
	return &Multiset[T]{
		s: counted.Make[T, aug](cmp, updater[T]{}, opts),
	}
}

func (m *Multiset[T]) Insert(v T) bool          { return m.s.Insert(v) }
func (m *Multiset[T]) InsertN(v T, n int) error { return m.s.InsertN(v, n) }
func (m *Multiset[T]) Remove(v T) bool          { return m.s.Remove(v) }
func (m *Multiset[T]) RemoveN(v T, n int) error { return m.s.RemoveN(v, n) }
func (m *Multiset[T]) RemoveAll(v T) int        { return m.s.RemoveAll(v) }
func (m *Multiset[T]) Count(v T) int            { return m.s.Count(v) }
func (m *Multiset[T]) Contains(v T) bool        { return m.s.Contains(v) }
func (m *Multiset[T]) Len() int                 { return m.s.Len() }
func (m *Multiset[T]) Distinct() int            { return m.s.Distinct() }
func (m *Multiset[T]) Height() int              { return m.s.Height() }
func (m *Multiset[T]) Min() (T, bool)           { return m.s.Min() }
func (m *Multiset[T]) Max() (T, bool)           { return m.s.Max() }
func (m *Multiset[T]) All() iter.Seq2[T, int]   { return m.s.All() }
func (m *Multiset[T]) Values() iter.Seq[T]      { return m.s.Values() }
func (m *Multiset[T]) Clear()                   { m.s.Clear() }
func (m *Multiset[T]) String() string           { return m.s.String() }
func (m *Multiset[T]) Dump() string             { return m.s.Dump() }
func (m *Multiset[T]) Verify() error            { return m.s.Verify() }

// Nth returns the i-th smallest occurrence, counting from zero. A value
// which occurs k times occupies k consecutive positions.
func (m *Multiset[T]) Nth(i int) (v T, ok bool) {
	if n := nth(m.s.Tree().Root(), i); n != nil {
		return n.Value(), true
	}
	return v, false
}

// NthDistinct returns the i-th smallest distinct value, counting from zero.
func (m *Multiset[T]) NthDistinct(i int) (v T, ok bool) {
	if i < 0 {
		return v, false
	}
	for n := m.s.Tree().Root(); n != nil; {
		l := distinct(n.Left())
		switch {
		case i < l:
			n = n.Left()
		case i == l:
			return n.Value(), true
		default:
			i -= l + 1
			n = n.Right()
		}
	}
	return v, false
}

// Rank returns the number of occurrences strictly less than v.
func (m *Multiset[T]) Rank(v T) int {
	t := m.s.Tree()
	var r int
	for n := t.Root(); n != nil; {
		c := t.Config().Compare(v, n.Value())
		switch {
		case c < 0:
			n = n.Left()
		case c == 0:
			return r + occurrences(n.Left())
		default:
			r += occurrences(n.Left()) + n.Count()
			n = n.Right()
		}
	}
	return r
}

// Quantile returns the nearest-rank q-quantile: the smallest occurrence
// such that at least a fraction q of all occurrences are less than or equal
// to it. q must lie in [0, 1].
func (m *Multiset[T]) Quantile(q float64) (v T, ok bool) {
	total := m.Len()
	if total == 0 || q < 0 || q > 1 || math.IsNaN(q) {
		return v, false
	}
	i := int(math.Ceil(q*float64(total))) - 1
	if i < 0 {
		i = 0
	}
	return m.Nth(i)
}

// Median returns the lower median.
func (m *Multiset[T]) Median() (T, bool) { return m.Quantile(0.5) }

func nth[T any](n *abstract.Node[T, aug], i int) *abstract.Node[T, aug] {
	if i < 0 {
		return nil
	}
	for n != nil {
		l := occurrences(n.Left())
		switch {
		case i < l:
			n = n.Left()
		case i < l+n.Count():
			return n
		default:
			i -= l + n.Count()
			n = n.Right()
		}
	}
	return nil
}

type OrderStatIterator[T any] struct {
	t  *abstract.Tree[T, aug]
	it abstract.Iterator[T, aug]
}

func (m *Multiset[T]) MakeIter() OrderStatIterator[T] {
	return OrderStatIterator[T]{
		t:  m.s.Tree(),
		it: m.s.Tree().MakeIter(),
	}
}

// Nth positions the iterator at the value holding the i-th smallest
// occurrence.
func (it *OrderStatIterator[T]) Nth(i int) {
	it.it.SetNode(nth(it.t.Root(), i))
}

func (it *OrderStatIterator[T]) First()      { it.it.First() }
func (it *OrderStatIterator[T]) Last()       { it.it.Last() }
func (it *OrderStatIterator[T]) SeekGE(v T)  { it.it.SeekGE(v) }
func (it *OrderStatIterator[T]) Next()       { it.it.Next() }
func (it *OrderStatIterator[T]) Prev()       { it.it.Prev() }
func (it *OrderStatIterator[T]) Valid() bool { return it.it.Valid() }
func (it *OrderStatIterator[T]) Cur() T      { return it.it.Cur() }
func (it *OrderStatIterator[T]) Count() int  { return it.it.Count() }
