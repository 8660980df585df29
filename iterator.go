package multiset

import "github.com/ajwerner/multiset/internal/abstract"

// Iterator walks the distinct values of a Multiset in order.
type Iterator[T any] struct {
	it abstract.Iterator[T, struct{}]
}

func (it *Iterator[T]) First() { it.it.First() }

func (it *Iterator[T]) Last() { it.it.Last() }

// SeekGE positions the iterator at the first value >= v.
func (it *Iterator[T]) SeekGE(v T) { it.it.SeekGE(v) }

// SeekLT positions the iterator at the last value < v.
func (it *Iterator[T]) SeekLT(v T) { it.it.SeekLT(v) }

// Next moves to the following value in constant time.
func (it *Iterator[T]) Next() { it.it.Next() }

// Prev moves to the preceding value.
func (it *Iterator[T]) Prev() { it.it.Prev() }

func (it *Iterator[T]) Valid() bool { return it.it.Valid() }

// Cur returns the current value. The iterator must be valid.
func (it *Iterator[T]) Cur() T { return it.it.Cur() }

// Count returns the occurrences of the current value. The iterator must be
// valid.
func (it *Iterator[T]) Count() int { return it.it.Count() }
