// Copyright 2018 The Cockroach Authors.
// Copyright 2021 Andrew Werner.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package abstract

// Iterator is responsible for search and traversal within a Tree. Forward
// steps follow the successor chain and cost O(1); backward steps walk the
// tree.
type Iterator[T, A any] struct {
	t *Tree[T, A]
	n *Node[T, A]
}

// Reset invalidates the iterator.
func (i *Iterator[T, A]) Reset() {
	i.n = nil
}

// SeekGE seeks to the first value greater-than or equal to the provided
// value.
func (i *Iterator[T, A]) SeekGE(v T) {
	i.Reset()
	for n := i.t.root; n != nil; {
		c := i.t.cfg.cmp(v, n.value)
		if c == 0 {
			i.n = n
			return
		}
		if c < 0 {
			i.n = n
			n = n.left
		} else {
			n = n.right
		}
	}
}

// SeekLT seeks to the last value less-than the provided value.
func (i *Iterator[T, A]) SeekLT(v T) {
	i.Reset()
	for n := i.t.root; n != nil; {
		if i.t.cfg.cmp(v, n.value) <= 0 {
			n = n.left
		} else {
			i.n = n
			n = n.right
		}
	}
}

// First seeks to the first value in the Tree.
func (i *Iterator[T, A]) First() {
	i.n = i.t.root.MinNode()
}

// Last seeks to the last value in the Tree.
func (i *Iterator[T, A]) Last() {
	i.n = i.t.root.MaxNode()
}

// Next positions the Iterator to the value immediately following
// its current position.
func (i *Iterator[T, A]) Next() {
	if i.n == nil {
		return
	}
	i.n = i.n.next
}

// Prev positions the Iterator to the value immediately preceding
// its current position.
func (i *Iterator[T, A]) Prev() {
	if i.n == nil {
		return
	}
	i.n = i.n.InOrderPredecessor()
}

// Valid returns whether the Iterator is positioned at a valid position.
func (i *Iterator[T, A]) Valid() bool {
	return i.n != nil
}

// Cur returns the value at the Iterator's current position. It is illegal
// to call Cur if the Iterator is not valid.
func (i *Iterator[T, A]) Cur() T {
	return i.n.value
}

// Count returns the number of occurrences of the value at the Iterator's
// current position. It is illegal to call Count if the Iterator is not
// valid.
func (i *Iterator[T, A]) Count() int {
	return i.n.count
}

// Node returns the node at the Iterator's current position.
func (i *Iterator[T, A]) Node() *Node[T, A] {
	return i.n
}

// SetNode positions the Iterator at n, which must belong to the Tree or be
// nil.
func (i *Iterator[T, A]) SetNode(n *Node[T, A]) {
	i.n = n
}
