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

// Tree is a binary search tree of counted values with an in-order successor
// chain threaded through its nodes. The shape of the tree is governed by the
// configured Balancer and each node carries an augmentation maintained by
// the configured Updater.
//
// A Tree is not safe for concurrent use. Callers must serialize all
// operations, including reads performed while a mutation may be running.
type Tree[T, A any] struct {
	root   *Node[T, A]
	length int
	total  int
	cfg    config[T, A]
}

// MakeTree constructs a new Tree. A nil Updater leaves augmentations
// untouched and a nil Balancer never rotates.
func MakeTree[T, A any](
	cmp func(T, T) int, up Updater[T, A], b Balancer[T, A],
) Tree[T, A] {
	return Tree[T, A]{
		cfg: makeConfig(cmp, up, b),
	}
}

// Config returns the Tree's config.
func (t *Tree[T, A]) Config() *Config[T, A] { return &t.cfg.Config }

// Root returns the root node, or nil if the tree is empty.
func (t *Tree[T, A]) Root() *Node[T, A] { return t.root }

// Len returns the number of distinct values in the tree.
func (t *Tree[T, A]) Len() int { return t.length }

// Total returns the number of occurrences of all values in the tree.
func (t *Tree[T, A]) Total() int { return t.total }

// Height returns the height of the tree.
func (t *Tree[T, A]) Height() int { return t.root.Height() }

// First returns the node holding the smallest value.
func (t *Tree[T, A]) First() *Node[T, A] { return t.root.MinNode() }

// Last returns the node holding the largest value.
func (t *Tree[T, A]) Last() *Node[T, A] { return t.root.MaxNode() }

// Search returns the node holding v, or nil.
func (t *Tree[T, A]) Search(v T) *Node[T, A] {
	n := t.root
	for n != nil {
		c := t.cfg.cmp(v, n.value)
		switch {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n
		}
	}
	return nil
}

// Insert adds one occurrence of v. It returns the node holding v and
// whether that node was created by this call.
func (t *Tree[T, A]) Insert(v T) (n *Node[T, A], isNew bool) {
	t.total++
	if t.root == nil {
		t.root = t.cfg.np.getNode(v)
		t.length++
		t.Fix(t.root)
		return t.root, true
	}
	if n, isNew = t.insert(t.root, v); isNew {
		t.length++
	}
	return n, isNew
}

// Add adjusts the count of n by delta without changing the shape of the
// tree. The resulting count must be at least one; use DeleteNode to remove
// a value entirely.
func (t *Tree[T, A]) Add(n *Node[T, A], delta int) {
	n.count += delta
	t.total += delta
	t.Propagate(n, UpdateMeta[T]{Action: Increment, RelevantValue: n.value})
}

// DeleteNode removes n and every occurrence of its value from the tree. The
// caller guarantees that n belongs to this tree. After the call neither n
// nor any iterator positioned on it may be used.
func (t *Tree[T, A]) DeleteNode(n *Node[T, A]) {
	t.total -= n.count
	t.length--
	t.deleteNode(n)
}

// Reset removes all values from the tree, releasing its nodes for reuse.
func (t *Tree[T, A]) Reset() {
	var s nodeStack[T, A]
	if t.root != nil {
		s.push(t.root)
	}
	for s.len() > 0 {
		n := s.pop()
		if n.left != nil {
			s.push(n.left)
		}
		if n.right != nil {
			s.push(n.right)
		}
		t.cfg.np.putNode(n)
	}
	t.root = nil
	t.length = 0
	t.total = 0
}

// MakeIter returns a new Iterator object. It is not safe to continue using an
// Iterator after modifications are made to the tree. If modifications are made,
// create a new Iterator.
func (t *Tree[T, A]) MakeIter() Iterator[T, A] {
	return Iterator[T, A]{t: t}
}
