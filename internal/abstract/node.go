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

// Direction records which child of its parent a node is.
type Direction int8

const (
	Left Direction = iota
	Right
)

func (d Direction) String() string {
	if d == Left {
		return "L"
	}
	return "R"
}

// Node holds one distinct value of the multiset along with the number of
// times it occurs.
//
// A node owns its left and right children. The parent and next pointers are
// lookup-only references: parent points back up the tree and next points to
// the node holding the following value in sorted order, threading a chain
// through the tree which is independent of its shape.
type Node[T, A any] struct {
	value  T
	count  int
	height int
	dir    Direction
	aug    A

	left, right *Node[T, A]
	parent      *Node[T, A]
	next        *Node[T, A]
}

// Value returns the value held by the node.
func (n *Node[T, A]) Value() T { return n.value }

// Count returns the number of occurrences of the node's value.
func (n *Node[T, A]) Count() int { return n.count }

// GetA returns a pointer to the node's augmentation.
func (n *Node[T, A]) GetA() *A { return &n.aug }

// Left returns the left child, if any.
func (n *Node[T, A]) Left() *Node[T, A] { return n.left }

// Right returns the right child, if any.
func (n *Node[T, A]) Right() *Node[T, A] { return n.right }

// Parent returns the parent of the node, or nil for the root.
func (n *Node[T, A]) Parent() *Node[T, A] { return n.parent }

// Next returns the node holding the next value in sorted order, or nil if
// n holds the maximum value.
func (n *Node[T, A]) Next() *Node[T, A] { return n.next }

// Direction returns which child of its parent n is. The result is
// meaningless for the root.
func (n *Node[T, A]) Direction() Direction { return n.dir }

// IsLeaf returns whether the node has no children.
func (n *Node[T, A]) IsLeaf() bool { return n.left == nil && n.right == nil }

// Height returns the height of the subtree rooted at n. The height of a
// leaf is 1 and the height of a nil node is 0.
func (n *Node[T, A]) Height() int {
	if n == nil {
		return 0
	}
	return n.height
}

// MinNode returns the node with the smallest value in the subtree rooted
// at n.
func (n *Node[T, A]) MinNode() *Node[T, A] {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

// MaxNode returns the node with the largest value in the subtree rooted
// at n.
func (n *Node[T, A]) MaxNode() *Node[T, A] {
	if n == nil {
		return nil
	}
	for n.right != nil {
		n = n.right
	}
	return n
}

// InOrderPredecessor returns the node holding the previous value in sorted
// order by walking the tree. The chain only links forwards, so this is the
// way to step backwards.
func (n *Node[T, A]) InOrderPredecessor() *Node[T, A] {
	if n.left != nil {
		return n.left.MaxNode()
	}
	// Go up until we arrive from a right child.
	for n.parent != nil && n.dir == Left {
		n = n.parent
	}
	return n.parent
}

func (n *Node[T, A]) setLeft(c *Node[T, A]) {
	n.left = c
	if c != nil {
		c.parent = n
		c.dir = Left
	}
}

func (n *Node[T, A]) setRight(c *Node[T, A]) {
	n.right = c
	if c != nil {
		c.parent = n
		c.dir = Right
	}
}

func (n *Node[T, A]) child(d Direction) *Node[T, A] {
	if d == Left {
		return n.left
	}
	return n.right
}

func (n *Node[T, A]) copyValueFrom(o *Node[T, A]) {
	n.value = o.value
	n.count = o.count
}

func (n *Node[T, A]) updateHeight() (changed bool) {
	h := n.left.Height()
	if r := n.right.Height(); r > h {
		h = r
	}
	h++
	changed = h != n.height
	n.height = h
	return changed
}
