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

// The methods in this file are exposed to Balancer implementations within
// this module. They are not meant to be called by the container packages.

// Fix recomputes the cached height and the augmentation of n from its
// children. It returns whether either changed.
func (t *Tree[T, A]) Fix(n *Node[T, A]) (changed bool) {
	changed = n.updateHeight()
	if t.cfg.Updater.Update(n, UpdateMeta[T]{}) {
		changed = true
	}
	return changed
}

// Propagate updates the augmentation of n and then of its ancestors until an
// update reports no change. Heights are not touched.
func (t *Tree[T, A]) Propagate(n *Node[T, A], md UpdateMeta[T]) {
	for ; n != nil; n = n.parent {
		if !t.cfg.Updater.Update(n, md) {
			return
		}
	}
}

// RotateLeft rotates the subtree rooted at n to the left and returns the new
// subtree root, which was n's right child.
//
// Before:
//
//	    n
//	   / \
//	  a   r
//	     / \
//	    b   c
//
// After:
//
//	      r
//	     / \
//	    n   c
//	   / \
//	  a   b
//
// Rotations preserve the in-order sequence, so the chain is unaffected.
func (t *Tree[T, A]) RotateLeft(n *Node[T, A]) *Node[T, A] {
	r := n.right
	t.Replace(n, r)
	n.setRight(r.left)
	r.setLeft(n)
	t.fixRotated(n, r)
	return r
}

// RotateRight rotates the subtree rooted at n to the right and returns the
// new subtree root, which was n's left child. It mirrors RotateLeft.
func (t *Tree[T, A]) RotateRight(n *Node[T, A]) *Node[T, A] {
	l := n.left
	t.Replace(n, l)
	n.setLeft(l.right)
	l.setRight(n)
	t.fixRotated(n, l)
	return l
}

// fixRotated updates the demoted node before the promoted one, which now
// sits above it.
func (t *Tree[T, A]) fixRotated(demoted, promoted *Node[T, A]) {
	md := UpdateMeta[T]{Action: Rotation}
	demoted.updateHeight()
	t.cfg.Updater.Update(demoted, md)
	promoted.updateHeight()
	t.cfg.Updater.Update(promoted, md)
}
