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

// Replace makes with take the place of n in n's parent, or become the root
// if n is the root. It assumes the replacement doesn't change the order of
// the remaining values other than removing the subtree previously at n. The
// fields of n itself are left untouched.
func (t *Tree[T, A]) Replace(n, with *Node[T, A]) {
	switch {
	case n.parent == nil:
		t.root = with
		if with != nil {
			with.parent = nil
		}
	case n.dir == Left:
		n.parent.setLeft(with)
	default:
		n.parent.setRight(with)
	}
}

// insert increments the count of v in the subtree rooted at n, creating a
// new node if v is absent. It returns the node for v and whether it is new.
func (t *Tree[T, A]) insert(n *Node[T, A], v T) (*Node[T, A], bool) {
	for {
		c := t.cfg.cmp(v, n.value)
		switch {
		case c == 0:
			n.count++
			t.Propagate(n, UpdateMeta[T]{Action: Increment, RelevantValue: v})
			return n, false
		case c < 0:
			if n.left == nil {
				return t.insertLeftChild(n, v), true
			}
			n = n.left
		default:
			if n.right == nil {
				return t.insertRightChild(n, v), true
			}
			n = n.right
		}
	}
}

// insertLeftChild adds v as the left child of p. The new node sits between
// p's in-order predecessor and p in the chain.
func (t *Tree[T, A]) insertLeftChild(p *Node[T, A], v T) *Node[T, A] {
	pred := p.InOrderPredecessor()
	n := t.newNode(v)
	p.setLeft(n)
	if pred != nil {
		pred.next = n
	}
	n.next = p
	t.cfg.Balancer.RebalanceIfNecessary(t, p)
	return n
}

// insertRightChild adds v as the right child of p. The new node sits between
// p and p's previous successor in the chain.
func (t *Tree[T, A]) insertRightChild(p *Node[T, A], v T) *Node[T, A] {
	n := t.newNode(v)
	p.setRight(n)
	n.next = p.next
	p.next = n
	t.cfg.Balancer.RebalanceIfNecessary(t, p)
	return n
}

func (t *Tree[T, A]) newNode(v T) *Node[T, A] {
	n := t.cfg.np.getNode(v)
	t.cfg.Updater.Update(n, UpdateMeta[T]{Action: Insertion, RelevantValue: v})
	return n
}

// deleteNode removes n from the tree structure and the chain.
//
// A node with two children is not detached. Instead it takes the value and
// count of a donor, the in-order predecessor when the left subtree is
// strictly taller and the in-order successor otherwise, and the donor, which
// has at most one child, is removed in its place.
func (t *Tree[T, A]) deleteNode(n *Node[T, A]) {
	if n.left != nil && n.right != nil {
		if n.left.Height() > n.right.Height() {
			donor := n.left.MaxNode()
			n.copyValueFrom(donor)
			t.deleteNode(donor)
		} else {
			donor := n.right.MinNode()
			n.copyValueFrom(donor)
			n.next = donor.next
			t.deleteNode(donor)
		}
		// The value at n changed, which the rebalance pass below the donor
		// may not have reached.
		t.Propagate(n, UpdateMeta[T]{Action: Removal, RelevantValue: n.value})
		return
	}

	pred := n.InOrderPredecessor()
	parent := n.parent
	if n.left != nil {
		t.Replace(n, n.left)
	} else {
		// Either the only child or nil.
		t.Replace(n, n.right)
	}
	if pred != nil {
		pred.next = n.next
	}
	if parent != nil {
		t.cfg.Balancer.RebalanceIfNecessary(t, parent)
	}
	t.cfg.np.putNode(n)
}
