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

import (
	"errors"
	"fmt"
)

// ErrCorrupt is wrapped by every error returned from Verify.
var ErrCorrupt = errors.New("tree invariant violated")

// Verify walks the whole tree and checks that the values are strictly
// ordered, that the chain visits every node in order, that counts are
// positive, that parent pointers, directions and cached heights are
// consistent and that the tree's counters match its contents.
func (t *Tree[T, A]) Verify() error {
	if t.root != nil && t.root.parent != nil {
		return fmt.Errorf("%w: root %v has parent %v", ErrCorrupt, t.root.value, t.root.parent.value)
	}
	var (
		s            nodeStack[T, A]
		prev         *Node[T, A]
		nodes, total int
	)
	for n := t.root; n != nil || s.len() > 0; {
		for ; n != nil; n = n.left {
			s.push(n)
		}
		n = s.pop()
		if err := t.verifyNode(n); err != nil {
			return err
		}
		if prev != nil {
			if t.cfg.cmp(prev.value, n.value) >= 0 {
				return fmt.Errorf("%w: %v is not less than %v", ErrCorrupt, prev.value, n.value)
			}
			if prev.next != n {
				return fmt.Errorf("%w: chain links %v to %v, want %v",
					ErrCorrupt, prev.value, valueOf(prev.next), n.value)
			}
		}
		prev = n
		nodes++
		total += n.count
		n = n.right
	}
	if prev != nil && prev.next != nil {
		return fmt.Errorf("%w: maximum %v links to %v", ErrCorrupt, prev.value, prev.next.value)
	}
	if nodes != t.length {
		return fmt.Errorf("%w: found %d nodes, tree reports %d", ErrCorrupt, nodes, t.length)
	}
	if total != t.total {
		return fmt.Errorf("%w: found %d occurrences, tree reports %d", ErrCorrupt, total, t.total)
	}
	return nil
}

func (t *Tree[T, A]) verifyNode(n *Node[T, A]) error {
	if n.count < 1 {
		return fmt.Errorf("%w: %v has count %d", ErrCorrupt, n.value, n.count)
	}
	for _, d := range [...]Direction{Left, Right} {
		c := n.child(d)
		if c == nil {
			continue
		}
		if c.parent != n || c.dir != d {
			return fmt.Errorf("%w: child %v of %v has parent %v direction %v",
				ErrCorrupt, c.value, n.value, valueOf(c.parent), c.dir)
		}
	}
	if h := 1 + max(n.left.Height(), n.right.Height()); h != n.height {
		return fmt.Errorf("%w: %v has height %d, want %d", ErrCorrupt, n.value, n.height, h)
	}
	return nil
}

func valueOf[T, A any](n *Node[T, A]) interface{} {
	if n == nil {
		return nil
	}
	return n.value
}
