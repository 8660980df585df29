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

package balance

import "github.com/ajwerner/multiset/internal/abstract"

type avl[T, A any] struct{}

// RebalanceIfNecessary fixes out-of-balance nodes on the path from n to the
// root.
func (avl[T, A]) RebalanceIfNecessary(t *abstract.Tree[T, A], n *abstract.Node[T, A]) {
	for ; n != nil; n = n.Parent() {
		t.Fix(n)
		switch b := balanceOf(n); {
		case b > 1:
			if balanceOf(n.Left()) < 0 {
				t.RotateLeft(n.Left())
			}
			n = t.RotateRight(n)
		case b < -1:
			if balanceOf(n.Right()) > 0 {
				t.RotateRight(n.Right())
			}
			n = t.RotateLeft(n)
		}
	}
}

func balanceOf[T, A any](n *abstract.Node[T, A]) int {
	return n.Left().Height() - n.Right().Height()
}
