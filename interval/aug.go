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

package interval

import "github.com/ajwerner/multiset/internal/abstract"

type aug[K any] struct {
	keyBound[K]
}

type updater[I, K any] struct {
	key, end func(I) K
	cmp      func(K, K) int
	hasEnd   func(I) bool
}

// Update recomputes the upper bound of the intervals rooted at n.
func (u *updater[I, K]) Update(
	n *abstract.Node[I, aug[K]], md abstract.UpdateMeta[I],
) (updated bool) {
	if md.Action == abstract.Increment {
		// Occurrence counts do not move bounds.
		return false
	}
	a := n.GetA()
	prev := a.keyBound
	a.keyBound = u.findUpperBound(n)
	return a.compare(u.cmp, prev) != 0
}

type keyBound[K any] struct {
	k         K
	inclusive bool
}

func (u *updater[I, K]) upperBound(interval I) keyBound[K] {
	if !u.hasEnd(interval) {
		return keyBound[K]{k: u.key(interval), inclusive: true}
	}
	return keyBound[K]{k: u.end(interval)}
}

func (u *updater[I, K]) findUpperBound(n *abstract.Node[I, aug[K]]) keyBound[K] {
	max := u.upperBound(n.Value())
	for _, c := range [...]*abstract.Node[I, aug[K]]{n.Left(), n.Right()} {
		if c == nil {
			continue
		}
		if ub := c.GetA().keyBound; max.compare(u.cmp, ub) < 0 {
			max = ub
		}
	}
	return max
}

func (b keyBound[K]) compare(cmp func(K, K) int, o keyBound[K]) int {
	c := cmp(b.k, o.k)
	if c != 0 {
		return c
	}
	if b.inclusive == o.inclusive {
		return 0
	}
	if b.inclusive {
		return 1
	}
	return -1
}

func (b keyBound[K]) contains(cmp func(K, K) int, o K) bool {
	c := cmp(o, b.k)
	if c == 0 {
		return b.inclusive
	}
	return c < 0
}
