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

type Iterator[I, K any] struct {
	abstract.Iterator[I, aug[K]]

	t *abstract.Tree[I, aug[K]]
	u *updater[I, K]
	o overlapScan[I, K]
}

// An overlap scan visits the intervals overlapping the search interval in
// order. It relies on two properties of the tree:
// 1. intervals are sorted by their start key.
// 2. every node records the upper bound end key of the intervals in its
//    subtree.
//
// A subtree whose upper bound does not contain the start key of the search
// interval holds no overlapping interval and is skipped. Once the scan
// reaches an interval whose start key lies beyond the end of the search
// interval, no later interval can overlap and the scan terminates.
type overlapScan[I, K any] struct {
	set   bool
	start K
	upper keyBound[K]
}

func (o *overlapScan[I, K]) reset() {
	*o = overlapScan[I, K]{}
}

func (o *overlapScan[I, K]) empty() bool {
	return !o.set
}

func (i *Iterator[I, K]) Reset() {
	i.o.reset()
	i.Iterator.Reset()
}

// FirstOverlap seeks to the first interval that overlaps with the provided
// search interval.
func (i *Iterator[I, K]) FirstOverlap(bounds I) {
	i.Reset()
	i.o = overlapScan[I, K]{
		set:   true,
		start: i.u.key(bounds),
		upper: i.u.upperBound(bounds),
	}
	n, _ := i.firstIn(i.t.Root())
	i.SetNode(n)
}

// NextOverlap positions the iterator to the interval immediately following
// its current position that overlaps with the search interval.
func (i *Iterator[I, K]) NextOverlap() {
	if !i.Valid() {
		return
	}
	if i.o.empty() {
		// Invalid. Mixed overlap scan with non-overlap scan.
		i.Reset()
		return
	}
	n := i.Node()
	if r, done := i.firstIn(n.Right()); done {
		i.SetNode(r)
		return
	}
	for ; n.Parent() != nil; n = n.Parent() {
		if n.Direction() != abstract.Left {
			continue
		}
		p := n.Parent()
		if !i.o.upper.contains(i.u.cmp, i.u.key(p.Value())) {
			break
		}
		if i.overlaps(p) {
			i.SetNode(p)
			return
		}
		if r, done := i.firstIn(p.Right()); done {
			i.SetNode(r)
			return
		}
	}
	i.Reset()
}

// firstIn returns the first overlapping interval in the subtree rooted at n.
// It reports done once it found one or passed the end of the search
// interval.
func (i *Iterator[I, K]) firstIn(n *abstract.Node[I, aug[K]]) (_ *abstract.Node[I, aug[K]], done bool) {
	for n != nil {
		if !n.GetA().contains(i.u.cmp, i.o.start) {
			return nil, false
		}
		if r, done := i.firstIn(n.Left()); done {
			return r, true
		}
		if !i.o.upper.contains(i.u.cmp, i.u.key(n.Value())) {
			return nil, true
		}
		if i.overlaps(n) {
			return n, true
		}
		n = n.Right()
	}
	return nil, false
}

func (i *Iterator[I, K]) overlaps(n *abstract.Node[I, aug[K]]) bool {
	return i.u.upperBound(n.Value()).contains(i.u.cmp, i.o.start)
}
