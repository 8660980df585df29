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

// nodeStack is a stack of nodes used for traversals which must not recurse,
// such as releasing or verifying a tree which may be arbitrarily deep when
// no balancing is configured.
type nodeStack[T, A any] struct {
	a    nodeStackArr[T, A]
	aLen int16 // -1 when using s
	s    []*Node[T, A]
}

const nodeStackDepth = 16

// Used to avoid allocations for stacks below a certain size.
type nodeStackArr[T, A any] [nodeStackDepth]*Node[T, A]

func (ns *nodeStack[T, A]) push(n *Node[T, A]) {
	if ns.aLen == -1 {
		ns.s = append(ns.s, n)
	} else if int(ns.aLen) == len(ns.a) {
		ns.s = make([]*Node[T, A], int(ns.aLen)+1, 2*int(ns.aLen))
		copy(ns.s, ns.a[:])
		ns.s[int(ns.aLen)] = n
		ns.aLen = -1
	} else {
		ns.a[ns.aLen] = n
		ns.aLen++
	}
}

func (ns *nodeStack[T, A]) pop() *Node[T, A] {
	if ns.aLen == -1 {
		n := ns.s[len(ns.s)-1]
		ns.s = ns.s[:len(ns.s)-1]
		return n
	}
	ns.aLen--
	return ns.a[ns.aLen]
}

func (ns *nodeStack[T, A]) len() int {
	if ns.aLen == -1 {
		return len(ns.s)
	}
	return int(ns.aLen)
}
