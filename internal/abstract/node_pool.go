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

import "sync"

type nodePool[T, A any] struct {
	pool sync.Pool
}

var syncPoolMap sync.Map

func getNodePool[T, A any]() *nodePool[T, A] {
	var nilNode *Node[T, A]
	v, ok := syncPoolMap.Load(nilNode)
	if !ok {
		v, _ = syncPoolMap.LoadOrStore(nilNode, newNodePool[T, A]())
	}
	return v.(*nodePool[T, A])
}

func newNodePool[T, A any]() *nodePool[T, A] {
	np := nodePool[T, A]{}
	np.pool = sync.Pool{
		New: func() interface{} {
			return new(Node[T, A])
		},
	}
	return &np
}

// getNode returns a detached node holding a single occurrence of v.
func (np *nodePool[T, A]) getNode(v T) *Node[T, A] {
	n := np.pool.Get().(*Node[T, A])
	n.value = v
	n.count = 1
	n.height = 1
	return n
}

// putNode clears n, dropping every reference it holds, and releases it
// into the pool.
func (np *nodePool[T, A]) putNode(n *Node[T, A]) {
	*n = Node[T, A]{}
	np.pool.Put(n)
}
