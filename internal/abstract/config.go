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

// Config is used to configure the tree. It consists of a comparison function
// for values, the augmentation Updater and the rebalance hook. It is passed
// to the Balancer through the tree.
type Config[T, A any] struct {

	// Updater is used to update the augmentations of the tree.
	Updater Updater[T, A]

	// Balancer is invoked after every structural change.
	Balancer Balancer[T, A]

	cmp func(T, T) int
}

// Compare compares two values using the same comparison function as the Tree.
func (c *Config[T, A]) Compare(a, b T) int { return c.cmp(a, b) }

type config[T, A any] struct {
	Config[T, A]
	np *nodePool[T, A]
}

func makeConfig[T, A any](
	cmp func(T, T) int, up Updater[T, A], b Balancer[T, A],
) (c config[T, A]) {
	if up == nil {
		up = noopUpdater[T, A]{}
	}
	if b == nil {
		b = Unbalanced[T, A]{}
	}
	c.Updater = up
	c.Balancer = b
	c.cmp = cmp
	c.np = getNodePool[T, A]()
	return c
}

type noopUpdater[T, A any] struct{}

func (noopUpdater[T, A]) Update(*Node[T, A], UpdateMeta[T]) bool { return false }

// Unbalanced keeps heights and augmentations current without ever rotating,
// leaving a plain binary search tree. It is used when no Balancer is
// configured.
type Unbalanced[T, A any] struct{}

// RebalanceIfNecessary implements Balancer.
func (Unbalanced[T, A]) RebalanceIfNecessary(t *Tree[T, A], n *Node[T, A]) {
	for ; n != nil && t.Fix(n); n = n.parent {
	}
}
