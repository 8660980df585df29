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

// Updater is used to update the augmentation of a node when the subtree
// rooted at that node changes.
type Updater[T, A any] interface {

	// Update should update the augmentation of the passed node, optionally
	// using the data in the UpdateMeta to optimize the update. The children
	// of n are already up to date when Update is called. If the augmentation
	// changed, and thus, changes should occur in the ancestors of the subtree
	// rooted at this node, return true.
	Update(n *Node[T, A], md UpdateMeta[T]) (changed bool)
}

// Balancer is the hook invoked by the tree after every structural change.
// The tree calls RebalanceIfNecessary exactly once per change, passing the
// deepest node whose subtree changed shape. Implementations are expected to
// walk towards the root, calling Fix on each node they visit, and may rotate
// using the tree's low-level methods.
type Balancer[T, A any] interface {
	RebalanceIfNecessary(t *Tree[T, A], n *Node[T, A])
}

// Action is used to classify the type of Update in order to permit various
// optimizations when updating the augmented state.
type Action int

const (

	// Default implies that no assumptions may be made with regards to the
	// change in state of the node and thus the augmented state should be
	// recalculated in full.
	Default Action = iota

	// Insertion indicates that a new node was added in the subtree.
	Insertion

	// Removal indicates that a node was removed from the subtree.
	Removal

	// Increment indicates that the count of a value in the subtree changed
	// without any change in shape.
	Increment

	// Rotation indicates that the node took part in a rotation. The set of
	// values below the new subtree root is unchanged.
	Rotation
)

var actionNames = [...]string{
	Default:   "default",
	Insertion: "insertion",
	Removal:   "removal",
	Increment: "increment",
	Rotation:  "rotation",
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "unknown"
}

// UpdateMeta is used to describe the update operation.
type UpdateMeta[T any] struct {

	// Action indicates the semantics of the below fields. If Default,
	// no fields will be populated.
	Action Action

	// RelevantValue is the value which was inserted, removed or incremented.
	RelevantValue T
}
