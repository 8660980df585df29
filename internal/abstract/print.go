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
	"fmt"
	"strings"

	"github.com/xlab/treeprint"
)

// String returns a string description of the tree. The format is
// similar to the https://en.wikipedia.org/wiki/Newick_format.
func (t *Tree[T, A]) String() string {
	if t.length == 0 {
		return ";"
	}
	var b strings.Builder
	t.root.writeString(&b)
	return b.String()
}

func (n *Node[T, A]) writeString(b *strings.Builder) {
	if n.IsLeaf() {
		fmt.Fprintf(b, "%v:%d", n.value, n.count)
		return
	}
	b.WriteString("(")
	if n.left != nil {
		n.left.writeString(b)
	}
	b.WriteString(")")
	fmt.Fprintf(b, "%v:%d", n.value, n.count)
	b.WriteString("(")
	if n.right != nil {
		n.right.writeString(b)
	}
	b.WriteString(")")
}

// TreePrint renders the shape of the tree. Each node is labelled by label,
// or by its value, count and height if label is nil. Children carry their
// direction as metadata.
func (t *Tree[T, A]) TreePrint(label func(*Node[T, A]) string) treeprint.Tree {
	if label == nil {
		label = defaultLabel[T, A]
	}
	if t.root == nil {
		return treeprint.NewWithRoot("(empty)")
	}
	tp := treeprint.NewWithRoot(label(t.root))
	addChildren(tp, t.root, label)
	return tp
}

func addChildren[T, A any](
	tp treeprint.Tree, n *Node[T, A], label func(*Node[T, A]) string,
) {
	for _, c := range [...]*Node[T, A]{n.left, n.right} {
		if c == nil {
			continue
		}
		if c.IsLeaf() {
			tp.AddMetaNode(c.dir, label(c))
			continue
		}
		addChildren(tp.AddMetaBranch(c.dir, label(c)), c, label)
	}
}

func defaultLabel[T, A any](n *Node[T, A]) string {
	return fmt.Sprintf("%v ×%d (h=%d)", n.value, n.count, n.height)
}
