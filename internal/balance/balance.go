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

// Package balance provides the rebalance hooks which the tree invokes after
// structural changes.
package balance

import (
	"fmt"
	"strings"

	"github.com/ajwerner/multiset/internal/abstract"
)

// Kind selects a balancing discipline.
type Kind int

const (
	// AVL keeps the heights of sibling subtrees within one of each other.
	AVL Kind = iota
	// None never rotates. The tree's shape depends on insertion order.
	None
)

func (k Kind) String() string {
	switch k {
	case AVL:
		return "avl"
	case None:
		return "none"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind parses the name of a Kind as returned by String.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "avl", "":
		return AVL, nil
	case "none", "unbalanced":
		return None, nil
	default:
		return 0, fmt.Errorf("unknown balancing %q", s)
	}
}

// New returns the Balancer for k. Unknown kinds panic.
func New[T, A any](k Kind) abstract.Balancer[T, A] {
	switch k {
	case AVL:
		return avl[T, A]{}
	case None:
		return abstract.Unbalanced[T, A]{}
	default:
		panic(fmt.Sprintf("unknown balancing %v", k))
	}
}
