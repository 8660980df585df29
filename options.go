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

package multiset

import (
	"log/slog"

	"github.com/ajwerner/multiset/internal/balance"
	"github.com/ajwerner/multiset/internal/counted"
)

// Option configures a multiset. Options are shared by the orderstat and
// interval packages.
type Option = counted.Option

// Balancing selects how the underlying tree keeps its height in check.
type Balancing = balance.Kind

const (
	// AVL is the default balancing.
	AVL = balance.AVL
	// Unbalanced never rotates, so the shape of the tree follows the
	// insertion order.
	Unbalanced = balance.None
)

// ParseBalancing parses "avl" or "none".
func ParseBalancing(s string) (Balancing, error) { return balance.ParseKind(s) }

// WithBalancing selects the balancing discipline.
func WithBalancing(b Balancing) Option { return counted.WithBalancing(b) }

// WithLogger sets a logger which receives debug records for values being
// added and removed, and errors from Verify.
func WithLogger(l *slog.Logger) Option { return counted.WithLogger(l) }
