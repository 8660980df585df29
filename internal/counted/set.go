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

// Package counted implements the multiset operations shared by the public
// packages on top of the node mutation engine. It translates misuse, such as
// removing an absent value, into errors before reaching the engine, whose
// operations assume their preconditions hold.
package counted

import (
	"context"
	"fmt"
	"iter"
	"log/slog"

	"github.com/ajwerner/multiset/internal/abstract"
	"github.com/ajwerner/multiset/internal/balance"
)

// Set is a multiset of values with augmentation A.
type Set[T, A any] struct {
	t   abstract.Tree[T, A]
	log *slog.Logger
}

// Make constructs a Set ordered by cmp.
func Make[T, A any](cmp func(T, T) int, up abstract.Updater[T, A], opts []Option) Set[T, A] {
	c := makeConfig(opts)
	return Set[T, A]{
		t:   abstract.MakeTree[T, A](cmp, up, balance.New[T, A](c.balancing)),
		log: c.logger,
	}
}

// Tree exposes the underlying tree to the public packages.
func (s *Set[T, A]) Tree() *abstract.Tree[T, A] { return &s.t }

func (s *Set[T, A]) debug(msg string, v T, count int) {
	if s.log.Enabled(context.Background(), slog.LevelDebug) {
		s.log.Debug(msg, "value", v, "count", count, "distinct", s.t.Len())
	}
}

// Insert adds one occurrence of v and reports whether v was absent.
func (s *Set[T, A]) Insert(v T) bool {
	n, isNew := s.t.Insert(v)
	if isNew {
		s.debug("value added", v, n.Count())
	}
	return isNew
}

// InsertN adds k occurrences of v.
func (s *Set[T, A]) InsertN(v T, k int) error {
	if k < 1 {
		return fmt.Errorf("inserting %d occurrences of %v: %w", k, v, ErrInvalidCount)
	}
	n, isNew := s.t.Insert(v)
	if k > 1 {
		s.t.Add(n, k-1)
	}
	if isNew {
		s.debug("value added", v, n.Count())
	}
	return nil
}

// Remove removes one occurrence of v and reports whether v was present. It
// only reports absence; use RemoveN to observe the reason a removal failed.
func (s *Set[T, A]) Remove(v T) bool {
	return s.RemoveN(v, 1) == nil
}

// RemoveN removes k occurrences of v. Nothing is removed if v has fewer
// than k occurrences.
func (s *Set[T, A]) RemoveN(v T, k int) error {
	if k < 1 {
		return fmt.Errorf("removing %d occurrences of %v: %w", k, v, ErrInvalidCount)
	}
	n := s.t.Search(v)
	if n == nil {
		return fmt.Errorf("removing %v: %w", v, ErrNotFound)
	}
	switch c := n.Count(); {
	case c > k:
		s.t.Add(n, -k)
	case c == k:
		s.t.DeleteNode(n)
		s.debug("value removed", v, 0)
	default:
		return fmt.Errorf("removing %d occurrences of %v: %w (have %d)", k, v, ErrCountExceeded, c)
	}
	return nil
}

// RemoveAll removes every occurrence of v and returns how many there were.
func (s *Set[T, A]) RemoveAll(v T) int {
	n := s.t.Search(v)
	if n == nil {
		return 0
	}
	c := n.Count()
	s.t.DeleteNode(n)
	s.debug("value removed", v, 0)
	return c
}

// Count returns the number of occurrences of v.
func (s *Set[T, A]) Count(v T) int {
	if n := s.t.Search(v); n != nil {
		return n.Count()
	}
	return 0
}

// Contains reports whether v occurs at least once.
func (s *Set[T, A]) Contains(v T) bool { return s.t.Search(v) != nil }

// Len returns the total number of occurrences.
func (s *Set[T, A]) Len() int { return s.t.Total() }

// Distinct returns the number of distinct values.
func (s *Set[T, A]) Distinct() int { return s.t.Len() }

// Height returns the height of the underlying tree.
func (s *Set[T, A]) Height() int { return s.t.Height() }

// Min returns the smallest value.
func (s *Set[T, A]) Min() (v T, ok bool) {
	if n := s.t.First(); n != nil {
		return n.Value(), true
	}
	return v, false
}

// Max returns the largest value.
func (s *Set[T, A]) Max() (v T, ok bool) {
	if n := s.t.Last(); n != nil {
		return n.Value(), true
	}
	return v, false
}

// All yields each distinct value with its count in ascending order.
func (s *Set[T, A]) All() iter.Seq2[T, int] {
	return func(yield func(T, int) bool) {
		for n := s.t.First(); n != nil; n = n.Next() {
			if !yield(n.Value(), n.Count()) {
				return
			}
		}
	}
}

// Values yields every occurrence in ascending order, repeating each value
// as many times as it occurs.
func (s *Set[T, A]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := s.t.First(); n != nil; n = n.Next() {
			for i := 0; i < n.Count(); i++ {
				if !yield(n.Value()) {
					return
				}
			}
		}
	}
}

// Clear removes all values.
func (s *Set[T, A]) Clear() { s.t.Reset() }

// String returns a parenthesized rendering of the tree.
func (s *Set[T, A]) String() string { return s.t.String() }

// Dump renders the shape of the tree, one node per line.
func (s *Set[T, A]) Dump() string { return s.t.TreePrint(nil).String() }

// Verify checks the structural invariants of the underlying tree.
func (s *Set[T, A]) Verify() error {
	if err := s.t.Verify(); err != nil {
		s.log.Error("multiset verification failed", "err", err)
		return err
	}
	return nil
}
