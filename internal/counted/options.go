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

package counted

import (
	"io"
	"log/slog"

	"github.com/ajwerner/multiset/internal/balance"
)

// Option configures a Set.
type Option func(*config)

type config struct {
	balancing balance.Kind
	logger    *slog.Logger
}

// WithBalancing selects the balancing discipline. The default is AVL.
func WithBalancing(k balance.Kind) Option {
	return func(c *config) { c.balancing = k }
}

// WithLogger sets the logger used for debug records and verification
// failures. By default nothing is logged.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func makeConfig(opts []Option) config {
	c := config{
		balancing: balance.AVL,
		logger:    discard,
	}
	for _, o := range opts {
		o(&c)
	}
	return c
}
