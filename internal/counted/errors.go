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
	"errors"

	"github.com/ajwerner/multiset/internal/abstract"
)

var (
	// ErrNotFound is returned when removing a value which is not present.
	ErrNotFound = errors.New("value not present")

	// ErrCountExceeded is returned when removing more occurrences of a value
	// than are present.
	ErrCountExceeded = errors.New("not enough occurrences")

	// ErrInvalidCount is returned when a non-positive number of occurrences
	// is inserted or removed.
	ErrInvalidCount = errors.New("count must be positive")

	// ErrCorrupt is wrapped by errors returned from Verify.
	ErrCorrupt = abstract.ErrCorrupt
)
