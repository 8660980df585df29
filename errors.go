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

import "github.com/ajwerner/multiset/internal/counted"

// Errors returned by the multisets in this module. Check them with
// errors.Is.
var (
	ErrNotFound      = counted.ErrNotFound
	ErrCountExceeded = counted.ErrCountExceeded
	ErrInvalidCount  = counted.ErrInvalidCount
	ErrCorrupt       = counted.ErrCorrupt
)
