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

package multiset_test

import (
	"fmt"

	"github.com/ajwerner/multiset"
)

func ExampleMultiset() {
	m := multiset.Make[int](multiset.WithBalancing(multiset.Unbalanced))
	for _, v := range []int{5, 3, 8, 3, 1} {
		m.Insert(v)
	}
	fmt.Println(m.Len(), m.Distinct())
	for v, n := range m.All() {
		fmt.Println(v, n)
	}
	m.RemoveAll(5)
	fmt.Println(m)

	// Output:
	// 5 4
	// 1 1
	// 3 2
	// 5 1
	// 8 1
	// (1:1)3:2(8:1)
}
