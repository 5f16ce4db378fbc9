// Copyright 2025 go-sortkit Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sort_test

import (
	"fmt"

	"github.com/ajroetker/go-sortkit/kit"
	"github.com/ajroetker/go-sortkit/kit/contrib/sort"
)

func ExampleMergeSort() {
	fmt.Println(sort.MergeSort([]int{5, 3, 4, 1, 2}))
	fmt.Println(sort.MergeSort([]int{}))
	// Output:
	// [1 2 3 4 5]
	// []
}

func ExampleRadixSort() {
	fmt.Println(sort.RadixSort([]int{16, -16, 0, 205, -3}))
	// Output: [-16 -3 0 16 205]
}

func ExampleQuickSort() {
	fmt.Println(sort.QuickSort([]int{9, -1, 0, 9, -3}))
	fmt.Println(sort.QuickSort([]int{7}))
	fmt.Println(sort.QuickSort([]int{5, 5, 5, 5}))
	// Output:
	// [-3 -1 0 9 9]
	// [7]
	// [5 5 5 5]
}

func ExampleSortWith() {
	alg, err := kit.ParseAlgorithm("MergeSort")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(alg, sort.SortWith(alg, []string{"pear", "fig", "apple"}))
	// Output: merge [apple fig pear]
}
