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

package sort

import "github.com/ajroetker/go-sortkit/kit"

// QuickSort sorts data in-place into ascending order and returns it.
// The sort is not stable.
func QuickSort[T kit.Ordered](data []T) []T {
	partitionSection(data, 0, len(data)-1, lessOrdered[T])
	return data
}

// QuickSortFunc sorts data in-place in ascending order as determined by cmp,
// with the same contract as MergeSortFunc. The sort is not stable.
func QuickSortFunc[T any](data []T, cmp func(a, b T) int) []T {
	partitionSection(data, 0, len(data)-1, func(a, b T) bool { return cmp(a, b) < 0 })
	return data
}

// partitionSection sorts the inclusive range [start, end] around data[end].
func partitionSection[T any](data []T, start, end int, less func(a, b T) bool) {
	if start >= end {
		return
	}

	boundary := partitionLomuto(data, start, end, less)
	partitionSection(data, start, boundary-1, less)
	partitionSection(data, boundary+1, end, less)
}

// partitionLomuto moves every element strictly less than the pivot data[end]
// ahead of the returned index, and the pivot onto it.
// Elements equal to the pivot end up on its right.
func partitionLomuto[T any](data []T, start, end int, less func(a, b T) bool) int {
	pivot := data[end]
	boundary := start
	for i := start; i < end; i++ {
		if less(data[i], pivot) {
			data[boundary], data[i] = data[i], data[boundary]
			boundary++
		}
	}
	data[boundary], data[end] = data[end], data[boundary]
	return boundary
}
