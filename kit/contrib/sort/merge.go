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

// MergeSort sorts data in-place into ascending order and returns it.
// Equal elements keep their relative input order.
func MergeSort[T kit.Ordered](data []T) []T {
	return mergeSortLess(data, lessOrdered[T])
}

// MergeSortFunc sorts data in-place in ascending order as determined by cmp,
// which must return a negative number when a < b, a positive number when
// a > b and zero when a == b. The sort is stable.
func MergeSortFunc[T any](data []T, cmp func(a, b T) int) []T {
	return mergeSortLess(data, func(a, b T) bool { return cmp(a, b) < 0 })
}

func mergeSortLess[T any](data []T, less func(a, b T) bool) []T {
	n := len(data)
	if n <= 1 {
		return data
	}

	// One buffer for the whole sort; conquer only touches buffer[start:end+1].
	buffer := make([]T, n)
	divide(data, buffer, 0, n-1, less)
	return data
}

// divide sorts the inclusive range [start, end].
func divide[T any](data, buffer []T, start, end int, less func(a, b T) bool) {
	if start >= end {
		return
	}
	middle := start + (end-start)/2
	divide(data, buffer, start, middle, less)
	divide(data, buffer, middle+1, end, less)
	conquer(data, buffer, start, middle, end, less)
}

// conquer merges the sorted runs [start, middle] and [middle+1, end].
func conquer[T any](data, buffer []T, start, middle, end int, less func(a, b T) bool) {
	left, right := start, middle+1
	k := start

	for left <= middle && right <= end {
		// Ties take from the left run.
		if less(data[right], data[left]) {
			buffer[k] = data[right]
			right++
		} else {
			buffer[k] = data[left]
			left++
		}
		k++
	}

	// Whatever remains of the right run is already in place.
	for left <= middle {
		buffer[k] = data[left]
		left++
		k++
	}

	copy(data[start:k], buffer[start:k])
}
