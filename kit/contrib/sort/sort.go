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

// Sort sorts data in-place using the algorithm best suited to the type:
//   - Signed integers (int, int8, int16, int32, int64): RadixSort
//   - Everything else: QuickSort
//
// The SORTKIT_ALGORITHM environment variable ("merge", "radix", "quick")
// overrides the choice. For explicit algorithm selection, use SortWith or
// call MergeSort, RadixSort or QuickSort directly.
func Sort[T kit.Ordered](data []T) []T {
	return SortWith(kit.AlgorithmEnv(), data)
}

// SortWith sorts data in-place with the given algorithm and returns it.
//
// AlgorithmRadix only applies to the predeclared signed integer types; for
// any other element type it falls back to MergeSort. AlgorithmDefault and
// unknown values behave like Sort without an override.
func SortWith[T kit.Ordered](alg kit.Algorithm, data []T) []T {
	if len(data) <= 1 {
		return data
	}

	switch alg {
	case kit.AlgorithmMerge:
		return MergeSort(data)
	case kit.AlgorithmQuick:
		return QuickSort(data)
	case kit.AlgorithmRadix:
		if !radixSortAny(data) {
			MergeSort(data)
		}
		return data
	}

	if !radixSortAny(data) {
		QuickSort(data)
	}
	return data
}

// radixSortAny runs RadixSort when data has a signed integer element type
// and reports whether it did.
func radixSortAny[T kit.Ordered](data []T) bool {
	switch d := any(data).(type) {
	case []int:
		RadixSort(d)
	case []int8:
		RadixSort(d)
	case []int16:
		RadixSort(d)
	case []int32:
		RadixSort(d)
	case []int64:
		RadixSort(d)
	default:
		return false
	}
	return true
}

func lessOrdered[T kit.Ordered](a, b T) bool {
	return a < b
}

// IsSorted reports whether data is in non-decreasing order.
func IsSorted[T kit.Ordered](data []T) bool {
	for i := 1; i < len(data); i++ {
		if data[i] < data[i-1] {
			return false
		}
	}
	return true
}
