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

// Package kit holds the element constraints and algorithm identifiers shared
// by the sorting packages under kit/contrib.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-sortkit/kit/contrib/sort"
//
//	data := []int{5, 3, 4, 1, 2}
//	sort.MergeSort(data) // data is now [1 2 3 4 5]
package kit

// Floats is a constraint for floating-point types.
//
// NaN breaks the total order the sorts rely on; callers must filter it out.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Ordered is a constraint for every type supporting < and ==.
type Ordered interface {
	Integers | Floats | ~string
}
