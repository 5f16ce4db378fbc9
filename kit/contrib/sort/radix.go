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

import (
	"unsafe"

	"github.com/ajroetker/go-sortkit/kit"
)

// Base-10 digits of signed values span -9..9.
const (
	radixBase    = 10
	radixOffset  = radixBase - 1
	radixBuckets = 2*radixBase - 1
)

// RadixSort sorts data in-place into ascending order and returns it.
//
// Each pass distributes the elements into 19 buckets keyed by the signed
// decimal digit at the current place, then writes them back from bucket -9
// through bucket 9. Distribution preserves arrival order, so after the pass
// for the most significant digit the slice is fully ordered. The sort stops
// at the first place past every element's most significant digit; a place
// where all digits are zero (as in 100, 200) is not enough.
func RadixSort[T kit.SignedInts](data []T) []T {
	if len(data) <= 1 {
		return data
	}

	var buckets [radixBuckets][]T
	limit := maxSigned[T]() / radixBase

	for place := T(1); ; place *= radixBase {
		consumed := true
		for _, v := range data {
			if v/place != 0 {
				consumed = false
				break
			}
		}
		if consumed {
			break
		}

		for _, v := range data {
			d := digitAt(v, place)
			buckets[d+radixOffset] = append(buckets[d+radixOffset], v)
		}
		flushBuckets(data, &buckets)

		// The next place would overflow T, and every digit there is zero.
		if place > limit {
			break
		}
	}
	return data
}

// digitAt returns the decimal digit of v at place, negative when v is.
// Truncated division keeps the sign and never overflows, even for the
// minimum value of T.
func digitAt[T kit.SignedInts](v, place T) int {
	return int((v / place) % radixBase)
}

// flushBuckets concatenates the buckets back into data in ascending digit
// order and empties them, keeping their capacity for the next pass.
func flushBuckets[T kit.SignedInts](data []T, buckets *[radixBuckets][]T) {
	i := 0
	for b := range buckets {
		i += copy(data[i:], buckets[b])
		buckets[b] = buckets[b][:0]
	}
}

// maxSigned returns the maximum representable value for T.
func maxSigned[T kit.SignedInts]() T {
	var zero T
	bits := unsafe.Sizeof(zero) * 8
	return T(uint64(1)<<(bits-1) - 1)
}
