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

package kit

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Algorithm identifies one of the sorting algorithms in kit/contrib/sort.
type Algorithm int

const (
	// AlgorithmDefault lets the dispatcher choose based on the element type.
	AlgorithmDefault Algorithm = iota

	// AlgorithmMerge is the stable, buffered top-down merge sort.
	AlgorithmMerge

	// AlgorithmRadix is the base-10 LSD radix sort for signed integers.
	AlgorithmRadix

	// AlgorithmQuick is the in-place quicksort with last-element pivot.
	AlgorithmQuick
)

// ErrUnknownAlgorithm is returned by ParseAlgorithm for unrecognized names.
var ErrUnknownAlgorithm = errors.New("unknown sort algorithm")

// String returns a human-readable name for the algorithm.
func (a Algorithm) String() string {
	switch a {
	case AlgorithmDefault:
		return "default"
	case AlgorithmMerge:
		return "merge"
	case AlgorithmRadix:
		return "radix"
	case AlgorithmQuick:
		return "quick"
	default:
		return "unknown"
	}
}

// ParseAlgorithm maps a name as produced by String back to an Algorithm.
// Matching ignores case and surrounding whitespace; the "sort" suffix is
// accepted too, so "MergeSort" and "merge" are equivalent.
func ParseAlgorithm(name string) (Algorithm, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.TrimSuffix(s, "sort")
	switch s {
	case "default", "":
		return AlgorithmDefault, nil
	case "merge":
		return AlgorithmMerge, nil
	case "radix":
		return AlgorithmRadix, nil
	case "quick":
		return AlgorithmQuick, nil
	}
	return AlgorithmDefault, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// AlgorithmEnv reads the SORTKIT_ALGORITHM environment variable.
// Unset, empty, or unrecognized values report AlgorithmDefault.
func AlgorithmEnv() Algorithm {
	val := os.Getenv("SORTKIT_ALGORITHM")
	if val == "" {
		return AlgorithmDefault
	}
	a, err := ParseAlgorithm(val)
	if err != nil {
		return AlgorithmDefault
	}
	return a
}
