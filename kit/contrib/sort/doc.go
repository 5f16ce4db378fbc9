// Package sort provides three textbook sorting algorithms over slices:
// a stable merge sort, a base-10 radix sort for signed integers, and a
// Lomuto-partition quicksort.
//
// Every function sorts in place into ascending order and returns the same
// slice, so calls can be chained or used inline:
//
//	fmt.Println(sort.QuickSort([]int{9, -1, 0, 9, -3})) // [-3 -1 0 9 9]
//
// # Algorithms
//
//   - MergeSort: top-down divide and conquer, O(n log n) time. Stable. A
//     single scratch buffer of len(data) is allocated per call and shared by
//     every merge step.
//   - RadixSort: least-significant-digit bucket distribution in base 10,
//     O(k*n) where k is the digit count of the largest magnitude. Negative
//     values land in buckets -9..-1 which are emptied before 0..9.
//   - QuickSort: last element as pivot, elements equal to the pivot stay on
//     the right. O(n log n) average, O(n^2) on sorted, reverse-sorted and
//     all-equal input. No allocation beyond the recursion stack.
//
// # Supported Types
//
// MergeSort and QuickSort accept any kit.Ordered type (integers, floats,
// strings). RadixSort accepts kit.SignedInts only. Floats must not contain
// NaN.
//
// # Dispatch
//
// Sort picks RadixSort for signed integer element types and QuickSort for
// everything else. The SORTKIT_ALGORITHM environment variable overrides the
// choice; SortWith selects explicitly.
//
// None of the functions are safe for concurrent use on the same slice.
package sort
