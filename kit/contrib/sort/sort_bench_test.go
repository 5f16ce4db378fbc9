package sort

import (
	"math/rand"
	"slices"
	"testing"
)

// Generate random data for benchmarks
func generateInt64(n int) []int64 {
	data := make([]int64, n)
	for i := range data {
		data[i] = rand.Int63n(1000000) - 500000
	}
	return data
}

func generateFloat64(n int) []float64 {
	data := make([]float64, n)
	for i := range data {
		data[i] = rand.Float64() * 1000
	}
	return data
}

// MergeSort benchmarks
func BenchmarkMergeSort_Int64_100(b *testing.B) {
	benchmarkInt64(b, 100, MergeSort[int64])
}

func BenchmarkMergeSort_Int64_10000(b *testing.B) {
	benchmarkInt64(b, 10000, MergeSort[int64])
}

func BenchmarkMergeSort_Float64_10000(b *testing.B) {
	benchmarkFloat64(b, 10000, MergeSort[float64])
}

// RadixSort benchmarks
func BenchmarkRadixSort_Int64_100(b *testing.B) {
	benchmarkInt64(b, 100, RadixSort[int64])
}

func BenchmarkRadixSort_Int64_10000(b *testing.B) {
	benchmarkInt64(b, 10000, RadixSort[int64])
}

// QuickSort benchmarks
func BenchmarkQuickSort_Int64_100(b *testing.B) {
	benchmarkInt64(b, 100, QuickSort[int64])
}

func BenchmarkQuickSort_Int64_10000(b *testing.B) {
	benchmarkInt64(b, 10000, QuickSort[int64])
}

func BenchmarkQuickSort_Float64_10000(b *testing.B) {
	benchmarkFloat64(b, 10000, QuickSort[float64])
}

// Stdlib comparison
func BenchmarkStdlib_Int64_10000(b *testing.B) {
	benchmarkInt64(b, 10000, func(d []int64) []int64 { slices.Sort(d); return d })
}

func benchmarkInt64(b *testing.B, n int, sortFn func([]int64) []int64) {
	// Generate reference data
	ref := generateInt64(n)
	data := make([]int64, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		sortFn(data)
	}
}

func benchmarkFloat64(b *testing.B, n int, sortFn func([]float64) []float64) {
	ref := generateFloat64(n)
	data := make([]float64, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		sortFn(data)
	}
}
