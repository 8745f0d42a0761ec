package robust

import (
	"math/rand/v2"
	"testing"
)

func benchData(n int) []float64 {
	rng := rand.New(rand.NewPCG(42, 0))

	data := make([]float64, n)
	for i := range data {
		data[i] = rng.Float64()*2 - 1
	}

	return data
}

func BenchmarkMedian(b *testing.B) {
	data := benchData(31)

	b.ReportAllocs()

	for b.Loop() {
		Median(data)
	}
}

func BenchmarkMedianInPlace(b *testing.B) {
	data := benchData(31)
	scratch := make([]float64, len(data))

	b.ReportAllocs()

	for b.Loop() {
		copy(scratch, data)
		MedianInPlace(scratch)
	}
}

func BenchmarkMAD(b *testing.B) {
	data := benchData(31)

	b.ReportAllocs()

	for b.Loop() {
		MAD(data)
	}
}
