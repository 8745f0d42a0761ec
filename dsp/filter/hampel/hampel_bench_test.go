package hampel

import (
	"fmt"
	"math/rand/v2"
	"testing"
)

func benchInput(n int) []float64 {
	rng := rand.New(rand.NewPCG(42, 0))

	buf := make([]float64, n)
	for i := range buf {
		buf[i] = rng.NormFloat64()
		if rng.IntN(50) == 0 {
			buf[i] *= 1e3
		}
	}

	return buf
}

func BenchmarkProcessSample(b *testing.B) {
	for _, size := range []int{5, 15, 31} {
		b.Run(fmt.Sprintf("size%d", size), func(b *testing.B) {
			w, _ := New(size, 0, 3)

			b.ReportAllocs()

			for b.Loop() {
				w.ProcessSample(0.3)
			}
		})
	}
}

func BenchmarkProcessBlock(b *testing.B) {
	w, _ := New(15, 0, 3)
	buf := benchInput(1024)

	b.ReportAllocs()

	for b.Loop() {
		w.ProcessBlock(buf)
	}
}

func BenchmarkProcessSampleExtrapolation(b *testing.B) {
	w, _ := New(15, 0, 3, WithExtrapolation())

	b.ReportAllocs()

	// Alternating-sign input keeps every sample flagged, so each
	// iteration pays for the least-squares fit.
	x := 1e9
	for b.Loop() {
		w.ProcessSample(x)
		x = -x
	}
}
