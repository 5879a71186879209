package align_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/seqalign/align"
)

// benchmarkGlobal aligns two pseudo-random DNA sequences of lengths n and m.
// It resets the timer after sequence generation so only the alignment is
// measured.
func benchmarkGlobal(b *testing.B, n, m int) {
	rng := rand.New(rand.NewSource(7))
	x := randSeq(rng, "ACGT", n)
	y := randSeq(rng, "ACGT", m)
	scoring, err := align.ScoringFromScores(-5, -1, 2, -1)
	if err != nil {
		b.Fatalf("scoring: %v", err)
	}
	aligner := align.NewAligner(scoring)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = aligner.Global(x, y)
	}
}

// BenchmarkGlobal_Small benchmarks a 100×100 alignment.
func BenchmarkGlobal_Small(b *testing.B) { benchmarkGlobal(b, 100, 100) }

// BenchmarkGlobal_Medium benchmarks a 1000×1000 alignment.
func BenchmarkGlobal_Medium(b *testing.B) { benchmarkGlobal(b, 1000, 1000) }

// BenchmarkGlobal_Asymmetric benchmarks a short query against a long target,
// the shape where linear memory matters most relative to a full matrix.
func BenchmarkGlobal_Asymmetric(b *testing.B) { benchmarkGlobal(b, 100, 5000) }
