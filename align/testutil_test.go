// Package align_test exercises the linear-space aligner through its public
// API only. This file holds the shared test machinery: the quadratic-space
// ground-truth oracle and the affine replay scorer that the property tests
// compare the engine against.
package align_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seqalign/align"
)

// negInf seeds unreachable states in the oracle; a quarter of the int64
// range keeps sums of two seeded values away from overflow.
const negInf align.Score = math.MinInt64 / 4

// fullMatrixScore computes the optimal global affine-gap score with the
// classic three-state Gotoh dynamic program over full O(n·m) matrices:
// C (best ending in match/substitution or the initial state), D (best
// ending in a deletion run), I (best ending in an insertion run). This is
// the ground-truth oracle the linear-space engine must agree with exactly.
func fullMatrixScore(sc *align.Scoring, x, y []byte) align.Score {
	m, n := len(x), len(y)
	c := makeMatrix(m+1, n+1)
	d := makeMatrix(m+1, n+1)
	ins := makeMatrix(m+1, n+1)

	c[0][0] = 0
	for i := 1; i <= m; i++ {
		d[i][0] = sc.GapOpen + sc.GapExtend*align.Score(i)
		c[i][0] = d[i][0]
	}
	for j := 1; j <= n; j++ {
		ins[0][j] = sc.GapOpen + sc.GapExtend*align.Score(j)
		c[0][j] = ins[0][j]
	}

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			d[i][j] = max(d[i-1][j], c[i-1][j]+sc.GapOpen) + sc.GapExtend
			ins[i][j] = max(ins[i][j-1], c[i][j-1]+sc.GapOpen) + sc.GapExtend
			diag := c[i-1][j-1] + sc.MatchFn.Score(x[i-1], y[j-1])
			c[i][j] = max(diag, max(d[i][j], ins[i][j]))
		}
	}

	return c[m][n]
}

// makeMatrix allocates an r×c matrix filled with negInf.
func makeMatrix(r, c int) [][]align.Score {
	mat := make([][]align.Score, r)
	for i := range mat {
		mat[i] = make([]align.Score, c)
		for j := range mat[i] {
			mat[i][j] = negInf
		}
	}

	return mat
}

// rescore replays res.Ops under sc's affine model and returns the total:
// substitution scores for Match/Subst, GapOpen+GapExtend·k for each maximal
// Del/Ins run of length k. It also enforces the structural invariants:
// exact consumption of both spans, Match only on equal symbols, Subst only
// on differing ones, and no None placeholder in a completed result.
func rescore(t *testing.T, sc *align.Scoring, res *align.Alignment) align.Score {
	t.Helper()

	var total align.Score
	i, j := res.XStart, res.YStart
	prev := align.None
	for _, op := range res.Ops {
		switch op {
		case align.Del:
			if prev != align.Del {
				total += sc.GapOpen
			}
			total += sc.GapExtend
			i++
		case align.Ins:
			if prev != align.Ins {
				total += sc.GapOpen
			}
			total += sc.GapExtend
			j++
		case align.Match:
			require.Equal(t, res.X[i], res.Y[j], "Match emitted for differing symbols at (%d,%d)", i, j)
			total += sc.MatchFn.Score(res.X[i], res.Y[j])
			i++
			j++
		case align.Subst:
			require.NotEqual(t, res.X[i], res.Y[j], "Subst emitted for equal symbols at (%d,%d)", i, j)
			total += sc.MatchFn.Score(res.X[i], res.Y[j])
			i++
			j++
		default:
			t.Fatalf("unexpected operation %v in completed alignment", op)
		}
		prev = op
	}
	require.Equal(t, res.XEnd, i, "operations must consume x exactly")
	require.Equal(t, res.YEnd, j, "operations must consume y exactly")

	return total
}

// randSeq draws a sequence of length n over alphabet using rng.
func randSeq(rng *rand.Rand, alphabet string, n int) []byte {
	seq := make([]byte, n)
	for i := range seq {
		seq[i] = alphabet[rng.Intn(len(alphabet))]
	}

	return seq
}

// stripGaps removes every gapChar from s.
func stripGaps(s string, gapChar byte) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != gapChar {
			out = append(out, s[i])
		}
	}

	return string(out)
}
