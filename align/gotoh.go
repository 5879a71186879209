// Package align - linear-space global alignment engine.
//
// This file holds the whole Myers–Miller machinery:
//
//   - costOnly: Gotoh's affine-gap recurrence evaluated with two vectors
//     and a handful of scalars, forward or mirrored.
//   - findMid: reconciles a forward sweep over x[:m/2] with a backward
//     sweep over x[m/2:] to locate a column on an optimal path, deciding
//     whether the two halves join through a substitution state or through
//     a deletion run that spans the split.
//   - alignRecursive: the divide-and-conquer assembler, threading the
//     terminal gap-open contributions tb/te so that a gap already open at
//     a sub-problem boundary is charged exactly once overall.
//   - oneRow: closed-form base case for a single symbol of x.
//
// Contracts:
//   - scoring penalties are non-positive (enforced at construction).
//   - MatchFn is pure; sub-problems are evaluated in arbitrary order.
//   - every tie-break is strict-greater, keeping the earliest candidate,
//     which makes the recursion's composition deterministic.
package align

import "math"

// minScore seeds unreachable deletion/insertion states. A quarter of the
// int64 range keeps any sum of two seeded values far from overflow.
const minScore Score = math.MinInt64 / 4

// Aligner computes global alignments under a fixed Scoring. It holds no
// mutable state, so a single Aligner may serve concurrent callers.
type Aligner struct {
	scoring *Scoring
}

// NewAligner binds an Aligner to scoring. The scoring must come from
// NewScoring or ScoringFromScores; it is shared read-only by every call.
func NewAligner(scoring *Scoring) *Aligner {
	return &Aligner{scoring: scoring}
}

// Global aligns x against y end to end and returns the optimal alignment.
//
// Global is total: it never fails, for any pair of byte sequences.
// Aligning empty against empty yields zero operations and score 0.
// The returned Alignment borrows x and y; see Alignment for lifetime.
//
// Complexity: O(len(x)·len(y)) time, O(len(y)) working memory.
func (a *Aligner) Global(x, y []byte) *Alignment {
	ops := a.alignRecursive(x, y, a.scoring.GapOpen, a.scoring.GapOpen)
	// The recursion emits operations only; the score comes from one full
	// forward sweep, which is also the oracle the recursion must agree with.
	cc, _ := a.costOnly(x, y, false, a.scoring.GapOpen)

	return &Alignment{
		Ops:   ops,
		Score: cc[len(y)],
		X:     x,
		Y:     y,
		XEnd:  len(x),
		YEnd:  len(y),
	}
}

// alignRecursive solves the sub-problem (x, y, tb, te) and returns its
// operation sequence in left-to-right order.
//
// tb and te are the gap-open contributions charged when a deletion run
// touches the left respectively right boundary of this sub-problem: 0 when
// the parent already paid the opening for a run continuing across the
// boundary, GapOpen when a run starting here must pay its own opening.
func (a *Aligner) alignRecursive(x, y []byte, tb, te Score) []Op {
	m, n := len(x), len(y)
	switch {
	case n == 0:
		return opRun(Del, m)
	case m == 0:
		return opRun(Ins, n)
	case m == 1:
		return a.oneRow(x[0], y, tb, te)
	}

	imid, jmid, joinByDeletion := a.findMid(x, y, m, n, tb, te)
	if joinByDeletion {
		// Rows imid-1 and imid straddle the join inside one deletion run,
		// so both are indels by construction: emit them directly and hand
		// each half a zero terminal opening on its run side.
		left := a.alignRecursive(x[:imid-1], y[:jmid], tb, 0)
		right := a.alignRecursive(x[imid+1:], y[jmid:], 0, te)
		ops := make([]Op, 0, len(left)+2+len(right))
		ops = append(ops, left...)
		ops = append(ops, Del, Del)

		return append(ops, right...)
	}

	// Joining through the substitution state: each half may open its own
	// gap at the junction (no run crosses it), so the left half exits and
	// the right half enters with a full GapOpen; the outer terminals tb
	// and te stay with their own sides.
	left := a.alignRecursive(x[:imid], y[:jmid], tb, a.scoring.GapOpen)
	right := a.alignRecursive(x[imid:], y[jmid:], a.scoring.GapOpen, te)

	return append(left, right...)
}

// findMid splits x at imid = m/2 and locates the column jmid at which an
// optimal path crosses row imid, by combining a forward cost sweep over the
// upper half with a mirrored sweep over the lower half.
//
// joinByDeletion reports whether the optimum joins through the deletion
// state; in that case the two halves each charged an opening for what is
// one continuous gap, hence the single GapOpen subtracted from the
// deletion-join candidate.
func (a *Aligner) findMid(x, y []byte, m, n int, tb, te Score) (imid, jmid int, joinByDeletion bool) {
	imid = m / 2
	ccUpper, ddUpper := a.costOnly(x[:imid], y, false, tb)
	ccLower, ddLower := a.costOnly(x[imid:], y, true, te)

	best := minScore
	for j := 0; j <= n; j++ {
		if c := ccUpper[j] + ccLower[n-j]; c > best {
			best, jmid, joinByDeletion = c, j, false
		}
		if d := ddUpper[j] + ddLower[n-j] - a.scoring.GapOpen; d > best {
			best, jmid, joinByDeletion = d, j, true
		}
	}

	return imid, jmid, joinByDeletion
}

// costOnly runs Gotoh's recurrence over x against y and returns, for every
// column j in 0..len(y), the best attainable score ending at that column:
// cc[j] for paths ending in a match/substitution (or the initial state),
// dd[j] for paths ending in an open deletion run.
//
// rev mirrors both sequences, so a reversed sweep over the lower half lands
// in the same coordinate space as the forward sweep over the upper half.
// tx is the gap-open contribution seeding column 0, supplied by the caller
// so that a deletion run already open at this sub-problem's boundary is not
// charged a second opening.
//
// Space: two vectors of length len(y)+1 plus four scalars.
func (a *Aligner) costOnly(x, y []byte, rev bool, tx Score) (cc, dd []Score) {
	m := len(x) + 1
	n := len(y) + 1
	gapOpen, gapExtend := a.scoring.GapOpen, a.scoring.GapExtend
	cc = make([]Score, n)
	dd = make([]Score, n)

	var (
		e Score // I(i, j-1): best score ending in an open insertion run
		c Score // C(i, j-1): best score in the current row, previous column
		s Score // C(i-1, j-1): the diagonal predecessor of cc[j]
		t Score // running affine gap cost along row/column 0
	)

	t = gapOpen
	for j := 1; j < n; j++ {
		t += gapExtend
		cc[j] = t
		dd[j] = minScore // no deletion can end in row 0
	}
	t = tx
	for i := 1; i < m; i++ {
		s = cc[0]
		t += gapExtend
		c = t
		cc[0] = c
		e = minScore
		for j := 1; j < n; j++ {
			e = max(e, c+gapOpen) + gapExtend
			dd[j] = max(dd[j], cc[j]+gapOpen) + gapExtend // cc[j] is still C(i-1, j) here
			var xi, yj byte
			if rev {
				xi, yj = x[m-i-1], y[n-j-1]
			} else {
				xi, yj = x[i-1], y[j-1]
			}
			c = max(max(dd[j], e), s+a.scoring.MatchFn.Score(xi, yj))
			s = cc[j]
			cc[j] = c
		}
	}
	dd[0] = cc[0] // otherwise indels meeting the boundary would be free

	return cc, dd
}

// oneRow solves the m == 1 base case in closed form: a single symbol x0
// against y, with terminal gap-open contributions tb and te.
//
// Two shapes are possible: x0 as a pure deletion beside len(y) insertions,
// or x0 paired with exactly one position of y and the rest absorbed as
// insertions. An interior pairing splits the insertion run in two and
// therefore pays one extra opening; a boundary pairing does not. Ties keep
// the indels-only shape.
func (a *Aligner) oneRow(x0 byte, y []byte, tb, te Score) []Op {
	n := len(y)
	gapOpen, gapExtend := a.scoring.GapOpen, a.scoring.GapExtend

	// The deletion run touches whichever boundary offers the better
	// terminal opening; the insertion run always opens fresh.
	scoreByIndelsOnly := max(tb, te) + gapExtend*Score(n+1) + gapOpen
	best := scoreByIndelsOnly

	maxj := 0
	for j := 0; j < n; j++ {
		score := a.scoring.MatchFn.Score(x0, y[j])
		if n > 1 {
			// One insertion run of n-1 symbols when x0 pairs at a boundary,
			// a second opening when an interior pairing splits it in two.
			score += gapOpen + Score(n-1)*gapExtend
			if j != 0 && j != n-1 {
				score += gapOpen
			}
		}
		if score > best {
			best = score
			maxj = j
		}
	}

	if best == scoreByIndelsOnly {
		ops := make([]Op, 0, n+1)
		// The deletion must sit at the boundary whose terminal credit was
		// taken, so an open run in the parent can absorb it.
		if tb >= te {
			ops = append(ops, Del)

			return append(ops, opRun(Ins, n)...)
		}
		ops = append(ops, opRun(Ins, n)...)

		return append(ops, Del)
	}

	ops := make([]Op, 0, n)
	ops = append(ops, opRun(Ins, maxj)...)
	if x0 == y[maxj] {
		ops = append(ops, Match)
	} else {
		ops = append(ops, Subst)
	}

	return append(ops, opRun(Ins, n-maxj-1)...)
}

// opRun returns k copies of op.
func opRun(op Op, k int) []Op {
	ops := make([]Op, k)
	for i := range ops {
		ops[i] = op
	}

	return ops
}
