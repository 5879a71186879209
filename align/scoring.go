package align

import "fmt"

// MatchFunc scores the pairing of two symbols, one from each sequence.
//
// Implementations must be pure functions of (a, b): the aligner queries
// them O(n·m) times and reorders sub-computations freely, so any hidden
// state would make results undefined.
type MatchFunc interface {
	Score(a, b byte) Score
}

// MatchFuncOf adapts an ordinary function to the MatchFunc interface, so
// closures and substitution-matrix lookups can be passed directly:
//
//	align.MatchFuncOf(func(a, b byte) align.Score { return blosum62[a][b] })
type MatchFuncOf func(a, b byte) Score

// Score implements MatchFunc.
func (f MatchFuncOf) Score(a, b byte) Score { return f(a, b) }

// MatchParams is a MatchFunc with constant match and mismatch scores.
type MatchParams struct {
	MatchScore    Score
	MismatchScore Score
}

// Score implements MatchFunc.
func (p MatchParams) Score(a, b byte) Score {
	if a == b {
		return p.MatchScore
	}

	return p.MismatchScore
}

// Scoring bundles the affine gap penalties with a substitution scorer.
// A gap of length k ≥ 1 costs GapOpen + GapExtend·k.
//
// Construct via NewScoring or ScoringFromScores; both enforce the sign
// invariants (GapOpen ≤ 0, GapExtend ≤ 0). A Scoring is immutable after
// construction and safe to share across any number of aligners.
type Scoring struct {
	GapOpen   Score
	GapExtend Score
	MatchFn   MatchFunc
}

// NewScoring builds a Scoring from gap penalties and an arbitrary
// substitution scorer.
//
// Returns an error wrapping ErrInvalidScoring if gapOpen > 0,
// gapExtend > 0, or matchFn is nil.
func NewScoring(gapOpen, gapExtend Score, matchFn MatchFunc) (*Scoring, error) {
	if gapOpen > 0 {
		return nil, fmt.Errorf("%w: gap_open must be non-positive, got %d", ErrInvalidScoring, gapOpen)
	}
	if gapExtend > 0 {
		return nil, fmt.Errorf("%w: gap_extend must be non-positive, got %d", ErrInvalidScoring, gapExtend)
	}
	if matchFn == nil {
		return nil, fmt.Errorf("%w: match function must not be nil", ErrInvalidScoring)
	}

	return &Scoring{GapOpen: gapOpen, GapExtend: gapExtend, MatchFn: matchFn}, nil
}

// ScoringFromScores builds a Scoring with constant match and mismatch
// scores, the common flat DNA/RNA parameterization.
//
// Returns an error wrapping ErrInvalidScoring if gapOpen > 0,
// gapExtend > 0, matchScore < 0, or mismatchScore > 0.
func ScoringFromScores(gapOpen, gapExtend, matchScore, mismatchScore Score) (*Scoring, error) {
	if matchScore < 0 {
		return nil, fmt.Errorf("%w: match score must be non-negative, got %d", ErrInvalidScoring, matchScore)
	}
	if mismatchScore > 0 {
		return nil, fmt.Errorf("%w: mismatch score must be non-positive, got %d", ErrInvalidScoring, mismatchScore)
	}

	return NewScoring(gapOpen, gapExtend, MatchParams{MatchScore: matchScore, MismatchScore: mismatchScore})
}
