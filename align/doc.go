// Package align computes optimal global alignments between two byte
// sequences under an affine gap-penalty model, in linear working memory.
//
// Overview:
//
//   - The engine combines Gotoh's affine-gap recurrence (1982) with
//     Hirschberg's divide-and-conquer technique (1975), as first put
//     together by Myers & Miller (1988): a cost-only forward sweep over the
//     left half of x meets a cost-only backward sweep over the right half,
//     the meeting column that maximizes the combined score is provably on
//     an optimal path, and both halves are then solved recursively.
//   - The full traceback is recovered without ever materializing the
//     O(n·m) dynamic-programming matrix: each sweep keeps two vectors of
//     length |y|+1 plus a handful of scalars.
//
// Scoring model:
//
//	A gap (maximal run of insertions or deletions) of length k costs
//	GapOpen + GapExtend·k, with both penalties non-positive. Substitution
//	scores come from a MatchFunc, either constant match/mismatch values
//	(MatchParams) or an arbitrary pure function of the two symbols
//	(MatchFuncOf), e.g. a substitution matrix lookup.
//
// Complexity:
//
//	– Time:  O(n·m) summed over the whole recursion (the divided
//	   sub-problems shrink geometrically, so the sweeps over all levels
//	   add up to a constant factor of one full matrix fill).
//	– Space: O(n) transient cost vectors per active call, recursion depth
//	   O(log m); no state is shared between calls.
//
// Determinism:
//
//	All tie-breaks are strict-greater comparisons, so equal-scoring
//	alternatives resolve to the earliest candidate and repeated calls
//	return identical operation sequences.
//
// Errors (sentinel):
//
//	– ErrInvalidScoring if a scoring constructor receives a positive gap
//	  penalty, a negative match score, a positive mismatch score, or a nil
//	  match function. Alignment itself is total: Global never fails, for
//	  any pair of (possibly empty) byte sequences.
//
// Numeric range:
//
//	Score is a 64-bit signed integer. Accumulated scores stay exact as
//	long as max(n,m) · max(|GapOpen|, |GapExtend|, |substitution score|)
//	stays below 2^62; beyond that the sweep's internal "impossible state"
//	seeds could be approached and results are unspecified.
//
// Example usage:
//
//	scoring, err := align.ScoringFromScores(-5, -1, 2, -1)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res := align.NewAligner(scoring).Global([]byte("ATGATGATG"), []byte("ATGAATG"))
//	sx, sy := res.AsStrings('-')
//	fmt.Println(res.Score) // 7
//	fmt.Println(sx)        // ATGATGATG
//	fmt.Println(sy)        // ATGA--ATG
package align
