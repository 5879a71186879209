package align_test

import (
	"fmt"

	"github.com/katalvlaran/seqalign/align"
)

// ExampleAligner_Global demonstrates the classic DNA scenario: two reads
// differing by one length-2 insertion, aligned with gap_open=-5,
// gap_extend=-1, match=2, mismatch=-1.
//
// Complexity: O(n·m) time, O(n) working memory.
func ExampleAligner_Global() {
	scoring, err := align.ScoringFromScores(-5, -1, 2, -1)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	res := align.NewAligner(scoring).Global([]byte("ATGATGATG"), []byte("ATGAATG"))
	sx, sy := res.AsStrings('-')
	fmt.Printf("score=%d\n%s\n%s\n", res.Score, sx, sy)
	// Output:
	// score=7
	// ATGATGATG
	// ATGA--ATG
}

// ExampleNewScoring demonstrates a custom substitution scorer: a closure
// wrapped in MatchFuncOf, here scoring case-insensitively.
func ExampleNewScoring() {
	upper := func(b byte) byte {
		if b >= 'a' && b <= 'z' {
			return b - 'a' + 'A'
		}

		return b
	}
	scoring, err := align.NewScoring(-2, -1, align.MatchFuncOf(func(a, b byte) align.Score {
		if upper(a) == upper(b) {
			return 1
		}

		return -1
	}))
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	res := align.NewAligner(scoring).Global([]byte("acgt"), []byte("ACGT"))
	fmt.Printf("score=%d ops=%v\n", res.Score, res.Ops)
	// Output:
	// score=4 ops=[Subst Subst Subst Subst]
}

// ExampleScoringFromScores_invalid shows the construction-time validation:
// penalties must be non-positive or the constructor fails fast.
func ExampleScoringFromScores_invalid() {
	_, err := align.ScoringFromScores(5, -1, 2, -1)
	fmt.Println(err)
	// Output:
	// align: invalid scoring: gap_open must be non-positive, got 5
}
