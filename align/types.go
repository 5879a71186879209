package align

// Score is the integer type used for all alignment scores and penalties.
// 64 bits keep long-sequence accumulations exact; see the package
// documentation for the safe range.
type Score = int64

// Op is a single alignment operation, consuming symbols from x (the first
// sequence), y (the second sequence), or both.
type Op uint8

const (
	// None is a no-op placeholder; it is never emitted in a completed
	// alignment and exists only as the zero value of Op.
	None Op = iota

	// Match consumes one equal symbol from each sequence.
	Match

	// Subst consumes one differing symbol from each sequence.
	Subst

	// Del consumes one symbol from x only (a gap in y).
	Del

	// Ins consumes one symbol from y only (a gap in x).
	Ins
)

// String returns a short human-readable name for the operation.
func (op Op) String() string {
	switch op {
	case Match:
		return "Match"
	case Subst:
		return "Subst"
	case Del:
		return "Del"
	case Ins:
		return "Ins"
	case None:
		return "None"
	default:
		return "Op(invalid)"
	}
}

// Alignment is the result of a pairwise alignment.
//
// Invariant: replaying Ops from (XStart, YStart) consumes exactly
// XEnd−XStart symbols of X and YEnd−YStart symbols of Y, in order, and
// re-scoring Ops under the Scoring that produced the result (substitution
// scores plus GapOpen+GapExtend·k for each maximal Del/Ins run of length k)
// reproduces Score.
//
// X and Y are the caller's original slices, borrowed, never copied or
// mutated; the Alignment is valid only as long as the caller keeps them
// alive and unmodified.
type Alignment struct {
	// Ops is the operation sequence realizing Score, left to right.
	Ops []Op

	// Score is the optimal global alignment score.
	Score Score

	// X and Y are views of the aligned sequences.
	X, Y []byte

	// XStart, YStart, XEnd, YEnd delimit the aligned spans. For global
	// alignment the starts are 0 and the ends are the full lengths.
	XStart, YStart int
	XEnd, YEnd     int
}
