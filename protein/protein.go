package protein

import (
	"errors"
	"math"
)

// ErrEmptySequence indicates a protein operation received no residues.
var ErrEmptySequence = errors.New("protein: sequence must be non-empty")

// Bisection bounds and termination for IsoelectricPoint: pH is physical in
// [0, 14]; 64 halvings push the interval far below any printable precision.
const (
	pHMin          = 0.0
	pHMax          = 14.0
	bisectionSteps = 64
)

// CountAA returns the amino-acid composition of seq: a map from residue
// byte to its number of occurrences. Unknown symbols are counted like any
// other; the alphabet is not validated.
func CountAA(seq []byte) map[byte]int {
	counts := make(map[byte]int)
	for _, aa := range seq {
		counts[aa]++
	}

	return counts
}

// Charge computes the net charge of seq at the given pH.
//
// Each ionizable side chain contributes via the Henderson–Hasselbalch
// relation: a positive group adds 1/(1+10^(pH−pKa)), a negative group
// subtracts 1/(1+10^(pKa−pH)). The amino and carboxyl termini contribute
// the same way, with their pKa taken from the terminal-override tables
// keyed by the first respectively last residue, falling back to the
// defaults. Residues without a table entry contribute nothing.
func Charge(seq []byte, pH float64) (float64, error) {
	if len(seq) == 0 {
		return 0, ErrEmptySequence
	}

	nTermPKa := nTermPKaDefault
	if pKa, ok := nTerminalPKa[seq[0]]; ok {
		nTermPKa = pKa
	}
	cTermPKa := cTermPKaDefault
	if pKa, ok := cTerminalPKa[seq[len(seq)-1]]; ok {
		cTermPKa = pKa
	}

	charge := positiveCharge(nTermPKa, pH) - negativeCharge(cTermPKa, pH)
	for aa, count := range CountAA(seq) {
		group, ok := sideChainPKa[aa]
		if !ok {
			continue
		}
		switch group.sign {
		case positive:
			charge += float64(count) * positiveCharge(group.pKa, pH)
		case negative:
			charge -= float64(count) * negativeCharge(group.pKa, pH)
		}
	}

	return charge, nil
}

// IsoelectricPoint estimates the pH at which seq carries zero net charge.
//
// Net charge is strictly decreasing in pH (every group loses protons as pH
// rises), so the zero crossing in [0, 14] is unique and found by bisection.
func IsoelectricPoint(seq []byte) (float64, error) {
	if len(seq) == 0 {
		return 0, ErrEmptySequence
	}

	lo, hi := pHMin, pHMax
	for i := 0; i < bisectionSteps; i++ {
		mid := (lo + hi) / 2
		charge, err := Charge(seq, mid)
		if err != nil {
			return 0, err
		}
		if charge > 0 {
			lo = mid
		} else {
			hi = mid
		}
	}

	return (lo + hi) / 2, nil
}

// positiveCharge is the protonated fraction of a basic group at pH.
func positiveCharge(pKa, pH float64) float64 {
	return 1 / (1 + math.Pow(10, pH-pKa))
}

// negativeCharge is the deprotonated fraction of an acidic group at pH.
func negativeCharge(pKa, pH float64) float64 {
	return 1 / (1 + math.Pow(10, pKa-pH))
}
