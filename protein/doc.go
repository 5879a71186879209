// Package protein provides lightweight protein sequence analysis:
// amino-acid composition and isoelectric-point estimation.
//
// Overview:
//
//   - CountAA tallies the residue composition of a protein sequence.
//   - Charge evaluates the net charge of the sequence at a given pH from
//     per-residue side-chain pKa values plus the two terminal groups,
//     using the Henderson–Hasselbalch relation per ionizable group.
//   - IsoelectricPoint locates the pH at which the net charge crosses
//     zero by bisection over the 0–14 range.
//
// The pKa tables are explicit immutable package-level tables (see
// tables.go): side-chain values for K, R, H, D, E, C, Y, and terminal
// overrides keyed by the first respectively last residue, with defaults
// for everything else. Residues without an entry simply contribute no
// charge; the alphabet is not validated.
//
// Complexity:
//
//	– Time:  O(len(seq)) per Charge evaluation; IsoelectricPoint makes a
//	   fixed number of such evaluations.
//	– Space: O(distinct residues).
//
// Errors (sentinel):
//
//	– ErrEmptySequence if the input sequence has no residues (the termini
//	  would be undefined).
//
// Example usage:
//
//	pI, err := protein.IsoelectricPoint([]byte("MAEGEITTFTALTEKF"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("pI = %.2f\n", pI)
package protein
