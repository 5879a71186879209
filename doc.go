// Package seqalign is an in-memory toolkit for pairwise biological
// sequence alignment and lightweight protein sequence analysis.
//
// What is seqalign?
//
//	A small, deterministic, pure-Go library that brings together:
//		• align/   — optimal global alignment with affine gap penalties in
//		             linear space (Hirschberg's divide-and-conquer over
//		             Gotoh's recurrence, after Myers & Miller 1988)
//		• protein/ — amino-acid composition and isoelectric-point estimation
//		             from explicit pKa lookup tables
//
// Why choose seqalign?
//
//   - Exact optima — the linear-space engine returns the same score as a
//     full O(n·m)-memory dynamic program, verified property-by-property
//   - Linear working memory — two cost vectors over the second sequence
//     instead of a quadratic matrix, so chromosome-scale inputs fit
//   - Deterministic — fixed tie-breaking, no randomness, no goroutines
//   - Pure Go — no cgo, no hidden dependencies
//
// Quick example:
//
//	scoring, _ := align.ScoringFromScores(-5, -1, 2, -1)
//	res := align.NewAligner(scoring).Global([]byte("ATGATGATG"), []byte("ATGAATG"))
//	sx, sy := res.AsStrings('-')
//	// sx = "ATGATGATG"
//	// sy = "ATGA--ATG"
//
// See examples/ for runnable demos and cmd/alignd for a minimal HTTP
// front-end over the alignment engine.
//
//	go get github.com/katalvlaran/seqalign
package seqalign
