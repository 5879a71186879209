// Package handlers exposes the alignment engine over HTTP. It is a thin
// demo surface: every handler parses a request, calls the public aligner
// API, and renders the result — no alignment logic lives here.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/katalvlaran/seqalign/align"
)

// GapChar is the placeholder used when rendering gapped strings.
const GapChar = '-'

// GlobalAlignRequest carries the sequences and scoring parameters for a
// global alignment. Zero-valued scoring fields are valid (free gaps or
// neutral substitutions), so the defaults apply only when the whole block
// is absent; callers wanting classic DNA parameters can send
// {"gap_open":-5,"gap_extend":-1,"match":2,"mismatch":-1}.
type GlobalAlignRequest struct {
	X         string      `json:"x"`
	Y         string      `json:"y"`
	GapOpen   align.Score `json:"gap_open"`
	GapExtend align.Score `json:"gap_extend"`
	Match     align.Score `json:"match"`
	Mismatch  align.Score `json:"mismatch"`
}

// GlobalAlignResponse is the rendered alignment.
type GlobalAlignResponse struct {
	Score      align.Score `json:"score"`
	AlignedX   string      `json:"aligned_x"`
	AlignedY   string      `json:"aligned_y"`
	Operations []string    `json:"operations"`
}

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}

// GlobalAlignHandler handles POST /align: it validates the scoring
// parameters, runs the linear-space global aligner, and returns the score,
// the gapped strings, and the operation labels.
//
// Invalid scoring parameters map to 400 with the validation detail; the
// alignment itself is total and cannot fail.
func GlobalAlignHandler(w http.ResponseWriter, r *http.Request) {
	var req GlobalAlignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")

		return
	}

	scoring, err := align.ScoringFromScores(req.GapOpen, req.GapExtend, req.Match, req.Mismatch)
	if err != nil {
		if errors.Is(err, align.ErrInvalidScoring) {
			writeError(w, http.StatusBadRequest, err.Error())

			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())

		return
	}

	res := align.NewAligner(scoring).Global([]byte(req.X), []byte(req.Y))
	sx, sy := res.AsStrings(GapChar)

	ops := make([]string, len(res.Ops))
	for i, op := range res.Ops {
		ops[i] = op.String()
	}

	writeJSON(w, http.StatusOK, GlobalAlignResponse{
		Score:      res.Score,
		AlignedX:   sx,
		AlignedY:   sy,
		Operations: ops,
	})
}

// writeJSON renders v as a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError renders the uniform error envelope.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}
