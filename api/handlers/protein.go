package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/katalvlaran/seqalign/protein"
)

// ProteinRequest carries a protein sequence.
type ProteinRequest struct {
	Sequence string `json:"sequence"`
}

// IsoelectricPointResponse is the computed pI.
type IsoelectricPointResponse struct {
	IsoelectricPoint float64 `json:"isoelectric_point"`
}

// CompositionResponse maps single-letter residue codes to counts.
type CompositionResponse struct {
	Composition map[string]int `json:"composition"`
}

// IsoelectricPointHandler handles POST /protein/isoelectric-point.
func IsoelectricPointHandler(w http.ResponseWriter, r *http.Request) {
	var req ProteinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")

		return
	}

	pI, err := protein.IsoelectricPoint([]byte(req.Sequence))
	if err != nil {
		if errors.Is(err, protein.ErrEmptySequence) {
			writeError(w, http.StatusBadRequest, err.Error())

			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())

		return
	}

	writeJSON(w, http.StatusOK, IsoelectricPointResponse{IsoelectricPoint: pI})
}

// CompositionHandler handles POST /protein/composition.
func CompositionHandler(w http.ResponseWriter, r *http.Request) {
	var req ProteinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")

		return
	}

	counts := protein.CountAA([]byte(req.Sequence))
	comp := make(map[string]int, len(counts))
	for aa, n := range counts {
		comp[string(aa)] = n
	}

	writeJSON(w, http.StatusOK, CompositionResponse{Composition: comp})
}
