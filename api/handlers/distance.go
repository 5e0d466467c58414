package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/phyloflow/phyloflow-go/pkg/phyloflow"
)

// DistanceMatrixRequest represents a distance-matrix request.
type DistanceMatrixRequest struct {
	Sequences []SequenceInput `json:"sequences"`
}

// DistanceMatrixResponse carries the all-pairs distance matrix.
type DistanceMatrixResponse struct {
	SequenceIDs []string    `json:"sequence_ids"`
	Matrix      [][]float64 `json:"matrix"`
}

// DistanceMatrixHandler handles distance-matrix requests.
func DistanceMatrixHandler(w http.ResponseWriter, r *http.Request) {
	var req DistanceMatrixRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	seqs, err := toSequences(req.Sequences)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	matrix, err := phyloflow.BuildDistanceMatrix(seqs)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	writeJSON(w, DistanceMatrixResponse{
		SequenceIDs: matrix.SequenceIDs,
		Matrix:      matrix.Values,
	})
}
