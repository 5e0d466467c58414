package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// SequenceInfoResponse describes a validated sequence record.
type SequenceInfoResponse struct {
	ID        string `json:"id"`
	Kind      string `json:"kind"`
	Length    int    `json:"length"`
	Ambiguous int    `json:"ambiguous"`
	FASTA     string `json:"fasta"`
}

// SequenceInfoHandler validates a sequence and reports its properties.
func SequenceInfoHandler(w http.ResponseWriter, r *http.Request) {
	var in SequenceInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	seq, err := in.toSequence()
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	writeJSON(w, SequenceInfoResponse{
		ID:        seq.ID,
		Kind:      seq.Kind.String(),
		Length:    seq.Len(),
		Ambiguous: seq.CountAmbiguous(),
		FASTA:     seq.ToFASTA(),
	})
}

// ValidateResponse reports whether a sequence record is well-formed.
type ValidateResponse struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

// ValidateHandler checks a sequence against its declared alphabet.
func ValidateHandler(w http.ResponseWriter, r *http.Request) {
	var in SequenceInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if _, err := in.toSequence(); err != nil {
		writeJSON(w, ValidateResponse{Valid: false, Error: err.Error()})
		return
	}
	writeJSON(w, ValidateResponse{Valid: true})
}
