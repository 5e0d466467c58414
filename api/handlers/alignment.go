package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/phyloflow/phyloflow-go/pkg/phyloflow"
)

// AlignmentRequest represents an alignment request.
type AlignmentRequest struct {
	Sequence1 SequenceInput `json:"sequence1"`
	Sequence2 SequenceInput `json:"sequence2"`

	// Match, Mismatch and Gap override the nucleotide scheme; Gap alone
	// applies when the sequences are proteins
	Match    *int `json:"match,omitempty"`
	Mismatch *int `json:"mismatch,omitempty"`
	Gap      *int `json:"gap,omitempty"`
}

// AlignmentResponse represents the response for alignment.
type AlignmentResponse struct {
	AlignedSeq1   string  `json:"aligned_seq1"`
	AlignedSeq2   string  `json:"aligned_seq2"`
	Score         int     `json:"score"`
	Length        int     `json:"length"`
	IdentityPct   float64 `json:"identity_pct"`
	SimilarityPct float64 `json:"similarity_pct"`
	GapPct        float64 `json:"gap_pct"`
}

func (req *AlignmentRequest) scheme(kind phyloflow.SequenceKind) (*phyloflow.Scheme, error) {
	if kind == phyloflow.Protein {
		if req.Gap != nil {
			return phyloflow.NewProteinScheme(*req.Gap)
		}
		return phyloflow.ProteinScheme(), nil
	}

	scheme := phyloflow.DefaultScheme()
	match, mismatch, gap := scheme.MatchScore, scheme.MismatchPenalty, scheme.GapPenalty()
	if req.Match != nil {
		match = *req.Match
	}
	if req.Mismatch != nil {
		mismatch = *req.Mismatch
	}
	if req.Gap != nil {
		gap = *req.Gap
	}
	return phyloflow.NewNucleotideScheme(match, mismatch, gap)
}

func alignHandler(mode phyloflow.AlignMode) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AlignmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body"))
			return
		}

		seq1, err := req.Sequence1.toSequence()
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Errorf("sequence1: %w", err))
			return
		}
		seq2, err := req.Sequence2.toSequence()
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Errorf("sequence2: %w", err))
			return
		}
		if seq1.Kind != seq2.Kind {
			writeError(w, http.StatusBadRequest, fmt.Errorf("sequences must share a kind"))
			return
		}

		scheme, err := req.scheme(seq1.Kind)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}

		alignment, err := phyloflow.Align(seq1, seq2, scheme, mode)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}

		writeJSON(w, AlignmentResponse{
			AlignedSeq1:   alignment.AlignedSeq1,
			AlignedSeq2:   alignment.AlignedSeq2,
			Score:         alignment.Score,
			Length:        alignment.Length,
			IdentityPct:   alignment.IdentityPct,
			SimilarityPct: alignment.SimilarityPct,
			GapPct:        alignment.GapPct,
		})
	}
}

// GlobalAlignHandler handles Needleman-Wunsch alignment requests.
var GlobalAlignHandler = alignHandler(phyloflow.Global)

// LocalAlignHandler handles Smith-Waterman alignment requests.
var LocalAlignHandler = alignHandler(phyloflow.Local)
