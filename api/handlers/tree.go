package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/phyloflow/phyloflow-go/pkg/phyloflow"
)

// TreeRequest represents a tree-building request.
type TreeRequest struct {
	Sequences []SequenceInput `json:"sequences"`
	Method    string          `json:"method"`

	// Bootstrap replicate count; 0 disables support estimation
	Bootstrap int   `json:"bootstrap,omitempty"`
	Seed      int64 `json:"seed,omitempty"`
}

// TreeResponse carries the inferred tree.
type TreeResponse struct {
	Method      string  `json:"method"`
	Newick      string  `json:"newick"`
	Leaves      int     `json:"leaves"`
	Nodes       int     `json:"nodes"`
	TotalLength float64 `json:"total_length"`
	Depth       float64 `json:"depth"`
	Polytomies  int     `json:"polytomies"`
}

// BuildTreeHandler handles tree-building requests.
func BuildTreeHandler(w http.ResponseWriter, r *http.Request) {
	var req TreeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	method, err := phyloflow.ParseTreeMethod(req.Method)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
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

	tree, err := phyloflow.BuildTree(matrix, method)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if req.Bootstrap > 0 {
		opts := phyloflow.BootstrapOptions{Replicates: req.Bootstrap, Seed: req.Seed}
		if err := phyloflow.BootstrapSupport(tree, seqs, opts); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
	}

	writeJSON(w, TreeResponse{
		Method:      tree.Method.String(),
		Newick:      phyloflow.ToNewick(tree),
		Leaves:      len(tree.Leaves()),
		Nodes:       len(tree.Nodes),
		TotalLength: tree.TotalLength(),
		Depth:       tree.Depth(),
		Polytomies:  tree.Polytomies(),
	})
}

// CompareRequest represents a tree-comparison request over Newick text.
type CompareRequest struct {
	Newick1 string `json:"newick1"`
	Newick2 string `json:"newick2"`
}

// CompareResponse carries the comparison statistics.
type CompareResponse struct {
	RobinsonFoulds        int      `json:"robinson_foulds"`
	NormalizedRF          float64  `json:"normalized_rf"`
	SharedBipartitions    int      `json:"shared_bipartitions"`
	TotalBipartitions     int      `json:"total_bipartitions"`
	TopologicalSimilarity float64  `json:"topological_similarity"`
	Correlation           *float64 `json:"branch_length_correlation,omitempty"`
	RMSE                  *float64 `json:"branch_length_rmse,omitempty"`
	MeanSignedDiff        *float64 `json:"branch_length_mean_diff,omitempty"`
}

// CompareTreesHandler handles tree-comparison requests.
func CompareTreesHandler(w http.ResponseWriter, r *http.Request) {
	var req CompareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	tree1, err := phyloflow.ParseNewick(req.Newick1)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("newick1: %w", err))
		return
	}
	tree2, err := phyloflow.ParseNewick(req.Newick2)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("newick2: %w", err))
		return
	}

	comparison, err := phyloflow.CompareTrees(tree1, tree2)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	resp := CompareResponse{
		RobinsonFoulds:        comparison.RobinsonFoulds,
		NormalizedRF:          comparison.NormalizedRF,
		SharedBipartitions:    comparison.SharedBipartitions,
		TotalBipartitions:     comparison.TotalBipartitions,
		TopologicalSimilarity: comparison.TopologicalSimilarity,
	}
	if bl := comparison.BranchLengths; bl != nil {
		resp.Correlation = &bl.Correlation
		resp.RMSE = &bl.RMSE
		resp.MeanSignedDiff = &bl.MeanSignedDiff
	}
	writeJSON(w, resp)
}
