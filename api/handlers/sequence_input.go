package handlers

import (
	"fmt"

	"github.com/phyloflow/phyloflow-go/pkg/phyloflow"
)

// SequenceInput is a sequence record as it appears in request bodies.
type SequenceInput struct {
	ID       string `json:"id"`
	Sequence string `json:"sequence"`
	Kind     string `json:"kind,omitempty"`
}

func parseKind(kind string) (phyloflow.SequenceKind, error) {
	switch kind {
	case "", "nucleotide", "dna":
		return phyloflow.Nucleotide, nil
	case "protein":
		return phyloflow.Protein, nil
	default:
		return phyloflow.Nucleotide, fmt.Errorf("unknown sequence kind %q", kind)
	}
}

func (in SequenceInput) toSequence() (*phyloflow.Sequence, error) {
	kind, err := parseKind(in.Kind)
	if err != nil {
		return nil, err
	}
	if kind == phyloflow.Protein {
		return phyloflow.NewProteinSequence(in.ID, in.Sequence)
	}
	return phyloflow.NewSequence(in.ID, in.Sequence)
}

func toSequences(inputs []SequenceInput) ([]*phyloflow.Sequence, error) {
	seqs := make([]*phyloflow.Sequence, len(inputs))
	for i, in := range inputs {
		seq, err := in.toSequence()
		if err != nil {
			return nil, err
		}
		seqs[i] = seq
	}
	return seqs, nil
}
