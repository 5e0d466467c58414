// Package align implements optimal pairwise sequence alignment.
//
// Two modes are supported: Global (Needleman-Wunsch) aligns full sequences
// end to end, Local (Smith-Waterman) finds the best-scoring subsequence
// pair. Both share the same recurrence and traceback representation and a
// fixed tie-break order (diagonal, then up, then left) so output is
// deterministic.
package align

import (
	"errors"
	"fmt"

	"github.com/phyloflow/phyloflow-go/internal/scoring"
	"github.com/phyloflow/phyloflow-go/internal/sequence"
)

// ErrInvalidInput is returned when an empty sequence is passed to the aligner.
var ErrInvalidInput = errors.New("align: invalid input")

// Gap is the alignment gap symbol.
const Gap = '-'

// Direction represents the traceback direction in the alignment matrix.
type Direction byte

const (
	// Stop represents the end of alignment (local only)
	Stop Direction = iota
	// Diagonal represents a match or mismatch
	Diagonal
	// Up represents a gap in sequence 2
	Up
	// Left represents a gap in sequence 1
	Left
)

// Mode represents the alignment mode.
type Mode int

const (
	// Global represents Needleman-Wunsch global alignment
	Global Mode = iota
	// Local represents Smith-Waterman local alignment
	Local
)

func (m Mode) String() string {
	switch m {
	case Global:
		return "global"
	case Local:
		return "local"
	default:
		return "unknown"
	}
}

// Align computes the optimal alignment of two sequences under a scheme.
func Align(seq1, seq2 *sequence.Sequence, scheme *scoring.Scheme, mode Mode) (*Alignment, error) {
	if scheme == nil {
		scheme = scoring.DefaultNucleotide()
	}
	if seq1 == nil || seq1.Len() == 0 {
		return nil, fmt.Errorf("%w: first sequence is empty", ErrInvalidInput)
	}
	if seq2 == nil || seq2.Len() == 0 {
		return nil, fmt.Errorf("%w: second sequence is empty", ErrInvalidInput)
	}

	switch mode {
	case Local:
		return smithWaterman(seq1, seq2, scheme), nil
	default:
		return needlemanWunsch(seq1, seq2, scheme), nil
	}
}

// newMatrices allocates the (m+1)x(n+1) score and traceback matrices.
func newMatrices(m, n int) ([][]int, [][]Direction) {
	H := make([][]int, m+1)
	tb := make([][]Direction, m+1)
	for i := range H {
		H[i] = make([]int, n+1)
		tb[i] = make([]Direction, n+1)
	}
	return H, tb
}

// reverse reverses a byte string.
func reverse(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}
