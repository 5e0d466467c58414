package distance

import (
	"fmt"
	"strings"

	"github.com/phyloflow/phyloflow-go/internal/sequence"
)

// Matrix is a symmetric all-pairs distance matrix with a zero diagonal.
type Matrix struct {
	SequenceIDs []string
	Values      [][]float64
}

// Between computes the Jukes-Cantor corrected distance between two
// sequence records.
func Between(seq1, seq2 *sequence.Sequence) float64 {
	p := PDistance(seq1.Residues, seq2.Residues, seq1.AmbiguousSymbol(), seq2.AmbiguousSymbol())
	return JukesCantor(p)
}

// Build computes the distance for every unordered sequence pair.
func Build(seqs []*sequence.Sequence) (*Matrix, error) {
	if len(seqs) == 0 {
		return nil, fmt.Errorf("distance: sequence list cannot be empty")
	}

	n := len(seqs)
	m := &Matrix{
		SequenceIDs: make([]string, n),
		Values:      make([][]float64, n),
	}
	for i, s := range seqs {
		m.SequenceIDs[i] = s.ID
		m.Values[i] = make([]float64, n)
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := Between(seqs[i], seqs[j])
			m.Values[i][j] = d
			m.Values[j][i] = d
		}
	}
	return m, nil
}

// Size returns the number of taxa in the matrix.
func (m *Matrix) Size() int {
	return len(m.SequenceIDs)
}

// Clone returns a deep copy of the matrix.
func (m *Matrix) Clone() *Matrix {
	c := &Matrix{
		SequenceIDs: append([]string(nil), m.SequenceIDs...),
		Values:      make([][]float64, len(m.Values)),
	}
	for i, row := range m.Values {
		c.Values[i] = append([]float64(nil), row...)
	}
	return c
}

func (m *Matrix) String() string {
	var sb strings.Builder
	sb.WriteString(strings.Join(m.SequenceIDs, "\t"))
	sb.WriteByte('\n')
	for _, row := range m.Values {
		for j, v := range row {
			if j > 0 {
				sb.WriteByte('\t')
			}
			fmt.Fprintf(&sb, "%.4f", v)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
