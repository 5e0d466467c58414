package align

import (
	"strings"

	"github.com/phyloflow/phyloflow-go/internal/scoring"
	"github.com/phyloflow/phyloflow-go/internal/sequence"
)

// needlemanWunsch performs global alignment over the full length of both
// sequences.
func needlemanWunsch(seq1, seq2 *sequence.Sequence, scheme *scoring.Scheme) *Alignment {
	m, n := seq1.Len(), seq2.Len()
	s1, s2 := seq1.Residues, seq2.Residues

	H, traceback := newMatrices(m, n)

	// First row and column accumulate gap penalties
	for i := 1; i <= m; i++ {
		H[i][0] = i * scheme.GapPenalty()
		traceback[i][0] = Up
	}
	for j := 1; j <= n; j++ {
		H[0][j] = j * scheme.GapPenalty()
		traceback[0][j] = Left
	}

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			diag := H[i-1][j-1] + scheme.Score(s1[i-1], s2[j-1])
			up := H[i-1][j] + scheme.GapPenalty()
			left := H[i][j-1] + scheme.GapPenalty()

			// Ties keep the diagonal, then up
			best := diag
			direction := Diagonal
			if up > best {
				best = up
				direction = Up
			}
			if left > best {
				best = left
				direction = Left
			}

			H[i][j] = best
			traceback[i][j] = direction
		}
	}

	aligned1, aligned2 := tracebackGlobal(s1, s2, traceback, m, n)
	return newAlignment(seq1.ID, seq2.ID, aligned1, aligned2, H[m][n], Global, scheme)
}

// tracebackGlobal walks the traceback matrix from the bottom-right corner.
func tracebackGlobal(seq1, seq2 string, traceback [][]Direction, m, n int) (string, string) {
	var aligned1, aligned2 strings.Builder
	i, j := m, n

	for i > 0 || j > 0 {
		switch {
		case i == 0:
			aligned1.WriteByte(Gap)
			aligned2.WriteByte(seq2[j-1])
			j--
		case j == 0:
			aligned1.WriteByte(seq1[i-1])
			aligned2.WriteByte(Gap)
			i--
		default:
			switch traceback[i][j] {
			case Diagonal:
				aligned1.WriteByte(seq1[i-1])
				aligned2.WriteByte(seq2[j-1])
				i--
				j--
			case Up:
				aligned1.WriteByte(seq1[i-1])
				aligned2.WriteByte(Gap)
				i--
			default:
				aligned1.WriteByte(Gap)
				aligned2.WriteByte(seq2[j-1])
				j--
			}
		}
	}

	return reverse(aligned1.String()), reverse(aligned2.String())
}
