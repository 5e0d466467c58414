package align

import (
	"strings"

	"github.com/phyloflow/phyloflow-go/internal/scoring"
	"github.com/phyloflow/phyloflow-go/internal/sequence"
)

// smithWaterman performs local alignment, finding the best-scoring
// subsequence pair.
func smithWaterman(seq1, seq2 *sequence.Sequence, scheme *scoring.Scheme) *Alignment {
	m, n := seq1.Len(), seq2.Len()
	s1, s2 := seq1.Residues, seq2.Residues

	H, traceback := newMatrices(m, n)

	// Maximum cell; ties keep the first hit in row-major order
	maxScore := 0
	maxI, maxJ := 0, 0

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			diag := H[i-1][j-1] + scheme.Score(s1[i-1], s2[j-1])
			up := H[i-1][j] + scheme.GapPenalty()
			left := H[i][j-1] + scheme.GapPenalty()

			// Floor at zero; ties keep the diagonal, then up
			best := 0
			direction := Stop
			if diag > best {
				best = diag
				direction = Diagonal
			}
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

			if best > maxScore {
				maxScore = best
				maxI, maxJ = i, j
			}
		}
	}

	aligned1, aligned2 := tracebackLocal(s1, s2, traceback, maxI, maxJ)
	return newAlignment(seq1.ID, seq2.ID, aligned1, aligned2, maxScore, Local, scheme)
}

// tracebackLocal walks back from the maximum cell until a zero cell.
func tracebackLocal(seq1, seq2 string, traceback [][]Direction, startI, startJ int) (string, string) {
	var aligned1, aligned2 strings.Builder
	i, j := startI, startJ

	for i > 0 && j > 0 {
		direction := traceback[i][j]
		if direction == Stop {
			break
		}
		switch direction {
		case Diagonal:
			aligned1.WriteByte(seq1[i-1])
			aligned2.WriteByte(seq2[j-1])
			i--
			j--
		case Up:
			aligned1.WriteByte(seq1[i-1])
			aligned2.WriteByte(Gap)
			i--
		case Left:
			aligned1.WriteByte(Gap)
			aligned2.WriteByte(seq2[j-1])
			j--
		}
	}

	return reverse(aligned1.String()), reverse(aligned2.String())
}
