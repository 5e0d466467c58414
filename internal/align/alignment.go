package align

import (
	"fmt"
	"strings"

	"github.com/phyloflow/phyloflow-go/internal/scoring"
)

// Alignment represents the result of aligning two sequences.
//
// AlignedSeq1 and AlignedSeq2 are equal-length strings over the residue
// alphabet plus the gap symbol; removing gaps from either reproduces the
// aligned (sub)sequence exactly.
type Alignment struct {
	ID1           string
	ID2           string
	AlignedSeq1   string
	AlignedSeq2   string
	Score         int
	Mode          Mode
	Length        int
	Identities    int
	Similarities  int
	Gaps          int
	IdentityPct   float64
	SimilarityPct float64
	GapPct        float64
}

// newAlignment assembles an Alignment and derives its statistics.
//
// A column is a gap if either side is the gap symbol; otherwise it is an
// identity when the residues match and a similarity when the substitution
// score is positive (identities count as similarities).
func newAlignment(id1, id2, aligned1, aligned2 string, score int, mode Mode, scheme *scoring.Scheme) *Alignment {
	a := &Alignment{
		ID1:         id1,
		ID2:         id2,
		AlignedSeq1: aligned1,
		AlignedSeq2: aligned2,
		Score:       score,
		Mode:        mode,
		Length:      len(aligned1),
	}

	for i := 0; i < len(aligned1); i++ {
		c1, c2 := aligned1[i], aligned2[i]
		if c1 == Gap || c2 == Gap {
			a.Gaps++
			continue
		}
		if c1 == c2 {
			a.Identities++
			a.Similarities++
		} else if scheme.Score(c1, c2) > 0 {
			a.Similarities++
		}
	}

	if a.Length > 0 {
		a.IdentityPct = float64(a.Identities) / float64(a.Length) * 100.0
		a.SimilarityPct = float64(a.Similarities) / float64(a.Length) * 100.0
		a.GapPct = float64(a.Gaps) / float64(a.Length) * 100.0
	}
	return a
}

// Format returns a human-readable three-line rendering of the alignment.
func (a *Alignment) Format() string {
	var matchLine strings.Builder
	for i := 0; i < len(a.AlignedSeq1); i++ {
		switch {
		case a.AlignedSeq1[i] == Gap || a.AlignedSeq2[i] == Gap:
			matchLine.WriteByte(' ')
		case a.AlignedSeq1[i] == a.AlignedSeq2[i]:
			matchLine.WriteByte('|')
		default:
			matchLine.WriteByte('.')
		}
	}

	return fmt.Sprintf("Seq1: %s\n      %s\nSeq2: %s\nScore: %d\nIdentity: %.1f%%  Similarity: %.1f%%  Gaps: %.1f%%",
		a.AlignedSeq1, matchLine.String(), a.AlignedSeq2,
		a.Score, a.IdentityPct, a.SimilarityPct, a.GapPct)
}

func (a *Alignment) String() string {
	return fmt.Sprintf("Alignment { mode: %s, score: %d, identity: %.1f%%, length: %d }",
		a.Mode, a.Score, a.IdentityPct, a.Length)
}
