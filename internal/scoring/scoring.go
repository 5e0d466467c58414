// Package scoring provides substitution scoring schemes for pairwise alignment.
//
// A Scheme is a tagged variant: Nucleotide scoring uses flat match/mismatch
// scores, Protein scoring looks up the BLOSUM62 matrix. Both carry a linear
// gap penalty.
package scoring

import "fmt"

// Kind selects the substitution model of a Scheme.
type Kind int

const (
	// Nucleotide scores +2 for a match and -1 for a mismatch
	Nucleotide Kind = iota
	// Protein scores residue pairs with the BLOSUM62 matrix
	Protein
)

func (k Kind) String() string {
	switch k {
	case Nucleotide:
		return "nucleotide"
	case Protein:
		return "protein"
	default:
		return "unknown"
	}
}

// Default nucleotide scores
const (
	NucleotideMatch    = 2
	NucleotideMismatch = -1
	DefaultGapPenalty  = -1
)

// Scheme represents the scoring parameters for alignment.
type Scheme struct {
	Kind            Kind
	MatchScore      int
	MismatchPenalty int
	gapPenalty      int
	substitute      func(a, b byte) int
}

// NewNucleotide creates a nucleotide scheme with the given scores.
func NewNucleotide(match, mismatch, gap int) (*Scheme, error) {
	if match <= 0 {
		return nil, fmt.Errorf("match score must be positive")
	}
	if mismatch > 0 {
		return nil, fmt.Errorf("mismatch penalty should be <= 0")
	}
	if gap > 0 {
		return nil, fmt.Errorf("gap penalty should be <= 0")
	}

	s := &Scheme{
		Kind:            Nucleotide,
		MatchScore:      match,
		MismatchPenalty: mismatch,
		gapPenalty:      gap,
	}
	s.substitute = func(a, b byte) int {
		if a == b {
			return s.MatchScore
		}
		return s.MismatchPenalty
	}
	return s, nil
}

// NewProtein creates a BLOSUM62 protein scheme with the given gap penalty.
func NewProtein(gap int) (*Scheme, error) {
	if gap > 0 {
		return nil, fmt.Errorf("gap penalty should be <= 0")
	}
	return &Scheme{
		Kind:       Protein,
		gapPenalty: gap,
		substitute: Blosum62Score,
	}, nil
}

// DefaultNucleotide creates the default DNA scheme (+2/-1, gap -1).
func DefaultNucleotide() *Scheme {
	s, _ := NewNucleotide(NucleotideMatch, NucleotideMismatch, DefaultGapPenalty)
	return s
}

// DefaultProtein creates the default BLOSUM62 scheme with gap penalty -4.
func DefaultProtein() *Scheme {
	s, _ := NewProtein(-4)
	return s
}

// Score returns the substitution score for a pair of residues.
func (s *Scheme) Score(a, b byte) int {
	return s.substitute(a, b)
}

// GapPenalty returns the linear gap penalty.
func (s *Scheme) GapPenalty() int {
	return s.gapPenalty
}

func (s *Scheme) String() string {
	if s.Kind == Protein {
		return fmt.Sprintf("Scheme { kind: protein, matrix: BLOSUM62, gap: %d }", s.gapPenalty)
	}
	return fmt.Sprintf("Scheme { kind: nucleotide, match: %d, mismatch: %d, gap: %d }",
		s.MatchScore, s.MismatchPenalty, s.gapPenalty)
}
