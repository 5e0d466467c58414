// Package sequence provides validated biological sequence records.
//
// A Sequence is the immutable input record for the alignment and tree
// pipeline: residues are uppercased and whitespace-stripped at construction
// and validated against the alphabet of the declared kind.
package sequence

import (
	"fmt"
	"strings"
)

// Kind represents the type of biological sequence.
type Kind int

const (
	// Nucleotide represents a DNA sequence (A, C, G, T, ambiguous N)
	Nucleotide Kind = iota
	// Protein represents an amino-acid sequence (20 residues, ambiguous X)
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

// Valid residue alphabets
var (
	ValidNucleotides = map[rune]bool{'A': true, 'C': true, 'G': true, 'T': true, 'N': true}
	ValidResidues    = map[rune]bool{
		'A': true, 'R': true, 'N': true, 'D': true, 'C': true,
		'Q': true, 'E': true, 'G': true, 'H': true, 'I': true,
		'L': true, 'K': true, 'M': true, 'F': true, 'P': true,
		'S': true, 'T': true, 'W': true, 'Y': true, 'V': true,
		'X': true,
	}
)

// Sequence represents a validated biological sequence.
//
// Sequences are read-only once constructed; every pipeline stage shares
// them and none mutates Residues.
type Sequence struct {
	ID          string
	Residues    string
	Description string
	Kind        Kind
}

// New creates a new nucleotide sequence with validation.
func New(id, residues string) (*Sequence, error) {
	return WithMetadata(id, residues, "", Nucleotide)
}

// NewProtein creates a new protein sequence with validation.
func NewProtein(id, residues string) (*Sequence, error) {
	return WithMetadata(id, residues, "", Protein)
}

// WithMetadata creates a new sequence with full metadata.
func WithMetadata(id, residues, description string, kind Kind) (*Sequence, error) {
	normalized := normalize(residues)

	if len(normalized) == 0 {
		return nil, &EmptySequenceError{ID: id}
	}

	var err error
	switch kind {
	case Protein:
		err = ValidateProtein(normalized)
	default:
		err = ValidateNucleotide(normalized)
	}
	if err != nil {
		return nil, fmt.Errorf("sequence %q: %w", id, err)
	}

	return &Sequence{
		ID:          id,
		Residues:    normalized,
		Description: description,
		Kind:        kind,
	}, nil
}

// normalize uppercases residues and strips all whitespace.
func normalize(residues string) string {
	return strings.ToUpper(strings.Join(strings.Fields(residues), ""))
}

// Len returns the length of the sequence.
func (s *Sequence) Len() int {
	return len(s.Residues)
}

// AmbiguousSymbol returns the ambiguity symbol for the sequence kind.
func (s *Sequence) AmbiguousSymbol() byte {
	if s.Kind == Protein {
		return 'X'
	}
	return 'N'
}

// HasAmbiguous checks if the sequence contains any ambiguous residues.
func (s *Sequence) HasAmbiguous() bool {
	return strings.IndexByte(s.Residues, s.AmbiguousSymbol()) >= 0
}

// CountAmbiguous counts the number of ambiguous residues.
func (s *Sequence) CountAmbiguous() int {
	return strings.Count(s.Residues, string(s.AmbiguousSymbol()))
}

// ToFASTA returns the sequence in FASTA format, wrapped at 80 columns.
func (s *Sequence) ToFASTA() string {
	header := ">" + s.ID
	if s.ID == "" {
		header = ">sequence"
	}
	if s.Description != "" {
		header += " " + s.Description
	}

	var sb strings.Builder
	sb.WriteString(header)
	sb.WriteByte('\n')
	for i := 0; i < len(s.Residues); i += 80 {
		end := i + 80
		if end > len(s.Residues) {
			end = len(s.Residues)
		}
		sb.WriteString(s.Residues[i:end])
		sb.WriteByte('\n')
	}
	return sb.String()
}

// String returns a string representation of the sequence.
func (s *Sequence) String() string {
	if s.ID != "" {
		return fmt.Sprintf(">%s\n%s", s.ID, s.Residues)
	}
	return s.Residues
}

// Equal checks equality with another sequence.
func (s *Sequence) Equal(other *Sequence) bool {
	if other == nil {
		return false
	}
	return s.Residues == other.Residues && s.Kind == other.Kind
}
