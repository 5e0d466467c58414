package sequence

import "fmt"

// SequenceError is the base error type for sequence operations.
type SequenceError interface {
	error
	IsSequenceError()
}

// EmptySequenceError is returned when a sequence has no residues.
type EmptySequenceError struct {
	ID string
}

func (e *EmptySequenceError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("sequence %q must have at least one residue", e.ID)
	}
	return "sequence must have at least one residue"
}

func (e *EmptySequenceError) IsSequenceError() {}

// InvalidResidueError is returned when an invalid residue is encountered.
type InvalidResidueError struct {
	Position int
	Found    rune
	Kind     Kind
}

func (e *InvalidResidueError) Error() string {
	return fmt.Sprintf("invalid %s residue '%c' at position %d", e.Kind, e.Found, e.Position)
}

func (e *InvalidResidueError) IsSequenceError() {}

// ValidateNucleotide validates that a string contains only valid DNA bases.
func ValidateNucleotide(residues string) error {
	for i, r := range residues {
		if !ValidNucleotides[r] {
			return &InvalidResidueError{Position: i, Found: r, Kind: Nucleotide}
		}
	}
	return nil
}

// ValidateProtein validates that a string contains only valid amino-acid codes.
func ValidateProtein(residues string) error {
	for i, r := range residues {
		if !ValidResidues[r] {
			return &InvalidResidueError{Position: i, Found: r, Kind: Protein}
		}
	}
	return nil
}

// IsValidNucleotide checks if a character is a valid DNA base.
func IsValidNucleotide(c rune) bool {
	return ValidNucleotides[c]
}

// IsValidResidue checks if a character is a valid amino-acid code.
func IsValidResidue(c rune) bool {
	return ValidResidues[c]
}
