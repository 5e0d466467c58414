// Package phyloflow provides a high-level API for the alignment and
// tree-inference engine.
//
// The pipeline runs sequences through a distance matrix into a
// phylogenetic tree:
//
//	seqs, err := phyloflow.ReadFASTA("taxa.fasta", phyloflow.Nucleotide)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	matrix, err := phyloflow.BuildDistanceMatrix(seqs)
//	tree, err := phyloflow.BuildTree(matrix, phyloflow.NeighborJoining)
//	fmt.Println(phyloflow.ToNewick(tree))
//
// Pairwise alignment runs independently of tree building:
//
//	alignment, err := phyloflow.AlignGlobal(seqs[0], seqs[1], nil)
//	fmt.Println(alignment.Format())
package phyloflow

import (
	"io"

	"github.com/phyloflow/phyloflow-go/internal/align"
	"github.com/phyloflow/phyloflow-go/internal/compare"
	"github.com/phyloflow/phyloflow-go/internal/distance"
	"github.com/phyloflow/phyloflow-go/internal/phylo"
	"github.com/phyloflow/phyloflow-go/internal/scoring"
	"github.com/phyloflow/phyloflow-go/internal/sequence"
)

// Re-export types for convenience
type (
	Sequence          = sequence.Sequence
	SequenceKind      = sequence.Kind
	Scheme            = scoring.Scheme
	Alignment         = align.Alignment
	AlignMode         = align.Mode
	DistanceMatrix    = distance.Matrix
	Tree              = phylo.Tree
	TreeNode          = phylo.Node
	TreeMethod        = phylo.Method
	BootstrapOptions  = phylo.BootstrapOptions
	Comparison        = compare.Comparison
	BranchLengthStats = compare.BranchLengthStats
)

// Constants
const (
	Nucleotide = sequence.Nucleotide
	Protein    = sequence.Protein

	Global = align.Global
	Local  = align.Local

	NeighborJoining = phylo.NeighborJoining
	UPGMA           = phylo.UPGMA
)

// Error kinds surfaced by the engine
var (
	ErrInvalidInput      = align.ErrInvalidInput
	ErrInsufficientTaxa  = phylo.ErrInsufficientTaxa
	ErrIncomparableTrees = compare.ErrIncomparableTrees
)

// NewSequence creates a validated nucleotide sequence.
func NewSequence(id, residues string) (*Sequence, error) {
	return sequence.New(id, residues)
}

// NewProteinSequence creates a validated protein sequence.
func NewProteinSequence(id, residues string) (*Sequence, error) {
	return sequence.NewProtein(id, residues)
}

// ReadFASTA reads sequence records from a FASTA file ("-" for stdin).
func ReadFASTA(path string, kind SequenceKind) ([]*Sequence, error) {
	return sequence.ReadFASTAFile(path, kind)
}

// ParseFASTA reads sequence records from a reader.
func ParseFASTA(r io.Reader, kind SequenceKind) ([]*Sequence, error) {
	return sequence.ReadFASTA(r, kind)
}

// DefaultScheme returns the default nucleotide scheme (+2/-1, gap -1).
func DefaultScheme() *Scheme {
	return scoring.DefaultNucleotide()
}

// ProteinScheme returns the BLOSUM62 scheme with the default gap penalty.
func ProteinScheme() *Scheme {
	return scoring.DefaultProtein()
}

// NewNucleotideScheme builds a nucleotide scheme with custom scores.
func NewNucleotideScheme(match, mismatch, gap int) (*Scheme, error) {
	return scoring.NewNucleotide(match, mismatch, gap)
}

// NewProteinScheme builds a BLOSUM62 scheme with a custom gap penalty.
func NewProteinScheme(gap int) (*Scheme, error) {
	return scoring.NewProtein(gap)
}

// Align aligns two sequences in the given mode. A nil scheme selects
// the default nucleotide scoring.
func Align(seq1, seq2 *Sequence, scheme *Scheme, mode AlignMode) (*Alignment, error) {
	return align.Align(seq1, seq2, scheme, mode)
}

// AlignGlobal performs Needleman-Wunsch global alignment.
func AlignGlobal(seq1, seq2 *Sequence, scheme *Scheme) (*Alignment, error) {
	return align.Align(seq1, seq2, scheme, align.Global)
}

// AlignLocal performs Smith-Waterman local alignment.
func AlignLocal(seq1, seq2 *Sequence, scheme *Scheme) (*Alignment, error) {
	return align.Align(seq1, seq2, scheme, align.Local)
}

// Distance computes the Jukes-Cantor corrected distance between two
// sequences.
func Distance(seq1, seq2 *Sequence) float64 {
	return distance.Between(seq1, seq2)
}

// BuildDistanceMatrix computes the all-pairs distance matrix.
func BuildDistanceMatrix(seqs []*Sequence) (*DistanceMatrix, error) {
	return distance.Build(seqs)
}

// BuildTree infers a tree from a distance matrix.
func BuildTree(m *DistanceMatrix, method TreeMethod) (*Tree, error) {
	return phylo.Build(m, method)
}

// ParseTreeMethod resolves a method name ("nj" or "upgma").
func ParseTreeMethod(s string) (TreeMethod, error) {
	return phylo.ParseMethod(s)
}

// BootstrapSupport annotates a tree's internal nodes with resampling
// support values.
func BootstrapSupport(t *Tree, seqs []*Sequence, opts BootstrapOptions) error {
	return phylo.AddSupport(t, seqs, opts)
}

// ToNewick serializes a tree to Newick text.
func ToNewick(t *Tree) string {
	return phylo.ToNewick(t)
}

// ParseNewick reads a tree from Newick text.
func ParseNewick(text string) (*Tree, error) {
	return phylo.ParseNewick(text)
}

// CompareTrees computes Robinson-Foulds and related statistics.
func CompareTrees(t1, t2 *Tree) (*Comparison, error) {
	return compare.Trees(t1, t2)
}

// Version returns the PhyloFlow version.
func Version() string {
	return "0.2.0"
}

// Info returns information about PhyloFlow.
func Info() string {
	return "PhyloFlow " + Version() + " - pairwise alignment and distance-based tree inference"
}
