// Command phyloflow is the CLI for the alignment and tree-inference
// engine. Sequences come in as FASTA files, trees come out as Newick.
package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/phyloflow/phyloflow-go/config"
	"github.com/phyloflow/phyloflow-go/pkg/phyloflow"
)

var cfg = config.New()

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "phyloflow",
	Short: "Align sequences and infer phylogenetic trees from FASTA input",
	Long: `Pairwise sequence alignment and distance-based tree inference.
Sequences are read from FASTA files, distances use the Jukes-Cantor
corrected p-distance, and trees are built with Neighbor-Joining or UPGMA.`,
	Version: phyloflow.Version(),
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

// readSequences loads and validates a FASTA file for the given kind flag.
func readSequences(path, kind string) ([]*phyloflow.Sequence, error) {
	k := phyloflow.Nucleotide
	if kind == "protein" {
		k = phyloflow.Protein
	}
	return phyloflow.ReadFASTA(path, k)
}
