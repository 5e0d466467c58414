package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phyloflow/phyloflow-go/pkg/phyloflow"
)

var matrixKind string

// matrixCmd prints the all-pairs distance matrix for a FASTA file.
var matrixCmd = &cobra.Command{
	Use:     "matrix [fasta]",
	Short:   "Print the Jukes-Cantor distance matrix for a FASTA file",
	Example: "  phyloflow matrix taxa.fasta",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		seqs, err := readSequences(args[0], matrixKind)
		if err != nil {
			return err
		}
		matrix, err := phyloflow.BuildDistanceMatrix(seqs)
		if err != nil {
			return err
		}
		fmt.Print(matrix.String())
		return nil
	},
}

func init() {
	matrixCmd.Flags().StringVar(&matrixKind, "kind", "nucleotide", "sequence kind: nucleotide or protein")
	rootCmd.AddCommand(matrixCmd)
}
