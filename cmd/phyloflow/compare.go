package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/phyloflow/phyloflow-go/pkg/phyloflow"
)

// compareCmd compares two Newick tree files.
var compareCmd = &cobra.Command{
	Use:     "compare [newick1] [newick2]",
	Short:   "Compare two Newick trees by Robinson-Foulds distance",
	Example: "  phyloflow compare nj.nwk upgma.nwk",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		tree1, err := readTree(args[0])
		if err != nil {
			return err
		}
		tree2, err := readTree(args[1])
		if err != nil {
			return err
		}

		comparison, err := phyloflow.CompareTrees(tree1, tree2)
		if err != nil {
			return err
		}

		fmt.Printf("Robinson-Foulds distance: %d\n", comparison.RobinsonFoulds)
		fmt.Printf("Normalized RF: %.4f\n", comparison.NormalizedRF)
		fmt.Printf("Shared bipartitions: %d of %d\n",
			comparison.SharedBipartitions, comparison.TotalBipartitions)
		fmt.Printf("Topological similarity: %.4f\n", comparison.TopologicalSimilarity)
		if bl := comparison.BranchLengths; bl != nil {
			fmt.Printf("Branch length correlation: %.4f (RMSE %.6f, mean diff %.6f)\n",
				bl.Correlation, bl.RMSE, bl.MeanSignedDiff)
		}
		return nil
	},
}

func readTree(path string) (*phyloflow.Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return phyloflow.ParseNewick(strings.TrimSpace(string(data)))
}

func init() {
	rootCmd.AddCommand(compareCmd)
}
