package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phyloflow/phyloflow-go/pkg/phyloflow"
)

var (
	treeMethod    string
	treeKind      string
	treeBootstrap int
	treeSeed      int64
	treeStats     bool
)

// treeCmd infers a tree from a FASTA file and prints it as Newick.
var treeCmd = &cobra.Command{
	Use:     "tree [fasta]",
	Short:   "Infer a phylogenetic tree and print it as Newick",
	Example: "  phyloflow tree --method upgma --bootstrap 100 taxa.fasta",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		method, err := phyloflow.ParseTreeMethod(treeMethod)
		if err != nil {
			return err
		}
		seqs, err := readSequences(args[0], treeKind)
		if err != nil {
			return err
		}
		matrix, err := phyloflow.BuildDistanceMatrix(seqs)
		if err != nil {
			return err
		}
		tree, err := phyloflow.BuildTree(matrix, method)
		if err != nil {
			return err
		}
		if treeBootstrap > 0 {
			opts := phyloflow.BootstrapOptions{Replicates: treeBootstrap, Seed: treeSeed}
			if err := phyloflow.BootstrapSupport(tree, seqs, opts); err != nil {
				return err
			}
		}

		fmt.Println(phyloflow.ToNewick(tree))
		if treeStats {
			fmt.Printf("leaves: %d  nodes: %d  total length: %.4f  depth: %.4f  polytomies: %d\n",
				len(tree.Leaves()), len(tree.Nodes), tree.TotalLength(), tree.Depth(), tree.Polytomies())
		}
		return nil
	},
}

func init() {
	treeCmd.Flags().StringVar(&treeMethod, "method", cfg.Tree.Method, "tree method: nj or upgma")
	treeCmd.Flags().StringVar(&treeKind, "kind", "nucleotide", "sequence kind: nucleotide or protein")
	treeCmd.Flags().IntVar(&treeBootstrap, "bootstrap", cfg.Tree.BootstrapReplicates, "bootstrap replicates (0 disables)")
	treeCmd.Flags().Int64Var(&treeSeed, "seed", cfg.Tree.BootstrapSeed, "bootstrap resampling seed")
	treeCmd.Flags().BoolVar(&treeStats, "stats", false, "print tree statistics after the Newick line")
	rootCmd.AddCommand(treeCmd)
}
