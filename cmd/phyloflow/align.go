package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phyloflow/phyloflow-go/pkg/phyloflow"
)

var (
	alignMode string
	alignKind string
	alignGap  int
)

// alignCmd aligns the first two records of a FASTA file.
var alignCmd = &cobra.Command{
	Use:     "align [fasta]",
	Short:   "Align the first two sequences of a FASTA file",
	Example: "  phyloflow align --mode global taxa.fasta",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		seqs, err := readSequences(args[0], alignKind)
		if err != nil {
			return err
		}
		if len(seqs) < 2 {
			return fmt.Errorf("need at least 2 sequences, got %d", len(seqs))
		}

		var scheme *phyloflow.Scheme
		if alignKind == "protein" {
			gap := cfg.Align.ProteinGap
			if cmd.Flags().Changed("gap") {
				gap = alignGap
			}
			scheme, err = phyloflow.NewProteinScheme(gap)
		} else {
			scheme, err = phyloflow.NewNucleotideScheme(cfg.Align.Match, cfg.Align.Mismatch, alignGap)
		}
		if err != nil {
			return err
		}

		mode := phyloflow.Global
		if alignMode == "local" {
			mode = phyloflow.Local
		}

		alignment, err := phyloflow.Align(seqs[0], seqs[1], scheme, mode)
		if err != nil {
			return err
		}
		fmt.Println(alignment.Format())
		return nil
	},
}

func init() {
	alignCmd.Flags().StringVar(&alignMode, "mode", "global", "alignment mode: global or local")
	alignCmd.Flags().StringVar(&alignKind, "kind", "nucleotide", "sequence kind: nucleotide or protein")
	alignCmd.Flags().IntVar(&alignGap, "gap", cfg.Align.Gap, "linear gap penalty (<= 0)")
	rootCmd.AddCommand(alignCmd)
}
