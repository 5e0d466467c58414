package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phyloflow/phyloflow-go/pkg/phyloflow"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the PhyloFlow version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(phyloflow.Info())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
