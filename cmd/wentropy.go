package cmd

import (
	"github.com/gcollet/mstatx-go/pkg/mstatx"
	"github.com/spf13/cobra"
)

// wentropyCmd scores each column by its sequence-weighted Shannon
// entropy, scaled down by the fraction of gaps in the column.
var wentropyCmd = &cobra.Command{
	Use:   "wentropy [alignment.fasta]",
	Short: "Weighted Shannon entropy score of each column",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStat(mstatx.WEntropy, args)
	},
}

func init() {
	rootCmd.AddCommand(wentropyCmd)
}
