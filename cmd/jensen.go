package cmd

import (
	"github.com/gcollet/mstatx-go/pkg/mstatx"
	"github.com/spf13/cobra"
)

// jensenCmd scores each column by its Jensen-Shannon divergence from
// the background residue distribution of the whole alignment.
var jensenCmd = &cobra.Command{
	Use:   "jensen [alignment.fasta]",
	Short: "Jensen-Shannon divergence of each column from the background",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStat(mstatx.Jensen, args)
	},
}

func init() {
	rootCmd.AddCommand(jensenCmd)
}
