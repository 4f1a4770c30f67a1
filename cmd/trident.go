package cmd

import (
	"github.com/gcollet/mstatx-go/pkg/mstatx"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// tridentCmd scores each column with Valdar's trident statistic, a
// product of an entropy term, a residue similarity term taken from a
// substitution matrix, and a gap term.
var tridentCmd = &cobra.Command{
	Use:   "trident [alignment.fasta]",
	Short: "Trident score, combining entropy, similarity and gaps",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStat(mstatx.Trident, args)
	},
}

func init() {
	rootCmd.AddCommand(tridentCmd)

	tridentCmd.Flags().String("matrix-file", "blosum62.mat",
		"substitution matrix file inside the matrix directory")
	tridentCmd.Flags().Float64P("factor-a", "a", 1.0,
		"exponent of the entropy term")
	tridentCmd.Flags().Float64P("factor-b", "b", 0.5,
		"exponent of the similarity term")
	tridentCmd.Flags().Float64P("factor-c", "c", 3.0,
		"exponent of the gap term")

	viper.BindPFlag("matrix-file", tridentCmd.Flags().Lookup("matrix-file"))
	viper.BindPFlag("factor-a", tridentCmd.Flags().Lookup("factor-a"))
	viper.BindPFlag("factor-b", tridentCmd.Flags().Lookup("factor-b"))
	viper.BindPFlag("factor-c", tridentCmd.Flags().Lookup("factor-c"))
}
