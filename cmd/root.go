// Package cmd is for command line interactions with mstatx.
package cmd

import (
	"log"

	"github.com/gcollet/mstatx-go/config"
	"github.com/gcollet/mstatx-go/pkg/mstatx"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "mstatx",
	Short: `Compute per-column conservation scores for a multiple sequence alignment.
Pick one of the statistics: jensen, wentropy or trident`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

// runStat is the shared body of the three statistic subcommands. The
// single optional argument is the alignment file; without it we read
// standard input.
func runStat(method string, args []string) error {
	infile := ""
	if len(args) > 0 {
		infile = args[0]
	}
	return mstatx.Mymain(config.New(), method, infile)
}

func init() {
	cobra.OnInitialize(config.Setup)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false,
		"print intermediate weights, frequencies and entropies")
	rootCmd.PersistentFlags().StringP("out", "o", "",
		"write the scores here instead of standard output")
	rootCmd.PersistentFlags().StringP("matrix-dir", "m", "matrices",
		"directory holding substitution matrix files")
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("out", rootCmd.PersistentFlags().Lookup("out"))
	viper.BindPFlag("matrix-dir", rootCmd.PersistentFlags().Lookup("matrix-dir"))
}
