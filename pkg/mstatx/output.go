package mstatx

import (
	"fmt"
	"io"
	"os"
)

// warnExists checks if a filename exists and prints a warning
// if we will trash a file. It does not return an error.
func warnExists(fname string) {
	if _, err := os.Stat(fname); err == nil {
		fmt.Fprintln(os.Stderr, "Warning, trashing old version of", fname)
	}
}

// writeScores writes one score per line, in column order. If there is
// no filename or the filename is "-", write to standard output.
func writeScores(outfile string, scores []float32) error {
	var fp io.Writer
	if outfile == "" || outfile == "-" {
		fp = os.Stdout
	} else {
		warnExists(outfile)
		f, err := os.Create(outfile)
		if err != nil {
			return fmt.Errorf("output file %v: %w", outfile, err)
		}
		defer f.Close()
		fp = f
	}
	for _, v := range scores {
		if _, err := fmt.Fprintf(fp, "%g\n", v); err != nil {
			return err
		}
	}
	return nil
}
