package mstatx

import (
	"fmt"
	"io"

	"github.com/gcollet/mstatx-go/pkg/msa"
	"github.com/gcollet/mstatx-go/pkg/score"
)

// entropySentinel is printed instead of the entropy for columns with
// too many gaps to be taken seriously.
const entropySentinel = -12.0

// dump prints the intermediate quantities of the model. It has no
// effect on any computed score, it is purely for looking at.
func dump(fp io.Writer, m *msa.MSA) {
	fmt.Fprintln(fp, "\nAlphabet :")
	for _, c := range m.Alphabet() {
		fmt.Fprintf(fp, "%c;", c)
	}
	fmt.Fprintln(fp)

	fmt.Fprintln(fp, "\nMultiple Alignment :")
	for _, s := range m.SeqSlc() {
		fmt.Fprintf(fp, "%s\n", s.GetSeq())
	}

	fmt.Fprintln(fp, "\nAA Frequencies :")
	for _, c := range m.Alphabet() {
		f, _ := m.FreqOf(c)
		fmt.Fprintf(fp, "%g;", f)
	}
	fmt.Fprintln(fp)

	fmt.Fprintln(fp, "\nGap counts :")
	for col := 0; col < m.NCol(); col++ {
		fmt.Fprintf(fp, "%d;", m.GapCount(col))
	}
	fmt.Fprintln(fp)

	// Columns drowning in gaps get the sentinel, not their entropy.
	fmt.Fprintln(fp, "\nAA Entropy :")
	tenth := float64(m.NSeq()) / 10
	for col, e := range m.Entropy() {
		if float64(m.GapCount(col)) > tenth {
			fmt.Fprintf(fp, "%g;", entropySentinel)
		} else {
			fmt.Fprintf(fp, "%g;", e)
		}
	}
	fmt.Fprintln(fp)

	fmt.Fprintln(fp, "\nAA Types :")
	for col := 0; col < m.NCol(); col++ {
		fmt.Fprintf(fp, "%d;", m.NType(col))
	}
	fmt.Fprintln(fp)

	fmt.Fprintln(fp, "\nSeq weights :")
	for _, w := range score.Weights(m) {
		fmt.Fprintf(fp, "%10g\n", w)
	}
	fmt.Fprintln(fp)
}
