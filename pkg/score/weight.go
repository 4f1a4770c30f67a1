// Sequence weights after Henikoff & Henikoff (1994),
//   w_i = (1/L) * sum_x 1 / (k_x * n_{x,i})
// where L is the number of columns, k_x the number of distinct symbol
// types in column x and n_{x,i} how many sequences share sequence i's
// residue at x, itself included. Sequences from over-represented
// clusters get pushed down.

package score

import "github.com/gcollet/mstatx-go/pkg/msa"

// Weights computes one weight per sequence. The n_{x,i} come straight
// out of the model's count matrix, so this is O(nseq * ncol). It has
// to run before any FitToAlphabet call, while the counts still cover
// every observed symbol.
func Weights(m *msa.MSA) []float32 {
	counts := m.Counts().Mat
	L := m.NCol()
	w := make([]float32, m.NSeq())
	for i := range w {
		var tot float64
		for x := 0; x < L; x++ {
			k := float64(m.NType(x))
			n := float64(counts[m.GetMap(m.Symbol(i, x))][x])
			tot += 1 / (n * k)
		}
		w[i] = float32(tot / float64(L))
	}
	return w
}
