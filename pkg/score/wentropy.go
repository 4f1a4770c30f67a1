// The weighted entropy statistic,
//   S(x) = (1 - H(x)) * (1 - gap(x)/nseq)
// with H(x) = -lambda * sum_a p_a log(p_a), p_a the weighted
// probability of symbol a in column x.

package score

import "github.com/gcollet/mstatx-go/pkg/msa"

// WEntropy scores a column by its weighted Shannon entropy, scaled
// down by the fraction of gaps in the column.
type WEntropy struct{}

func (WEntropy) Name() string { return "wentropy" }

func (WEntropy) Score(m *msa.MSA) ([]float32, error) {
	w := Weights(m)
	lam := lambda(len(m.Alphabet()), m.NSeq())
	p := make([]float64, len(m.Alphabet()))
	nseq := float64(m.NSeq())

	scores := make([]float32, m.NCol())
	for x := range scores {
		colProbs(m, w, x, p)
		h := weightedEntropy(p, lam)
		gapfrac := float64(m.GapCount(x)) / nseq
		scores[x] = float32((1 - h) * (1 - gapfrac))
	}
	return scores, nil
}
