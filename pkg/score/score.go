// Package score holds the per-column conservation statistics. Each of
// them turns an alignment model into one number per column, higher
// meaning more conserved, except where the statistic's own definition
// says otherwise.

package score

import (
	"math"

	"github.com/gcollet/mstatx-go/pkg/msa"
)

// Scorer computes one conservation score per alignment column.
type Scorer interface {
	Name() string
	Score(m *msa.MSA) ([]float32, error)
}

// lambda is the 1/log(min(K,N)) normaliser shared by the entropic
// statistics, K the alphabet size and N the number of sequences.
// When min(K,N) is below 2, the log is not positive, so we return 0
// and a degenerate column comes out fully conserved rather than as an
// infinity.
func lambda(nAlpha, nseq int) float64 {
	n := nAlpha
	if nseq < n {
		n = nseq
	}
	if n < 2 {
		return 0
	}
	return 1.0 / math.Log(float64(n))
}

// colProbs fills p with the weighted probability of each alphabet
// symbol in column col. p must have one slot per alphabet symbol.
func colProbs(m *msa.MSA, w []float32, col int, p []float64) {
	for a := range p {
		p[a] = 0
	}
	for j := 0; j < m.NSeq(); j++ {
		p[m.GetMap(m.Symbol(j, col))] += float64(w[j])
	}
}

// weightedEntropy is -lambda * sum p log(p) over the non-zero entries.
func weightedEntropy(p []float64, lambda float64) float64 {
	var h float64
	for _, x := range p {
		if x != 0 {
			h -= x * math.Log(x)
		}
	}
	return h * lambda
}
