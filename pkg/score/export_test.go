// Export some internals for testing.

package score

import "github.com/gcollet/mstatx-go/pkg/msa"

func JensenProbs(m *msa.MSA, w []float32, col int, p []float64) {
	jensenProbs(m, w, col, p)
}

func Lambda(nAlpha, nseq int) float64 { return lambda(nAlpha, nseq) }
