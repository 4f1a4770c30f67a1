// The Jensen-Shannon statistic. A column's weighted symbol
// distribution p is smoothed with pseudo-counts, then compared with
// the alignment's background distribution q through the midpoint
// r = (p+q)/2,
//   D(x) = lambda * KL(p,r) + (1 - lambda) * KL(q,r)
// and the emitted score is 1 - D(x), so a column that looks like the
// background scores 1.

package score

import (
	"errors"
	"math"

	"github.com/gcollet/mstatx-go/pkg/msa"
)

// pseudoCount replaces a zero probability, so the divergence stays
// finite. The non-zero entries are reduced to keep the column summing
// to one.
const pseudoCount = 1e-6

// Jensen scores a column by its Jensen-Shannon divergence from the
// alignment's global symbol frequencies.
type Jensen struct{}

func (Jensen) Name() string { return "jensen" }

// jensenProbs fills p with the weighted column probabilities, with
// absent symbols set to pseudoCount and the present ones reduced by
// nb_abs * pseudoCount / (K - nb_abs) to compensate.
func jensenProbs(m *msa.MSA, w []float32, col int, p []float64) {
	colProbs(m, w, col, p)
	nbAbs := 0
	for a := range p {
		if p[a] == 0 {
			p[a] = pseudoCount
			nbAbs++
		}
	}
	if nbAbs == 0 || nbAbs == len(p) {
		return
	}
	reduce := float64(nbAbs) * pseudoCount / float64(len(p)-nbAbs)
	for a := range p {
		if p[a] > pseudoCount {
			p[a] -= reduce
		}
	}
}

// background returns the alignment's global symbol frequencies,
// normalised over the alphabet so they form a distribution.
func background(m *msa.MSA) ([]float64, error) {
	q := make([]float64, len(m.Alphabet()))
	var tot float64
	for i, c := range m.Alphabet() {
		f, err := m.FreqOf(c)
		if err != nil {
			return nil, err
		}
		q[i] = float64(f)
		tot += q[i]
	}
	if tot == 0 {
		return nil, errors.New("nothing but gaps, no background distribution")
	}
	for i := range q {
		q[i] /= tot
	}
	return q, nil
}

// relEntropy is KL(p||r) in natural logarithm over the non-zero
// entries of p. r must be strictly positive wherever p is.
func relEntropy(p, r []float64) float64 {
	var d float64
	for i := range p {
		if p[i] > 0 {
			d += p[i] * math.Log(p[i]/r[i])
		}
	}
	return d
}

func (Jensen) Score(m *msa.MSA) ([]float32, error) {
	w := Weights(m)
	lam := lambda(len(m.Alphabet()), m.NSeq())
	q, err := background(m)
	if err != nil {
		return nil, err
	}

	nAlpha := len(m.Alphabet())
	p := make([]float64, nAlpha)
	r := make([]float64, nAlpha)
	scores := make([]float32, m.NCol())
	for x := range scores {
		jensenProbs(m, w, x, p)
		for a := range r {
			r[a] = (p[a] + q[a]) / 2
		}
		d := lam*relEntropy(p, r) + (1-lam)*relEntropy(q, r)
		scores[x] = float32(1 - d)
	}
	return scores, nil
}
