// The trident statistic of Valdar (2002),
//   S(x) = (1 - t(x))^a * (1 - r(x))^b * (1 - g(x))^c
// t is the weighted entropy, r the spread of the column's residues
// under a normalised substitution matrix, g the gap fraction.

package score

import (
	"errors"
	"math"

	"github.com/gcollet/mstatx-go/pkg/msa"
	. "github.com/gcollet/mstatx-go/pkg/seq/common"
	"github.com/gcollet/mstatx-go/pkg/submat"
)

// Trident combines entropy, residue similarity and gap frequency.
// The exponents steer how much each term matters.
type Trident struct {
	Mat     *submat.Submat
	A, B, C float64
}

func (t *Trident) Name() string { return "trident" }

// withoutGaps strips the gap symbols off a type list.
func withoutGaps(types []byte) []byte {
	out := make([]byte, 0, len(types))
	for _, c := range types {
		if !IsGap(c) {
			out = append(out, c)
		}
	}
	return out
}

// Score computes the composite per column. The entropy term is taken
// on the observed alphabet first, then the model is re-based onto the
// matrix's alphabet for the similarity term. A column with no non-gap
// types gets r = 1, which zeroes its composite.
func (t *Trident) Score(m *msa.MSA) ([]float32, error) {
	if t.Mat == nil {
		return nil, errors.New("trident needs a substitution matrix")
	}
	w := Weights(m)
	lam := lambda(len(m.Alphabet()), m.NSeq())

	tVal := make([]float64, m.NCol())
	p := make([]float64, len(m.Alphabet()))
	for x := range tVal {
		colProbs(m, w, x, p)
		tVal[x] = weightedEntropy(p, lam)
	}

	alpha := t.Mat.Alphabet()
	m.FitToAlphabet(alpha)
	nAlpha := len(alpha)
	// The distance between two normalised score vectors can be at
	// most sqrt(K) * (max - min) after scaling, which is the r term's
	// normaliser.
	diffNorm := math.Sqrt(float64(nAlpha)) * float64(t.Mat.Max()-t.Mat.Min())

	rVal := make([]float64, m.NCol())
	mean := make([]float64, nAlpha)
	for x := range rVal {
		types := withoutGaps(m.TypeList(x))
		if len(types) == 0 {
			rVal[x] = 1.0
			continue
		}
		ntype := float64(len(types))
		for a := range mean {
			mean[a] = 0
		}
		for _, ty := range types {
			for a, c := range alpha {
				mean[a] += float64(t.Mat.NormScore(c, ty))
			}
		}
		for a := range mean {
			mean[a] /= ntype
		}
		var tmp float64
		for _, ty := range types {
			var sumsq float64
			for a, c := range alpha {
				d := mean[a] - float64(t.Mat.NormScore(c, ty))
				sumsq += d * d
			}
			tmp += math.Sqrt(sumsq)
		}
		rVal[x] = tmp / ntype / diffNorm
	}

	nseq := float64(m.NSeq())
	scores := make([]float32, m.NCol())
	for x := range scores {
		g := float64(m.GapCount(x)) / nseq
		s := math.Pow(1-tVal[x], t.A) * math.Pow(1-rVal[x], t.B) * math.Pow(1-g, t.C)
		scores[x] = float32(s)
	}
	return scores, nil
}
