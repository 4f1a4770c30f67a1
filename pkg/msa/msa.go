// Package msa turns a set of equal-length sequences into a little
// model of the alignment: the alphabet that was actually used, the
// per-column tallies and type lists, gap counts, the global symbol
// frequencies and the normalised entropy of each column. The scoring
// statistics all work from this model.
package msa

import (
	"bytes"
	"fmt"
	"math"

	"github.com/andrew-torda/matrix"
	"github.com/gcollet/mstatx-go/pkg/seq"
	. "github.com/gcollet/mstatx-go/pkg/seq/common"
)

const badMap = uint8(math.MaxUint8) // marks a symbol as not in the alphabet

// MSA is the model. It is built once and read-only afterwards, except
// for FitToAlphabet, which re-bases the alphabet-dependent summaries on
// a different target alphabet.
type MSA struct {
	seqs      []seq.Seq
	alphabet  []byte            // symbols in first-seen order
	mapping   [seq.MaxSym]uint8 // mapping['C'] is the alphabet index of C
	counts    *matrix.FMatrix2d // one row per alphabet symbol, one column per site
	gapcnt    []int
	typeLists [][]byte
	entropy   []float32
	aaFreq    [seq.MaxSym]float32 // global frequency, indexed by symbol
	inAlpha   [seq.MaxSym]bool    // symbols of the alphabet seen at build time
	nseq      int
	ncol      int
	nDropped  int
}

// checkLengths makes sure we really have an alignment. Aligned
// sequences must all be the same length.
func checkLengths(seqs []seq.Seq) error {
	const msg = `sequence lengths are not the same. First sequence length %d, but
sequence %d length %d. Sequence starts "%s"`
	iwant := seqs[0].Len()
	for i := 1; i < len(seqs); i++ {
		if ilen := seqs[i].Len(); ilen != iwant {
			cmmt := seqs[i].Cmmt()
			if len(cmmt) > 40 {
				cmmt = cmmt[:40]
			}
			return fmt.Errorf(msg, iwant, i+1, ilen, cmmt)
		}
	}
	return nil
}

// New builds the model from a set of sequences. The residues are
// upper-cased in place, the lengths are checked and the summaries are
// all computed here, so the model is complete when it is returned.
func New(sset *seq.SeqSet) (*MSA, error) {
	if sset.NSeq() == 0 {
		return nil, fmt.Errorf("empty alignment")
	}
	if err := sset.Upper(); err != nil {
		return nil, err
	}
	if err := checkLengths(sset.SeqSlc()); err != nil {
		return nil, err
	}
	m := &MSA{
		seqs:     sset.SeqSlc(),
		nseq:     sset.NSeq(),
		ncol:     sset.SeqSlc()[0].Len(),
		nDropped: sset.NDropped(),
	}
	m.defineAlphabet()
	m.countGap()
	if err := m.countFreq(); err != nil {
		return nil, err
	}
	m.countEntropy()
	return m, nil
}

// ReadFile reads an alignment from a fasta file and builds the model.
// An empty filename means standard input.
func ReadFile(fname string, s_opts *seq.Options) (*MSA, error) {
	sset, err := seq.Readfile(fname, s_opts)
	if err != nil {
		return nil, err
	}
	return New(sset)
}

// defineAlphabet walks the alignment column by column and collects the
// symbols in the order they are first seen. Gap characters are symbols
// like any other at this stage.
func (m *MSA) defineAlphabet() {
	var seen [seq.MaxSym]bool
	var alpha []byte
	for col := 0; col < m.ncol; col++ {
		for row := 0; row < m.nseq; row++ {
			c := m.seqs[row].GetSeq()[col]
			if !seen[c] {
				seen[c] = true
				alpha = append(alpha, c)
			}
		}
	}
	m.setAlphabet(alpha)
}

// setAlphabet installs an alphabet and re-derives everything that
// depends on it: the symbol mapping, the count matrix and the
// per-column type lists. It is the one place to change the alphabet,
// so the mapping can never go stale.
func (m *MSA) setAlphabet(alpha []byte) {
	m.alphabet = alpha
	for i := range m.mapping {
		m.mapping[i] = badMap
	}
	for i, c := range alpha {
		m.mapping[c] = uint8(i)
	}
	m.buildCounts()
	m.countType()
}

// buildCounts tallies how often each alphabet symbol appears at each
// site. counts.Mat looks like [number_of_types][length_of_seq].
// We store it as float32 so the scorers can feed slices of it straight
// into their arithmetic.
func (m *MSA) buildCounts() {
	m.counts = matrix.NewFMatrix2d(len(m.alphabet), m.ncol)
	for _, ss := range m.seqs {
		for i, c := range ss.GetSeq() {
			if cmap := m.mapping[c]; cmap != badMap {
				m.counts.Mat[cmap][i]++
			}
		}
	}
}

// countType records the distinct symbols of each column, again in
// first-seen order. A symbol outside the current alphabet is skipped,
// except for gaps, which stay on the list so callers can decide what
// to do with them.
func (m *MSA) countType() {
	m.typeLists = make([][]byte, m.ncol)
	for col := 0; col < m.ncol; col++ {
		var types []byte
		for row := 0; row < m.nseq; row++ {
			c := m.seqs[row].GetSeq()[col]
			if m.mapping[c] == badMap && !IsGap(c) {
				continue
			}
			if bytes.IndexByte(types, c) < 0 {
				types = append(types, c)
			}
		}
		m.typeLists[col] = types
	}
}

// countGap counts the gap symbols in each column.
func (m *MSA) countGap() {
	m.gapcnt = make([]int, m.ncol)
	for col := 0; col < m.ncol; col++ {
		for row := 0; row < m.nseq; row++ {
			if IsGap(m.seqs[row].GetSeq()[col]) {
				m.gapcnt[col]++
			}
		}
	}
}

// countFreq computes the global frequency of each symbol. The
// denominator is the number of non-gap positions, while the counts in
// the numerator include the gap symbols, so the values over the real
// residues sum to one and the gap entries sit on top of that.
func (m *MSA) countFreq() error {
	totalNonGap := 0
	tmp := make([]int, len(m.alphabet))
	for _, ss := range m.seqs {
		for _, c := range ss.GetSeq() {
			if !IsGap(c) {
				totalNonGap++
			}
			pos := m.mapping[c]
			if pos == badMap {
				return fmt.Errorf("symbol %q is not in the alphabet", c)
			}
			tmp[pos]++
		}
	}
	if totalNonGap == 0 {
		return nil // nothing but gaps, the frequencies stay zero
	}
	for i, c := range m.alphabet {
		m.aaFreq[c] = float32(tmp[i]) / float32(totalNonGap)
		m.inAlpha[c] = true
	}
	return nil
}

// countEntropy computes the normalised Shannon entropy of each column,
//
//	entropy[col] = - (1/log(K-1)) * sum_a f_a log(f_a)
//
// where f_a is the frequency of symbol a in the column and K the
// alphabet size. The -1 takes the gap symbol out of the normaliser.
// A column where one symbol has frequency 1 gets exactly 0. With
// fewer than three symbols in the whole alphabet the normaliser is
// not positive, and the entropy is reported as 0.
func (m *MSA) countEntropy() {
	m.entropy = make([]float32, m.ncol)
	norm := math.Log(float64(len(m.alphabet) - 1))
	if norm <= 0 {
		return
	}
	for col := 0; col < m.ncol; col++ {
		var tot float64
		for a := range m.alphabet {
			f := float64(m.counts.Mat[a][col]) / float64(m.nseq)
			if f > 0 && f < 1 {
				tot -= f * math.Log(f)
			}
		}
		m.entropy[col] = float32(tot / norm)
	}
}

// NSeq returns the number of sequences.
func (m *MSA) NSeq() int { return m.nseq }

// NCol returns the number of columns in the alignment.
func (m *MSA) NCol() int { return m.ncol }

// NDropped returns the number of records thrown away at the reader's cap.
func (m *MSA) NDropped() int { return m.nDropped }

// Alphabet returns the symbols in first-seen order. The slice is the
// model's own, callers must not scribble on it.
func (m *MSA) Alphabet() []byte { return m.alphabet }

// Symbol returns the residue of sequence row at column col.
func (m *MSA) Symbol(row, col int) byte { return m.seqs[row].GetSeq()[col] }

// SeqSlc returns the underlying sequences.
func (m *MSA) SeqSlc() []seq.Seq { return m.seqs }

// GapCount returns the number of gap symbols in a column.
func (m *MSA) GapCount(col int) int { return m.gapcnt[col] }

// NType returns the number of distinct symbols in a column.
func (m *MSA) NType(col int) int { return len(m.typeLists[col]) }

// TypeList returns the distinct symbols of a column in first-seen order.
func (m *MSA) TypeList(col int) []byte { return m.typeLists[col] }

// Entropy returns the per-column normalised entropy.
func (m *MSA) Entropy() []float32 { return m.entropy }

// Counts gives access to the raw per-column tallies.
func (m *MSA) Counts() *matrix.FMatrix2d { return m.counts }

// GetMap tells us which count row belongs to a symbol.
func (m *MSA) GetMap(c byte) uint8 { return m.mapping[c] }

// FreqOf returns the global frequency of a symbol. A symbol that was
// not in the alphabet at build time is a data-integrity error.
func (m *MSA) FreqOf(c byte) (float32, error) {
	if c >= seq.MaxSym || !m.inAlpha[c] {
		return 0, fmt.Errorf("symbol %q is not in the alphabet", c)
	}
	return m.aaFreq[c], nil
}

// IsSubsetOf reports whether every non-gap symbol of the alignment's
// alphabet also appears in alpha.
func (m *MSA) IsSubsetOf(alpha []byte) bool {
	for _, c := range m.alphabet {
		if IsGap(c) {
			continue
		}
		if bytes.IndexByte(alpha, c) < 0 {
			return false
		}
	}
	return true
}

// FitToAlphabet re-bases the model on a different target alphabet,
// usually the one of a substitution matrix. The mapping, count matrix
// and type lists are re-derived; type lists keep their gap symbols
// even when the target has none. Gap counts do not depend on the
// alphabet and are untouched, as are the entropy and the global
// frequencies, which keep their build-time meaning. Fitting twice to
// the same alphabet changes nothing.
func (m *MSA) FitToAlphabet(alpha []byte) {
	m.setAlphabet(append([]byte(nil), alpha...))
}
