// Read up a multiple sequence alignment, pick one of the column
// statistics and write one conservation score per column.

package mstatx

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gcollet/mstatx-go/config"
	"github.com/gcollet/mstatx-go/pkg/msa"
	"github.com/gcollet/mstatx-go/pkg/numseq"
	"github.com/gcollet/mstatx-go/pkg/score"
	"github.com/gcollet/mstatx-go/pkg/seq"
	"github.com/gcollet/mstatx-go/pkg/submat"
)

// The recognised statistics.
const (
	Jensen   = "jensen"
	WEntropy = "wentropy"
	Trident  = "trident"
)

// warnTooMany has a quick look at the input file before parsing. If
// there are more records than the reader will keep, say so up front.
// On stdin or any mmap trouble we just stay quiet, the parser will
// count the dropped records anyway.
func warnTooMany(infile string) {
	if infile == "" {
		return
	}
	if n, err := numseq.ByMmap(infile); err == nil && n > seq.MaxSeq {
		fmt.Fprintf(os.Stderr,
			"%s holds %d records, only the first %d are used\n",
			infile, n, seq.MaxSeq)
	}
}

// banner explains which score is being computed, as a courtesy on
// stderr. The scores themselves only ever go to the output.
func banner(method string, cfg *config.Config) {
	switch method {
	case Jensen:
		fmt.Fprintln(os.Stderr, "Score is based on the Jensen-Shannon measure")
		fmt.Fprintln(os.Stderr, "S = 1 - (lambda R(p,r) + (1 - lambda) R(q,r))")
	case WEntropy:
		fmt.Fprintln(os.Stderr, "Score is based on wentropy + gap counts")
		fmt.Fprintln(os.Stderr, "S = (1 - wentropy) * (1 - gap_freq)")
	case Trident:
		fmt.Fprintln(os.Stderr, "Score is based on the trident score defined by Valdar (2002)")
		fmt.Fprintln(os.Stderr, "S = (1 - t)^a * (1 - r)^b * (1 - g)^c")
		fmt.Fprintln(os.Stderr, "t measures the entropy")
		fmt.Fprintln(os.Stderr, "r measures the residue similarity (based on a normalized substitution matrix)")
		fmt.Fprintln(os.Stderr, "g measures the gap frequencies")
		fmt.Fprintf(os.Stderr, "a = %g\nb = %g\nc = %g\n", cfg.FactorA, cfg.FactorB, cfg.FactorC)
	}
}

// Mymain is the whole run: parse the alignment, build the chosen
// scorer, score and write. infile may be empty for stdin.
func Mymain(cfg *config.Config, method, infile string) error {
	warnTooMany(infile)

	s_opts := &seq.Options{}
	if cfg.Verbose {
		s_opts.Vbsty = 5
	}
	m, err := msa.ReadFile(infile, s_opts)
	if err != nil {
		return fmt.Errorf("fail reading alignment: %w", err)
	}
	fmt.Fprintf(os.Stderr, "nb seq = %d -- nb col = %d\n", m.NSeq(), m.NCol())
	if m.NDropped() > 0 {
		fmt.Fprintf(os.Stderr, "%d records beyond the cap of %d were dropped\n",
			m.NDropped(), seq.MaxSeq)
	}
	if cfg.Verbose {
		dump(os.Stderr, m)
	}

	var sc score.Scorer
	switch method {
	case Jensen:
		sc = score.Jensen{}
	case WEntropy:
		sc = score.WEntropy{}
	case Trident:
		mat, err := submat.Read(filepath.Join(cfg.MatrixDir, cfg.MatrixFile))
		if err != nil {
			return err
		}
		if !m.IsSubsetOf(mat.Alphabet()) {
			fmt.Fprintln(os.Stderr,
				"warning: alignment symbols missing from the scoring matrix are ignored")
		}
		sc = &score.Trident{Mat: mat, A: cfg.FactorA, B: cfg.FactorB, C: cfg.FactorC}
	default:
		return fmt.Errorf("unknown statistic %q", method)
	}

	banner(method, cfg)
	scores, err := sc.Score(m)
	if err != nil {
		return fmt.Errorf("%s: %w", sc.Name(), err)
	}
	return writeScores(cfg.OutName, scores)
}
