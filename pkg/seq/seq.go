// Package seq reads sets of sequences, which usually begin their
// lives in fasta format. An alignment is just a set of sequences
// that happen to have the same length, so the analysis of columns
// lives elsewhere, in the msa package.

package seq

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Seq is one sequence with its comment from the fasta file.
type Seq struct {
	cmmt string
	seq  []byte
}

// We only read ascii characters, so anything bigger than this is not
// valid.
const (
	MaxSym uint8 = 127
)

// MaxSeq is the hard cap on the number of records we keep from one
// file. Anything beyond it is counted, but thrown away.
const MaxSeq = 500

// Options contains all the choices passed in from the caller.
type Options struct {
	Vbsty      int
	DiffLenSeq bool // false, unless we expect sequences to be different lengths
	RmvGapsRd  bool // Remove gap characters while reading
}

// GetSeq returns the residues as the original byte slice.
func (s Seq) GetSeq() []byte { return s.seq }

// Cmmt returns the comment line, without the leading ">".
func (s Seq) Cmmt() string { return s.cmmt }

// Name returns the sequence identifier, which is the comment up to
// the first blank.
func (s Seq) Name() string {
	f := strings.Fields(s.cmmt)
	if len(f) == 0 {
		return ""
	}
	return f[0]
}

// Len returns the number of residues.
func (s Seq) Len() int { return len(s.seq) }

// Empty returns true if a sequence has no residues.
func (s Seq) Empty() bool { return len(s.seq) == 0 }

// trimStr trims a string to n bytes if it is longer
func trimStr(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

// Upper changes a sequence to upper case, in place.
// It only works with bytes, not runes.
// It can return an error if it encounters a symbol it does
// not like (value of MaxSym or higher).
func (s *Seq) Upper() error {
	const diff = 'a' - 'A'
	const symerr = "bad sym \"%c\" at position %d starting \"%s\""
	t := s.seq
	for i := 0; i < len(t); i++ {
		c := t[i]
		if c >= MaxSym {
			return fmt.Errorf(symerr, c, i, trimStr(s.cmmt, 40))
		}
		if 'a' <= c && c <= 'z' {
			t[i] -= diff
		}
	}
	return nil
}

// String returns a sequence, with its comment at the start.
func (s Seq) String() string {
	return fmt.Sprintf("%c%s\n%s", cmmtChar, s.cmmt, string(s.seq))
}

// SeqSet is what the fasta reader produces. It remembers how many
// records were dropped at the cap, so a caller can warn about it.
// Names and residues live in one structure, so they can never get
// out of step when records are thrown away.
type SeqSet struct {
	seqs     []Seq
	nDropped int
}

// SeqSlc returns the slice of sequences.
func (sset *SeqSet) SeqSlc() []Seq { return sset.seqs }

// NSeq returns the number of sequences that were kept.
func (sset *SeqSet) NSeq() int { return len(sset.seqs) }

// NDropped returns the number of records thrown away at the cap.
func (sset *SeqSet) NDropped() int { return sset.nDropped }

// Upper uppercases every sequence in the set.
func (sset *SeqSet) Upper() error {
	for i := range sset.seqs {
		if err := sset.seqs[i].Upper(); err != nil {
			return err
		}
	}
	return nil
}

// Readfile takes a filename and reads sequences from it. An empty
// name means standard input, so one can put the program in a pipe.
func Readfile(fname string, s_opts *Options) (*SeqSet, error) {
	var fp io.ReadCloser
	var err error

	if fname != "" {
		if fp, err = os.Open(fname); err != nil {
			return nil, err
		}
	} else {
		fp = os.Stdin
	}
	defer fp.Close()

	sset := new(SeqSet)
	if err := ReadFasta(fp, sset, s_opts); err != nil {
		return nil, fmt.Errorf("reading %s: %w", fnameOrStdin(fname), err)
	}
	return sset, nil
}

func fnameOrStdin(fname string) string {
	if fname == "" {
		return "stdin"
	}
	return fname
}

// Str2SeqSet takes some strings and returns them as a SeqSet.
// sIn is a slice of strings which are the sequences.
// prefix is an optional argument. Sequences need names. If prefix is
// not given, sequences will be called "s0", "s1", ...
func Str2SeqSet(sIn []string, prefix ...string) *SeqSet {
	base := "s"
	if prefix != nil {
		base = prefix[0]
	}
	sset := new(SeqSet)
	for i, s := range sIn {
		f := Seq{cmmt: fmt.Sprint(base, i), seq: []byte(s)}
		sset.seqs = append(sset.seqs, f)
	}
	return sset
}
