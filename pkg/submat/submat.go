// Read a substitution matrix such as blosum62 and hand out pairwise
// similarity scores, raw or normalised onto [0,1] by the matrix-wide
// extrema.

package submat

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/andrew-torda/matrix"
)

// Submat is the exported type. Its internals do not have to be exported.
type Submat struct {
	mat      *matrix.FMatrix2d
	cmap     [128]int8
	alphabet []byte
	min, max float32
}

const notset int8 = -1

// String prints out a substitution matrix. Useful during debugging.
func (submat *Submat) String() (s string) {
	s = fmt.Sprintf("%4s", " ")
	for _, c := range submat.alphabet {
		s += fmt.Sprintf("%4s", string(c))
	}
	s += "\n"
	for _, c := range submat.alphabet {
		s += fmt.Sprintf("%4s", string(c))
		for _, d := range submat.alphabet {
			s += fmt.Sprintf("%4.0f", submat.mat.Mat[submat.cmap[c]][submat.cmap[d]])
		}
		s += "\n"
	}
	return s
}

// CmmtScanner is a wrapper around bufio.Scanner that will ignore anything
// after a comment character and remove leading and trailing white space.
type CmmtScanner struct {
	bufio.Scanner
	cmmt byte // Comment character
}

// NewCmmtScanner is a wrapper around scanner, but
//   - jumps over blank lines
//   - removes leading spaces
//   - removes anything after a comment character
func NewCmmtScanner(r io.Reader, cmmt byte) *CmmtScanner {
	s := bufio.NewScanner(r)
	return &CmmtScanner{*s, cmmt}
}

// CBytes presents exactly the same interface as scanner.Bytes, but
// has to do a bit more work.
// Before returning, we remove anything after the comment symbol and
// strip leading and trailing white space.
// If this leaves us with an empty string, we call Scan again.
// Like the Bytes function, this works directly in the i/o buffer
// and does not allocate any memory. If you like the string it returns,
// you have to save it somewhere.
func (s *CmmtScanner) CBytes() []byte {
	ok := true
	for b := s.Bytes(); ok; ok, b = s.Scan(), s.Bytes() {
		for i := 0; i < len(b); i++ {
			if b[i] == s.cmmt {
				b = b[:i]
				break
			}
		}
		b = bytes.TrimSpace(b)
		if len(b) > 0 {
			return b
		}
	}
	return nil
}

// The first non-comment line of the substitution matrix file
// contains a list of the allowed characters. Each field has to be
// one character long.
func alfbt_line(inline []byte, submat *Submat) (n_alfbt int, err error) {
	cmap := submat.cmap[:]
	for i := range submat.cmap {
		cmap[i] = notset
	}
	f := bytes.Fields(inline)
	n_alfbt = len(f)
	for _, c := range f {
		if len(c) != 1 {
			err = errors.New("alfbt_line: expected a single character, got " + string(c))
			return
		}
		if c[0] >= 128 {
			err = errors.New("alfbt_line: saw a non-ascii character in " + string(inline))
			return
		}
	}
	for i, c := range f {
		cmap[c[0]] = int8(i)
		submat.alphabet = append(submat.alphabet, c[0])
	}
	for i, c := range f { // If not set, set both upper and lower case
		l := (bytes.ToLower(c))[0] // This is safe, since we have checked
		u := (bytes.ToUpper(c))[0] // that c is one byte long
		if cmap[l] == notset {     // Lower case index
			cmap[l] = int8(i)
		}
		if cmap[u] == notset { //     Corresponding upper case index
			cmap[u] = int8(i)
		}
	}

	return len(f), err
}

// ReadFrom reads a substitution matrix from an io.Reader, so we can
// read from files and from strings when testing. The global extrema
// are collected on the way through.
func ReadFrom(rdr io.Reader) (submat *Submat, err error) {
	var n_alfbt int
	submat = new(Submat)
	scnr := NewCmmtScanner(rdr, '#')
	scnr.Scan()
	if n_alfbt, err = alfbt_line(scnr.CBytes(), submat); err != nil {
		return submat, err
	}
	if n_alfbt == 0 {
		return submat, errors.New("empty alphabet line in substitution matrix")
	}
	submat.mat = matrix.NewFMatrix2d(n_alfbt, n_alfbt)
	const s = "wrong number of items on line:\n"
	nc := 0
	first := true
	for scnr.Scan() {
		line := scnr.CBytes()
		if len(line) == 0 {
			break
		}
		fields := bytes.Fields(line)
		if len(fields) != n_alfbt+1 {
			return submat, errors.New(s + string(line))
		}
		if fields[0][0] >= 128 {
			return submat, errors.New("invalid character on line " + string(line))
		}
		i := submat.cmap[fields[0][0]]
		if i == notset {
			return submat, errors.New("row symbol not in alphabet on line " + string(line))
		}
		for j := 0; j < n_alfbt; j++ {
			f, e := strconv.ParseFloat(string(fields[j+1]), 32)
			if e != nil {
				return submat, e
			}
			x := float32(f)
			submat.mat.Mat[i][j], submat.mat.Mat[j][i] = x, x
			if first {
				submat.min, submat.max = x, x
				first = false
			}
			if x < submat.min {
				submat.min = x
			}
			if x > submat.max {
				submat.max = x
			}
		}
		nc++
	}
	if err = scnr.Err(); err != nil {
		return submat, err
	}
	if nc != n_alfbt {
		return submat, errors.New("not enough lines found")
	}
	if submat.min == submat.max {
		return submat, errors.New("degenerate matrix, all scores are equal")
	}
	return submat, nil
}

// Read will read a substitution matrix from a filename.
// Return a pointer to a Submat structure.
func Read(fname string) (*Submat, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	submat, err := ReadFrom(fp)
	if err != nil {
		return submat, fmt.Errorf("reading from %s: %w", fname, err)
	}
	return submat, nil
}

// Alphabet returns the matrix's symbols in file order.
func (submat *Submat) Alphabet() []byte { return submat.alphabet }

// AlphabetSize returns the number of symbols the matrix covers.
func (submat *Submat) AlphabetSize() int { return len(submat.alphabet) }

// Min returns the smallest score in the matrix.
func (submat *Submat) Min() float32 { return submat.min }

// Max returns the largest score in the matrix.
func (submat *Submat) Max() float32 { return submat.max }

// Score returns the similarity score of bytes a and b, given
// a specific scoring matrix.
func (submat *Submat) Score(a, b byte) float32 {
	i := submat.cmap[a]
	j := submat.cmap[b]
	return submat.mat.Mat[i][j]
}

// NormScore returns the score of a and b scaled onto [0,1] by the
// matrix-wide minimum and maximum.
func (submat *Submat) NormScore(a, b byte) float32 {
	return (submat.Score(a, b) - submat.min) / (submat.max - submat.min)
}
