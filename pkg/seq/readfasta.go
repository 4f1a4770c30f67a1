// Reader for fasta format files.

package seq

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"sync"

	. "github.com/gcollet/mstatx-go/pkg/seq/common"
	"github.com/gcollet/mstatx-go/pkg/white"
)

// An item is terminated by a newline if we are in a comment or a comment
// character ">" if we are in a sequence.
const (
	NL       = '\n'
	cmmtChar = '>'
)

type item struct {
	data     []byte
	complete bool
}

type lexer struct {
	input    []byte
	ichan    chan *item
	sset     *SeqSet
	opts     *Options
	rdr      io.Reader
	itempool sync.Pool
	cmmt     string // partial comment
	seq      []byte // partial sequence
	term     byte
	err      error
}

const defaultReadSize = 512

var rdsize int = defaultReadSize

// setFastaRdSize is only used during testing and benchmarking
func setFastaRdSize(i int) {
	if i <= 2 {
		panic("setFastaRdSize given buffer length of 2 or less")
	}
	rdsize = i
}

func newItem() interface{} { return new(item) }

// next reads from the input and sends an item to channel, ichan.
// An item is terminated by l.term, or the end of the buffer or
// end of input.
func (l *lexer) next() {
	l.itempool.New = newItem
	for {
		item := l.itempool.Get().(*item)
		if len(l.input) == 0 {
			l.input = make([]byte, rdsize)
			if n, err := l.rdr.Read(l.input); n != rdsize {
				if n == 0 {
					if err != nil && err != io.EOF {
						l.err = err // signal that a real error occurred.
					}
					item.data = []byte("")
					item.complete = true
					l.ichan <- item // we have to flush
					close(l.ichan)
					return
				} // Partial read. EOF, not an error.
				l.input[n] = l.term //   Add terminator
				l.input = l.input[:n+1]
			}
		}

		if ndx := bytes.IndexByte(l.input, l.term); ndx == -1 {
			item.data = l.input // no terminator found, so just send
			l.input = nil       // back whatever we have in the buffer.
			item.complete = false
		} else { //                                We did find a terminator
			newlInput := l.input[ndx+1:] //        Advance pointer
			item.data = l.input[:ndx]    //
			item.complete = true         //
			l.input = newlInput          //        Set up for next loop
			if l.term == NL {
				l.term = cmmtChar
			} else {
				l.term = NL
			}
		}
		l.ichan <- item
	}
}

type stateFn func(*lexer) stateFn

// rmvGaps strips gap characters from a piece of sequence, in place.
func rmvGaps(b *[]byte) {
	s := *b
	t := s[:0]
	for _, c := range s {
		if c != GapChar {
			t = append(t, c)
		}
	}
	*b = t
}

// We are reading a sequence
func gseq(l *lexer) stateFn {
	item := <-l.ichan
	defer l.itempool.Put(item)
	if item == nil || l.err != nil {
		return nil
	}

	white.Remove(&item.data)
	if l.opts.RmvGapsRd {
		rmvGaps(&item.data)
	}
	l.seq = append(l.seq, item.data...)
	if item.complete {
		if len(l.seq) == 0 && l.cmmt == "" {
			return gcmmt // empty tail at end of input, not a record
		}
		if len(l.seq) == 0 {
			l.err = errors.New("zero length sequence after \"" + l.cmmt + "\"")
		}
		if len(l.sset.seqs) < MaxSeq { // Names and residues go in together,
			seq := Seq{cmmt: l.cmmt, seq: l.seq}   // so the cap can never leave
			l.sset.seqs = append(l.sset.seqs, seq) // them out of step.
		} else {
			l.sset.nDropped++
		}
		l.cmmt = ""
		l.seq = nil
		return gcmmt
	}
	return gseq
}

// We are reading a comment
func gcmmt(l *lexer) stateFn {
	item := <-l.ichan
	defer l.itempool.Put(item)
	if item == nil || l.err != nil {
		return nil
	}

	l.cmmt = l.cmmt + string(item.data)
	if item.complete {
		item.complete = false
		// Only the first record in a file still carries its ">".
		// The others lose it as a terminator. Make them all match.
		l.cmmt = strings.TrimPrefix(l.cmmt, string(cmmtChar))
		return gseq
	}
	return gcmmt
}

// ReadFasta reads fasta formatted files into sset. Records past the
// MaxSeq cap are dropped whole and counted in sset.
func ReadFasta(rdr io.Reader, sset *SeqSet, s_opts *Options) (err error) {
	if s_opts == nil {
		s_opts = &Options{}
	}
	l := lexer{rdr: rdr, ichan: make(chan *item, 2), sset: sset, opts: s_opts, term: NL}

	go l.next()
	for state := gcmmt; state != nil; {
		state = state(&l)
	}
	if l.err == nil && sset.NSeq() == 0 {
		l.err = errors.New("no sequences found")
	}
	return l.err
}
