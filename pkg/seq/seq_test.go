package seq_test

import (
	"fmt"
	"os"
	"strings"
	"testing"

	. "github.com/gcollet/mstatx-go/pkg/seq"
	"github.com/gcollet/mstatx-go/pkg/seq/common"
)

func cmmtHelp(got, want string, t *testing.T) {
	t.Helper()
	if got != want {
		t.Fatalf("checking comments wanted \"%s\" got \"%s\"", want, got)
	}
}

// TestComment is to check that comments are read exactly, correctly
func TestComment(t *testing.T) {
	c0 := "testcomment no space"
	c1 := " testcomment with space at start"
	s := "aaa\n"
	seqs := ">" + c0 + "\n" + s + ">" + c1 + "\n" + s
	sset := new(SeqSet)
	var s_opts Options

	if err := ReadFasta(strings.NewReader(seqs), sset, &s_opts); err != nil {
		t.Fatal("bust reading simple seqs in TestComment", err)
	}
	slc := sset.SeqSlc()
	cmmtHelp(slc[0].Cmmt(), c0, t)
	cmmtHelp(slc[1].Cmmt(), c1, t)
}

// TestName checks that the name is the comment up to the first blank.
func TestName(t *testing.T) {
	seqs := ">seq1 some description\nACGT\n> \nACGT\n"
	sset := new(SeqSet)
	if err := ReadFasta(strings.NewReader(seqs), sset, nil); err != nil {
		t.Fatal("reading seqs failed", err)
	}
	if got := sset.SeqSlc()[0].Name(); got != "seq1" {
		t.Fatalf("name got %q wanted seq1", got)
	}
	if got := sset.SeqSlc()[1].Name(); got != "" {
		t.Fatalf("blank comment should give empty name, got %q", got)
	}
}

// TestSmallBuf shrinks the read buffer, so the lexer has to glue
// records together from partial reads.
func TestSmallBuf(t *testing.T) {
	defer SetFastaRdSize(512)
	lengths := []int{1, 7, 8, 9, 200}
	sb := new(strings.Builder)
	for i, l := range lengths {
		fmt.Fprintf(sb, "> seq %d\n%s\n", i, strings.Repeat("a", l))
	}
	for _, rdsize := range []int{4, 8, 64} {
		SetFastaRdSize(rdsize)
		sset := new(SeqSet)
		s_opts := &Options{DiffLenSeq: true}
		if err := ReadFasta(strings.NewReader(sb.String()), sset, s_opts); err != nil {
			t.Fatal("reading with rdsize", rdsize, "failed:", err)
		}
		if sset.NSeq() != len(lengths) {
			t.Fatalf("rdsize %d got %d seqs wanted %d", rdsize, sset.NSeq(), len(lengths))
		}
		for i, l := range lengths {
			if got := sset.SeqSlc()[i].Len(); got != l {
				t.Fatalf("rdsize %d seq %d length got %d wanted %d", rdsize, i, got, l)
			}
		}
	}
}

// TestNoFinalNewline. The last record of a file often has no
// terminator.
func TestNoFinalNewline(t *testing.T) {
	seqs := ">s1\nACGT\n>s2\nACGT"
	sset := new(SeqSet)
	if err := ReadFasta(strings.NewReader(seqs), sset, nil); err != nil {
		t.Fatal("reading seqs failed", err)
	}
	if sset.NSeq() != 2 {
		t.Fatalf("got %d seqs wanted 2", sset.NSeq())
	}
	if got := string(sset.SeqSlc()[1].GetSeq()); got != "ACGT" {
		t.Fatalf("last seq got %q wanted ACGT", got)
	}
}

// TestCap feeds in more records than the reader keeps. The extras
// have to be counted, not silently lost.
func TestCap(t *testing.T) {
	const extra = 10
	sb := new(strings.Builder)
	for i := 0; i < MaxSeq+extra; i++ {
		fmt.Fprintf(sb, ">s%d\nACGT\n", i)
	}
	sset := new(SeqSet)
	if err := ReadFasta(strings.NewReader(sb.String()), sset, nil); err != nil {
		t.Fatal("reading capped set failed", err)
	}
	if sset.NSeq() != MaxSeq {
		t.Fatalf("got %d seqs wanted the cap, %d", sset.NSeq(), MaxSeq)
	}
	if sset.NDropped() != extra {
		t.Fatalf("got %d dropped wanted %d", sset.NDropped(), extra)
	}
	// The survivors are the first records, with names intact.
	if got := sset.SeqSlc()[MaxSeq-1].Name(); got != fmt.Sprint("s", MaxSeq-1) {
		t.Fatalf("last kept record is %q", got)
	}
}

// TestGapsStay. Blanks and minus signs within a sequence are gap
// symbols and must come through the reader untouched.
func TestGapsStay(t *testing.T) {
	seqs := ">s1\nAC-T\n>s2\nA GT\n"
	sset := new(SeqSet)
	if err := ReadFasta(strings.NewReader(seqs), sset, nil); err != nil {
		t.Fatal("reading seqs failed", err)
	}
	if got := string(sset.SeqSlc()[0].GetSeq()); got != "AC-T" {
		t.Fatalf("minus gap got %q wanted AC-T", got)
	}
	if got := string(sset.SeqSlc()[1].GetSeq()); got != "A GT" {
		t.Fatalf("blank gap got %q wanted \"A GT\"", got)
	}
	if !common.IsGap(sset.SeqSlc()[1].GetSeq()[1]) {
		t.Fatal("blank in a sequence should count as a gap")
	}
}

// TestRmvGaps checks the option that strips gaps while reading.
func TestRmvGaps(t *testing.T) {
	seqs := ">s1\nA-C--GT\n"
	sset := new(SeqSet)
	s_opts := &Options{RmvGapsRd: true, DiffLenSeq: true}
	if err := ReadFasta(strings.NewReader(seqs), sset, s_opts); err != nil {
		t.Fatal("reading seqs failed", err)
	}
	if got := string(sset.SeqSlc()[0].GetSeq()); got != "ACGT" {
		t.Fatalf("gap removal got %q wanted ACGT", got)
	}
}

// TestUpper checks upper-casing and the rejection of non-ascii junk.
func TestUpper(t *testing.T) {
	sset := Str2SeqSet([]string{"acgt", "AC-t"})
	if err := sset.Upper(); err != nil {
		t.Fatal("upper failed", err)
	}
	for i, want := range []string{"ACGT", "AC-T"} {
		if got := string(sset.SeqSlc()[i].GetSeq()); got != want {
			t.Fatalf("upper got %q wanted %q", got, want)
		}
	}
	bad := Str2SeqSet([]string{"ac\x80t"})
	if err := bad.Upper(); err == nil {
		t.Fatal("bad symbol should have provoked an error")
	}
}

// TestEmptyInput. No records at all is an error, not an empty set.
func TestEmptyInput(t *testing.T) {
	sset := new(SeqSet)
	if err := ReadFasta(strings.NewReader(""), sset, nil); err == nil {
		t.Fatal("expected an error on empty input")
	}
}

// TestZeroLenSeq. A comment with no residues after it is broken input.
func TestZeroLenSeq(t *testing.T) {
	sset := new(SeqSet)
	if err := ReadFasta(strings.NewReader(">a\n>b\nACGT\n"), sset, nil); err == nil {
		t.Fatal("expected an error on a zero length sequence")
	}
}

// TestReadfile does the same round trip, but through a real file.
func TestReadfile(t *testing.T) {
	seqs := ">s1\nACGT\n>s2\nAC-T\n"
	fname, err := common.WrtTemp(seqs)
	if err != nil {
		t.Fatal("tempfile", err)
	}
	defer os.Remove(fname)
	sset, err := Readfile(fname, nil)
	if err != nil {
		t.Fatal("Readfile failed", err)
	}
	if sset.NSeq() != 2 {
		t.Fatalf("got %d seqs wanted 2", sset.NSeq())
	}
	if _, err := Readfile(fname+"_not_there", nil); err == nil {
		t.Fatal("missing file should give an error")
	}
}

// TestStr2SeqSet checks the little test helper itself.
func TestStr2SeqSet(t *testing.T) {
	sset := Str2SeqSet([]string{"AAC", "AAG"}, "tt")
	if sset.NSeq() != 2 {
		t.Fatalf("got %d seqs wanted 2", sset.NSeq())
	}
	if got := sset.SeqSlc()[1].Name(); got != "tt1" {
		t.Fatalf("name got %q wanted tt1", got)
	}
	dflt := Str2SeqSet([]string{"A"})
	if got := dflt.SeqSlc()[0].Name(); got != "s0" {
		t.Fatalf("default name got %q wanted s0", got)
	}
}
