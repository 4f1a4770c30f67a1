// Package white removes line structure from pieces of sequence text.
// The fasta reader hands us the raw bytes between two record markers.
// We throw away the line terminators, but keep blanks and tabs, since
// a blank inside an aligned sequence is a gap, not junk.

package white

var lineBreak = [256]bool{
	'\n': true, '\v': true, '\f': true, '\r': true,
}

// Remove acts on a byte slice, in place, and removes all the line
// break characters. The length is adjusted, the capacity unchanged.
func Remove(sIn *[]byte) {
	s := *sIn
	t := s[:0]
	for _, c := range s {
		if !lineBreak[c] {
			t = append(t, c)
		}
	}
	*sIn = t
}
