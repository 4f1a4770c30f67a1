// Export some internals for testing.

package seq

// SetFastaRdSize lets tests shrink the read buffer so the lexer is
// forced through its partial-read paths.
func SetFastaRdSize(i int) { setFastaRdSize(i) }
