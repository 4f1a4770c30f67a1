// Constants and little helpers shared by the packages that handle
// sequences and alignments.

package common

import (
	"fmt"
	"io"
	"os"
)

const (
	ExitSuccess = iota
	ExitFailure
	ExitUsageError
)

const GapChar byte = '-'    // a minus sign is the usual gap symbol
const GapCharAlt byte = ' ' // a blank in an aligned column also counts as a gap

// IsGap says whether a symbol counts as a gap in an alignment column.
func IsGap(c byte) bool { return c == GapChar || c == GapCharAlt }

// WrtTemp writes a string to a temporary file and returns
// the filename. It is used all over the place in testing.
func WrtTemp(s string) (string, error) {
	f_tmp, err := os.CreateTemp("", "_del_me_testing")
	if err != nil {
		return "", fmt.Errorf("tempfile fail")
	}

	if _, err := io.WriteString(f_tmp, s); err != nil {
		return "", fmt.Errorf("writing string to temp file %v", f_tmp.Name())
	}
	name := f_tmp.Name()
	f_tmp.Close()
	return name, nil
}
