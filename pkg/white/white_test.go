package white_test

import (
	"testing"

	"github.com/gcollet/mstatx-go/pkg/white"
)

// TestRemove checks that line breaks go away, but blanks and tabs,
// which can be gap symbols, stay put.
func TestRemove(t *testing.T) {
	var tdata = []struct{ in, want string }{
		{"abc\ndef\n", "abcdef"},
		{"ab c\r\nde\tf", "ab cde\tf"},
		{"\n\v\f\r", ""},
		{"", ""},
		{"  ", "  "},
		{"a-c \nd-f", "a-c d-f"},
	}
	for _, d := range tdata {
		b := []byte(d.in)
		white.Remove(&b)
		if string(b) != d.want {
			t.Fatalf("remove on %q got %q wanted %q", d.in, b, d.want)
		}
	}
}

// TestRemoveInPlace makes sure we really work in the caller's buffer.
func TestRemoveInPlace(t *testing.T) {
	b := []byte("ab\ncd")
	orig := b[:cap(b)]
	white.Remove(&b)
	if &b[0] != &orig[0] {
		t.Fatal("remove allocated a new buffer")
	}
	if string(b) != "abcd" {
		t.Fatalf("remove got %q wanted abcd", b)
	}
}
