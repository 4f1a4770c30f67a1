package common_test

import (
	"os"
	"testing"

	. "github.com/gcollet/mstatx-go/pkg/seq/common"
)

func TestIsGap(t *testing.T) {
	for _, c := range []byte{'-', ' '} {
		if !IsGap(c) {
			t.Fatalf("%q should be a gap", c)
		}
	}
	for _, c := range []byte{'A', 'a', '.', 0} {
		if IsGap(c) {
			t.Fatalf("%q should not be a gap", c)
		}
	}
}

func TestWrtTemp(t *testing.T) {
	const s = "some stuff\nfor a file"
	fname, err := WrtTemp(s)
	if err != nil {
		t.Fatal("WrtTemp failed", err)
	}
	defer os.Remove(fname)
	b, err := os.ReadFile(fname)
	if err != nil {
		t.Fatal("reading temp file back", err)
	}
	if string(b) != s {
		t.Fatalf("temp file got %q wanted %q", b, s)
	}
}
