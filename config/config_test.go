package config_test

import (
	"testing"

	"github.com/gcollet/mstatx-go/config"
)

// TestDefaults runs the setup without a settings file and checks the
// values a bare run would get.
func TestDefaults(t *testing.T) {
	config.Setup()
	c := config.New()
	if c.Verbose {
		t.Fatal("verbose should default to off")
	}
	if c.OutName != "" {
		t.Fatalf("out should default to stdout, got %q", c.OutName)
	}
	if c.MatrixDir != "matrices" || c.MatrixFile != "blosum62.mat" {
		t.Fatalf("matrix defaults got %q / %q", c.MatrixDir, c.MatrixFile)
	}
	if c.FactorA != 1.0 || c.FactorB != 0.5 || c.FactorC != 3.0 {
		t.Fatalf("trident exponents got %g %g %g", c.FactorA, c.FactorB, c.FactorC)
	}
}
