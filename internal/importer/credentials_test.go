package importer

import (
	"strings"
	"testing"
)

func TestPasswordGeneratorLengthAndAlphabet(t *testing.T) {
	gen := NewSeededPasswordGenerator(42)

	for i := 0; i < 100; i++ {
		pwd := gen.Generate()
		if len(pwd) != PasswordLength {
			t.Fatalf("password %q has length %d, want %d", pwd, len(pwd), PasswordLength)
		}
		for _, c := range pwd {
			if !strings.ContainsRune(passwordAlphabet, c) {
				t.Fatalf("password %q contains %q, outside the alphabet", pwd, c)
			}
		}
	}
}

func TestPasswordGeneratorIsSeedable(t *testing.T) {
	a := NewSeededPasswordGenerator(7)
	b := NewSeededPasswordGenerator(7)

	for i := 0; i < 10; i++ {
		if pa, pb := a.Generate(), b.Generate(); pa != pb {
			t.Fatalf("generators with the same seed diverged: %q vs %q", pa, pb)
		}
	}
}

func TestPasswordGeneratorProducesFreshPasswords(t *testing.T) {
	gen := NewSeededPasswordGenerator(7)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		pwd := gen.Generate()
		if seen[pwd] {
			t.Fatalf("password %q repeated within 50 draws", pwd)
		}
		seen[pwd] = true
	}
}
