package importer

import (
	"math/rand"
	"time"
)

// PasswordLength is the length of generated initial passwords.
const PasswordLength = 8

// passwordAlphabet is the 62-symbol alphanumeric alphabet passwords are drawn
// from, uniformly.
const passwordAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// PasswordGenerator issues random initial passwords for newly created
// accounts. It is an explicit dependency of the import pipeline rather than
// ambient randomness so tests can seed it and get deterministic output.
type PasswordGenerator struct {
	rng *rand.Rand
}

// NewPasswordGenerator returns a generator seeded from the current time.
func NewPasswordGenerator() *PasswordGenerator {
	return NewSeededPasswordGenerator(time.Now().UnixNano())
}

// NewSeededPasswordGenerator returns a generator with a fixed seed. Intended
// for tests.
func NewSeededPasswordGenerator(seed int64) *PasswordGenerator {
	return &PasswordGenerator{rng: rand.New(rand.NewSource(seed))}
}

// Generate returns a fresh random password. Passwords are only ever generated
// at account creation; existing accounts never get a new one during imports.
func (g *PasswordGenerator) Generate() string {
	buf := make([]byte, PasswordLength)
	for i := range buf {
		buf[i] = passwordAlphabet[g.rng.Intn(len(passwordAlphabet))]
	}
	return string(buf)
}
