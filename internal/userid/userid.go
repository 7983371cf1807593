// Package userid generates the short human-facing identifiers assigned to
// directory users.
//
// An identifier has the form "YY-NNNN": the last two digits of the creation
// year and a random number in [1000, 9999]. Identifiers are not unique.
package userid

import (
	"fmt"
	"math/rand/v2"
	"time"
)

const (
	minSuffix  = 1000
	suffixSpan = 9000 // [1000, 9999]
)

// Generator produces identifiers from a creation time and a random draw.
type Generator struct {
	intN func(n int) int
}

// New returns a Generator backed by the process-wide random source.
func New() *Generator {
	return &Generator{intN: rand.IntN}
}

// NewWithSource returns a Generator that draws from intN, which must return
// a value in [0, n).
func NewWithSource(intN func(n int) int) *Generator {
	return &Generator{intN: intN}
}

// Generate returns the identifier for a record created at t.
func (g *Generator) Generate(t time.Time) string {
	return fmt.Sprintf("%02d-%04d", t.Year()%100, minSuffix+g.intN(suffixSpan))
}
