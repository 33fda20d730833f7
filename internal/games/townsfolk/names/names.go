// Package names generates townsfolk names for the cube.
package names

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/townsfolk/internal/games/townsfolk/engine"
)

// DefaultFirst and DefaultLast are the built-in name tables.
var (
	DefaultFirst = []string{
		"Alice", "Bob", "Cory", "Diana", "Eric", "Frank", "Gabi", "Gloria",
		"Heisenberg", "Ivy", "Jack", "Kathy", "Leo", "Martha", "Nate", "Olivia",
		"Pete", "Quincy", "Raquel", "Seth", "Tina", "Uma", "Victor", "Wendy",
		"Xander", "Yurm", "Zack", "Zinedine", "Rupert", "Artur", "Lily",
	}
	DefaultLast = []string{
		"Knuckles", "Star", "Farndoogle", "Beets", "Sizzler", "Jambalaya", "Clementine",
		"Alfalfa", "the Mensch", "Orbital", "Smoochers", "Hairpiece", "Wynn",
		"Twister", "Barbarella", "Estevez", "Bretz", "Padua", "Curry", "California", "Gasolina",
	}
)

// Generator draws random "First Last" names. It never hands out the same
// name twice; repeats get the lowest free roman numeral suffix.
type Generator struct {
	rng   *rand.Rand
	first []string
	last  []string
	used  map[string]bool
}

// New creates a generator seeded with seed. Empty tables fall back to the
// defaults.
func New(seed int64, first, last []string) *Generator {
	if len(first) == 0 {
		first = DefaultFirst
	}
	if len(last) == 0 {
		last = DefaultLast
	}
	return &Generator{
		rng:   rand.New(rand.NewSource(seed)),
		first: first,
		last:  last,
		used:  make(map[string]bool),
	}
}

// Next returns a fresh name.
func (g *Generator) Next() string {
	base := g.first[g.rng.Intn(len(g.first))] + " " + g.last[g.rng.Intn(len(g.last))]
	name := base
	for n := 2; g.used[name]; n++ {
		name = fmt.Sprintf("%s %s", base, roman(n))
	}
	g.used[name] = true
	return name
}

// NextIdentity implements engine.IdentitySource.
func (g *Generator) NextIdentity() engine.Identity {
	return engine.Identity(g.Next())
}

var _ engine.IdentitySource = (*Generator)(nil)

// roman renders n in roman numerals, enough for any practical cube.
func roman(n int) string {
	values := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	symbols := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}
	out := ""
	for i, v := range values {
		for n >= v {
			out += symbols[i]
			n -= v
		}
	}
	return out
}
