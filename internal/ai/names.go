package ai

import (
	"fmt"
	"math/rand"
)

// DefaultNames is the built-in pool of AI display names, used when the
// configuration does not supply its own.
var DefaultNames = []string{
	"Einstein", "Newton", "Da Vinci", "Curie", "Tesla",
	"Shakespeare", "Beethoven", "Mozart", "Van Gogh", "Picasso",
	"Socrates", "Plato", "Aristotle", "Confucius", "Laozi",
	"Turing", "Lovelace", "Hopper", "Chaplin", "Hepburn",
}

// NamePool hands out AI display names from a shuffled pool.
type NamePool struct {
	names []string
	next  int
}

// NewNamePool shuffles the given names (DefaultNames when empty) with the
// injected random source.
func NewNamePool(r *rand.Rand, names []string) *NamePool {
	if len(names) == 0 {
		names = DefaultNames
	}
	shuffled := make([]string, len(names))
	copy(shuffled, names)
	r.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
	return &NamePool{names: shuffled}
}

// Next returns the next AI display name, wrapping around if the pool is
// smaller than the table.
func (p *NamePool) Next() string {
	name := p.names[p.next%len(p.names)]
	p.next++
	return fmt.Sprintf("%s (AI)", name)
}
