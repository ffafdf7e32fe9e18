// Package generator picks the next letter to trace.
package generator

import (
	"math/rand"
	"time"

	"github.com/verte-zerg/tuitrace/internal/model"
)

// DefaultWeakFactor is the extra weight given to weak or untraced letters.
const DefaultWeakFactor = 2.0

// Generator chooses letters from a fixed list in sequential, random or
// weak-weighted order. It keeps a history so the previous letter can be
// revisited.
type Generator struct {
	rnd     *rand.Rand
	letters []string
	order   string
	weights []float64
	total   float64

	history []string
	pos     int
}

// New returns a Generator seeded with the current time.
func New(letters []string, order string) *Generator {
	return NewWithSource(letters, order, rand.NewSource(time.Now().UnixNano()))
}

// NewWithSource returns a Generator drawing from src.
func NewWithSource(letters []string, order string, src rand.Source) *Generator {
	g := &Generator{
		rnd:     rand.New(src),
		letters: append([]string(nil), letters...),
		order:   order,
		pos:     -1,
	}
	g.SetFocus(nil, 0)
	return g
}

// Letters returns the letters the generator picks from.
func (g *Generator) Letters() []string {
	return append([]string(nil), g.letters...)
}

// SetFocus biases weak-order picks toward the focus letters. Every letter has
// weight 1; a focus letter adds factor.
func (g *Generator) SetFocus(focus []string, factor float64) {
	set := make(map[string]struct{}, len(focus))
	for _, id := range focus {
		set[id] = struct{}{}
	}
	g.weights = make([]float64, len(g.letters))
	g.total = 0
	for i, id := range g.letters {
		w := 1.0
		if _, ok := set[id]; ok {
			w += factor
		}
		g.weights[i] = w
		g.total += w
	}
}

// Current returns the letter last returned, or "" before the first pick.
func (g *Generator) Current() string {
	if g.pos < 0 {
		return ""
	}
	return g.history[g.pos]
}

// Next advances to the next letter. It returns "" when there are no letters.
func (g *Generator) Next() string {
	if len(g.letters) == 0 {
		return ""
	}
	if g.pos+1 < len(g.history) {
		g.pos++
		return g.history[g.pos]
	}
	var id string
	switch g.order {
	case model.OrderRandom:
		id = g.pickUniform()
	case model.OrderWeak:
		id = g.pickWeighted()
	default:
		id = g.pickSequential()
	}
	g.push(id)
	return id
}

// Prev steps back to the previously shown letter. At the start of the history
// it returns the current letter.
func (g *Generator) Prev() string {
	if g.pos > 0 {
		g.pos--
	}
	return g.Current()
}

// Seek jumps to id when it is one of the generator's letters.
func (g *Generator) Seek(id string) bool {
	for _, l := range g.letters {
		if l == id {
			g.push(id)
			return true
		}
	}
	return false
}

func (g *Generator) push(id string) {
	g.history = append(g.history[:g.pos+1], id)
	g.pos = len(g.history) - 1
}

func (g *Generator) pickSequential() string {
	cur := g.Current()
	for i, id := range g.letters {
		if id == cur {
			return g.letters[(i+1)%len(g.letters)]
		}
	}
	return g.letters[0]
}

// pickUniform avoids repeating the current letter when there is a choice.
func (g *Generator) pickUniform() string {
	if len(g.letters) == 1 {
		return g.letters[0]
	}
	cur := g.Current()
	for {
		id := g.letters[g.rnd.Intn(len(g.letters))]
		if id != cur {
			return id
		}
	}
}

func (g *Generator) pickWeighted() string {
	if len(g.letters) == 1 {
		return g.letters[0]
	}
	cur := g.Current()
	for attempt := 0; attempt < 8; attempt++ {
		r := g.rnd.Float64() * g.total
		acc := 0.0
		idx := len(g.weights) - 1
		for j, w := range g.weights {
			acc += w
			if r <= acc {
				idx = j
				break
			}
		}
		if id := g.letters[idx]; id != cur {
			return id
		}
	}
	return g.pickUniform()
}
