package strokes

import (
	"sync"

	"github.com/verte-zerg/tuitrace/internal/alphabet"
)

// Registry is a read-only lookup of letter geometry keyed by normalized id.
// It is built once at start and never mutated afterwards.
type Registry struct {
	letters map[string]LetterStrokeData
	ids     []string
}

// NewRegistry merges letter sets in order; a later set overrides letters of
// earlier ones with the same id.
func NewRegistry(sets ...[]LetterStrokeData) *Registry {
	r := &Registry{letters: map[string]LetterStrokeData{}}
	for _, set := range sets {
		for _, l := range set {
			id := alphabet.Normalize(l.ID)
			if id == "" {
				continue
			}
			if _, ok := r.letters[id]; !ok {
				r.ids = append(r.ids, id)
			}
			l = l.Clone()
			l.ID = id
			r.letters[id] = l
		}
	}
	return r
}

// Builtin returns the authored Hebrew, Latin, Cyrillic and digit geometry.
func Builtin() []LetterStrokeData {
	latin := latinLetters()
	byID := make(map[string]LetterStrokeData, len(latin))
	for _, l := range latin {
		byID[l.ID] = l
	}
	out := make([]LetterStrokeData, 0, 100)
	out = append(out, hebrewLetters()...)
	out = append(out, latin...)
	out = append(out, cyrillicLetters(byID)...)
	out = append(out, digitLetters()...)
	return out
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	return NewRegistry(Builtin())
})

// Default returns the registry of built-in letters.
func Default() *Registry {
	return defaultRegistry()
}

// Lookup returns a copy of the geometry for id. Unknown ids and letters
// without any checkpoint report false; hosts must disable tracing for them.
func (r *Registry) Lookup(id string) (LetterStrokeData, bool) {
	l, ok := r.letters[alphabet.Normalize(id)]
	if !ok || l.TotalCheckpoints() == 0 {
		return LetterStrokeData{}, false
	}
	return l.Clone(), true
}

// Has reports whether id can be traced.
func (r *Registry) Has(id string) bool {
	_, ok := r.Lookup(id)
	return ok
}

// IDs returns all registered ids in registration order.
func (r *Registry) IDs() []string {
	return append([]string(nil), r.ids...)
}

// Len returns the number of registered letters.
func (r *Registry) Len() int {
	return len(r.ids)
}

// Lookup queries the built-in registry.
func Lookup(id string) (LetterStrokeData, bool) {
	return Default().Lookup(id)
}

// Has queries the built-in registry.
func Has(id string) bool {
	return Default().Has(id)
}
