package store

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"slices"
	"sort"

	"github.com/verte-zerg/tuitrace/internal/alphabet"
)

// TracedLettersKey is the kv key holding the traced letter sets.
const TracedLettersKey = "traced-letters"

// KV is the key/value subset of Store used by TracedLetters.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key, value string) error
}

// TracedLetters remembers which letters were completed, per alphabet.
// Every change is written through to the kv store.
type TracedLetters struct {
	kv     KV
	logger *slog.Logger
	sets   map[string]map[string]struct{}
}

// LoadTracedLetters reads the traced letter sets. A missing, unreadable or
// corrupt value yields an empty set; the failure is logged.
func LoadTracedLetters(ctx context.Context, kv KV, logger *slog.Logger) *TracedLetters {
	if logger == nil {
		logger = slog.Default()
	}
	t := &TracedLetters{kv: kv, logger: logger, sets: map[string]map[string]struct{}{}}
	raw, err := kv.Get(ctx, TracedLettersKey)
	if errors.Is(err, ErrNotFound) {
		return t
	}
	if err != nil {
		logger.Warn("failed to load traced letters", slog.String("error", err.Error()))
		return t
	}
	var stored map[string][]string
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		logger.Warn("discarding corrupt traced letters", slog.String("error", err.Error()))
		return t
	}
	for lang, ids := range stored {
		for _, id := range ids {
			t.add(lang, alphabet.Normalize(id))
		}
	}
	return t
}

// Mark records id as traced in lang. It reports whether the set changed.
func (t *TracedLetters) Mark(ctx context.Context, lang, id string) bool {
	id = alphabet.Normalize(id)
	if id == "" || t.Has(lang, id) {
		return false
	}
	t.add(lang, id)
	t.save(ctx)
	return true
}

// Has reports whether id was traced in lang.
func (t *TracedLetters) Has(lang, id string) bool {
	_, ok := t.sets[lang][alphabet.Normalize(id)]
	return ok
}

// List returns the traced letters of lang in alphabet order. Letters outside
// the alphabet, such as pack-only ids, come last in code point order.
func (t *TracedLetters) List(lang string) []string {
	set := t.sets[lang]
	if len(set) == 0 {
		return nil
	}
	order, _ := alphabet.Letters(lang)
	out := make([]string, 0, len(set))
	for _, id := range order {
		if _, ok := set[id]; ok {
			out = append(out, id)
		}
	}
	var extra []string
	for id := range set {
		if !slices.Contains(order, id) {
			extra = append(extra, id)
		}
	}
	sort.Strings(extra)
	return append(out, extra...)
}

// Count returns the number of traced letters in lang.
func (t *TracedLetters) Count(lang string) int {
	return len(t.sets[lang])
}

// Clear forgets the traced letters of lang, or of every alphabet when lang is
// empty.
func (t *TracedLetters) Clear(ctx context.Context, lang string) {
	if lang == "" {
		t.sets = map[string]map[string]struct{}{}
	} else {
		delete(t.sets, lang)
	}
	t.save(ctx)
}

func (t *TracedLetters) add(lang, id string) {
	set, ok := t.sets[lang]
	if !ok {
		set = map[string]struct{}{}
		t.sets[lang] = set
	}
	set[id] = struct{}{}
}

func (t *TracedLetters) save(ctx context.Context) {
	stored := make(map[string][]string, len(t.sets))
	for lang := range t.sets {
		stored[lang] = t.List(lang)
	}
	data, err := json.Marshal(stored)
	if err != nil {
		t.logger.Warn("failed to encode traced letters", slog.String("error", err.Error()))
		return
	}
	if err := t.kv.Put(ctx, TracedLettersKey, string(data)); err != nil {
		t.logger.Warn("failed to save traced letters", slog.String("error", err.Error()))
	}
}
