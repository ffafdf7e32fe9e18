// Package model defines shared data structures.
package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/verte-zerg/tuitrace/internal/alphabet"
	"github.com/verte-zerg/tuitrace/internal/difficulty"
)

// Letter orders understood by the picker.
const (
	OrderSequential = "sequential"
	OrderRandom     = "random"
	OrderWeak       = "weak"
)

// Orders lists the known letter orders.
func Orders() []string {
	return []string{OrderSequential, OrderRandom, OrderWeak}
}

// Config defines tracing settings.
type Config struct {
	Lang       string
	Difficulty difficulty.Level
	Order      string
	CanvasSize float64
	Letter     string
	Sound      bool
	Player     string
	SoundsDir  string
	PacksDir   string
	WeakWindow int

	ScoreboardURL string
	Child         string
}

// Validate checks that the settings name known values.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Lang, validation.Required, validation.In(toAny(alphabet.Languages())...)),
		validation.Field(&c.Difficulty, validation.Required, validation.In(toAny(difficulty.Levels())...)),
		validation.Field(&c.Order, validation.Required, validation.In(toAny(Orders())...)),
		validation.Field(&c.CanvasSize, validation.Required, validation.Min(1.0)),
		validation.Field(&c.WeakWindow, validation.Min(0)),
		validation.Field(&c.Player, validation.When(c.Sound, validation.Required)),
	)
}

func toAny[T any](values []T) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

// StatsConfig defines filters and options for stats output.
type StatsConfig struct {
	Lang        string
	Since       *time.Time
	Last        int
	CurveWindow int
}

// Validate checks the filters. An empty Lang means every language.
func (c *StatsConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Lang, validation.In(toAny(alphabet.Languages())...)),
		validation.Field(&c.Last, validation.Min(0)),
		validation.Field(&c.CurveWindow, validation.Required, validation.Min(1)),
	)
}

// TraceSession captures one traced (or abandoned) letter.
type TraceSession struct {
	StartedAt  time.Time
	EndedAt    time.Time
	Letter     string
	Lang       string
	Difficulty difficulty.Level
	Completed  bool
	Samples    int
	Lifts      int
	DurationMs int64
}

// SessionAggregate summarizes a session for reporting.
type SessionAggregate struct {
	SessionID  int64
	EndedAt    time.Time
	Letter     string
	Completed  bool
	Samples    int
	Lifts      int
	DurationMs int64
}

// LetterAggregate aggregates sessions of a single letter.
type LetterAggregate struct {
	Letter      string
	Attempts    int
	Completions int
	Lifts       int
	DurationMs  int64
}
