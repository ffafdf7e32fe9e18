// Package difficulty maps a difficulty level to tracing tolerance and hinting
// parameters. Easier levels only widen the tolerance multiplier; checkpoint
// geometry is the same for every level.
package difficulty

import (
	"fmt"
	"strings"
)

// Level names a difficulty preset.
type Level string

// Known levels.
const (
	Easy   Level = "easy"
	Medium Level = "medium"
	Hard   Level = "hard"
)

// Config holds the parameters of one level.
type Config struct {
	Level               Level
	ToleranceMultiplier float64
	// CheckpointRadius is the visual radius of a checkpoint in canvas pixels.
	CheckpointRadius   float64
	ShowNextCheckpoint bool
	ShowAllCheckpoints bool
	// StrokeWidth is the width of the child's ink in canvas pixels.
	StrokeWidth float64
}

// ToleranceRadius is the pixel distance within which a pointer reaches a
// checkpoint.
func (c Config) ToleranceRadius() float64 {
	return c.CheckpointRadius * c.ToleranceMultiplier
}

var presets = map[Level]Config{
	Easy: {
		Level:               Easy,
		ToleranceMultiplier: 2.0,
		CheckpointRadius:    20,
		ShowNextCheckpoint:  true,
		ShowAllCheckpoints:  true,
		StrokeWidth:         12,
	},
	Medium: {
		Level:               Medium,
		ToleranceMultiplier: 1.5,
		CheckpointRadius:    15,
		ShowNextCheckpoint:  true,
		ShowAllCheckpoints:  false,
		StrokeWidth:         8,
	},
	Hard: {
		Level:               Hard,
		ToleranceMultiplier: 1.0,
		CheckpointRadius:    12,
		ShowNextCheckpoint:  false,
		ShowAllCheckpoints:  false,
		StrokeWidth:         6,
	},
}

// Levels returns the known levels from easiest to hardest.
func Levels() []Level {
	return []Level{Easy, Medium, Hard}
}

// Lookup returns the preset for level.
func Lookup(level Level) (Config, bool) {
	cfg, ok := presets[level]
	return cfg, ok
}

// Get returns the preset for level, falling back to Easy for unknown levels.
func Get(level Level) Config {
	if cfg, ok := presets[level]; ok {
		return cfg
	}
	return presets[Easy]
}

// Parse converts user input into a known level.
func Parse(s string) (Level, error) {
	level := Level(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := presets[level]; !ok {
		return "", fmt.Errorf("unknown difficulty %q (use easy, medium or hard)", s)
	}
	return level, nil
}

// Next returns the level after l, wrapping to the easiest.
func Next(l Level) Level {
	levels := Levels()
	for i, candidate := range levels {
		if candidate == l {
			return levels[(i+1)%len(levels)]
		}
	}
	return Easy
}
