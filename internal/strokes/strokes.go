// Package strokes holds the per-letter stroke and checkpoint geometry used by
// the tracing engine. All coordinates are normalized to [0,1]x[0,1] with the
// origin in the top-left corner.
package strokes

// Checkpoint is a normalized target point a pointer has to reach.
type Checkpoint struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	// Control marks a shaping point that is not a hit target. Hit-testing
	// does not consult it yet.
	Control bool `json:"control,omitempty" yaml:"control,omitempty"`
}

// Stroke is one continuous pen movement: checkpoints visited in order.
type Stroke []Checkpoint

// LetterStrokeData is the authored geometry of one letter.
type LetterStrokeData struct {
	ID      string   `json:"id" yaml:"id"`
	Strokes []Stroke `json:"strokes" yaml:"strokes"`
}

// TotalCheckpoints counts checkpoints across all strokes.
func (l LetterStrokeData) TotalCheckpoints() int {
	total := 0
	for _, s := range l.Strokes {
		total += len(s)
	}
	return total
}

// CheckpointsBefore counts the checkpoints of all strokes preceding stroke.
func (l LetterStrokeData) CheckpointsBefore(stroke int) int {
	total := 0
	for i := 0; i < stroke && i < len(l.Strokes); i++ {
		total += len(l.Strokes[i])
	}
	return total
}

// NonEmptyStrokes returns the indexes of strokes that have checkpoints.
func (l LetterStrokeData) NonEmptyStrokes() []int {
	idx := make([]int, 0, len(l.Strokes))
	for i, s := range l.Strokes {
		if len(s) > 0 {
			idx = append(idx, i)
		}
	}
	return idx
}

// Bounds returns the bounding box of all checkpoints. ok is false when the
// letter has no checkpoints.
func (l LetterStrokeData) Bounds() (minX, minY, maxX, maxY float64, ok bool) {
	for _, s := range l.Strokes {
		for _, c := range s {
			if !ok {
				minX, maxX, minY, maxY = c.X, c.X, c.Y, c.Y
				ok = true
				continue
			}
			minX = min(minX, c.X)
			maxX = max(maxX, c.X)
			minY = min(minY, c.Y)
			maxY = max(maxY, c.Y)
		}
	}
	return minX, minY, maxX, maxY, ok
}

// Clone returns a deep copy so callers cannot mutate registry data.
func (l LetterStrokeData) Clone() LetterStrokeData {
	out := LetterStrokeData{ID: l.ID, Strokes: make([]Stroke, len(l.Strokes))}
	for i, s := range l.Strokes {
		out.Strokes[i] = append(Stroke(nil), s...)
	}
	return out
}
