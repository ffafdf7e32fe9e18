package strokes

import "math"

// Authoring helpers. Coordinates follow the screen convention: y grows
// downward and arc angles are in degrees, 0 pointing right and 90 down.

func letter(id string, strokes ...Stroke) LetterStrokeData {
	return LetterStrokeData{ID: id, Strokes: strokes}
}

// path turns x,y pairs into a stroke with one checkpoint per vertex.
func path(coords ...float64) Stroke {
	s := make(Stroke, 0, len(coords)/2)
	for i := 0; i+1 < len(coords); i += 2 {
		s = append(s, Checkpoint{X: coords[i], Y: coords[i+1]})
	}
	return s
}

// line is a straight stroke with start, midpoint and end checkpoints.
func line(x1, y1, x2, y2 float64) Stroke {
	return path(x1, y1, (x1+x2)/2, (y1+y2)/2, x2, y2)
}

// dot is a single-checkpoint stroke.
func dot(x, y float64) Stroke {
	return path(x, y)
}

// arc samples n checkpoints on an ellipse from angle from to angle to.
func arc(cx, cy, rx, ry, from, to float64, n int) Stroke {
	if n < 2 {
		n = 2
	}
	s := make(Stroke, 0, n)
	for i := 0; i < n; i++ {
		a := (from + (to-from)*float64(i)/float64(n-1)) * math.Pi / 180
		s = append(s, Checkpoint{X: round3(cx + rx*math.Cos(a)), Y: round3(cy + ry*math.Sin(a))})
	}
	return s
}

// join concatenates strokes into one, dropping a checkpoint that repeats the
// previous one.
func join(parts ...Stroke) Stroke {
	var out Stroke
	for _, p := range parts {
		for _, c := range p {
			if n := len(out); n > 0 && near(out[n-1], c) {
				continue
			}
			out = append(out, c)
		}
	}
	return out
}

func near(a, b Checkpoint) bool {
	return math.Abs(a.X-b.X) < 0.011 && math.Abs(a.Y-b.Y) < 0.011
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
