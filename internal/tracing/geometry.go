package tracing

import (
	"math"

	"github.com/verte-zerg/tuitrace/internal/strokes"
)

// Point is a position either in canvas pixels or normalized to [0,1],
// depending on context.
type Point struct {
	X float64
	Y float64
}

// Distance is the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Denormalize converts a checkpoint into canvas pixels.
func Denormalize(c strokes.Checkpoint, canvasSize float64) Point {
	return Point{X: c.X * canvasSize, Y: c.Y * canvasSize}
}

// Normalize converts canvas pixels into normalized coordinates.
func Normalize(p Point, canvasSize float64) Point {
	return Point{X: p.X / canvasSize, Y: p.Y / canvasSize}
}
