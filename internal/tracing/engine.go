// Package tracing validates a letter trace against its authored checkpoints.
//
// An Engine tracks which checkpoint the pointer must reach next. It only ever
// hit-tests that single checkpoint, so checkpoints are reached strictly in
// authored order. The engine is synchronous and owned by one tracing session;
// it performs no I/O and needs no locking.
package tracing

import (
	"math"

	"github.com/verte-zerg/tuitrace/internal/difficulty"
	"github.com/verte-zerg/tuitrace/internal/strokes"
)

// MinTrailDistance is the pixel distance a move has to cover before another
// trail point is recorded.
const MinTrailDistance = 3.0

// Options configures a new Engine.
type Options struct {
	// Letter is the geometry to trace. A nil letter disables the engine.
	Letter     *strokes.LetterStrokeData
	Difficulty difficulty.Level
	// CanvasSize is the side of the square canvas, in pixels, that pointer
	// coordinates are given in.
	CanvasSize float64
	// OnCheckpointReached fires for every reached checkpoint that does not
	// complete the letter.
	OnCheckpointReached func(stroke, checkpoint int)
	// OnLetterComplete fires once when the last checkpoint is reached.
	OnLetterComplete func()
}

// Engine is the per-letter tracing state machine.
type Engine struct {
	letter     *strokes.LetterStrokeData
	config     difficulty.Config
	canvasSize float64
	total      int

	onCheckpointReached func(stroke, checkpoint int)
	onLetterComplete    func()

	currentStroke     int
	currentCheckpoint int
	complete          bool

	drawing   bool
	drawn     []Point
	lastPixel Point
	hasLast   bool

	samples int
	lifts   int
}

// New creates an engine in its initial state.
func New(opts Options) *Engine {
	e := &Engine{
		config:              difficulty.Get(opts.Difficulty),
		canvasSize:          opts.CanvasSize,
		onCheckpointReached: opts.OnCheckpointReached,
		onLetterComplete:    opts.OnLetterComplete,
	}
	if e.canvasSize <= 0 {
		e.canvasSize = 1
	}
	if opts.Letter != nil {
		l := opts.Letter.Clone()
		e.letter = &l
		e.total = l.TotalCheckpoints()
	}
	e.Reset()
	return e
}

// Reset returns the session to its initial state. It is idempotent.
func (e *Engine) Reset() {
	e.currentStroke = 0
	e.currentCheckpoint = 0
	e.complete = false
	e.drawing = false
	e.drawn = nil
	e.hasLast = false
	e.samples = 0
	e.lifts = 0
	if e.letter == nil {
		return
	}
	if e.total == 0 {
		// Nothing to trace: vacuously complete.
		e.complete = true
		return
	}
	e.currentStroke = e.firstStrokeFrom(0)
}

// PointerDown starts drawing at canvas pixel (x, y).
func (e *Engine) PointerDown(x, y float64) {
	if e.letter == nil || e.complete {
		return
	}
	e.drawing = true
	p := Point{X: x, Y: y}
	e.record(p)
	e.samples++
	e.checkHit(p)
}

// PointerMove continues drawing at canvas pixel (x, y).
func (e *Engine) PointerMove(x, y float64) {
	if !e.drawing || e.complete {
		return
	}
	p := Point{X: x, Y: y}
	if !e.hasLast || Distance(p, e.lastPixel) > MinTrailDistance {
		e.record(p)
	}
	e.samples++
	e.checkHit(p)
}

// PointerUp stops drawing. The checkpoint position is kept.
func (e *Engine) PointerUp() {
	if e.drawing {
		e.lifts++
	}
	e.drawing = false
	e.hasLast = false
}

// CheckCheckpointHit reports whether canvas pixel p is within the tolerance
// radius of the next required checkpoint.
func (e *Engine) CheckCheckpointHit(p Point) bool {
	target, ok := e.NextCheckpoint()
	if !ok {
		return false
	}
	return Distance(p, Denormalize(target, e.canvasSize)) <= e.ToleranceRadius()
}

// NextCheckpoint returns the checkpoint the pointer has to reach next.
func (e *Engine) NextCheckpoint() (strokes.Checkpoint, bool) {
	if e.letter == nil || e.complete {
		return strokes.Checkpoint{}, false
	}
	return e.letter.Strokes[e.currentStroke][e.currentCheckpoint], true
}

// Progress is the rounded percentage of reached checkpoints. It is 100 only
// once the letter is complete, and 100 for a letter without checkpoints.
func (e *Engine) Progress() int {
	if e.letter == nil {
		return 0
	}
	if e.total == 0 || e.complete {
		return 100
	}
	done := e.letter.CheckpointsBefore(e.currentStroke) + e.currentCheckpoint
	pct := int(math.Round(100 * float64(done) / float64(e.total)))
	if pct >= 100 {
		pct = 99
	}
	return pct
}

// CurrentStroke returns the index of the stroke being traced.
func (e *Engine) CurrentStroke() int { return e.currentStroke }

// CurrentCheckpoint returns the index of the next checkpoint in the current stroke.
func (e *Engine) CurrentCheckpoint() int { return e.currentCheckpoint }

// IsComplete reports whether every checkpoint has been reached.
func (e *Engine) IsComplete() bool { return e.complete }

// IsDrawing reports whether a pointer is down.
func (e *Engine) IsDrawing() bool { return e.drawing }

// Enabled reports whether the engine has geometry to trace.
func (e *Engine) Enabled() bool { return e.letter != nil }

// Config returns the active difficulty parameters.
func (e *Engine) Config() difficulty.Config { return e.config }

// CanvasSize returns the canvas side in pixels.
func (e *Engine) CanvasSize() float64 { return e.canvasSize }

// ToleranceRadius returns the hit radius in pixels.
func (e *Engine) ToleranceRadius() float64 { return e.config.ToleranceRadius() }

// Letter returns the traced geometry, or nil when disabled.
func (e *Engine) Letter() *strokes.LetterStrokeData { return e.letter }

// DrawnPoints returns a copy of the normalized ink trail.
func (e *Engine) DrawnPoints() []Point {
	return append([]Point(nil), e.drawn...)
}

// Samples counts pointer positions processed while drawing.
func (e *Engine) Samples() int { return e.samples }

// Lifts counts how many times the pointer was lifted while drawing.
func (e *Engine) Lifts() int { return e.lifts }

func (e *Engine) record(p Point) {
	e.drawn = append(e.drawn, Normalize(p, e.canvasSize))
	e.lastPixel = p
	e.hasLast = true
}

func (e *Engine) checkHit(p Point) {
	if e.CheckCheckpointHit(p) {
		e.advance()
	}
}

func (e *Engine) advance() {
	stroke, checkpoint := e.currentStroke, e.currentCheckpoint
	if checkpoint+1 < len(e.letter.Strokes[stroke]) {
		e.currentCheckpoint++
		e.notifyCheckpoint(stroke, checkpoint)
		return
	}
	if next := e.firstStrokeFrom(stroke + 1); next < len(e.letter.Strokes) {
		e.currentStroke = next
		e.currentCheckpoint = 0
		e.notifyCheckpoint(stroke, checkpoint)
		return
	}
	e.complete = true
	if e.onLetterComplete != nil {
		e.onLetterComplete()
	}
}

// firstStrokeFrom skips strokes without checkpoints.
func (e *Engine) firstStrokeFrom(i int) int {
	for i < len(e.letter.Strokes) && len(e.letter.Strokes[i]) == 0 {
		i++
	}
	return i
}

func (e *Engine) notifyCheckpoint(stroke, checkpoint int) {
	if e.onCheckpointReached != nil {
		e.onCheckpointReached(stroke, checkpoint)
	}
}
