// Package sheet renders printable tracing worksheets as PNG images.
package sheet

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"
	"strconv"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/verte-zerg/tuitrace/internal/strokes"
)

// DefaultSize is the default worksheet side in pixels.
const DefaultSize = 600

// Options controls worksheet rendering.
type Options struct {
	// Size is the side of the square image in pixels.
	Size int
	// StrokeWidth is the guide stroke width relative to a 300px canvas.
	StrokeWidth float64
	// Checkpoints marks every checkpoint with a small dot.
	Checkpoints bool
	// Numbers labels the start of each stroke with its order.
	Numbers bool
}

var (
	paper      = color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}
	ruleColor  = color.RGBA{0xBB, 0xD7, 0xF0, 0xFF}
	guideColor = color.RGBA{0xD0, 0xD0, 0xD0, 0xFF}
	dotColor   = color.RGBA{0x8C, 0x8C, 0x8C, 0xFF}
	startColor = color.RGBA{0x43, 0xA0, 0x47, 0xFF}
	numColor   = color.RGBA{0x30, 0x30, 0x30, 0xFF}
)

const (
	margin       = 0.1
	circleSteps  = 24
	referenceDim = 300.0
)

// Render draws letter onto a new image.
func Render(letter strokes.LetterStrokeData, opts Options) *image.RGBA {
	size := opts.Size
	if size <= 0 {
		size = DefaultSize
	}
	width := opts.StrokeWidth
	if width <= 0 {
		width = 12
	}
	scale := float64(size) / referenceDim
	lineWidth := float32(width * scale)

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(paper), image.Point{}, draw.Src)

	p := page{size: float32(size), shiftX: centerShift(letter)}
	p.rules(img, float32(math.Max(1, scale)))

	guide := vector.NewRasterizer(size, size)
	for _, s := range letter.Strokes {
		for i, c := range s {
			x, y := p.point(c)
			addCircle(guide, x, y, lineWidth/2)
			if i > 0 {
				px, py := p.point(s[i-1])
				addSegment(guide, px, py, x, y, lineWidth)
			}
		}
	}
	guide.Draw(img, img.Bounds(), image.NewUniform(guideColor), image.Point{})

	if opts.Checkpoints {
		dots := vector.NewRasterizer(size, size)
		for _, s := range letter.Strokes {
			for _, c := range s {
				x, y := p.point(c)
				addCircle(dots, x, y, lineWidth/6+1)
			}
		}
		dots.Draw(img, img.Bounds(), image.NewUniform(dotColor), image.Point{})
	}

	starts := vector.NewRasterizer(size, size)
	for _, s := range letter.Strokes {
		if len(s) == 0 {
			continue
		}
		x, y := p.point(s[0])
		addCircle(starts, x, y, lineWidth/3+1)
	}
	starts.Draw(img, img.Bounds(), image.NewUniform(startColor), image.Point{})

	if opts.Numbers {
		p.numbers(img, letter, lineWidth)
	}
	return img
}

// WritePNG renders letter and encodes it as PNG.
func WritePNG(w io.Writer, letter strokes.LetterStrokeData, opts Options) error {
	return png.Encode(w, Render(letter, opts))
}

// Save writes the worksheet for letter to path.
func Save(path string, letter strokes.LetterStrokeData, opts Options) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create worksheet: %w", err)
	}
	if err := WritePNG(f, letter, opts); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to encode worksheet: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close worksheet: %w", err)
	}
	return nil
}

type page struct {
	size float32
	// shiftX moves the letter sideways in normalized units. Vertical
	// placement stays fixed so the letter sits on the rules.
	shiftX float64
}

// centerShift is the horizontal offset that centers the letter's checkpoints
// on the page.
func centerShift(letter strokes.LetterStrokeData) float64 {
	minX, _, maxX, _, ok := letter.Bounds()
	if !ok {
		return 0
	}
	return 0.5 - (minX+maxX)/2
}

func (p page) point(c strokes.Checkpoint) (float32, float32) {
	inner := p.size * (1 - 2*margin)
	off := p.size * margin
	return off + float32(c.X+p.shiftX)*inner, off + float32(c.Y)*inner
}

// rules draws the handwriting lines at the top, middle and bottom of the
// letter box.
func (p page) rules(img draw.Image, thickness float32) {
	r := vector.NewRasterizer(int(p.size), int(p.size))
	for _, y := range []float64{0.2, 0.5, 0.8} {
		_, py := p.point(strokes.Checkpoint{Y: y})
		r.MoveTo(0, py-thickness/2)
		r.LineTo(p.size, py-thickness/2)
		r.LineTo(p.size, py+thickness/2)
		r.LineTo(0, py+thickness/2)
		r.ClosePath()
	}
	r.Draw(img, img.Bounds(), image.NewUniform(ruleColor), image.Point{})
}

func (p page) numbers(img draw.Image, letter strokes.LetterStrokeData, lineWidth float32) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(numColor),
		Face: basicfont.Face7x13,
	}
	n := 0
	for _, s := range letter.Strokes {
		if len(s) == 0 {
			continue
		}
		n++
		x, y := p.point(s[0])
		d.Dot = fixed.P(int(x+lineWidth/2+2), int(y-lineWidth/2-2))
		d.DrawString(strconv.Itoa(n))
	}
}

// addSegment adds a rectangle of the given width around a-b. All shapes are
// wound the same way so overlaps do not cancel out.
func addSegment(r *vector.Rasterizer, ax, ay, bx, by, width float32) {
	dx, dy := bx-ax, by-ay
	length := float32(math.Hypot(float64(dx), float64(dy)))
	if length == 0 {
		return
	}
	nx, ny := -dy/length*width/2, dx/length*width/2
	r.MoveTo(ax+nx, ay+ny)
	r.LineTo(bx+nx, by+ny)
	r.LineTo(bx-nx, by-ny)
	r.LineTo(ax-nx, ay-ny)
	r.ClosePath()
}

func addCircle(r *vector.Rasterizer, cx, cy, radius float32) {
	if radius <= 0 {
		return
	}
	for i := 0; i <= circleSteps; i++ {
		a := -2 * math.Pi * float64(i) / circleSteps
		x := cx + radius*float32(math.Cos(a))
		y := cy + radius*float32(math.Sin(a))
		if i == 0 {
			r.MoveTo(x, y)
			continue
		}
		r.LineTo(x, y)
	}
	r.ClosePath()
}
