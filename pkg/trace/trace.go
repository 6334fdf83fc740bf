// Package trace records the samples an easing evaluator produces and draws
// them as a curve.
//
// A [Trace] is an [easing.Observer]: attach it to a [easing.Method] and every
// evaluated frame adds one point, with time normalized by the method's
// duration.
//
//	tr := trace.New()
//	easing.BounceEaseOut.Glide(1000, animator, tr)
//	// ... run the animation ...
//	err := tr.WritePNG(f, 480, 320)
package trace

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"slices"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/go-drift/motion/pkg/easing"
)

const (
	// Margin is the gap between the image edge and the frame rectangle.
	Margin = 8
	// StrokeWidth is the width of the frame and the curve.
	StrokeWidth = 3.0
)

var (
	// LineColor is used for the frame and the curve.
	LineColor = color.RGBA{R: 77, G: 83, B: 96, A: 255}
	// Background fills the image before drawing.
	Background = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// Point is one recorded sample. X is the elapsed fraction of the duration,
// Y the eased value.
type Point struct {
	X, Y float64
}

// Trace accumulates points in the order they are observed.
type Trace struct {
	points []Point
}

var _ easing.Observer = (*Trace)(nil)

// New returns an empty trace.
func New() *Trace {
	return &Trace{}
}

// On implements [easing.Observer].
func (t *Trace) On(time, value, start, delta, duration float64) {
	x := 1.0
	if duration > 0 {
		x = time / duration
	}
	t.points = append(t.points, Point{X: x, Y: value})
}

// Clear drops every recorded point.
func (t *Trace) Clear() {
	t.points = t.points[:0]
}

// Len returns the number of recorded points.
func (t *Trace) Len() int {
	return len(t.points)
}

// Points returns a copy of the recorded points.
func (t *Trace) Points() []Point {
	return slices.Clone(t.points)
}

// Bounds returns the smallest and largest recorded values. An empty trace
// reports (0, 0).
func (t *Trace) Bounds() (lo, hi float64) {
	if len(t.points) == 0 {
		return 0, 0
	}
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, p := range t.points {
		lo = min(lo, p.Y)
		hi = max(hi, p.Y)
	}
	return lo, hi
}

// Sample evaluates curve at steps+1 evenly spaced fractions from 0 to 1 over
// a 0..1 change and returns the recorded trace.
func Sample(curve easing.Curve, steps int) *Trace {
	steps = max(steps, 1)
	t := New()
	m := curve.Method(1000)
	m.AddObserver(t)
	for i := 0; i <= steps; i++ {
		m.Evaluate(float64(i)/float64(steps), 0, 1)
	}
	return t
}

// Render draws the frame and the curve on a white image. Values are scaled
// to the recorded range so overshooting curves stay inside the frame.
func (t *Trace) Render(width, height int) *image.RGBA {
	width, height = max(width, 1), max(height, 1)
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)

	frame := rect{
		x0: Margin, y0: Margin,
		x1: float32(width - Margin), y1: float32(height - Margin),
	}
	if frame.x1-frame.x0 <= 2*StrokeWidth || frame.y1-frame.y0 <= 2*StrokeWidth {
		return dst
	}

	z := vector.NewRasterizer(width, height)
	z.DrawOp = draw.Over
	strokeRect(z, frame, StrokeWidth)

	plot := frame.inset(Margin)
	lo, hi := t.Bounds()
	span := hi - lo
	var prev [2]float32
	for i, p := range t.points {
		y := 0.5
		if span > 0 {
			y = (p.Y - lo) / span
		}
		cur := [2]float32{
			plot.x0 + float32(p.X)*(plot.x1-plot.x0),
			plot.y1 - float32(y)*(plot.y1-plot.y0),
		}
		if i > 0 {
			strokeSegment(z, prev, cur, StrokeWidth)
		}
		prev = cur
	}

	z.Draw(dst, dst.Bounds(), image.NewUniform(LineColor), image.Point{})
	return dst
}

// WritePNG renders the trace and encodes it to w.
func (t *Trace) WritePNG(w io.Writer, width, height int) error {
	return png.Encode(w, t.Render(width, height))
}

type rect struct {
	x0, y0, x1, y1 float32
}

func (r rect) inset(d float32) rect {
	return rect{r.x0 + d, r.y0 + d, r.x1 - d, r.y1 - d}
}

// strokeRect adds an outline centred on r. The inner contour runs the other
// way round so the rasterizer leaves the middle empty.
func strokeRect(z *vector.Rasterizer, r rect, width float32) {
	o, i := r.inset(-width/2), r.inset(width/2)
	z.MoveTo(o.x0, o.y0)
	z.LineTo(o.x1, o.y0)
	z.LineTo(o.x1, o.y1)
	z.LineTo(o.x0, o.y1)
	z.ClosePath()
	z.MoveTo(i.x0, i.y0)
	z.LineTo(i.x0, i.y1)
	z.LineTo(i.x1, i.y1)
	z.LineTo(i.x1, i.y0)
	z.ClosePath()
}

// strokeSegment adds a quad of the given width around a→b. Every quad has the
// same winding, so overlaps at joints accumulate instead of cancelling.
func strokeSegment(z *vector.Rasterizer, a, b [2]float32, width float32) {
	dx, dy := b[0]-a[0], b[1]-a[1]
	l := float32(math.Hypot(float64(dx), float64(dy)))
	if l == 0 {
		return
	}
	nx, ny := -dy/l*width/2, dx/l*width/2
	z.MoveTo(a[0]+nx, a[1]+ny)
	z.LineTo(b[0]+nx, b[1]+ny)
	z.LineTo(b[0]-nx, b[1]-ny)
	z.LineTo(a[0]-nx, a[1]-ny)
	z.ClosePath()
}
