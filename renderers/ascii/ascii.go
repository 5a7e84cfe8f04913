// Package ascii draws shapes onto a character canvas for terminal output.
package ascii

import (
	"context"
	"io"
	"math"

	"cdr.dev/slog"

	"oss.terrastruct.com/shapedit/lib/geo"
	"oss.terrastruct.com/shapedit/lib/go2"
	"oss.terrastruct.com/shapedit/lib/log"
	"oss.terrastruct.com/shapedit/renderers/ascii/asciicanvas"
	"oss.terrastruct.com/shapedit/renderers/ascii/charset"
	"oss.terrastruct.com/shapedit/shape"
)

const (
	DEFAULT_WIDTH = 60
	MIN_WIDTH     = 8
	MAX_WIDTH     = 1000

	// The canvas has at most MAX_HEIGHT_FACTOR rows per column of width.
	MAX_HEIGHT_FACTOR = 2

	// Terminal cells are about twice as tall as they are wide.
	cellAspect = 2.

	epsilon = 1e-9
)

type RenderOpts struct {
	Width   *int64
	Charset charset.Type
}

type Renderer struct {
	w    io.Writer
	opts RenderOpts
}

func New(w io.Writer, opts *RenderOpts) *Renderer {
	r := &Renderer{w: w}
	if opts != nil {
		r.opts = *opts
	}
	return r
}

func (r *Renderer) Render(ctx context.Context, shapes []shape.Shape, box geo.Box) error {
	out := Render(shapes, box, &r.opts)
	log.Debug(ctx, "rendered ascii", slog.F("shapes", len(shapes)), slog.F("bytes", len(out)))
	_, err := r.w.Write(out)
	return err
}

// Render returns the picture of shapes inside box followed by a caption
// describing box.
func Render(shapes []shape.Shape, box geo.Box, opts *RenderOpts) []byte {
	if opts == nil {
		opts = &RenderOpts{}
	}
	width := DEFAULT_WIDTH
	if opts.Width != nil {
		width = int(go2.Min(go2.Max(*opts.Width, MIN_WIDTH), MAX_WIDTH))
	}

	d := newDrawer(box, width, charset.New(opts.Charset))
	for _, s := range shapes {
		shape.Visit[struct{}](s, d)
	}

	out := d.canvas.ToByteArray()
	out = append(out, box.ToString()...)
	out = append(out, '\n')
	return out
}

type drawer struct {
	box    geo.Box
	chars  charset.Set
	canvas *asciicanvas.Canvas
	sx, sy float64
}

func newDrawer(box geo.Box, width int, chars charset.Set) *drawer {
	d := &drawer{
		box:   box,
		chars: chars,
	}
	bw, bh := box.Width(), box.Height()
	if bw <= 0 {
		bw = 1
	}
	if bh <= 0 {
		bh = 1
	}
	maxHeight := width * MAX_HEIGHT_FACTOR
	// One scale for both axes keeps shapes undistorted. Tall boxes are
	// limited by rows and get fewer columns.
	s := go2.Min(float64(width-1)/bw, float64(maxHeight-1)*cellAspect/bh)
	cols := go2.Max(int(math.Round(bw*s))+1, 2)
	rows := go2.Max(int(math.Round(bh*s/cellAspect))+1, 2)
	d.sx = float64(cols-1) / bw
	d.sy = float64(rows-1) / bh
	d.canvas = asciicanvas.New(cols, rows)
	return d
}

// cell maps a world point to fractional canvas coordinates. Row 0 is the top
// of the box.
func (d *drawer) cell(x, y float64) (float64, float64) {
	return (x - d.box.XMin) * d.sx, (d.box.YMax - y) * d.sy
}

func (d *drawer) set(x, y float64, char string) {
	cx, cy := d.cell(x, y)
	d.canvas.Set(int(math.Round(cx)), int(math.Round(cy)), char)
}

// segment draws a straight edge, picking the glyph from its on-screen slope.
func (d *drawer) segment(a, b geo.Point) {
	x1, y1 := d.cell(a.X, a.Y)
	x2, y2 := d.cell(b.X, b.Y)
	dx, dy := x2-x1, y2-y1

	char := d.slopeChar(dx, dy)
	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))))
	if steps == 0 {
		d.canvas.Set(int(math.Round(x1)), int(math.Round(y1)), char)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		d.canvas.Set(int(math.Round(x1+t*dx)), int(math.Round(y1+t*dy)), char)
	}
}

func (d *drawer) slopeChar(dx, dy float64) string {
	if geo.PrecisionCompare(dy, 0, epsilon) == 0 {
		return d.chars.Horizontal()
	}
	if geo.PrecisionCompare(dx, 0, epsilon) == 0 {
		return d.chars.Vertical()
	}
	ratio := math.Abs(dy / dx)
	switch {
	case ratio < 0.4:
		return d.chars.Horizontal()
	case ratio > 2.5:
		return d.chars.Vertical()
	case (dx > 0) == (dy > 0):
		// rows grow downward
		return d.chars.Backslash()
	default:
		return d.chars.ForwardSlash()
	}
}

// ellipse samples the outline of an axis-aligned ellipse with semi-axes rx
// and ry often enough to leave no gaps between cells.
func (d *drawer) ellipse(c geo.Point, rx, ry float64, char string) {
	if rx == 0 && ry == 0 {
		d.set(c.X, c.Y, char)
		return
	}
	circumference := 2 * math.Pi * math.Max(rx*d.sx, ry*d.sy)
	n := go2.Max(int(math.Ceil(circumference*2)), 16)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		d.set(c.X+rx*math.Cos(theta), c.Y+ry*math.Sin(theta), char)
	}
}

func (d *drawer) box4(corners geo.Points) {
	for i := range corners {
		d.segment(*corners[i], *corners[(i+1)%len(corners)])
	}
	tl, tr, br, bl := corners[0], corners[1], corners[2], corners[3]
	if geo.EuclideanDistance(tl.X, tl.Y, br.X, br.Y) == 0 {
		d.set(tl.X, tl.Y, d.chars.Star())
		return
	}
	d.set(tl.X, tl.Y, d.chars.TopLeftCorner())
	d.set(tr.X, tr.Y, d.chars.TopRightCorner())
	d.set(br.X, br.Y, d.chars.BottomRightCorner())
	d.set(bl.X, bl.Y, d.chars.BottomLeftCorner())
}

func (d *drawer) VisitPoint(p shape.Point) struct{} {
	d.set(p.X, p.Y, d.chars.Star())
	return struct{}{}
}

func (d *drawer) VisitLine(l shape.Line) struct{} {
	d.segment(l.Start, l.End)
	return struct{}{}
}

func (d *drawer) VisitCircle(c shape.Circle) struct{} {
	d.ellipse(c.Center, c.Radius, c.Radius, d.chars.Circle())
	return struct{}{}
}

func (d *drawer) VisitSquare(s shape.Square) struct{} {
	d.box4(s.Corners())
	return struct{}{}
}

func (d *drawer) VisitRectangle(r shape.Rectangle) struct{} {
	d.box4(r.Corners())
	return struct{}{}
}

func (d *drawer) VisitOval(o shape.Oval) struct{} {
	d.ellipse(o.Center, o.Width/2, o.Height/2, d.chars.Oval())
	return struct{}{}
}

func (d *drawer) VisitTriangle(t shape.Triangle) struct{} {
	d.segment(t.P1, t.P2)
	d.segment(t.P2, t.P3)
	d.segment(t.P3, t.P1)
	return struct{}{}
}
