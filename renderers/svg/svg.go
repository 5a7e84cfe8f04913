// Package svg renders shapes to a standalone SVG document.
package svg

import (
	"bytes"
	"fmt"

	"oss.terrastruct.com/shapedit/lib/color"
	"oss.terrastruct.com/shapedit/lib/geo"
	"oss.terrastruct.com/shapedit/lib/go2"
	svglib "oss.terrastruct.com/shapedit/lib/svg"
	"oss.terrastruct.com/shapedit/shape"
)

const (
	DEFAULT_WIDTH = 600
	POINT_RADIUS  = 3
	STROKE_WIDTH  = 2
)

type RenderOpts struct {
	// Width of the document in pixels. Height follows the box aspect ratio.
	Width *int64
}

// Render returns an SVG document with one element per shape. The viewBox
// covers box with world y pointing up.
func Render(shapes []shape.Shape, box geo.Box, opts *RenderOpts) ([]byte, error) {
	width := int64(DEFAULT_WIDTH)
	if opts != nil && opts.Width != nil {
		width = go2.Max(*opts.Width, 1)
	}
	bw := box.Width()
	if bw <= 0 {
		bw = 1
	}
	pc := svglib.NewSVGPathContext(box.TopLeft(), float64(width)/bw)

	buf := &bytes.Buffer{}
	fmt.Fprintf(buf, `<?xml version="1.0" encoding="utf-8"?>`+"\n")
	fmt.Fprintf(buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%v" height="%v" viewBox="0 0 %v %v">`+"\n",
		pc.Length(box.Width()), pc.Length(box.Height()), pc.Length(box.Width()), pc.Length(box.Height()))
	fmt.Fprintf(buf, "%s\n", svglib.Title(box.ToString()))

	w := &writer{buf: buf, ctx: pc}
	for _, s := range shapes {
		if err := shape.Visit[error](s, w); err != nil {
			return nil, err
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes(), nil
}

type writer struct {
	buf *bytes.Buffer
	ctx *svglib.SvgPathContext
}

// element writes one tag carrying the shape's stroke and description.
func (w *writer) element(s shape.Shape, tag, attrs, fill string) {
	fmt.Fprintf(w.buf, `<%s class="shape %s" %s stroke="%s" stroke-width="%d" fill="%s">%s</%s>`+"\n",
		tag, s.Kind(), attrs, color.Stroke(s.Kind()), STROKE_WIDTH, fill, svglib.Title(s.Describe()), tag)
}

func (w *writer) VisitPoint(p shape.Point) error {
	fill, err := color.Darken(color.Stroke(p.Kind()))
	if err != nil {
		return err
	}
	c := w.ctx.Absolute(p.X, p.Y)
	w.element(p, "circle", fmt.Sprintf(`cx="%v" cy="%v" r="%d"`, c.X, c.Y, POINT_RADIUS), fill)
	return nil
}

func (w *writer) VisitLine(l shape.Line) error {
	a := w.ctx.Absolute(l.Start.X, l.Start.Y)
	b := w.ctx.Absolute(l.End.X, l.End.Y)
	w.element(l, "line", fmt.Sprintf(`x1="%v" y1="%v" x2="%v" y2="%v"`, a.X, a.Y, b.X, b.Y), "none")
	return nil
}

func (w *writer) VisitCircle(c shape.Circle) error {
	p := w.ctx.Absolute(c.Center.X, c.Center.Y)
	w.element(c, "circle", fmt.Sprintf(`cx="%v" cy="%v" r="%v"`, p.X, p.Y, w.ctx.Length(c.Radius)), "none")
	return nil
}

func (w *writer) VisitSquare(s shape.Square) error {
	w.rect(s, s.TopLeft, s.Side, s.Side)
	return nil
}

func (w *writer) VisitRectangle(r shape.Rectangle) error {
	w.rect(r, r.TopLeft, r.SideA, r.SideB)
	return nil
}

func (w *writer) rect(s shape.Shape, tl geo.Point, width, height float64) {
	p := w.ctx.Absolute(tl.X, tl.Y)
	w.element(s, "rect", fmt.Sprintf(`x="%v" y="%v" width="%v" height="%v"`,
		p.X, p.Y, w.ctx.Length(width), w.ctx.Length(height)), "none")
}

func (w *writer) VisitOval(o shape.Oval) error {
	p := w.ctx.Absolute(o.Center.X, o.Center.Y)
	w.element(o, "ellipse", fmt.Sprintf(`cx="%v" cy="%v" rx="%v" ry="%v"`,
		p.X, p.Y, w.ctx.Length(o.Width/2), w.ctx.Length(o.Height/2)), "none")
	return nil
}

func (w *writer) VisitTriangle(t shape.Triangle) error {
	pc := svglib.NewSVGPathContext(w.ctx.TopLeft, w.ctx.Scale)
	pc.StartAt(t.P1.X, t.P1.Y)
	pc.L(t.P2.X, t.P2.Y)
	pc.L(t.P3.X, t.P3.Y)
	pc.Z()
	w.element(t, "path", fmt.Sprintf(`d="%s"`, pc.PathData()), "none")
	return nil
}
