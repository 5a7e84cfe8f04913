// Package bounds computes the axis-aligned box enclosing a set of shapes.
package bounds

import (
	"errors"

	"oss.terrastruct.com/shapedit/lib/geo"
	"oss.terrastruct.com/shapedit/lib/go2"
	"oss.terrastruct.com/shapedit/shape"
)

// Margin is added on every side of the computed box so shapes do not touch
// the edge of a rendering.
const Margin = 1.

var ErrEmpty = errors.New("nothing to bound")

// Compute returns the box enclosing every shape, grown by Margin.
func Compute(shapes []shape.Shape) (geo.Box, error) {
	if len(shapes) == 0 {
		return geo.Box{}, ErrEmpty
	}
	b := Of(shapes[0])
	for _, s := range shapes[1:] {
		b = b.Union(Of(s))
	}
	return b.Pad(Margin), nil
}

// Of returns the unpadded box of a single shape.
func Of(s shape.Shape) geo.Box {
	return shape.Visit[geo.Box](s, boxer{})
}

type boxer struct{}

func (boxer) VisitPoint(p shape.Point) geo.Box {
	return geo.NewBox(p.X, p.X, p.Y, p.Y)
}

func (boxer) VisitLine(l shape.Line) geo.Box {
	return geo.Points{&l.Start, &l.End}.Extents()
}

func (boxer) VisitCircle(c shape.Circle) geo.Box {
	return around(c.Center, c.Radius)
}

// The larger of width and height is used as the extent on both axes, which
// over-approximates non-circular ovals. Kept for compatibility with existing
// renderings.
func (boxer) VisitOval(o shape.Oval) geo.Box {
	return around(o.Center, go2.Max(o.Width, o.Height))
}

func (boxer) VisitTriangle(t shape.Triangle) geo.Box {
	return t.Vertices().Extents()
}

func (boxer) VisitSquare(s shape.Square) geo.Box {
	return down(s.TopLeft, s.Side)
}

// Rectangles use max(SideA, SideB) for both extents rather than SideA for x
// and SideB for y. This matches the square formula and the boxes produced so
// far; it overestimates the shorter side.
func (boxer) VisitRectangle(r shape.Rectangle) geo.Box {
	return down(r.TopLeft, go2.Max(r.SideA, r.SideB))
}

func around(c geo.Point, r float64) geo.Box {
	return geo.NewBox(c.X-r, c.X+r, c.Y-r, c.Y+r)
}

// down returns the box of side d hanging right and down from tl.
func down(tl geo.Point, d float64) geo.Box {
	return geo.NewBox(tl.X, tl.X+d, tl.Y-d, tl.Y)
}
