// Package shape defines the seven shape variants the editor stores.
//
// Shape is a closed sum type: only the variants declared here implement it.
// Code that needs per-variant behavior implements Visitor and calls Visit, so
// adding a variant breaks every visitor at compile time until it handles it.
//
// Shapes do not validate themselves. Callers reject negative dimensions
// before constructing a value.
package shape

import (
	"fmt"

	"oss.terrastruct.com/shapedit/lib/geo"
)

type Kind string

const (
	POINT_TYPE     Kind = "Point"
	LINE_TYPE      Kind = "Line"
	CIRCLE_TYPE    Kind = "Circle"
	SQUARE_TYPE    Kind = "Square"
	RECTANGLE_TYPE Kind = "Rectangle"
	OVAL_TYPE      Kind = "Oval"
	TRIANGLE_TYPE  Kind = "Triangle"
)

// Kinds lists every variant in declaration order.
var Kinds = []Kind{
	POINT_TYPE,
	LINE_TYPE,
	CIRCLE_TYPE,
	SQUARE_TYPE,
	RECTANGLE_TYPE,
	OVAL_TYPE,
	TRIANGLE_TYPE,
}

type Shape interface {
	Kind() Kind
	// Describe returns the one deterministic line used by list and save.
	Describe() string

	isShape()
}

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Line struct {
	Start geo.Point `json:"start"`
	End   geo.Point `json:"end"`
}

type Circle struct {
	Center geo.Point `json:"center"`
	Radius float64   `json:"radius"`
}

// Square extends right and down from TopLeft.
type Square struct {
	TopLeft geo.Point `json:"topLeft"`
	Side    float64   `json:"side"`
}

// Rectangle extends SideA to the right and SideB down from TopLeft.
type Rectangle struct {
	TopLeft geo.Point `json:"topLeft"`
	SideA   float64   `json:"sideA"`
	SideB   float64   `json:"sideB"`
}

// Oval is centered on Center; Width and Height are its full axis lengths.
type Oval struct {
	Center geo.Point `json:"center"`
	Width  float64   `json:"width"`
	Height float64   `json:"height"`
}

type Triangle struct {
	P1 geo.Point `json:"p1"`
	P2 geo.Point `json:"p2"`
	P3 geo.Point `json:"p3"`
}

func (Point) Kind() Kind     { return POINT_TYPE }
func (Line) Kind() Kind      { return LINE_TYPE }
func (Circle) Kind() Kind    { return CIRCLE_TYPE }
func (Square) Kind() Kind    { return SQUARE_TYPE }
func (Rectangle) Kind() Kind { return RECTANGLE_TYPE }
func (Oval) Kind() Kind      { return OVAL_TYPE }
func (Triangle) Kind() Kind  { return TRIANGLE_TYPE }

func (Point) isShape()     {}
func (Line) isShape()      {}
func (Circle) isShape()    {}
func (Square) isShape()    {}
func (Rectangle) isShape() {}
func (Oval) isShape()      {}
func (Triangle) isShape()  {}

func (p Point) Pos() geo.Point {
	return geo.Point{X: p.X, Y: p.Y}
}

func (p Point) Describe() string {
	pos := p.Pos()
	return fmt.Sprintf("Point: %s", pos.ToString())
}

func (l Line) Describe() string {
	return fmt.Sprintf("Line: start %s, end %s", l.Start.ToString(), l.End.ToString())
}

func (c Circle) Describe() string {
	return fmt.Sprintf("Circle: center %s, radius %v", c.Center.ToString(), c.Radius)
}

func (s Square) Describe() string {
	return fmt.Sprintf("Square: top left %s, side %v", s.TopLeft.ToString(), s.Side)
}

func (r Rectangle) Describe() string {
	return fmt.Sprintf("Rectangle: top left %s, sides %v x %v", r.TopLeft.ToString(), r.SideA, r.SideB)
}

func (o Oval) Describe() string {
	return fmt.Sprintf("Oval: center %s, width %v, height %v", o.Center.ToString(), o.Width, o.Height)
}

func (t Triangle) Describe() string {
	return fmt.Sprintf("Triangle: vertices %s", t.Vertices().ToString())
}

func (t Triangle) Vertices() geo.Points {
	return geo.Points{t.P1.Copy(), t.P2.Copy(), t.P3.Copy()}
}

// Corners returns the top-left, top-right, bottom-right and bottom-left corners.
func (s Square) Corners() geo.Points {
	return Rectangle{TopLeft: s.TopLeft, SideA: s.Side, SideB: s.Side}.Corners()
}

// Corners returns the top-left, top-right, bottom-right and bottom-left corners.
func (r Rectangle) Corners() geo.Points {
	tl := r.TopLeft
	return geo.Points{
		geo.NewPoint(tl.X, tl.Y),
		geo.NewPoint(tl.X+r.SideA, tl.Y),
		geo.NewPoint(tl.X+r.SideA, tl.Y-r.SideB),
		geo.NewPoint(tl.X, tl.Y-r.SideB),
	}
}
