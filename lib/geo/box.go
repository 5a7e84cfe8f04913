package geo

import (
	"fmt"
	"math"
)

// Box is an axis-aligned box given by its extents.
// Y grows upward: YMax is the top edge.
type Box struct {
	XMin float64 `json:"xMin"`
	XMax float64 `json:"xMax"`
	YMin float64 `json:"yMin"`
	YMax float64 `json:"yMax"`
}

func NewBox(xMin, xMax, yMin, yMax float64) Box {
	return Box{XMin: xMin, XMax: xMax, YMin: yMin, YMax: yMax}
}

func (b Box) Width() float64 {
	return b.XMax - b.XMin
}

func (b Box) Height() float64 {
	return b.YMax - b.YMin
}

func (b Box) TopLeft() *Point {
	return NewPoint(b.XMin, b.YMax)
}

// Union returns the smallest box containing both b and o.
func (b Box) Union(o Box) Box {
	return Box{
		XMin: math.Min(b.XMin, o.XMin),
		XMax: math.Max(b.XMax, o.XMax),
		YMin: math.Min(b.YMin, o.YMin),
		YMax: math.Max(b.YMax, o.YMax),
	}
}

// Pad grows the box by m on every side.
func (b Box) Pad(m float64) Box {
	return Box{
		XMin: b.XMin - m,
		XMax: b.XMax + m,
		YMin: b.YMin - m,
		YMax: b.YMax + m,
	}
}

func (b Box) ToString() string {
	return fmt.Sprintf("x: [%v, %v]  y: [%v, %v]", b.XMin, b.XMax, b.YMin, b.YMax)
}
