package svg

import (
	"fmt"
	"math"
	"strings"

	"oss.terrastruct.com/shapedit/lib/geo"
)

// SvgPathContext builds path data in a flipped coordinate space: world y
// grows upward, SVG y grows downward, so every point is mirrored around the
// top of the world box.
type SvgPathContext struct {
	Commands []string
	Start    *geo.Point
	Current  *geo.Point
	TopLeft  *geo.Point
	Scale    float64
}

func chopPrecision(f float64) float64 {
	// -0 would print as "-0"
	return math.Round(f*10000)/10000 + 0
}

func NewSVGPathContext(tl *geo.Point, scale float64) *SvgPathContext {
	return &SvgPathContext{TopLeft: tl.Copy(), Scale: scale}
}

// Absolute maps a world point to SVG coordinates.
func (c *SvgPathContext) Absolute(x, y float64) *geo.Point {
	return geo.NewPoint(chopPrecision((x-c.TopLeft.X)*c.Scale), chopPrecision((c.TopLeft.Y-y)*c.Scale))
}

func (c *SvgPathContext) StartAt(x, y float64) {
	p := c.Absolute(x, y)
	c.Start = p
	c.Commands = append(c.Commands, fmt.Sprintf("M %v %v", p.X, p.Y))
	c.Current = p.Copy()
}

func (c *SvgPathContext) L(x, y float64) {
	p := c.Absolute(x, y)
	c.Commands = append(c.Commands, fmt.Sprintf("L %v %v", p.X, p.Y))
	c.Current = p.Copy()
}

func (c *SvgPathContext) Z() {
	c.Commands = append(c.Commands, "Z")
	c.Current = c.Start.Copy()
}

func (c *SvgPathContext) PathData() string {
	return strings.Join(c.Commands, " ")
}

// Length scales a world distance.
func (c *SvgPathContext) Length(d float64) float64 {
	return chopPrecision(d * c.Scale)
}
