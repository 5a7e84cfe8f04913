package color

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"

	"oss.terrastruct.com/shapedit/shape"
)

// Stroke colors per kind, as CSS color names.
var palette = map[shape.Kind]string{
	shape.POINT_TYPE:     "red",
	shape.LINE_TYPE:      "blue",
	shape.CIRCLE_TYPE:    "green",
	shape.SQUARE_TYPE:    "orange",
	shape.RECTANGLE_TYPE: "purple",
	shape.OVAL_TYPE:      "teal",
	shape.TRIANGLE_TYPE:  "brown",
}

const fallback = "black"

// Stroke returns the hex stroke color for kind.
func Stroke(kind shape.Kind) string {
	name, ok := palette[kind]
	if !ok {
		name = fallback
	}
	hex, err := Hex(name)
	if err != nil {
		// palette entries are valid CSS names
		panic(err)
	}
	return hex
}

// RGB returns the 0-255 components of the stroke color for kind.
func RGB(kind shape.Kind) (r, g, b int) {
	c, err := colorful.Hex(Stroke(kind))
	if err != nil {
		panic(err)
	}
	r8, g8, b8 := c.RGB255()
	return int(r8), int(g8), int(b8)
}

// Hex parses any CSS color string and returns it as #rrggbb.
func Hex(colorString string) (string, error) {
	c, err := csscolorparser.Parse(colorString)
	if err != nil {
		return "", fmt.Errorf("invalid color %q: %w", colorString, err)
	}
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().Hex(), nil
}

// Darken returns colorString with its luminance reduced by 10%.
func Darken(colorString string) (string, error) {
	c, err := csscolorparser.Parse(colorString)
	if err != nil {
		return "", err
	}
	h, s, l := colorful.Color{R: c.R, G: c.G, B: c.B}.Hsl()
	return colorful.Hsl(h, s, l-.1).Clamped().Hex(), nil
}
