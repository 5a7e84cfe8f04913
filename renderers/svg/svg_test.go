package svg_test

import (
	"encoding/xml"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oss.terrastruct.com/shapedit/bounds"
	"oss.terrastruct.com/shapedit/lib/geo"
	"oss.terrastruct.com/shapedit/renderers/svg"
	"oss.terrastruct.com/shapedit/shape"
)

func TestRender(t *testing.T) {
	t.Parallel()

	shapes := []shape.Shape{
		shape.Point{X: 1, Y: 1},
		shape.Circle{Center: geo.Point{X: 0, Y: 0}, Radius: 2},
	}
	box, err := bounds.Compute(shapes)
	require.NoError(t, err)

	out, err := svg.Render(shapes, box, nil)
	require.NoError(t, err)
	got := string(out)

	assert.Contains(t, got, `viewBox="0 0 600 600"`)
	// y is flipped: world (1, 1) is above the center of the box.
	assert.Contains(t, got, `cx="400" cy="200" r="3"`)
	assert.Contains(t, got, `stroke="#ff0000"`)
	assert.Contains(t, got, `fill="#cc0000"`)
	assert.Contains(t, got, `cx="300" cy="300" r="200"`)
	assert.Contains(t, got, `stroke="#008000"`)
	assert.Contains(t, got, `<title>Circle: center (0, 0), radius 2</title>`)
	assert.Equal(t, 2, strings.Count(got, `class="shape `))

	assertWellFormed(t, out)
}

func TestRenderAllKinds(t *testing.T) {
	t.Parallel()

	shapes := []shape.Shape{
		shape.Point{X: 1, Y: 1},
		shape.Line{Start: geo.Point{X: 0, Y: 0}, End: geo.Point{X: 4, Y: 0}},
		shape.Circle{Center: geo.Point{X: 0, Y: 0}, Radius: 2},
		shape.Square{TopLeft: geo.Point{X: 1, Y: 4}, Side: 3},
		shape.Rectangle{TopLeft: geo.Point{X: 0, Y: 5}, SideA: 6, SideB: 2},
		shape.Oval{Center: geo.Point{X: 0, Y: 0}, Width: 4, Height: 2},
		shape.Triangle{P1: geo.Point{X: 0, Y: 0}, P2: geo.Point{X: 4, Y: 0}, P3: geo.Point{X: 2, Y: 3}},
	}
	box, err := bounds.Compute(shapes)
	require.NoError(t, err)

	out, err := svg.Render(shapes, box, nil)
	require.NoError(t, err)
	got := string(out)

	for _, tag := range []string{"<line", "<rect", "<ellipse", "<path"} {
		assert.Contains(t, got, tag)
	}
	assert.Equal(t, len(shapes), strings.Count(got, `class="shape `))
	assert.Contains(t, got, `d="M `)
	assert.Contains(t, got, " Z\"")

	assertWellFormed(t, out)
}

func assertWellFormed(t *testing.T, out []byte) {
	t.Helper()
	dec := xml.NewDecoder(strings.NewReader(string(out)))
	for {
		_, err := dec.Token()
		if err != nil {
			assert.ErrorIs(t, err, io.EOF)
			return
		}
	}
}
