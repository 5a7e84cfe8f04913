package persist_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oss.terrastruct.com/shapedit/lib/diff"
	"oss.terrastruct.com/shapedit/lib/geo"
	"oss.terrastruct.com/shapedit/lib/log"
	"oss.terrastruct.com/shapedit/persist"
	"oss.terrastruct.com/shapedit/registry"
	"oss.terrastruct.com/shapedit/shape"
)

func TestWrite(t *testing.T) {
	t.Parallel()

	r := registry.New()
	r.Add(shape.Point{X: 1, Y: 1})
	r.Add(shape.Circle{Center: geo.Point{X: 0, Y: 0}, Radius: 2})

	var buf bytes.Buffer
	n, err := persist.Write(&buf, r.All())
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	err = diff.Testdata(filepath.Join("testdata", t.Name()), ".txt", buf.Bytes())
	assert.NoError(t, err)
}

func TestWriteEmpty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	n, err := persist.Write(&buf, registry.New().All())
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Empty(t, buf.String())
}

func TestFileSink(t *testing.T) {
	t.Parallel()

	ctx := log.WithTB(context.Background(), t, nil)
	path := filepath.Join(t.TempDir(), "shapes.txt")
	sink := persist.FileSink{Path: path}

	r := registry.New()
	r.Add(shape.Square{TopLeft: geo.Point{X: 0, Y: 3}, Side: 3})
	r.Add(shape.Point{X: -1, Y: 2})
	r.Add(shape.Triangle{P1: geo.Point{}, P2: geo.Point{X: 1}, P3: geo.Point{Y: 1}})
	_, err := r.Remove(0)
	require.NoError(t, err)

	n, err := sink.Save(ctx, r.All())
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "0: Point: (-1, 2)\n1: Triangle: vertices (0, 0), (1, 0), (0, 1)\n", string(b))

	// saving again replaces the previous listing
	_, err = r.Remove(1)
	require.NoError(t, err)
	_, err = sink.Save(ctx, r.All())
	require.NoError(t, err)
	b, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "0: Point: (-1, 2)\n", string(b))
}

func TestFileSinkBadPath(t *testing.T) {
	t.Parallel()

	ctx := log.WithTB(context.Background(), t, nil)
	sink := persist.FileSink{Path: filepath.Join(t.TempDir(), "missing", "shapes.txt")}
	_, err := sink.Save(ctx, registry.New().All())
	assert.Error(t, err)
}
