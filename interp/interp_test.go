package interp_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"iter"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oss.terrastruct.com/shapedit/interp"
	"oss.terrastruct.com/shapedit/lib/geo"
	"oss.terrastruct.com/shapedit/lib/log"
	"oss.terrastruct.com/shapedit/persist"
	"oss.terrastruct.com/shapedit/registry"
	"oss.terrastruct.com/shapedit/shape"
)

type renderCall struct {
	shapes []shape.Shape
	box    geo.Box
}

type fakeRenderer struct {
	calls []renderCall
	err   error
}

func (r *fakeRenderer) Render(ctx context.Context, shapes []shape.Shape, box geo.Box) error {
	r.calls = append(r.calls, renderCall{shapes: shapes, box: box})
	return r.err
}

type bufSink struct {
	buf bytes.Buffer
	err error
}

func (s *bufSink) Save(ctx context.Context, entries iter.Seq2[int, shape.Shape]) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	s.buf.Reset()
	return persist.Write(&s.buf, entries)
}

type harness struct {
	ctx      context.Context
	reg      *registry.Registry
	out      *bytes.Buffer
	renderer *fakeRenderer
	sink     *bufSink
	exports  []string
	in       *interp.Interpreter
}

func newHarness(t *testing.T) *harness {
	h := &harness{
		ctx:      log.WithTB(context.Background(), t, nil),
		reg:      registry.New(),
		out:      &bytes.Buffer{},
		renderer: &fakeRenderer{},
		sink:     &bufSink{},
	}
	h.in = interp.New(h.reg, h.out, &interp.Opts{
		Renderer: h.renderer,
		Sink:     h.sink,
		Export: func(ctx context.Context, path string, shapes []shape.Shape, box geo.Box) error {
			h.exports = append(h.exports, fmt.Sprintf("%s %d %s", path, len(shapes), box.ToString()))
			return nil
		},
	})
	return h
}

func (h *harness) exec(t *testing.T, line string) error {
	cmd, err := interp.Parse(line)
	if err != nil {
		return err
	}
	exit, err := h.in.Exec(h.ctx, cmd)
	assert.False(t, exit)
	return err
}

func (h *harness) descriptions() []string {
	var out []string
	for _, s := range h.reg.All() {
		out = append(out, s.Describe())
	}
	return out
}

func TestAddThenList(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	lines := []string{"add p 1 1", "add cir 0 0 2", "add tr 0 0 1 0 0 1"}
	for i, line := range lines {
		require.NoError(t, h.exec(t, line))
		s, err := h.reg.Get(i)
		require.NoError(t, err)
		assert.Equal(t, i, h.reg.Len()-1)

		h.out.Reset()
		require.NoError(t, h.exec(t, "list"))
		listed := strings.Split(strings.TrimSpace(h.out.String()), "\n")
		assert.Equal(t, fmt.Sprintf("%d: %s", i, s.Describe()), listed[len(listed)-1])
	}

	// one render per add and per list
	assert.Len(t, h.renderer.calls, 6)
	last := h.renderer.calls[len(h.renderer.calls)-1]
	assert.Len(t, last.shapes, 3)
	assert.Equal(t, geo.NewBox(-3, 3, -3, 3), last.box)
}

func TestAddRendersBoundingBox(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	require.NoError(t, h.exec(t, "add p 3 4"))
	assert.Equal(t, "added 0: Point: (3, 4)\n", h.out.String())
	require.Len(t, h.renderer.calls, 1)
	assert.Equal(t, geo.NewBox(2, 4, 3, 5), h.renderer.calls[0].box)
}

func TestRejectedAddLeavesRegistry(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	require.NoError(t, h.exec(t, "add p 0 0"))

	err := h.exec(t, "add cir 0 0 -1")
	assert.ErrorIs(t, err, interp.ErrValidation)
	err = h.exec(t, "add sq 1 2")
	assert.ErrorIs(t, err, interp.ErrArity)
	err = h.exec(t, "add l 0 0 a 1")
	assert.ErrorIs(t, err, interp.ErrParse)
	err = h.exec(t, "add star 0 0")
	assert.ErrorIs(t, err, interp.ErrUnknownShapeKind)

	assert.Equal(t, 1, h.reg.Len())
	assert.Len(t, h.renderer.calls, 1)
}

func TestDelete(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	for _, line := range []string{"add p 0 0", "add p 1 1", "add p 2 2", "add p 3 3"} {
		require.NoError(t, h.exec(t, line))
	}

	h.out.Reset()
	require.NoError(t, h.exec(t, "del 1"))
	assert.Equal(t, "removed 1: Point: (1, 1)\n", h.out.String())
	assert.Equal(t, []string{"Point: (0, 0)", "Point: (2, 2)", "Point: (3, 3)"}, h.descriptions())

	for _, i := range []string{"-1", "3", "42"} {
		err := h.exec(t, "del "+i)
		assert.ErrorIs(t, err, interp.ErrRange, i)
	}
	assert.Equal(t, []string{"Point: (0, 0)", "Point: (2, 2)", "Point: (3, 3)"}, h.descriptions())

	err := h.exec(t, "del 3")
	assert.Equal(t, "no shape at index 3, valid indices are 0 to 2", err.Error())
}

func TestDeleteEmpty(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	err := h.exec(t, "del 0")
	assert.ErrorIs(t, err, interp.ErrRange)
	assert.Equal(t, "no shapes added", err.Error())
}

func TestEmptyCollection(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	assert.ErrorIs(t, h.exec(t, "list"), interp.ErrEmptyCollection)
	assert.ErrorIs(t, h.exec(t, "export out.svg"), interp.ErrEmptyCollection)
	assert.Empty(t, h.renderer.calls)
	assert.Empty(t, h.exports)
}

func TestSave(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	require.NoError(t, h.exec(t, "add p 1 1"))
	require.NoError(t, h.exec(t, "add cir 0 0 2"))

	h.out.Reset()
	require.NoError(t, h.exec(t, "save"))
	assert.Equal(t, "saved 2 shape(s)\n", h.out.String())
	assert.Equal(t, "0: Point: (1, 1)\n1: Circle: center (0, 0), radius 2\n", h.sink.buf.String())
	assert.Equal(t, 2, h.reg.Len())
}

func TestSaveFailure(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.sink.err = errors.New("disk full")
	assert.EqualError(t, h.exec(t, "save"), "disk full")
}

func TestExport(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	require.NoError(t, h.exec(t, "add p 3 4"))
	require.NoError(t, h.exec(t, "export out.pdf"))
	assert.Equal(t, []string{"out.pdf 1 x: [2, 4]  y: [3, 5]"}, h.exports)
}

func TestHelpDoesNotMutate(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	require.NoError(t, h.exec(t, "add p 1 1"))
	h.out.Reset()
	require.NoError(t, h.exec(t, "help"))
	assert.Contains(t, h.out.String(), "add cir <x> <y> <radius> - add a circle")
	assert.Contains(t, h.out.String(), "del <index>")
	assert.Equal(t, []string{"Point: (1, 1)"}, h.descriptions())
	assert.Len(t, h.renderer.calls, 1)
}

func TestExecExit(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	exit, err := h.in.Exec(h.ctx, interp.Exit{})
	assert.NoError(t, err)
	assert.True(t, exit)
}

func TestNilRenderer(t *testing.T) {
	t.Parallel()

	ctx := log.WithTB(context.Background(), t, nil)
	out := &bytes.Buffer{}
	in := interp.New(registry.New(), out, nil)
	_, err := in.Exec(ctx, interp.Add{Shape: shape.Point{}})
	assert.NoError(t, err)
	_, err = in.Exec(ctx, interp.Save{})
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	script := strings.Join([]string{
		"add p 1 1",
		"",
		"frobnicate",
		"add cir 0 0 -1",
		"add sq 1 2",
		"del x",
		"add cir 0 0 2",
		"del 5",
		"list",
		"save",
		"exit",
		"add p 9 9",
	}, "\n")

	err := h.in.Run(h.ctx, strings.NewReader(script))
	require.NoError(t, err)

	assert.Equal(t, []string{"Point: (1, 1)", "Circle: center (0, 0), radius 2"}, h.descriptions())
	assert.Equal(t, `added 0: Point: (1, 1)
error: unknown command "frobnicate" (help for usage)
error: radius must be non-negative, got -1
error: Square takes 3 arguments <x> <y> <side>, got 2
error: index must be an integer: "x"
added 1: Circle: center (0, 0), radius 2
error: no shape at index 5, valid indices are 0 to 1
0: Point: (1, 1)
1: Circle: center (0, 0), radius 2
saved 2 shape(s)
`, h.out.String())
}

func TestRunEmptyListIsInformational(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	require.NoError(t, h.in.Run(h.ctx, strings.NewReader("list\n")))
	assert.Equal(t, "nothing to list\n", h.out.String())
}

func TestRunPrompt(t *testing.T) {
	t.Parallel()

	ctx := log.WithTB(context.Background(), t, nil)
	out := &bytes.Buffer{}
	in := interp.New(registry.New(), out, &interp.Opts{Prompt: "> "})
	require.NoError(t, in.Run(ctx, strings.NewReader("add p 0 0\n")))
	assert.Equal(t, "> added 0: Point: (0, 0)\n> \n", out.String())
}

func TestRunCanceled(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	ctx, cancel := context.WithCancel(h.ctx)
	cancel()
	err := h.in.Run(ctx, strings.NewReader("add p 0 0\n"))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, h.reg.Len())
}

func TestRenderFailureIsReported(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.renderer.err = errors.New("no display")
	require.NoError(t, h.in.Run(h.ctx, strings.NewReader("add p 0 0\nadd p 1 1\n")))
	assert.Equal(t, 2, h.reg.Len())
	assert.Contains(t, h.out.String(), "error: no display\n")
}

func TestRunLongLine(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	script := "add p 1 2" + strings.Repeat(" ", 100*1024) + "\n" +
		"frobnicate " + strings.Repeat("x", 100*1024) + "\n" +
		"list\n"
	require.NoError(t, h.in.Run(h.ctx, strings.NewReader(script)))

	assert.Equal(t, []string{"Point: (1, 2)"}, h.descriptions())
	out := h.out.String()
	assert.True(t, strings.HasPrefix(out, "added 0: Point: (1, 2)\nerror: unknown command \"frobnicate\""))
	assert.True(t, strings.HasSuffix(out, "0: Point: (1, 2)\n"))
}

func TestRunLastLineWithoutNewline(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	require.NoError(t, h.in.Run(h.ctx, strings.NewReader("add p 0 0\nadd p 1 1")))
	assert.Equal(t, 2, h.reg.Len())
}

type failingReader struct{}

func (failingReader) Read(p []byte) (int, error) {
	return 0, errors.New("device gone")
}

func TestRunReadError(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	err := h.in.Run(h.ctx, failingReader{})
	assert.EqualError(t, err, "device gone")
}
