// Package interp reads editor commands line by line and applies them to a
// shape registry.
//
// Each line is independent. A bad command is reported to the output and
// leaves the registry unchanged; only exit, end of input, cancellation or a
// read failure end a session.
package interp

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"iter"

	"cdr.dev/slog"

	"oss.terrastruct.com/shapedit/bounds"
	"oss.terrastruct.com/shapedit/lib/geo"
	"oss.terrastruct.com/shapedit/lib/log"
	"oss.terrastruct.com/shapedit/persist"
	"oss.terrastruct.com/shapedit/registry"
	"oss.terrastruct.com/shapedit/shape"
)

// Renderer draws the current shapes inside box. It is called after every
// successful add and list.
type Renderer interface {
	Render(ctx context.Context, shapes []shape.Shape, box geo.Box) error
}

// Sink persists the listing on save.
type Sink interface {
	Save(ctx context.Context, entries iter.Seq2[int, shape.Shape]) (int, error)
}

// ExportFunc writes the shapes to path.
type ExportFunc func(ctx context.Context, path string, shapes []shape.Shape, box geo.Box) error

type Opts struct {
	// Renderer may be nil, in which case nothing is drawn.
	Renderer Renderer
	// Sink may be nil, in which case save fails.
	Sink   Sink
	Export ExportFunc
	// Prompt is written before each read when non-empty.
	Prompt string
}

type Interpreter struct {
	reg  *registry.Registry
	out  io.Writer
	opts Opts
}

func New(reg *registry.Registry, out io.Writer, opts *Opts) *Interpreter {
	in := &Interpreter{
		reg: reg,
		out: out,
	}
	if opts != nil {
		in.opts = *opts
	}
	return in
}

// Run executes commands read from r until exit or end of input. Lines may be
// of any length; only a read failure other than io.EOF is returned.
func (in *Interpreter) Run(ctx context.Context, r io.Reader) error {
	br := bufio.NewReader(r)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if in.opts.Prompt != "" {
			fmt.Fprint(in.out, in.opts.Prompt)
		}
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		if errors.Is(err, io.EOF) && line == "" {
			if in.opts.Prompt != "" {
				fmt.Fprintln(in.out)
			}
			return nil
		}

		cmd, err := Parse(line)
		if err != nil {
			in.report(ctx, err)
			continue
		}
		if cmd == nil {
			continue
		}
		exit, err := in.Exec(ctx, cmd)
		if err != nil {
			in.report(ctx, err)
		}
		if exit {
			return nil
		}
	}
}

// Exec applies cmd. exit is true for the exit command.
func (in *Interpreter) Exec(ctx context.Context, cmd Command) (exit bool, err error) {
	log.Debug(ctx, "executing command", slog.F("command", cmd.Name()))

	switch cmd := cmd.(type) {
	case Add:
		return false, in.add(ctx, cmd)
	case Delete:
		return false, in.del(ctx, cmd)
	case List:
		return false, in.list(ctx)
	case Save:
		return false, in.save(ctx)
	case Export:
		return false, in.export(ctx, cmd)
	case Help:
		in.help()
		return false, nil
	case Exit:
		return true, nil
	}
	return false, errorf(UnknownCommandError, "unknown command %q", cmd.Name())
}

func (in *Interpreter) add(ctx context.Context, cmd Add) error {
	i := in.reg.Add(cmd.Shape)
	log.Debug(ctx, "added shape", slog.F("index", i), slog.F("kind", cmd.Shape.Kind()))
	fmt.Fprintf(in.out, "added %d: %s\n", i, cmd.Shape.Describe())
	return in.render(ctx)
}

func (in *Interpreter) del(ctx context.Context, cmd Delete) error {
	if in.reg.Len() == 0 {
		return errorf(RangeError, "no shapes added")
	}
	s, err := in.reg.Remove(cmd.Index)
	if errors.Is(err, registry.ErrOutOfRange) {
		return errorf(RangeError, "no shape at index %d, valid indices are 0 to %d", cmd.Index, in.reg.Len()-1)
	} else if err != nil {
		return err
	}
	log.Debug(ctx, "removed shape", slog.F("index", cmd.Index), slog.F("kind", s.Kind()))
	fmt.Fprintf(in.out, "removed %d: %s\n", cmd.Index, s.Describe())
	return nil
}

func (in *Interpreter) list(ctx context.Context) error {
	if in.reg.Len() == 0 {
		return errorf(EmptyCollectionError, "nothing to list")
	}
	if _, err := persist.Write(in.out, in.reg.All()); err != nil {
		return err
	}
	return in.render(ctx)
}

func (in *Interpreter) save(ctx context.Context) error {
	if in.opts.Sink == nil {
		return errors.New("no save destination configured")
	}
	n, err := in.opts.Sink.Save(ctx, in.reg.All())
	if err != nil {
		return err
	}
	fmt.Fprintf(in.out, "saved %d shape(s)\n", n)
	return nil
}

func (in *Interpreter) export(ctx context.Context, cmd Export) error {
	if in.opts.Export == nil {
		return errors.New("export is not configured")
	}
	shapes, box, err := in.snapshot()
	if err != nil {
		return errorf(EmptyCollectionError, "nothing to export")
	}
	err = in.opts.Export(ctx, cmd.Path, shapes, box)
	if err != nil {
		return err
	}
	fmt.Fprintf(in.out, "exported %d shape(s) to %s\n", len(shapes), cmd.Path)
	return nil
}

func (in *Interpreter) render(ctx context.Context) error {
	if in.opts.Renderer == nil {
		return nil
	}
	shapes, box, err := in.snapshot()
	if err != nil {
		return errorf(EmptyCollectionError, "nothing to render")
	}
	return in.opts.Renderer.Render(ctx, shapes, box)
}

func (in *Interpreter) snapshot() ([]shape.Shape, geo.Box, error) {
	shapes := in.reg.Shapes()
	box, err := bounds.Compute(shapes)
	return shapes, box, err
}

func (in *Interpreter) report(ctx context.Context, err error) {
	var ierr *Error
	if errors.As(err, &ierr) {
		log.Debug(ctx, "command failed", slog.F("kind", ierr.Kind.String()), slog.Error(err))
		if ierr.Kind == EmptyCollectionError {
			fmt.Fprintln(in.out, ierr.Message)
			return
		}
	} else {
		log.Warn(ctx, "command failed", slog.Error(err))
	}
	fmt.Fprintf(in.out, "error: %v\n", err)
}
