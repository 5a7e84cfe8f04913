// Package persist writes shape listings to a sink, one "<index>: <description>"
// line per shape.
package persist

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"iter"
	"os"

	"cdr.dev/slog"
	"oss.terrastruct.com/xdefer"

	"oss.terrastruct.com/shapedit/lib/log"
	"oss.terrastruct.com/shapedit/shape"
)

// DEFAULT_PATH is where save writes when no path is configured.
const DEFAULT_PATH = "shapes.txt"

// Write writes every entry in order and returns the number of lines written.
func Write(w io.Writer, entries iter.Seq2[int, shape.Shape]) (n int, err error) {
	bw := bufio.NewWriter(w)
	for i, s := range entries {
		_, err = fmt.Fprintf(bw, "%d: %s\n", i, s.Describe())
		if err != nil {
			return n, err
		}
		n++
	}
	return n, bw.Flush()
}

// FileSink replaces the file at Path with the listing on every Save.
type FileSink struct {
	Path string
}

func (fs FileSink) Save(ctx context.Context, entries iter.Seq2[int, shape.Shape]) (n int, err error) {
	defer xdefer.Errorf(&err, "failed to save to %s", fs.Path)

	f, err := os.Create(fs.Path)
	if err != nil {
		return 0, err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	n, err = Write(f, entries)
	if err != nil {
		return n, err
	}
	log.Debug(ctx, "saved shapes", slog.F("path", fs.Path), slog.F("count", n))
	return n, nil
}
