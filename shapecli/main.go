// Package shapecli wires the shape editor to a terminal: flags, rendering,
// persistence and export.
package shapecli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"oss.terrastruct.com/shapedit/interp"
	"oss.terrastruct.com/shapedit/lib/go2"
	"oss.terrastruct.com/shapedit/lib/log"
	"oss.terrastruct.com/shapedit/lib/version"
	"oss.terrastruct.com/shapedit/lib/xmain"
	"oss.terrastruct.com/shapedit/persist"
	"oss.terrastruct.com/shapedit/registry"
	"oss.terrastruct.com/shapedit/renderers/ascii"
	"oss.terrastruct.com/shapedit/renderers/ascii/charset"
)

const PROMPT = "shapedit> "

var SUPPORTED_RENDERERS = []string{"ascii", "none"}

func Run(ctx context.Context, ms *xmain.State) (err error) {
	savePathFlag := ms.Opts.String("SHAPEDIT_SAVE_PATH", "save-path", "o", persist.DEFAULT_PATH, "file the save command writes the listing to")
	renderFlag := ms.Opts.String("SHAPEDIT_RENDER", "render", "r", "ascii", "renderer run after add and list (ascii, none)")
	widthFlag, err := ms.Opts.Int64("SHAPEDIT_WIDTH", "width", "w", ascii.DEFAULT_WIDTH, "columns of the ascii canvas")
	if err != nil {
		return err
	}
	charsetFlag := ms.Opts.String("SHAPEDIT_CHARSET", "charset", "", "unicode", "characters used by the ascii renderer (unicode, ascii)")
	debugFlag, err := ms.Opts.Bool("DEBUG", "debug", "d", false, "print debug logs.")
	if err != nil {
		ms.Log.Warn.Printf("Invalid DEBUG flag value ignored")
		debugFlag = go2.Pointer(false)
	}
	versionFlag, err := ms.Opts.Bool("", "version", "v", false, "get the version")
	if err != nil {
		return err
	}

	err = ms.Opts.Flags.Parse(ms.Opts.Args)
	if !errors.Is(err, pflag.ErrHelp) && err != nil {
		return xmain.UsageErrorf("failed to parse flags: %v", err)
	}
	if errors.Is(err, pflag.ErrHelp) {
		help(ms)
		return nil
	}

	if *versionFlag {
		fmt.Fprintln(ms.Stdout, version.Version)
		return nil
	}
	if len(ms.Opts.Flags.Args()) > 1 {
		return xmain.UsageErrorf("too many arguments passed")
	}

	ctx = log.Named(log.Stderr(ctx, *debugFlag), "shapedit")
	defer log.Sync(ctx)

	cs, ok := charset.Parse(strings.ToLower(*charsetFlag))
	if !ok {
		return xmain.UsageErrorf("--charset must be one of unicode, ascii. You provided: %s", *charsetFlag)
	}
	asciiOpts := &ascii.RenderOpts{
		Width:   widthFlag,
		Charset: cs,
	}

	renderName := strings.ToLower(*renderFlag)
	if !go2.Contains(SUPPORTED_RENDERERS, renderName) {
		return xmain.UsageErrorf("-r[ender] must be one of %s. You provided: %s", SUPPORTED_RENDERERS, *renderFlag)
	}
	var renderer interp.Renderer
	if renderName == "ascii" {
		renderer = ascii.New(ms.Stdout, asciiOpts)
	}

	inputPath := "-"
	if len(ms.Opts.Flags.Args()) == 1 {
		inputPath = ms.Opts.Flags.Arg(0)
	}
	r, err := ms.OpenPath(inputPath)
	if err != nil {
		return err
	}
	defer r.Close()

	prompt := ""
	if inputPath == "-" && isTerminal(ms.Stdin) {
		prompt = PROMPT
	}

	ms.Log.Debug.Printf("reading commands from %s, saving to %s", inputPath, *savePathFlag)

	in := interp.New(registry.New(), ms.Stdout, &interp.Opts{
		Renderer: renderer,
		Sink:     persist.FileSink{Path: *savePathFlag},
		Export:   exporter(ms, asciiOpts),
		Prompt:   prompt,
	})
	return in.Run(ctx, r)
}

// isTerminal reports whether r is an interactive character device.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
