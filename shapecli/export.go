package shapecli

import (
	"context"
	"path/filepath"

	"cdr.dev/slog"
	"oss.terrastruct.com/xdefer"

	"oss.terrastruct.com/shapedit/interp"
	"oss.terrastruct.com/shapedit/lib/geo"
	"oss.terrastruct.com/shapedit/lib/log"
	"oss.terrastruct.com/shapedit/lib/xmain"
	"oss.terrastruct.com/shapedit/renderers/ascii"
	"oss.terrastruct.com/shapedit/renderers/pdf"
	"oss.terrastruct.com/shapedit/renderers/svg"
	"oss.terrastruct.com/shapedit/shape"
)

type exportExtension string

const PDF exportExtension = ".pdf"
const SVG exportExtension = ".svg"
const TXT exportExtension = ".txt"

var SUPPORTED_EXTENSIONS = []exportExtension{SVG, PDF, TXT}

func getExportExtension(outputPath string) exportExtension {
	ext := filepath.Ext(outputPath)
	for _, kext := range SUPPORTED_EXTENSIONS {
		if kext == exportExtension(ext) {
			return exportExtension(ext)
		}
	}
	// default is svg
	return exportExtension(SVG)
}

func (ex exportExtension) render(shapes []shape.Shape, box geo.Box, asciiOpts *ascii.RenderOpts, title string) ([]byte, error) {
	switch ex {
	case PDF:
		return pdf.Render(title, shapes, box)
	case TXT:
		return ascii.Render(shapes, box, asciiOpts), nil
	default:
		return svg.Render(shapes, box, nil)
	}
}

// exporter returns the export command handler. Files are written through ms
// so "-" exports to stdout.
func exporter(ms *xmain.State, asciiOpts *ascii.RenderOpts) interp.ExportFunc {
	return func(ctx context.Context, outputPath string, shapes []shape.Shape, box geo.Box) (err error) {
		defer xdefer.Errorf(&err, "failed to export to %s", outputPath)

		ext := getExportExtension(outputPath)
		out, err := ext.render(shapes, box, asciiOpts, filepath.Base(outputPath))
		if err != nil {
			return err
		}
		log.Debug(ctx, "exporting", slog.F("path", outputPath), slog.F("format", string(ext)), slog.F("bytes", len(out)))
		return ms.WritePath(outputPath, out)
	}
}
