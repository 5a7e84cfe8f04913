package interp

import (
	"fmt"
	"strings"
)

func (in *Interpreter) help() {
	b := &strings.Builder{}
	b.WriteString("Commands:\n")
	for _, ss := range shapeSpecs {
		fmt.Fprintf(b, "  add %s %s - add a %s\n", ss.token, ss.args, strings.ToLower(string(ss.kind)))
	}
	b.WriteString(`  del <index> - delete the shape at index; later shapes move down by one
  list - list shapes and draw them
  save - write the list to the save file
  export <file.svg|file.pdf|file.txt> - render shapes to a file
  help - show this help
  exit - quit

Squares and rectangles hang right and down from their top-left corner.
Oval width and height are full axis lengths.
`)
	fmt.Fprint(in.out, b.String())
}
