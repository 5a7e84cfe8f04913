package shapecli

import (
	"fmt"
	"path/filepath"

	"oss.terrastruct.com/shapedit/lib/version"
	"oss.terrastruct.com/shapedit/lib/xmain"
)

func help(ms *xmain.State) {
	fmt.Fprintf(ms.Stdout, `%[1]s %[2]s
Usage:
  %[1]s [--save-path=shapes.txt] [--render=ascii] [script]

%[1]s is an interactive editor for 2D shapes. It reads one command per line
from script, or from stdin when script is omitted or -.

Type help at the prompt for the list of commands.

Flags:
%[3]s
`, filepath.Base(ms.Name), version.Version, ms.Opts.Help())
}
