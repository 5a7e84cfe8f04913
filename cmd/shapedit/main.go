package main

import (
	"oss.terrastruct.com/shapedit/lib/xmain"
	"oss.terrastruct.com/shapedit/shapecli"
)

func main() {
	xmain.Main(shapecli.Run)
}
