package asciicanvas

import (
	"bytes"
	"strings"
)

type Canvas struct {
	grid [][]string
}

func New(width, height int) *Canvas {
	grid := make([][]string, height)
	for i := range grid {
		grid[i] = make([]string, width)
		for j := range grid[i] {
			grid[i][j] = " "
		}
	}
	return &Canvas{grid: grid}
}

func (c *Canvas) Set(x, y int, char string) {
	if c.IsInBounds(x, y) {
		c.grid[y][x] = char
	}
}

func (c *Canvas) Get(x, y int) string {
	if c.IsInBounds(x, y) {
		return c.grid[y][x]
	}
	return ""
}

func (c *Canvas) IsInBounds(x, y int) bool {
	return y >= 0 && y < len(c.grid) && x >= 0 && x < len(c.grid[y])
}

func (c *Canvas) Width() int {
	if len(c.grid) > 0 {
		return len(c.grid[0])
	}
	return 0
}

func (c *Canvas) Height() int {
	return len(c.grid)
}

// ToByteArray returns every row with trailing spaces removed.
// Blank rows are kept so the picture keeps its proportions.
func (c *Canvas) ToByteArray() []byte {
	var buf bytes.Buffer
	for _, row := range c.grid {
		buf.WriteString(strings.TrimRight(strings.Join(row, ""), " "))
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}
