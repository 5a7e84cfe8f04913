package charset

// ASCIISet implements the Set interface using standard ASCII characters
type ASCIISet struct{}

func NewASCII() Set {
	return &ASCIISet{}
}

// Corners
func (a *ASCIISet) TopLeftCorner() string     { return "+" }
func (a *ASCIISet) TopRightCorner() string    { return "+" }
func (a *ASCIISet) BottomLeftCorner() string  { return "+" }
func (a *ASCIISet) BottomRightCorner() string { return "+" }

// Lines
func (a *ASCIISet) Horizontal() string   { return "-" }
func (a *ASCIISet) Vertical() string     { return "|" }
func (a *ASCIISet) Backslash() string    { return "\\" }
func (a *ASCIISet) ForwardSlash() string { return "/" }

// Symbols
func (a *ASCIISet) Circle() string { return "o" }
func (a *ASCIISet) Oval() string   { return "O" }
func (a *ASCIISet) Star() string   { return "*" }
