package charset

// UnicodeSet implements the Set interface using box-drawing characters
type UnicodeSet struct{}

func NewUnicode() Set {
	return &UnicodeSet{}
}

// Corners
func (u *UnicodeSet) TopLeftCorner() string     { return "┌" }
func (u *UnicodeSet) TopRightCorner() string    { return "┐" }
func (u *UnicodeSet) BottomLeftCorner() string  { return "└" }
func (u *UnicodeSet) BottomRightCorner() string { return "┘" }

// Lines
func (u *UnicodeSet) Horizontal() string   { return "─" }
func (u *UnicodeSet) Vertical() string     { return "│" }
func (u *UnicodeSet) Backslash() string    { return "╲" }
func (u *UnicodeSet) ForwardSlash() string { return "╱" }

// Symbols
func (u *UnicodeSet) Circle() string { return "o" }
func (u *UnicodeSet) Oval() string   { return "O" }
func (u *UnicodeSet) Star() string   { return "*" }
