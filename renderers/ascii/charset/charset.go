package charset

// Set defines the characters used to draw shapes on a canvas.
type Set interface {
	// Corners
	TopLeftCorner() string
	TopRightCorner() string
	BottomLeftCorner() string
	BottomRightCorner() string

	// Lines
	Horizontal() string
	Vertical() string
	Backslash() string
	ForwardSlash() string

	// Symbols
	Circle() string
	Oval() string
	Star() string
}

// Type represents the type of character set
type Type int

const (
	Unicode Type = iota
	ASCII
)

// New creates a new character set based on the specified type
func New(t Type) Set {
	switch t {
	case ASCII:
		return NewASCII()
	default:
		return NewUnicode()
	}
}

// Parse maps a user supplied name to a Type.
func Parse(name string) (Type, bool) {
	switch name {
	case "unicode":
		return Unicode, true
	case "ascii":
		return ASCII, true
	}
	return Unicode, false
}
