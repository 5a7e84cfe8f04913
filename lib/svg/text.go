package svg

import (
	"bytes"
	"encoding/xml"
	"strings"
)

// EscapeText escapes text for use as SVG character data.
func EscapeText(text string) string {
	buf := new(bytes.Buffer)
	_ = xml.EscapeText(buf, []byte(text))
	return buf.String()
}

// Title returns a <title> element holding text on a single line. Browsers
// show it as the tooltip of the enclosing element.
func Title(text string) string {
	text = strings.ReplaceAll(text, "\n", " ")
	return "<title>" + EscapeText(text) + "</title>"
}
