package parser

import "strings"

// IsYellow reports whether a fill color is the highlight used to mark a
// confirmed assignment. Both the RGB form "FFFF00" and the ARGB form
// "FFFFFF00" of the same hue match, in any case and with or without "#".
func IsYellow(color string) bool {
	c := strings.ToUpper(strings.TrimPrefix(strings.TrimSpace(color), "#"))
	return c == "FFFF00" || c == "FFFFFF00"
}
