package core

import "strings"

// Color is a foreground color for a screen cell, stored as a "#rrggbb" hex string.
// The zero value means the terminal's default color.
type Color string

// ColorDefault leaves the cell in the terminal's default color.
const ColorDefault Color = ""

// Hex returns the normalized lowercase hex string of the color.
func (c Color) Hex() string {
	return strings.ToLower(string(c))
}

// IsDefault reports whether the color defers to the terminal default.
func (c Color) IsDefault() bool {
	return c == ColorDefault
}
