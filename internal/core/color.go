package core

// Color is a cell foreground colour as a "#rrggbb" hex string.
// The empty Color is the terminal default.
type Color string

// ColorDefault leaves the terminal colour untouched.
const ColorDefault Color = ""
