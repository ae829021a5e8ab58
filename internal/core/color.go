package core

// Color represents a drawing color.
// Terminal backends map it to ANSI 256-color codes, the window backend to RGBA.
type Color uint8

// Predefined colors. Pong itself only draws white on black.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorWhite
	ColorGray
	ColorGreen
	ColorYellow
)
