// Package terminal reports properties of the attached terminal.
package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// IsTerminal reports whether stdout is a terminal. Colour output is only
// worth emitting when it is.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// GetWidth returns the current terminal width.
func GetWidth() int {
	width, _ := GetSize()
	return width
}

// FitColumns returns how many cells of cellWidth characters fit in width,
// capped at want.
func FitColumns(width, cellWidth, want int) int {
	if cellWidth <= 0 {
		return want
	}
	n := width / cellWidth
	if n > want {
		return want
	}
	if n < 1 {
		return 1
	}
	return n
}
