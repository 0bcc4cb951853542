package blessings

import (
	"github.com/Skulhunter5/blessings/terminal"
)

// Cell is an alias to terminal.Cell to avoid copying at the flush boundary
type Cell = terminal.Cell

// Attr is an alias to terminal.Attr
type Attr = terminal.Attr

// RGB is an alias to terminal.RGB
type RGB = terminal.RGB

// CursorStyle is an alias to terminal.CursorStyle
type CursorStyle = terminal.CursorStyle

// EmptyRune fills cleared cells
const EmptyRune = ' '

// Package defaults for freshly created screens; ClearColors returns the
// pen to the screen's own copy of these
var (
	DefaultFg = terminal.LightGray
	DefaultBg = terminal.Black
)

// emptyCell returns a blank cell carrying the given colors
func emptyCell(fg, bg RGB) Cell {
	return Cell{Rune: EmptyRune, Fg: fg, Bg: bg}
}
