package blessings

import (
	"fmt"

	"github.com/mattn/go-runewidth"
)

// tabWidth is the fixed tab stop interval
const tabWidth = 8

// Print writes a string at the cursor, advancing it. Control characters
// are interpreted (\n \r \t \b), other C0/C1 controls are dropped, and
// output wraps inside the current window on both axes
func (s *Screen) Print(message string) {
	w := s.currentWindow()
	for _, r := range message {
		s.printRune(r, w)
	}
}

// Printf formats into the screen like Print
func (s *Screen) Printf(format string, args ...any) {
	s.Print(fmt.Sprintf(format, args...))
}

// PrintChar writes a single rune at the cursor, advancing it
func (s *Screen) PrintChar(r rune) {
	s.printRune(r, s.currentWindow())
}

// PrintAt moves the cursor and prints
func (s *Screen) PrintAt(x, y int, message string) {
	s.MoveTo(x, y)
	s.Print(message)
}

// printRune handles one rune: control interpretation, width classification,
// cell placement, cursor advance with wrap-around
func (s *Screen) printRune(r rune, w Window) {
	if w.Width <= 0 || w.Height <= 0 {
		return
	}

	switch r {
	case '\n':
		s.cursor.x = 0
		s.lineFeed(w)
		return
	case '\r':
		s.cursor.x = 0
		return
	case '\t':
		next := (s.cursor.x/tabWidth + 1) * tabWidth
		if next >= w.Width {
			s.cursor.x = 0
			s.lineFeed(w)
			return
		}
		s.cursor.x = next
		return
	case '\b':
		if s.cursor.x > 0 {
			s.cursor.x--
		}
		return
	}

	// Remaining controls (C0 below space, DEL, C1 range) have no cell form
	if r < ' ' || (r >= 0x7f && r < 0xa0) {
		return
	}

	rw := runewidth.RuneWidth(r)
	if rw == 0 {
		// Combining and zero-width runes are not composed onto cells
		return
	}

	// A wide rune never straddles the window edge; wrap first
	if rw == 2 && s.cursor.x >= w.Width-1 {
		s.cursor.x = 0
		s.lineFeed(w)
	}
	if rw > w.Width {
		return // Window too narrow for this rune at all
	}

	s.putRune(w.X+s.cursor.x, w.Y+s.cursor.y, r, rw)

	s.cursor.x += rw
	if s.cursor.x >= w.Width {
		s.cursor.x = 0
		s.lineFeed(w)
	}
}

// lineFeed advances the cursor one line, wrapping to the window top
func (s *Screen) lineFeed(w Window) {
	s.cursor.y++
	if s.cursor.y >= w.Height {
		s.cursor.y = 0
	}
}

// putRune writes a rune cell at absolute coordinates with the current pen,
// repairing any wide rune halves it overwrites
func (s *Screen) putRune(ax, ay int, r rune, rw int) {
	idx := ay*s.width + ax

	s.damageWide(ax, ay)

	s.back[idx] = Cell{Rune: r, Fg: s.fg, Bg: s.bg, Attrs: s.attrs}
	s.touch(ax, ay)

	if rw == 2 {
		// Continuation cell: zero rune, skipped by the output layer
		cont := ax + 1
		s.damageWide(cont, ay)
		s.back[ay*s.width+cont] = Cell{Rune: 0, Fg: s.fg, Bg: s.bg, Attrs: s.attrs}
		s.touch(cont, ay)
	}
}

// damageWide blanks orphaned halves of wide runes around a write target:
// a wide rune to the left whose continuation this write covers, or a wide
// rune in the target cell whose continuation would be orphaned
func (s *Screen) damageWide(ax, ay int) {
	idx := ay*s.width + ax

	if ax > 0 {
		left := &s.back[idx-1]
		if runewidth.RuneWidth(left.Rune) == 2 {
			left.Rune = EmptyRune
			s.touch(ax-1, ay)
		}
	}

	cur := s.back[idx]
	if runewidth.RuneWidth(cur.Rune) == 2 && ax+1 < s.width {
		right := &s.back[idx+1]
		right.Rune = EmptyRune
		s.touch(ax+1, ay)
	}
}
