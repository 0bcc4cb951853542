package blessings

import (
	"fmt"

	"github.com/Skulhunter5/blessings/terminal"
)

// ClearType selects the region Clear affects
type ClearType uint8

const (
	// ClearAll clears the current window (the whole screen on the base window)
	ClearAll ClearType = iota
	// ClearCurrentLine clears the cursor's line within the window
	ClearCurrentLine
	// ClearUntilNewline clears from the cursor to the end of the window line
	ClearUntilNewline
	// ClearCurrent clears the cell under the cursor
	ClearCurrent
)

type point struct {
	x, y int
}

// Screen is a double-buffered terminal surface. Drawing calls mutate the
// back buffer and per-line change ranges; Show pushes the delta to the
// terminal. A Screen is not safe for concurrent use
type Screen struct {
	term terminal.Terminal

	back   []Cell
	spans  []terminal.LineSpan
	width  int
	height int

	cursor point
	stored point

	fg    RGB
	bg    RGB
	attrs Attr

	defaultFg RGB
	defaultBg RGB

	windows []Window

	newCursorStyle CursorStyle
	curCursorStyle CursorStyle
	newCursorVis   bool
	curCursorVis   bool

	forceRedraw bool
}

// New creates a Screen over the process terminal, sized to it
func New() (*Screen, error) {
	term := terminal.New()
	w, h := term.Size()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("terminal size %dx%d unusable", w, h)
	}
	return NewWithSize(term, w, h), nil
}

// NewWithTerminal creates a Screen over an existing Terminal, sized to it
func NewWithTerminal(term terminal.Terminal) (*Screen, error) {
	w, h := term.Size()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("terminal size %dx%d unusable", w, h)
	}
	return NewWithSize(term, w, h), nil
}

// NewWithSize creates a Screen with explicit dimensions, for embedding and
// tests where the terminal size is controlled by the caller
func NewWithSize(term terminal.Terminal, width, height int) *Screen {
	s := &Screen{
		term:      term,
		width:     width,
		height:    height,
		fg:        DefaultFg,
		bg:        DefaultBg,
		defaultFg: DefaultFg,
		defaultBg: DefaultBg,
	}
	s.back = make([]Cell, width*height)
	s.spans = make([]terminal.LineSpan, height)
	for i := range s.back {
		s.back[i] = emptyCell(s.defaultFg, s.defaultBg)
	}
	s.clearSpans()
	return s
}

// Begin enters raw mode and the alternate screen buffer
func (s *Screen) Begin() error {
	if err := s.term.Init(); err != nil {
		return fmt.Errorf("screen begin: %w", err)
	}
	// Terminal may disagree with construction-time size (rare, but a resize
	// can land between New and Begin)
	if w, h := s.term.Size(); w != s.width || h != s.height {
		s.Resize(w, h)
	}
	return nil
}

// End restores the terminal. Safe to call multiple times
func (s *Screen) End() {
	s.term.Fini()
}

// Terminal exposes the underlying terminal layer
func (s *Screen) Terminal() terminal.Terminal {
	return s.term
}

// Width returns the current window width
func (s *Screen) Width() int {
	return s.currentWindow().Width
}

// Height returns the current window height
func (s *Screen) Height() int {
	return s.currentWindow().Height
}

// Size returns the current window dimensions
func (s *Screen) Size() (int, int) {
	w := s.currentWindow()
	return w.Width, w.Height
}

// Cursor returns the window-relative cursor position
func (s *Screen) Cursor() (int, int) {
	return s.cursor.x, s.cursor.y
}

// MoveTo positions the cursor within the current window, clamped to bounds
func (s *Screen) MoveTo(x, y int) {
	w := s.currentWindow()
	s.cursor.x = clampCoord(x, w.Width)
	s.cursor.y = clampCoord(y, w.Height)
}

// SaveCursor stores the cursor position for a later RestoreCursor
func (s *Screen) SaveCursor() {
	s.stored = s.cursor
}

// RestoreCursor returns the cursor to the stored position, clamped to the
// current window
func (s *Screen) RestoreCursor() {
	w := s.currentWindow()
	s.cursor.x = clampCoord(s.stored.x, w.Width)
	s.cursor.y = clampCoord(s.stored.y, w.Height)
}

// CursorStyle returns the pending cursor shape
func (s *Screen) CursorStyle() CursorStyle {
	return s.newCursorStyle
}

// SetCursorStyle selects the cursor shape, applied on the next Show
func (s *Screen) SetCursorStyle(style CursorStyle) {
	s.newCursorStyle = style
}

// CursorVisible returns the pending cursor visibility
func (s *Screen) CursorVisible() bool {
	return s.newCursorVis
}

// SetCursorVisible shows or hides the cursor, applied on the next Show
func (s *Screen) SetCursorVisible(visible bool) {
	s.newCursorVis = visible
}

// ShowCursor makes the cursor visible on the next Show
func (s *Screen) ShowCursor() {
	s.SetCursorVisible(true)
}

// HideCursor hides the cursor on the next Show
func (s *Screen) HideCursor() {
	s.SetCursorVisible(false)
}

// SetColors sets both pen colors
func (s *Screen) SetColors(fg, bg RGB) {
	s.fg = fg
	s.bg = bg
}

// SetForeground sets the pen foreground color
func (s *Screen) SetForeground(fg RGB) {
	s.fg = fg
}

// SetBackground sets the pen background color
func (s *Screen) SetBackground(bg RGB) {
	s.bg = bg
}

// Colors returns the current pen colors
func (s *Screen) Colors() (fg, bg RGB) {
	return s.fg, s.bg
}

// ClearColors returns the pen to the screen defaults
func (s *Screen) ClearColors() {
	s.fg = s.defaultFg
	s.bg = s.defaultBg
}

// SetDefaultColors changes what ClearColors resets to and what cleared
// cells are filled with when no pen color is active
func (s *Screen) SetDefaultColors(fg, bg RGB) {
	s.defaultFg = fg
	s.defaultBg = bg
}

// SetAttrs sets the pen attributes applied to subsequently printed cells
func (s *Screen) SetAttrs(attrs Attr) {
	s.attrs = attrs
}

// Attrs returns the current pen attributes
func (s *Screen) Attrs() Attr {
	return s.attrs
}

// Clear blanks a region of the current window with the pen background
func (s *Screen) Clear(ty ClearType) {
	w := s.currentWindow()
	if w.Width <= 0 || w.Height <= 0 {
		return
	}
	blank := emptyCell(s.fg, s.bg)

	switch ty {
	case ClearAll:
		if s.isBaseWindow() {
			for i := range s.back {
				s.back[i] = blank
			}
			s.touchAll()
			return
		}
		for y := w.Y; y < w.Y+w.Height; y++ {
			s.fillRow(y, w.X, w.X+w.Width-1, blank)
		}

	case ClearCurrentLine:
		y := w.Y + s.cursor.y
		s.fillRow(y, w.X, w.X+w.Width-1, blank)

	case ClearUntilNewline:
		y := w.Y + s.cursor.y
		s.fillRow(y, w.X+s.cursor.x, w.X+w.Width-1, blank)

	case ClearCurrent:
		x := w.X + s.cursor.x
		y := w.Y + s.cursor.y
		s.back[y*s.width+x] = blank
		s.touch(x, y)
	}
}

// fillRow blanks absolute columns x0..x1 of row y and records the change
func (s *Screen) fillRow(y, x0, x1 int, blank Cell) {
	base := y * s.width
	for x := x0; x <= x1; x++ {
		s.back[base+x] = blank
	}
	s.touchRange(y, x0, x1)
}

// Resize adjusts the screen to new terminal dimensions, preserving the
// overlapping region of the back buffer. Active sub-windows keep their old
// bounds; resizing mid-window is the caller's hazard
func (s *Screen) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	oldWidth := s.width
	oldHeight := s.height

	next := make([]Cell, width*height)
	blank := emptyCell(s.defaultFg, s.defaultBg)
	for i := range next {
		next[i] = blank
	}

	commonW := min(oldWidth, width)
	commonH := min(oldHeight, height)
	for y := 0; y < commonH; y++ {
		copy(next[y*width:y*width+commonW], s.back[y*oldWidth:y*oldWidth+commonW])
	}

	s.back = next
	s.width = width
	s.height = height
	s.spans = make([]terminal.LineSpan, height)
	s.clearSpans()

	s.cursor.x = clampCoord(s.cursor.x, width)
	s.cursor.y = clampCoord(s.cursor.y, height)
	s.stored.x = clampCoord(s.stored.x, width)
	s.stored.y = clampCoord(s.stored.y, height)

	s.forceRedraw = true
}

// HandleResize applies a pending terminal resize event if one arrived.
// Returns true when the screen dimensions changed. Call once per frame
func (s *Screen) HandleResize() bool {
	select {
	case ev := <-s.term.ResizeChan():
		if ev.Width == s.width && ev.Height == s.height {
			return false
		}
		s.Resize(ev.Width, ev.Height)
		return true
	default:
		return false
	}
}

// Show pushes all changes since the previous Show to the terminal
func (s *Screen) Show() {
	if s.forceRedraw {
		s.term.Sync()
		s.term.Flush(s.back, s.width, s.height, nil)
		s.forceRedraw = false
	} else {
		s.term.Flush(s.back, s.width, s.height, s.spans)
	}
	s.clearSpans()

	if s.newCursorStyle != s.curCursorStyle {
		s.term.SetCursorStyle(s.newCursorStyle)
		s.curCursorStyle = s.newCursorStyle
	}
	if s.newCursorVis != s.curCursorVis {
		s.term.SetCursorVisible(s.newCursorVis)
		s.curCursorVis = s.newCursorVis
	}

	// Park the physical cursor at the logical position
	w := s.currentWindow()
	s.term.MoveCursor(w.X+s.cursor.x, w.Y+s.cursor.y)
}
