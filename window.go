package blessings

// Window is a bounded sub-region of the screen in absolute coordinates
type Window struct {
	X      int
	Y      int
	Width  int
	Height int
}

// currentWindow returns the innermost active window, or the whole screen
func (s *Screen) currentWindow() Window {
	if n := len(s.windows); n > 0 {
		return s.windows[n-1]
	}
	return Window{X: 0, Y: 0, Width: s.width, Height: s.height}
}

// isBaseWindow returns true when no sub-window is active
func (s *Screen) isBaseWindow() bool {
	return len(s.windows) == 0
}

// BeginWindow pushes a sub-window at x, y relative to the current window.
// The region is clamped to the parent's bounds. The cursor and stored
// cursor reset to the new window's origin
func (s *Screen) BeginWindow(x, y, width, height int) {
	outer := s.currentWindow()

	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}

	absX := min(outer.X+x, outer.X+outer.Width-1)
	absY := min(outer.Y+y, outer.Y+outer.Height-1)
	width = clampDim(width, outer.X+outer.Width-absX)
	height = clampDim(height, outer.Y+outer.Height-absY)

	s.cursor = point{}
	s.stored = point{}

	s.windows = append(s.windows, Window{X: absX, Y: absY, Width: width, Height: height})
}

// EndWindow pops the innermost window. The cursor translates into the
// enclosing window's coordinate space, clamped to its bounds
func (s *Screen) EndWindow() {
	n := len(s.windows)
	if n == 0 {
		return
	}
	w := s.windows[n-1]
	s.windows = s.windows[:n-1]
	outer := s.currentWindow()

	s.cursor = s.rebase(s.cursor, w, outer)
	s.stored = s.rebase(s.stored, w, outer)
}

// rebase converts a cursor relative to an inner window into coordinates
// relative to the enclosing window
func (s *Screen) rebase(p point, inner, outer Window) point {
	return point{
		x: clampCoord(inner.X+p.x-outer.X, outer.Width),
		y: clampCoord(inner.Y+p.y-outer.Y, outer.Height),
	}
}

func clampDim(v, limit int) int {
	if v < 0 {
		return 0
	}
	if v > limit {
		return limit
	}
	return v
}

func clampCoord(v, dim int) int {
	if v < 0 {
		return 0
	}
	if v >= dim {
		return dim - 1
	}
	return v
}
