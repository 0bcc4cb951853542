package terminal

import (
	"bufio"
	"io"

	"github.com/mattn/go-runewidth"
)

// eraseRunMin is the shortest trailing blank run worth an erase-to-EOL
// sequence instead of writing spaces
const eraseRunMin = 4

// outputBuffer manages double-buffered terminal output with diffing
type outputBuffer struct {
	front     []Cell
	width     int
	height    int
	colorMode ColorMode
	writer    *bufio.Writer

	cursorX     int
	cursorY     int
	cursorValid bool

	// Style state for coalescing
	lastFg    RGB
	lastBg    RGB
	lastAttr  Attr
	lastValid bool
}

// newOutputBuffer creates a new output buffer
func newOutputBuffer(w io.Writer, colorMode ColorMode) *outputBuffer {
	return &outputBuffer{
		writer:    bufio.NewWriterSize(w, 131072), // 128KB buffer
		colorMode: colorMode,
	}
}

// resize updates buffer dimensions
func (o *outputBuffer) resize(width, height int) {
	size := width * height
	if cap(o.front) < size {
		o.front = make([]Cell, size)
	} else {
		o.front = o.front[:size]
	}
	o.width = width
	o.height = height

	for i := range o.front {
		o.front[i] = Cell{Rune: 0}
	}
	o.lastValid = false
	o.cursorValid = false
}

// cellEqual compares two cells for equality (standalone for inlining)
// Rune 0 and space are the same blank; blank cells compare by background
// only since their foreground is invisible
func cellEqual(a, b Cell) bool {
	ar, br := a.Rune, b.Rune
	if ar == 0 {
		ar = ' '
	}
	if br == 0 {
		br = ' '
	}
	if ar != br || a.Attrs != b.Attrs {
		return false
	}
	if ar == ' ' {
		return a.Bg == b.Bg
	}
	return a.Fg == b.Fg && a.Bg == b.Bg
}

// cellBlank reports whether a cell renders as an empty space with no
// visible style (candidates for erase-to-EOL)
func cellBlank(c Cell) bool {
	return (c.Rune == 0 || c.Rune == ' ') && c.Attrs&AttrStyle == 0
}

// flush writes the back buffer to terminal, diffing against front buffer
// When spans is non-nil, only the given column range of each row is scanned
func (o *outputBuffer) flush(cells []Cell, width, height int, spans []LineSpan) {
	if width != o.width || height != o.height {
		o.resize(width, height)
		spans = nil // Dimensions changed, scan everything
	}

	expectedSize := width * height
	if len(cells) < expectedSize {
		return
	}
	if spans != nil && len(spans) < height {
		return
	}

	w := o.writer

	for y := 0; y < height; y++ {
		rowStart := y * width

		x := 0
		last := width - 1
		if spans != nil {
			s := spans[y]
			if !s.Dirty() {
				continue
			}
			x = max(s.First, 0)
			last = min(s.Last, width-1)
		}

		for x <= last {
			idx := rowStart + x
			newCell := cells[idx]

			if cellEqual(newCell, o.front[idx]) {
				x++
				continue
			}

			// Position cursor once for this dirty region
			o.moveTo(w, x, y)

			// Write all contiguous dirty cells, emitting style only when changed
			for x <= last {
				cidx := rowStart + x
				c := cells[cidx]

				if cellEqual(c, o.front[cidx]) {
					break
				}

				// A blank run reaching the end of the row collapses into one EL
				if n := o.blankRunToEOL(cells, rowStart, x, width); n >= eraseRunMin {
					o.moveTo(w, x, y)
					o.writeStyleCoalesced(w, c.Fg, c.Bg, c.Attrs&^AttrStyle)
					w.Write(csiEraseToEOL)
					copy(o.front[cidx:rowStart+width], cells[cidx:rowStart+width])
					x = width
					break
				}

				o.writeStyleCoalesced(w, c.Fg, c.Bg, c.Attrs)

				r := c.Rune
				if r == 0 {
					r = ' '
				}
				cw := 1
				if r >= 0x80 {
					cw = runewidth.RuneWidth(r)
					if cw < 1 {
						// Should not reach the buffer; render as space
						r = ' '
						cw = 1
					}
					w.WriteRune(r)
				} else {
					w.WriteByte(byte(r))
				}

				o.front[cidx] = c
				o.cursorX += cw
				x += cw

				// The cell shadowed by a wide rune never gets written;
				// mark it synced so it cannot retrigger a diff
				if cw == 2 && x-1 < width {
					o.front[rowStart+x-1] = cells[rowStart+x-1]
				}
			}
		}
	}

	w.Write(csiSGR0)
	o.lastValid = false

	w.Flush()
}

// blankRunToEOL returns the run length when every cell from x to the end of
// the row is blank with one background and differs somewhere from the front
// buffer; returns 0 otherwise
func (o *outputBuffer) blankRunToEOL(cells []Cell, rowStart, x, width int) int {
	bg := cells[rowStart+x].Bg
	for i := x; i < width; i++ {
		c := cells[rowStart+i]
		if !cellBlank(c) || c.Bg != bg {
			return 0
		}
	}
	return width - x
}

// moveTo positions the physical cursor, preferring a short forward hop
func (o *outputBuffer) moveTo(w *bufio.Writer, x, y int) {
	if o.cursorValid && x == o.cursorX && y == o.cursorY {
		return
	}
	// Non-destructive cursor movement only
	if o.cursorValid && y == o.cursorY && x > o.cursorX && x-o.cursorX <= 4 {
		writeCursorForward(w, x-o.cursorX)
	} else {
		writeCursorPos(w, x, y)
	}
	o.cursorX = x
	o.cursorY = y
	o.cursorValid = true
}

// writeStyleCoalesced emits a single combined SGR sequence when style changes
func (o *outputBuffer) writeStyleCoalesced(w *bufio.Writer, fg, bg RGB, attr Attr) {
	fgChanged := !o.lastValid || fg != o.lastFg || (attr&AttrFg256) != (o.lastAttr&AttrFg256)
	bgChanged := !o.lastValid || bg != o.lastBg || (attr&AttrBg256) != (o.lastAttr&AttrBg256)
	styleAttr := attr & AttrStyle
	attrChanged := !o.lastValid || styleAttr != o.lastAttr&AttrStyle

	if !fgChanged && !bgChanged && !attrChanged {
		return
	}

	if attrChanged {
		// Attributes changed, reset first then rebuild the full style
		w.Write(csi)
		w.WriteByte('0')
		if styleAttr&AttrBold != 0 {
			w.Write([]byte(";1"))
		}
		if styleAttr&AttrDim != 0 {
			w.Write([]byte(";2"))
		}
		if styleAttr&AttrItalic != 0 {
			w.Write([]byte(";3"))
		}
		if styleAttr&AttrUnderline != 0 {
			w.Write([]byte(";4"))
		}
		if styleAttr&AttrBlink != 0 {
			w.Write([]byte(";5"))
		}
		if styleAttr&AttrReverse != 0 {
			w.Write([]byte(";7"))
		}
		o.writeFgInline(w, fg, attr)
		o.writeBgInline(w, bg, attr)
		w.WriteByte('m')
	} else {
		// Only colors changed, emit minimal sequence
		if fgChanged && bgChanged {
			w.Write(csi)
			o.writeFgInline(w, fg, attr)
			o.writeBgInline(w, bg, attr)
			w.WriteByte('m')
		} else if fgChanged {
			o.writeFgFull(w, fg, attr)
		} else if bgChanged {
			o.writeBgFull(w, bg, attr)
		}
	}

	o.lastFg = fg
	o.lastBg = bg
	o.lastAttr = attr
	o.lastValid = true
}

// writeFgInline writes fg color parameters (no CSI prefix, no 'm' suffix)
func (o *outputBuffer) writeFgInline(w *bufio.Writer, fg RGB, attr Attr) {
	w.WriteByte(';')
	if attr&AttrFg256 != 0 {
		w.Write([]byte("38;5;"))
		writeInt(w, int(fg.R))
	} else if o.colorMode == ColorModeTrueColor {
		w.Write([]byte("38;2;"))
		writeInt(w, int(fg.R))
		w.WriteByte(';')
		writeInt(w, int(fg.G))
		w.WriteByte(';')
		writeInt(w, int(fg.B))
	} else {
		w.Write([]byte("38;5;"))
		writeInt(w, int(RGBTo256(fg)))
	}
}

// writeBgInline writes bg color parameters (no CSI prefix, no 'm' suffix)
func (o *outputBuffer) writeBgInline(w *bufio.Writer, bg RGB, attr Attr) {
	w.WriteByte(';')
	if attr&AttrBg256 != 0 {
		w.Write([]byte("48;5;"))
		writeInt(w, int(bg.R))
	} else if o.colorMode == ColorModeTrueColor {
		w.Write([]byte("48;2;"))
		writeInt(w, int(bg.R))
		w.WriteByte(';')
		writeInt(w, int(bg.G))
		w.WriteByte(';')
		writeInt(w, int(bg.B))
	} else {
		w.Write([]byte("48;5;"))
		writeInt(w, int(RGBTo256(bg)))
	}
}

// writeFgFull writes complete fg color sequence
func (o *outputBuffer) writeFgFull(w *bufio.Writer, fg RGB, attr Attr) {
	if attr&AttrFg256 != 0 {
		w.Write(csiFg256)
		writeInt(w, int(fg.R))
	} else if o.colorMode == ColorModeTrueColor {
		w.Write(csiFgRGB)
		writeInt(w, int(fg.R))
		w.WriteByte(';')
		writeInt(w, int(fg.G))
		w.WriteByte(';')
		writeInt(w, int(fg.B))
	} else {
		w.Write(csiFg256)
		writeInt(w, int(RGBTo256(fg)))
	}
	w.WriteByte('m')
}

// writeBgFull writes complete bg color sequence
func (o *outputBuffer) writeBgFull(w *bufio.Writer, bg RGB, attr Attr) {
	if attr&AttrBg256 != 0 {
		w.Write(csiBg256)
		writeInt(w, int(bg.R))
	} else if o.colorMode == ColorModeTrueColor {
		w.Write(csiBgRGB)
		writeInt(w, int(bg.R))
		w.WriteByte(';')
		writeInt(w, int(bg.G))
		w.WriteByte(';')
		writeInt(w, int(bg.B))
	} else {
		w.Write(csiBg256)
		writeInt(w, int(RGBTo256(bg)))
	}
	w.WriteByte('m')
}

// forceFullRedraw clears front buffer to force complete redraw
func (o *outputBuffer) forceFullRedraw() {
	for i := range o.front {
		o.front[i] = Cell{Rune: 0}
	}
	o.lastValid = false
	o.cursorValid = false
}

// clear writes a clear screen with specified background
func (o *outputBuffer) clear(bg RGB) {
	w := o.writer
	w.Write(csiSGR0)
	o.writeBgFull(w, bg, 0)
	w.Write(csiClear)

	o.lastValid = false
	o.cursorValid = false
	w.Flush()

	for i := range o.front {
		o.front[i] = Cell{Rune: ' ', Bg: bg}
	}
}

// invalidateCursor marks cursor position as unknown
func (o *outputBuffer) invalidateCursor() {
	o.cursorValid = false
}
