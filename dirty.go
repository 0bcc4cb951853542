package blessings

import (
	"github.com/Skulhunter5/blessings/terminal"
)

// Per-line change tracking: each row keeps the first and last column
// modified since the previous Show, the way ncurses records firstchar and
// lastchar per window line. Show hands these spans to terminal.Flush so
// diffing never scans untouched rows.

// touch widens row y's span to include column x
func (s *Screen) touch(x, y int) {
	if y < 0 || y >= s.height {
		return
	}
	sp := &s.spans[y]
	if !sp.Dirty() {
		sp.First = x
		sp.Last = x
		return
	}
	if x < sp.First {
		sp.First = x
	}
	if x > sp.Last {
		sp.Last = x
	}
}

// touchRange widens row y's span to include columns x0 through x1 inclusive
func (s *Screen) touchRange(y, x0, x1 int) {
	if y < 0 || y >= s.height || x1 < x0 {
		return
	}
	sp := &s.spans[y]
	if !sp.Dirty() {
		sp.First = x0
		sp.Last = x1
		return
	}
	if x0 < sp.First {
		sp.First = x0
	}
	if x1 > sp.Last {
		sp.Last = x1
	}
}

// touchAll marks every line fully changed
func (s *Screen) touchAll() {
	for y := range s.spans {
		s.spans[y] = terminal.LineSpan{First: 0, Last: s.width - 1}
	}
}

// clearSpans resets all lines to unchanged
func (s *Screen) clearSpans() {
	for y := range s.spans {
		s.spans[y] = terminal.CleanSpan
	}
}
