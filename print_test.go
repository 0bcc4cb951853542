package blessings

import (
	"testing"

	"github.com/Skulhunter5/blessings/terminal"
)

func TestPrintBasic(t *testing.T) {
	s, _ := newTestScreen(t, 10, 3)

	s.SetColors(terminal.White, terminal.DeepNavy)
	s.Print("ab")

	a := s.cellAt(0, 0)
	if a.Rune != 'a' || a.Fg != terminal.White || a.Bg != terminal.DeepNavy {
		t.Errorf("cell (0,0) = %+v, want 'a' with pen colors", a)
	}
	if c := s.cellAt(1, 0); c.Rune != 'b' {
		t.Errorf("cell (1,0) = %+v, want 'b'", c)
	}
	if x, y := s.Cursor(); x != 2 || y != 0 {
		t.Errorf("cursor = (%d, %d), want (2, 0)", x, y)
	}
}

func TestPrintControlCharacters(t *testing.T) {
	t.Run("newline", func(t *testing.T) {
		s, _ := newTestScreen(t, 10, 3)
		s.Print("a\nb")
		if c := s.cellAt(0, 1); c.Rune != 'b' {
			t.Errorf("newline did not advance line: %+v", c)
		}
		if x, y := s.Cursor(); x != 1 || y != 1 {
			t.Errorf("cursor = (%d, %d), want (1, 1)", x, y)
		}
	})

	t.Run("carriage return", func(t *testing.T) {
		s, _ := newTestScreen(t, 10, 3)
		s.Print("abc\rX")
		if c := s.cellAt(0, 0); c.Rune != 'X' {
			t.Errorf("CR did not return to column 0: %+v", c)
		}
		if c := s.cellAt(1, 0); c.Rune != 'b' {
			t.Errorf("CR must not clear the line: %+v", c)
		}
	})

	t.Run("tab", func(t *testing.T) {
		s, _ := newTestScreen(t, 20, 3)
		s.Print("ab\tc")
		if c := s.cellAt(8, 0); c.Rune != 'c' {
			t.Errorf("tab did not advance to column 8: %+v", c)
		}
		// Skipped columns keep their content
		if c := s.cellAt(4, 0); c.Rune != EmptyRune {
			t.Errorf("tab overwrote skipped cell: %+v", c)
		}
	})

	t.Run("tab at stop", func(t *testing.T) {
		s, _ := newTestScreen(t, 20, 3)
		s.MoveTo(8, 0)
		s.Print("\tx")
		if c := s.cellAt(16, 0); c.Rune != 'x' {
			t.Errorf("tab from a stop must advance a full stop: %+v", c)
		}
	})

	t.Run("tab wraps near edge", func(t *testing.T) {
		s, _ := newTestScreen(t, 10, 3)
		s.MoveTo(9, 0)
		s.Print("\tx")
		if c := s.cellAt(0, 1); c.Rune != 'x' {
			t.Errorf("tab past the edge must wrap to next line: %+v", c)
		}
	})

	t.Run("backspace", func(t *testing.T) {
		s, _ := newTestScreen(t, 10, 3)
		s.Print("ab\bX")
		if c := s.cellAt(1, 0); c.Rune != 'X' {
			t.Errorf("backspace+write did not overwrite: %+v", c)
		}
	})

	t.Run("backspace at column 0", func(t *testing.T) {
		s, _ := newTestScreen(t, 10, 3)
		s.Print("\bx")
		if c := s.cellAt(0, 0); c.Rune != 'x' {
			t.Errorf("backspace at column 0 must stay: %+v", c)
		}
	})

	t.Run("other controls dropped", func(t *testing.T) {
		s, _ := newTestScreen(t, 10, 3)
		s.Print("a\x07\x1b\x00b") // BEL, ESC, NUL
		if c := s.cellAt(1, 0); c.Rune != 'b' {
			t.Errorf("control characters must not occupy cells: %+v", c)
		}
		if x, _ := s.Cursor(); x != 2 {
			t.Errorf("cursor advanced by dropped controls: x = %d", x)
		}
	})
}

func TestPrintWrapAround(t *testing.T) {
	s, _ := newTestScreen(t, 3, 2)

	s.Print("abcd")
	if c := s.cellAt(0, 1); c.Rune != 'd' {
		t.Errorf("horizontal wrap failed: %+v", c)
	}

	// Running off the bottom wraps back to the top line
	s.Print("ef")
	s.Print("ghi")
	if c := s.cellAt(0, 0); c.Rune != 'g' {
		t.Errorf("vertical wrap failed, cell (0,0) = %+v", c)
	}
}

func TestPrintf(t *testing.T) {
	s, _ := newTestScreen(t, 12, 2)
	s.Printf("n=%d", 42)
	if c := s.cellAt(2, 0); c.Rune != '4' {
		t.Errorf("Printf output wrong: %+v", c)
	}
}

func TestPrintAt(t *testing.T) {
	s, _ := newTestScreen(t, 10, 3)
	s.PrintAt(4, 2, "z")
	if c := s.cellAt(4, 2); c.Rune != 'z' {
		t.Errorf("PrintAt(4,2) wrote elsewhere: %+v", c)
	}
}

func TestPrintWideRunes(t *testing.T) {
	t.Run("occupies two cells", func(t *testing.T) {
		s, _ := newTestScreen(t, 6, 2)
		s.Print("日a")

		if c := s.cellAt(0, 0); c.Rune != '日' {
			t.Fatalf("leader cell = %+v, want 日", c)
		}
		if c := s.cellAt(1, 0); c.Rune != 0 {
			t.Errorf("continuation cell = %+v, want zero rune", c)
		}
		if c := s.cellAt(2, 0); c.Rune != 'a' {
			t.Errorf("cell after wide rune = %+v, want 'a'", c)
		}
	})

	t.Run("wraps instead of straddling the edge", func(t *testing.T) {
		s, _ := newTestScreen(t, 5, 2)
		s.MoveTo(4, 0)
		s.Print("日")

		if c := s.cellAt(4, 0); c.Rune == '日' {
			t.Error("wide rune straddles the right edge")
		}
		if c := s.cellAt(0, 1); c.Rune != '日' {
			t.Errorf("wide rune did not wrap, cell (0,1) = %+v", c)
		}
	})

	t.Run("overwriting continuation blanks leader", func(t *testing.T) {
		s, _ := newTestScreen(t, 6, 2)
		s.Print("日")
		s.PrintAt(1, 0, "x")

		if c := s.cellAt(0, 0); c.Rune != EmptyRune {
			t.Errorf("orphaned wide leader not blanked: %+v", c)
		}
		if c := s.cellAt(1, 0); c.Rune != 'x' {
			t.Errorf("overwrite failed: %+v", c)
		}
	})

	t.Run("overwriting leader blanks continuation", func(t *testing.T) {
		s, _ := newTestScreen(t, 6, 2)
		s.Print("日")
		s.PrintAt(0, 0, "x")

		if c := s.cellAt(0, 0); c.Rune != 'x' {
			t.Errorf("overwrite failed: %+v", c)
		}
		if c := s.cellAt(1, 0); c.Rune != EmptyRune {
			t.Errorf("orphaned continuation not blanked: %+v", c)
		}
	})

	t.Run("zero width dropped", func(t *testing.T) {
		s, _ := newTestScreen(t, 6, 2)
		s.Print("a\u0301b") // combining acute accent between a and b
		if c := s.cellAt(1, 0); c.Rune != 'b' {
			t.Errorf("zero-width rune occupied a cell: %+v", c)
		}
	})
}

func TestPrintInWindow(t *testing.T) {
	s, _ := newTestScreen(t, 10, 5)

	s.BeginWindow(2, 1, 4, 2)
	s.Print("abcde")

	// Window-relative (0,0) is absolute (2,1); wrap at window width 4
	if c := s.cellAt(2, 1); c.Rune != 'a' {
		t.Errorf("cell (2,1) = %+v, want 'a'", c)
	}
	if c := s.cellAt(5, 1); c.Rune != 'd' {
		t.Errorf("cell (5,1) = %+v, want 'd'", c)
	}
	if c := s.cellAt(2, 2); c.Rune != 'e' {
		t.Errorf("wrap inside window failed, cell (2,2) = %+v", c)
	}
	// Nothing escapes the window
	if c := s.cellAt(6, 1); c.Rune != EmptyRune {
		t.Errorf("write escaped the window: %+v", c)
	}
}
