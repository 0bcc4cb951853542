package blessings

import (
	"testing"

	"github.com/Skulhunter5/blessings/terminal"
)

// fakeTerm records Terminal calls for assertions
type fakeTerm struct {
	width  int
	height int

	inited bool
	finied bool
	syncs  int

	flushes  []flushRecord
	resizeCh chan terminal.ResizeEvent

	cursorStyle terminal.CursorStyle
	styleSets   int
	visible     bool
	visSets     int

	moveX, moveY int
	moves        int
}

type flushRecord struct {
	cells  []terminal.Cell
	width  int
	height int
	spans  []terminal.LineSpan
}

func newFakeTerm(width, height int) *fakeTerm {
	return &fakeTerm{
		width:    width,
		height:   height,
		resizeCh: make(chan terminal.ResizeEvent, 1),
	}
}

func (f *fakeTerm) Init() error { f.inited = true; return nil }
func (f *fakeTerm) Fini()       { f.finied = true }
func (f *fakeTerm) Size() (int, int) {
	return f.width, f.height
}
func (f *fakeTerm) ResizeChan() <-chan terminal.ResizeEvent { return f.resizeCh }
func (f *fakeTerm) ColorMode() terminal.ColorMode           { return terminal.ColorMode256 }

func (f *fakeTerm) Flush(cells []terminal.Cell, width, height int, spans []terminal.LineSpan) {
	rec := flushRecord{width: width, height: height}
	rec.cells = make([]terminal.Cell, len(cells))
	copy(rec.cells, cells)
	if spans != nil {
		rec.spans = make([]terminal.LineSpan, len(spans))
		copy(rec.spans, spans)
	}
	f.flushes = append(f.flushes, rec)
}

func (f *fakeTerm) Clear(bg terminal.RGB) {}
func (f *fakeTerm) SetCursorVisible(v bool) {
	f.visible = v
	f.visSets++
}
func (f *fakeTerm) SetCursorStyle(style terminal.CursorStyle) {
	f.cursorStyle = style
	f.styleSets++
}
func (f *fakeTerm) MoveCursor(x, y int) {
	f.moveX, f.moveY = x, y
	f.moves++
}
func (f *fakeTerm) Sync() { f.syncs++ }

func newTestScreen(t *testing.T, width, height int) (*Screen, *fakeTerm) {
	t.Helper()
	ft := newFakeTerm(width, height)
	s := NewWithSize(ft, width, height)
	return s, ft
}

func (s *Screen) cellAt(x, y int) Cell {
	return s.back[y*s.width+x]
}

func TestBeginEnd(t *testing.T) {
	s, ft := newTestScreen(t, 10, 4)

	if err := s.Begin(); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if !ft.inited {
		t.Error("Begin did not initialize the terminal")
	}

	s.End()
	if !ft.finied {
		t.Error("End did not finalize the terminal")
	}
}

func TestMoveToClamps(t *testing.T) {
	s, _ := newTestScreen(t, 10, 4)

	tests := []struct {
		name         string
		x, y         int
		wantX, wantY int
	}{
		{"inside", 3, 2, 3, 2},
		{"beyond right", 20, 0, 9, 0},
		{"beyond bottom", 0, 9, 0, 3},
		{"negative", -2, -2, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s.MoveTo(tt.x, tt.y)
			x, y := s.Cursor()
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("MoveTo(%d, %d) -> (%d, %d), want (%d, %d)",
					tt.x, tt.y, x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestSaveRestoreCursor(t *testing.T) {
	s, _ := newTestScreen(t, 10, 4)

	s.MoveTo(7, 2)
	s.SaveCursor()
	s.MoveTo(1, 1)
	s.RestoreCursor()

	if x, y := s.Cursor(); x != 7 || y != 2 {
		t.Errorf("restored cursor = (%d, %d), want (7, 2)", x, y)
	}
}

func TestClearVariants(t *testing.T) {
	bg := terminal.RGB{R: 10, G: 20, B: 30}

	t.Run("all", func(t *testing.T) {
		s, _ := newTestScreen(t, 6, 3)
		s.PrintAt(0, 0, "hello")
		s.SetBackground(bg)
		s.Clear(ClearAll)

		for y := 0; y < 3; y++ {
			for x := 0; x < 6; x++ {
				c := s.cellAt(x, y)
				if c.Rune != EmptyRune || c.Bg != bg {
					t.Fatalf("cell (%d,%d) = %+v, want blank with bg %v", x, y, c, bg)
				}
			}
		}
	})

	t.Run("current line", func(t *testing.T) {
		s, _ := newTestScreen(t, 6, 3)
		s.PrintAt(0, 0, "aaaaa")
		s.PrintAt(0, 1, "bbbbb")
		s.MoveTo(2, 1)
		s.Clear(ClearCurrentLine)

		if c := s.cellAt(0, 1); c.Rune != EmptyRune {
			t.Errorf("line 1 not cleared: %+v", c)
		}
		if c := s.cellAt(0, 0); c.Rune != 'a' {
			t.Errorf("line 0 was cleared: %+v", c)
		}
	})

	t.Run("until newline", func(t *testing.T) {
		s, _ := newTestScreen(t, 6, 3)
		s.PrintAt(0, 0, "abcdef")
		s.MoveTo(2, 0)
		s.Clear(ClearUntilNewline)

		if c := s.cellAt(1, 0); c.Rune != 'b' {
			t.Errorf("cell before cursor cleared: %+v", c)
		}
		for x := 2; x < 6; x++ {
			if c := s.cellAt(x, 0); c.Rune != EmptyRune {
				t.Errorf("cell (%d,0) not cleared: %+v", x, c)
			}
		}
	})

	t.Run("current cell", func(t *testing.T) {
		s, _ := newTestScreen(t, 6, 3)
		s.PrintAt(0, 0, "abc")
		s.MoveTo(1, 0)
		s.Clear(ClearCurrent)

		if c := s.cellAt(1, 0); c.Rune != EmptyRune {
			t.Errorf("cursor cell not cleared: %+v", c)
		}
		if c := s.cellAt(0, 0); c.Rune != 'a' {
			t.Errorf("neighbor cell cleared: %+v", c)
		}
	})
}

func TestDirtySpanTracking(t *testing.T) {
	s, _ := newTestScreen(t, 10, 4)

	// Fresh screen: all lines clean
	for y, sp := range s.spans {
		if sp.Dirty() {
			t.Fatalf("line %d dirty on fresh screen", y)
		}
	}

	s.PrintAt(2, 1, "hi")

	if sp := s.spans[1]; !sp.Dirty() || sp.First != 2 || sp.Last != 3 {
		t.Errorf("line 1 span = %+v, want [2, 3]", sp)
	}
	for _, y := range []int{0, 2, 3} {
		if s.spans[y].Dirty() {
			t.Errorf("line %d dirty without writes", y)
		}
	}

	// Widening on a second write
	s.PrintAt(7, 1, "x")
	if sp := s.spans[1]; sp.First != 2 || sp.Last != 7 {
		t.Errorf("line 1 span = %+v, want [2, 7]", sp)
	}
}

func TestShowPassesSpansAndResets(t *testing.T) {
	s, ft := newTestScreen(t, 10, 4)

	s.PrintAt(0, 2, "abc")
	s.Show()

	if len(ft.flushes) != 1 {
		t.Fatalf("expected 1 flush, got %d", len(ft.flushes))
	}
	rec := ft.flushes[0]
	if rec.spans == nil {
		t.Fatal("Show passed nil spans without force redraw")
	}
	if sp := rec.spans[2]; sp.First != 0 || sp.Last != 2 {
		t.Errorf("flushed span for line 2 = %+v, want [0, 2]", sp)
	}

	// Spans reset after Show
	for y, sp := range s.spans {
		if sp.Dirty() {
			t.Errorf("line %d still dirty after Show", y)
		}
	}
}

func TestShowAppliesCursorStateOnce(t *testing.T) {
	s, ft := newTestScreen(t, 10, 4)

	s.SetCursorStyle(terminal.CursorBlinkingBar)
	s.ShowCursor()
	s.Show()

	if ft.styleSets != 1 || ft.cursorStyle != terminal.CursorBlinkingBar {
		t.Errorf("cursor style sets = %d (style %v), want 1 set of blinking bar",
			ft.styleSets, ft.cursorStyle)
	}
	if ft.visSets != 1 || !ft.visible {
		t.Errorf("visibility sets = %d (visible %v), want 1 set of visible", ft.visSets, ft.visible)
	}

	// Unchanged state is not re-sent
	s.Show()
	if ft.styleSets != 1 || ft.visSets != 1 {
		t.Errorf("unchanged cursor state re-sent: styles %d, vis %d", ft.styleSets, ft.visSets)
	}
}

func TestShowParksCursor(t *testing.T) {
	s, ft := newTestScreen(t, 10, 4)

	s.BeginWindow(3, 1, 5, 2)
	s.MoveTo(2, 1)
	s.Show()

	if ft.moveX != 5 || ft.moveY != 2 {
		t.Errorf("parked cursor at (%d, %d), want absolute (5, 2)", ft.moveX, ft.moveY)
	}
}

func TestResizePreservesContent(t *testing.T) {
	s, _ := newTestScreen(t, 6, 3)

	s.PrintAt(0, 0, "abc")
	s.PrintAt(0, 2, "zzz")
	s.MoveTo(5, 2)

	s.Resize(4, 2)

	if w, h := s.Size(); w != 4 || h != 2 {
		t.Fatalf("size after resize = %dx%d, want 4x2", w, h)
	}
	if c := s.cellAt(0, 0); c.Rune != 'a' {
		t.Errorf("content lost on resize: %+v", c)
	}
	if x, y := s.Cursor(); x != 3 || y != 1 {
		t.Errorf("cursor after resize = (%d, %d), want clamped (3, 1)", x, y)
	}
	if !s.forceRedraw {
		t.Error("resize must force a full redraw")
	}
}

func TestShowAfterResizeForcesFullFlush(t *testing.T) {
	s, ft := newTestScreen(t, 6, 3)

	ft.width, ft.height = 8, 5
	s.Resize(8, 5)
	s.Show()

	if ft.syncs != 1 {
		t.Errorf("expected terminal Sync before full redraw, got %d", ft.syncs)
	}
	rec := ft.flushes[len(ft.flushes)-1]
	if rec.spans != nil {
		t.Error("forced redraw must flush with nil spans")
	}
	if rec.width != 8 || rec.height != 5 {
		t.Errorf("flush geometry = %dx%d, want 8x5", rec.width, rec.height)
	}
}

func TestHandleResize(t *testing.T) {
	s, ft := newTestScreen(t, 6, 3)

	if s.HandleResize() {
		t.Error("HandleResize reported change with empty channel")
	}

	ft.width, ft.height = 10, 6
	ft.resizeCh <- terminal.ResizeEvent{Width: 10, Height: 6}
	if !s.HandleResize() {
		t.Fatal("HandleResize ignored pending event")
	}
	if w, h := s.Size(); w != 10 || h != 6 {
		t.Errorf("size after HandleResize = %dx%d, want 10x6", w, h)
	}

	// Same-size event is a no-op
	ft.resizeCh <- terminal.ResizeEvent{Width: 10, Height: 6}
	if s.HandleResize() {
		t.Error("HandleResize reported change for identical size")
	}
}

func TestClearColorsUsesDefaults(t *testing.T) {
	s, _ := newTestScreen(t, 6, 3)

	fg := terminal.RGB{R: 1, G: 2, B: 3}
	bg := terminal.RGB{R: 4, G: 5, B: 6}
	s.SetDefaultColors(fg, bg)
	s.SetColors(terminal.Red, terminal.Blue)
	s.ClearColors()

	gotFg, gotBg := s.Colors()
	if gotFg != fg || gotBg != bg {
		t.Errorf("ClearColors -> (%v, %v), want (%v, %v)", gotFg, gotBg, fg, bg)
	}
}
