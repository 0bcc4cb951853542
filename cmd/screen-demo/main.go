package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Skulhunter5/blessings"
	"github.com/Skulhunter5/blessings/terminal"
)

// Colors
var (
	bgColor     = terminal.RGB{R: 20, G: 20, B: 30}
	fgColor     = terminal.RGB{R: 200, G: 200, B: 200}
	borderColor = terminal.RGB{R: 80, G: 100, B: 140}
	accentColor = terminal.RGB{R: 100, G: 200, B: 220}
	warnColor   = terminal.RGB{R: 255, G: 180, B: 100}
	headerBg    = terminal.RGB{R: 40, G: 50, B: 70}
)

const demoDuration = 15 * time.Second

func main() {
	scr, err := blessings.New()
	if err != nil {
		log.Fatalf("screen: %v", err)
	}

	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			panic(r)
		}
	}()

	if err := scr.Begin(); err != nil {
		log.Fatalf("screen begin: %v", err)
	}
	defer scr.End()

	scr.SetDefaultColors(fgColor, bgColor)
	scr.SetCursorStyle(terminal.CursorSteadyBar)
	scr.ShowCursor()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(33 * time.Millisecond)
	defer ticker.Stop()
	deadline := time.After(demoDuration)

	frame := 0
	for {
		select {
		case <-sigCh:
			return
		case <-deadline:
			return
		case <-ticker.C:
		}

		scr.HandleResize()
		drawFrame(scr, frame)
		scr.Show()
		frame++
	}
}

func drawFrame(scr *blessings.Screen, frame int) {
	w, h := scr.Size()

	scr.ClearColors()
	scr.Clear(blessings.ClearAll)

	// Header bar
	scr.SetColors(accentColor, headerBg)
	scr.MoveTo(0, 0)
	scr.Clear(blessings.ClearCurrentLine)
	scr.PrintAt(1, 0, "blessings demo")
	scr.SetColors(fgColor, headerBg)
	scr.PrintAt(w-18, 0, fmt.Sprintf("frame %6d", frame))

	// Bordered panel as a nested window
	pw, ph := w/2, h/2
	if pw < 20 {
		pw = min(20, w)
	}
	if ph < 6 {
		ph = min(6, h)
	}
	drawBorder(scr, 2, 2, pw, ph)

	scr.BeginWindow(3, 3, pw-2, ph-2)
	scr.ClearColors()
	scr.Print("Per-line change tracking keeps this frame cheap:\n")
	scr.Print("only touched rows are diffed.\n\n")
	scr.SetForeground(warnColor)
	scr.Printf("tick\t%d\n", frame)
	scr.SetForeground(accentColor)
	scr.Print("wide runes:\t日本語 OK\n")
	scr.EndWindow()

	// Palette sweep along the bottom row
	for x := 0; x < w; x++ {
		c := terminal.RGB{
			R: uint8((x*4 + frame*3) % 256),
			G: uint8((x * 255) / max(w, 1)),
			B: 180,
		}
		scr.SetColors(terminal.Black, c)
		scr.PrintAt(x, h-1, " ")
	}

	scr.ClearColors()
	scr.MoveTo(3+(frame%max(pw-4, 1)), ph+3)
}

// drawBorder outlines a panel with box-drawing characters
func drawBorder(scr *blessings.Screen, x, y, w, h int) {
	scr.SetColors(borderColor, bgColor)

	scr.MoveTo(x, y)
	scr.Print("┌")
	for i := 0; i < w-2; i++ {
		scr.Print("─")
	}
	scr.Print("┐")

	for row := 1; row < h-1; row++ {
		scr.PrintAt(x, y+row, "│")
		scr.PrintAt(x+w-1, y+row, "│")
	}

	scr.MoveTo(x, y+h-1)
	scr.Print("└")
	for i := 0; i < w-2; i++ {
		scr.Print("─")
	}
	scr.Print("┘")
}
