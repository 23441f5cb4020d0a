package main

import (
	"fmt"
	"image/color"
	"time"

	"github.com/deitrix/tetra/board"
	"github.com/deitrix/tetra/cell"
	"github.com/deitrix/tetra/game"
	"github.com/deitrix/tetra/input"
	"github.com/deitrix/tetra/piece"
	"github.com/gdamore/tcell/v2"
)

const (
	// frameInterval is the redraw and gravity cadence, about 60 frames per second
	frameInterval = 16 * time.Millisecond
	// cellWidth is the number of terminal columns per board cell
	cellWidth = 2
	// panelWidth is the width in columns of the side panels
	panelWidth = 12
	// previewRows is the number of terminal rows per piece in the next list
	previewRows = 3
)

// Terminal is the tcell frontend. All engine calls happen on the goroutine running run.
type Terminal struct {
	screen   tcell.Screen
	engine   *game.Engine
	bindings input.Bindings
	now      func() time.Duration
}

func newTerminal(screen tcell.Screen, engine *game.Engine, bindings input.Bindings) *Terminal {
	epoch := time.Now()
	return &Terminal{
		screen:   screen,
		engine:   engine,
		bindings: bindings,
		now:      func() time.Duration { return time.Since(epoch) },
	}
}

// run starts a game and loops until the player quits.
func (t *Terminal) run() {
	t.engine.Start(t.now())

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	t.draw()
	for {
		select {
		case ev, ok := <-events:
			if !ok || !t.handleEvent(ev) {
				return
			}
			t.draw()
		case <-ticker.C:
			t.engine.Tick(t.now())
			t.draw()
		}
	}
}

// handleEvent applies one terminal event and reports whether to keep running.
func (t *Terminal) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if isQuit(ev) {
			return false
		}
		name := keyName(ev)
		switch {
		case name == "r":
			t.engine.Start(t.now())
		case name == "enter" && t.engine.IsGameOver():
			t.engine.Start(t.now())
		default:
			input.Apply(t.engine, t.bindings.Lookup(name))
		}
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return true
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'c' && ev.Modifiers()&tcell.ModCtrl != 0
	}
	return false
}

// keyName returns the binding name of a key event.
func keyName(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyRune:
		return input.KeyName(string(ev.Rune()))
	case tcell.KeyLeft:
		return "left"
	case tcell.KeyRight:
		return "right"
	case tcell.KeyUp:
		return "up"
	case tcell.KeyDown:
		return "down"
	case tcell.KeyEnter:
		return "enter"
	}
	return ""
}

func (t *Terminal) draw() {
	s := t.engine.Snapshot()
	t.screen.Clear()
	t.drawBoard(s)
	t.drawPanels(s)
	if s.State == game.GameOver {
		x := panelWidth + 2
		t.drawString(x, board.Rows/2-1, " GAME OVER ", tcell.StyleDefault.Reverse(true))
		t.drawString(x, board.Rows/2, fmt.Sprintf(" Score: %d ", s.Score), tcell.StyleDefault)
		t.drawString(x, board.Rows/2+1, " r/enter: again ", tcell.StyleDefault.Dim(true))
	}
	t.screen.Show()
}

func (t *Terminal) drawBoard(s game.Snapshot) {
	wall := tcell.StyleDefault.Foreground(tcellColor(cell.Wall.NRGBA()))
	left := panelWidth
	right := left + 1 + board.Cols*cellWidth
	for y := 0; y < board.Rows; y++ {
		t.screen.SetContent(left, y, '│', nil, wall)
		t.screen.SetContent(right, y, '│', nil, wall)
		for x, k := range s.Board[y] {
			if k != piece.Empty {
				t.drawCell(x, y, '█', cell.ForKind(k))
			}
		}
	}
	for x := left; x <= right; x++ {
		t.screen.SetContent(x, board.Rows, '─', nil, wall)
	}

	if s.State == game.Idle {
		return
	}
	if s.State == game.Running {
		for _, rc := range s.Active.Shape.Cells() {
			t.drawCell(s.Active.X+rc[1], s.GhostY+rc[0], '░', cell.Ghost)
		}
	}
	for _, rc := range s.Active.Shape.Cells() {
		t.drawCell(s.Active.X+rc[1], s.Active.Y+rc[0], '█', cell.ForKind(s.Active.Kind))
	}
}

// drawCell fills board cell x, y. Cells above the board are skipped.
func (t *Terminal) drawCell(x, y int, r rune, tint cell.Tint) {
	if y < 0 || y >= board.Rows || x < 0 || x >= board.Cols {
		return
	}
	style := tcell.StyleDefault.Foreground(tcellColor(tint.NRGBA()))
	sx := panelWidth + 1 + x*cellWidth
	for i := 0; i < cellWidth; i++ {
		t.screen.SetContent(sx+i, y, r, nil, style)
	}
}

func (t *Terminal) drawPanels(s game.Snapshot) {
	label := tcell.StyleDefault.Bold(true)
	t.drawString(1, 0, "HOLD", label)
	if s.Held != piece.Empty {
		style := tcell.StyleDefault
		if !s.CanHold {
			style = style.Dim(true)
		}
		t.drawPreview(1, 1, s.Held, style)
	}
	y := 5
	for _, line := range [][2]string{
		{"SCORE", fmt.Sprint(s.Score)},
		{"LEVEL", fmt.Sprint(s.Level)},
		{"LINES", fmt.Sprint(s.Lines)},
	} {
		t.drawString(1, y, line[0], label)
		t.drawString(1, y+1, line[1], tcell.StyleDefault)
		y += 3
	}

	x := panelWidth + 2 + board.Cols*cellWidth + 1
	t.drawString(x, 0, "NEXT", label)
	for i, k := range s.Next {
		t.drawPreview(x, 1+i*previewRows, k, tcell.StyleDefault)
	}
}

// drawPreview draws kind k trimmed, with its top-left corner at column x, row y.
func (t *Terminal) drawPreview(x, y int, k piece.Kind, base tcell.Style) {
	shape := piece.Base(k)
	row, col, _, _ := shape.Bounds()
	style := base.Foreground(tcellColor(cell.ForKind(k).NRGBA()))
	for _, rc := range shape.Cells() {
		sx := x + (rc[1]-col)*cellWidth
		for i := 0; i < cellWidth; i++ {
			t.screen.SetContent(sx+i, y+rc[0]-row, '█', nil, style)
		}
	}
}

func (t *Terminal) drawString(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		t.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func tcellColor(c color.NRGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
