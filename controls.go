package main

import (
	"image"

	"github.com/deitrix/tetra/board"
	"github.com/deitrix/tetra/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// button is an on-screen control.
type button struct {
	Label  string
	Action input.Action
	Rect   image.Rectangle
}

// layoutButtons places the hold, rotate and hard drop buttons in a row of width
// board.Cols*cellSize starting at x, y.
func layoutButtons(cellSize, x, y int) []button {
	defs := []struct {
		label  string
		action input.Action
	}{
		{"HOLD", input.Hold},
		{"ROT L", input.RotateCounterclockwise},
		{"ROT R", input.RotateClockwise},
		{"DROP", input.HardDrop},
	}
	gap := cellSize / 4
	width := (board.Cols*cellSize - gap*(len(defs)-1)) / len(defs)
	top := y + cellSize/2
	buttons := make([]button, len(defs))
	for i, d := range defs {
		left := x + i*(width+gap)
		buttons[i] = button{
			Label:  d.label,
			Action: d.action,
			Rect:   image.Rect(left, top, left+width, top+2*cellSize),
		}
	}
	return buttons
}

// buttonAt returns the button containing the point x, y.
func buttonAt(buttons []button, x, y int) (button, bool) {
	p := image.Pt(x, y)
	for _, b := range buttons {
		if p.In(b.Rect) {
			return b, true
		}
	}
	return button{}, false
}

// keyName returns the binding name of k.
func keyName(k ebiten.Key) string {
	switch k {
	case ebiten.KeySpace:
		return "space"
	case ebiten.KeyArrowLeft:
		return "left"
	case ebiten.KeyArrowRight:
		return "right"
	case ebiten.KeyArrowUp:
		return "up"
	case ebiten.KeyArrowDown:
		return "down"
	case ebiten.KeyEnter:
		return "enter"
	}
	return input.KeyName(k.String())
}

// repeats reports whether holding a key bound to a keeps performing it.
func repeats(a input.Action) bool {
	return a == input.MoveLeft || a == input.MoveRight || a == input.SoftDrop
}

func (g *Game) handleKeys() {
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		g.apply(g.Config.Bindings.Lookup(keyName(k)))
	}

	g.keys = inpututil.AppendPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		a := g.Config.Bindings.Lookup(keyName(k))
		if !repeats(a) {
			continue
		}
		if d := inpututil.KeyPressDuration(k); d > repeatDelay && (d-repeatDelay)%repeatRate == 0 {
			g.apply(a)
		}
	}
}

func (g *Game) handleMouse() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	x, y := ebiten.CursorPosition()
	if b, ok := buttonAt(g.Buttons, x, y); ok {
		g.apply(b.Action)
	}
}

// handleTouches presses buttons on touch down and classifies touches that start on the board
// when they are released.
func (g *Game) handleTouches() {
	g.touchIDs = inpututil.AppendJustPressedTouchIDs(g.touchIDs[:0])
	for _, id := range g.touchIDs {
		x, y := ebiten.TouchPosition(id)
		if b, ok := buttonAt(g.Buttons, x, y); ok {
			g.apply(b.Action)
			continue
		}
		if g.onBoard(x, y) {
			g.Touches.begin(id, float64(x), float64(y))
		}
	}
	for _, id := range g.Touches.ids() {
		if inpututil.IsTouchJustReleased(id) {
			g.apply(g.Touches.end(id))
			continue
		}
		x, y := ebiten.TouchPosition(id)
		g.Touches.move(id, float64(x), float64(y))
	}
}

// justTapped reports a new click or touch anywhere on the screen.
func (g *Game) justTapped() bool {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return true
	}
	g.touchIDs = inpututil.AppendJustPressedTouchIDs(g.touchIDs[:0])
	return len(g.touchIDs) > 0
}

func (g *Game) onBoard(x, y int) bool {
	c := g.Config.CellSize
	r := image.Rect(g.boardX(), 0, g.boardX()+board.Cols*c, board.Rows*c)
	return image.Pt(x, y).In(r)
}

type touch struct {
	startX, startY float64
	lastX, lastY   float64
}

// touchTracker follows touches from press to release. Ebiten reports no position for a
// released touch, so the last position seen while pressed is where it ended.
type touchTracker struct {
	gesture input.Gesture
	touches map[ebiten.TouchID]*touch
}

func newTouchTracker(g input.Gesture) *touchTracker {
	return &touchTracker{
		gesture: g,
		touches: make(map[ebiten.TouchID]*touch),
	}
}

func (t *touchTracker) begin(id ebiten.TouchID, x, y float64) {
	t.touches[id] = &touch{startX: x, startY: y, lastX: x, lastY: y}
}

func (t *touchTracker) move(id ebiten.TouchID, x, y float64) {
	if tt, ok := t.touches[id]; ok {
		tt.lastX, tt.lastY = x, y
	}
}

// end stops tracking id and returns the action its gesture maps to.
func (t *touchTracker) end(id ebiten.TouchID) input.Action {
	tt, ok := t.touches[id]
	if !ok {
		return input.None
	}
	delete(t.touches, id)
	return t.gesture.Classify(tt.lastX-tt.startX, tt.lastY-tt.startY)
}

func (t *touchTracker) ids() []ebiten.TouchID {
	ids := make([]ebiten.TouchID, 0, len(t.touches))
	for id := range t.touches {
		ids = append(ids, id)
	}
	return ids
}

func (t *touchTracker) reset() {
	clear(t.touches)
}
