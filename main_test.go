package main

import (
	"testing"
	"time"

	"github.com/deitrix/tetra/board"
	"github.com/deitrix/tetra/config"
	"github.com/deitrix/tetra/game"
	"github.com/deitrix/tetra/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutButtons(t *testing.T) {
	buttons := layoutButtons(30, 180, 600)
	require.Len(t, buttons, 4)

	want := []input.Action{input.Hold, input.RotateCounterclockwise, input.RotateClockwise, input.HardDrop}
	for i, b := range buttons {
		assert.Equal(t, want[i], b.Action)
		assert.GreaterOrEqual(t, b.Rect.Min.X, 180)
		assert.LessOrEqual(t, b.Rect.Max.X, 180+board.Cols*30)
		assert.Equal(t, 615, b.Rect.Min.Y)
		if i > 0 {
			assert.Greater(t, b.Rect.Min.X, buttons[i-1].Rect.Max.X, "buttons do not overlap")
		}
	}
}

func TestButtonAt(t *testing.T) {
	buttons := layoutButtons(30, 180, 600)
	tests := []struct {
		desc string
		x, y int
		want input.Action
		ok   bool
	}{
		{"hold", 185, 620, input.Hold, true},
		{"drop", 475, 670, input.HardDrop, true},
		{"above the row", 185, 610, input.None, false},
		{"left of the row", 100, 620, input.None, false},
	}
	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			b, ok := buttonAt(buttons, test.x, test.y)
			assert.Equal(t, test.ok, ok)
			assert.Equal(t, test.want, b.Action)
		})
	}
}

func TestKeyName(t *testing.T) {
	bindings := input.DefaultBindings()
	tests := map[ebiten.Key]input.Action{
		ebiten.KeyA:          input.MoveLeft,
		ebiten.KeyD:          input.MoveRight,
		ebiten.KeyS:          input.SoftDrop,
		ebiten.KeySpace:      input.HardDrop,
		ebiten.KeyQ:          input.RotateCounterclockwise,
		ebiten.KeyW:          input.RotateClockwise,
		ebiten.KeyX:          input.Hold,
		ebiten.KeyArrowLeft:  input.MoveLeft,
		ebiten.KeyArrowRight: input.MoveRight,
		ebiten.KeyArrowDown:  input.SoftDrop,
		ebiten.KeyArrowUp:    input.RotateClockwise,
		ebiten.KeyP:          input.None,
	}
	for k, want := range tests {
		assert.Equal(t, want, bindings.Lookup(keyName(k)), "key %v", k)
	}
}

func TestTouchTracker(t *testing.T) {
	tr := newTouchTracker(input.DefaultGesture())

	tr.begin(1, 100, 100)
	tr.move(1, 104, 103)
	assert.Equal(t, input.RotateClockwise, tr.end(1))

	tr.begin(2, 100, 100)
	tr.move(2, 120, 160)
	tr.move(2, 110, 190)
	assert.Equal(t, input.SoftDrop, tr.end(2))

	tr.begin(3, 200, 100)
	tr.move(3, 120, 110)
	assert.Equal(t, input.MoveLeft, tr.end(3))

	assert.Equal(t, input.None, tr.end(3), "already ended")
	assert.Empty(t, tr.ids())

	tr.begin(4, 0, 0)
	tr.begin(5, 0, 0)
	assert.Len(t, tr.ids(), 2)
	tr.reset()
	assert.Empty(t, tr.ids())
}

func newTestGame(t *testing.T) (*Game, *time.Duration) {
	t.Helper()
	cfg := config.Default()
	cfg.Seed = 1
	g := NewGame(cfg)
	var now time.Duration
	g.now = func() time.Duration { return now }
	g.Reset()
	return g, &now
}

func TestNewGame(t *testing.T) {
	g, _ := newTestGame(t)
	assert.Equal(t, game.Running, g.Engine.State())
	assert.Equal(t, 22*30, g.ScreenWidth)
	assert.Equal(t, 23*30, g.ScreenHeight)
	w, h := g.Layout(0, 0)
	assert.Equal(t, g.ScreenWidth, w)
	assert.Equal(t, g.ScreenHeight, h)
	assert.Len(t, g.Buttons, 4)
}

func TestGame_OnBoard(t *testing.T) {
	g, _ := newTestGame(t)
	assert.True(t, g.onBoard(180, 0))
	assert.True(t, g.onBoard(479, 599))
	assert.False(t, g.onBoard(179, 10))
	assert.False(t, g.onBoard(200, 600), "button row is not the board")
}

func TestGame_ApplyAndReset(t *testing.T) {
	g, now := newTestGame(t)
	for i := 0; i < 200 && !g.Engine.IsGameOver(); i++ {
		g.apply(input.HardDrop)
	}
	assert.True(t, g.Engine.IsGameOver())

	g.Touches.begin(1, 0, 0)
	*now = time.Minute
	g.Reset()
	assert.Equal(t, game.Running, g.Engine.State())
	assert.Equal(t, 0, g.Engine.Score())
	assert.Empty(t, g.Touches.ids())
}
