package game

import (
	"time"

	"github.com/deitrix/tetra/board"
	"github.com/deitrix/tetra/piece"
)

// State returns the lifecycle state.
func (e *Engine) State() State {
	return e.state
}

// IsGameOver reports whether the game has ended.
func (e *Engine) IsGameOver() bool {
	return e.state == GameOver
}

// Board returns a copy of the locked cells.
func (e *Engine) Board() board.Grid {
	return e.board.Grid()
}

// Active returns the falling piece.
func (e *Engine) Active() piece.Piece {
	return e.active
}

// Held returns the kind in the hold slot and whether the slot is occupied.
func (e *Engine) Held() (piece.Kind, bool) {
	return e.held, e.held != piece.Empty
}

// CanHold reports whether Hold would do anything for the current piece.
func (e *Engine) CanHold() bool {
	return e.state == Running && e.canHold
}

// Next returns the upcoming kinds, front first.
func (e *Engine) Next() []piece.Kind {
	return e.queue.Peek()
}

// Score returns the total points.
func (e *Engine) Score() int {
	return e.score.Score
}

// Level returns the current level, starting at 1.
func (e *Engine) Level() int {
	return e.score.Level
}

// Lines returns the total number of cleared rows.
func (e *Engine) Lines() int {
	return e.score.Lines
}

// DropInterval returns the time between gravity steps at the current level.
func (e *Engine) DropInterval() time.Duration {
	return e.score.Interval
}

// GhostY returns the row the falling piece would land on if hard dropped.
func (e *Engine) GhostY() int {
	return e.board.ShadowY(e.active.Shape, e.active.X, e.active.Y)
}

// Snapshot is everything a frontend draws in one frame.
type Snapshot struct {
	State    State
	Board    board.Grid
	Active   piece.Piece
	GhostY   int
	Held     piece.Kind
	CanHold  bool
	Next     []piece.Kind
	Score    int
	Level    int
	Lines    int
	Interval time.Duration
}

// Snapshot copies the render state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		State:    e.state,
		Board:    e.board.Grid(),
		Active:   e.active,
		GhostY:   e.GhostY(),
		Held:     e.held,
		CanHold:  e.CanHold(),
		Next:     e.Next(),
		Score:    e.score.Score,
		Level:    e.score.Level,
		Lines:    e.score.Lines,
		Interval: e.score.Interval,
	}
}
