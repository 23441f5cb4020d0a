// Package game is the rules engine: it owns the board, the falling piece, the queue, the hold
// slot and the score, and exposes the actions a frontend maps its input to.
//
// An Engine is not safe for concurrent use. Frontends call it from a single goroutine: once per
// frame through Tick, and from their input handlers through the action methods.
package game

import (
	"math/rand/v2"
	"time"

	"github.com/deitrix/tetra/board"
	"github.com/deitrix/tetra/piece"
	"github.com/deitrix/tetra/queue"
	"github.com/deitrix/tetra/score"
)

// State is the lifecycle state of an Engine.
type State int

const (
	Idle State = iota
	Running
	GameOver
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Running:
		return "Running"
	case GameOver:
		return "GameOver"
	}
	return "Unknown"
}

// TSpinDetector inspects a T piece after it has been written to the board and returns a
// non-zero status if the lock counts as a T-spin.
type TSpinDetector func(b *board.Board, p piece.Piece) int

// NoTSpin never reports a T-spin.
func NoTSpin(*board.Board, piece.Piece) int {
	return 0
}

// Option configures an Engine.
type Option func(*Engine)

// WithSource draws upcoming pieces from src.
func WithSource(src rand.Source) Option {
	return func(e *Engine) {
		e.queue = queue.New(src)
	}
}

// WithQueue uses q for upcoming pieces.
func WithQueue(q *queue.Queue) Option {
	return func(e *Engine) {
		e.queue = q
	}
}

// WithListener sends every event to l.
func WithListener(l Listener) Option {
	return func(e *Engine) {
		e.listener = l
	}
}

// WithTSpinDetector replaces the T-spin detector.
func WithTSpinDetector(d TSpinDetector) Option {
	return func(e *Engine) {
		e.tspin = d
	}
}

// Engine runs one game.
type Engine struct {
	state State
	board *board.Board
	queue *queue.Queue
	// active is the piece being controlled by the player.
	active piece.Piece
	// held is the kind in the hold slot, Empty when the slot is empty.
	held piece.Kind
	// canHold prevents holding more than once per piece. It is reset when a piece locks.
	canHold bool
	score   score.Tracker
	// lastDrop is the timestamp of the last gravity step.
	lastDrop time.Duration

	listener Listener
	tspin    TSpinDetector
}

// New returns an idle engine. Call Start to begin playing.
func New(opts ...Option) *Engine {
	e := &Engine{
		board: board.New(),
		score: score.NewTracker(),
		tspin: NoTSpin,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.queue == nil {
		e.queue = queue.New(nil)
	}
	return e
}

// Start resets the engine to a new game, spawns the first piece and starts gravity counting
// from now. It may be called in any state.
func (e *Engine) Start(now time.Duration) {
	e.board.Reset()
	e.queue.Reset()
	e.score.Reset()
	e.held = piece.Empty
	e.canHold = true
	e.lastDrop = now
	e.state = Running
	e.spawnPiece()
}

// Tick advances gravity. now is a monotonic timestamp on the same clock as the one passed to
// Start. When more than the current drop interval has passed since the last step, the piece
// moves down one row, or locks if it cannot.
func (e *Engine) Tick(now time.Duration) {
	if e.state != Running {
		return
	}
	if now-e.lastDrop <= e.score.Interval {
		return
	}
	if next := e.active.Moved(0, 1); e.board.Fits(next) {
		e.active = next
	} else {
		e.lockActivePiece()
	}
	e.lastDrop = now
}

// MoveLeft moves the piece one column left if it fits there.
func (e *Engine) MoveLeft() {
	e.shift(-1)
}

// MoveRight moves the piece one column right if it fits there.
func (e *Engine) MoveRight() {
	e.shift(1)
}

func (e *Engine) shift(dx int) {
	if e.state != Running {
		return
	}
	if next := e.active.Moved(dx, 0); e.board.Fits(next) {
		e.active = next
	}
}

// RotateClockwise turns the piece clockwise if the result fits in place.
func (e *Engine) RotateClockwise() {
	e.rotate(true)
}

// RotateCounterclockwise turns the piece counterclockwise if the result fits in place.
func (e *Engine) RotateCounterclockwise() {
	e.rotate(false)
}

// rotate has no wall kicks: a rotation that collides is discarded.
func (e *Engine) rotate(clockwise bool) {
	if e.state != Running {
		return
	}
	if next := e.active.Rotated(clockwise); e.board.Fits(next) {
		e.active = next
	}
}

// SoftDrop moves the piece down one row for a point, or locks it if it is resting.
func (e *Engine) SoftDrop() {
	if e.state != Running {
		return
	}
	if next := e.active.Moved(0, 1); e.board.Fits(next) {
		e.active = next
		e.score.AddSoftDrop(1)
		return
	}
	e.lockActivePiece()
}

// HardDrop drops the piece as far as it goes, scoring per row, and locks it.
func (e *Engine) HardDrop() {
	if e.state != Running {
		return
	}
	rows := 0
	for e.board.Fits(e.active.Moved(0, 1)) {
		e.active.Y++
		rows++
	}
	e.score.AddHardDrop(rows)
	e.lockActivePiece()
}

// Hold puts the piece in the hold slot. If the slot was empty the next piece comes from the
// queue, otherwise the held kind comes back in its spawn position. Holding is then disabled
// until the next lock.
func (e *Engine) Hold() {
	if e.state != Running || !e.canHold {
		return
	}
	current := e.active.Kind
	if e.held == piece.Empty {
		e.held = current
		e.spawnPiece()
	} else {
		// The returning piece skips the spawn collision check.
		e.active = spawnPosition(e.held)
		e.held = current
	}
	e.canHold = false
	if e.state == Running {
		e.emit(Event{Type: Held, Kind: current})
	}
}

// spawnPiece takes the next kind from the queue. A piece that does not fit where it spawns
// ends the game.
func (e *Engine) spawnPiece() {
	e.active = spawnPosition(e.queue.Dequeue())
	e.queue.Refill()
	if !e.board.Fits(e.active) {
		e.gameOver()
	}
}

// spawnPosition centers k horizontally with its bottom matrix row on board row 0.
func spawnPosition(k piece.Kind) piece.Piece {
	p := piece.New(k)
	n := p.Shape.Size()
	p.X = (board.Cols - n) / 2
	p.Y = -n + 1
	return p
}

// lockActivePiece writes the piece into the board, clears rows, scores and spawns the next
// piece.
func (e *Engine) lockActivePiece() {
	p := e.active
	overflow := e.board.Lock(p.Shape, p.X, p.Y, p.Kind)

	tspin := 0
	if p.IsT() {
		tspin = e.tspin(e.board, p)
	}

	lines := e.board.ClearCompletedRows()
	points, levelUp := e.score.AddLines(lines, tspin)

	e.emit(Event{
		Type:       PieceLocked,
		Kind:       p.Kind,
		Lines:      lines,
		Points:     points,
		Overflow:   overflow,
		TotalLines: e.score.Lines,
		Level:      e.score.Level,
		Score:      e.score.Score,
	})
	if lines > 0 {
		e.emit(Event{
			Type:       LinesCleared,
			Kind:       p.Kind,
			Lines:      lines,
			Points:     points,
			TotalLines: e.score.Lines,
			Level:      e.score.Level,
			Score:      e.score.Score,
		})
	}
	if levelUp {
		e.emit(Event{
			Type:       LevelUp,
			TotalLines: e.score.Lines,
			Level:      e.score.Level,
			Interval:   e.score.Interval,
		})
	}

	e.canHold = true
	e.spawnPiece()
}

func (e *Engine) gameOver() {
	e.state = GameOver
	e.emit(Event{
		Type:       Over,
		TotalLines: e.score.Lines,
		Level:      e.score.Level,
		Score:      e.score.Score,
	})
}

func (e *Engine) emit(ev Event) {
	if e.listener != nil {
		e.listener.HandleEvent(ev)
	}
}
