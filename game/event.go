package game

import (
	"time"

	"github.com/deitrix/tetra/piece"
)

// EventType identifies what happened in an Event.
type EventType int

const (
	// PieceLocked fires after every lock, whether or not lines were cleared.
	PieceLocked EventType = iota
	// LinesCleared fires after a lock that cleared at least one row.
	LinesCleared
	// LevelUp fires when cleared lines raise the level.
	LevelUp
	// Held fires after a successful hold.
	Held
	// Over fires once, when a spawned piece does not fit.
	Over
)

func (t EventType) String() string {
	switch t {
	case PieceLocked:
		return "PieceLocked"
	case LinesCleared:
		return "LinesCleared"
	case LevelUp:
		return "LevelUp"
	case Held:
		return "Held"
	case Over:
		return "GameOver"
	}
	return "Unknown"
}

// Event describes a change in the engine. Only the fields relevant to Type are set.
type Event struct {
	Type EventType
	// Kind is the piece that locked or was held.
	Kind piece.Kind
	// Lines is the number of rows cleared by this lock.
	Lines int
	// Points is the score awarded for the cleared rows.
	Points int
	// Overflow reports that part of the locked piece was above the board.
	Overflow bool
	// TotalLines, Level, Score and Interval are the state after the event.
	TotalLines int
	Level      int
	Score      int
	Interval   time.Duration
}

// Listener receives engine events synchronously, on the goroutine that called the engine.
type Listener interface {
	HandleEvent(Event)
}

// ListenerFunc adapts a function to a Listener.
type ListenerFunc func(Event)

func (f ListenerFunc) HandleEvent(e Event) {
	f(e)
}
