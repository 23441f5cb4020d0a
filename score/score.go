// Package score turns cleared lines and drops into points, levels and gravity speed.
package score

import "time"

const (
	// SoftDropPoints is awarded per row of soft drop, at any level.
	SoftDropPoints = 1
	// HardDropPoints is awarded per row of hard drop, at any level.
	HardDropPoints = 2

	// LinesPerLevel is the number of cleared lines between level increases.
	LinesPerLevel = 10

	baseInterval = 1000 * time.Millisecond
	intervalStep = 70 * time.Millisecond
	minInterval  = 100 * time.Millisecond
	tspinPerLine = 800
)

var linePoints = [...]int{0, 100, 300, 500, 800}

// LinePoints returns the points for clearing lines rows in one lock at the given level. A
// non-zero tspin status scores 800 per line instead of the line table.
func LinePoints(lines, tspin, level int) int {
	if tspin != 0 {
		return tspinPerLine * lines * level
	}
	lines = min(max(lines, 0), len(linePoints)-1)
	return linePoints[lines] * level
}

// LevelFor returns the level reached after clearing lines rows in total.
func LevelFor(lines int) int {
	return lines/LinesPerLevel + 1
}

// DropInterval returns the gravity interval at level. It shortens by 70ms per level and never
// drops below 100ms.
func DropInterval(level int) time.Duration {
	return max(minInterval, baseInterval-time.Duration(level-1)*intervalStep)
}

// Tracker accumulates score, cleared lines, level and the matching gravity interval. Every
// field only ever grows, except Interval which only shrinks.
type Tracker struct {
	// Score is the total number of points.
	Score int
	// Lines is the total number of cleared rows.
	Lines int
	// Level starts at 1 and increases every LinesPerLevel lines.
	Level int
	// Interval is the time between gravity steps at the current level.
	Interval time.Duration
}

// NewTracker returns a tracker at level 1.
func NewTracker() Tracker {
	var t Tracker
	t.Reset()
	return t
}

// Reset returns the tracker to a new game.
func (t *Tracker) Reset() {
	*t = Tracker{
		Level:    1,
		Interval: DropInterval(1),
	}
}

// AddLines records a lock that cleared lines rows and returns the points awarded, scored at
// the level the lock happened on. levelUp reports whether the level increased.
func (t *Tracker) AddLines(lines, tspin int) (points int, levelUp bool) {
	points = LinePoints(lines, tspin, t.Level)
	t.Score += points
	t.Lines += lines
	if level := LevelFor(t.Lines); level > t.Level {
		t.Level = level
		t.Interval = DropInterval(level)
		levelUp = true
	}
	return points, levelUp
}

// AddSoftDrop records rows of soft drop.
func (t *Tracker) AddSoftDrop(rows int) int {
	points := rows * SoftDropPoints
	t.Score += points
	return points
}

// AddHardDrop records rows of hard drop.
func (t *Tracker) AddHardDrop(rows int) int {
	points := rows * HardDropPoints
	t.Score += points
	return points
}
