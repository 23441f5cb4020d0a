package input

import "math"

// Gesture holds the thresholds, in pixels, used to classify a touch from its start and end
// points.
type Gesture struct {
	// Swipe is the minimum distance along the dominant axis for a swipe.
	Swipe float64
	// Tap is the maximum distance along either axis for a tap.
	Tap float64
}

// DefaultGesture returns a 50px swipe and 10px tap threshold.
func DefaultGesture() Gesture {
	return Gesture{Swipe: 50, Tap: 10}
}

// Classify turns a touch displacement into an action. A mostly vertical swipe down soft
// drops, a horizontal swipe moves, a tap rotates clockwise. Upward swipes and movements
// between the tap and swipe thresholds do nothing.
func (g Gesture) Classify(dx, dy float64) Action {
	adx, ady := math.Abs(dx), math.Abs(dy)
	switch {
	case ady > adx && ady > g.Swipe:
		if dy > 0 {
			return SoftDrop
		}
		return None
	case adx > g.Swipe:
		if dx < 0 {
			return MoveLeft
		}
		return MoveRight
	case adx < g.Tap && ady < g.Tap:
		return RotateClockwise
	}
	return None
}
