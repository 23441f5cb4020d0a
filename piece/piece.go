package piece

var base = [KindCount + 1]Shape{
	I: newShape(I, 4, []int{
		0, 0, 0, 0,
		1, 1, 1, 1,
		0, 0, 0, 0,
		0, 0, 0, 0,
	}),
	J: newShape(J, 3, []int{
		1, 0, 0,
		1, 1, 1,
		0, 0, 0,
	}),
	L: newShape(L, 3, []int{
		0, 0, 1,
		1, 1, 1,
		0, 0, 0,
	}),
	O: newShape(O, 2, []int{
		1, 1,
		1, 1,
	}),
	S: newShape(S, 3, []int{
		0, 1, 1,
		1, 1, 0,
		0, 0, 0,
	}),
	T: newShape(T, 3, []int{
		0, 1, 0,
		1, 1, 1,
		0, 0, 0,
	}),
	Z: newShape(Z, 3, []int{
		1, 1, 0,
		0, 1, 1,
		0, 0, 0,
	}),
}

// rotations holds the four orientations of every kind, index 0 being the spawn orientation
// and each following index one clockwise turn further.
var rotations [KindCount + 1][4]Shape

func init() {
	for _, k := range Kinds {
		s := base[k]
		for i := range rotations[k] {
			rotations[k][i] = s
			s = s.Rotate(true)
		}
	}
}

// Base returns the spawn orientation of kind k. It panics if k is not a valid kind.
func Base(k Kind) Shape {
	mustValid(k)
	return base[k]
}

// Rotations returns the four precomputed orientations of kind k.
func Rotations(k Kind) [4]Shape {
	mustValid(k)
	return rotations[k]
}

func mustValid(k Kind) {
	if !k.Valid() {
		panic("piece: invalid kind " + k.String())
	}
}

// Piece is the falling piece: its kind, current orientation and the board offset of the
// top-left corner of its shape matrix. Y is negative while the piece is still above the
// visible board.
type Piece struct {
	Kind     Kind
	Shape    Shape
	Rotation int
	X, Y     int
}

// New returns kind k in its spawn orientation at the origin.
func New(k Kind) Piece {
	return Piece{Kind: k, Shape: Base(k)}
}

// IsT reports whether the piece is a T, the only kind the T-spin hook inspects.
func (p Piece) IsT() bool {
	return p.Kind == T
}

// Moved returns a copy of the piece translated by dx, dy.
func (p Piece) Moved(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}

// Rotated returns a copy of the piece turned one quarter in the given direction. The position
// is unchanged; whether the result fits is for the caller to decide.
func (p Piece) Rotated(clockwise bool) Piece {
	step := 3
	if clockwise {
		step = 1
	}
	p.Rotation = (p.Rotation + step) % 4
	p.Shape = rotations[p.Kind][p.Rotation]
	return p
}

// ResetRotation returns a copy of the piece in its spawn orientation.
func (p Piece) ResetRotation() Piece {
	p.Rotation = 0
	p.Shape = base[p.Kind]
	return p
}
