package piece

// MaxSize is the side length of the largest shape matrix (I).
const MaxSize = 4

// Shape is an N×N matrix (N is 2, 3 or 4) describing the occupied cells of a piece in one
// rotation. Occupied cells hold the piece kind, empty cells hold Empty. Shapes are values:
// rotating returns a new Shape and never touches the catalog.
type Shape struct {
	size  int
	cells [MaxSize][MaxSize]Kind
}

// newShape builds a shape of the given size from a row-major 0/1 mask.
func newShape(k Kind, size int, mask []int) Shape {
	if len(mask) != size*size {
		panic("piece: mask does not match shape size")
	}
	s := Shape{size: size}
	for i, v := range mask {
		if v != 0 {
			s.cells[i/size][i%size] = k
		}
	}
	return s
}

// Size returns N, the side length of the matrix.
func (s Shape) Size() int {
	return s.size
}

// At returns the value at row r, column c, or Empty when out of range.
func (s Shape) At(r, c int) Kind {
	if r < 0 || c < 0 || r >= s.size || c >= s.size {
		return Empty
	}
	return s.cells[r][c]
}

// Occupied reports whether the cell at row r, column c is filled.
func (s Shape) Occupied(r, c int) bool {
	return s.At(r, c) != Empty
}

// Rotate returns the shape turned a quarter turn. Clockwise maps old[r][c] to new[c][N-1-r],
// counterclockwise maps it to new[N-1-c][r].
func (s Shape) Rotate(clockwise bool) Shape {
	n := s.size
	out := Shape{size: n}
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if clockwise {
				out.cells[c][n-1-r] = s.cells[r][c]
			} else {
				out.cells[n-1-c][r] = s.cells[r][c]
			}
		}
	}
	return out
}

// Cells returns the (row, column) offsets of every occupied cell, in row-major order.
func (s Shape) Cells() [][2]int {
	cells := make([][2]int, 0, 4)
	for r := 0; r < s.size; r++ {
		for c := 0; c < s.size; c++ {
			if s.cells[r][c] != Empty {
				cells = append(cells, [2]int{r, c})
			}
		}
	}
	return cells
}

// Bounds returns the smallest rectangle containing every occupied cell, as the first
// occupied row and column plus the trimmed width and height. Previews use it to center a
// piece without its blank border.
func (s Shape) Bounds() (row, col, width, height int) {
	minR, minC, maxR, maxC := MaxSize, MaxSize, -1, -1
	for r := 0; r < s.size; r++ {
		for c := 0; c < s.size; c++ {
			if s.cells[r][c] == Empty {
				continue
			}
			minR = min(minR, r)
			minC = min(minC, c)
			maxR = max(maxR, r)
			maxC = max(maxC, c)
		}
	}
	if maxR < 0 {
		return 0, 0, 0, 0
	}
	return minR, minC, maxC - minC + 1, maxR - minR + 1
}
