// Package board holds the playfield: the grid of locked cells and the placement rules pieces
// are checked against.
package board

import "github.com/deitrix/tetra/piece"

const (
	// Rows is the height of the visible board.
	Rows = 20
	// Cols is the width of the board.
	Cols = 10
)

// Row is one board row. Every cell is Empty or the kind that locked there.
type Row [Cols]piece.Kind

// Grid is a full copy of the board, row 0 at the top.
type Grid [Rows]Row

// Board is the playfield of locked cells. The zero value is an empty board.
type Board struct {
	cells Grid
}

// New returns an empty board.
func New() *Board {
	return &Board{}
}

// Reset empties every cell.
func (b *Board) Reset() {
	b.cells = Grid{}
}

// Grid returns a copy of the cells.
func (b *Board) Grid() Grid {
	return b.cells
}

// At returns the cell at column x, row y. Coordinates off the board read as Empty.
func (b *Board) At(x, y int) piece.Kind {
	if x < 0 || x >= Cols || y < 0 || y >= Rows {
		return piece.Empty
	}
	return b.cells[y][x]
}

// Set writes a single cell. Coordinates off the board are ignored.
func (b *Board) Set(x, y int, k piece.Kind) {
	if x < 0 || x >= Cols || y < 0 || y >= Rows {
		return
	}
	b.cells[y][x] = k
}

// IsPlacementValid reports whether shape fits with its top-left corner at column x, row y.
// Every occupied cell must be inside the side walls and above the floor, and must not cover a
// locked cell. Cells above the top of the board are allowed so pieces can spawn there.
func (b *Board) IsPlacementValid(shape piece.Shape, x, y int) bool {
	n := shape.Size()
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if !shape.Occupied(r, c) {
				continue
			}
			bx, by := x+c, y+r
			if bx < 0 || bx >= Cols || by >= Rows {
				return false
			}
			if by >= 0 && b.cells[by][bx] != piece.Empty {
				return false
			}
		}
	}
	return true
}

// Fits reports whether p is a valid placement.
func (b *Board) Fits(p piece.Piece) bool {
	return b.IsPlacementValid(p.Shape, p.X, p.Y)
}

// Lock writes kind into every cell covered by shape at x, y. Cells still above the board are
// dropped, and overflow reports whether that happened.
func (b *Board) Lock(shape piece.Shape, x, y int, kind piece.Kind) (overflow bool) {
	for _, rc := range shape.Cells() {
		bx, by := x+rc[1], y+rc[0]
		if by < 0 {
			overflow = true
			continue
		}
		if bx < 0 || bx >= Cols || by >= Rows {
			continue
		}
		b.cells[by][bx] = kind
	}
	return overflow
}

// ShadowY returns the lowest row shape can reach by falling straight down from x, y.
func (b *Board) ShadowY(shape piece.Shape, x, y int) int {
	for b.IsPlacementValid(shape, x, y+1) {
		y++
	}
	return y
}

// ClearCompletedRows removes every full row, shifting the rows above it down and filling the
// top with empty rows. It returns the number of rows removed.
func (b *Board) ClearCompletedRows() int {
	return ClearRows(b.cells[:])
}

// ClearRows compacts rows in place, scanning from the last row to the first. A full row is
// removed, everything above it moves down one row and an empty row is inserted at index 0.
// The same index is examined again after a removal, so separated full rows are all found in
// one pass.
func ClearRows(rows []Row) int {
	cleared := 0
	for r := len(rows) - 1; r >= 0; {
		if !rows[r].Full() {
			r--
			continue
		}
		copy(rows[1:r+1], rows[:r])
		rows[0] = Row{}
		cleared++
	}
	return cleared
}

// Full reports whether every cell of the row is occupied.
func (r Row) Full() bool {
	for _, k := range r {
		if k == piece.Empty {
			return false
		}
	}
	return true
}
