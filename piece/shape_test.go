package piece

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShape_Bounds(t *testing.T) {
	tests := []struct {
		desc                    string
		shape                   Shape
		row, col, width, height int
	}{
		{desc: "T", shape: base[T], row: 0, col: 0, width: 3, height: 2},
		{desc: "I", shape: base[I], row: 1, col: 0, width: 4, height: 1},
		{desc: "O", shape: base[O], row: 0, col: 0, width: 2, height: 2},
		{desc: "single cell", shape: newShape(T, 3, []int{
			0, 0, 0,
			0, 1, 0,
			0, 0, 0,
		}), row: 1, col: 1, width: 1, height: 1},
		{desc: "vertical I", shape: base[I].Rotate(true), row: 0, col: 2, width: 1, height: 4},
		{desc: "empty", shape: Shape{size: 3}},
	}
	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			row, col, width, height := test.shape.Bounds()
			assert.Equal(t, test.row, row, "row")
			assert.Equal(t, test.col, col, "col")
			assert.Equal(t, test.width, width, "width")
			assert.Equal(t, test.height, height, "height")
		})
	}
}

func TestShape_RotateClockwise(t *testing.T) {
	got := base[T].Rotate(true)
	want := newShape(T, 3, []int{
		0, 1, 0,
		0, 1, 1,
		0, 1, 0,
	})
	assert.Equal(t, want, got)
}

func TestShape_RotateCounterclockwise(t *testing.T) {
	got := base[J].Rotate(false)
	want := newShape(J, 3, []int{
		0, 1, 0,
		0, 1, 0,
		1, 1, 0,
	})
	assert.Equal(t, want, got)
}

func TestShape_RotateFourTimesIsIdentity(t *testing.T) {
	for _, k := range Kinds {
		t.Run(k.String(), func(t *testing.T) {
			cw, ccw := base[k], base[k]
			for i := 0; i < 4; i++ {
				cw = cw.Rotate(true)
				ccw = ccw.Rotate(false)
			}
			assert.Equal(t, base[k], cw)
			assert.Equal(t, base[k], ccw)
		})
	}
}

func TestShape_RotateOppositeDirectionsCancel(t *testing.T) {
	for _, k := range Kinds {
		assert.Equal(t, base[k], base[k].Rotate(true).Rotate(false), k.String())
	}
}

func TestShape_OIsRotationInvariant(t *testing.T) {
	for _, s := range Rotations(O) {
		assert.Equal(t, base[O], s)
	}
	assert.Equal(t, base[O], base[O].Rotate(false))
}

func TestShape_RotateDoesNotMutateCatalog(t *testing.T) {
	before := Base(S)
	_ = before.Rotate(true)
	assert.Equal(t, before, Base(S))
}

func TestCatalog(t *testing.T) {
	sizes := map[Kind]int{I: 4, J: 3, L: 3, O: 2, S: 3, T: 3, Z: 3}
	for _, k := range Kinds {
		t.Run(k.String(), func(t *testing.T) {
			s := Base(k)
			assert.Equal(t, sizes[k], s.Size())
			cells := s.Cells()
			require.Len(t, cells, 4)
			for _, rc := range cells {
				assert.Equal(t, k, s.At(rc[0], rc[1]))
			}
			rots := Rotations(k)
			assert.Equal(t, s, rots[0])
			for i := 1; i < 4; i++ {
				assert.Equal(t, rots[i-1].Rotate(true), rots[i])
				assert.Len(t, rots[i].Cells(), 4)
			}
		})
	}
}

func TestBase_InvalidKindPanics(t *testing.T) {
	assert.Panics(t, func() { Base(Empty) })
	assert.Panics(t, func() { Rotations(Kind(8)) })
}

func TestShape_AtOutOfRange(t *testing.T) {
	s := Base(O)
	assert.Equal(t, Empty, s.At(-1, 0))
	assert.Equal(t, Empty, s.At(0, 2))
	assert.False(t, s.Occupied(2, 2))
}
