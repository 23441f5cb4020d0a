// Package cell maps board cells to colours.
package cell

import (
	"image/color"

	"github.com/deitrix/tetra/piece"
)

// Tint is the colour a cell is drawn with.
type Tint uint8

const (
	Black Tint = iota
	Cyan
	Blue
	Orange
	Yellow
	Green
	Purple
	Red
	Ghost
	Border
	Wall
)

var palette = [...]color.NRGBA{
	Black:  {0x00, 0x00, 0x00, 0xff},
	Cyan:   {0x00, 0xff, 0xff, 0xff},
	Blue:   {0x00, 0x00, 0xff, 0xff},
	Orange: {0xff, 0xa5, 0x00, 0xff},
	Yellow: {0xff, 0xff, 0x00, 0xff},
	Green:  {0x00, 0x80, 0x00, 0xff},
	Purple: {0x80, 0x00, 0x80, 0xff},
	Red:    {0xff, 0x00, 0x00, 0xff},
	Ghost:  {0xaa, 0xaa, 0xaa, 0xff},
	Border: {0x33, 0x33, 0x33, 0xff},
	Wall:   {0x80, 0x80, 0x80, 0xff},
}

// NRGBA returns the colour of the tint.
func (t Tint) NRGBA() color.NRGBA {
	if int(t) >= len(palette) {
		return palette[Black]
	}
	return palette[t]
}

// ForKind returns the tint a locked or falling piece of kind k is drawn with. Empty cells are
// Black.
func ForKind(k piece.Kind) Tint {
	switch k {
	case piece.I:
		return Cyan
	case piece.J:
		return Blue
	case piece.L:
		return Orange
	case piece.O:
		return Yellow
	case piece.S:
		return Green
	case piece.T:
		return Purple
	case piece.Z:
		return Red
	}
	return Black
}
