package cell

import (
	"image/color"
	"testing"

	"github.com/deitrix/tetra/piece"
	"github.com/stretchr/testify/assert"
)

func TestForKind(t *testing.T) {
	seen := make(map[Tint]bool)
	for _, k := range piece.Kinds {
		tint := ForKind(k)
		assert.NotEqual(t, Black, tint, k.String())
		assert.False(t, seen[tint], "%v shares a tint", k)
		seen[tint] = true
	}
	assert.Equal(t, Black, ForKind(piece.Empty))
}

func TestNRGBA(t *testing.T) {
	assert.Equal(t, color.NRGBA{0x80, 0x00, 0x80, 0xff}, ForKind(piece.T).NRGBA())
	assert.Equal(t, color.NRGBA{0xaa, 0xaa, 0xaa, 0xff}, Ghost.NRGBA())
	assert.Equal(t, Black.NRGBA(), Tint(200).NRGBA())
}
