package sprite

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Size is the side length in pixels of the generated sprites. They are scaled to the cell
// size when drawn.
const Size = 64

// Cell and Ghost are greyscale so that a tint colour scale gives them their final colour.
var Cell, Ghost *ebiten.Image

var spriteMap = map[string]struct {
	img  **ebiten.Image
	draw func(*ebiten.Image)
}{
	"cell":  {&Cell, drawCell},
	"ghost": {&Ghost, drawGhost},
}

// Load builds the sprites and parses the fonts. It must be called before anything is drawn.
func Load() error {
	for _, s := range spriteMap {
		img := ebiten.NewImage(Size, Size)
		s.draw(img)
		*s.img = img
	}
	if err := loadFonts(); err != nil {
		return fmt.Errorf("loading fonts: %w", err)
	}
	return nil
}

var outline = color.NRGBA{0x33, 0x33, 0x33, 0xff}

func drawCell(img *ebiten.Image) {
	img.Fill(color.Gray{0xd0})
	vector.StrokeRect(img, 1, 1, Size-2, Size-2, 2, outline, false)
	// Highlight along the top and left edges.
	vector.DrawFilledRect(img, 4, 4, Size-8, 4, color.White, false)
	vector.DrawFilledRect(img, 4, 4, 4, Size-8, color.White, false)
}

func drawGhost(img *ebiten.Image) {
	img.Fill(color.NRGBA{0xff, 0xff, 0xff, 0x50})
	vector.StrokeRect(img, 2, 2, Size-4, Size-4, 3, color.White, false)
}
