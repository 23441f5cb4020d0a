package main

import (
	"fmt"
	"image/color"
	"log"
	"strings"

	"github.com/deitrix/tetra/board"
	"github.com/deitrix/tetra/cell"
	"github.com/deitrix/tetra/game"
	"github.com/deitrix/tetra/piece"
	"github.com/deitrix/tetra/sprite"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

var (
	labelColor  = color.NRGBA{0x96, 0x96, 0xff, 0xff}
	panelColor  = color.NRGBA{0x14, 0x14, 0x1e, 0xff}
	buttonColor = color.NRGBA{0x2a, 0x2a, 0x3c, 0xff}
	dimmedColor = color.NRGBA{0x88, 0x88, 0x88, 0xff}
	overlay     = color.NRGBA{0x00, 0x00, 0x00, 0xc0}
)

func (g *Game) drawBoard(screen *ebiten.Image, s game.Snapshot) {
	c := g.Config.CellSize
	x0 := g.boardX()
	screen.Fill(panelColor)
	vector.DrawFilledRect(screen, float32(x0), 0, float32(board.Cols*c), float32(board.Rows*c), cell.Black.NRGBA(), false)
	for y, row := range s.Board {
		for x, k := range row {
			if k == piece.Empty {
				continue
			}
			drawCell(screen, sprite.Cell, x0+x*c, y*c, c, c, cell.ForKind(k), 255)
		}
	}
	vector.StrokeRect(screen, float32(x0)-1, -1, float32(board.Cols*c)+2, float32(board.Rows*c)+2, 2, cell.Wall.NRGBA(), false)
}

func (g *Game) drawGhost(screen *ebiten.Image, s game.Snapshot) {
	if s.State != game.Running {
		return
	}
	ghost := s.Active
	ghost.Y = s.GhostY
	g.renderPiece(screen, sprite.Ghost, ghost, cell.Ghost, g.boardX(), 0, g.Config.CellSize, true)
}

func (g *Game) drawActive(screen *ebiten.Image, s game.Snapshot) {
	if s.State == game.Idle {
		return
	}
	g.renderPiece(screen, sprite.Cell, s.Active, cell.ForKind(s.Active.Kind), g.boardX(), 0, g.Config.CellSize, true)
}

func (g *Game) drawQueue(screen *ebiten.Image, s game.Snapshot) {
	c := g.Config.CellSize
	centerX := g.boardX() + board.Cols*c + sidePanelCells*c/2
	drawText(screen, sprite.Regular, "NEXT", g.fontSize(), centerX-c, c-c/4, labelColor)
	for i, k := range s.Next {
		centerY := c + i*previewCells*c + previewCells*c/2
		g.drawPreview(screen, k, centerX, centerY, 255)
	}
}

func (g *Game) drawHeld(screen *ebiten.Image, s game.Snapshot) {
	c := g.Config.CellSize
	centerX := sidePanelCells * c / 2
	drawText(screen, sprite.Regular, "HOLD", g.fontSize(), centerX-c, c-c/4, labelColor)
	if s.Held == piece.Empty {
		return
	}
	opacity := uint8(255)
	if !s.CanHold {
		opacity = 96
	}
	g.drawPreview(screen, s.Held, centerX, c+previewCells*c/2, opacity)
}

// drawPreview draws kind k in its spawn orientation, trimmed and centered on cx, cy.
func (g *Game) drawPreview(screen *ebiten.Image, k piece.Kind, cx, cy int, opacity uint8) {
	c := g.Config.CellSize
	p := piece.New(k)
	row, col, width, height := p.Shape.Bounds()
	xoff := cx - width*c/2 - col*c
	yoff := cy - height*c/2 - row*c
	for _, rc := range p.Shape.Cells() {
		drawCell(screen, sprite.Cell, xoff+rc[1]*c, yoff+rc[0]*c, c, c, cell.ForKind(k), opacity)
	}
}

func (g *Game) drawScore(screen *ebiten.Image, s game.Snapshot) {
	c := g.Config.CellSize
	size := g.fontSize()
	x := c / 2
	y := (2 + previewCells + 1) * c
	for _, line := range [][2]string{
		{"Score", fmt.Sprintf("%d", s.Score)},
		{"Level", fmt.Sprintf("%d", s.Level)},
		{"Lines", fmt.Sprintf("%d", s.Lines)},
	} {
		drawText(screen, sprite.Regular, line[0], size, x, y, labelColor)
		drawText(screen, sprite.Monospace, line[1], size, x, y+c, color.White)
		y += 5 * c / 2
	}
}

func (g *Game) drawButtons(screen *ebiten.Image) {
	size := g.fontSize()
	for _, b := range g.Buttons {
		r := b.Rect
		vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), buttonColor, false)
		vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 1, labelColor, false)
		width := font.MeasureString(fontFace(sprite.Regular, size), b.Label).Round()
		drawText(screen, sprite.Regular, b.Label, size, r.Min.X+(r.Dx()-width)/2, r.Min.Y+r.Dy()/2+int(size)/3, color.White)
	}
}

func (g *Game) drawDebug(screen *ebiten.Image, s game.Snapshot) {
	if !g.ShowDebug {
		return
	}
	drawText(screen, sprite.Monospace, strings.Join([]string{
		fmt.Sprintf("FPS: %0.2f", ebiten.ActualFPS()),
		fmt.Sprintf("TPS: %0.2f", ebiten.ActualTPS()),
		fmt.Sprintf("State: %v", s.State),
		fmt.Sprintf("Drop Interval: %s", s.Interval),
		fmt.Sprintf("Piece: %v rot=%d x=%d y=%d", s.Active.Kind, s.Active.Rotation, s.Active.X, s.Active.Y),
		fmt.Sprintf("Ghost Y: %d", s.GhostY),
		fmt.Sprintf("Can Hold: %t", s.CanHold),
		fmt.Sprintf("Touches: %d", len(g.Touches.touches)),
	}, "\n"), g.fontSize()*0.6, g.boardX()+4, g.Config.CellSize/2, color.White)
}

func (g *Game) drawGameOver(screen *ebiten.Image, s game.Snapshot) {
	if s.State != game.GameOver {
		return
	}
	c := g.Config.CellSize
	x0 := g.boardX()
	vector.DrawFilledRect(screen, float32(x0), 0, float32(board.Cols*c), float32(board.Rows*c), overlay, false)
	size := g.fontSize()
	drawText(screen, sprite.Regular, "GAME OVER", size*1.5, x0+c, 8*c, color.White)
	drawText(screen, sprite.Regular, fmt.Sprintf("Score: %d", s.Score), size, x0+c, 10*c, color.White)
	drawText(screen, sprite.Regular, "R, Enter or tap to restart", size*0.7, x0+c, 12*c, dimmedColor)
}

func (g *Game) fontSize() float64 {
	return float64(g.Config.CellSize) * 0.8
}

// renderPiece draws the occupied cells of p with the board's top-left corner at xoff, yoff.
// Cells above the board are skipped when clip is set.
func (g *Game) renderPiece(screen, sprite *ebiten.Image, p piece.Piece, tint cell.Tint, xoff, yoff, size int, clip bool) {
	for _, rc := range p.Shape.Cells() {
		x, y := p.X+rc[1], p.Y+rc[0]
		if clip && y < 0 {
			continue
		}
		drawCell(screen, sprite, xoff+x*size, yoff+y*size, size, size, tint, 255)
	}
}

func drawCell(screen *ebiten.Image, img *ebiten.Image, x, y, width, height int, tint cell.Tint, opacity uint8) {
	var op ebiten.DrawImageOptions
	op.ColorScale.ScaleWithColor(tint.NRGBA())
	op.ColorScale.ScaleAlpha(float32(opacity) / 255)
	op.GeoM.Scale(float64(width)/float64(img.Bounds().Dx()), float64(height)/float64(img.Bounds().Dy()))
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(img, &op)
}

var fontFaceCache = make(map[*opentype.Font]map[float64]font.Face)

func fontFace(f *opentype.Font, size float64) font.Face {
	if _, ok := fontFaceCache[f]; !ok {
		fontFaceCache[f] = make(map[float64]font.Face)
	}
	if _, ok := fontFaceCache[f][size]; !ok {
		var err error
		fontFaceCache[f][size], err = opentype.NewFace(f, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingNone,
		})
		if err != nil {
			log.Fatalf("failed to create face: %v", err)
		}
	}
	return fontFaceCache[f][size]
}

func drawText(img *ebiten.Image, f *opentype.Font, t string, size float64, x, y int, c color.Color) {
	text.Draw(img, t, fontFace(f, size), x, y, c)
}
