package main

import (
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"time"

	"github.com/deitrix/tetra/board"
	"github.com/deitrix/tetra/config"
	"github.com/deitrix/tetra/game"
	"github.com/deitrix/tetra/input"
	"github.com/deitrix/tetra/logging"
	"github.com/deitrix/tetra/queue"
	"github.com/deitrix/tetra/sprite"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	// sidePanelCells is the width, in cells, of the panels on either side of the board
	sidePanelCells = 6
	// buttonRowCells is the height, in cells, of the on-screen button row below the board
	buttonRowCells = 3
	// previewCells is the height, in cells, reserved for each piece in the next queue
	previewCells = 3
	// repeatDelay is the number of ticks a movement key must be held before it repeats
	repeatDelay = 10
	// repeatRate is the number of ticks between repeats once a held key repeats
	repeatRate = 3
)

type Game struct {
	// Engine runs the rules. The Game only reads its state and forwards input to it.
	Engine *game.Engine
	// Config holds the layout, bindings and gesture thresholds.
	Config config.Config
	// Buttons are the on-screen controls below the board.
	Buttons []button
	// Touches tracks the board gestures currently in progress.
	Touches *touchTracker
	// ScreenWidth is the width of the screen in pixels
	ScreenWidth int
	// ScreenHeight is the height of the screen in pixels
	ScreenHeight int
	// ShowDebug is a flag that indicates whether debug information should be shown
	ShowDebug bool

	// now returns the time elapsed since the game was created. Tests replace it.
	now func() time.Duration
	// keys and touchIDs are reused between ticks to avoid allocating.
	keys     []ebiten.Key
	touchIDs []ebiten.TouchID
}

func NewGame(cfg config.Config) *Game {
	epoch := time.Now()
	g := &Game{
		Config:    cfg,
		Touches:   newTouchTracker(cfg.Gesture),
		ShowDebug: cfg.Debug,
		now:       func() time.Duration { return time.Since(epoch) },
	}
	opts := []game.Option{game.WithQueue(newQueue(cfg.Seed))}
	if cfg.Debug {
		opts = append(opts, game.WithListener(game.ListenerFunc(logEvent)))
	}
	g.Engine = game.New(opts...)
	g.ScreenWidth, g.ScreenHeight = g.layoutSize()
	g.Buttons = layoutButtons(cfg.CellSize, g.boardX(), board.Rows*cfg.CellSize)
	g.Engine.Start(g.now())
	return g
}

func newQueue(seed uint64) *queue.Queue {
	if seed == 0 {
		return queue.New(nil)
	}
	return queue.New(rand.NewPCG(seed, seed))
}

func logEvent(e game.Event) {
	switch e.Type {
	case game.PieceLocked:
		log.Printf("locked %v: lines=%d points=%d overflow=%t score=%d", e.Kind, e.Lines, e.Points, e.Overflow, e.Score)
	case game.LevelUp:
		log.Printf("level %d: interval=%s", e.Level, e.Interval)
	case game.Over:
		log.Printf("game over: score=%d lines=%d level=%d", e.Score, e.TotalLines, e.Level)
	default:
		log.Printf("%v: %+v", e.Type, e)
	}
}

func (g *Game) Reset() {
	g.Touches.reset()
	g.Engine.Start(g.now())
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset()
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyI) {
		g.ShowDebug = !g.ShowDebug
		return nil
	}

	if g.Engine.IsGameOver() {
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || g.justTapped() {
			g.Reset()
		}
		return nil
	}

	g.handleKeys()
	g.handleMouse()
	g.handleTouches()
	g.Engine.Tick(g.now())
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	s := g.Engine.Snapshot()
	g.drawBoard(screen, s)
	g.drawGhost(screen, s)
	g.drawActive(screen, s)
	g.drawQueue(screen, s)
	g.drawHeld(screen, s)
	g.drawScore(screen, s)
	g.drawButtons(screen)
	g.drawDebug(screen, s)
	g.drawGameOver(screen, s)
}

func (g *Game) Layout(_, _ int) (screenWidth, screenHeight int) {
	return g.ScreenWidth, g.ScreenHeight
}

func (g *Game) layoutSize() (int, int) {
	c := g.Config.CellSize
	width := (sidePanelCells + board.Cols + sidePanelCells) * c
	height := max((board.Rows+buttonRowCells)*c, (1+previewCells*queue.Depth)*c)
	return width, height
}

// boardX is the x pixel offset of the board's left edge.
func (g *Game) boardX() int {
	return sidePanelCells * g.Config.CellSize
}

func main() {
	cfg, err := config.Load(os.Args[0], os.Args[1:], os.Getenv)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	closer, err := logging.Setup(cfg.LogPath, os.Stderr)
	if err != nil {
		log.Fatalf("failed to set up logging: %v", err)
	}
	defer closer.Close()

	if err := sprite.Load(); err != nil {
		log.Fatalf("failed to load sprites: %v", err)
	}

	g := NewGame(cfg)
	ebiten.SetWindowTitle("Tetra")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(g.ScreenWidth, g.ScreenHeight)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatalf("failed to run game: %v", err)
	}
}

// apply forwards an action to the engine.
func (g *Game) apply(a input.Action) {
	input.Apply(g.Engine, a)
}
