// Command tetra-term plays the game in a terminal.
package main

import (
	"fmt"
	"log"
	"math/rand/v2"
	"os"

	"github.com/deitrix/tetra/config"
	"github.com/deitrix/tetra/game"
	"github.com/deitrix/tetra/logging"
	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg, err := config.Load(os.Args[0], os.Args[1:], os.Getenv)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	// The screen belongs to the game, so logs only go to a file.
	closer, err := logging.Setup(cfg.LogPath, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	var opts []game.Option
	if cfg.Seed != 0 {
		opts = append(opts, game.WithSource(rand.NewPCG(cfg.Seed, cfg.Seed)))
	}
	if cfg.Debug {
		opts = append(opts, game.WithListener(game.ListenerFunc(func(e game.Event) {
			log.Printf("%v: kind=%v lines=%d points=%d score=%d level=%d", e.Type, e.Kind, e.Lines, e.Points, e.Score, e.Level)
		})))
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	engine := game.New(opts...)
	t := newTerminal(screen, engine, cfg.Bindings)
	t.run()
	screen.Fini()

	fmt.Printf("Score: %d  Level: %d  Lines: %d\n", engine.Score(), engine.Level(), engine.Lines())
}
