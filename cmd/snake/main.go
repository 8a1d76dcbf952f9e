package main

import (
	"flag"
	"log"
	"os"

	"snake/internal/game"
	"snake/internal/window"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := game.ConfigFromEnv()
	flag.IntVar(&cfg.CellSize, "cell", cfg.CellSize, "grid cell size in pixels")
	flag.IntVar(&cfg.CanvasSize, "canvas", cfg.CanvasSize, "board edge in pixels, a multiple of -cell")
	flag.StringVar(&cfg.SoundsDir, "sounds", cfg.SoundsDir, "directory holding eat.wav")
	apply := cfg.BindFlags(flag.CommandLine)
	flag.Parse()
	apply()

	session := uuid.NewString()
	logger := log.New(os.Stderr, "snake "+session[:8]+" ", log.LstdFlags)

	g, err := window.New(cfg, logger)
	if err != nil {
		log.Fatal(err)
	}
	ebiten.SetWindowTitle("Snake (Go + Ebiten)")
	ebiten.SetWindowResizable(false)
	ebiten.SetWindowSize(g.ScreenWidth(), g.ScreenHeight())
	logger.Printf("starting %dx%d field, step %v", cfg.CanvasSize/cfg.CellSize, cfg.CanvasSize/cfg.CellSize, cfg.MoveInterval)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
