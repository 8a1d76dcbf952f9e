package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"

	"snake/internal/game"
	"snake/internal/termui"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
)

func main() {
	cfg := game.ConfigFromEnv()
	apply := cfg.BindFlags(flag.CommandLine)
	logFile := flag.String("log", "", "write logs to this file instead of discarding them")
	flag.Parse()
	apply()

	// The terminal is the display, so logs go to a file or nowhere.
	var out io.Writer = io.Discard
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		out = f
	}
	session := uuid.NewString()
	logger := log.New(out, "snake-term "+session[:8]+" ", log.LstdFlags)

	e, err := game.NewEngine(cfg, termui.NewBeepSounder(cfg.Audio, logger), logger)
	if err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = termui.New(screen, game.NewLoop(e)).Run(ctx)
	screen.Fini()
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
	logger.Printf("quit after %d rounds", e.Round())
}
