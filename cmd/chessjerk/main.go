// chessjerk is a text front end for a small three-ply chess engine.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/ilygor/chessjerk/internal/config"
	"github.com/ilygor/chessjerk/internal/game"
	"github.com/ilygor/chessjerk/internal/logging"
	"github.com/ilygor/chessjerk/internal/record"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessjerk version %s\n", programVersion)
		os.Exit(0)
	}

	cfg, err := buildConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	cfg.OutputFile = os.Stdout
	setupLogFile(cfg)

	log, err := logging.New(cfg.LogFile, cfg.Log.Level, cfg.Log.Console)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	sink, err := record.Open(cfg.Record)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening record %s: %v\n", cfg.Record.Path, err)
		os.Exit(1)
	}
	defer func() {
		if err := sink.Close(); err != nil {
			log.Error().Err(err).Msg("close record")
		}
	}()

	g, err := game.New(cfg, log, sink)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	s := newSession(g, cfg.OutputFile, engineSides(cfg, *aiOnly))
	if *aiOnly {
		err = s.autoplay(ctx, *maxTurns)
	} else {
		err = s.run(ctx, os.Stdin)
	}
	if err != nil {
		log.Error().Err(err).Msg("game stopped")
	}
}

// setupLogFile sends the log to the -l file, or to stderr.
func setupLogFile(cfg *config.Config) {
	cfg.LogFile = os.Stderr
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

func usage() {
	out := os.Stderr
	fmt.Fprintf(out, "Usage: chessjerk [options]\n\n")
	fmt.Fprintf(out, "Play chess against a breadth-limited three-ply engine.\n\n")
	fmt.Fprintf(out, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(out, "\nCommands:\n")
	fmt.Fprintf(out, "  <from> <to>   move a piece, e.g. e2 e4 or 4,6 4,4\n")
	fmt.Fprintf(out, "  info <sq>     describe the piece on a square\n")
	fmt.Fprintf(out, "  scores        list every legal move with its score\n")
	fmt.Fprintf(out, "  ai            show the engine's choice without playing it\n")
	fmt.Fprintf(out, "  board         print the board\n")
	fmt.Fprintf(out, "  fen           print the position as FEN\n")
	fmt.Fprintf(out, "  quit          leave\n")
}
