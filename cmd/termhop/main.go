// Command termhop plays in a text terminal.
package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/automoto/bunnyhop/config"
	"github.com/automoto/bunnyhop/shared/leveldata"
	"github.com/automoto/bunnyhop/systems"
	"github.com/automoto/bunnyhop/terminal"
	"github.com/gdamore/tcell/v2"
)

func main() {
	seed := flag.Uint64("seed", 0, "random seed; 0 picks a new one per session")
	logPath := flag.String("log", "", "write log output to this file instead of discarding it")
	flag.Parse()

	if err := config.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	layout := leveldata.Default()

	var store systems.HighScoreStore = &systems.MemoryStore{}
	if s, err := systems.OpenGdataStore("bunnyhop"); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	} else {
		store = s
	}

	// The screen owns the terminal, so logs go to a file or nowhere.
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to initialize screen: %v", err)
	}
	defer screen.Fini()

	terminal.NewGame(screen, store, layout, *seed).Run()
}
