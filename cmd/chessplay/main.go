// chessplay is a two-player chess game for the terminal, with a batch mode
// that classifies FEN positions.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/lgbarn/chessplay-go/internal/config"
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
		fmt.Printf("chessplay version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	logger := config.NewLogger(cfg)
	defer func() { _ = logger.Sync() }()

	os.Exit(run(cfg, logger))
}

// run dispatches to batch or interactive mode and returns the exit code.
func run(cfg *config.Config, logger *zap.Logger) int {
	if cfg.Batch.Enabled() {
		if err := runClassify(cfg, logger); err != nil {
			logger.Error("classification failed", zap.Error(err))
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	s, err := newSession(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if err := s.run(os.Stdin); err != nil {
		logger.Error("session ended with error", zap.Error(err))
		return 1
	}
	return 0
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.OpenFile(*logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// setupOutputFile configures the output file based on command-line flags.
// Colour is only used when writing to a terminal.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		if color.NoColor {
			cfg.Output.UseColour = false
		}
		return
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
	cfg.Output.UseColour = false
}

func usage() {
	fmt.Fprintf(os.Stderr, `chessplay - two-player chess in the terminal

Usage: chessplay [options]
       chessplay -classify positions.fen [options]

Interactive commands are read from stdin; type "help" once running.

Options:
`)
	flag.PrintDefaults()
}
