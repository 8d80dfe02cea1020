// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"runtime"

	"github.com/lgbarn/chessplay-go/internal/config"
	"github.com/lgbarn/chessplay-go/internal/game"
)

var (
	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	logFile    = flag.String("l", "", "Log file (default: stderr)")
	jsonOutput = flag.Bool("J", false, "Write status and classification reports as JSON")
	noColour   = flag.Bool("nocolour", false, "Don't colour the board")
	unicode    = flag.Bool("unicode", false, "Draw pieces with chess glyphs")
	svgSize    = flag.Int("svgsize", config.DefaultSVGSize, "Edge length of SVG diagrams in pixels")

	// Rules options
	separator = flag.String("sep", game.DefaultSeparator, "Separator between squares in the move log")
	selfCheck = flag.Bool("selfcheck", false, "Allow moves that leave your own king in check")
	startFEN  = flag.String("fen", "", "Start from this FEN position instead of the opening")

	// Batch mode
	classifyFile = flag.String("classify", "", "Classify the FEN positions in this file (- for stdin) and exit")
	workers      = flag.Int("workers", runtime.NumCPU(), "Number of classification workers")
	duplicates   = flag.Bool("D", false, "Mark repeated positions as duplicates of their first line")

	// Information
	verbosity = flag.Int("v", 1, "Log verbosity: 0=errors, 1=info, 2=debug")
	version   = flag.Bool("version", false, "Print version and exit")
	help      = flag.Bool("h", false, "Show help")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	cfg.Verbosity = *verbosity
	applyOutputFlags(cfg)
	applyRulesFlags(cfg)
	applyBatchFlags(cfg)
}

// applyOutputFlags sets the report format and board drawing options.
func applyOutputFlags(cfg *config.Config) {
	if *jsonOutput {
		cfg.Output.Format = config.JSON
	}
	if *noColour {
		cfg.Output.UseColour = false
	}
	cfg.Output.Unicode = *unicode
	cfg.Output.SVGSize = *svgSize
}

// applyRulesFlags sets the controller options.
func applyRulesFlags(cfg *config.Config) {
	cfg.Rules.Separator = *separator
	cfg.Rules.AllowSelfCheck = *selfCheck
	cfg.Rules.StartFEN = *startFEN
}

// applyBatchFlags sets up batch classification.
func applyBatchFlags(cfg *config.Config) {
	cfg.Batch.Input = *classifyFile
	cfg.Batch.Workers = *workers
	cfg.Batch.MarkDuplicates = *duplicates
}
