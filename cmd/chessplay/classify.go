package main

import (
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/lgbarn/chessplay-go/internal/config"
	"github.com/lgbarn/chessplay-go/internal/errors"
	"github.com/lgbarn/chessplay-go/internal/hashing"
	"github.com/lgbarn/chessplay-go/internal/output"
	"github.com/lgbarn/chessplay-go/internal/worker"
)

// runClassify classifies every FEN in the configured batch input.
func runClassify(cfg *config.Config, logger *zap.Logger) error {
	name := cfg.Batch.Input
	if name == "-" {
		return classifyPositions(os.Stdin, "stdin", cfg, logger)
	}
	file, err := os.Open(name) //nolint:gosec // G304: path comes from the command line
	if err != nil {
		return err
	}
	defer file.Close()
	return classifyPositions(file, name, cfg, logger)
}

// classifyPositions reads one FEN per line, classifies them across the
// worker pool and writes one report per position in input order.
// Unreadable positions are reported, not fatal.
func classifyPositions(r io.Reader, name string, cfg *config.Config, logger *zap.Logger) error {
	start := time.Now()

	items, err := worker.ReadItems(r)
	if err != nil {
		return err
	}
	results := worker.Run(items, worker.ClassifyFEN, worker.WithWorkers(cfg.Batch.Workers))

	w := output.NewReportWriter(cfg.OutputFile, cfg)
	detector := hashing.NewDuplicateDetector()
	failed := 0
	for _, res := range results {
		report := output.PositionReport{
			Line:           res.Line,
			Input:          res.Input,
			Classification: res.Classification,
		}
		if cfg.Batch.MarkDuplicates && res.Classification != nil {
			sig := hashing.Signature{Hash: res.Hash, FEN: res.Classification.FEN}
			if first, dup := detector.CheckAndAdd(sig, res.Line); dup {
				report.DuplicateOf = first
			}
		}
		if res.Error != nil {
			failed++
			report.Error = res.Error.Error()
			logger.Warn("skipping position", zap.Error(&errors.ParseError{
				Err:  res.Error,
				File: name,
				Line: res.Line,
			}))
		}
		if err := w.WritePosition(report); err != nil {
			return err
		}
	}
	if err := w.Close(); err != nil {
		return err
	}

	logger.Info("positions classified",
		zap.String("input", name),
		zap.Int("total", len(results)),
		zap.Int("errors", failed),
		zap.Int("duplicates", detector.DuplicateCount()),
		zap.Int("workers", cfg.Batch.Workers),
		zap.Duration("elapsed", time.Since(start)),
	)
	return nil
}
