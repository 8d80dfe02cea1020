package config

import (
	"fmt"
	"runtime"

	"github.com/lgbarn/chessplay-go/internal/errors"
)

// BatchConfig holds settings for classifying a file of positions.
type BatchConfig struct {
	// Input is the FEN file to classify ("-" for stdin); empty means interactive play
	Input string

	// Workers is the number of classification goroutines
	Workers int

	// MarkDuplicates reports repeated positions against their first line
	MarkDuplicates bool
}

// NewBatchConfig creates a BatchConfig with default values.
func NewBatchConfig() *BatchConfig {
	return &BatchConfig{
		Workers: runtime.NumCPU(),
	}
}

// Enabled reports whether batch mode was requested.
func (b *BatchConfig) Enabled() bool {
	return b.Input != ""
}

// Validate checks the worker count.
func (b *BatchConfig) Validate() error {
	if b.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d: %w", b.Workers, errors.ErrInvalidConfig)
	}
	return nil
}
