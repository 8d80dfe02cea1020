// Package config provides configuration for chessplay.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chessplay-go/internal/errors"
)

// OutputFormat selects how reports are written.
type OutputFormat int

const (
	Text OutputFormat = iota // Human-readable text
	JSON                     // One JSON document per report
)

// String returns the flag spelling of the format.
func (f OutputFormat) String() string {
	if f == JSON {
		return "json"
	}
	return "text"
}

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=errors only, 1=info, 2=debug

	Output *OutputConfig
	Rules  *RulesConfig
	Batch  *BatchConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Output:     NewOutputConfig(),
		Rules:      NewRulesConfig(),
		Batch:      NewBatchConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the report stream.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the log stream.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Validate checks every section of the configuration.
func (c *Config) Validate() error {
	if c.Verbosity < 0 || c.Verbosity > 2 {
		return fmt.Errorf("verbosity %d out of range 0..2: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	if err := c.Rules.Validate(); err != nil {
		return err
	}
	return c.Batch.Validate()
}
