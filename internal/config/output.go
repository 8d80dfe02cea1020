package config

import (
	"fmt"

	"github.com/lgbarn/chessplay-go/internal/errors"
)

// DefaultSVGSize is the default edge length of an SVG board in pixels.
const DefaultSVGSize = 480

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format selects text or JSON reports
	Format OutputFormat

	// UseColour enables ANSI colours on the terminal board
	UseColour bool

	// Unicode draws pieces with chess glyphs instead of FEN letters
	Unicode bool

	// SVGSize is the edge length of SVG diagrams in pixels
	SVGSize int
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:    Text,
		UseColour: true,
		SVGSize:   DefaultSVGSize,
	}
}

// Validate checks that the output configuration is usable.
func (o *OutputConfig) Validate() error {
	if o.SVGSize < 8*8 {
		return fmt.Errorf("svg size %d too small: %w", o.SVGSize, errors.ErrInvalidConfig)
	}
	return nil
}
