// Package output writes game status and position classification reports.
package output

import (
	"io"

	"github.com/lgbarn/chessplay-go/internal/config"
	"github.com/lgbarn/chessplay-go/internal/game"
)

// PositionReport is the result of classifying one input line.
// Exactly one of Classification and Error is set.
type PositionReport struct {
	Line  int    `json:"line"`
	Input string `json:"input"`
	*game.Classification
	// DuplicateOf is the line where this position first appeared, or 0.
	DuplicateOf int    `json:"duplicate_of,omitempty"`
	Error       string `json:"error,omitempty"`
}

// ReportWriter is the interface for writing reports to output.
// Different implementations handle different output formats (text, JSON).
type ReportWriter interface {
	// WriteStatus writes a snapshot of a game immediately.
	WriteStatus(status game.Status) error

	// WritePosition writes or buffers one classified position.
	WritePosition(report PositionReport) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewReportWriter returns the writer for the configured format.
func NewReportWriter(w io.Writer, cfg *config.Config) ReportWriter {
	if cfg.Output.Format == config.JSON {
		return NewJSONWriter(w)
	}
	return NewTextWriter(w)
}
