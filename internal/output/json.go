package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/chessplay-go/internal/game"
)

// JSONOutput is the document written for a batch of positions.
type JSONOutput struct {
	Positions []PositionReport `json:"positions"`
	Summary   JSONSummary      `json:"summary"`
}

// JSONSummary counts the batch verdicts.
type JSONSummary struct {
	Total      int `json:"total"`
	InCheck    int `json:"in_check"`
	Checkmate  int `json:"checkmate"`
	Errors     int `json:"errors"`
	Duplicates int `json:"duplicates"`
}

// JSONWriter writes reports in JSON format. Statuses are written at once;
// positions are buffered and written as one document on Flush or Close.
type JSONWriter struct {
	w         io.Writer
	positions []PositionReport
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:         w,
		positions: make([]PositionReport, 0),
	}
}

// WriteStatus encodes the status as an indented JSON object.
func (jw *JSONWriter) WriteStatus(s game.Status) error {
	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(s)
}

// WritePosition buffers a position for batch output.
func (jw *JSONWriter) WritePosition(r PositionReport) error {
	jw.positions = append(jw.positions, r)
	return nil
}

// Flush writes all buffered positions as a JSON document.
func (jw *JSONWriter) Flush() error {
	if len(jw.positions) == 0 {
		return nil
	}

	out := &JSONOutput{Positions: jw.positions}
	for _, p := range jw.positions {
		out.Summary.Total++
		if p.DuplicateOf > 0 {
			out.Summary.Duplicates++
		}
		switch {
		case p.Classification == nil:
			out.Summary.Errors++
		case p.Checkmate:
			out.Summary.Checkmate++
			out.Summary.InCheck++
		case p.InCheck:
			out.Summary.InCheck++
		}
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	err := enc.Encode(out)

	// Clear buffer after writing
	jw.positions = make([]PositionReport, 0)

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
