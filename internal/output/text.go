package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessplay-go/internal/game"
)

// TextWriter writes reports as plain text lines.
type TextWriter struct {
	w io.Writer
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

// WriteStatus writes one "Key: value" line per field.
func (tw *TextWriter) WriteStatus(s game.Status) error {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Game:    %s\n", s.ID)
	fmt.Fprintf(&sb, "Phase:   %s\n", s.Phase)
	fmt.Fprintf(&sb, "Turn:    %s (ply %d)\n", s.Turn, s.Ply)
	fmt.Fprintf(&sb, "Check:   %s\n", yesNo(s.InCheck))
	if s.Winner != "" {
		fmt.Fprintf(&sb, "Winner:  %s\n", s.Winner)
	}
	if s.LastOutcome != "" {
		fmt.Fprintf(&sb, "Last:    %s\n", s.LastOutcome)
	}
	if s.Selected != "" {
		fmt.Fprintf(&sb, "Select:  %s -> %s\n", s.Selected, strings.Join(s.Destinations, " "))
	}
	fmt.Fprintf(&sb, "FEN:     %s\n", s.FEN)
	fmt.Fprintf(&sb, "Moves:   %s\n", FormatMoveLog(s.MoveLog))

	_, err := io.WriteString(tw.w, sb.String())
	return err
}

// WritePosition writes a single summary line.
func (tw *TextWriter) WritePosition(r PositionReport) error {
	var line string
	if r.Classification == nil {
		line = fmt.Sprintf("%d: error: %s\n", r.Line, r.Error)
	} else {
		c := r.Classification
		verdict := "no check"
		switch {
		case c.Checkmate:
			verdict = "checkmate"
		case c.InCheck:
			verdict = "check"
		}
		line = fmt.Sprintf("%d: %s to move, %s, %d legal moves", r.Line, c.ToMove, verdict, c.LegalMoves)
		if r.DuplicateOf > 0 {
			line += fmt.Sprintf(" (duplicate of line %d)", r.DuplicateOf)
		}
		line += "\n"
	}
	_, err := io.WriteString(tw.w, line)
	return err
}

// Flush is a no-op: text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// FormatMoveLog numbers log entries in pairs: "1. e2 -> e4, e7 -> e5 2. ...".
func FormatMoveLog(entries []string) string {
	if len(entries) == 0 {
		return "-"
	}
	var sb strings.Builder
	for i, entry := range entries {
		switch {
		case i%2 == 1:
			sb.WriteString(", ")
		case i > 0:
			sb.WriteByte(' ')
		}
		if i%2 == 0 {
			fmt.Fprintf(&sb, "%d. ", i/2+1)
		}
		sb.WriteString(entry)
	}
	return sb.String()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
