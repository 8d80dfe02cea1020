package render

import (
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/lgbarn/chessplay-go/internal/chess"
)

const files = "a b c d e f g h"

// TextOptions controls the terminal board.
type TextOptions struct {
	Colour  bool // ANSI square and piece colours
	Unicode bool // chess glyphs instead of FEN letters
}

var (
	whitePieceAttrs = []color.Attribute{color.FgHiWhite, color.Bold}
	blackPieceAttrs = []color.Attribute{color.FgBlack}
)

// paint returns a colour with output forced on, so the result does not
// depend on whether stdout is a terminal.
func paint(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	c.EnableColor()
	return c
}

// squareBg returns the background attribute for a square.
func squareBg(sq chess.Square, hl Highlight) color.Attribute {
	switch {
	case hl.isSelected(sq):
		return color.BgMagenta
	case hl.Targets.Has(sq):
		return color.BgCyan
	case isLight(sq):
		return color.BgYellow
	default:
		return color.BgGreen
	}
}

// Text writes the board with rank 8 at the top, framed by file letters
// and rank numbers.
func Text(w io.Writer, board *chess.Board, opts TextOptions, hl Highlight) error {
	var sb strings.Builder
	sb.WriteString("  " + files + "\n")
	for row := 0; row < chess.BoardSize; row++ {
		rank := string(rune(chess.RankBase + chess.BoardSize - 1 - row))
		sb.WriteString(rank + " ")
		for col := 0; col < chess.BoardSize; col++ {
			sb.WriteString(drawSquare(board, chess.Sq(col, row), opts, hl))
		}
		sb.WriteString(" " + rank + "\n")
	}
	sb.WriteString("  " + files + "\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

// drawSquare renders one two-column cell: the piece (or a marker) and a pad.
func drawSquare(board *chess.Board, sq chess.Square, opts TextOptions, hl Highlight) string {
	key, occupied := board.PieceAt(sq)

	var symbol string
	switch {
	case occupied && opts.Unicode:
		symbol = string(Glyph(key))
	case occupied:
		symbol = string(key.FENLetter())
	case !opts.Colour && hl.Targets.Has(sq):
		symbol = "*"
	case !opts.Colour:
		symbol = "."
	default:
		symbol = " "
	}

	if !opts.Colour {
		if hl.isSelected(sq) {
			return symbol + "<"
		}
		return symbol + " "
	}

	bg := squareBg(sq, hl)
	pad := paint(bg).Sprint(" ")
	if !occupied {
		return paint(bg).Sprint(symbol) + pad
	}
	attrs := blackPieceAttrs
	if key.Colour == chess.White {
		attrs = whitePieceAttrs
	}
	return paint(append(append([]color.Attribute{}, attrs...), bg)...).Sprint(symbol) + pad
}
