// Package render draws a board for the terminal and as an SVG diagram.
package render

import "github.com/lgbarn/chessplay-go/internal/chess"

// Highlight marks the selected piece and its destinations.
type Highlight struct {
	Selected *chess.Square
	Targets  chess.SquareSet
}

func (h Highlight) isSelected(sq chess.Square) bool {
	return h.Selected != nil && *h.Selected == sq
}

var glyphs = map[chess.PieceKey]rune{
	chess.W(chess.King):   '♔',
	chess.W(chess.Queen):  '♕',
	chess.W(chess.Rook):   '♖',
	chess.W(chess.Bishop): '♗',
	chess.W(chess.Knight): '♘',
	chess.W(chess.Pawn):   '♙',
	chess.B(chess.King):   '♚',
	chess.B(chess.Queen):  '♛',
	chess.B(chess.Rook):   '♜',
	chess.B(chess.Bishop): '♝',
	chess.B(chess.Knight): '♞',
	chess.B(chess.Pawn):   '♟',
}

// Glyph returns the Unicode chess symbol for key.
func Glyph(key chess.PieceKey) rune {
	return glyphs[key]
}

// isLight reports whether sq is a light square; a8 is light.
func isLight(sq chess.Square) bool {
	return (sq.Col+sq.Row)%2 == 0
}
