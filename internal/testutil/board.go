package testutil

import (
	"testing"

	"github.com/lgbarn/chessplay-go/internal/chess"
)

// MustBoard parses a FEN string, calling t.Fatal on failure.
func MustBoard(t testing.TB, fen string) (*chess.Board, chess.Colour) {
	t.Helper()
	board, toMove, err := chess.NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q): %v", fen, err)
	}
	return board, toMove
}

// Sq parses an algebraic square name, calling t.Fatal on failure.
func Sq(t testing.TB, name string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(name)
	if err != nil {
		t.Fatalf("ParseSquare(%q): %v", name, err)
	}
	return sq
}

// Squares parses a list of algebraic square names.
func Squares(t testing.TB, names ...string) []chess.Square {
	t.Helper()
	out := make([]chess.Square, 0, len(names))
	for _, name := range names {
		out = append(out, Sq(t, name))
	}
	return out
}
