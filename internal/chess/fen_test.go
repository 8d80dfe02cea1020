package chess

import (
	"errors"
	"testing"

	chesserrors "github.com/lgbarn/chessplay-go/internal/errors"
)

func TestNewBoardFromFEN(t *testing.T) {
	tests := []struct {
		name       string
		fen        string
		wantToMove Colour
		wantCount  int
		check      map[string]PieceKey
	}{
		{
			name:       "initial position",
			fen:        InitialFEN,
			wantToMove: White,
			wantCount:  32,
			check:      map[string]PieceKey{"e1": W(King), "d8": B(Queen), "h2": W(Pawn)},
		},
		{
			name:       "black to move",
			fen:        "4k3/8/8/8/8/8/4R3/4K3 b - - 0 1",
			wantToMove: Black,
			wantCount:  3,
			check:      map[string]PieceKey{"e8": B(King), "e2": W(Rook)},
		},
		{
			name:       "placement only",
			fen:        "8/P7/8/8/8/8/8/k6K",
			wantToMove: White,
			wantCount:  3,
			check:      map[string]PieceKey{"a7": W(Pawn), "a1": B(King), "h1": W(King)},
		},
		{
			name:       "castling field ignored",
			fen:        "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			wantToMove: Black,
			wantCount:  32,
			check:      map[string]PieceKey{"e4": W(Pawn)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, toMove, err := NewBoardFromFEN(tt.fen)
			if err != nil {
				t.Fatalf("NewBoardFromFEN(%q) error: %v", tt.fen, err)
			}
			if toMove != tt.wantToMove {
				t.Errorf("toMove = %v; want %v", toMove, tt.wantToMove)
			}
			if got := board.Count(); got != tt.wantCount {
				t.Errorf("Count() = %d; want %d", got, tt.wantCount)
			}
			for name, want := range tt.check {
				sq, _ := ParseSquare(name)
				if got, ok := board.PieceAt(sq); !ok || got != want {
					t.Errorf("PieceAt(%s) = %v, %v; want %v", name, got, ok, want)
				}
			}
		})
	}
}

func TestNewBoardFromFEN_Invalid(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"empty", ""},
		{"bad piece", "rnbqkbnr/ppppxppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"},
		{"too few rows", "8/8/8/8/8/8/8 w - - 0 1"},
		{"row overflow", "9/8/8/8/8/8/8/8 w - - 0 1"},
		{"short row", "7/8/8/8/8/8/8/8 w - - 0 1"},
		{"bad side", InitialFEN[:43] + " x - - 0 1"},
		// Runes whose low byte is a piece letter.
		{"latin extended", "rnbqkbnr/pppppppp/8/8/8/8/ŐPPPPPPP/RNBQKBNR w - - 0 1"},
		{"fullwidth pawn", "rnbqkbnr/ｐppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := NewBoardFromFEN(tt.fen)
			if !errors.Is(err, chesserrors.ErrInvalidFEN) {
				t.Errorf("NewBoardFromFEN(%q) error = %v; want ErrInvalidFEN", tt.fen, err)
			}
		})
	}
}

func TestBoardToFEN(t *testing.T) {
	if got := BoardToFEN(NewInitialBoard(), White, 1); got != InitialFEN {
		t.Errorf("BoardToFEN(initial) = %q; want %q", got, InitialFEN)
	}

	tests := []struct {
		fen        string
		moveNumber int
	}{
		{"4k3/8/8/8/8/8/4R3/4K3 b - - 0 1", 1},
		{"r1bqkb1r/pppp1Qpp/2n2n2/4p3/2B1P3/8/PPPP1PPP/RNB1K1NR b - - 0 4", 4},
		{"8/8/8/3k4/8/8/8/K7 w - - 0 40", 40},
	}
	for _, tt := range tests {
		board, toMove, err := NewBoardFromFEN(tt.fen)
		if err != nil {
			t.Fatalf("NewBoardFromFEN(%q) error: %v", tt.fen, err)
		}
		if got := BoardToFEN(board, toMove, tt.moveNumber); got != tt.fen {
			t.Errorf("BoardToFEN round trip = %q; want %q", got, tt.fen)
		}
	}
}
