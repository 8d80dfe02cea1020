package chess

import (
	"errors"
	"testing"

	chesserrors "github.com/lgbarn/chessplay-go/internal/errors"
)

func TestSquareString(t *testing.T) {
	tests := []struct {
		sq   Square
		want string
	}{
		{Sq(0, 0), "a8"},
		{Sq(7, 7), "h1"},
		{Sq(4, 6), "e2"},
		{Sq(1, 7), "b1"},
		{Sq(8, 0), "(8,0)"},
	}
	for _, tt := range tests {
		if got := tt.sq.String(); got != tt.want {
			t.Errorf("%#v.String() = %q; want %q", tt.sq, got, tt.want)
		}
	}
}

func TestParseSquare(t *testing.T) {
	tests := []struct {
		in      string
		want    Square
		wantErr bool
	}{
		{"a8", Sq(0, 0), false},
		{"h1", Sq(7, 7), false},
		{"E4", Sq(4, 4), false},
		{"c3", Sq(2, 5), false},
		{"i1", Square{}, true},
		{"a9", Square{}, true},
		{"a", Square{}, true},
		{"e10", Square{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSquare(tt.in)
			if tt.wantErr {
				if !errors.Is(err, chesserrors.ErrInvalidSquare) {
					t.Errorf("ParseSquare(%q) error = %v; want ErrInvalidSquare", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSquare(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseSquare(%q) = %v; want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseSquareRoundTrip(t *testing.T) {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			sq := Sq(col, row)
			got, err := ParseSquare(sq.String())
			if err != nil || got != sq {
				t.Errorf("ParseSquare(%q) = %v, %v; want %v", sq.String(), got, err, sq)
			}
		}
	}
}

func TestPieceKeyLetters(t *testing.T) {
	if got := W(Knight).FENLetter(); got != 'N' {
		t.Errorf("W(Knight).FENLetter() = %c; want N", got)
	}
	if got := B(Queen).FENLetter(); got != 'q' {
		t.Errorf("B(Queen).FENLetter() = %c; want q", got)
	}
	if got := PieceFromLetter('r'); got != Rook {
		t.Errorf("PieceFromLetter('r') = %v; want Rook", got)
	}
	if got := PieceFromLetter('x'); got != NoPiece {
		t.Errorf("PieceFromLetter('x') = %v; want NoPiece", got)
	}
	if len(Keys) != 12 {
		t.Errorf("len(Keys) = %d; want 12", len(Keys))
	}
}

func TestColour(t *testing.T) {
	if White.Opposite() != Black || Black.Opposite() != White {
		t.Error("Opposite() is not an involution")
	}
	if White.Letter() != 'w' || Black.Letter() != 'b' {
		t.Error("Letter() mismatch")
	}
}

func TestSquareSet(t *testing.T) {
	s := SetOf(Sq(0, 5), Sq(2, 5), Sq(9, 9))

	if got := s.Len(); got != 2 {
		t.Errorf("Len() = %d; want 2 (off-board square ignored)", got)
	}
	if !s.Has(Sq(2, 5)) || s.Has(Sq(1, 5)) {
		t.Error("Has() mismatch")
	}
	if got := s.String(); got != "{a3 c3}" {
		t.Errorf("String() = %q; want {a3 c3}", got)
	}
	if first, ok := s.First(); !ok || first != Sq(0, 5) {
		t.Errorf("First() = %v, %v; want a3", first, ok)
	}
	if s.Without(Sq(0, 5)).Without(Sq(2, 5)) != EmptySet {
		t.Error("Without() did not empty the set")
	}
	if _, ok := EmptySet.First(); ok {
		t.Error("EmptySet.First() reported a square")
	}
}
