package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors_Wrapping verifies wrapped sentinel errors can still be detected
func TestSentinelErrors_Wrapping(t *testing.T) {
	sentinels := []error{
		ErrInvalidFEN,
		ErrInvalidSquare,
		ErrOverlappingSquares,
		ErrIllegalMove,
		ErrLeavesKingInCheck,
		ErrNoSelection,
		ErrNotInProgress,
		ErrPromotionPending,
		ErrNoPromotionPending,
		ErrInvalidPromotion,
		ErrParseFailure,
		ErrInvalidConfig,
	}

	for _, sentinel := range sentinels {
		t.Run(sentinel.Error(), func(t *testing.T) {
			wrapped := fmt.Errorf("attempting move: %w", sentinel)
			if !errors.Is(wrapped, sentinel) {
				t.Errorf("errors.Is(wrapped, %v) = false, want true", sentinel)
			}
		})
	}
}

// TestSentinelErrors_Distinct verifies no two sentinels match each other
func TestSentinelErrors_Distinct(t *testing.T) {
	if errors.Is(ErrIllegalMove, ErrLeavesKingInCheck) {
		t.Error("ErrIllegalMove matches ErrLeavesKingInCheck")
	}
	if errors.Is(ErrPromotionPending, ErrNoPromotionPending) {
		t.Error("ErrPromotionPending matches ErrNoPromotionPending")
	}
}

func TestMoveError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *MoveError
		contains []string
		want     string
	}{
		{
			name: "full context",
			err: &MoveError{
				Err:    ErrIllegalMove,
				Ply:    12,
				Colour: "White",
				From:   "e2",
				To:     "e5",
			},
			contains: []string{"ply 12", "White", "e2-e5", "illegal move"},
		},
		{
			name: "source only",
			err:  &MoveError{Err: ErrNoSelection, From: "a1"},
			want: "from a1: no piece selected",
		},
		{
			name: "no context",
			err:  &MoveError{Err: ErrNotInProgress},
			want: "game not in progress",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			if tt.want != "" && msg != tt.want {
				t.Errorf("MoveError.Error() = %q, want %q", msg, tt.want)
			}
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("MoveError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

// TestMoveError_As verifies that errors.As works through extra wrapping
func TestMoveError_As(t *testing.T) {
	moveErr := &MoveError{
		Err:  ErrLeavesKingInCheck,
		Ply:  7,
		From: "e2",
		To:   "d3",
	}
	wrapped := fmt.Errorf("attempt rejected: %w", moveErr)

	var extracted *MoveError
	if !errors.As(wrapped, &extracted) {
		t.Fatal("errors.As() could not extract MoveError")
	}
	if extracted.Ply != 7 {
		t.Errorf("extracted.Ply = %d, want 7", extracted.Ply)
	}
	if !errors.Is(wrapped, ErrLeavesKingInCheck) {
		t.Error("errors.Is(wrapped, ErrLeavesKingInCheck) = false, want true")
	}
}

// TestParseError_Error verifies ParseError formatting
func TestParseError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ParseError
		want string
	}{
		{
			name: "file line column",
			err: &ParseError{
				Err:      ErrInvalidFEN,
				File:     "positions.fen",
				Line:     3,
				Column:   9,
				Expected: "side to move",
				Got:      "x",
			},
			want: "positions.fen:3:9: expected side to move, got x: invalid FEN string",
		},
		{
			name: "line without file",
			err:  &ParseError{Err: ErrParseFailure, Line: 4, Got: "castle"},
			want: "4: unexpected castle: parse failure",
		},
		{
			name: "bare",
			err:  &ParseError{},
			want: "parse error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("ParseError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseError_Unwrap(t *testing.T) {
	parseErr := &ParseError{Err: ErrInvalidFEN, File: "batch.fen", Line: 1}

	if !errors.Is(parseErr, ErrInvalidFEN) {
		t.Error("errors.Is(parseErr, ErrInvalidFEN) = false, want true")
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should be nil")
	}

	wrapped := Wrap(ErrInvalidFEN, "loading start position")
	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Error("Wrap should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "loading start position") {
		t.Errorf("Wrap should include context, got %q", wrapped.Error())
	}
}

func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrIllegalMove, "ply %d", 15)

	if !errors.Is(wrapped, ErrIllegalMove) {
		t.Error("Wrapf should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "ply 15") {
		t.Errorf("Wrapf should include formatted context, got %q", wrapped.Error())
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
