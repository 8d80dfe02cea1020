package chess

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/chessplay-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
// Castling is not modelled, so the castling field is always "-".
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"

// NewBoardFromFEN creates a board from a FEN string and returns it with
// the side to move. Only the placement and side-to-move fields are used;
// the rest are accepted and ignored.
func NewBoardFromFEN(fen string) (*Board, Colour, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, White, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	board := NewBoard()
	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, White, err
	}

	toMove, err := parseSideToMove(parts)
	if err != nil {
		return nil, White, err
	}
	return board, toMove, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
// FEN lists rank 8 first, which is row 0.
func parsePiecePositions(board *Board, positions string) error {
	row, col := 0, 0

	for _, c := range positions {
		switch {
		case c == '/':
			if col != BoardSize {
				return fmt.Errorf("row %d has %d files: %w", row, col, errors.ErrInvalidFEN)
			}
			row++
			col = 0
		case c >= '1' && c <= '8':
			col += int(c - '0')
			if col > BoardSize {
				return fmt.Errorf("row %d overflows: %w", row, errors.ErrInvalidFEN)
			}
		case c > unicode.MaxASCII:
			return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
		default:
			piece := PieceFromLetter(byte(c))
			if piece == NoPiece {
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			if col >= BoardSize || row >= BoardSize {
				return fmt.Errorf("position out of bounds: %w", errors.ErrInvalidFEN)
			}

			colour := White
			if unicode.IsLower(c) {
				colour = Black
			}
			board.Add(PieceKey{Piece: piece, Colour: colour}, Sq(col, row))
			col++
		}
	}
	if row != BoardSize-1 || col != BoardSize {
		return fmt.Errorf("placement covers %d rows: %w", row+1, errors.ErrInvalidFEN)
	}
	return nil
}

// parseSideToMove parses the side to move field, defaulting to White.
func parseSideToMove(parts []string) (Colour, error) {
	if len(parts) < 2 {
		return White, nil
	}
	switch parts[1] {
	case "w":
		return White, nil
	case "b":
		return Black, nil
	default:
		return White, fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
}

// BoardToFEN converts a board to a FEN string.
func BoardToFEN(board *Board, toMove Colour, moveNumber int) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	sb.WriteByte(toMove.Letter())
	if moveNumber < 1 {
		moveNumber = 1
	}
	fmt.Fprintf(&sb, " - - 0 %d", moveNumber)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *Board) {
	for row := 0; row < BoardSize; row++ {
		emptyCount := 0
		for col := 0; col < BoardSize; col++ {
			key, ok := board.PieceAt(Sq(col, row))
			if !ok {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(key.FENLetter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row < BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}
