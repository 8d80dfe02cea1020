// Package engine provides chess move generation, move execution and
// check/checkmate detection over a chess.Board.
package engine

import "github.com/lgbarn/chessplay-go/internal/chess"

// Direction sets for the sliding pieces, and the fixed offsets for the
// knight and king.
var (
	diagonalDirs = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	royalDirs    = append(append([][2]int{}, diagonalDirs...), straightDirs...)

	knightOffsets = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = royalDirs
)

// PseudoLegalMoves returns the destinations the piece of the given key on
// from can reach by its movement pattern. It does not consider whether the
// move leaves the mover's king in check. Order is not significant.
func PseudoLegalMoves(board *chess.Board, key chess.PieceKey, from chess.Square) []chess.Square {
	if !from.Valid() {
		return nil
	}
	colour := key.Colour

	switch key.Piece {
	case chess.Pawn:
		return pawnMoves(board, colour, from)
	case chess.Knight:
		return stepMoves(board, colour, from, knightOffsets)
	case chess.Bishop:
		return rayCast(board, colour, from, diagonalDirs)
	case chess.Rook:
		return rayCast(board, colour, from, straightDirs)
	case chess.Queen:
		return rayCast(board, colour, from, royalDirs)
	case chess.King:
		return stepMoves(board, colour, from, kingOffsets)
	}
	return nil
}

// Destinations is PseudoLegalMoves collected into a set.
func Destinations(board *chess.Board, key chess.PieceKey, from chess.Square) chess.SquareSet {
	return chess.SetOf(PseudoLegalMoves(board, key, from)...)
}

// stepMoves applies single-step offsets, keeping on-board squares not
// occupied by a friendly piece.
func stepMoves(board *chess.Board, colour chess.Colour, from chess.Square, offsets [][2]int) []chess.Square {
	moves := make([]chess.Square, 0, len(offsets))
	for _, offset := range offsets {
		to := from.Offset(offset[0], offset[1])
		if to.Valid() && !board.IsOccupiedBy(to, colour) {
			moves = append(moves, to)
		}
	}
	return moves
}
