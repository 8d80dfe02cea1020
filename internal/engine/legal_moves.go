package engine

import "github.com/lgbarn/chessplay-go/internal/chess"

// LegalMoves returns the pseudo-legal destinations of the piece that do not
// leave its own king in check.
func LegalMoves(board *chess.Board, key chess.PieceKey, from chess.Square) []chess.Square {
	var moves []chess.Square
	for _, to := range PseudoLegalMoves(board, key, from) {
		if tryMove(board, key, from, to) {
			moves = append(moves, to)
		}
	}
	return moves
}

// HasLegalMoves returns true if the given colour has at least one move that
// leaves its king out of check.
func HasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	for _, kind := range chess.Kinds {
		key := chess.PieceKey{Piece: kind, Colour: colour}
		// Squares() is a copy, so simulating moves cannot disturb the loop.
		for _, from := range board.Squares(key).Squares() {
			for _, to := range PseudoLegalMoves(board, key, from) {
				if tryMove(board, key, from, to) {
					return true
				}
			}
		}
	}
	return false
}

// IsCheckmate returns true if the colour's king is in check and no move
// escapes it. A side that is not in check is never mated, even with no
// moves at all: stalemate is not detected.
func IsCheckmate(board *chess.Board, colour chess.Colour) bool {
	return IsKingInCheck(board, colour) && !HasLegalMoves(board, colour)
}

// CountLegalMoves returns the number of legal moves available to colour.
func CountLegalMoves(board *chess.Board, colour chess.Colour) int {
	n := 0
	for _, kind := range chess.Kinds {
		key := chess.PieceKey{Piece: kind, Colour: colour}
		for _, from := range board.Squares(key).Squares() {
			n += len(LegalMoves(board, key, from))
		}
	}
	return n
}
