package engine

import "github.com/lgbarn/chessplay-go/internal/chess"

// IsKingInCheck returns true if the given colour's king stands on a square
// reached by any opposing piece. A missing king is never in check.
func IsKingInCheck(board *chess.Board, colour chess.Colour) bool {
	kingSq, ok := board.KingSquare(colour)
	if !ok {
		return false
	}
	return IsSquareAttacked(board, kingSq, colour.Opposite())
}

// IsSquareAttacked returns true if any piece of byColour has sq among its
// pseudo-legal destinations.
func IsSquareAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	for _, kind := range chess.Kinds {
		key := chess.PieceKey{Piece: kind, Colour: byColour}
		for _, from := range board.Squares(key).Squares() {
			for _, to := range PseudoLegalMoves(board, key, from) {
				if to == sq {
					return true
				}
			}
		}
	}
	return false
}
