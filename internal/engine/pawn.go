package engine

import "github.com/lgbarn/chessplay-go/internal/chess"

// PawnDirection returns the row step of the colour's pawns: White moves
// toward row 0, Black toward row 7.
func PawnDirection(colour chess.Colour) int {
	if colour == chess.White {
		return -1
	}
	return 1
}

// PawnStartRow returns the row from which the colour's pawns may double-step.
func PawnStartRow(colour chess.Colour) int {
	if colour == chess.White {
		return 6
	}
	return 1
}

// PromotionRow returns the farthest row for the colour's pawns.
func PromotionRow(colour chess.Colour) int {
	if colour == chess.White {
		return 0
	}
	return chess.BoardSize - 1
}

// IsPromotion reports whether moving key to the destination promotes a pawn.
func IsPromotion(key chess.PieceKey, to chess.Square) bool {
	return key.Piece == chess.Pawn && to.Row == PromotionRow(key.Colour)
}

// ValidPromotion reports whether a pawn may be promoted to kind.
func ValidPromotion(kind chess.Piece) bool {
	switch kind {
	case chess.Queen, chess.Rook, chess.Bishop, chess.Knight:
		return true
	}
	return false
}

// pawnMoves generates forward steps onto empty squares, the double step from
// the start row, and diagonal captures of opposing pieces.
func pawnMoves(board *chess.Board, colour chess.Colour, from chess.Square) []chess.Square {
	var moves []chess.Square
	dir := PawnDirection(colour)

	oneStep := from.Offset(0, dir)
	if oneStep.Valid() && board.IsEmpty(oneStep) {
		moves = append(moves, oneStep)
		if from.Row == PawnStartRow(colour) {
			twoStep := from.Offset(0, 2*dir)
			if twoStep.Valid() && board.IsEmpty(twoStep) {
				moves = append(moves, twoStep)
			}
		}
	}

	for dc := -1; dc <= 1; dc += 2 {
		target := from.Offset(dc, dir)
		if target.Valid() && board.IsOccupiedByOpponent(target, colour) {
			moves = append(moves, target)
		}
	}
	return moves
}
