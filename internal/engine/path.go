package engine

import "github.com/lgbarn/chessplay-go/internal/chess"

// rayCast walks each direction one square at a time. A friendly piece stops
// the ray before its square; an enemy piece stops it on its square.
func rayCast(board *chess.Board, colour chess.Colour, from chess.Square, dirs [][2]int) []chess.Square {
	var moves []chess.Square
	for _, dir := range dirs {
		to := from.Offset(dir[0], dir[1])
		for to.Valid() {
			if board.IsOccupiedBy(to, colour) {
				break // Blocked
			}
			moves = append(moves, to)
			if board.IsOccupiedByOpponent(to, colour) {
				break
			}
			to = to.Offset(dir[0], dir[1])
		}
	}
	return moves
}
