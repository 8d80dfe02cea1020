package engine

import "github.com/lgbarn/chessplay-go/internal/chess"

// Undo records what ApplyMove changed so the move can be taken back.
// Every simulated move must be undone exactly once.
type Undo struct {
	Key      chess.PieceKey
	From     chess.Square
	To       chess.Square
	Captured []chess.Placement

	// KingCaptured is set when a real (non-simulated) move took a king.
	// It ends the game regardless of check or checkmate.
	KingCaptured bool

	hadFrom bool
}

// ApplyMove relocates key from one square to another, removing whatever
// stood on the destination. The removed placements are returned in the
// undo token. Nothing is validated: callers check legality first.
func ApplyMove(board *chess.Board, key chess.PieceKey, from, to chess.Square, simulate bool) Undo {
	u := Undo{Key: key, From: from, To: to}

	// The one-occupant invariant allows at most one match; every key is
	// scanned anyway so a corrupt position cannot leave a stray piece behind.
	for _, other := range chess.Keys {
		if board.Remove(other, to) {
			u.Captured = append(u.Captured, chess.Placement{Key: other, Square: to})
			if other.Piece == chess.King && !simulate {
				u.KingCaptured = true
			}
		}
	}

	u.hadFrom = board.Remove(key, from)
	board.Add(key, to)
	return u
}

// RestoreCaptured puts captured placements back on the board.
func RestoreCaptured(board *chess.Board, captured []chess.Placement) {
	for _, p := range captured {
		board.Add(p.Key, p.Square)
	}
}

// UndoMove reverses ApplyMove: the piece returns to its source square and
// any captured pieces are restored.
func UndoMove(board *chess.Board, u Undo) {
	board.Remove(u.Key, u.To)
	if u.hadFrom {
		board.Add(u.Key, u.From)
	}
	RestoreCaptured(board, u.Captured)
}

// CapturedKing returns the colour of a king among the captured placements.
func CapturedKing(captured []chess.Placement) (chess.Colour, bool) {
	for _, p := range captured {
		if p.Key.Piece == chess.King {
			return p.Key.Colour, true
		}
	}
	return chess.White, false
}

// Promote replaces the pawn of the given colour on sq with kind.
func Promote(board *chess.Board, colour chess.Colour, sq chess.Square, kind chess.Piece) bool {
	if !ValidPromotion(kind) {
		return false
	}
	if !board.Remove(chess.PieceKey{Piece: chess.Pawn, Colour: colour}, sq) {
		return false
	}
	board.Add(chess.PieceKey{Piece: kind, Colour: colour}, sq)
	return true
}

// tryMove makes a move speculatively and reports whether the mover's king
// is safe afterwards. The board is always restored before returning.
func tryMove(board *chess.Board, key chess.PieceKey, from, to chess.Square) bool {
	u := ApplyMove(board, key, from, to, true)
	defer UndoMove(board, u)
	return !IsKingInCheck(board, key.Colour)
}
