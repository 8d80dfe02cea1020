package game

import "github.com/lgbarn/chessplay-go/internal/chess"

// Phase is the controller's lifecycle state.
type Phase int

const (
	NotStarted Phase = iota
	InProgress
	// AwaitingPromotion means a pawn has reached its last row and the turn
	// is suspended until PromotePawn supplies the replacement kind.
	AwaitingPromotion
	GameOver
)

var phaseNames = [...]string{"not started", "in progress", "awaiting promotion", "game over"}

// String returns the string representation of a phase.
func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "unknown"
	}
	return phaseNames[p]
}

// Outcome classifies the result of a move attempt.
type Outcome int

const (
	Illegal Outcome = iota
	Moved
	Check
	Checkmate
	KingCaptured
	PromotionRequired
)

var outcomeNames = [...]string{"illegal", "moved", "check", "checkmate", "king captured", "promotion required"}

// String returns the string representation of an outcome.
func (o Outcome) String() string {
	if o < 0 || int(o) >= len(outcomeNames) {
		return "unknown"
	}
	return outcomeNames[o]
}

// Ends reports whether the outcome finishes the game.
func (o Outcome) Ends() bool {
	return o == Checkmate || o == KingCaptured
}

// Selection is the piece picked for the move in progress.
type Selection struct {
	Key    chess.PieceKey
	Square chess.Square
}

// String returns e.g. "White Knight b1".
func (s Selection) String() string {
	return s.Key.String() + " " + s.Square.String()
}
