package game

import (
	"github.com/lgbarn/chessplay-go/internal/chess"
	"github.com/lgbarn/chessplay-go/internal/engine"
)

// Status is a read-only snapshot of a game for reporting.
type Status struct {
	ID           string   `json:"id"`
	Phase        string   `json:"phase"`
	Turn         string   `json:"turn"`
	Ply          int      `json:"ply"`
	InCheck      bool     `json:"in_check"`
	Winner       string   `json:"winner,omitempty"`
	LastOutcome  string   `json:"last_outcome,omitempty"`
	FEN          string   `json:"fen"`
	MoveLog      []string `json:"move_log"`
	Selected     string   `json:"selected,omitempty"`
	Destinations []string `json:"destinations,omitempty"`
}

// Status returns a snapshot of the controller state.
func (c *Controller) Status() Status {
	s := Status{
		ID:      c.id,
		Phase:   c.phase.String(),
		Turn:    c.turn.String(),
		Ply:     c.ply,
		InCheck: c.InCheck(),
		FEN:     c.FEN(),
		MoveLog: c.MoveLog(),
	}
	if c.phase != NotStarted {
		s.LastOutcome = c.last.String()
	}
	if winner, ok := c.Winner(); ok {
		s.Winner = winner.String()
	}
	if sel, ok := c.Selection(); ok {
		s.Selected = sel.String()
		for _, sq := range c.Destinations() {
			s.Destinations = append(s.Destinations, sq.String())
		}
	}
	return s
}

// Classification describes a position from the point of view of the side
// to move.
type Classification struct {
	FEN        string `json:"fen"`
	ToMove     string `json:"to_move"`
	InCheck    bool   `json:"in_check"`
	Checkmate  bool   `json:"checkmate"`
	LegalMoves int    `json:"legal_moves"`
}

// Classify evaluates a position without changing it.
func Classify(board *chess.Board, toMove chess.Colour) Classification {
	return Classification{
		FEN:        chess.BoardToFEN(board, toMove, 1),
		ToMove:     toMove.String(),
		InCheck:    engine.IsKingInCheck(board, toMove),
		Checkmate:  engine.IsCheckmate(board, toMove),
		LegalMoves: engine.CountLegalMoves(board, toMove),
	}
}
