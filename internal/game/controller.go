// Package game sequences the rules engine into a two-player game: turn
// order, piece selection, move log, promotion and termination.
package game

import (
	"fmt"

	petname "github.com/dustinkirkland/golang-petname"
	"go.uber.org/zap"

	"github.com/lgbarn/chessplay-go/internal/chess"
	"github.com/lgbarn/chessplay-go/internal/engine"
	"github.com/lgbarn/chessplay-go/internal/errors"
)

// DefaultSeparator joins the two squares of a move log entry.
const DefaultSeparator = " -> "

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithSeparator sets the text placed between the squares of a log entry.
func WithSeparator(sep string) Option {
	return func(c *Controller) {
		c.separator = sep
	}
}

// WithSelfCheck allows moves that leave the mover's own king attacked.
// The opponent may then capture the king, which ends the game.
func WithSelfCheck(allow bool) Option {
	return func(c *Controller) {
		c.allowSelfCheck = allow
	}
}

// WithID sets the game identifier instead of generating one.
func WithID(id string) Option {
	return func(c *Controller) {
		if id != "" {
			c.id = id
		}
	}
}

type pendingPromotion struct {
	from chess.Square
	to   chess.Square
}

// Controller owns one game. It is not safe for concurrent use: a single
// caller drives it one action at a time.
type Controller struct {
	id     string
	board  *chess.Board
	turn   chess.Colour
	phase  Phase
	winner chess.Colour
	ply    int

	moveLog   []string
	selection *Selection
	pending   *pendingPromotion
	last      Outcome

	separator      string
	allowSelfCheck bool
	logger         *zap.Logger

	// checkmate is the mate search run after every completed move.
	checkmate func(*chess.Board, chess.Colour) bool
}

// New creates a controller in the NotStarted phase with an empty board.
func New(opts ...Option) *Controller {
	c := &Controller{
		id:        petname.Generate(2, "-"),
		board:     chess.NewBoard(),
		turn:      chess.White,
		phase:     NotStarted,
		separator: DefaultSeparator,
		logger:    zap.NewNop(),
		checkmate: engine.IsCheckmate,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With(zap.String("game", c.id))
	return c
}

// Start sets up the opening position with White to move. Any previous game
// state is discarded.
func (c *Controller) Start() {
	c.begin(chess.NewBoardFromPosition(chess.InitialPosition()), chess.White)
	c.logger.Info("game started")
}

// Reset is Start under the name the front end uses for "new game".
func (c *Controller) Reset() {
	c.Start()
}

// StartFrom begins a game from an arbitrary position. The board is copied.
func (c *Controller) StartFrom(board *chess.Board, turn chess.Colour) error {
	pos := board.Snapshot()
	if err := pos.Validate(); err != nil {
		return err
	}
	c.begin(chess.NewBoardFromPosition(pos), turn)
	c.logger.Info("game started from position",
		zap.String("fen", c.FEN()),
		zap.Stringer("turn", turn),
	)
	return nil
}

func (c *Controller) begin(board *chess.Board, turn chess.Colour) {
	c.board = board
	c.turn = turn
	c.phase = InProgress
	c.winner = chess.White
	c.ply = 0
	c.moveLog = nil
	c.selection = nil
	c.pending = nil
	c.last = Moved
}

// Select picks up the piece on sq if it belongs to the side to move and
// nothing is selected yet. It reports whether a selection was made.
func (c *Controller) Select(sq chess.Square) bool {
	if c.phase != InProgress || c.selection != nil {
		return false
	}
	key, ok := c.board.PieceAt(sq)
	if !ok || key.Colour != c.turn {
		return false
	}
	c.selection = &Selection{Key: key, Square: sq}
	c.logger.Debug("piece selected",
		zap.Stringer("piece", key),
		zap.Stringer("from", sq),
	)
	return true
}

// ClearSelection drops the current selection, if any.
func (c *Controller) ClearSelection() {
	c.selection = nil
}

// AttemptMove moves the selected piece to sq. The selection is cleared
// whatever the result. An Illegal outcome comes with an error saying why;
// every other outcome has a nil error.
func (c *Controller) AttemptMove(sq chess.Square) (Outcome, error) {
	sel := c.selection
	c.selection = nil

	switch {
	case c.phase == AwaitingPromotion:
		return c.illegal(errors.ErrPromotionPending, sel, sq)
	case c.phase != InProgress:
		return c.illegal(errors.ErrNotInProgress, sel, sq)
	case sel == nil:
		return c.illegal(errors.ErrNoSelection, nil, sq)
	}

	if key, ok := c.board.PieceAt(sel.Square); !ok || key != sel.Key {
		return c.illegal(errors.ErrIllegalMove, sel, sq)
	}
	if !engine.Destinations(c.board, sel.Key, sel.Square).Has(sq) {
		return c.illegal(errors.ErrIllegalMove, sel, sq)
	}

	u := engine.ApplyMove(c.board, sel.Key, sel.Square, sq, false)
	if u.KingCaptured {
		return c.finishByCapture(sel, sq), nil
	}

	if !c.allowSelfCheck && engine.IsKingInCheck(c.board, c.turn) {
		engine.UndoMove(c.board, u)
		return c.illegal(errors.ErrLeavesKingInCheck, sel, sq)
	}

	if engine.IsPromotion(sel.Key, sq) {
		c.pending = &pendingPromotion{from: sel.Square, to: sq}
		c.phase = AwaitingPromotion
		c.last = PromotionRequired
		c.logger.Info("promotion required",
			zap.Stringer("turn", c.turn),
			zap.Stringer("from", sel.Square),
			zap.Stringer("to", sq),
		)
		return PromotionRequired, nil
	}

	return c.finishTurn(sel.Square, sq), nil
}

// PromotePawn completes a promotion by replacing the waiting pawn with kind
// (Queen, Rook, Bishop or Knight), then finishes the turn. An invalid kind
// leaves the promotion pending.
func (c *Controller) PromotePawn(kind chess.Piece) (Outcome, error) {
	if c.phase != AwaitingPromotion || c.pending == nil {
		return Illegal, errors.ErrNoPromotionPending
	}
	if !engine.ValidPromotion(kind) {
		return Illegal, fmt.Errorf("%v: %w", kind, errors.ErrInvalidPromotion)
	}

	p := c.pending
	if !engine.Promote(c.board, c.turn, p.to, kind) {
		return Illegal, fmt.Errorf("no %v pawn on %v: %w", c.turn, p.to, errors.ErrNoPromotionPending)
	}
	c.pending = nil
	c.phase = InProgress
	c.logger.Info("pawn promoted",
		zap.Stringer("turn", c.turn),
		zap.Stringer("square", p.to),
		zap.Stringer("piece", kind),
	)
	return c.finishTurn(p.from, p.to), nil
}

// finishTurn logs the move, hands the turn over and classifies the position
// for the new side to move.
func (c *Controller) finishTurn(from, to chess.Square) Outcome {
	mover := c.turn
	c.moveLog = append(c.moveLog, from.String()+c.separator+to.String())
	c.ply++
	c.turn = mover.Opposite()

	outcome := Moved
	if engine.IsKingInCheck(c.board, c.turn) {
		outcome = Check
		if c.checkmate(c.board, c.turn) {
			outcome = Checkmate
			c.end(mover)
		}
	}
	c.last = outcome

	c.logger.Info("move",
		zap.Int("ply", c.ply),
		zap.Stringer("turn", mover),
		zap.Stringer("from", from),
		zap.Stringer("to", to),
		zap.Stringer("outcome", outcome),
	)
	if outcome == Checkmate {
		c.logger.Info("game over", zap.Stringer("winner", mover), zap.String("reason", "checkmate"))
	}
	return outcome
}

// finishByCapture ends the game when a king has been taken. The capturing
// move is not logged and the turn does not pass.
func (c *Controller) finishByCapture(sel *Selection, to chess.Square) Outcome {
	c.end(c.turn)
	c.last = KingCaptured
	c.logger.Info("game over",
		zap.Stringer("winner", c.turn),
		zap.String("reason", "king captured"),
		zap.Stringer("from", sel.Square),
		zap.Stringer("to", to),
	)
	return KingCaptured
}

func (c *Controller) end(winner chess.Colour) {
	c.phase = GameOver
	c.winner = winner
}

func (c *Controller) illegal(reason error, sel *Selection, to chess.Square) (Outcome, error) {
	err := &errors.MoveError{
		Err:    reason,
		Ply:    c.ply + 1,
		Colour: c.turn.String(),
		To:     to.String(),
	}
	if sel != nil {
		err.From = sel.Square.String()
	}
	c.last = Illegal
	c.logger.Debug("illegal move", zap.Error(err))
	return Illegal, err
}

// Pieces lists every occupied square for rendering.
func (c *Controller) Pieces() []chess.Placement {
	return c.board.Pieces()
}

// Destinations returns the pseudo-legal destinations of the selected piece
// in board order, for highlighting. It is nil without a selection.
func (c *Controller) Destinations() []chess.Square {
	if c.selection == nil {
		return nil
	}
	return engine.Destinations(c.board, c.selection.Key, c.selection.Square).Squares()
}

// Selection returns the current selection.
func (c *Controller) Selection() (Selection, bool) {
	if c.selection == nil {
		return Selection{}, false
	}
	return *c.selection, true
}

// Turn returns the side to move.
func (c *Controller) Turn() chess.Colour { return c.turn }

// Phase returns the lifecycle phase.
func (c *Controller) Phase() Phase { return c.phase }

// Ply returns the number of completed moves.
func (c *Controller) Ply() int { return c.ply }

// ID returns the game identifier.
func (c *Controller) ID() string { return c.id }

// LastOutcome returns the outcome of the most recent move or promotion.
func (c *Controller) LastOutcome() Outcome { return c.last }

// MoveLog returns a copy of the move log.
func (c *Controller) MoveLog() []string {
	out := make([]string, len(c.moveLog))
	copy(out, c.moveLog)
	return out
}

// Winner returns the winning colour once the game is over.
func (c *Controller) Winner() (chess.Colour, bool) {
	if c.phase != GameOver {
		return chess.White, false
	}
	return c.winner, true
}

// InCheck reports whether the side to move is in check.
func (c *Controller) InCheck() bool {
	return engine.IsKingInCheck(c.board, c.turn)
}

// Board returns a copy of the current board.
func (c *Controller) Board() *chess.Board {
	return c.board.Copy()
}

// FEN returns the current position in FEN.
func (c *Controller) FEN() string {
	return chess.BoardToFEN(c.board, c.turn, c.ply/2+1)
}
