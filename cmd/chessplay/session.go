package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/lgbarn/chessplay-go/internal/chess"
	"github.com/lgbarn/chessplay-go/internal/config"
	"github.com/lgbarn/chessplay-go/internal/errors"
	"github.com/lgbarn/chessplay-go/internal/game"
	"github.com/lgbarn/chessplay-go/internal/output"
	"github.com/lgbarn/chessplay-go/internal/render"
)

const helpText = `Commands:
  e2 e4 | e2e4 | move e2 e4   move a piece in one step
  select e2                   pick up a piece and show where it can go
  to e4                       move the selected piece
  moves                       list destinations of the selected piece
  promote q|r|b|n             finish a pending promotion
  board                       draw the board
  fen                         print the position as FEN
  log                         print the move log
  status                      print a game status report
  svg FILE                    write the board as an SVG diagram
  new | reset                 start a new game
  help                        show this text
  quit | exit                 leave
`

// session drives one controller from text commands.
type session struct {
	cfg     *config.Config
	ctrl    *game.Controller
	out     io.Writer
	reports output.ReportWriter
	logger  *zap.Logger
	line    int
}

// newSession creates a controller from the configuration and starts a game.
func newSession(cfg *config.Config, logger *zap.Logger) (*session, error) {
	ctrl := game.New(
		game.WithLogger(logger),
		game.WithSeparator(cfg.Rules.Separator),
		game.WithSelfCheck(cfg.Rules.AllowSelfCheck),
	)
	s := &session{
		cfg:     cfg,
		ctrl:    ctrl,
		out:     cfg.OutputFile,
		reports: output.NewReportWriter(cfg.OutputFile, cfg),
		logger:  logger,
	}
	if err := s.newGame(); err != nil {
		return nil, err
	}
	return s, nil
}

// newGame starts from the configured position, or the opening.
func (s *session) newGame() error {
	if s.cfg.Rules.StartFEN == "" {
		s.ctrl.Start()
		return nil
	}
	board, turn, err := chess.NewBoardFromFEN(s.cfg.Rules.StartFEN)
	if err != nil {
		return err
	}
	return s.ctrl.StartFrom(board, turn)
}

// run reads commands until quit or end of input. Command errors are
// reported and the loop continues; only read errors end it early.
func (s *session) run(r io.Reader) error {
	if err := s.drawBoard(); err != nil {
		return err
	}
	s.prompt()

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		s.line++
		quit, err := s.execute(scanner.Text())
		if err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
		}
		if quit {
			break
		}
		s.prompt()
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "reading commands")
	}
	return s.reports.Close()
}

func (s *session) prompt() {
	switch s.ctrl.Phase() {
	case game.AwaitingPromotion:
		fmt.Fprintf(s.out, "%s promotes> ", s.ctrl.Turn())
	case game.GameOver:
		fmt.Fprint(s.out, "game over> ")
	default:
		fmt.Fprintf(s.out, "%s> ", s.ctrl.Turn())
	}
}

// execute runs one command line and reports whether the session should end.
func (s *session) execute(line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "quit", "exit":
		return true, nil
	case "help":
		_, err := io.WriteString(s.out, helpText)
		return false, err
	case "new", "reset":
		if err := s.newGame(); err != nil {
			return false, err
		}
		return false, s.drawBoard()
	case "board":
		return false, s.drawBoard()
	case "fen":
		_, err := fmt.Fprintln(s.out, s.ctrl.FEN())
		return false, err
	case "log":
		_, err := fmt.Fprintln(s.out, output.FormatMoveLog(s.ctrl.MoveLog()))
		return false, err
	case "status":
		return false, s.reports.WriteStatus(s.ctrl.Status())
	case "select":
		if err := s.needArgs(cmd, args, 1, "a square"); err != nil {
			return false, err
		}
		return false, s.selectSquare(args[0])
	case "moves":
		return false, s.listMoves()
	case "to":
		if err := s.needArgs(cmd, args, 1, "a square"); err != nil {
			return false, err
		}
		return false, s.moveTo(args[0])
	case "move":
		if err := s.needArgs(cmd, args, 2, "two squares"); err != nil {
			return false, err
		}
		return false, s.move(args[0], args[1])
	case "promote":
		if err := s.needArgs(cmd, args, 1, "q, r, b or n"); err != nil {
			return false, err
		}
		return false, s.promote(args[0])
	case "svg":
		if err := s.needArgs(cmd, args, 1, "a file name"); err != nil {
			return false, err
		}
		return false, s.writeSVG(args[0])
	}

	// Bare coordinates: "e2 e4" or "e2e4".
	switch {
	case len(fields) == 2 && len(fields[0]) == 2 && len(fields[1]) == 2:
		return false, s.move(fields[0], fields[1])
	case len(fields) == 1 && len(cmd) == 4:
		if _, err := chess.ParseSquare(cmd[:2]); err == nil {
			return false, s.move(cmd[:2], cmd[2:])
		}
	}
	return false, &errors.ParseError{
		Err:  errors.ErrParseFailure,
		Line: s.line,
		Got:  fmt.Sprintf("command %q", cmd),
	}
}

func (s *session) needArgs(cmd string, args []string, n int, what string) error {
	if len(args) == n {
		return nil
	}
	return &errors.ParseError{
		Err:      errors.ErrParseFailure,
		Line:     s.line,
		Expected: fmt.Sprintf("%s after %s", what, cmd),
		Got:      fmt.Sprintf("%d arguments", len(args)),
	}
}

func (s *session) selectSquare(name string) error {
	sq, err := chess.ParseSquare(name)
	if err != nil {
		return err
	}
	s.ctrl.ClearSelection()
	if !s.ctrl.Select(sq) {
		return fmt.Errorf("cannot select %v: no %v piece there", sq, s.ctrl.Turn())
	}
	return s.listMoves()
}

func (s *session) listMoves() error {
	sel, ok := s.ctrl.Selection()
	if !ok {
		return errors.ErrNoSelection
	}
	names := make([]string, 0, len(s.ctrl.Destinations()))
	for _, sq := range s.ctrl.Destinations() {
		names = append(names, sq.String())
	}
	if len(names) == 0 {
		names = append(names, "none")
	}
	fmt.Fprintf(s.out, "%s: %s\n", sel, strings.Join(names, " "))
	return s.drawBoard()
}

// move selects the piece on from and moves it to to.
func (s *session) move(from, to string) error {
	fromSq, err := chess.ParseSquare(from)
	if err != nil {
		return err
	}
	if _, err := chess.ParseSquare(to); err != nil {
		return err
	}
	s.ctrl.ClearSelection()
	if s.ctrl.Phase() == game.InProgress && !s.ctrl.Select(fromSq) {
		return fmt.Errorf("cannot select %v: no %v piece there", fromSq, s.ctrl.Turn())
	}
	return s.moveTo(to)
}

func (s *session) moveTo(name string) error {
	sq, err := chess.ParseSquare(name)
	if err != nil {
		return err
	}
	mover := s.ctrl.Turn()
	outcome, err := s.ctrl.AttemptMove(sq)
	if err != nil {
		return err
	}
	return s.report(outcome, mover)
}

func (s *session) promote(letter string) error {
	kind := chess.PieceFromLetter(letter[0])
	if len(letter) != 1 {
		kind = chess.NoPiece
	}
	mover := s.ctrl.Turn()
	outcome, err := s.ctrl.PromotePawn(kind)
	if err != nil {
		return err
	}
	return s.report(outcome, mover)
}

// report prints the result of a move followed by the board.
func (s *session) report(outcome game.Outcome, mover chess.Colour) error {
	if err := s.drawBoard(); err != nil {
		return err
	}
	var msg string
	switch {
	case outcome.Ends():
		msg = fmt.Sprintf("%s: %s wins", outcome, mover)
	case outcome == game.Check:
		msg = fmt.Sprintf("%s is in check", s.ctrl.Turn())
	case outcome == game.PromotionRequired:
		msg = "promote to? (promote q|r|b|n)"
	default:
		return nil
	}
	_, err := fmt.Fprintln(s.out, msg)
	return err
}

func (s *session) highlight() render.Highlight {
	var hl render.Highlight
	if sel, ok := s.ctrl.Selection(); ok {
		sq := sel.Square
		hl.Selected = &sq
		hl.Targets = chess.SetOf(s.ctrl.Destinations()...)
	}
	return hl
}

func (s *session) drawBoard() error {
	opts := render.TextOptions{
		Colour:  s.cfg.Output.UseColour,
		Unicode: s.cfg.Output.Unicode,
	}
	return render.Text(s.out, s.ctrl.Board(), opts, s.highlight())
}

func (s *session) writeSVG(name string) (err error) {
	file, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()

	if err := render.SVG(file, s.ctrl.Board(), s.cfg.Output.SVGSize, s.highlight()); err != nil {
		return errors.Wrapf(err, "writing %s", name)
	}
	s.logger.Info("board written", zap.String("file", name), zap.Int("ply", s.ctrl.Ply()))
	_, err = fmt.Fprintf(s.out, "wrote %s\n", name)
	return err
}
