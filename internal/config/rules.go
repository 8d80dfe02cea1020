package config

import (
	"fmt"

	"github.com/lgbarn/chessplay-go/internal/chess"
	"github.com/lgbarn/chessplay-go/internal/errors"
	"github.com/lgbarn/chessplay-go/internal/game"
)

// RulesConfig holds the game options handed to the controller.
type RulesConfig struct {
	// Separator joins the squares of a move log entry
	Separator string

	// AllowSelfCheck lets a player leave their own king attacked
	AllowSelfCheck bool

	// StartFEN is the starting position; empty means the opening layout
	StartFEN string
}

// NewRulesConfig creates a RulesConfig with default values.
func NewRulesConfig() *RulesConfig {
	return &RulesConfig{
		Separator: game.DefaultSeparator,
	}
}

// Validate checks the start position, if one is set.
func (r *RulesConfig) Validate() error {
	if r.StartFEN == "" {
		return nil
	}
	if _, _, err := chess.NewBoardFromFEN(r.StartFEN); err != nil {
		return fmt.Errorf("start position: %v: %w", err, errors.ErrInvalidConfig)
	}
	return nil
}
