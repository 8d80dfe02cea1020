package worker

import (
	"bufio"
	"io"
	"strings"

	"github.com/lgbarn/chessplay-go/internal/chess"
	"github.com/lgbarn/chessplay-go/internal/errors"
	"github.com/lgbarn/chessplay-go/internal/game"
	"github.com/lgbarn/chessplay-go/internal/hashing"
)

// ProcessResult is the outcome of classifying one work item.
type ProcessResult struct {
	Index          int
	Line           int
	Input          string
	Classification *game.Classification // nil when Error is set
	Hash           uint64               // Zobrist hash of the position
	Error          error
}

// ClassifyFEN is the ProcessFunc for batch classification.
func ClassifyFEN(item WorkItem) ProcessResult {
	result := ProcessResult{Index: item.Index, Line: item.Line, Input: item.Input}

	board, toMove, err := chess.NewBoardFromFEN(item.Input)
	if err == nil {
		pos := board.Snapshot()
		err = pos.Validate()
	}
	if err != nil {
		result.Error = err
		return result
	}

	c := game.Classify(board, toMove)
	result.Classification = &c
	result.Hash = hashing.Zobrist(board, toMove)
	return result
}

// ReadItems reads one FEN per line. Blank lines and lines starting with
// '#' are skipped but still counted.
func ReadItems(r io.Reader) ([]WorkItem, error) {
	var items []WorkItem
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		items = append(items, WorkItem{Index: len(items), Line: line, Input: text})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading positions")
	}
	return items, nil
}
