package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/lgbarn/chessplay-go/internal/chess"
)

const (
	lightFill    = "fill:#f0d9b5"
	darkFill     = "fill:#b58863"
	selectedFill = "fill:#f6f669"
	targetStyle  = "fill:#3a7d44;fill-opacity:0.6"
)

// errWriter remembers the first write error; svgo itself reports none.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return len(p), nil
	}
	n, err := ew.w.Write(p)
	if err != nil {
		ew.err = err
	}
	return n, err
}

// SVG writes a size x size pixel diagram of the board with rank 8 at the
// top. Destinations are marked with dots.
func SVG(w io.Writer, board *chess.Board, size int, hl Highlight) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)

	cell := size / chess.BoardSize
	edge := cell * chess.BoardSize
	canvas.Start(edge, edge)
	canvas.Title("chess board")

	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			sq := chess.Sq(col, row)
			x, y := col*cell, row*cell

			fill := darkFill
			switch {
			case hl.isSelected(sq):
				fill = selectedFill
			case isLight(sq):
				fill = lightFill
			}
			canvas.Rect(x, y, cell, cell, fill)

			if key, ok := board.PieceAt(sq); ok {
				style := fmt.Sprintf("font-size:%dpx;text-anchor:middle;dominant-baseline:central", cell*3/4)
				canvas.Text(x+cell/2, y+cell/2, string(Glyph(key)), style)
			} else if hl.Targets.Has(sq) {
				canvas.Circle(x+cell/2, y+cell/2, cell/6, targetStyle)
			}
		}
	}

	labelStyle := fmt.Sprintf("font-size:%dpx;fill:#333", cell/5)
	for i := 0; i < chess.BoardSize; i++ {
		canvas.Text(i*cell+2, edge-3, string(rune(chess.ColBase+i)), labelStyle)
		canvas.Text(2, i*cell+cell/5+1, string(rune(chess.RankBase+chess.BoardSize-1-i)), labelStyle)
	}

	canvas.End()
	return ew.err
}
