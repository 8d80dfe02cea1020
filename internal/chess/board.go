package chess

import (
	"fmt"

	"github.com/lgbarn/chessplay-go/internal/errors"
)

// Position maps every piece key to the set of squares it occupies.
// It is a value type: assigning it copies the whole position.
type Position [NumColours][NumPieceKinds]SquareSet

// Get returns the squares occupied by key.
func (p Position) Get(key PieceKey) SquareSet {
	return p[key.Colour][key.Piece]
}

// Set replaces the squares occupied by key.
func (p *Position) Set(key PieceKey, squares SquareSet) {
	p[key.Colour][key.Piece] = squares
}

// Occupied returns the union of all keys' squares.
func (p Position) Occupied() SquareSet {
	var all SquareSet
	for _, key := range Keys {
		all |= p.Get(key)
	}
	return all
}

// Validate checks that no square is claimed by two keys.
func (p Position) Validate() error {
	var seen SquareSet
	for _, key := range Keys {
		squares := p.Get(key)
		if overlap := seen & squares; overlap != 0 {
			return fmt.Errorf("%s on %s: %w", key, overlap, errors.ErrOverlappingSquares)
		}
		seen |= squares
	}
	return nil
}

// InitialPosition returns a fresh standard opening layout.
func InitialPosition() Position {
	var p Position
	backRank := []Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < BoardSize; col++ {
		p.Set(B(backRank[col]), p.Get(B(backRank[col])).With(Sq(col, 0)))
		p.Set(B(Pawn), p.Get(B(Pawn)).With(Sq(col, 1)))
		p.Set(W(Pawn), p.Get(W(Pawn)).With(Sq(col, 6)))
		p.Set(W(backRank[col]), p.Get(W(backRank[col])).With(Sq(col, 7)))
	}
	return p
}

// Board owns a position. It knows nothing about the rules; all moves
// are made through the engine package.
type Board struct {
	pos Position
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *Board {
	return &Board{pos: InitialPosition()}
}

// NewBoardFromPosition creates a board holding a copy of pos.
func NewBoardFromPosition(pos Position) *Board {
	return &Board{pos: pos}
}

// IsEmpty reports whether no piece stands on sq.
func (b *Board) IsEmpty(sq Square) bool {
	return !b.pos.Occupied().Has(sq)
}

// IsOccupiedBy reports whether a piece of the given colour stands on sq.
func (b *Board) IsOccupiedBy(sq Square, colour Colour) bool {
	for _, kind := range Kinds {
		if b.pos[colour][kind].Has(sq) {
			return true
		}
	}
	return false
}

// IsOccupiedByOpponent reports whether a piece of the colour opposing
// colour stands on sq.
func (b *Board) IsOccupiedByOpponent(sq Square, colour Colour) bool {
	return b.IsOccupiedBy(sq, colour.Opposite())
}

// PieceAt returns the key standing on sq, if any.
func (b *Board) PieceAt(sq Square) (PieceKey, bool) {
	for _, key := range Keys {
		if b.pos.Get(key).Has(sq) {
			return key, true
		}
	}
	return PieceKey{}, false
}

// KingSquare returns the square of the colour's king. A king may be
// absent after a capture or during a simulation.
func (b *Board) KingSquare(colour Colour) (Square, bool) {
	return b.pos[colour][King].First()
}

// Squares returns the set of squares occupied by key.
func (b *Board) Squares(key PieceKey) SquareSet {
	return b.pos.Get(key)
}

// Add places key on sq.
func (b *Board) Add(key PieceKey, sq Square) {
	b.pos.Set(key, b.pos.Get(key).With(sq))
}

// Remove takes key off sq, reporting whether it was there.
func (b *Board) Remove(key PieceKey, sq Square) bool {
	squares := b.pos.Get(key)
	if !squares.Has(sq) {
		return false
	}
	b.pos.Set(key, squares.Without(sq))
	return true
}

// Pieces enumerates every occupied square, White first, by kind then square.
func (b *Board) Pieces() []Placement {
	var out []Placement
	for _, key := range Keys {
		for _, sq := range b.pos.Get(key).Squares() {
			out = append(out, Placement{Key: key, Square: sq})
		}
	}
	return out
}

// Count returns the number of pieces on the board.
func (b *Board) Count() int {
	return b.pos.Occupied().Len()
}

// Snapshot captures the current position for later restoration.
func (b *Board) Snapshot() Position {
	return b.pos
}

// Restore replaces the position with a previously captured snapshot.
func (b *Board) Restore(p Position) {
	b.pos = p
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}
