// Package chess provides core chess types and the board state.
package chess

import (
	"fmt"

	"github.com/lgbarn/chessplay-go/internal/errors"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
	NumColours
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Letter returns the FEN side-to-move letter for the colour.
func (c Colour) Letter() byte {
	if c == White {
		return 'w'
	}
	return 'b'
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Piece represents a chess piece kind.
type Piece int

const (
	NoPiece Piece = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceKinds
)

// Kinds lists every piece kind in board-enumeration order.
var Kinds = [...]Piece{Pawn, Knight, Bishop, Rook, Queen, King}

// String returns the string representation of a piece.
func (p Piece) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece (uppercase).
func (p Piece) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// PieceFromLetter converts a piece letter in either case to a piece kind.
func PieceFromLetter(c byte) Piece {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	default:
		return NoPiece
	}
}

// PieceKey identifies a class of pieces: every piece of one kind and colour.
type PieceKey struct {
	Piece  Piece
	Colour Colour
}

// W creates a white piece key.
func W(piece Piece) PieceKey {
	return PieceKey{Piece: piece, Colour: White}
}

// B creates a black piece key.
func B(piece Piece) PieceKey {
	return PieceKey{Piece: piece, Colour: Black}
}

// String returns e.g. "White Knight".
func (k PieceKey) String() string {
	return k.Colour.String() + " " + k.Piece.String()
}

// FENLetter returns the FEN letter for the key: uppercase for White.
func (k PieceKey) FENLetter() byte {
	letter := k.Piece.Letter()
	if k.Colour == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// Keys lists all twelve piece keys, White first.
var Keys = func() []PieceKey {
	keys := make([]PieceKey, 0, 2*len(Kinds))
	for _, colour := range []Colour{White, Black} {
		for _, kind := range Kinds {
			keys = append(keys, PieceKey{Piece: kind, Colour: colour})
		}
	}
	return keys
}()

// Constants for board dimensions and notation.
const (
	BoardSize = 8

	RankBase = '1'
	ColBase  = 'a'
)

// Square is a board coordinate. Row 0 is rank 8 and row 7 is rank 1;
// column 0 is file a.
type Square struct {
	Col int
	Row int
}

// Sq is shorthand for Square{Col: col, Row: row}.
func Sq(col, row int) Square {
	return Square{Col: col, Row: row}
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s.Col >= 0 && s.Col < BoardSize && s.Row >= 0 && s.Row < BoardSize
}

// Offset returns the square displaced by (dc, dr). The result may be off the board.
func (s Square) Offset(dc, dr int) Square {
	return Square{Col: s.Col + dc, Row: s.Row + dr}
}

// index maps a valid square to its bit position.
func (s Square) index() uint {
	return uint(s.Row*BoardSize + s.Col)
}

// String returns the algebraic name of the square, e.g. "e2".
func (s Square) String() string {
	if !s.Valid() {
		return fmt.Sprintf("(%d,%d)", s.Col, s.Row)
	}
	return string([]byte{byte(ColBase + s.Col), byte(RankBase + BoardSize - 1 - s.Row)})
}

// ParseSquare converts algebraic notation ("e2") to a square.
func ParseSquare(name string) (Square, error) {
	if len(name) != 2 {
		return Square{}, fmt.Errorf("%q: %w", name, errors.ErrInvalidSquare)
	}
	file := name[0] | 0x20 // fold to lower case
	rank := name[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return Square{}, fmt.Errorf("%q: %w", name, errors.ErrInvalidSquare)
	}
	return Square{Col: int(file - ColBase), Row: BoardSize - 1 - int(rank-RankBase)}, nil
}

// Placement is a piece key standing on a square.
type Placement struct {
	Key    PieceKey
	Square Square
}

// String returns e.g. "White Knight b1".
func (p Placement) String() string {
	return p.Key.String() + " " + p.Square.String()
}
