package chess

import (
	"math/bits"
	"strings"
)

// SquareSet is a set of squares stored as a 64-bit occupancy mask,
// bit row*8+col per square.
type SquareSet uint64

// EmptySet contains no squares.
const EmptySet SquareSet = 0

// SetOf builds a set from the given squares, ignoring off-board ones.
func SetOf(squares ...Square) SquareSet {
	var s SquareSet
	for _, sq := range squares {
		s = s.With(sq)
	}
	return s
}

// Has reports whether sq is in the set.
func (s SquareSet) Has(sq Square) bool {
	if !sq.Valid() {
		return false
	}
	return s&(1<<sq.index()) != 0
}

// With returns the set plus sq.
func (s SquareSet) With(sq Square) SquareSet {
	if !sq.Valid() {
		return s
	}
	return s | 1<<sq.index()
}

// Without returns the set minus sq.
func (s SquareSet) Without(sq Square) SquareSet {
	if !sq.Valid() {
		return s
	}
	return s &^ (1 << sq.index())
}

// Len returns the number of squares in the set.
func (s SquareSet) Len() int {
	return bits.OnesCount64(uint64(s))
}

// First returns the lowest-indexed square in the set.
func (s SquareSet) First() (Square, bool) {
	if s == 0 {
		return Square{}, false
	}
	return squareAt(bits.TrailingZeros64(uint64(s))), true
}

// Squares lists the set's squares in ascending index order (a8..h8, a7..h1).
func (s SquareSet) Squares() []Square {
	out := make([]Square, 0, s.Len())
	for rest := uint64(s); rest != 0; rest &= rest - 1 {
		out = append(out, squareAt(bits.TrailingZeros64(rest)))
	}
	return out
}

// String lists the squares, e.g. "{a3 c3}".
func (s SquareSet) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, sq := range s.Squares() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(sq.String())
	}
	sb.WriteByte('}')
	return sb.String()
}

func squareAt(i int) Square {
	return Square{Col: i % BoardSize, Row: i / BoardSize}
}
