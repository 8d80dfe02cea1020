// Package hashing detects repeated positions in a batch of positions.
package hashing

import (
	"math/rand"

	"github.com/lgbarn/chessplay-go/internal/chess"
)

var (
	// pieceKeys[colour][piece][row*8+col]
	pieceKeys   [2][chess.King + 1][chess.BoardSize * chess.BoardSize]uint64
	whiteToMove uint64
)

func init() {
	// Fixed seed: hashes are stable across runs.
	rng := rand.New(rand.NewSource(0x2f6b8e31))
	for c := range pieceKeys {
		for p := range pieceKeys[c] {
			for sq := range pieceKeys[c][p] {
				pieceKeys[c][p][sq] = rng.Uint64()
			}
		}
	}
	whiteToMove = rng.Uint64()
}

// Zobrist returns the Zobrist hash of the position with toMove to play.
func Zobrist(board *chess.Board, toMove chess.Colour) uint64 {
	var hash uint64
	for _, p := range board.Pieces() {
		hash ^= pieceKeys[p.Key.Colour][p.Key.Piece][p.Square.Row*chess.BoardSize+p.Square.Col]
	}
	if toMove == chess.White {
		hash ^= whiteToMove
	}
	return hash
}

// Signature identifies a position. FEN settles Zobrist collisions.
type Signature struct {
	Hash uint64
	FEN  string
}

// DuplicateDetector remembers the first line each position appeared on.
// It is not safe for concurrent use.
type DuplicateDetector struct {
	// hashTable maps a hash to every distinct position that produced it
	hashTable      map[uint64][]entry
	duplicateCount int
}

type entry struct {
	fen  string
	line int
}

// NewDuplicateDetector creates an empty detector.
func NewDuplicateDetector() *DuplicateDetector {
	return &DuplicateDetector{hashTable: make(map[uint64][]entry)}
}

// CheckAndAdd records sig as seen on line. If the position was seen before
// it returns the earlier line and true.
func (d *DuplicateDetector) CheckAndAdd(sig Signature, line int) (int, bool) {
	for _, e := range d.hashTable[sig.Hash] {
		if e.fen == sig.FEN {
			d.duplicateCount++
			return e.line, true
		}
	}
	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], entry{fen: sig.FEN, line: line})
	return 0, false
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of distinct positions seen.
func (d *DuplicateDetector) UniqueCount() int {
	count := 0
	for _, entries := range d.hashTable {
		count += len(entries)
	}
	return count
}

// Reset clears the detector.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]entry)
	d.duplicateCount = 0
}
