package hashing

import (
	"testing"

	"github.com/lgbarn/chessplay-go/internal/chess"
	"github.com/lgbarn/chessplay-go/internal/testutil"
)

func TestZobristHashConsistency(t *testing.T) {
	board1 := chess.NewInitialBoard()
	board2 := chess.NewInitialBoard()

	hash1 := Zobrist(board1, chess.White)
	hash2 := Zobrist(board2, chess.White)
	if hash1 != hash2 {
		t.Errorf("Identical boards produced different hashes: %x != %x", hash1, hash2)
	}
}

func TestZobristHashDifferentPositions(t *testing.T) {
	board1 := chess.NewInitialBoard()
	board2 := chess.NewInitialBoard()
	board2.Remove(chess.W(chess.Pawn), testutil.Sq(t, "e2"))
	board2.Add(chess.W(chess.Pawn), testutil.Sq(t, "e4"))

	if Zobrist(board1, chess.White) == Zobrist(board2, chess.White) {
		t.Error("Different positions produced the same hash")
	}
}

func TestZobristIgnoresMoveOrder(t *testing.T) {
	// Knights out and back in lands on the same hash as the opening.
	board := chess.NewInitialBoard()
	start := Zobrist(board, chess.White)

	g1, f3 := testutil.Sq(t, "g1"), testutil.Sq(t, "f3")
	board.Remove(chess.W(chess.Knight), g1)
	board.Add(chess.W(chess.Knight), f3)
	if Zobrist(board, chess.White) == start {
		t.Fatal("moving a knight did not change the hash")
	}
	board.Remove(chess.W(chess.Knight), f3)
	board.Add(chess.W(chess.Knight), g1)
	testutil.AssertEqual(t, Zobrist(board, chess.White), start)
}

func TestSideToMoveAffectsHash(t *testing.T) {
	board := chess.NewInitialBoard()
	if Zobrist(board, chess.White) == Zobrist(board, chess.Black) {
		t.Error("Same position with different side to move should have different hashes")
	}
}

func TestZobristEmptyBoard(t *testing.T) {
	testutil.AssertEqual(t, Zobrist(chess.NewBoard(), chess.Black), uint64(0))
}

func signature(t *testing.T, fen string) Signature {
	t.Helper()
	board, toMove := testutil.MustBoard(t, fen)
	return Signature{Hash: Zobrist(board, toMove), FEN: chess.BoardToFEN(board, toMove, 1)}
}

func TestDuplicateDetector(t *testing.T) {
	detector := NewDuplicateDetector()
	sig := signature(t, chess.InitialFEN)

	if _, dup := detector.CheckAndAdd(sig, 3); dup {
		t.Error("First position was marked as duplicate")
	}
	first, dup := detector.CheckAndAdd(sig, 7)
	if !dup {
		t.Fatal("Duplicate position was not detected")
	}
	testutil.AssertEqual(t, first, 3)
	testutil.AssertEqual(t, detector.DuplicateCount(), 1)
	testutil.AssertEqual(t, detector.UniqueCount(), 1)
}

func TestDuplicateDetectorDifferentPositions(t *testing.T) {
	detector := NewDuplicateDetector()

	detector.CheckAndAdd(signature(t, chess.InitialFEN), 1)
	detector.CheckAndAdd(signature(t, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b - - 0 1"), 2)
	detector.CheckAndAdd(signature(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b - - 0 1"), 3)

	testutil.AssertEqual(t, detector.DuplicateCount(), 0)
	testutil.AssertEqual(t, detector.UniqueCount(), 3)
}

func TestDuplicateDetectorCollision(t *testing.T) {
	// Two positions forced onto one hash are still told apart by FEN.
	detector := NewDuplicateDetector()
	a := Signature{Hash: 42, FEN: "4k3/8/8/8/8/8/8/4K3 w - - 0 1"}
	b := Signature{Hash: 42, FEN: "4k3/8/8/8/8/8/8/3K4 w - - 0 1"}

	detector.CheckAndAdd(a, 1)
	if _, dup := detector.CheckAndAdd(b, 2); dup {
		t.Error("hash collision reported as duplicate")
	}
	first, dup := detector.CheckAndAdd(b, 5)
	testutil.AssertTrue(t, dup, "second b is a duplicate")
	testutil.AssertEqual(t, first, 2)
}

func TestDuplicateDetectorReset(t *testing.T) {
	detector := NewDuplicateDetector()
	sig := signature(t, chess.InitialFEN)

	detector.CheckAndAdd(sig, 1)
	detector.CheckAndAdd(sig, 2)
	testutil.AssertEqual(t, detector.DuplicateCount(), 1)

	detector.Reset()
	testutil.AssertEqual(t, detector.DuplicateCount(), 0)
	testutil.AssertEqual(t, detector.UniqueCount(), 0)
}
