package hashing

import (
	"sync"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestZobristHashConsistency(t *testing.T) {
	hash1 := GenerateZobristHash(chess.NewInitialBoard())
	hash2 := GenerateZobristHash(chess.NewInitialBoard())
	if hash1 != hash2 {
		t.Errorf("Identical boards produced different hashes: %x != %x", hash1, hash2)
	}
}

func TestZobristHashDistinguishes(t *testing.T) {
	base := func() *chess.Board {
		return testutil.MustBoard(t, chess.White, "Ke1", "Rh1", "ke8", "pd4")
	}
	baseHash := GenerateZobristHash(base())

	tests := []struct {
		name   string
		modify func(b *chess.Board)
	}{
		{"side to move", func(b *chess.Board) { b.ToMove = chess.Black }},
		{"piece moved", func(b *chess.Board) {
			b.Clear(testutil.MustSquare(t, "h1"))
			b.Set(testutil.MustSquare(t, "h2"), chess.W(chess.Rook))
		}},
		{"castling right lost", func(b *chess.Board) {
			sq := testutil.MustSquare(t, "h1")
			p := b.Get(sq)
			p.Moved = true
			b.Set(sq, p)
		}},
		{"en passant", func(b *chess.Board) {
			b.EnPassant = true
			b.EPSquare = testutil.MustSquare(t, "e3")
		}},
		{"piece colour", func(b *chess.Board) { b.Set(testutil.MustSquare(t, "d4"), chess.W(chess.Pawn)) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := base()
			tt.modify(b)
			if GenerateZobristHash(b) == baseHash {
				t.Error("different positions produced the same hash")
			}
		})
	}
}

func TestZobristHashTransposition(t *testing.T) {
	// The same position reached by different move orders.
	a := testutil.MustBoard(t, chess.White, "Ke1", "ke8", "Nf3*", "nc6*")
	b := testutil.MustBoard(t, chess.White, "nc6*", "Nf3*", "ke8", "Ke1")
	testutil.AssertEqual(t, GenerateZobristHash(a), GenerateZobristHash(b))
}

func TestNodeTable(t *testing.T) {
	table := NewNodeTable(0)
	if _, ok := table.Lookup(1, 3); ok {
		t.Fatal("Lookup on an empty table succeeded")
	}

	table.Store(1, 3, 8902)
	nodes, ok := table.Lookup(1, 3)
	testutil.AssertTrue(t, ok, "Lookup after Store")
	testutil.AssertEqual(t, nodes, uint64(8902))

	if _, ok := table.Lookup(1, 2); ok {
		t.Error("Lookup matched a different depth")
	}
	testutil.AssertEqual(t, table.Hits(), 1)
	testutil.AssertEqual(t, table.Len(), 1)
}

func TestNodeTable_Capacity(t *testing.T) {
	table := NewNodeTable(2)
	table.Store(1, 1, 10)
	table.Store(2, 1, 20)
	testutil.AssertTrue(t, table.IsFull(), "table should be full")

	table.Store(3, 1, 30)
	testutil.AssertEqual(t, table.Len(), 2)
	if _, ok := table.Lookup(3, 1); ok {
		t.Error("entry stored beyond capacity")
	}
}

func TestThreadSafeNodeTable_Concurrent(t *testing.T) {
	table := NewThreadSafeNodeTable(0)

	const numWorkers = 10
	const perWorker = 100

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				hash := uint64(w*perWorker + i)
				table.Store(hash, 2, hash*2)
				if nodes, ok := table.Lookup(hash, 2); !ok || nodes != hash*2 {
					t.Errorf("Lookup(%d) = %d, %v", hash, nodes, ok)
				}
			}
		}(w)
	}
	wg.Wait()

	testutil.AssertEqual(t, table.Len(), numWorkers*perWorker)
	testutil.AssertEqual(t, table.Hits(), numWorkers*perWorker)
	testutil.AssertFalse(t, table.IsFull(), "unlimited table is never full")
}

func BenchmarkGenerateZobristHash(b *testing.B) {
	board := chess.NewInitialBoard()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		GenerateZobristHash(board)
	}
}
