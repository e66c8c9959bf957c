package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

var benchPositions = map[string][]string{
	"Endgame":  {"kf7", "Kf2", "Re1"},
	"Castling": {"ke8", "ra8", "rh8", "Ke1", "Ra1", "Rh1", "Pa2", "Pb2", "Pg2", "Ph2", "pa7", "pb7", "pg7", "ph7"},
	"Complex":  perftPositions[0].pieces,
}

func benchBoard(b *testing.B, name string) *chess.Board {
	b.Helper()
	if name == "Initial" {
		return chess.NewInitialBoard()
	}
	return testutil.MustBoard(b, chess.White, benchPositions[name]...)
}

var benchNames = []string{"Initial", "Endgame", "Castling", "Complex"}

func BenchmarkLegalMoves(b *testing.B) {
	for _, name := range benchNames {
		b.Run(name, func(b *testing.B) {
			board := benchBoard(b, name)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				LegalMoves(board, chess.White)
			}
		})
	}
}

func BenchmarkIsInCheck(b *testing.B) {
	for _, name := range benchNames {
		b.Run(name, func(b *testing.B) {
			board := benchBoard(b, name)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				IsInCheck(board, chess.White)
			}
		})
	}
}

func BenchmarkApplyMove(b *testing.B) {
	cases := []struct {
		name string
		pos  string
		move chess.Move
	}{
		{"PawnMove", "Initial", chess.NewMove(chess.White, chess.Sq(4, 1), chess.Sq(4, 3))},
		{"PieceMove", "Initial", chess.NewMove(chess.White, chess.Sq(6, 0), chess.Sq(5, 2))},
		{"Castle", "Castling", chess.NewMove(chess.White, chess.Sq(4, 0), chess.Sq(6, 0))},
	}

	for _, tc := range cases {
		b.Run(tc.name, func(b *testing.B) {
			original := benchBoard(b, tc.pos)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				board := original.Copy()
				ApplyMove(board, tc.move, nil)
			}
		})
	}
}

func BenchmarkClassify(b *testing.B) {
	for _, name := range benchNames {
		b.Run(name, func(b *testing.B) {
			board := benchBoard(b, name)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				Classify(board, chess.White)
			}
		})
	}
}

func BenchmarkPerft3(b *testing.B) {
	board := chess.NewInitialBoard()
	for i := 0; i < b.N; i++ {
		Perft(board, 3)
	}
}
