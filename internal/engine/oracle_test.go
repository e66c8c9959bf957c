package engine

import (
	"sort"
	"testing"

	nchess "github.com/notnil/chess"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

// Each line is replayed on both engines and the legal move lists are
// compared after every ply. Underpromotions are the same from-to move, so
// the reference list is reduced to distinct squares.
var oracleLines = []struct {
	name  string
	moves []string
}{
	{"italian with short castling", []string{"e2e4", "e7e5", "g1f3", "b8c6", "f1c4", "f8c5", "e1g1", "g8f6", "d2d3", "e8g8"}},
	{"queenside castling", []string{"d2d4", "d7d5", "b1c3", "b8c6", "c1f4", "c8f5", "d1d2", "d8d7", "e1c1", "e8c8"}},
	{"en passant", []string{"e2e4", "a7a6", "e4e5", "d7d5", "e5d6", "c7d6"}},
	{"promotion by capture", []string{"a2a4", "b7b5", "a4b5", "a7a6", "b5a6", "c8b7", "a6b7", "g8f6", "b7a8q"}},
	{"checks and pins", []string{"e2e4", "e7e5", "d1h5", "b8c6", "f1c4", "g8f6", "h5f7"}},
	{"fool's mate", []string{"f2f3", "e7e5", "g2g4", "d8h4"}},
}

func TestLegalMoves_MatchReference(t *testing.T) {
	for _, line := range oracleLines {
		t.Run(line.name, func(t *testing.T) {
			board := chess.NewInitialBoard()
			ref := nchess.NewGame(nchess.UseNotation(nchess.UCINotation{}))

			compareMoves(t, "start", board, ref)
			for _, text := range line.moves {
				m := testutil.MustMove(t, board.ToMove, text[:4])
				if err := ApplyMove(board, m, QueenPromotion); err != nil {
					t.Fatalf("ApplyMove(%s) error: %v", text, err)
				}
				if err := ref.MoveStr(text); err != nil {
					t.Fatalf("reference rejected %s: %v", text, err)
				}
				compareMoves(t, text, board, ref)
			}
		})
	}
}

func TestClassify_MatchesReference(t *testing.T) {
	board := chess.NewInitialBoard()
	ref := nchess.NewGame(nchess.UseNotation(nchess.UCINotation{}))
	for _, text := range oracleLines[len(oracleLines)-1].moves {
		if err := ApplyMove(board, testutil.MustMove(t, board.ToMove, text), nil); err != nil {
			t.Fatalf("ApplyMove(%s) error: %v", text, err)
		}
		if err := ref.MoveStr(text); err != nil {
			t.Fatalf("reference rejected %s: %v", text, err)
		}
	}

	if ref.Method() != nchess.Checkmate {
		t.Fatalf("reference method = %v, want Checkmate", ref.Method())
	}
	testutil.AssertEqual(t, Classify(board, board.ToMove), chess.Checkmate)
}

func compareMoves(t *testing.T, after string, board *chess.Board, ref *nchess.Game) {
	t.Helper()

	var got []string
	for _, m := range LegalMoves(board, board.ToMove) {
		got = append(got, m.String())
	}
	sort.Strings(got)

	seen := make(map[string]bool)
	var want []string
	for _, m := range ref.ValidMoves() {
		text := m.S1().String() + m.S2().String()
		if !seen[text] {
			seen[text] = true
			want = append(want, text)
		}
	}
	sort.Strings(want)

	testutil.AssertEqual(t, got, want, "legal moves after "+after)
}
