package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

// legalityCase is a single IsLegal probe on a board built from placements.
type legalityCase struct {
	name   string
	pieces []string
	colour chess.Colour
	move   string
	want   bool
}

func runLegalityCases(t *testing.T, tests []legalityCase) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var board *chess.Board
			if tt.pieces == nil {
				board = chess.NewInitialBoard()
				board.ToMove = tt.colour
			} else {
				board = testutil.MustBoard(t, tt.colour, tt.pieces...)
			}
			m := testutil.MustMove(t, tt.colour, tt.move)
			if got := IsLegal(board, m); got != tt.want {
				t.Errorf("IsLegal(%s) = %v, want %v", tt.move, got, tt.want)
			}
		})
	}
}

func TestIsLegal_InitialPosition(t *testing.T) {
	runLegalityCases(t, []legalityCase{
		{"pawn single push", nil, chess.White, "e2e3", true},
		{"pawn double push", nil, chess.White, "e2e4", true},
		{"pawn triple push", nil, chess.White, "e2e5", false},
		{"pawn sideways", nil, chess.White, "e2d2", false},
		{"knight develops", nil, chess.White, "g1f3", true},
		{"knight straight", nil, chess.White, "g1g3", false},
		{"knight onto own pawn", nil, chess.White, "b1d2", false},
		{"bishop blocked", nil, chess.White, "f1c4", false},
		{"rook blocked", nil, chess.White, "a1a3", false},
		{"queen blocked", nil, chess.White, "d1d3", false},
		{"king onto own piece", nil, chess.White, "e1e2", false},
		{"black pawn push", nil, chess.Black, "e7e5", true},
		{"black pawn backwards", nil, chess.Black, "e7e8", false},
		{"moving opponent's piece", nil, chess.White, "e7e5", false},
		{"moving from empty square", nil, chess.White, "e4e5", false},
	})
}

func TestIsLegal_RejectsMalformedMoves(t *testing.T) {
	board := chess.NewInitialBoard()
	tests := []struct {
		name string
		move chess.Move
	}{
		{"same square", chess.NewMove(chess.White, chess.Sq(4, 1), chess.Sq(4, 1))},
		{"origin off board", chess.NewMove(chess.White, chess.Sq(4, -1), chess.Sq(4, 1))},
		{"destination off board", chess.NewMove(chess.White, chess.Sq(0, 0), chess.Sq(-1, 0))},
		{"no colour", chess.NewMove(chess.NoColour, chess.Sq(4, 1), chess.Sq(4, 3))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if IsLegal(board, tt.move) {
				t.Errorf("IsLegal(%v) = true, want false", tt.move)
			}
		})
	}
}

func TestIsLegal_SlidingPieces(t *testing.T) {
	runLegalityCases(t, []legalityCase{
		{"rook up to blocker", []string{"Ke1", "ke8", "Rd1", "Pd4"}, chess.White, "d1d3", true},
		{"rook past blocker", []string{"Ke1", "ke8", "Rd1", "Pd4"}, chess.White, "d1d5", false},
		{"rook along rank", []string{"Ke1", "ke8", "Rd1"}, chess.White, "d1a1", true},
		{"rook diagonal", []string{"Ke1", "ke8", "Rd1"}, chess.White, "d1e2", false},
		{"bishop captures blocker", []string{"Ke1", "ke8", "Bc1", "pe3"}, chess.White, "c1e3", true},
		{"bishop past blocker", []string{"Ke1", "ke8", "Bc1", "pe3"}, chess.White, "c1f4", false},
		{"bishop straight", []string{"Ke1", "ke8", "Bc1"}, chess.White, "c1c4", false},
		{"queen captures on file", []string{"Kh1", "kh8", "Qd1", "pd4"}, chess.White, "d1d4", true},
		{"queen past capture", []string{"Kh1", "kh8", "Qd1", "pd4"}, chess.White, "d1d5", false},
		{"queen long diagonal", []string{"Kh1", "kh8", "Qa1"}, chess.White, "a1g7", true},
		{"queen knight shape", []string{"Kh1", "kh8", "Qd1"}, chess.White, "d1e3", false},
	})
}

func TestIsLegal_KingSafety(t *testing.T) {
	runLegalityCases(t, []legalityCase{
		{"pinned bishop", []string{"Ke1", "ke8", "Be2", "re7"}, chess.White, "e2d3", false},
		{"king steps out of pin line", []string{"Ke1", "ke8", "Be2", "re7"}, chess.White, "e1d1", true},
		{"pinned rook along pin", []string{"Ke1", "ke8", "Re2", "re7"}, chess.White, "e2e5", true},
		{"pinned rook captures pinner", []string{"Ke1", "ke8", "Re2", "re7"}, chess.White, "e2e7", true},
		{"king into rook file", []string{"Ke1", "ke8", "rd8"}, chess.White, "e1d1", false},
		{"king into rook file diagonally", []string{"Ke1", "ke8", "rd8"}, chess.White, "e1d2", false},
		{"king away from rook", []string{"Ke1", "ke8", "rd8"}, chess.White, "e1f1", true},
		{"kings may not touch", []string{"Ke4", "ke6"}, chess.White, "e4e5", false},
		{"king captures protected piece", []string{"Ke1", "ke8", "rd2", "rd8"}, chess.White, "e1d2", false},
		{"king captures loose piece", []string{"Ke1", "ke8", "rd2"}, chess.White, "e1d2", true},
		{"king retreats along checking ray", []string{"Ke2", "ke8", "ra2"}, chess.White, "e2f2", false},
	})
}

func TestIsLegal_MustAnswerCheck(t *testing.T) {
	pieces := []string{"Ke1", "ke8", "re5", "Nd3", "Bb1"}
	runLegalityCases(t, []legalityCase{
		{"knight captures checker", pieces, chess.White, "d3e5", true},
		{"knight ignores check", pieces, chess.White, "d3f4", false},
		{"bishop cut off from blocking square", pieces, chess.White, "b1e4", false},
		{"rook blocks", append(pieces, "Ra4"), chess.White, "a4e4", true},
		{"king steps aside", pieces, chess.White, "e1d1", true},
		{"king stays on file", pieces, chess.White, "e1e2", false},
	})
}

// rotate returns the board turned half a circle with the colours swapped,
// so that White's position becomes Black's seen from the other side.
func rotate(board *chess.Board) *chess.Board {
	r := chess.NewBoard()
	r.ToMove = board.ToMove.Opposite()
	for file := 0; file < chess.BoardSize; file++ {
		for rank := 0; rank < chess.BoardSize; rank++ {
			piece := board.Squares[file][rank]
			if piece.IsEmpty() {
				continue
			}
			piece.Colour = piece.Colour.Opposite()
			r.Set(rotateSquare(chess.Sq(file, rank)), piece)
		}
	}
	return r
}

func rotateSquare(sq chess.Square) chess.Square {
	return chess.Sq(chess.BoardSize-1-sq.File, chess.BoardSize-1-sq.Rank)
}

func TestIsLegal_RotationSymmetry(t *testing.T) {
	positions := [][]string{
		{"Kg1", "kg8", "Rd4", "nf6", "Bc2", "qh5", "Nb7", "rb1*"},
		{"Kc3", "ka8", "Qe4", "bb7", "Ng5", "re8", "Bf1", "nd5"},
		{"Ka1", "kh8", "Rh2", "rg7", "Bd4", "bd5", "Nc6", "qe6"},
	}

	for i, pieces := range positions {
		board := testutil.MustBoard(t, chess.White, pieces...)
		rotated := rotate(board)

		for _, from := range board.Occupied(chess.White) {
			switch board.Get(from).Type {
			case chess.King, chess.Pawn:
				continue
			}
			for rank := 0; rank < chess.BoardSize; rank++ {
				for file := 0; file < chess.BoardSize; file++ {
					to := chess.Sq(file, rank)
					m := chess.NewMove(chess.White, from, to)
					rm := chess.NewMove(chess.Black, rotateSquare(from), rotateSquare(to))
					if got, want := IsLegal(rotated, rm), IsLegal(board, m); got != want {
						t.Errorf("position %d: IsLegal(%v) = %v but rotated IsLegal(%v) = %v", i, m, want, rm, got)
					}
				}
			}
		}
	}
}

func TestLegalMoves(t *testing.T) {
	t.Run("initial position", func(t *testing.T) {
		board := chess.NewInitialBoard()
		for _, colour := range []chess.Colour{chess.White, chess.Black} {
			if got := len(LegalMoves(board, colour)); got != 20 {
				t.Errorf("len(LegalMoves(%v)) = %d, want 20", colour, got)
			}
		}
	})

	t.Run("knight from corner", func(t *testing.T) {
		board := testutil.MustBoard(t, chess.White, "Ke1", "ke8", "Na1")
		var got []string
		for _, m := range LegalMovesFrom(board, testutil.MustSquare(t, "a1")) {
			got = append(got, m.String())
		}
		testutil.AssertEqual(t, got, []string{"a1c2", "a1b3"})
	})

	t.Run("empty square", func(t *testing.T) {
		board := chess.NewInitialBoard()
		if got := LegalMovesFrom(board, testutil.MustSquare(t, "e4")); got != nil {
			t.Errorf("LegalMovesFrom(e4) = %v, want nil", got)
		}
	})

	t.Run("every listed move is legal", func(t *testing.T) {
		board := testutil.MustBoard(t, chess.Black, "Ke1", "ke8", "ra8", "rh8", "pd4", "Pe4", "Qc2")
		board.EnPassant = true
		board.EPSquare = testutil.MustSquare(t, "e3")
		moves := LegalMoves(board, chess.Black)
		if len(moves) == 0 {
			t.Fatal("LegalMoves() returned no moves")
		}
		for _, m := range moves {
			if !IsLegal(board, m) {
				t.Errorf("LegalMoves() listed illegal move %v", m)
			}
		}
	})

	t.Run("HasLegalMoves agrees", func(t *testing.T) {
		board := testutil.MustBoard(t, chess.Black, "kh8", "Kf7", "Qg6")
		if HasLegalMoves(board, chess.Black) {
			t.Error("HasLegalMoves(Black) = true with no legal moves")
		}
		if !HasLegalMoves(board, chess.White) {
			t.Error("HasLegalMoves(White) = false")
		}
	})
}
