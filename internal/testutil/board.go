package testutil

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

var pieceLetters = map[byte]chess.PieceType{
	'K': chess.King,
	'Q': chess.Queen,
	'R': chess.Rook,
	'B': chess.Bishop,
	'N': chess.Knight,
	'P': chess.Pawn,
}

// MustSquare parses a square name such as "e4", failing the test otherwise.
func MustSquare(t testing.TB, name string) chess.Square {
	t.Helper()
	if len(name) != 2 {
		t.Fatalf("bad square %q", name)
	}
	sq := chess.Sq(int(name[0])-chess.FileBase, int(name[1])-chess.RankBase)
	if !sq.Valid() {
		t.Fatalf("bad square %q", name)
	}
	return sq
}

// MustMove builds a move from coordinate text such as "e2e4".
func MustMove(t testing.TB, colour chess.Colour, text string) chess.Move {
	t.Helper()
	if len(text) != 4 {
		t.Fatalf("bad move %q", text)
	}
	return chess.NewMove(colour, MustSquare(t, text[:2]), MustSquare(t, text[2:]))
}

// MustBoard builds a board with toMove to play and the given pieces. Each
// placement is a piece letter, uppercase for White and lowercase for Black,
// followed by a square, e.g. "Ke1" or "pd7". A trailing '*' marks the piece
// as having moved.
func MustBoard(t testing.TB, toMove chess.Colour, placements ...string) *chess.Board {
	t.Helper()
	b := chess.NewBoard()
	b.ToMove = toMove
	for _, p := range placements {
		if len(p) != 3 && !(len(p) == 4 && p[3] == '*') {
			t.Fatalf("bad placement %q", p)
		}
		letter := p[0]
		colour := chess.White
		if letter >= 'a' && letter <= 'z' {
			colour = chess.Black
			letter -= 'a' - 'A'
		}
		pieceType, ok := pieceLetters[letter]
		if !ok {
			t.Fatalf("bad piece letter in %q", p)
		}
		sq := MustSquare(t, p[1:3])
		if !b.Get(sq).IsEmpty() {
			t.Fatalf("square %s placed twice", sq)
		}
		b.Set(sq, chess.Piece{Type: pieceType, Colour: colour, Moved: len(p) == 4})
	}
	return b
}
