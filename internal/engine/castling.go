package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Files of the pieces involved in castling.
const (
	kingFile          = 4
	kingsideRookFile  = chess.BoardSize - 1
	queensideRookFile = 0
)

// castleShape validates a two-file king move along the home rank: the king
// and the corner rook are both unmoved, every square between them is empty,
// the king is not in check and does not pass through an attacked square.
// Whether the destination is attacked is left to the self-check filter.
func castleShape(board *chess.Board, m chess.Move) bool {
	home := chess.HomeRank(m.Colour)
	if m.From != chess.Sq(kingFile, home) || m.To.Rank != home || abs(m.FileDelta()) != 2 {
		return false
	}

	king := board.Get(m.From)
	if !king.Is(m.Colour, chess.King) || king.Moved {
		return false
	}

	rookFrom, _ := castlingRookSquares(m)
	rook := board.Get(rookFrom)
	if !rook.Is(m.Colour, chess.Rook) || rook.Moved {
		return false
	}

	if !isPathClear(board, m.From, rookFrom) {
		return false
	}

	enemy := m.Colour.Opposite()
	if IsSquareAttacked(board, m.From, enemy) {
		return false
	}
	passed := m.From.Offset(sign(m.FileDelta()), 0)
	return !IsSquareAttacked(board, passed, enemy)
}

// isCastle reports whether m is a king move of two files.
func isCastle(piece chess.Piece, m chess.Move) bool {
	return piece.Type == chess.King && m.RankDelta() == 0 && abs(m.FileDelta()) == 2
}

// castlingRookSquares returns where the rook starts and where it lands:
// on the square the king crosses.
func castlingRookSquares(m chess.Move) (from, to chess.Square) {
	home := m.From.Rank
	if m.FileDelta() > 0 {
		return chess.Sq(kingsideRookFile, home), chess.Sq(m.To.File-1, home)
	}
	return chess.Sq(queensideRookFile, home), chess.Sq(m.To.File+1, home)
}

// applyCastle relocates the rook for a castling move. The king itself is
// moved by the caller.
func applyCastle(board *chess.Board, m chess.Move) {
	rookFrom, rookTo := castlingRookSquares(m)
	rook := board.Get(rookFrom)
	rook.Moved = true
	board.Clear(rookFrom)
	board.Set(rookTo, rook)
}
