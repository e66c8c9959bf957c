// Package engine provides chess move validation and board manipulation.
package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// shapeRule reports whether a move has a valid shape for the piece on its
// origin square, including path clearance, but ignoring whether it leaves
// the mover's king attacked.
type shapeRule func(board *chess.Board, m chess.Move) bool

// shapeRules holds one rule per piece type. Empty has no rule.
var shapeRules = [chess.NumPieceTypes]shapeRule{
	chess.Pawn:   pawnShape,
	chess.Knight: knightShape,
	chess.Bishop: bishopShape,
	chess.Rook:   rookShape,
	chess.Queen:  queenShape,
	chess.King:   kingShape,
}

// kingShape accepts single steps in any direction and castling.
func kingShape(board *chess.Board, m chess.Move) bool {
	if abs(m.FileDelta()) <= 1 && abs(m.RankDelta()) <= 1 {
		return true
	}
	return castleShape(board, m)
}

// IsLegal returns true if m is a legal move on board: both squares are on
// the board and distinct, the mover owns the piece and is not capturing its
// own piece, the piece can make the move, and the mover's king is not left
// attacked. The board is not modified.
func IsLegal(board *chess.Board, m chess.Move) bool {
	if !m.From.Valid() || !m.To.Valid() || m.From == m.To || !m.Colour.Valid() {
		return false
	}

	piece := board.Get(m.From)
	if piece.IsEmpty() || piece.Colour != m.Colour {
		return false
	}
	if board.Get(m.To).Colour == m.Colour {
		return false
	}

	rule := shapeRules[piece.Type]
	if rule == nil || !rule(board, m) {
		return false
	}

	return !leavesKingInCheck(board, m)
}
