package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// pawnShape accepts single and double pushes onto empty squares, diagonal
// captures of enemy pieces and en passant captures.
func pawnShape(board *chess.Board, m chess.Move) bool {
	dir := chess.ColourOffset(m.Colour)
	colDiff := m.FileDelta()
	rankDiff := m.RankDelta()
	target := board.Get(m.To)

	switch {
	case colDiff == 0 && rankDiff == dir:
		return target.IsEmpty()

	case colDiff == 0 && rankDiff == 2*dir:
		return m.From.Rank == chess.PawnRank(m.Colour) &&
			board.Get(m.From.Offset(0, dir)).IsEmpty() &&
			target.IsEmpty()

	case abs(colDiff) == 1 && rankDiff == dir:
		if !target.IsEmpty() {
			return target.Colour == m.Colour.Opposite()
		}
		return isEnPassantCapture(board, m)
	}

	return false
}

// isEnPassantCapture reports whether a diagonal pawn step onto an empty
// square captures the enemy pawn that has just made a double step.
func isEnPassantCapture(board *chess.Board, m chess.Move) bool {
	if !board.EnPassant || m.To != board.EPSquare {
		return false
	}
	if !board.Get(m.To).IsEmpty() {
		return false
	}
	return board.Get(enPassantVictim(m)).Is(m.Colour.Opposite(), chess.Pawn)
}

// enPassantVictim returns the square of the pawn removed by an en passant
// capture: beside the capturing pawn, on the destination file.
func enPassantVictim(m chess.Move) chess.Square {
	return chess.Sq(m.To.File, m.From.Rank)
}

// isDoublePawnPush reports whether m advances a pawn two ranks.
func isDoublePawnPush(piece chess.Piece, m chess.Move) bool {
	return piece.Type == chess.Pawn && m.FileDelta() == 0 && abs(m.RankDelta()) == 2
}

// PromotionPieces lists what a pawn may become, strongest first.
var PromotionPieces = [4]chess.PieceType{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}

// IsPromotion reports whether m moves a pawn onto its last rank.
func IsPromotion(board *chess.Board, m chess.Move) bool {
	return board.Get(m.From).Type == chess.Pawn && m.To.Rank == chess.PromotionRank(m.Colour)
}

// PromotionFunc chooses the piece a pawn becomes on reaching the last rank.
// Answers other than Queen, Rook, Bishop or Knight are replaced by Queen.
type PromotionFunc func(colour chess.Colour, at chess.Square) chess.PieceType

// QueenPromotion always promotes to a queen.
func QueenPromotion(chess.Colour, chess.Square) chess.PieceType {
	return chess.Queen
}

// PromoteTo returns a PromotionFunc that always answers p.
func PromoteTo(p chess.PieceType) PromotionFunc {
	return func(chess.Colour, chess.Square) chess.PieceType {
		return p
	}
}

// choosePromotion asks promote for a piece type, defaulting to Queen.
func choosePromotion(promote PromotionFunc, colour chess.Colour, at chess.Square) chess.PieceType {
	if promote == nil {
		return chess.Queen
	}
	if choice := promote(colour, at); choice.IsPromotion() {
		return choice
	}
	return chess.Queen
}
