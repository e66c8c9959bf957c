package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Classify decides whether the given colour, about to move, is checkmated,
// stalemated or can play on.
func Classify(board *chess.Board, colour chess.Colour) chess.Status {
	if HasLegalMoves(board, colour) {
		return chess.Ongoing
	}
	if IsInCheck(board, colour) {
		return chess.Checkmate
	}
	return chess.Stalemate
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(board *chess.Board) bool {
	return Classify(board, board.ToMove) == chess.Checkmate
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(board *chess.Board) bool {
	return Classify(board, board.ToMove) == chess.Stalemate
}
