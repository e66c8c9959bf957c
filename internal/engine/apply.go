package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// ApplyMove plays a legal move on the board. The move is checked first and
// an illegal move is rejected with an error wrapping errors.ErrIllegalMove,
// leaving the board untouched. promote is consulted when a pawn reaches the
// last rank; a nil promote always chooses a queen.
func ApplyMove(board *chess.Board, m chess.Move, promote PromotionFunc) error {
	if !IsLegal(board, m) {
		return &errors.MoveError{
			Err:      errors.ErrIllegalMove,
			Side:     m.Colour.String(),
			MoveText: m.String(),
		}
	}
	applyMove(board, m, promote)
	return nil
}

// applyMove performs a move that is already known to have a legal shape.
func applyMove(board *chess.Board, m chess.Move, promote PromotionFunc) {
	piece := board.Get(m.From)

	// Remove the pawn captured en passant.
	if piece.Type == chess.Pawn && isEnPassantCapture(board, m) {
		board.Clear(enPassantVictim(m))
	}

	// Set en passant square if double pawn push.
	board.EnPassant = false
	board.EPSquare = chess.Square{}
	if isDoublePawnPush(piece, m) {
		board.EnPassant = true
		board.EPSquare = m.From.Offset(0, sign(m.RankDelta()))
	}

	if isCastle(piece, m) {
		applyCastle(board, m)
	}

	// Move the piece.
	board.Clear(m.From)
	piece.Moved = true
	board.Set(m.To, piece)

	// Handle promotion.
	if piece.Type == chess.Pawn && m.To.Rank == chess.PromotionRank(m.Colour) {
		piece.Type = choosePromotion(promote, m.Colour, m.To)
		board.Set(m.To, piece)
	}

	if m.Colour == chess.Black {
		board.MoveNumber++
	}
	board.ToMove = m.Colour.Opposite()
}

// Describe classifies m as played on board, which must still hold the
// position before the move. The promotion piece is not known until the
// move is applied and is left Empty.
func Describe(board *chess.Board, m chess.Move) chess.Ply {
	piece := board.Get(m.From)
	ply := chess.Ply{
		Move:     m,
		Class:    chess.PieceMove,
		Piece:    piece.Type,
		Captured: board.Get(m.To).Type,
	}

	switch {
	case isCastle(piece, m) && m.FileDelta() > 0:
		ply.Class = chess.KingsideCastle
	case isCastle(piece, m):
		ply.Class = chess.QueensideCastle
	case piece.Type != chess.Pawn:
	case isEnPassantCapture(board, m):
		ply.Class = chess.EnPassantPawnMove
		ply.Captured = chess.Pawn
	case m.To.Rank == chess.PromotionRank(m.Colour):
		ply.Class = chess.PawnMoveWithPromotion
	default:
		ply.Class = chess.PawnMove
	}
	return ply
}
