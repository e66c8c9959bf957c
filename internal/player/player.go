// Package player provides the strategies that choose moves for one side:
// a human reading coordinate moves from a stream and a computer player
// picking uniformly among the legal moves.
package player

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Player proposes moves for one side of a game.
type Player interface {
	// Name returns the name shown in prompts and results.
	Name() string

	// ChooseMove returns the move to play for colour. The promotion is
	// chess.Empty when the player leaves the choice to ChoosePromotion.
	ChooseMove(board *chess.Board, colour chess.Colour) (chess.Move, chess.PieceType, error)

	// ChoosePromotion returns the piece a pawn of colour becomes on sq.
	ChoosePromotion(colour chess.Colour, sq chess.Square) chess.PieceType
}
