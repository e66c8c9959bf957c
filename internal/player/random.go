package player

import (
	"math/rand"
	"time"

	petname "github.com/dustinkirkland/golang-petname"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Random plays a uniformly chosen legal move and always promotes to a queen.
type Random struct {
	name string
	rng  *rand.Rand
}

// NewRandom creates a random player. A zero seed is replaced by the clock
// and an empty name by a generated one.
func NewRandom(name string, seed int64) *Random {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if name == "" {
		name = petname.Generate(2, "-")
	}
	return &Random{
		name: name,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Name returns the player's name.
func (r *Random) Name() string {
	return r.name
}

// ChooseMove picks one of colour's legal moves.
func (r *Random) ChooseMove(board *chess.Board, colour chess.Colour) (chess.Move, chess.PieceType, error) {
	moves := engine.LegalMoves(board, colour)
	if len(moves) == 0 {
		return chess.Move{}, chess.Empty, errors.ErrNoLegalMoves
	}
	return moves[r.rng.Intn(len(moves))], chess.Empty, nil
}

// ChoosePromotion always returns chess.Queen.
func (r *Random) ChoosePromotion(chess.Colour, chess.Square) chess.PieceType {
	return chess.Queen
}
