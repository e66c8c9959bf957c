package chess

// Move is a request to move the piece on From to To on behalf of Colour.
// Moves are ephemeral: they are checked and applied, never stored on the
// board.
type Move struct {
	From   Square
	To     Square
	Colour Colour
}

// NewMove creates a move for the given colour.
func NewMove(colour Colour, from, to Square) Move {
	return Move{From: from, To: to, Colour: colour}
}

// String returns the move in coordinate form, e.g. "e2e4".
func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// FileDelta returns the signed number of files the move crosses.
func (m Move) FileDelta() int {
	return m.To.File - m.From.File
}

// RankDelta returns the signed number of ranks the move crosses.
func (m Move) RankDelta() int {
	return m.To.Rank - m.From.Rank
}

// MoveClass describes what kind of move a ply was.
type MoveClass int

const (
	PieceMove MoveClass = iota
	PawnMove
	PawnMoveWithPromotion
	EnPassantPawnMove
	KingsideCastle
	QueensideCastle
)

// Ply is a move that has been played, with what it did to the board.
type Ply struct {
	Move      Move
	Class     MoveClass
	Piece     PieceType // Type of the piece that moved
	Captured  PieceType // Empty when nothing was taken
	Promotion PieceType // Empty unless Class is PawnMoveWithPromotion
	SAN       string    // Standard algebraic text, e.g. "Nxf7+"
}
