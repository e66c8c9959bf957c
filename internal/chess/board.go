package chess

// Board represents a chess board with all state needed for the game.
type Board struct {
	// The board squares, indexed Squares[file][rank].
	Squares [BoardSize][BoardSize]Piece

	// Who has the next move.
	ToMove Colour

	// The current move number.
	MoveNumber uint

	// Is an en passant capture possible? If so then EPSquare is the
	// square a capturing pawn would land on.
	EnPassant bool
	EPSquare  Square
}

// NewBoard creates a new empty board with White to move.
func NewBoard() *Board {
	return &Board{
		ToMove:     White,
		MoveNumber: 1,
	}
}

// NewInitialBoard creates a board holding the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// backRank is the standard back rank order from the a-file.
var backRank = [BoardSize]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.Squares = [BoardSize][BoardSize]Piece{}

	for file := 0; file < BoardSize; file++ {
		b.Squares[file][HomeRank(White)] = W(backRank[file])
		b.Squares[file][PawnRank(White)] = W(Pawn)
		b.Squares[file][PawnRank(Black)] = B(Pawn)
		b.Squares[file][HomeRank(Black)] = B(backRank[file])
	}

	b.ToMove = White
	b.MoveNumber = 1
	b.EnPassant = false
	b.EPSquare = Square{}
}

// Get returns the piece on a square. Off-board squares read as empty.
func (b *Board) Get(sq Square) Piece {
	if !sq.Valid() {
		return NoPiece
	}
	return b.Squares[sq.File][sq.Rank]
}

// Set places a piece on a square. Off-board squares are ignored.
func (b *Board) Set(sq Square, piece Piece) {
	if sq.Valid() {
		b.Squares[sq.File][sq.Rank] = piece
	}
}

// Clear empties a square.
func (b *Board) Clear(sq Square) {
	b.Set(sq, NoPiece)
}

// FindKing returns the square of the given colour's king.
func (b *Board) FindKing(colour Colour) (Square, bool) {
	for file := 0; file < BoardSize; file++ {
		for rank := 0; rank < BoardSize; rank++ {
			if b.Squares[file][rank].Is(colour, King) {
				return Sq(file, rank), true
			}
		}
	}
	return Square{}, false
}

// Occupied returns the squares holding pieces of the given colour, ordered
// by rank then file.
func (b *Board) Occupied(colour Colour) []Square {
	var squares []Square
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			if b.Squares[file][rank].Colour == colour && !b.Squares[file][rank].IsEmpty() {
				squares = append(squares, Sq(file, rank))
			}
		}
	}
	return squares
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// BoardState captures all mutable board state for save/restore operations.
type BoardState struct {
	Squares    [BoardSize][BoardSize]Piece
	ToMove     Colour
	MoveNumber uint
	EnPassant  bool
	EPSquare   Square
}

// SaveState captures the current board state for later restoration.
func (b *Board) SaveState() BoardState {
	return BoardState{
		Squares:    b.Squares,
		ToMove:     b.ToMove,
		MoveNumber: b.MoveNumber,
		EnPassant:  b.EnPassant,
		EPSquare:   b.EPSquare,
	}
}

// RestoreState restores the board to a previously saved state.
func (b *Board) RestoreState(s BoardState) {
	b.Squares = s.Squares
	b.ToMove = s.ToMove
	b.MoveNumber = s.MoveNumber
	b.EnPassant = s.EnPassant
	b.EPSquare = s.EPSquare
}
