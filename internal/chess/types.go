// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	NoColour Colour = iota // Owner of an empty square
	White
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "None"
	}
}

// Opposite returns the opposite colour. NoColour has no opposite.
func (c Colour) Opposite() Colour {
	switch c {
	case White:
		return Black
	case Black:
		return White
	default:
		return NoColour
	}
}

// Valid reports whether c is a playing side.
func (c Colour) Valid() bool {
	return c == White || c == Black
}

// PieceType represents a chess piece type.
type PieceType int

const (
	Empty PieceType = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceTypes
)

// String returns the string representation of a piece type.
func (p PieceType) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece type (uppercase).
func (p PieceType) Letter() byte {
	letters := []byte{'.', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// IsPromotion reports whether a pawn may be promoted to p.
func (p PieceType) IsPromotion() bool {
	switch p {
	case Queen, Rook, Bishop, Knight:
		return true
	default:
		return false
	}
}

// Piece is the occupant of a square. The zero value is an empty square.
type Piece struct {
	Type   PieceType
	Colour Colour

	// Moved is set once the piece has left its starting square. It gates
	// castling rights.
	Moved bool
}

// NoPiece is the occupant of an empty square.
var NoPiece = Piece{}

// MakePiece creates an unmoved piece of the given colour and type.
func MakePiece(colour Colour, pieceType PieceType) Piece {
	return Piece{Type: pieceType, Colour: colour}
}

// W creates a white piece.
func W(pieceType PieceType) Piece {
	return MakePiece(White, pieceType)
}

// B creates a black piece.
func B(pieceType PieceType) Piece {
	return MakePiece(Black, pieceType)
}

// IsEmpty returns true if the square holding p is unoccupied.
func (p Piece) IsEmpty() bool {
	return p.Type == Empty
}

// Is reports whether p is a piece of the given colour and type.
func (p Piece) Is(colour Colour, pieceType PieceType) bool {
	return p.Type == pieceType && p.Colour == colour
}

// Letter returns the board letter of a piece: uppercase for White,
// lowercase for Black and '.' for an empty square.
func (p Piece) Letter() byte {
	letter := p.Type.Letter()
	if p.Colour == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// String returns a description such as "White Knight".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Colour.String() + " " + p.Type.String()
}

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	FileBase = 'a'
	RankBase = '1'
)

// ColourOffset returns +1 for White, -1 for Black (for pawn direction).
func ColourOffset(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}

// HomeRank returns the back rank index of a colour.
func HomeRank(colour Colour) int {
	if colour == White {
		return 0
	}
	return BoardSize - 1
}

// PawnRank returns the rank index on which a colour's pawns start.
func PawnRank(colour Colour) int {
	if colour == White {
		return 1
	}
	return BoardSize - 2
}

// PromotionRank returns the rank index on which a colour's pawns promote.
func PromotionRank(colour Colour) int {
	return HomeRank(colour.Opposite())
}

// Status is the state of a side's position after a half-move.
type Status int

const (
	Ongoing Status = iota
	Checkmate
	Stalemate
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case Checkmate:
		return "Checkmate"
	case Stalemate:
		return "Stalemate"
	default:
		return "Ongoing"
	}
}

// IsTerminal reports whether the game cannot continue.
func (s Status) IsTerminal() bool {
	return s == Checkmate || s == Stalemate
}
