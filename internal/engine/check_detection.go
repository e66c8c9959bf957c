package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Offset tables shared by attack detection and move rules.
var (
	knightOffsets = [8][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs  = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs  = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// IsInCheck returns true if the given colour's king is attacked.
// A side without a king is never in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	king, ok := board.FindKing(colour)
	if !ok {
		return false
	}
	return IsSquareAttacked(board, king, colour.Opposite())
}

// IsSquareAttacked returns true if a piece of byColour could capture on sq
// with its next move. Pins and the safety of the capturing side are
// ignored: this answers whether the square is covered, not whether a
// capture would be legal.
func IsSquareAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	if !sq.Valid() || !byColour.Valid() {
		return false
	}

	// Pawns capture forward, so an attacking pawn sits one rank behind sq
	// from its own point of view.
	pawnRank := sq.Rank - chess.ColourOffset(byColour)
	for _, df := range [2]int{-1, 1} {
		if board.Get(chess.Sq(sq.File+df, pawnRank)).Is(byColour, chess.Pawn) {
			return true
		}
	}

	if hitsOffset(board, sq, knightOffsets, byColour, chess.Knight) {
		return true
	}

	// Sliding pieces along diagonals and straight lines.
	if hitsRay(board, sq, diagonalDirs, byColour, chess.Bishop) {
		return true
	}
	if hitsRay(board, sq, straightDirs, byColour, chess.Rook) {
		return true
	}

	return hitsOffset(board, sq, kingOffsets, byColour, chess.King)
}

// hitsOffset reports whether any of the squares at the given offsets from
// sq holds a piece of the given colour and type. Off-board squares are
// skipped.
func hitsOffset(board *chess.Board, sq chess.Square, offsets [8][2]int, colour chess.Colour, pieceType chess.PieceType) bool {
	for _, off := range offsets {
		target := sq.Offset(off[0], off[1])
		if target.Valid() && board.Get(target).Is(colour, pieceType) {
			return true
		}
	}
	return false
}

// hitsRay walks outward from sq along each direction and reports whether
// the first occupied square holds a slider of the given colour: either
// pieceType or a queen. Any other occupant blocks the ray.
func hitsRay(board *chess.Board, sq chess.Square, dirs [4][2]int, colour chess.Colour, pieceType chess.PieceType) bool {
	for _, dir := range dirs {
		for target := sq.Offset(dir[0], dir[1]); target.Valid(); target = target.Offset(dir[0], dir[1]) {
			piece := board.Get(target)
			if piece.IsEmpty() {
				continue
			}
			if piece.Is(colour, pieceType) || piece.Is(colour, chess.Queen) {
				return true
			}
			break // Blocked
		}
	}
	return false
}
