// Package matching finds positions in a game by their material.
package matching

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// pieceCounts holds the number of pieces of each type one side has.
type pieceCounts [chess.NumPieceTypes]int

// MaterialMatcher matches positions by material balance.
type MaterialMatcher struct {
	// Pattern like "QR:qrr" means white has Q+R, black has Q+2R
	pattern     string
	exactMatch  bool
	whitePieces pieceCounts
	blackPieces pieceCounts
}

var materialLetters = map[rune]chess.PieceType{
	'K': chess.King,
	'Q': chess.Queen,
	'R': chess.Rook,
	'B': chess.Bishop,
	'N': chess.Knight,
	'P': chess.Pawn,
}

// NewMaterialMatcher creates a new material matcher.
// Pattern format: "QRN:qrn" (white pieces : black pieces)
// Use uppercase for white, lowercase for black
// K=King, Q=Queen, R=Rook, B=Bishop, N=Knight, P=Pawn
//
// With exact, a position matches only if it holds exactly the pieces
// named; otherwise it needs at least those pieces.
func NewMaterialMatcher(pattern string, exact bool) (*MaterialMatcher, error) {
	mm := &MaterialMatcher{
		pattern:    pattern,
		exactMatch: exact,
	}
	if err := mm.parsePattern(pattern); err != nil {
		return nil, err
	}
	return mm, nil
}

// parsePattern parses a material pattern like "QR:qrr"
func (mm *MaterialMatcher) parsePattern(pattern string) error {
	parts := strings.Split(pattern, ":")
	if len(parts) > 2 {
		return fmt.Errorf("material pattern %q has more than two sides: %w", pattern, errors.ErrInvalidConfig)
	}
	if err := parseSide(parts[0], chess.White, &mm.whitePieces); err != nil {
		return fmt.Errorf("material pattern %q: %w", pattern, err)
	}
	if len(parts) == 2 {
		if err := parseSide(parts[1], chess.Black, &mm.blackPieces); err != nil {
			return fmt.Errorf("material pattern %q: %w", pattern, err)
		}
	}
	return nil
}

// parseSide counts the piece letters of one side. White letters are
// uppercase and black lowercase.
func parseSide(s string, colour chess.Colour, counts *pieceCounts) error {
	for _, c := range s {
		letter := c
		if colour == chess.Black {
			if c < 'a' || c > 'z' {
				return fmt.Errorf("black piece %q is not lowercase: %w", c, errors.ErrInvalidConfig)
			}
			letter = c - ('a' - 'A')
		}
		pieceType, ok := materialLetters[letter]
		if !ok {
			return fmt.Errorf("unknown piece %q: %w", c, errors.ErrInvalidConfig)
		}
		counts[pieceType]++
	}
	return nil
}

// FirstMatch replays plies from the initial position and returns the
// number of plies played when the material first matches: 0 for the
// initial position itself.
func (mm *MaterialMatcher) FirstMatch(plies []chess.Ply) (int, bool) {
	board := chess.NewInitialBoard()
	if mm.MatchPosition(board) {
		return 0, true
	}

	for i, ply := range plies {
		if err := engine.ApplyMove(board, ply.Move, engine.PromoteTo(ply.Promotion)); err != nil {
			break
		}
		if mm.MatchPosition(board) {
			return i + 1, true
		}
	}
	return 0, false
}

// MatchPosition checks if a position matches the material pattern.
func (mm *MaterialMatcher) MatchPosition(board *chess.Board) bool {
	var whiteCounts, blackCounts pieceCounts
	for file := 0; file < chess.BoardSize; file++ {
		for rank := 0; rank < chess.BoardSize; rank++ {
			piece := board.Squares[file][rank]
			switch piece.Colour {
			case chess.White:
				whiteCounts[piece.Type]++
			case chess.Black:
				blackCounts[piece.Type]++
			}
		}
	}

	if mm.exactMatch {
		return whiteCounts == mm.whitePieces && blackCounts == mm.blackPieces
	}
	return covers(whiteCounts, mm.whitePieces) && covers(blackCounts, mm.blackPieces)
}

// covers reports whether have holds at least the pieces in want.
func covers(have, want pieceCounts) bool {
	for pieceType, count := range want {
		if have[pieceType] < count {
			return false
		}
	}
	return true
}

// HasCriteria returns true if a material pattern is set.
func (mm *MaterialMatcher) HasCriteria() bool {
	return mm.pattern != ""
}
