// Package notation translates between coordinate move text such as "e2e4"
// and the engine's squares and moves.
package notation

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// isFile returns true if c is a file letter.
func isFile(c byte) bool {
	return c >= chess.FileBase && c < chess.FileBase+chess.BoardSize
}

// isRank returns true if c is a rank digit.
func isRank(c byte) bool {
	return c >= chess.RankBase && c < chess.RankBase+chess.BoardSize
}

// isSeparator returns true if c may sit between the two squares of a move.
func isSeparator(c byte) bool {
	return c == '-' || c == 'x' || c == ':'
}

// ParseSquare reads a square name such as "e4". Upper case file letters
// are accepted.
func ParseSquare(s string) (chess.Square, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != 2 {
		return chess.Square{}, &errors.NotationError{
			Err:      errors.ErrInvalidSquare,
			Input:    s,
			Expected: "file and rank",
		}
	}
	if !isFile(s[0]) {
		return chess.Square{}, &errors.NotationError{
			Err:      errors.ErrInvalidSquare,
			Input:    s,
			Column:   1,
			Expected: "file a-h",
			Got:      string(s[0]),
		}
	}
	if !isRank(s[1]) {
		return chess.Square{}, &errors.NotationError{
			Err:      errors.ErrInvalidSquare,
			Input:    s,
			Column:   2,
			Expected: "rank 1-8",
			Got:      string(s[1]),
		}
	}
	return chess.Sq(int(s[0]-chess.FileBase), int(s[1]-chess.RankBase)), nil
}

// ParseMove reads a move for colour in coordinate notation: two squares,
// optionally separated by '-' or 'x', optionally followed by a promotion
// letter with or without '='. The promotion is chess.Empty when absent.
//
//	e2e4  e2-e4  e7e8q  e7e8=N
func ParseMove(colour chess.Colour, text string) (chess.Move, chess.PieceType, error) {
	s := strings.ToLower(strings.TrimSpace(text))
	if len(s) < 4 {
		return chess.Move{}, chess.Empty, moveTextError(text, "two squares", 0)
	}

	from, err := ParseSquare(s[:2])
	if err != nil {
		return chess.Move{}, chess.Empty, moveTextError(text, "origin square", 1)
	}
	rest := s[2:]
	if isSeparator(rest[0]) {
		rest = rest[1:]
	}
	if len(rest) < 2 {
		return chess.Move{}, chess.Empty, moveTextError(text, "destination square", len(s)-len(rest)+1)
	}
	to, err := ParseSquare(rest[:2])
	if err != nil {
		return chess.Move{}, chess.Empty, moveTextError(text, "destination square", len(s)-len(rest)+1)
	}
	rest = strings.TrimPrefix(rest[2:], "=")

	promotion := chess.Empty
	switch len(rest) {
	case 0:
	case 1:
		promotion = promotionLetters[rest[0]]
		if promotion == chess.Empty {
			return chess.Move{}, chess.Empty, moveTextError(text, "promotion piece q, r, b or n", len(s))
		}
	default:
		return chess.Move{}, chess.Empty, moveTextError(text, "end of move", len(s)-len(rest)+1)
	}

	return chess.NewMove(colour, from, to), promotion, nil
}

func moveTextError(text, expected string, column int) error {
	return &errors.NotationError{
		Err:      errors.ErrInvalidMoveText,
		Input:    text,
		Column:   column,
		Expected: expected,
	}
}

var promotionLetters = map[byte]chess.PieceType{
	'q': chess.Queen,
	'r': chess.Rook,
	'b': chess.Bishop,
	'n': chess.Knight,
}

// PromotionFromLetter returns the piece named by the first letter of s.
// Anything that does not name a queen, rook, bishop or knight is a queen.
func PromotionFromLetter(s string) chess.PieceType {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return chess.Queen
	}
	if p, ok := promotionLetters[s[0]]; ok {
		return p
	}
	return chess.Queen
}

// FormatMove returns the coordinate text of a move, e.g. "e2e4".
func FormatMove(m chess.Move) string {
	return m.From.String() + m.To.String()
}

// FormatMoveWithPromotion appends the promotion letter when promotion
// names a piece, e.g. "e7e8q".
func FormatMoveWithPromotion(m chess.Move, promotion chess.PieceType) string {
	if !promotion.IsPromotion() {
		return FormatMove(m)
	}
	return FormatMove(m) + strings.ToLower(string(promotion.Letter()))
}
