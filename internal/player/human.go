package player

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/notation"
)

// Commands a human may type instead of a move.
const (
	resignCommand = "resign"
	undoCommand   = "undo"
)

// Human reads moves typed in coordinate notation.
type Human struct {
	name string
	in   *bufio.Reader
	out  io.Writer
}

// NewHuman creates a human player reading from r and prompting on w. Two
// humans sharing one input must be given the same *bufio.Reader.
func NewHuman(name string, r io.Reader, w io.Writer) *Human {
	if name == "" {
		name = "Human"
	}
	return &Human{
		name: name,
		in:   bufio.NewReader(r),
		out:  w,
	}
}

// Name returns the player's name.
func (h *Human) Name() string {
	return h.name
}

// ChooseMove prompts until a line parses as a move or a command.
// Legality is left to the caller; io.EOF is returned when input ends.
func (h *Human) ChooseMove(_ *chess.Board, colour chess.Colour) (chess.Move, chess.PieceType, error) {
	for {
		fmt.Fprintf(h.out, "%s's move: ", colour)
		line, err := h.readLine()
		if err != nil {
			return chess.Move{}, chess.Empty, err
		}

		switch strings.ToLower(line) {
		case "":
			continue
		case resignCommand:
			return chess.Move{}, chess.Empty, errors.ErrResigned
		case undoCommand:
			return chess.Move{}, chess.Empty, errors.ErrUndoRequested
		}

		m, promotion, err := notation.ParseMove(colour, line)
		if err != nil {
			fmt.Fprintf(h.out, "%v. Use coordinates, e.g. e2e4.\n", err)
			continue
		}
		return m, promotion, nil
	}
}

// ChoosePromotion asks for a piece letter. Anything else, including the
// end of input, chooses a queen.
func (h *Human) ChoosePromotion(colour chess.Colour, sq chess.Square) chess.PieceType {
	fmt.Fprintf(h.out, "Promote %s pawn on %s to (q, r, b, n): ", strings.ToLower(colour.String()), sq)
	line, err := h.readLine()
	if err != nil {
		return chess.Queen
	}
	return notation.PromotionFromLetter(line)
}

func (h *Human) readLine() (string, error) {
	line, err := h.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
