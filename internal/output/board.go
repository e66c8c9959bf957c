package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Renderer draws boards as text with rank 8 at the top.
type Renderer struct {
	w      io.Writer
	colour bool

	// Square styles indexed by [light square][piece colour].
	styles [2][3]*color.Color
}

// NewRenderer creates a renderer writing to w. With useColour the squares
// are drawn with ANSI background colours whatever w is.
func NewRenderer(w io.Writer, useColour bool) *Renderer {
	r := &Renderer{w: w, colour: useColour}
	if useColour {
		backgrounds := [2]color.Attribute{color.BgGreen, color.BgHiWhite}
		foregrounds := [3]color.Attribute{color.FgBlack, color.FgHiRed, color.FgBlue}
		for light, bg := range backgrounds {
			for c, fg := range foregrounds {
				style := color.New(bg, fg, color.Bold)
				style.EnableColor()
				r.styles[light][c] = style
			}
		}
	}
	return r
}

// Render writes the board with file letters above and below and rank
// numbers on both sides. White pieces are uppercase, black lowercase and
// empty squares '.'.
func (r *Renderer) Render(b *chess.Board) error {
	var sb strings.Builder

	files := fileHeader(r.colour)
	sb.WriteString(files)
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		fmt.Fprintf(&sb, "%d ", rank+1)
		for file := 0; file < chess.BoardSize; file++ {
			sq := chess.Sq(file, rank)
			sb.WriteString(r.square(sq, b.Get(sq)))
		}
		fmt.Fprintf(&sb, "%d\n", rank+1)
	}
	sb.WriteString(files)

	_, err := io.WriteString(r.w, sb.String())
	return err
}

// square returns the text of one square including its trailing spacing.
func (r *Renderer) square(sq chess.Square, piece chess.Piece) string {
	if !r.colour {
		return string(piece.Letter()) + " "
	}
	light := 0
	if sq.IsLight() {
		light = 1
	}
	text := " " + string(piece.Letter()) + " "
	if piece.IsEmpty() {
		text = "   "
	}
	return r.styles[light][piece.Colour].Sprint(text)
}

func fileHeader(wide bool) string {
	var sb strings.Builder
	sb.WriteString("  ")
	for file := 0; file < chess.BoardSize; file++ {
		if wide {
			sb.WriteString(" ")
		}
		sb.WriteByte(byte(chess.FileBase + file))
		sb.WriteString(" ")
	}
	return strings.TrimRight(sb.String(), " ") + "\n"
}

// BoardRows returns the board as eight strings of piece letters, rank 8
// first.
func BoardRows(b *chess.Board) []string {
	rows := make([]string, 0, chess.BoardSize)
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		row := make([]byte, chess.BoardSize)
		for file := 0; file < chess.BoardSize; file++ {
			row[file] = b.Get(chess.Sq(file, rank)).Letter()
		}
		rows = append(rows, string(row))
	}
	return rows
}
