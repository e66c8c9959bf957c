// Package output provides board drawing and game output in various
// notations.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
)

// GameRecord is a game as it is written out.
type GameRecord struct {
	ID     string
	White  string
	Black  string
	Board  *chess.Board // Position after the last ply
	Plies  []chess.Ply
	Status chess.Status // Status of the side to move
	Result string       // "1-0", "0-1", "1/2-1/2" or "*"
	Reason string       // Why the game ended, if it has
}

// Result returns the score text for a game whose side to move has the
// given status.
func Result(status chess.Status, toMove chess.Colour) string {
	switch status {
	case chess.Checkmate:
		if toMove == chess.White {
			return "0-1"
		}
		return "1-0"
	case chess.Stalemate:
		return "1/2-1/2"
	default:
		return "*"
	}
}

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		// Check if we need a new line
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
			o.needsSpace = false
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// WriteMoveList writes the plies of a game as numbered move text, wrapped
// at the configured line length, followed by the result.
func WriteMoveList(w io.Writer, rec *GameRecord, cfg *config.OutputConfig) {
	ow := NewOutputWriter(w, int(cfg.MaxLineLength))

	moveNum := 1
	for i, ply := range rec.Plies {
		isWhite := ply.Move.Colour == chess.White
		if cfg.KeepMoveNumbers {
			if isWhite {
				ow.Write(fmt.Sprintf("%d.", moveNum))
			} else if i == 0 {
				ow.Write(fmt.Sprintf("%d...", moveNum))
			}
		}

		text := FormatPly(ply, cfg.Format)
		if !cfg.KeepChecks {
			text = strings.TrimRight(text, "+#")
		}
		ow.Write(text)

		if !isWhite {
			moveNum++
		}
	}

	if cfg.KeepResults {
		result := rec.Result
		if result == "" {
			result = "*"
		}
		ow.Write(result)
	}

	ow.NewLine()
}
