package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

// GameWriter is the interface for writing finished games to output.
// Different implementations handle different output formats.
type GameWriter interface {
	// WriteGame writes a single game to the output.
	WriteGame(rec *GameRecord) error

	// Close writes any pending output.
	Close() error
}

// NewGameWriter returns the writer selected by cfg: JSON or move text.
func NewGameWriter(w io.Writer, cfg *config.OutputConfig) GameWriter {
	if cfg.JSONFormat {
		return NewJSONWriter(w)
	}
	return NewMoveListWriter(w, cfg)
}

// MoveListWriter writes games as numbered move text.
type MoveListWriter struct {
	w   io.Writer
	cfg *config.OutputConfig
}

// NewMoveListWriter creates a new move list writer.
func NewMoveListWriter(w io.Writer, cfg *config.OutputConfig) *MoveListWriter {
	return &MoveListWriter{
		w:   w,
		cfg: cfg,
	}
}

// WriteGame writes the moves of a game and its result.
func (mw *MoveListWriter) WriteGame(rec *GameRecord) error {
	WriteMoveList(mw.w, rec, mw.cfg)
	return nil
}

// Close closes the move list writer (no-op as it writes immediately).
func (mw *MoveListWriter) Close() error {
	return nil
}

// JSONWriter writes each game as an indented JSON object.
type JSONWriter struct {
	w io.Writer
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// WriteGame writes a game in JSON format.
func (jw *JSONWriter) WriteGame(rec *GameRecord) error {
	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	return enc.Encode(GameToJSON(rec))
}

// Close closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return nil
}
