package output

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// JSONGame represents a game in JSON format.
type JSONGame struct {
	ID       string     `json:"id,omitempty"`
	White    string     `json:"white,omitempty"`
	Black    string     `json:"black,omitempty"`
	Board    []string   `json:"board"`
	ToMove   string     `json:"to_move"`
	Status   string     `json:"status"`
	InCheck  bool       `json:"in_check"`
	Result   string     `json:"result"`
	Reason   string     `json:"reason,omitempty"`
	PlyCount int        `json:"ply_count"`
	Moves    []JSONMove `json:"moves"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	MoveNumber int    `json:"move_number"`
	Color      string `json:"color"` // "white" or "black"
	SAN        string `json:"san"`
	UCI        string `json:"uci"`
	From       string `json:"from"`
	To         string `json:"to"`
	Piece      string `json:"piece"`
	Captured   string `json:"captured,omitempty"`
	Promotion  string `json:"promotion,omitempty"`
}

// GameToJSON converts a game record to JSON format.
func GameToJSON(rec *GameRecord) *JSONGame {
	jg := &JSONGame{
		ID:       rec.ID,
		White:    rec.White,
		Black:    rec.Black,
		Board:    BoardRows(rec.Board),
		ToMove:   colorName(rec.Board.ToMove),
		Status:   strings.ToLower(rec.Status.String()),
		InCheck:  engine.IsInCheck(rec.Board, rec.Board.ToMove),
		Result:   rec.Result,
		Reason:   rec.Reason,
		PlyCount: len(rec.Plies),
		Moves:    convertPlies(rec.Plies),
	}
	if jg.Result == "" {
		jg.Result = "*"
	}
	return jg
}

// convertPlies converts a move history to JSON format.
func convertPlies(plies []chess.Ply) []JSONMove {
	result := make([]JSONMove, 0, len(plies))
	moveNum := 1
	for _, ply := range plies {
		result = append(result, convertSinglePly(ply, moveNum))
		if ply.Move.Colour == chess.Black {
			moveNum++
		}
	}
	return result
}

// convertSinglePly converts one ply to JSON format.
func convertSinglePly(ply chess.Ply, moveNum int) JSONMove {
	jm := JSONMove{
		MoveNumber: moveNum,
		Color:      colorName(ply.Move.Colour),
		SAN:        ply.SAN,
		UCI:        formatUCI(ply),
		From:       ply.Move.From.String(),
		To:         ply.Move.To.String(),
		Piece:      pieceTypeName(ply.Piece),
	}
	if ply.Captured != chess.Empty {
		jm.Captured = pieceTypeName(ply.Captured)
	}
	if ply.Promotion != chess.Empty {
		jm.Promotion = pieceTypeName(ply.Promotion)
	}
	return jm
}

// colorName returns "white" or "black".
func colorName(c chess.Colour) string {
	return strings.ToLower(c.String())
}

// pieceTypeName returns the lowercase name of a piece type.
func pieceTypeName(p chess.PieceType) string {
	return strings.ToLower(p.String())
}
