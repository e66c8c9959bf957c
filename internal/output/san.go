package output

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// NewPly describes m as played from before, the position ahead of the move,
// with promotion the piece the pawn became (Empty if none). The ply's SAN
// text is filled in.
func NewPly(before *chess.Board, m chess.Move, promotion chess.PieceType) chess.Ply {
	ply := engine.Describe(before, m)
	if ply.Class == chess.PawnMoveWithPromotion {
		ply.Promotion = promotion
		if !promotion.IsPromotion() {
			ply.Promotion = chess.Queen
		}
	}
	ply.SAN = formatSAN(before, ply)
	return ply
}

// formatSAN formats a ply in Standard Algebraic Notation, with a check or
// mate suffix.
func formatSAN(before *chess.Board, ply chess.Ply) string {
	var sb strings.Builder
	m := ply.Move

	switch ply.Class {
	case chess.KingsideCastle:
		sb.WriteString("O-O")
	case chess.QueensideCastle:
		sb.WriteString("O-O-O")
	case chess.PieceMove:
		sb.WriteByte(ply.Piece.Letter())
		sb.WriteString(disambiguation(before, m, ply.Piece))
		if ply.Captured != chess.Empty {
			sb.WriteByte('x')
		}
		sb.WriteString(m.To.String())
	default:
		if ply.Captured != chess.Empty {
			sb.WriteByte(byte(chess.FileBase + m.From.File))
			sb.WriteByte('x')
		}
		sb.WriteString(m.To.String())
		if ply.Class == chess.PawnMoveWithPromotion {
			sb.WriteByte('=')
			sb.WriteByte(ply.Promotion.Letter())
		}
	}

	after := before.Copy()
	if err := engine.ApplyMove(after, m, engine.PromoteTo(ply.Promotion)); err != nil {
		return sb.String()
	}
	opponent := m.Colour.Opposite()
	if engine.IsInCheck(after, opponent) {
		if engine.Classify(after, opponent) == chess.Checkmate {
			sb.WriteByte('#')
		} else {
			sb.WriteByte('+')
		}
	}
	return sb.String()
}

// disambiguation returns the origin file, rank or square needed to tell m
// apart from other legal moves of the same piece type to the same square.
func disambiguation(board *chess.Board, m chess.Move, pieceType chess.PieceType) string {
	var rivals []chess.Square
	for _, from := range board.Occupied(m.Colour) {
		if from == m.From || board.Get(from).Type != pieceType {
			continue
		}
		if engine.IsLegal(board, chess.NewMove(m.Colour, from, m.To)) {
			rivals = append(rivals, from)
		}
	}
	if len(rivals) == 0 {
		return ""
	}

	sameFile, sameRank := false, false
	for _, sq := range rivals {
		sameFile = sameFile || sq.File == m.From.File
		sameRank = sameRank || sq.Rank == m.From.Rank
	}
	file := string(rune(chess.FileBase + m.From.File))
	rank := string(rune(chess.RankBase + m.From.Rank))
	switch {
	case !sameFile:
		return file
	case !sameRank:
		return rank
	default:
		return file + rank
	}
}

// FormatPly formats a played move in the given notation.
func FormatPly(ply chess.Ply, format config.OutputFormat) string {
	switch format {
	case config.LALG:
		return formatLongAlgebraic(ply, false, false)
	case config.HALG:
		return formatLongAlgebraic(ply, true, false)
	case config.ELALG:
		return formatLongAlgebraic(ply, false, true)
	case config.UCI:
		return formatUCI(ply)
	default:
		return ply.SAN
	}
}

// formatLongAlgebraic formats a move in long algebraic notation.
func formatLongAlgebraic(ply chess.Ply, hyphenated bool, enhanced bool) string {
	switch ply.Class {
	case chess.KingsideCastle:
		return "O-O"
	case chess.QueensideCastle:
		return "O-O-O"
	}

	var sb strings.Builder

	// Piece letter for enhanced notation
	if enhanced && ply.Piece != chess.Pawn {
		sb.WriteByte(ply.Piece.Letter())
	}

	sb.WriteString(ply.Move.From.String())

	// Separator for hyphenated notation
	if hyphenated {
		if ply.Captured != chess.Empty {
			sb.WriteByte('x')
		} else {
			sb.WriteByte('-')
		}
	}

	sb.WriteString(ply.Move.To.String())

	if ply.Class == chess.PawnMoveWithPromotion {
		sb.WriteByte('=')
		sb.WriteByte(ply.Promotion.Letter())
	}

	return sb.String()
}

// formatUCI formats a move in UCI notation.
func formatUCI(ply chess.Ply) string {
	text := ply.Move.From.String() + ply.Move.To.String()

	// Promotion (lowercase in UCI)
	if ply.Class == chess.PawnMoveWithPromotion {
		text += string(rune(ply.Promotion.Letter() + 'a' - 'A'))
	}
	return text
}
