// Package processing replays and checks games written as lists of
// coordinate moves.
package processing

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
	"github.com/lgbarn/chess-rules-go/internal/notation"
)

// GameAnalysis holds analysis results from replaying a game.
type GameAnalysis struct {
	FinalBoard        *chess.Board
	Status            chess.Status // Status of the side to move after the last ply
	PlyCount          int
	CheckCount        int
	CaptureCount      int
	HasCastling       bool
	HasEnPassant      bool
	HasUnderpromotion bool
	DistinctPositions int // Positions seen, counted by Zobrist key
}

// UnderpromotionFound returns true if any pawn promoted to non-queen.
func (ga *GameAnalysis) UnderpromotionFound() bool {
	return ga.HasUnderpromotion
}

// ValidationResult holds the result of game validation.
type ValidationResult struct {
	Valid    bool
	ErrorPly int
	ErrorMsg string
	Err      error
}

// ReadMoves reads whitespace-separated moves. Move numbers such as "12."
// or "12..." and result tokens are skipped.
func ReadMoves(r io.Reader) ([]string, error) {
	var moves []string
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		token := scanner.Text()
		if isMoveNumber(token) || isValidResult(token) {
			continue
		}
		moves = append(moves, token)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading moves: %w", err)
	}
	return moves, nil
}

// ReplayMoves plays the moves in order from the initial position and
// returns the session. Replay stops at the first move that cannot be
// played; the validation result says where.
func ReplayMoves(cfg *config.Config, moves []string) (*game.Session, *ValidationResult) {
	session := game.NewSession(cfg)
	result := &ValidationResult{Valid: true}

	for i, text := range moves {
		plyNum := i + 1
		m, promotion, err := notation.ParseMove(session.ToMove(), text)
		if err == nil {
			_, err = session.Play(m, engine.PromoteTo(promotion))
		}
		if err != nil {
			result.Valid = false
			result.ErrorPly = plyNum
			result.ErrorMsg = fmt.Sprintf("bad move at ply %d: %s", plyNum, text)
			result.Err = err
			cfg.Logf(1, "%s: %v", result.ErrorMsg, err)
			return session, result
		}
	}
	return session, result
}

// AnalyzeGame summarises the plies a session has played.
func AnalyzeGame(session *game.Session) *GameAnalysis {
	plies := session.Moves()
	analysis := &GameAnalysis{
		FinalBoard: session.Board(),
		Status:     session.Status(),
		PlyCount:   len(plies),
	}

	for _, ply := range plies {
		switch ply.Class {
		case chess.KingsideCastle, chess.QueensideCastle:
			analysis.HasCastling = true
		case chess.EnPassantPawnMove:
			analysis.HasEnPassant = true
		case chess.PawnMoveWithPromotion:
			if ply.Promotion != chess.Queen {
				analysis.HasUnderpromotion = true
			}
		}
		if ply.Captured != chess.Empty {
			analysis.CaptureCount++
		}
		if strings.HasSuffix(ply.SAN, "+") || strings.HasSuffix(ply.SAN, "#") {
			analysis.CheckCount++
		}
	}

	analysis.DistinctPositions = countPositions(plies)
	return analysis
}

// countPositions replays plies from the initial position and counts the
// distinct positions on the way.
func countPositions(plies []chess.Ply) int {
	board := chess.NewInitialBoard()
	seen := map[uint64]bool{hashing.GenerateZobristHash(board): true}
	for _, ply := range plies {
		if err := engine.ApplyMove(board, ply.Move, engine.PromoteTo(ply.Promotion)); err != nil {
			break
		}
		seen[hashing.GenerateZobristHash(board)] = true
	}
	return len(seen)
}

// isMoveNumber matches "1.", "23." and "23...".
func isMoveNumber(token string) bool {
	digits := strings.TrimRight(token, ".")
	if digits == token || digits == "" {
		return false
	}
	for _, c := range digits {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// isValidResult checks if a token is a game result.
func isValidResult(result string) bool {
	switch result {
	case "1-0", "0-1", "1/2-1/2", "*":
		return true
	default:
		return false
	}
}
