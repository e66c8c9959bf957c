// Package game runs games between two players on top of the rules engine.
// A Session holds one game: the current board, the plies played so far and
// the positions needed to take them back.
package game

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/output"
)

// Session is a single game. It is not safe for concurrent use.
type Session struct {
	cfg     *config.Config
	board   *chess.Board
	history []chess.Ply
	states  []chess.BoardState // position before each ply in history
}

// NewSession starts a game from the initial position.
func NewSession(cfg *config.Config) *Session {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &Session{
		cfg:   cfg,
		board: chess.NewInitialBoard(),
	}
}

// Board returns a copy of the current position.
func (s *Session) Board() *chess.Board {
	return s.board.Copy()
}

// ToMove returns the side to move.
func (s *Session) ToMove() chess.Colour {
	return s.board.ToMove
}

// PlyCount returns the number of plies played.
func (s *Session) PlyCount() int {
	return len(s.history)
}

// Play checks m and applies it. promote chooses the piece for a pawn
// reaching the last rank; nil means a queen. Rejected moves leave the
// session unchanged and return a *errors.MoveError wrapping ErrGameOver,
// ErrWrongSide or ErrIllegalMove.
func (s *Session) Play(m chess.Move, promote engine.PromotionFunc) (chess.Ply, error) {
	plyNum := len(s.history) + 1
	reject := func(err error) (chess.Ply, error) {
		return chess.Ply{}, &errors.MoveError{
			Err:      err,
			PlyNum:   plyNum,
			Side:     m.Colour.String(),
			MoveText: m.String(),
		}
	}

	if s.Status().IsTerminal() {
		return reject(errors.ErrGameOver)
	}
	if m.Colour != s.board.ToMove {
		return reject(errors.ErrWrongSide)
	}

	before := s.board.Copy()
	state := s.board.SaveState()
	if err := engine.ApplyMove(s.board, m, promote); err != nil {
		return reject(errors.ErrIllegalMove)
	}

	ply := output.NewPly(before, m, s.board.Get(m.To).Type)
	s.history = append(s.history, ply)
	s.states = append(s.states, state)
	s.cfg.Logf(2, "ply %d: %s %s", plyNum, m.Colour, ply.SAN)
	return ply, nil
}

// Undo takes back the last ply and returns it.
func (s *Session) Undo() (chess.Ply, error) {
	n := len(s.history)
	if n == 0 {
		return chess.Ply{}, errors.ErrNothingToUndo
	}
	ply := s.history[n-1]
	s.board.RestoreState(s.states[n-1])
	s.history = s.history[:n-1]
	s.states = s.states[:n-1]
	s.cfg.Logf(2, "undo ply %d: %s", n, ply.SAN)
	return ply, nil
}

// UndoTurn takes back plies until colour's last move has been undone, so
// that colour is to move again. It fails with ErrNothingToUndo, changing
// nothing, when colour has not moved yet.
func (s *Session) UndoTurn(colour chess.Colour) (int, error) {
	moved := false
	for _, ply := range s.history {
		if ply.Move.Colour == colour {
			moved = true
			break
		}
	}
	if !moved {
		return 0, errors.ErrNothingToUndo
	}

	undone := 0
	for {
		ply, err := s.Undo()
		if err != nil {
			return undone, err
		}
		undone++
		if ply.Move.Colour == colour {
			return undone, nil
		}
	}
}

// Status classifies the position for the side to move.
func (s *Session) Status() chess.Status {
	return engine.Classify(s.board, s.board.ToMove)
}

// InCheck reports whether the side to move is in check.
func (s *Session) InCheck() bool {
	return engine.IsInCheck(s.board, s.board.ToMove)
}

// LegalMoves returns the legal moves of the side to move.
func (s *Session) LegalMoves() []chess.Move {
	return engine.LegalMoves(s.board, s.board.ToMove)
}

// LegalMovesFrom returns the legal moves of the piece on from. It is
// empty unless that piece belongs to the side to move.
func (s *Session) LegalMovesFrom(from chess.Square) []chess.Move {
	if s.board.Get(from).Colour != s.board.ToMove {
		return nil
	}
	return engine.LegalMovesFrom(s.board, from)
}

// IsPromotion reports whether m would promote a pawn in the current
// position.
func (s *Session) IsPromotion(m chess.Move) bool {
	return engine.IsPromotion(s.board, m)
}

// Moves returns the plies played so far.
func (s *Session) Moves() []chess.Ply {
	moves := make([]chess.Ply, len(s.history))
	copy(moves, s.history)
	return moves
}

// Record returns the game for output. reason is empty for a game still in
// progress or one that ended on the board.
func (s *Session) Record(id, white, black, reason string) *output.GameRecord {
	status := s.Status()
	result := output.Result(status, s.board.ToMove)
	if reason == "" && status.IsTerminal() {
		reason = strings.ToLower(status.String())
	}
	return &output.GameRecord{
		ID:     id,
		White:  white,
		Black:  black,
		Board:  s.Board(),
		Plies:  s.Moves(),
		Status: status,
		Result: result,
		Reason: reason,
	}
}
