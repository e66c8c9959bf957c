package game

import (
	stderrors "errors"
	"fmt"
	"io"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/player"
)

// Reasons a game stops.
const (
	ReasonCheckmate  = "checkmate"
	ReasonStalemate  = "stalemate"
	ReasonResigned   = "resignation"
	ReasonPlyLimit   = "ply limit"
	ReasonEndOfInput = "end of input"
)

// Outcome is how a game run ended.
type Outcome struct {
	Status chess.Status // Status of the side to move when play stopped
	Winner chess.Colour // NoColour for a draw or an unfinished game
	Plies  int
	Reason string
}

// String describes the outcome for the players.
func (o Outcome) String() string {
	switch {
	case o.Winner != chess.NoColour:
		return fmt.Sprintf("%s wins by %s after %d plies.", o.Winner, o.Reason, o.Plies)
	case o.Status == chess.Stalemate:
		return fmt.Sprintf("Stalemate after %d plies.", o.Plies)
	default:
		return fmt.Sprintf("Game stopped after %d plies (%s).", o.Plies, o.Reason)
	}
}

// Result returns the score text for the outcome: "1-0", "0-1", "1/2-1/2"
// or "*" for a game that did not finish.
func (o Outcome) Result() string {
	switch {
	case o.Winner == chess.White:
		return "1-0"
	case o.Winner == chess.Black:
		return "0-1"
	case o.Status == chess.Stalemate:
		return "1/2-1/2"
	}
	return "*"
}

// Run plays the game to its end, asking white and black for moves in
// turn. Rejected moves are reported and the same player is asked again.
// The board is drawn before each turn when the configuration asks for it.
// Running out of input ends the game without an error.
func (s *Session) Run(white, black player.Player) (Outcome, error) {
	out := s.cfg.OutputFile
	if out == nil {
		out = io.Discard
	}
	var renderer *output.Renderer
	if s.cfg.Output.ShowBoard {
		renderer = output.NewRenderer(out, s.cfg.Output.Colour)
	}

	players := map[chess.Colour]player.Player{
		chess.White: white,
		chess.Black: black,
	}
	s.cfg.Logf(1, "%s (White) v %s (Black)", white.Name(), black.Name())

	for {
		if renderer != nil {
			if err := renderer.Render(s.board); err != nil {
				return s.outcome(""), err
			}
		}

		colour := s.board.ToMove
		switch s.Status() {
		case chess.Checkmate:
			return s.finish(ReasonCheckmate), nil
		case chess.Stalemate:
			return s.finish(ReasonStalemate), nil
		}
		if limit := s.cfg.Game.MaxPlies; limit > 0 && len(s.history) >= limit {
			return s.finish(ReasonPlyLimit), nil
		}
		if s.InCheck() {
			fmt.Fprintf(out, "%s is in check.\n", colour)
		}

		p := players[colour]
		m, promotion, err := p.ChooseMove(s.board.Copy(), colour)
		switch {
		case err == nil:
		case stderrors.Is(err, errors.ErrResigned):
			o := s.finish(ReasonResigned)
			o.Winner = colour.Opposite()
			return o, nil
		case stderrors.Is(err, errors.ErrUndoRequested):
			if _, err := s.UndoTurn(colour); err != nil {
				fmt.Fprintf(out, "%s: %v.\n", p.Name(), err)
			}
			continue
		case stderrors.Is(err, io.EOF):
			return s.finish(ReasonEndOfInput), nil
		default:
			return s.outcome(""), errors.Wrapf(err, "%s to move", colour)
		}

		promote := engine.PromotionFunc(p.ChoosePromotion)
		if promotion.IsPromotion() {
			promote = engine.PromoteTo(promotion)
		}
		ply, err := s.Play(m, promote)
		if err != nil {
			fmt.Fprintf(out, "%v. Try again.\n", err)
			continue
		}
		fmt.Fprintf(out, "%s plays %s.\n", p.Name(), ply.SAN)
	}
}

// outcome reports the current state of the game as stopped for reason.
func (s *Session) outcome(reason string) Outcome {
	status := s.Status()
	o := Outcome{
		Status: status,
		Plies:  len(s.history),
		Reason: reason,
	}
	if status == chess.Checkmate {
		o.Winner = s.board.ToMove.Opposite()
	}
	return o
}

func (s *Session) finish(reason string) Outcome {
	o := s.outcome(reason)
	s.cfg.Logf(1, "game over: %s", o)
	return o
}
