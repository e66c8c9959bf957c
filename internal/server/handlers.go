package server

import (
	stderrors "errors"

	"github.com/gofiber/fiber/v2"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/notation"
	"github.com/lgbarn/chess-rules-go/internal/output"
)

// moveRequest is the body of POST /api/games/:id/moves. The promotion may
// also be given as a fifth letter of the move.
type moveRequest struct {
	Move      string `json:"move"`
	Promotion string `json:"promotion"`
}

// legalMovesResponse lists the moves available to the side to move.
type legalMovesResponse struct {
	ToMove string   `json:"to_move"`
	Moves  []string `json:"moves"`
}

// statusFor maps an error to the HTTP status it is reported with.
func statusFor(err error) int {
	switch {
	case stderrors.Is(err, errors.ErrGameNotFound):
		return fiber.StatusNotFound
	case stderrors.Is(err, errors.ErrInvalidMoveText), stderrors.Is(err, errors.ErrInvalidSquare):
		return fiber.StatusBadRequest
	case stderrors.Is(err, errors.ErrGameOver), stderrors.Is(err, errors.ErrNothingToUndo):
		return fiber.StatusConflict
	case stderrors.Is(err, errors.ErrIllegalMove), stderrors.Is(err, errors.ErrWrongSide):
		return fiber.StatusUnprocessableEntity
	case stderrors.Is(err, errGameLimit):
		return fiber.StatusServiceUnavailable
	}
	return fiber.StatusInternalServerError
}

func fail(c *fiber.Ctx, err error) error {
	return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
}

// state writes the current state of a game. The caller holds e.mu.
func state(c *fiber.Ctx, e *entry) error {
	return c.JSON(output.GameToJSON(e.session.Record(e.id, "", "", "")))
}

func (s *Server) createGame(c *fiber.Ctx) error {
	e, err := s.games.create()
	if err != nil {
		return fail(c, err)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	c.Status(fiber.StatusCreated)
	return state(c, e)
}

func (s *Server) getGame(c *fiber.Ctx) error {
	e, err := s.games.get(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return state(c, e)
}

func (s *Server) deleteGame(c *fiber.Ctx) error {
	if err := s.games.remove(c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) legalMoves(c *fiber.Ctx) error {
	e, err := s.games.get(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	var moves []chess.Move
	if from := c.Query("from"); from != "" {
		sq, err := notation.ParseSquare(from)
		if err != nil {
			return fail(c, err)
		}
		moves = e.session.LegalMovesFrom(sq)
	} else {
		moves = e.session.LegalMoves()
	}

	resp := legalMovesResponse{
		ToMove: colourName(e.session.ToMove()),
		Moves:  make([]string, 0, len(moves)),
	}
	for _, m := range moves {
		if !e.session.IsPromotion(m) {
			resp.Moves = append(resp.Moves, notation.FormatMove(m))
			continue
		}
		for _, p := range engine.PromotionPieces {
			resp.Moves = append(resp.Moves, notation.FormatMoveWithPromotion(m, p))
		}
	}
	return c.JSON(resp)
}

func (s *Server) playMove(c *fiber.Ctx) error {
	e, err := s.games.get(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}

	var req moveRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, errors.Wrap(errors.ErrInvalidMoveText, "reading request body"))
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	m, promotion, err := notation.ParseMove(e.session.ToMove(), req.Move)
	if err != nil {
		return fail(c, err)
	}
	if promotion == chess.Empty {
		promotion = notation.PromotionFromLetter(req.Promotion)
	}

	if _, err := e.session.Play(m, engine.PromoteTo(promotion)); err != nil {
		return fail(c, err)
	}
	return state(c, e)
}

func (s *Server) computerMove(c *fiber.Ctx) error {
	e, err := s.games.get(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	colour := e.session.ToMove()
	m, _, err := e.computer.ChooseMove(e.session.Board(), colour)
	if stderrors.Is(err, errors.ErrNoLegalMoves) {
		return fail(c, errors.Wrap(errors.ErrGameOver, e.session.Status().String()))
	}
	if err != nil {
		return fail(c, err)
	}
	if _, err := e.session.Play(m, e.computer.ChoosePromotion); err != nil {
		return fail(c, err)
	}
	return state(c, e)
}

func (s *Server) undo(c *fiber.Ctx) error {
	e, err := s.games.get(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.session.Undo(); err != nil {
		return fail(c, err)
	}
	return state(c, e)
}

func colourName(c chess.Colour) string {
	if c == chess.Black {
		return "black"
	}
	return "white"
}
