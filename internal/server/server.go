// Package server exposes chess games over a JSON HTTP API.
//
//	POST   /api/games              start a game
//	GET    /api/games/:id          game state
//	DELETE /api/games/:id          drop a game
//	GET    /api/games/:id/moves    legal moves for the side to move, ?from=e2 for one piece
//	POST   /api/games/:id/moves    play {"move": "e7e8", "promotion": "n"}
//	POST   /api/games/:id/computer let the computer move
//	POST   /api/games/:id/undo     take back the last ply
package server

import (
	stderrors "errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

var errGameLimit = stderrors.New("game limit reached")

// Server is the HTTP API over a store of games.
type Server struct {
	cfg   *config.Config
	app   *fiber.App
	games *store
}

// New creates a server with its routes registered. Requests are logged to
// cfg.LogFile unless the verbosity is zero.
func New(cfg *config.Config) *Server {
	s := &Server{
		cfg:   cfg,
		games: newStore(cfg),
	}

	s.app = fiber.New(fiber.Config{
		AppName:               "chess-rules",
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})
	s.app.Use(recover.New())
	if cfg.Verbosity > 0 && cfg.LogFile != nil {
		s.app.Use(logger.New(logger.Config{Output: cfg.LogFile}))
	}

	api := s.app.Group("/api")
	games := api.Group("/games")
	games.Post("/", s.createGame)
	games.Get("/:id", s.getGame)
	games.Delete("/:id", s.deleteGame)
	games.Get("/:id/moves", s.legalMoves)
	games.Post("/:id/moves", s.playMove)
	games.Post("/:id/computer", s.computerMove)
	games.Post("/:id/undo", s.undo)

	return s
}

// App returns the underlying fiber application.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen serves the API on cfg.Server.Addr until Shutdown is called.
func (s *Server) Listen() error {
	s.cfg.Logf(1, "listening on %s", s.cfg.Server.Addr)
	return s.app.Listen(s.cfg.Server.Addr)
}

// Shutdown stops the server, waiting for requests in progress.
func (s *Server) Shutdown() error {
	s.cfg.Logf(1, "stopping with %d games in play", s.games.count())
	return s.app.Shutdown()
}

// errorHandler answers errors that escaped the handlers, such as unknown
// routes, in the API's JSON shape.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if stderrors.As(err, &fe) {
		code = fe.Code
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}
