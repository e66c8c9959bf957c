package config

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// PlayerConfig says who plays each side.
type PlayerConfig struct {
	White PlayerKind
	Black PlayerKind

	// Names shown in prompts and results. Empty names are filled in by
	// the players themselves.
	WhiteName string
	BlackName string

	// Seed for computer players. Zero picks a seed from the clock.
	Seed int64
}

// NewPlayerConfig creates a PlayerConfig for a human playing White against
// the computer.
func NewPlayerConfig() *PlayerConfig {
	return &PlayerConfig{
		White: Human,
		Black: Computer,
	}
}

// GameConfig holds limits on a single game.
type GameConfig struct {
	// MaxPlies stops a game after this many half-moves (0 = no limit).
	MaxPlies int
}

// NewGameConfig creates a GameConfig with default values.
// All fields use Go zero values - games are unlimited by default.
func NewGameConfig() *GameConfig {
	return &GameConfig{}
}

// Validate checks that the game configuration is valid.
func (g *GameConfig) Validate() error {
	if g.MaxPlies < 0 {
		return fmt.Errorf("ply limit (%d) is negative: %w", g.MaxPlies, errors.ErrInvalidConfig)
	}
	return nil
}

// ServerConfig holds settings for the HTTP API.
type ServerConfig struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string

	// MaxGames caps the number of stored games (0 = no limit).
	MaxGames int
}

// NewServerConfig creates a ServerConfig with default values.
func NewServerConfig() *ServerConfig {
	return &ServerConfig{
		Addr: ":8080",
	}
}

// Validate checks that the server configuration is valid.
func (s *ServerConfig) Validate() error {
	if s.Addr == "" {
		return fmt.Errorf("empty listen address: %w", errors.ErrInvalidConfig)
	}
	if s.MaxGames < 0 {
		return fmt.Errorf("game limit (%d) is negative: %w", s.MaxGames, errors.ErrInvalidConfig)
	}
	return nil
}
