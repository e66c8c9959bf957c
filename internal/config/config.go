// Package config provides configuration for the chess programs.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// OutputFormat represents different move notation formats.
type OutputFormat int

const (
	SAN   OutputFormat = iota // Standard Algebraic Notation
	LALG                      // Long algebraic (e2e4)
	HALG                      // Hyphenated long algebraic (e2-e4)
	ELALG                     // Enhanced long algebraic (Ng1f3)
	UCI                       // UCI format (same as LALG with lowercase promotion)
)

var formatNames = map[string]OutputFormat{
	"san":   SAN,
	"lalg":  LALG,
	"halg":  HALG,
	"elalg": ELALG,
	"uci":   UCI,
}

// ParseOutputFormat returns the format named by s, e.g. "san" or "uci".
func ParseOutputFormat(s string) (OutputFormat, error) {
	if f, ok := formatNames[strings.ToLower(s)]; ok {
		return f, nil
	}
	return SAN, fmt.Errorf("unknown notation %q: %w", s, errors.ErrInvalidConfig)
}

// PlayerKind says who chooses the moves for one side.
type PlayerKind int

const (
	Human PlayerKind = iota
	Computer
)

// String returns the flag spelling of a player kind.
func (k PlayerKind) String() string {
	if k == Computer {
		return "computer"
	}
	return "human"
}

// ParsePlayerKind reads "human" or "computer"; "h" and "c" are accepted.
func ParsePlayerKind(s string) (PlayerKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "human", "h":
		return Human, nil
	case "computer", "c", "cpu":
		return Computer, nil
	}
	return Human, fmt.Errorf("unknown player %q: %w", s, errors.ErrInvalidConfig)
}

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=results, 2=running commentary

	// Sub-configurations
	Output  *OutputConfig
	Players *PlayerConfig
	Game    *GameConfig
	Server  *ServerConfig

	// Streams
	InputFile  io.Reader
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Output:     NewOutputConfig(),
		Players:    NewPlayerConfig(),
		Game:       NewGameConfig(),
		Server:     NewServerConfig(),
		InputFile:  os.Stdin,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate checks every sub-configuration.
func (c *Config) Validate() error {
	if c.Verbosity < 0 {
		return fmt.Errorf("verbosity %d: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if err := c.Game.Validate(); err != nil {
		return err
	}
	return c.Server.Validate()
}

// Logf writes a diagnostic line when the configured verbosity reaches level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}
