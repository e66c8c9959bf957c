// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

var (
	// Players
	whitePlayer = flag.String("white", "human", "Who plays White: human or computer")
	blackPlayer = flag.String("black", "computer", "Who plays Black: human or computer")
	whiteName   = flag.String("wname", "", "Name of the White player")
	blackName   = flag.String("bname", "", "Name of the Black player")
	seed        = flag.Int64("seed", 0, "Seed for computer players (0 = from the clock)")
	maxPlies    = flag.Int("maxply", 0, "Stop the game after N plies (0 = no limit)")

	// Display
	noBoard  = flag.Bool("noboard", false, "Don't draw the board before each move")
	noColour = flag.Bool("nocolour", false, "Draw the board without colours")

	// Output options
	outputFile   = flag.String("o", "", "Write the finished game to this file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	lineLength   = flag.Int("w", 80, "Maximum line length")
	outputFormat = flag.String("W", "", "Move notation: san, lalg, halg, elalg, uci")
	jsonOutput   = flag.Bool("J", false, "Write the finished game as JSON")
	noResults    = flag.Bool("noresults", false, "Don't output results")
	noNumbers    = flag.Bool("nonumbers", false, "Don't output move numbers")
	noChecks     = flag.Bool("nochecks", false, "Don't mark checks and mates")

	// Perft
	perftDepth = flag.Int("perft", 0, "Count the move tree of the initial position to depth N and exit")
	workers    = flag.Int("workers", 0, "Number of perft worker goroutines (0 = one per CPU)")
	hashSize   = flag.Int("hashsize", 1<<20, "Perft transposition table entries (0 = no table)")

	// Replay
	replayFile    = flag.String("replay", "", "Replay and check the coordinate moves in this file")
	materialMatch = flag.String("z", "", "With -replay, report the first position with this material (e.g., 'QR:qrr')")
	materialExact = flag.String("y", "", "With -replay, report the first position with exactly this material")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")
	verbose   = flag.Bool("v", false, "Log every move")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (no diagnostics)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	if err := applyPlayerFlags(cfg); err != nil {
		return err
	}
	if err := applyOutputFormatFlags(cfg); err != nil {
		return err
	}
	applyContentFlags(cfg)
	cfg.Game.MaxPlies = *maxPlies

	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
	}
	return cfg.Validate()
}

// applyPlayerFlags configures who plays each side.
func applyPlayerFlags(cfg *config.Config) error {
	white, err := config.ParsePlayerKind(*whitePlayer)
	if err != nil {
		return err
	}
	black, err := config.ParsePlayerKind(*blackPlayer)
	if err != nil {
		return err
	}
	cfg.Players.White = white
	cfg.Players.Black = black
	cfg.Players.WhiteName = *whiteName
	cfg.Players.BlackName = *blackName
	cfg.Players.Seed = *seed
	return nil
}

// applyContentFlags configures content output settings.
func applyContentFlags(cfg *config.Config) {
	cfg.Output.ShowBoard = !*noBoard
	cfg.Output.KeepResults = !*noResults
	cfg.Output.KeepMoveNumbers = !*noNumbers
	cfg.Output.KeepChecks = !*noChecks
	cfg.Output.JSONFormat = *jsonOutput
	if *lineLength > 0 {
		cfg.Output.MaxLineLength = uint(*lineLength)
	}
}

// applyOutputFormatFlags configures the move notation.
func applyOutputFormatFlags(cfg *config.Config) error {
	if *outputFormat == "" {
		cfg.Output.Format = config.SAN
		return nil
	}
	format, err := config.ParseOutputFormat(*outputFormat)
	if err != nil {
		return err
	}
	cfg.Output.Format = format
	return nil
}
