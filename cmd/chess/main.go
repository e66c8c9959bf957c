// chess plays chess on the console between humans and a random-move
// computer player. It can also count move trees (-perft) and replay games
// written as coordinate moves (-replay).
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
	"github.com/lgbarn/chess-rules-go/internal/matching"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/player"
	"github.com/lgbarn/chess-rules-go/internal/processing"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	cfg.Output.Colour = !*noColour && isTerminal(os.Stdout)

	switch {
	case *perftDepth > 0:
		runPerft(cfg, os.Stdout, *perftDepth)
	case *replayFile != "":
		os.Exit(runReplay(cfg, *replayFile))
	default:
		os.Exit(runGame(cfg))
	}
}

// isTerminal reports whether f is a terminal that understands colours.
func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}
}

// openGameOutput returns the writer finished games go to, and a function
// closing it.
func openGameOutput(cfg *config.Config) (io.Writer, func()) {
	if *outputFile == "" {
		return cfg.OutputFile, func() {}
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	return file, func() { file.Close() }
}

// newPlayer creates the player configured for colour. Human players read
// from in.
func newPlayer(cfg *config.Config, colour chess.Colour, in *bufio.Reader) player.Player {
	kind, name := cfg.Players.White, cfg.Players.WhiteName
	if colour == chess.Black {
		kind, name = cfg.Players.Black, cfg.Players.BlackName
	}

	if kind == config.Computer {
		seed := cfg.Players.Seed
		if seed != 0 && colour == chess.Black {
			seed++
		}
		return player.NewRandom(name, seed)
	}
	if name == "" {
		name = colour.String()
	}
	return player.NewHuman(name, in, cfg.OutputFile)
}

// runGame plays one game on the console and writes it out. It returns the
// process exit code.
func runGame(cfg *config.Config) int {
	in := bufio.NewReader(cfg.InputFile)
	white := newPlayer(cfg, chess.White, in)
	black := newPlayer(cfg, chess.Black, in)

	session := game.NewSession(cfg)
	outcome, err := session.Run(white, black)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	fmt.Fprintln(cfg.OutputFile, outcome)

	rec := session.Record("", white.Name(), black.Name(), outcome.Reason)
	rec.Result = outcome.Result()
	if err := writeGame(cfg, rec); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing game: %v\n", err)
		return 1
	}
	return 0
}

// writeGame writes a finished game in the configured format.
func writeGame(cfg *config.Config, rec *output.GameRecord) error {
	w, closeOutput := openGameOutput(cfg)
	defer closeOutput()

	gw := output.NewGameWriter(w, cfg.Output)
	if err := gw.WriteGame(rec); err != nil {
		return err
	}
	return gw.Close()
}

// runPerft prints the perft count below each root move of the initial
// position, sorted by move, and the total.
func runPerft(cfg *config.Config, w io.Writer, depth int) {
	var table *hashing.ThreadSafeNodeTable
	if *hashSize > 0 {
		table = hashing.NewThreadSafeNodeTable(*hashSize)
	}

	start := time.Now()
	divide := engine.PerftDivideCached(chess.NewInitialBoard(), depth, *workers, table)
	elapsed := time.Since(start)

	total := writeDivide(w, divide)
	fmt.Fprintf(w, "\nNodes: %d\n", total)

	cfg.Logf(1, "perft %d: %d nodes in %s", depth, total, elapsed.Round(time.Millisecond))
	if table != nil {
		cfg.Logf(2, "table: %d entries, %d hits", table.Len(), table.Hits())
	}
}

// writeDivide writes one "move: nodes" line per root move and returns the
// total.
func writeDivide(w io.Writer, divide map[string]uint64) uint64 {
	moves := make([]string, 0, len(divide))
	for m := range divide {
		moves = append(moves, m)
	}
	sort.Strings(moves)

	var total uint64
	for _, m := range moves {
		fmt.Fprintf(w, "%s: %d\n", m, divide[m])
		total += divide[m]
	}
	return total
}

// runReplay replays the moves in filename, writes the game and reports
// what it found. It returns 1 when a move could not be played.
func runReplay(cfg *config.Config, filename string) int {
	file, err := os.Open(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %s: %v\n", filename, err)
		return 1
	}
	defer file.Close()

	moves, err := processing.ReadMoves(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	session, result := processing.ReplayMoves(cfg, moves)
	if cfg.Output.ShowBoard {
		if err := output.NewRenderer(cfg.OutputFile, cfg.Output.Colour).Render(session.Board()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}
	if err := writeGame(cfg, session.Record("", "", "", "")); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing game: %v\n", err)
		return 1
	}

	analysis := processing.AnalyzeGame(session)
	reportAnalysis(cfg, analysis)
	if err := reportMaterial(cfg, session.Moves()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	if !result.Valid {
		fmt.Fprintf(os.Stderr, "%s: %v\n", result.ErrorMsg, result.Err)
		return 1
	}
	return 0
}

// reportAnalysis logs a summary of a replayed game.
func reportAnalysis(cfg *config.Config, a *processing.GameAnalysis) {
	cfg.Logf(1, "%d plies, %s, %d checks, %d captures, %d distinct positions",
		a.PlyCount, a.Status, a.CheckCount, a.CaptureCount, a.DistinctPositions)
	cfg.Logf(2, "castling: %v, en passant: %v, underpromotion: %v",
		a.HasCastling, a.HasEnPassant, a.UnderpromotionFound())
}

// reportMaterial reports the first position matching the -z or -y material
// pattern, if one was given.
func reportMaterial(cfg *config.Config, plies []chess.Ply) error {
	pattern, exact := *materialMatch, false
	if *materialExact != "" {
		pattern, exact = *materialExact, true
	}
	if pattern == "" {
		return nil
	}

	mm, err := matching.NewMaterialMatcher(pattern, exact)
	if err != nil {
		return err
	}
	if ply, ok := mm.FirstMatch(plies); ok {
		fmt.Fprintf(cfg.OutputFile, "Material %s first reached after ply %d.\n", pattern, ply)
	} else {
		fmt.Fprintf(cfg.OutputFile, "Material %s never reached.\n", pattern)
	}
	return nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess [options]\n\n")
	fmt.Fprintf(os.Stderr, "Play chess on the console, count move trees or replay games.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nMoves are typed as coordinates: e2e4, e7e8q (promotion), e1g1 (castling).\n")
	fmt.Fprintf(os.Stderr, "Type 'undo' to take back your last move or 'resign' to give up.\n")
	fmt.Fprintf(os.Stderr, "\nOutput formats (-W):\n")
	fmt.Fprintf(os.Stderr, "  san    Standard Algebraic Notation (default)\n")
	fmt.Fprintf(os.Stderr, "  lalg   Long algebraic (e2e4)\n")
	fmt.Fprintf(os.Stderr, "  halg   Hyphenated long algebraic (e2-e4)\n")
	fmt.Fprintf(os.Stderr, "  elalg  Enhanced long algebraic (Ng1f3)\n")
	fmt.Fprintf(os.Stderr, "  uci    UCI format\n")
}
