// chess-server serves chess games over a JSON HTTP API.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/server"
)

var (
	addr     = flag.String("addr", ":8080", "Listen address")
	maxGames = flag.Int("maxgames", 0, "Maximum number of stored games (0 = no limit)")
	seed     = flag.Int64("seed", 0, "Seed for the computer player (0 = from the clock)")
	logFile  = flag.String("l", "", "Write the request log to this file (default: stderr)")
	quiet    = flag.Bool("s", false, "Silent mode (no request log)")
	verbose  = flag.Bool("v", false, "Also log game creation and deletion")
)

func main() {
	flag.Parse()

	cfg := config.NewConfig()
	cfg.Server.Addr = *addr
	cfg.Server.MaxGames = *maxGames
	cfg.Players.Seed = *seed
	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
	}
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		defer file.Close()
		cfg.LogFile = file
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	srv := server.New(cfg)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-stop
		cfg.Logf(1, "shutting down")
		if err := srv.Shutdown(); err != nil {
			fmt.Fprintf(os.Stderr, "Error shutting down: %v\n", err)
		}
	}()

	if err := srv.Listen(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
