package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"othello/config"
	"othello/engine"
	"othello/experiments"
	"othello/game"
	"othello/server"
)

func main() {
	mode := flag.String("mode", "play", "play, selfplay, experiment, or serve")
	depth := flag.Int("depth", 0, "search depth override (0 keeps the config value)")
	algorithm := flag.String("algorithm", "", "search algorithm override: minimax or alphabeta")
	color := flag.String("color", "black", "human side in play mode: black or white")
	configPath := flag.String("config", "", "path to a YAML config file")
	positions := flag.Int("positions", 20, "positions to sample in experiment mode")
	maxDepth := flag.Int("maxdepth", 4, "largest search depth in experiment mode")
	seed := flag.Uint64("seed", 1, "random seed for experiment position sampling")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatal().Msgf("loading config: %v", err)
		}
	}
	if *depth > 0 {
		cfg.Depth = *depth
	}
	if *algorithm != "" {
		cfg.Algorithm = *algorithm
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Msgf("invalid settings: %v", err)
	}

	var err error
	switch *mode {
	case "play":
		err = runPlay(cfg, *color)
	case "selfplay":
		err = runSelfplay(cfg)
	case "experiment":
		err = experiments.Comparison{
			Positions: *positions,
			MaxDepth:  *maxDepth,
			Seed:      *seed,
			OutDir:    filepath.Join("experiments", "comparison"),
		}.Run()
	case "serve":
		var srv *server.Server
		srv, err = server.New(cfg)
		if err == nil {
			err = srv.ListenAndServe()
		}
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatal().Msgf("%s: %v", *mode, err)
	}
}

// runPlay is the console game: a human against the configured
// searcher, board rendered before every turn.
func runPlay(cfg config.Config, color string) error {
	search, err := cfg.NewSearcher()
	if err != nil {
		return err
	}
	human := engine.NewHumanAgent(os.Stdin, os.Stdout)
	ai := engine.NewSearchAgent(search)

	var e *engine.Local
	switch color {
	case "black":
		e = engine.NewLocal(human, ai)
	case "white":
		e = engine.NewLocal(ai, human)
	default:
		return fmt.Errorf("unknown color %q", color)
	}
	e.Trace = os.Stdout

	winner, err := e.Run()
	if err != nil {
		return err
	}
	black, white := e.Board.Counts()
	fmt.Printf("Game over! Final score: X: %d, O: %d\n", black, white)
	fmt.Printf("Result: %s\n", resultText(winner))
	return nil
}

func runSelfplay(cfg config.Config) error {
	black, err := cfg.NewSearcher()
	if err != nil {
		return err
	}
	white, err := cfg.NewSearcher()
	if err != nil {
		return err
	}

	e := engine.NewLocal(engine.NewSearchAgent(black), engine.NewSearchAgent(white))
	e.Trace = os.Stdout
	winner, err := e.Run()
	if err != nil {
		return err
	}
	fmt.Printf("Result: %s\n", resultText(winner))
	return nil
}

func resultText(winner game.Cell) string {
	switch winner {
	case game.Black:
		return "Black (X) wins"
	case game.White:
		return "White (O) wins"
	default:
		return "Draw"
	}
}
