package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"othello/engine"
	"othello/experiments"
	"othello/game"
	"othello/searcher"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	mode := flag.String("mode", "play", "play, eval, or experiment")
	depth := flag.Int("depth", searcher.DefaultDepth, "search depth in plies")
	games := flag.Int("games", 10, "games per matchup in experiment mode")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	var err error
	switch *mode {
	case "play":
		err = runPlay(*depth)
	case "eval":
		err = runEval(*depth)
	case "experiment":
		err = experiments.RunDepthToStrength(*games)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("othello")
	}
}

// runPlay pits the engine (Light, moving first) against a human on stdin.
func runPlay(depth int) error {
	e := engine.Local(game.NewGameState(game.Light), map[game.Side]engine.Agent{
		game.Light: engine.NewSearchAgent(depth),
		game.Dark:  engine.NewHumanAgent(os.Stdin, os.Stdout),
	})
	outcome, err := e.Run()
	if err != nil {
		return err
	}
	fmt.Println(e.State.Board)
	fmt.Printf("%s!\n", outcome)
	return nil
}

// runEval reads a board text block from stdin and prints its minimax value
// from Light's perspective.
func runEval(depth int) error {
	text, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("read board: %w", err)
	}
	fmt.Println(searcher.EvaluateAtDepth(string(text), depth))
	return nil
}
