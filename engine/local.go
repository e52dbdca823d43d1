// Package engine drives games between two agents: it asks the mover's agent
// for a move, applies it, handles forced passes, and stops when neither side
// can move.
package engine

import (
	"fmt"

	"othello/game"

	"github.com/rs/zerolog/log"
)

// Agent chooses a move for one side. FindMove is only called when the side to
// move has at least one legal move.
type Agent interface {
	FindMove(state *game.GameState) (game.Move, error)
}

// MaxTurns guards against a buggy agent looping the game forever. A real game
// has at most 60 placements plus a handful of passes.
const MaxTurns = 200

type Engine struct {
	State  *game.GameState
	Agents map[game.Side]Agent
	Moves  int // Placements made, passes excluded
}

// Local wires a game from state between two agents, one per color.
func Local(state *game.GameState, agents map[game.Side]Agent) *Engine {
	if agents[game.Light] == nil || agents[game.Dark] == nil {
		panic("both Light and Dark need an agent")
	}
	return &Engine{State: state, Agents: agents}
}

// Run executes the turn loop until the game is over, passing automatically
// when the side to move has no legal move, and returns the outcome.
func (e *Engine) Run() (game.Outcome, error) {
	log.Info().Msgf("%s is starting", e.State.Player())

	turns := 0
	for !e.State.GameOver() {
		turns++
		if turns > MaxTurns {
			return game.NotOver, fmt.Errorf("no terminal position after %d turns", MaxTurns)
		}

		if len(e.State.LegalMoves()) == 0 {
			log.Info().Msgf("%s has no legal moves, passing", e.State.Player())
			e.State = e.State.Pass()
			continue
		}

		mover := e.State.Player()
		move, err := e.Agents[e.State.Turn].FindMove(e.State)
		if err != nil {
			return game.NotOver, fmt.Errorf("%s agent: %w", mover, err)
		}
		next, err := e.State.Play(move)
		if err != nil {
			return game.NotOver, fmt.Errorf("%s played %v: %w", mover, move, err)
		}
		log.Debug().Msgf("%s played %v", mover, move)
		e.State = next
		e.Moves++
	}

	outcome, err := e.State.Winner()
	if err != nil {
		return game.NotOver, err
	}
	log.Info().Msgf("game over after %d moves: %s", e.Moves, outcome)
	return outcome, nil
}
