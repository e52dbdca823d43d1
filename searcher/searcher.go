// Package searcher implements depth-limited minimax with alpha-beta pruning
// over the two-player zero-sum Othello game tree. Scores are always from
// Light's perspective: Light maximizes, Dark minimizes.
package searcher

import (
	"errors"
	"fmt"
	"math"

	"othello/game"
)

// DefaultDepth is the search depth used when no option overrides it.
const DefaultDepth = 5

var ErrNoLegalMoves = errors.New("no legal moves")

type Searcher struct {
	depth   int
	metrics Collector
}

type Option func(*Searcher)

func WithDepth(depth int) Option {
	return func(s *Searcher) {
		if depth >= 0 {
			s.depth = depth
		}
	}
}

func WithCollector(c Collector) Option {
	return func(s *Searcher) {
		if c != nil {
			s.metrics = c
		}
	}
}

func New(options ...Option) *Searcher {
	s := &Searcher{
		depth:   DefaultDepth,
		metrics: NewNopCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// Depth returns the configured search depth in plies.
func (s *Searcher) Depth() int {
	return s.depth
}

// Value computes the minimax value of state at the searcher's depth with a
// fully open window.
func (s *Searcher) Value(state *game.GameState) int {
	s.metrics.Start(s.depth)
	return s.value(state, s.depth, math.MinInt, math.MaxInt)
}

// FindBestMove evaluates every legal move for the side to move and returns
// the one with the extreme value along with that value: max for Light, min
// for Dark. Only a strictly better value replaces the incumbent, so ties keep
// the earlier move in row-major order. Each candidate is searched with a
// fresh fully open window rather than carrying alpha across siblings; that
// loses some pruning at the root but keeps selection independent of sibling
// order.
func (s *Searcher) FindBestMove(state *game.GameState) (game.Move, int, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, 0, fmt.Errorf("find best move for %s: %w", state.Player(), ErrNoLegalMoves)
	}

	s.metrics.Start(s.depth)

	childDepth := s.depth - 1
	if childDepth < 0 {
		childDepth = 0
	}

	var best game.Move
	var bestValue int
	for i, m := range moves {
		child, err := state.Play(m)
		if err != nil {
			panic(err)
		}
		value := s.value(child, childDepth, math.MinInt, math.MaxInt)
		if i == 0 || better(state.Turn, value, bestValue) {
			best, bestValue = m, value
		}
	}
	return best, bestValue, nil
}

func better(side game.Side, value, incumbent int) bool {
	if side == game.Light {
		return value > incumbent
	}
	return value < incumbent
}

// EvaluateAtDepth parses the text form of a board and returns its minimax
// value from Light's perspective with Light to play, searching depth plies
// with an initially fully open window.
func EvaluateAtDepth(boardText string, depth int) int {
	state := &game.GameState{Board: game.ParseBoard(boardText), Turn: game.Light}
	return Value(state, depth, math.MinInt, math.MaxInt)
}
