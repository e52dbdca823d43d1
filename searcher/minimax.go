package searcher

import (
	"math"

	"othello/game"
)

// WinValue is the score of a decided game from Light's perspective. It must
// dominate any reachable static evaluation (at most 64 in magnitude) so that
// a true win is always preferred over a heuristic approximation at equal
// depth.
const WinValue = 100

// Value returns the minimax value of state from Light's perspective,
// searching depth plies with alpha-beta pruning and window (alpha, beta).
// Light maximizes, Dark minimizes, regardless of which side asked.
func Value(state *game.GameState, depth, alpha, beta int) int {
	if depth < 0 {
		depth = 0
	}
	s := New(WithDepth(depth))
	return s.value(state, depth, alpha, beta)
}

// value is the recursive core. Terminal checks in precedence order: a depth-0
// cutoff returns the static evaluation even on a finished board; a true
// game-over returns the dominating win/loss/tie score; otherwise recurse over
// the mover's legal moves.
func (s *Searcher) value(state *game.GameState, depth, alpha, beta int) int {
	s.metrics.AddNode()

	if depth == 0 {
		s.metrics.AddLeaf()
		return game.Evaluate(state.Board)
	}

	switch game.Result(state.Board) {
	case game.LightWins:
		s.metrics.AddTerminal()
		return WinValue
	case game.DarkWins:
		s.metrics.AddTerminal()
		return -WinValue
	case game.Tie:
		s.metrics.AddTerminal()
		return 0
	}

	moves := state.LegalMoves()
	if len(moves) == 0 {
		// Forced pass: the game is not over, so the opponent must have a
		// move. A pass does not cost a ply; the opponent searches at the
		// same remaining depth.
		return s.value(state.Pass(), depth, alpha, beta)
	}

	if state.Turn == game.Light {
		best := math.MinInt
		for _, m := range moves {
			child, err := state.Play(m)
			if err != nil {
				panic(err)
			}
			score := s.value(child, depth-1, alpha, beta)
			if score > best {
				best = score
			}
			if score > alpha {
				alpha = score
			}
			if beta <= alpha {
				s.metrics.AddPrune()
				break
			}
		}
		return best
	}

	best := math.MaxInt
	for _, m := range moves {
		child, err := state.Play(m)
		if err != nil {
			panic(err)
		}
		score := s.value(child, depth-1, alpha, beta)
		if score < best {
			best = score
		}
		if score < beta {
			beta = score
		}
		if beta <= alpha {
			s.metrics.AddPrune()
			break
		}
	}
	return best
}
