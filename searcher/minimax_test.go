package searcher

import (
	"math"
	"testing"

	"othello/game"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// exhaustive is an unpruned reference minimax with the same terminal handling
// as the searcher, for soundness comparisons.
func exhaustive(t *testing.T, state *game.GameState, depth int) int {
	t.Helper()

	if depth == 0 {
		return game.Evaluate(state.Board)
	}
	switch game.Result(state.Board) {
	case game.LightWins:
		return WinValue
	case game.DarkWins:
		return -WinValue
	case game.Tie:
		return 0
	}

	moves := state.LegalMoves()
	if len(moves) == 0 {
		return exhaustive(t, state.Pass(), depth)
	}

	best := math.MinInt
	if state.Turn == game.Dark {
		best = math.MaxInt
	}
	for _, m := range moves {
		child, err := state.Play(m)
		require.NoError(t, err)
		score := exhaustive(t, child, depth-1)
		if state.Turn == game.Light && score > best {
			best = score
		}
		if state.Turn == game.Dark && score < best {
			best = score
		}
	}
	return best
}

// randomState plays up to plies random moves from the starting position,
// passing when the mover is stuck, to produce a reachable board.
func randomState(t *testing.T, rng *rand.Rand, plies int) *game.GameState {
	t.Helper()

	state := game.NewGameState(game.Light)
	for i := 0; i < plies && !state.GameOver(); i++ {
		moves := state.LegalMoves()
		if len(moves) == 0 {
			state = state.Pass()
			continue
		}
		next, err := state.Play(moves[rng.Intn(len(moves))])
		require.NoError(t, err)
		state = next
	}
	return state
}

func TestValueDepthZeroCutoff(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 20; i++ {
		state := randomState(t, rng, rng.Intn(60))
		want := game.Evaluate(state.Board)

		require.Equal(t, want, Value(state, 0, math.MinInt, math.MaxInt),
			"Depth 0 should return the static evaluation regardless of whose turn it is")
		require.Equal(t, want, Value(state.Pass(), 0, math.MinInt, math.MaxInt),
			"Depth 0 should return the static evaluation regardless of whose turn it is")
	}
}

func TestValueTerminalScores(t *testing.T) {
	// A board holding only Light pieces: game over, Light ahead by 5.
	var lightOnly game.Board
	for col := 0; col < 5; col++ {
		lightOnly[0][col] = game.Light
	}
	var darkOnly game.Board
	for col := 0; col < 5; col++ {
		darkOnly[0][col] = game.Dark
	}

	t.Run("a decided game scores the win value, not the differential", func(t *testing.T) {
		state := &game.GameState{Board: lightOnly, Turn: game.Light}
		require.Equal(t, WinValue, Value(state, 3, math.MinInt, math.MaxInt))

		state = &game.GameState{Board: darkOnly, Turn: game.Light}
		require.Equal(t, -WinValue, Value(state, 3, math.MinInt, math.MaxInt))
	})

	t.Run("depth zero takes precedence over the terminal score", func(t *testing.T) {
		state := &game.GameState{Board: lightOnly, Turn: game.Light}
		require.Equal(t, 5, Value(state, 0, math.MinInt, math.MaxInt),
			"The cutoff check comes before the game-over check")
	})

	t.Run("a terminal tie scores zero", func(t *testing.T) {
		var b game.Board
		for row := 0; row < game.BoardSize; row++ {
			for col := 0; col < game.BoardSize; col++ {
				if row < 4 {
					b[row][col] = game.Light
				} else {
					b[row][col] = game.Dark
				}
			}
		}
		state := &game.GameState{Board: b, Turn: game.Dark}
		require.Equal(t, 0, Value(state, 5, math.MinInt, math.MaxInt))
	})
}

func TestValueForcedPassKeepsDepth(t *testing.T) {
	// Dark can play (0,2) by capturing the W at (0,1); Light is stuck.
	var b game.Board
	b[0][0] = game.Dark
	b[0][1] = game.Light

	lightToMove := &game.GameState{Board: b, Turn: game.Light}
	darkToMove := &game.GameState{Board: b, Turn: game.Dark}

	require.Empty(t, lightToMove.LegalMoves(), "Light should have no legal moves")
	require.NotEmpty(t, darkToMove.LegalMoves(), "Dark should have a legal move")
	require.False(t, lightToMove.GameOver())

	for depth := 1; depth <= 4; depth++ {
		require.Equal(t,
			Value(darkToMove, depth, math.MinInt, math.MaxInt),
			Value(lightToMove, depth, math.MinInt, math.MaxInt),
			"A forced pass must not consume a ply at depth %d", depth)
	}
}

func TestValueAlphaBetaSoundness(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 15; i++ {
		state := randomState(t, rng, rng.Intn(40))
		for depth := 1; depth <= 3; depth++ {
			want := exhaustive(t, state, depth)
			got := Value(state, depth, math.MinInt, math.MaxInt)
			require.Equal(t, want, got,
				"Pruned and exhaustive search must agree at depth %d (board %d, %s to move)",
				depth, i, state.Player())
		}
	}

	// A few deeper positions
	for i := 0; i < 3; i++ {
		state := randomState(t, rng, 20+rng.Intn(20))
		want := exhaustive(t, state, 4)
		got := Value(state, 4, math.MinInt, math.MaxInt)
		require.Equal(t, want, got, "Pruned and exhaustive search must agree at depth 4")
	}
}
