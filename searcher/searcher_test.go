package searcher

import (
	"math"
	"testing"
	"time"

	"othello/game"

	"github.com/stretchr/testify/require"
)

func TestFindBestMove(t *testing.T) {
	t.Run("Light keeps the first row-major move on ties", func(t *testing.T) {
		// At depth 1 every opening move flips exactly one piece, so all four
		// candidates score 3 and the incumbent survives.
		s := New(WithDepth(1))

		move, value, err := s.FindBestMove(game.NewGameState(game.Light))
		require.NoError(t, err)
		require.Equal(t, game.Move{Row: 2, Col: 4}, move)
		require.Equal(t, 3, value)
	})

	t.Run("Dark minimizes", func(t *testing.T) {
		s := New(WithDepth(1))

		move, value, err := s.FindBestMove(game.NewGameState(game.Dark))
		require.NoError(t, err)
		require.Equal(t, game.Move{Row: 2, Col: 3}, move)
		require.Equal(t, -3, value)
	})

	t.Run("agrees with the recursive value at the root", func(t *testing.T) {
		s := New(WithDepth(3))
		state := game.NewGameState(game.Light)

		_, value, err := s.FindBestMove(state)
		require.NoError(t, err)
		require.Equal(t, Value(state, 3, math.MinInt, math.MaxInt), value,
			"Root selection over children at depth-1 equals searching the root at full depth")
	})

	t.Run("errors when the mover has no legal move", func(t *testing.T) {
		var b game.Board
		b[0][0] = game.Dark
		b[0][1] = game.Light
		state := &game.GameState{Board: b, Turn: game.Light}

		_, _, err := New(WithDepth(2)).FindBestMove(state)
		require.ErrorIs(t, err, ErrNoLegalMoves)
	})
}

func TestEvaluateAtDepth(t *testing.T) {
	startText := game.NewBoard().String()

	t.Run("depth zero equals the static evaluation", func(t *testing.T) {
		require.Equal(t, 0, EvaluateAtDepth(startText, 0))
	})

	t.Run("matches searching the parsed state with an open window", func(t *testing.T) {
		state := game.NewGameState(game.Light)
		require.Equal(t, Value(state, 3, math.MinInt, math.MaxInt), EvaluateAtDepth(startText, 3))
	})

	t.Run("tolerates unrecognized characters", func(t *testing.T) {
		lenient := "........\n........\n........\n...WB...\n...BW...\n........\n........\n........"
		require.Equal(t, EvaluateAtDepth(startText, 2), EvaluateAtDepth(lenient, 2))
	})
}

func TestCollector(t *testing.T) {
	collector := NewCollector()
	s := New(WithDepth(3), WithCollector(collector))

	_, _, err := s.FindBestMove(game.NewGameState(game.Light))
	require.NoError(t, err)

	metric := collector.Complete()
	require.Equal(t, 3, metric.Depth)
	require.Greater(t, metric.Nodes, 0, "A depth-3 search visits nodes")
	require.Greater(t, metric.Leaves, 0, "A depth-3 search from the start reaches cutoff leaves")
	require.Greater(t, metric.Duration, time.Duration(0))
}

func TestSearcherDefaults(t *testing.T) {
	require.Equal(t, DefaultDepth, New().Depth())
	require.Equal(t, 2, New(WithDepth(2)).Depth())
	require.Equal(t, DefaultDepth, New(WithDepth(-1)).Depth(), "Negative depths are ignored")
}
