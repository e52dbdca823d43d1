package engine

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"othello/game"
	"othello/searcher"

	"golang.org/x/exp/rand"
)

// SearchAgent picks moves with the minimax searcher.
type SearchAgent struct {
	Searcher *searcher.Searcher
}

func NewSearchAgent(depth int, options ...searcher.Option) *SearchAgent {
	options = append([]searcher.Option{searcher.WithDepth(depth)}, options...)
	return &SearchAgent{Searcher: searcher.New(options...)}
}

func (a *SearchAgent) FindMove(state *game.GameState) (game.Move, error) {
	move, _, err := a.Searcher.FindBestMove(state)
	return move, err
}

// RandomAgent picks a uniformly random legal move. It is the baseline
// opponent in experiments.
type RandomAgent struct {
	rng *rand.Rand
}

func NewRandomAgent(seed uint64) *RandomAgent {
	return &RandomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *RandomAgent) FindMove(state *game.GameState) (game.Move, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, fmt.Errorf("random agent for %s: %w", state.Player(), searcher.ErrNoLegalMoves)
	}
	return moves[a.rng.Intn(len(moves))], nil
}

// HumanAgent prints the board with the legal cells numbered, then reads a
// move index from in, re-prompting until it gets a valid choice.
type HumanAgent struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewHumanAgent(in io.Reader, out io.Writer) *HumanAgent {
	return &HumanAgent{in: bufio.NewScanner(in), out: out}
}

func (a *HumanAgent) FindMove(state *game.GameState) (game.Move, error) {
	moves := state.LegalMoves()
	fmt.Fprintln(a.out, game.RenderWithMoves(state.Board, moves))
	for {
		fmt.Fprintf(a.out, "Which move do you want to play? [0-%d] ", len(moves)-1)
		if !a.in.Scan() {
			if err := a.in.Err(); err != nil {
				return game.Move{}, err
			}
			return game.Move{}, io.EOF
		}
		choice, err := strconv.Atoi(strings.TrimSpace(a.in.Text()))
		if err != nil {
			fmt.Fprintln(a.out, "Please enter an integer as your move choice.")
			continue
		}
		if choice < 0 || choice >= len(moves) {
			fmt.Fprintln(a.out, "That wasn't one of the options.")
			continue
		}
		return moves[choice], nil
	}
}
