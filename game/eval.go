package game

import "errors"

// ErrGameNotOver is returned by Winner when either side still has a legal
// move.
var ErrGameNotOver = errors.New("game is not over")

// Evaluate returns the piece-count differential: Light count minus Dark
// count. Positive favors Light. This is the static heuristic used at the
// search cutoff depth; no positional weighting.
func Evaluate(b Board) int {
	return b.Count(Light) - b.Count(Dark)
}

// GameOver reports whether neither side has a legal move. A full board is
// just a special case of this.
func GameOver(b Board) bool {
	return len(LegalMoves(b, Light)) == 0 && len(LegalMoves(b, Dark)) == 0
}

// Result returns the outcome of b by piece count, or NotOver while either
// side can still move.
func Result(b Board) Outcome {
	if !GameOver(b) {
		return NotOver
	}
	light, dark := b.Count(Light), b.Count(Dark)
	switch {
	case light > dark:
		return LightWins
	case dark > light:
		return DarkWins
	}
	return Tie
}

// Winner returns the outcome of a finished game. Calling it on a non-terminal
// board is a precondition violation and fails with ErrGameNotOver.
func Winner(b Board) (Outcome, error) {
	if outcome := Result(b); outcome != NotOver {
		return outcome, nil
	}
	return NotOver, ErrGameNotOver
}
