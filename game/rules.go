package game

import (
	"errors"
	"fmt"
)

// Row and column deltas for the 8 directions around a square.
var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

var (
	ErrOutOfBounds       = errors.New("coordinate is outside the board")
	ErrCellOccupied      = errors.New("cell is already occupied")
	ErrNotACapturingMove = errors.New("move captures no pieces")
)

// LegalMoves returns every legal move for side on b, in row-major order
// (top-to-bottom, left-to-right). Enumeration order is part of the contract:
// move selection breaks ties by first-seen order.
func LegalMoves(b Board, side Side) []Move {
	var moves []Move
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b[row][col] != Empty {
				continue
			}
			if capturesAny(b, row, col, side) {
				moves = append(moves, Move{Row: row, Col: col})
			}
		}
	}
	return moves
}

// capturesAny reports whether placing side at (row, col) captures in at least
// one direction.
func capturesAny(b Board, row, col int, side Side) bool {
	for _, d := range directions {
		if capturesInDirection(b, row, col, d[0], d[1], side) {
			return true
		}
	}
	return false
}

// capturesInDirection walks outward from (row, col) along the delta. The
// immediately adjacent cell must hold the opponent; from there the scan
// continues until it finds the mover's own color (a capturable run) or runs
// into an empty cell or the board edge (no enclosing piece).
func capturesInDirection(b Board, row, col, rowDelta, colDelta int, side Side) bool {
	r, c := row+rowDelta, col+colDelta
	if !InBounds(r, c) {
		return false
	}
	if b[r][c] != side.Opponent() {
		return false
	}
	for r, c = r+rowDelta, c+colDelta; InBounds(r, c); r, c = r+rowDelta, c+colDelta {
		switch b[r][c] {
		case Empty:
			return false
		case side:
			return true
		}
	}
	return false
}

// Apply returns a new board with a piece for side placed at m and every
// captured run flipped to side. The input board is not modified. Illegal
// moves are rejected: ErrOutOfBounds, ErrCellOccupied, or
// ErrNotACapturingMove.
func Apply(b Board, m Move, side Side) (Board, error) {
	if !InBounds(m.Row, m.Col) {
		return b, fmt.Errorf("apply %v for %s: %w", m, side, ErrOutOfBounds)
	}
	if b[m.Row][m.Col] != Empty {
		return b, fmt.Errorf("apply %v for %s: %w", m, side, ErrCellOccupied)
	}
	if !capturesAny(b, m.Row, m.Col, side) {
		return b, fmt.Errorf("apply %v for %s: %w", m, side, ErrNotACapturingMove)
	}

	next := b
	next[m.Row][m.Col] = side
	enemy := side.Opponent()
	for _, d := range directions {
		if !capturesInDirection(b, m.Row, m.Col, d[0], d[1], side) {
			continue
		}
		// The capture check guarantees the run ends at an own-color piece,
		// so flipping while the cell holds the enemy stops exactly there.
		for r, c := m.Row+d[0], m.Col+d[1]; next[r][c] == enemy; r, c = r+d[0], c+d[1] {
			next[r][c] = side
		}
	}
	return next, nil
}
