package game

import "fmt"

// BoardSize is the side length of the grid.
const BoardSize = 8

// Cell is the content of one board square. Light and Dark double as the
// side-to-move values, so Side is an alias rather than a separate type.
type Cell uint8

const (
	Empty Cell = iota
	Light
	Dark
)

type Side = Cell

// Opponent returns the other color. Only meaningful for Light and Dark.
func (c Cell) Opponent() Cell {
	switch c {
	case Light:
		return Dark
	case Dark:
		return Light
	}
	return Empty
}

func (c Cell) String() string {
	switch c {
	case Light:
		return "Light"
	case Dark:
		return "Dark"
	}
	return "Empty"
}

// Board is an 8x8 grid of cells, indexed [row][col]. It is a value type:
// assignment copies the whole grid, which keeps search branches independent
// without an explicit deep copy.
type Board [BoardSize][BoardSize]Cell

// NewBoard returns a board with the traditional starting position: the four
// center cells preset, Light and Dark on opposite diagonals.
func NewBoard() Board {
	var b Board
	b[3][3], b[4][4] = Light, Light
	b[3][4], b[4][3] = Dark, Dark
	return b
}

// InBounds reports whether (row, col) is on the board.
func InBounds(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

// Count returns the number of cells holding c.
func (b Board) Count(c Cell) int {
	count := 0
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b[row][col] == c {
				count++
			}
		}
	}
	return count
}

// Move identifies an empty cell being claimed. A move is only valid relative
// to a specific board and side to move.
type Move struct {
	Row int
	Col int
}

func (m Move) String() string {
	return fmt.Sprintf("(%d,%d)", m.Row, m.Col)
}

// Outcome is the terminal result of a game.
type Outcome uint8

const (
	NotOver Outcome = iota
	LightWins
	DarkWins
	Tie
)

func (o Outcome) String() string {
	switch o {
	case LightWins:
		return "Light wins"
	case DarkWins:
		return "Dark wins"
	case Tie:
		return "tie"
	}
	return "not over"
}
