package game

import (
	"strconv"
	"strings"
)

// ParseBoard converts the 8-line text form of a board into a Board: 'W' is a
// Light piece, 'B' a Dark piece. Any other character is quietly treated as an
// empty cell rather than rejected, and short or missing lines leave their
// cells empty.
func ParseBoard(text string) Board {
	var b Board
	for row, line := range strings.Split(text, "\n") {
		if row >= BoardSize {
			break
		}
		for col, ch := range line {
			if col >= BoardSize {
				break
			}
			switch ch {
			case 'W':
				b[row][col] = Light
			case 'B':
				b[row][col] = Dark
			}
		}
	}
	return b
}

// String renders b in the same 8-line W/B/- form ParseBoard reads.
func (b Board) String() string {
	var sb strings.Builder
	for row := 0; row < BoardSize; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < BoardSize; col++ {
			sb.WriteByte(cellChar(b[row][col]))
		}
	}
	return sb.String()
}

// RenderWithMoves is Board.String with each cell in moves replaced by its
// index, for prompting a player to pick a move by number.
func RenderWithMoves(b Board, moves []Move) string {
	index := make(map[Move]int, len(moves))
	for i, m := range moves {
		index[m] = i
	}

	var sb strings.Builder
	for row := 0; row < BoardSize; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < BoardSize; col++ {
			if i, ok := index[Move{Row: row, Col: col}]; ok {
				sb.WriteString(strconv.Itoa(i))
				continue
			}
			sb.WriteByte(cellChar(b[row][col]))
		}
	}
	return sb.String()
}

func cellChar(c Cell) byte {
	switch c {
	case Light:
		return 'W'
	case Dark:
		return 'B'
	}
	return '-'
}
