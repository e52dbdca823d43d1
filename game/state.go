package game

import (
	"encoding/binary"
	"hash/fnv"
)

type StateHash uint64

// GameState is the dynamic state of a game: the board plus the side to move.
// It is immutable by convention. Play and Pass return a fresh state and never
// touch the receiver, so the same state can back many sibling branches in
// search.
type GameState struct {
	Board Board
	Turn  Side
}

// NewGameState returns the starting position with turn to move first.
func NewGameState(turn Side) *GameState {
	return &GameState{Board: NewBoard(), Turn: turn}
}

func (gs *GameState) Copy() *GameState {
	next := *gs
	return &next
}

// Player returns the identifier of the side to move.
func (gs *GameState) Player() string {
	return gs.Turn.String()
}

// LegalMoves returns the legal moves for the side to move, in row-major
// order.
func (gs *GameState) LegalMoves() []Move {
	return LegalMoves(gs.Board, gs.Turn)
}

// Play applies m for the side to move and hands the turn to the opponent.
// The opponent may in turn have no legal reply; Pass covers that case.
func (gs *GameState) Play(m Move) (*GameState, error) {
	board, err := Apply(gs.Board, m, gs.Turn)
	if err != nil {
		return nil, err
	}
	return &GameState{Board: board, Turn: gs.Turn.Opponent()}, nil
}

// Pass hands the turn to the opponent without placing a piece. Used when the
// side to move has no legal move but the game is not over.
func (gs *GameState) Pass() *GameState {
	return &GameState{Board: gs.Board, Turn: gs.Turn.Opponent()}
}

// GameOver reports whether neither side has a legal move.
func (gs *GameState) GameOver() bool {
	return GameOver(gs.Board)
}

// Winner returns the outcome of a finished game or ErrGameNotOver.
func (gs *GameState) Winner() (Outcome, error) {
	return Winner(gs.Board)
}

func (gs *GameState) Hash() StateHash {
	hasher := fnv.New64a()

	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			binary.Write(hasher, binary.LittleEndian, int64(gs.Board[row][col]))
		}
	}
	binary.Write(hasher, binary.LittleEndian, int64(gs.Turn))

	return StateHash(hasher.Sum64())
}
