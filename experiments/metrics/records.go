// Package metrics defines the per-agent, per-game, and per-move records an
// experiment run produces, and a CSV writer that persists them.
package metrics

import (
	"time"

	"othello/searcher"
)

// AgentKind distinguishes the agent implementations an experiment can field.
type AgentKind string

const (
	SearchKind AgentKind = "search"
	RandomKind AgentKind = "random"
)

type AgentConfig struct {
	ID    int
	Kind  AgentKind
	Depth int // Search depth in plies, search agents only
	Seed  uint64
}

type GameRecord struct {
	ID        int
	LightID   int // AgentConfig.ID playing Light
	DarkID    int // AgentConfig.ID playing Dark
	Winner    string
	Moves     int
	StartTime time.Time
	Duration  time.Duration
}

type MoveRecord struct {
	Game   int // GameRecord.ID
	Step   int
	Player string
	searcher.SearchMetric
}
