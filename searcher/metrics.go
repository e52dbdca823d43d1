package searcher

import (
	"sync/atomic"
	"time"
)

// SearchMetric summarizes one root search.
type SearchMetric struct {
	Depth     int
	Duration  time.Duration
	Nodes     int // Search nodes visited, including the root's children
	Leaves    int // Depth-0 cutoffs scored with the static evaluation
	Terminals int // True game-over nodes scored with the win/loss/tie value
	Prunes    int // Alpha-beta cutoffs
}

// Collector gathers counters during a search. Counters are atomic so games
// may be driven from multiple goroutines sharing nothing but the collector.
type Collector interface {
	Start(depth int)
	AddNode()
	AddLeaf()
	AddTerminal()
	AddPrune()
	Complete() SearchMetric
}

type collector struct {
	depth     int
	startTime time.Time
	nodes     atomic.Int64
	leaves    atomic.Int64
	terminals atomic.Int64
	prunes    atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(depth int) {
	c.depth = depth
	c.startTime = time.Now()
	c.nodes.Store(0)
	c.leaves.Store(0)
	c.terminals.Store(0)
	c.prunes.Store(0)
}

func (c *collector) AddNode()     { c.nodes.Add(1) }
func (c *collector) AddLeaf()     { c.leaves.Add(1) }
func (c *collector) AddTerminal() { c.terminals.Add(1) }
func (c *collector) AddPrune()    { c.prunes.Add(1) }

func (c *collector) Complete() SearchMetric {
	return SearchMetric{
		Depth:     c.depth,
		Duration:  time.Since(c.startTime),
		Nodes:     int(c.nodes.Load()),
		Leaves:    int(c.leaves.Load()),
		Terminals: int(c.terminals.Load()),
		Prunes:    int(c.prunes.Load()),
	}
}

type nopCollector struct{}

// NewNopCollector returns a collector that records nothing, for callers that
// do not care about search metrics.
func NewNopCollector() Collector {
	return &nopCollector{}
}

func (nopCollector) Start(depth int)        {}
func (nopCollector) AddNode()               {}
func (nopCollector) AddLeaf()               {}
func (nopCollector) AddTerminal()           {}
func (nopCollector) AddPrune()              {}
func (nopCollector) Complete() SearchMetric { return SearchMetric{} }
