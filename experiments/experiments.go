// Package experiments runs matchups between agents of different strengths
// and persists the results as CSV for analysis.
package experiments

import (
	"fmt"
	"time"

	"othello/engine"
	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"

	"github.com/rs/zerolog/log"
)

var depthConfigs = []metrics.AgentConfig{
	{ID: 1, Kind: metrics.SearchKind, Depth: 1},
	{ID: 2, Kind: metrics.SearchKind, Depth: 2},
	{ID: 3, Kind: metrics.SearchKind, Depth: 3},
	{ID: 4, Kind: metrics.SearchKind, Depth: 4},
	{ID: 5, Kind: metrics.SearchKind, Depth: 5},
}

// RunDepthToStrength plays each search depth against a random-move baseline,
// alternating colors between games, and writes agent, game, and move records
// for the run.
func RunDepthToStrength(gamesPerMatchup int) error {
	baseline := metrics.AgentConfig{ID: 0, Kind: metrics.RandomKind}
	configs := append([]metrics.AgentConfig{baseline}, depthConfigs...)

	matchups := [][2]metrics.AgentConfig{}
	for _, config := range depthConfigs {
		matchups = append(matchups, [2]metrics.AgentConfig{config, baseline})
	}

	return runExperiment("depth_to_strength", configs, matchups, gamesPerMatchup)
}

func runExperiment(name string, configs []metrics.AgentConfig, matchups [][2]metrics.AgentConfig, gamesPerMatchup int) error {
	writer, err := metrics.NewWriter(name)
	if err != nil {
		return err
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return err
	}

	var gameRecords []metrics.GameRecord
	var moveRecords []metrics.MoveRecord

	gameID := 0
	for _, matchup := range matchups {
		log.Info().Msgf("matchup: agent %d vs agent %d", matchup[0].ID, matchup[1].ID)
		for i := 0; i < gamesPerMatchup; i++ {
			gameID++
			// Alternate colors so neither agent always moves first
			light, dark := matchup[0], matchup[1]
			if i%2 == 1 {
				light, dark = dark, light
			}

			record, moves, err := runGame(gameID, light, dark)
			if err != nil {
				return err
			}
			gameRecords = append(gameRecords, record)
			moveRecords = append(moveRecords, moves...)
			log.Info().Msgf("game %d over: %s", gameID, record.Winner)
		}
	}

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return err
	}
	return writer.WriteMoveRecords(moveRecords)
}

func runGame(id int, light, dark metrics.AgentConfig) (metrics.GameRecord, []metrics.MoveRecord, error) {
	recorder := &moveRecorder{game: id}
	agents := map[game.Side]engine.Agent{
		game.Light: buildAgent(light, uint64(id), recorder),
		game.Dark:  buildAgent(dark, uint64(id), recorder),
	}

	start := time.Now()
	e := engine.Local(game.NewGameState(game.Light), agents)
	outcome, err := e.Run()
	if err != nil {
		return metrics.GameRecord{}, nil, fmt.Errorf("game %d: %w", id, err)
	}

	record := metrics.GameRecord{
		ID:        id,
		LightID:   light.ID,
		DarkID:    dark.ID,
		Winner:    outcome.String(),
		Moves:     e.Moves,
		StartTime: start,
		Duration:  time.Since(start),
	}
	return record, recorder.records, nil
}

func buildAgent(config metrics.AgentConfig, seed uint64, recorder *moveRecorder) engine.Agent {
	if config.Kind == metrics.RandomKind {
		if config.Seed != 0 {
			seed = config.Seed
		}
		return engine.NewRandomAgent(seed)
	}

	collector := searcher.NewCollector()
	return &recordingAgent{
		inner:     engine.NewSearchAgent(config.Depth, searcher.WithCollector(collector)),
		collector: collector,
		recorder:  recorder,
	}
}

// moveRecorder accumulates one MoveRecord per root search across both agents
// of a game.
type moveRecorder struct {
	game    int
	step    int
	records []metrics.MoveRecord
}

type recordingAgent struct {
	inner     *engine.SearchAgent
	collector searcher.Collector
	recorder  *moveRecorder
}

func (a *recordingAgent) FindMove(state *game.GameState) (game.Move, error) {
	move, err := a.inner.FindMove(state)
	if err != nil {
		return game.Move{}, err
	}

	a.recorder.step++
	a.recorder.records = append(a.recorder.records, metrics.MoveRecord{
		Game:         a.recorder.game,
		Step:         a.recorder.step,
		Player:       state.Player(),
		SearchMetric: a.collector.Complete(),
	})
	return move, nil
}
