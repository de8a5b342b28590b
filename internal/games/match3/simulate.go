package match3

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/games/match3/core"
)

// SimulatedMove is one move of a headless run.
type SimulatedMove struct {
	Move     string `json:"move"`
	Valid    bool   `json:"valid"`
	Waves    []int  `json:"waves,omitempty"`
	Shuffles int    `json:"shuffles,omitempty"`
	Score    int    `json:"score"` // Total after the move
}

// SimulationReport summarises a headless run.
type SimulationReport struct {
	Level     int             `json:"level"`
	Rows      int             `json:"rows"`
	Cols      int             `json:"cols"`
	Seed      int64           `json:"seed"`
	Moves     []SimulatedMove `json:"moves"`
	Score     int             `json:"score"`
	BestCombo int             `json:"best_combo"`
	Destroyed int             `json:"destroyed"`
	Shuffles  int             `json:"shuffles"`
	Board     string          `json:"board"`
}

// Simulate plays level without a terminal. Each move is drawn at random
// from the moves the pattern table suggests. The run stops early when the
// board reports no move. logger may be nil.
func Simulate(cfg config.Match3Config, level core.LevelSpec, moves int, seed int64, logger *log.Logger) (SimulationReport, error) {
	return simulate(cfg, &level, moves, seed, logger)
}

// SimulateEndless plays a random endless board built from cfg.Endless.
func SimulateEndless(cfg config.Match3Config, moves int, seed int64, logger *log.Logger) (SimulationReport, error) {
	return simulate(cfg, nil, moves, seed, logger)
}

// simulate runs a headless game. A nil level is an endless board.
func simulate(cfg config.Match3Config, spec *core.LevelSpec, moves int, seed int64, logger *log.Logger) (SimulationReport, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	report := SimulationReport{Seed: seed}

	rng := rand.New(rand.NewSource(seed))
	catalog, err := cfg.Catalog(rng)
	if err != nil {
		return report, err
	}

	var level core.LevelSpec
	if spec != nil {
		level = *spec
	} else {
		catalog = catalog.Subset(cfg.Endless.Kinds)
		if level, err = core.RandomLevel(cfg.Endless.Rows, cfg.Endless.Cols, catalog); err != nil {
			return report, err
		}
	}
	report.Level, report.Rows, report.Cols = level.ID, level.Rows, level.Cols

	scorer := core.NewScorer(cfg.Scoring.PerTile)
	board, err := core.NewBoard(catalog, rng,
		core.WithMatcher(cfg.Matcher()),
		core.WithMaxShuffles(cfg.Rules.MaxShuffles),
		core.WithLogger(logger),
		core.WithListener(scorer.Listener()),
	)
	if err != nil {
		return report, err
	}
	if err := board.Create(level); err != nil {
		return report, fmt.Errorf("level %d: %w", level.ID, err)
	}

	for i := 0; i < moves; i++ {
		candidates := core.FindMoves(board.Grid())
		if len(candidates) == 0 {
			logger.Warn("no move left", "level", level.ID, "move", i)
			break
		}
		move := candidates[rng.Intn(len(candidates))]

		res, err := board.Move(move.From, move.Dir)
		if err != nil {
			return report, fmt.Errorf("move %d (%v): %w", i+1, move, err)
		}
		report.Moves = append(report.Moves, SimulatedMove{
			Move:     move.String(),
			Valid:    res.Valid,
			Waves:    res.Waves,
			Shuffles: res.Shuffles,
			Score:    scorer.Total(),
		})
		report.Shuffles += res.Shuffles
		logger.Debug("simulated move", "move", move, "valid", res.Valid, "waves", res.Waves)
	}

	report.Score = scorer.Total()
	report.BestCombo = scorer.BestCombo()
	report.Destroyed = scorer.Destroyed()
	report.Board = board.Grid().String()
	return report, nil
}
