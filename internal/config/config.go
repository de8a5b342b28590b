// Package config provides YAML-based game configuration loading and
// difficulty presets for Match-3.
package config

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-match3/internal/games/match3/core"
)

// Match3Config contains all configuration for the Match-3 game.
type Match3Config struct {
	Scoring  ScoringConfig  `yaml:"scoring"`
	Rules    RulesConfig    `yaml:"rules"`
	Pacing   PacingConfig   `yaml:"pacing"`
	Campaign CampaignConfig `yaml:"campaign"`
	Endless  EndlessConfig  `yaml:"endless"`
	Tiles    []TileConfig   `yaml:"tiles"`
}

// ScoringConfig defines score parameters.
type ScoringConfig struct {
	PerTile int `yaml:"per_tile"` // Base score per destroyed tile
}

// RulesConfig defines matching and playability rules.
type RulesConfig struct {
	FourClearsLine bool `yaml:"four_clears_line"` // A run of four clears its whole line
	MaxShuffles    int  `yaml:"max_shuffles"`     // Reshuffle cap per settle cycle, 0 = unbounded
}

// PacingConfig defines the pauses between board phases, in milliseconds.
type PacingConfig struct {
	SwapMS    int `yaml:"swap_ms"`
	DestroyMS int `yaml:"destroy_ms"`
	FillMS    int `yaml:"fill_ms"`
	ShuffleMS int `yaml:"shuffle_ms"`
}

// Ticks converts a delay in milliseconds to simulation ticks, rounding up
// so any positive delay lasts at least one tick.
func Ticks(ms, tickRate int) int {
	if ms <= 0 || tickRate <= 0 {
		return 0
	}
	return (ms*tickRate + 999) / 1000
}

// CampaignConfig defines level defaults for campaign mode.
type CampaignConfig struct {
	Moves      int `yaml:"moves"`       // Move budget when a level sets none
	Target     int `yaml:"target"`      // Target score for the first level
	TargetStep int `yaml:"target_step"` // Added to the target per level when a level sets none
}

// TargetFor returns the default target for the level at index (0-based).
func (c CampaignConfig) TargetFor(index int) int {
	return c.Target + index*c.TargetStep
}

// EndlessConfig defines the random board used in endless mode.
type EndlessConfig struct {
	Rows  int `yaml:"rows"`
	Cols  int `yaml:"cols"`
	Kinds int `yaml:"kinds"` // Number of catalog kinds in play
}

// TileConfig defines one tile kind.
type TileConfig struct {
	ID     int    `yaml:"id"`
	Name   string `yaml:"name"`
	Symbol string `yaml:"symbol"`
	Color  string `yaml:"color"`
}

// TileKinds converts the tile list to engine kinds.
func (c Match3Config) TileKinds() []core.TileKind {
	kinds := make([]core.TileKind, len(c.Tiles))
	for i, t := range c.Tiles {
		symbol, _ := utf8.DecodeRuneInString(t.Symbol)
		if symbol == utf8.RuneError {
			symbol = '?'
		}
		kinds[i] = core.TileKind{
			ID:     core.Kind(t.ID),
			Name:   t.Name,
			Symbol: symbol,
			Color:  t.Color,
		}
	}
	return kinds
}

// Catalog builds the tile catalog drawing from rng.
func (c Match3Config) Catalog(rng core.Rand) (*core.StaticCatalog, error) {
	catalog, err := core.NewCatalog(c.TileKinds(), rng)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return catalog, nil
}

// Matcher returns the matching rules.
func (c Match3Config) Matcher() core.Matcher {
	return core.Matcher{ClearLineOnFour: c.Rules.FourClearsLine}
}

// ValidationError describes an invalid configuration value.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks the configuration for values the game cannot run with.
func (c Match3Config) Validate() error {
	if len(c.Tiles) == 0 {
		return ValidationError{Code: "NO_TILES", Message: "at least one tile kind is required"}
	}

	seen := make(map[int]bool, len(c.Tiles))
	for _, t := range c.Tiles {
		if seen[t.ID] {
			return ValidationError{Code: "DUPLICATE_TILE", Message: fmt.Sprintf("tile id %d defined twice", t.ID)}
		}
		if t.ID < 0 {
			return ValidationError{Code: "INVALID_TILE", Message: fmt.Sprintf("tile id %d is negative", t.ID)}
		}
		seen[t.ID] = true
	}

	if c.Endless.Rows <= 0 || c.Endless.Cols <= 0 {
		return ValidationError{
			Code:    "INVALID_SIZE",
			Message: fmt.Sprintf("endless board %dx%d", c.Endless.Rows, c.Endless.Cols),
		}
	}
	if c.Endless.Kinds <= 0 || c.Endless.Kinds > len(c.Tiles) {
		return ValidationError{
			Code:    "INVALID_KINDS",
			Message: fmt.Sprintf("endless kinds %d, catalog has %d", c.Endless.Kinds, len(c.Tiles)),
		}
	}
	if c.Rules.MaxShuffles < 0 {
		return ValidationError{Code: "INVALID_RULE", Message: "max_shuffles must not be negative"}
	}
	if c.Campaign.Moves <= 0 {
		return ValidationError{Code: "INVALID_CAMPAIGN", Message: "campaign moves must be positive"}
	}
	return nil
}
