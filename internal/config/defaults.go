package config

import (
	_ "embed"
)

//go:embed defaults/match3.yaml
var defaultMatch3YAML []byte

// DefaultMatch3Config returns the default Match-3 configuration.
func DefaultMatch3Config() Match3Config {
	return Match3Config{
		Scoring: ScoringConfig{
			PerTile: 100,
		},
		Rules: RulesConfig{
			FourClearsLine: false,
			MaxShuffles:    100,
		},
		Pacing: PacingConfig{
			SwapMS:    100,
			DestroyMS: 100,
			FillMS:    200,
			ShuffleMS: 500,
		},
		Campaign: CampaignConfig{
			Moves:      20,
			Target:     3000,
			TargetStep: 500,
		},
		Endless: EndlessConfig{
			Rows:  8,
			Cols:  8,
			Kinds: 6,
		},
		Tiles: []TileConfig{
			{ID: 0, Name: "ruby", Symbol: "R", Color: "red"},
			{ID: 1, Name: "emerald", Symbol: "E", Color: "green"},
			{ID: 2, Name: "sapphire", Symbol: "S", Color: "blue"},
			{ID: 3, Name: "topaz", Symbol: "T", Color: "yellow"},
			{ID: 4, Name: "amethyst", Symbol: "A", Color: "magenta"},
			{ID: 5, Name: "pearl", Symbol: "P", Color: "white"},
		},
	}
}
