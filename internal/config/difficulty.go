package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. An empty name is normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// IsFixedPreset returns true if the preset leaves the loaded config as is.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyMatch3Preset modifies the config based on a difficulty preset.
// Fewer kinds make matches more frequent; more kinds make them rarer.
func ApplyMatch3Preset(cfg *Match3Config, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		return
	}

	kinds := len(cfg.Tiles)
	switch preset {
	case DifficultyEasy:
		cfg.Endless.Kinds = min(4, kinds)
		cfg.Campaign.Moves += 5
		cfg.Rules.MaxShuffles = 0
	case DifficultyNormal:
		cfg.Endless.Kinds = min(5, kinds)
	case DifficultyHard:
		cfg.Endless.Kinds = kinds
		cfg.Campaign.Moves = max(5, cfg.Campaign.Moves-5)
		if cfg.Rules.MaxShuffles == 0 || cfg.Rules.MaxShuffles > 10 {
			cfg.Rules.MaxShuffles = 10
		}
	}
}
