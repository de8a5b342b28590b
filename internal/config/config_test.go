package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	parsed, ok := tryParse(defaultMatch3YAML)
	if !ok {
		t.Fatal("embedded default does not parse")
	}
	def := DefaultMatch3Config()

	if parsed.Scoring != def.Scoring || parsed.Rules != def.Rules ||
		parsed.Pacing != def.Pacing || parsed.Campaign != def.Campaign ||
		parsed.Endless != def.Endless {
		t.Errorf("embedded config %+v differs from hardcoded %+v", parsed, def)
	}
	if len(parsed.Tiles) != len(def.Tiles) {
		t.Fatalf("embedded has %d tiles, hardcoded %d", len(parsed.Tiles), len(def.Tiles))
	}
	for i := range def.Tiles {
		if parsed.Tiles[i] != def.Tiles[i] {
			t.Errorf("tile %d = %+v, expected %+v", i, parsed.Tiles[i], def.Tiles[i])
		}
	}
}

func TestLoadMatch3CustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte(`
scoring:
  per_tile: 50
rules:
  four_clears_line: true
tiles:
  - { id: 0, name: a, symbol: A, color: red }
  - { id: 1, name: b, symbol: B, color: blue }
  - { id: 2, name: c, symbol: C, color: green }
endless:
  kinds: 3
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := LoadMatch3(path)
	if err != nil {
		t.Fatalf("LoadMatch3 failed: %v", err)
	}
	if cfg.Scoring.PerTile != 50 || !cfg.Rules.FourClearsLine {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if len(cfg.Tiles) != 3 {
		t.Errorf("tiles = %d, expected the file list to replace the defaults", len(cfg.Tiles))
	}
	// Keys absent from the file keep their defaults.
	if cfg.Pacing.FillMS != 200 || cfg.Endless.Rows != 8 {
		t.Errorf("defaults lost: %+v", cfg)
	}
	if !cfg.Matcher().ClearLineOnFour {
		t.Error("Matcher() should enable line clearing")
	}
}

func TestLoadMatch3CustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadMatch3(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	os.WriteFile(bad, []byte("scoring: ["), 0o600) //nolint:errcheck
	if _, err := LoadMatch3(bad); err == nil {
		t.Error("expected parse error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	os.WriteFile(invalid, []byte("endless:\n  rows: 0\n"), 0o600) //nolint:errcheck
	_, err := LoadMatch3(invalid)
	var ve ValidationError
	if !errors.As(err, &ve) || ve.Code != "INVALID_SIZE" {
		t.Errorf("error = %v, expected INVALID_SIZE", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Match3Config)
		code   string
	}{
		{"default is valid", func(*Match3Config) {}, ""},
		{"no tiles", func(c *Match3Config) { c.Tiles = nil }, "NO_TILES"},
		{"duplicate tile", func(c *Match3Config) { c.Tiles[1].ID = 0 }, "DUPLICATE_TILE"},
		{"negative tile", func(c *Match3Config) { c.Tiles[0].ID = -1 }, "INVALID_TILE"},
		{"zero cols", func(c *Match3Config) { c.Endless.Cols = 0 }, "INVALID_SIZE"},
		{"too many kinds", func(c *Match3Config) { c.Endless.Kinds = 7 }, "INVALID_KINDS"},
		{"negative shuffles", func(c *Match3Config) { c.Rules.MaxShuffles = -1 }, "INVALID_RULE"},
		{"no moves", func(c *Match3Config) { c.Campaign.Moves = 0 }, "INVALID_CAMPAIGN"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultMatch3Config()
			tc.mutate(&cfg)
			err := cfg.Validate()

			if tc.code == "" {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			var ve ValidationError
			if !errors.As(err, &ve) || ve.Code != tc.code {
				t.Errorf("Validate() = %v, expected code %s", err, tc.code)
			}
		})
	}
}

func TestApplyMatch3Preset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		kinds       int
		moves       int
		maxShuffles int
	}{
		{DifficultyEasy, 4, 25, 0},
		{DifficultyNormal, 5, 20, 100},
		{DifficultyHard, 6, 15, 10},
		{DifficultyFixed, 6, 20, 100},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultMatch3Config()
			ApplyMatch3Preset(&cfg, tc.preset)

			if cfg.Endless.Kinds != tc.kinds {
				t.Errorf("Kinds = %d, expected %d", cfg.Endless.Kinds, tc.kinds)
			}
			if cfg.Campaign.Moves != tc.moves {
				t.Errorf("Moves = %d, expected %d", cfg.Campaign.Moves, tc.moves)
			}
			if cfg.Rules.MaxShuffles != tc.maxShuffles {
				t.Errorf("MaxShuffles = %d, expected %d", cfg.Rules.MaxShuffles, tc.maxShuffles)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset config invalid: %v", err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset(""); err != nil || p != DifficultyNormal {
		t.Errorf("ParsePreset(\"\") = %q, %v", p, err)
	}
	if p, err := ParsePreset("hard"); err != nil || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %q, %v", p, err)
	}
	if _, err := ParsePreset("insane"); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestTicks(t *testing.T) {
	tests := []struct {
		ms, rate, expected int
	}{
		{100, 60, 6},
		{200, 60, 12},
		{5, 60, 1},
		{0, 60, 0},
		{500, 30, 15},
	}
	for _, tc := range tests {
		if got := Ticks(tc.ms, tc.rate); got != tc.expected {
			t.Errorf("Ticks(%d, %d) = %d, expected %d", tc.ms, tc.rate, got, tc.expected)
		}
	}
}

func TestCatalogFromConfig(t *testing.T) {
	cfg := DefaultMatch3Config()
	catalog, err := cfg.Catalog(nil)
	if err != nil {
		t.Fatalf("Catalog failed: %v", err)
	}
	if catalog.Len() != 6 {
		t.Errorf("Len() = %d, expected 6", catalog.Len())
	}
	k, _ := catalog.KindForID(3)
	if k.Symbol != 'T' || k.Color != "yellow" {
		t.Errorf("kind 3 = %+v", k)
	}
}
