// match3 is a terminal Match-3 puzzle game.
//
// Usage:
//
//	match3 levels             - List campaign levels
//	match3 play [level]       - Play the campaign, or endless with --endless
//	match3 menu               - Pick a mode or level interactively
//	match3 simulate <level>   - Play a level headless with random moves
//	match3 scores [level]     - Show high scores
//	match3 serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible boards
//	--db <path>           - Set database path (default: ~/.match3/scores.db)
//	--config <path>       - Use a custom config YAML
//	--levels <dir>        - Load levels from a directory instead of the built-in set
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/games/match3"
	"github.com/vovakirdan/tui-match3/internal/games/match3/levels"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagLevelsDir  string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "match3",
	Short: "Match-3 - a tile matching puzzle in your terminal",
	Long: `Match-3 is a terminal tile matching puzzle. Swap neighbouring tiles to
line up three or more of a kind, then watch the cascade.

Available commands:
  levels    - Show the campaign levels
  play      - Play the campaign or endless mode
  menu      - Interactive mode and level picker
  simulate  - Play a level headless and print a report
  scores    - View high scores
  serve     - Start SSH server for remote play

Examples:
  match3 levels
  match3 play
  match3 play 3
  match3 play --endless --difficulty hard
  match3 simulate 1 --moves 50 --seed 7
  match3 serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.match3/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", "", "Directory of level_<n> files (default: built-in levels)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// fail prints err and exits with status 1.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// newLogger builds the command logger. Without --log-file, interactive
// commands discard logs so they do not draw over the game.
func newLogger(interactive bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var out io.Writer = os.Stderr
	closeFn := func() {}
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	case interactive:
		out = io.Discard
	}

	logger := log.NewWithOptions(out, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "match3",
	})
	return logger, closeFn, nil
}

// loadSettings loads config and levels from the global flags.
func loadSettings() (match3.Settings, error) {
	cfg, err := config.LoadMatch3(flagConfig)
	if err != nil {
		return match3.Settings{}, err
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return match3.Settings{}, err
	}
	config.ApplyMatch3Preset(&cfg, preset)

	loader := levels.Default()
	if flagLevelsDir != "" {
		loader = levels.NewDirLoader(flagLevelsDir)
	}
	return match3.Settings{Config: cfg, Levels: loader}, nil
}

// setup loads settings, builds the logger and configures the game package.
// The returned function releases the logger.
func setup(interactive bool) (match3.Settings, func()) {
	settings, err := loadSettings()
	if err != nil {
		fail("%v", err)
	}
	logger, closeLog, err := newLogger(interactive)
	if err != nil {
		fail("%v", err)
	}
	settings.Logger = logger
	match3.Configure(settings)
	return settings, closeLog
}
