package main

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3"
	"github.com/vovakirdan/tui-match3/internal/platform/tui"
	"github.com/vovakirdan/tui-match3/internal/registry"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

var flagEndless bool

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play the campaign or endless mode",
	Long: `Start playing. Without a level the campaign starts at the first level.

Controls:
  Arrows/WASD  - Move the cursor, or swap when a tile is selected
  Enter/Space  - Select the tile under the cursor
  H            - Show a hint
  P            - Pause
  R            - Restart (after game over)
  Esc          - Back (when paused or after game over)
  Q/Ctrl+C     - Quit

Examples:
  match3 play
  match3 play 3
  match3 play --endless
  match3 play --difficulty easy --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagEndless, "endless", false, "Play endless mode on random boards")
}

// terminalConfig returns the runtime config for the current terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

func runPlay(_ *cobra.Command, args []string) {
	settings, closeLog := setup(true)
	defer closeLog()

	gameID := match3.GameID
	if flagEndless {
		gameID = match3.EndlessGameID
	}

	if len(args) == 1 {
		if flagEndless {
			fail("endless mode takes no level")
		}
		id, err := strconv.Atoi(args[0])
		if err != nil {
			fail("invalid level %q", args[0])
		}
		if _, err := settings.Levels.Level(id); err != nil {
			fail("%v", err)
		}
		match3.SetStartLevel(id)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fail("creating game: %v", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		settings.Logger.Warn("could not open scores database", "error", err)
		store = nil
	}

	_, runErr := tui.Run(game, store, terminalConfig(), settings.Logger)

	if store != nil {
		store.Close()
	}
	if runErr != nil {
		closeLog()
		fail("running game: %v", runErr)
	}
}
