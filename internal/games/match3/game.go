// Package match3 provides the Match-3 puzzle game for the platform.
package match3

import (
	"errors"
	"io"
	"math/rand"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-match3/internal/config"
	platformcore "github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3/levels"
	"github.com/vovakirdan/tui-match3/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeCampaign Mode = "campaign"
	ModeEndless  Mode = "endless"
)

const (
	GameID        = "match3"
	EndlessGameID = "match3_endless"

	hintSeconds  = 2
	clearSeconds = 2
)

// Settings are shared by every game created through the registry.
type Settings struct {
	Config config.Match3Config
	Levels *levels.Loader
	Logger *log.Logger
}

var (
	settingsMu sync.RWMutex
	settings   = Settings{
		Config: config.DefaultMatch3Config(),
		Levels: levels.Default(),
	}
	selectedStartLevel int
)

// Configure replaces the settings used by games created afterwards.
// Nil fields keep their defaults.
func Configure(s Settings) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	if s.Levels == nil {
		s.Levels = levels.Default()
	}
	settings = s
}

func currentSettings() Settings {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return settings
}

// SetStartLevel sets the starting level id. 0 means start from the first level.
func SetStartLevel(id int) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	selectedStartLevel = id
}

// GetStartLevel returns the currently selected start level.
func GetStartLevel() int {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return selectedStartLevel
}

// takeStartLevel returns the selected start level and clears it.
func takeStartLevel() int {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	id := selectedStartLevel
	selectedStartLevel = 0
	return id
}

// Game implements the Match-3 puzzle game.
type Game struct {
	mode     Mode
	settings Settings
	logger   *log.Logger

	rng     *rand.Rand
	catalog *core.StaticCatalog
	board   *core.Board
	scorer  *core.Scorer
	colors  map[core.Kind]platformcore.Color

	levelList  []core.LevelSpec
	levelIndex int
	startID    int // Per-instance start level, wins over SetStartLevel
	level      core.LevelSpec
	movesLeft  int // Campaign only
	movesMade  int
	target     int
	lastWaves  []int

	// Cursor and selection
	cursor    core.Coord
	selected  bool
	hint      core.Move
	hintTicks int

	// Pacing
	tickRate  int
	wait      int // Ticks before the next engine phase
	tick      uint64
	screenW   int
	screenH   int
	tooSmall  bool
	paused    bool
	gameOver  bool
	won       bool
	cleared   bool // Level cleared, waiting to advance
	clearWait int
	message   string
	err       error
}

// New creates a new campaign mode game.
func New() *Game {
	return &Game{mode: ModeCampaign}
}

// NewEndless creates a new endless mode game.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

// StartAt selects the campaign level used by the next Reset. Sessions that
// share the process (SSH) use it instead of SetStartLevel.
func (g *Game) StartAt(id int) {
	g.startID = id
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
	registry.Register(EndlessGameID, func() registry.Game {
		return NewEndless()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return EndlessGameID
	}
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Match-3 (Endless)"
	}
	return "Match-3"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.settings = currentSettings()
	g.logger = g.settings.Logger
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = 60
	}
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tick = 0
	g.movesMade = 0
	g.lastWaves = nil
	g.selected = false
	g.hintTicks = 0
	g.wait = 0
	g.paused = false
	g.gameOver = false
	g.won = false
	g.cleared = false
	g.message = ""
	g.err = nil

	if err := g.setup(); err != nil {
		g.fail(err)
		return
	}

	if g.mode == ModeCampaign {
		g.levelIndex = 0
		start := takeStartLevel()
		if g.startID > 0 {
			start = g.startID
			g.startID = 0
		}
		for i, lvl := range g.levelList {
			if lvl.ID == start {
				g.levelIndex = i
			}
		}
	}
	g.startLevel()
}

// setup builds the catalog, scorer and board from the settings.
func (g *Game) setup() error {
	cfg := g.settings.Config

	catalog, err := cfg.Catalog(g.rng)
	if err != nil {
		return err
	}
	if g.mode == ModeEndless {
		catalog = catalog.Subset(cfg.Endless.Kinds)
	}
	g.catalog = catalog

	g.colors = make(map[core.Kind]platformcore.Color, catalog.Len())
	for _, k := range catalog.Kinds() {
		c, ok := platformcore.ParseColor(k.Color)
		if !ok {
			c = platformcore.ColorWhite
		}
		g.colors[k.ID] = c
	}

	g.scorer = core.NewScorer(cfg.Scoring.PerTile)
	g.board, err = core.NewBoard(catalog, g.rng,
		core.WithMatcher(cfg.Matcher()),
		core.WithMaxShuffles(cfg.Rules.MaxShuffles),
		core.WithLogger(g.logger),
		core.WithListener(g.scorer.Listener()),
	)
	if err != nil {
		return err
	}

	if g.mode == ModeCampaign {
		g.levelList, err = g.settings.Levels.All()
		if err != nil {
			return err
		}
		if len(g.levelList) == 0 {
			return core.ErrLevelNotFound
		}
	}
	return nil
}

// startLevel creates the board for the current level.
func (g *Game) startLevel() {
	var level core.LevelSpec
	if g.mode == ModeEndless {
		var err error
		level, err = core.RandomLevel(g.settings.Config.Endless.Rows, g.settings.Config.Endless.Cols, g.catalog)
		if err != nil {
			g.fail(err)
			return
		}
	} else {
		level = g.levelList[g.levelIndex]
	}

	if err := g.board.Create(level); err != nil {
		g.fail(err)
		return
	}
	g.level = level

	campaign := g.settings.Config.Campaign
	g.movesLeft = level.Moves
	if g.movesLeft <= 0 {
		g.movesLeft = campaign.Moves
	}
	g.target = level.Target
	if g.target <= 0 {
		g.target = campaign.TargetFor(g.levelIndex)
	}

	g.cursor = core.At(level.Rows/2, level.Cols/2)
	g.selected = false
	g.checkScreenSize()

	g.logger.Info("level started",
		"game", g.ID(),
		"level", level.ID,
		"name", level.Name,
		"moves", g.movesLeft,
		"target", g.target,
	)
}

func (g *Game) fail(err error) {
	g.err = err
	g.gameOver = true
	g.logger.Error("game stopped", "game", g.ID(), "error", err)
}

// checkScreenSize checks if the screen is large enough for the board.
func (g *Game) checkScreenSize() {
	minW := max(g.level.Cols*cellWidth+2, g.hudWidth())
	minH := g.level.Rows + hudHeight + 3
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Resize updates the screen size without restarting the session.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.checkScreenSize()
}

// Step advances the game by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	g.tick++

	if g.tooSmall {
		return platformcore.StepResult{State: g.State()}
	}

	if in.Has(platformcore.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}
	if g.paused || g.gameOver {
		return platformcore.StepResult{State: g.State()}
	}

	if g.hintTicks > 0 {
		g.hintTicks--
	}

	if g.cleared {
		g.clearWait--
		if g.clearWait <= 0 {
			g.advanceLevel()
		}
		return platformcore.StepResult{State: g.State()}
	}

	// One mutation at a time: input waits until the board settles.
	if g.board.Busy() {
		g.advanceEngine()
		return platformcore.StepResult{State: g.State()}
	}

	g.handleInput(in)
	return platformcore.StepResult{State: g.State()}
}

// handleInput moves the cursor, toggles the selection or requests a swap.
func (g *Game) handleInput(in platformcore.InputFrame) {
	if in.Has(platformcore.ActionHint) {
		if move, ok := g.board.Hint(); ok {
			g.hint = move
			g.hintTicks = hintSeconds * g.tickRate
		}
	}

	if in.Has(platformcore.ActionSelect) {
		g.selected = !g.selected
		return
	}

	dir := directionFor(in)
	if dir == core.DirNone {
		return
	}

	if !g.selected {
		next := g.cursor.Step(dir)
		g.cursor = core.At(
			platformcore.Clamp(next.Row, 0, g.level.Rows-1),
			platformcore.Clamp(next.Col, 0, g.level.Cols-1),
		)
		return
	}

	g.selected = false
	started, err := g.board.BeginMove(g.cursor, dir)
	if err != nil {
		g.logger.Warn("move rejected", "from", g.cursor, "dir", dir, "error", err)
		return
	}
	if !started {
		return
	}
	g.hintTicks = 0
	g.message = ""
	g.cursor = g.cursor.Step(dir)
	g.logger.Debug("move", "from", g.board.LastResult().Move.From, "dir", dir)
	g.wait = 0
	g.advanceEngine()
}

func directionFor(in platformcore.InputFrame) core.Direction {
	switch {
	case in.Has(platformcore.ActionUp):
		return core.DirUp
	case in.Has(platformcore.ActionDown):
		return core.DirDown
	case in.Has(platformcore.ActionLeft):
		return core.DirLeft
	case in.Has(platformcore.ActionRight):
		return core.DirRight
	}
	return core.DirNone
}

// advanceEngine runs one board phase once the pause after the previous one
// has elapsed.
func (g *Game) advanceEngine() {
	if g.wait > 0 {
		g.wait--
		return
	}

	executed := g.board.Phase()
	if _, err := g.board.Step(); err != nil {
		if errors.Is(err, core.ErrUnplayable) {
			g.message = "No moves left"
		}
		g.fail(err)
		return
	}
	g.wait = g.delayAfter(executed, g.board.Phase())

	if !g.board.Busy() {
		g.moveSettled()
	}
}

// delayAfter returns the pause between the executed phase and the next one,
// in ticks. Matches about to be removed stay marked for the destroy delay.
func (g *Game) delayAfter(p, next core.Phase) int {
	pacing := g.settings.Config.Pacing
	if next == core.PhaseRemoving {
		return config.Ticks(pacing.DestroyMS, g.tickRate)
	}
	switch p {
	case core.PhaseSwapping, core.PhaseReverting:
		return config.Ticks(pacing.SwapMS, g.tickRate)
	case core.PhaseRemoving:
		return config.Ticks(pacing.DestroyMS, g.tickRate)
	case core.PhaseRefilling:
		return config.Ticks(pacing.FillMS, g.tickRate)
	case core.PhaseShuffling:
		return config.Ticks(pacing.ShuffleMS, g.tickRate)
	}
	return 0
}

// moveSettled applies the campaign rules once a move has fully resolved.
func (g *Game) moveSettled() {
	result := g.board.LastResult()
	if result.Shuffles > 0 {
		g.message = "Shuffled"
	}
	if !result.Valid {
		// Swap back to where the player started.
		g.cursor = result.Move.From
		return
	}

	g.movesMade++
	g.lastWaves = result.Waves
	if g.mode == ModeEndless {
		return
	}

	g.movesLeft--
	if g.movesLeft > 0 {
		return
	}
	if g.scorer.Total() >= g.target {
		g.cleared = true
		g.clearWait = clearSeconds * g.tickRate
		g.logger.Info("level cleared", "level", g.level.ID, "score", g.scorer.Total())
		return
	}
	g.gameOver = true
	g.logger.Info("level failed", "level", g.level.ID, "score", g.scorer.Total(), "target", g.target)
}

// advanceLevel moves to the next level, keeping the score.
func (g *Game) advanceLevel() {
	g.cleared = false
	if g.levelIndex >= len(g.levelList)-1 {
		g.won = true
		g.gameOver = true
		return
	}
	g.levelIndex++
	g.startLevel()
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	state := platformcore.GameState{
		GameOver: g.gameOver,
		Won:      g.won,
		Paused:   g.paused || g.tooSmall || g.cleared,
		Moves:    g.movesMade,
	}
	if g.scorer != nil {
		state.Score = g.scorer.Total()
		state.BestCombo = g.scorer.BestCombo()
	}
	if g.mode == ModeCampaign {
		state.Level = g.level.ID
	}
	return state
}

// Err returns the error that stopped the game, if any.
func (g *Game) Err() error {
	return g.err
}
