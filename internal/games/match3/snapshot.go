package match3

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying      GameStateType = "playing"
	StateResolving    GameStateType = "resolving"
	StateLevelCleared GameStateType = "level_cleared"
	StateGameOver     GameStateType = "game_over"
	StateWin          GameStateType = "win"
	StatePausedSmall  GameStateType = "paused_small_window"
)

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Mode      string // "campaign" or "endless"
	Level     int    // Level id, 0 for endless
	Target    int
	MovesLeft int
	Moves     int
	Score     int
	BestCombo int
	Phase     string
	Grid      [][]int // Kind per cell, -1 for empty
	State     GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.won:
		state = StateWin
	case g.gameOver:
		state = StateGameOver
	case g.cleared:
		state = StateLevelCleared
	case g.board != nil && g.board.Busy():
		state = StateResolving
	}

	snap := Snapshot{
		Tick:  g.tick,
		Mode:  string(g.mode),
		Moves: g.movesMade,
		State: state,
	}
	if g.mode == ModeCampaign {
		snap.Level = g.level.ID
		snap.Target = g.target
		snap.MovesLeft = g.movesLeft
	}
	if g.scorer != nil {
		snap.Score = g.scorer.Total()
		snap.BestCombo = g.scorer.BestCombo()
	}
	if g.board != nil {
		snap.Phase = g.board.Phase().String()
		if grid := g.board.Grid(); grid != nil {
			snap.Grid = grid.Kinds()
		}
	}
	return snap
}
