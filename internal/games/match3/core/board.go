package core

// MoveResult describes the outcome of one player move.
type MoveResult struct {
	Move      Move
	Swapped   bool  // A swap was applied to the grid
	Valid     bool  // The swap created a match and was kept
	Waves     []int // Tiles destroyed per wave
	Destroyed int
	Shuffles  int // Reshuffles needed to restore playability
}

// Board owns one grid for the lifetime of a play session and drives it
// through creation and moves. It is not safe for concurrent use: one mutation
// runs at a time and moves are rejected while it resolves.
type Board struct {
	catalog  Catalog
	rng      Rand
	opts     options
	resolver *Resolver

	grid  *Grid
	level LevelSpec
	state State
	phase Phase

	cascade  *Cascade
	forward  bool // Forward engine events to the listener
	shuffles int
	result   MoveResult
}

// NewBoard creates an empty board. rng drives reshuffles; refills draw from
// the catalog's own source.
func NewBoard(catalog Catalog, rng Rand, opts ...Option) (*Board, error) {
	if catalog == nil || catalog.Len() == 0 {
		return nil, ErrNoTileKinds
	}
	b := &Board{
		catalog: catalog,
		rng:     rng,
		opts:    buildOptions(opts),
	}
	b.resolver = NewResolver(catalog,
		WithMatcher(b.opts.matcher),
		WithListener(b.onCascadeEvent),
		WithLogger(b.opts.logger),
	)
	return b, nil
}

// Grid returns the live grid. Callers must treat it as read-only.
func (b *Board) Grid() *Grid {
	return b.grid
}

// Level returns the level the board was created from.
func (b *Board) Level() LevelSpec {
	return b.level
}

// State returns the lifecycle state.
func (b *Board) State() State {
	return b.state
}

// Phase returns the phase the next Step executes.
func (b *Board) Phase() Phase {
	return b.phase
}

// Busy returns true while a move, cascade or shuffle is resolving.
func (b *Board) Busy() bool {
	return b.state == StateResolving || b.state == StateCreating
}

// LastResult returns the outcome of the most recent move.
func (b *Board) LastResult() MoveResult {
	return b.result
}

// Pending returns the matches the next Step removes. It is empty outside
// PhaseRemoving.
func (b *Board) Pending() MatchSet {
	if b.cascade == nil || b.phase != PhaseRemoving {
		return MatchSet{}
	}
	return b.cascade.Pending()
}

// Hint returns a swap that creates a match, if the pattern table finds one.
func (b *Board) Hint() (Move, bool) {
	if b.grid == nil || b.state != StateReady {
		return Move{}, false
	}
	return FindMove(b.grid)
}

// Create validates level, fills a fresh grid from it, resolves initial
// matches and reshuffles until a move exists. On failure the previous grid
// and state are kept.
func (b *Board) Create(level LevelSpec) error {
	if b.Busy() {
		return ErrBusy
	}
	if err := level.Validate(b.catalog); err != nil {
		return err
	}
	grid, err := NewGrid(level.Rows, level.Cols)
	if err != nil {
		return err
	}

	prev := *b
	b.grid = grid
	b.level = level.Clone()
	b.state = StateCreating
	b.phase = PhaseFilling
	b.forward = false
	b.shuffles = 0
	b.result = MoveResult{}

	for b.state == StateCreating {
		if _, err := b.Step(); err != nil {
			b.restore(prev)
			b.opts.logger.Warn("board creation failed", "level", level.ID, "error", err)
			return err
		}
	}

	b.opts.logger.Info("board created",
		"level", level.ID,
		"rows", level.Rows,
		"cols", level.Cols,
		"shuffles", b.shuffles,
	)
	return nil
}

func (b *Board) restore(prev Board) {
	b.grid = prev.grid
	b.level = prev.level
	b.state = prev.state
	b.phase = prev.phase
	b.cascade = prev.cascade
	b.forward = prev.forward
	b.shuffles = prev.shuffles
	b.result = prev.result
}

// BeginMove validates and starts a move. It returns false without error for
// a no-op move: DirNone or a neighbour outside the grid.
func (b *Board) BeginMove(origin Coord, dir Direction) (bool, error) {
	switch b.state {
	case StateReady:
	case StateResolving, StateCreating:
		return false, ErrBusy
	case StateUnplayable:
		return false, ErrUnplayable
	default:
		return false, ErrNotReady
	}
	if !b.grid.InBounds(origin) {
		return false, outOfBounds(origin, b.grid.rows, b.grid.cols)
	}
	move := Move{From: origin, Dir: dir}
	if dir == DirNone || !b.grid.InBounds(move.Target()) {
		return false, nil
	}

	b.result = MoveResult{Move: move}
	b.state = StateResolving
	b.forward = true
	b.shuffles = 0
	b.setPhase(PhaseSwapping)
	return true, nil
}

// Move performs a complete move synchronously.
func (b *Board) Move(origin Coord, dir Direction) (MoveResult, error) {
	started, err := b.BeginMove(origin, dir)
	if err != nil || !started {
		return MoveResult{Move: Move{From: origin, Dir: dir}}, err
	}
	for b.Busy() {
		if _, err := b.Step(); err != nil {
			return b.result, err
		}
	}
	return b.result, nil
}

// Step executes the current phase and returns the next one. It is a no-op
// when nothing is resolving.
func (b *Board) Step() (Phase, error) {
	if !b.Busy() {
		return b.phase, nil
	}

	switch b.phase {
	case PhaseFilling:
		if err := b.fill(); err != nil {
			return b.phase, err
		}
		if err := b.startCascade(); err != nil {
			return b.phase, err
		}

	case PhaseSwapping:
		move := b.result.Move
		//nolint:errcheck // Both cells were bounds checked in BeginMove
		b.grid.Swap(move.From, move.Target())
		b.result.Swapped = true
		m := b.resolver.Matcher()
		if m.FindMatches(b.grid, move.From).Empty() && m.FindMatches(b.grid, move.Target()).Empty() {
			b.setPhase(PhaseReverting)
			break
		}
		b.result.Valid = true
		if err := b.startCascade(); err != nil {
			return b.phase, err
		}

	case PhaseReverting:
		move := b.result.Move
		//nolint:errcheck // Both cells were bounds checked in BeginMove
		b.grid.Swap(move.From, move.Target())
		b.state = StateReady
		b.setPhase(PhaseIdle)
		// Every move ends with one finish notification, matched or not.
		b.emit(CascadeFinished{})
		b.forward = false

	case PhaseDetecting, PhaseRemoving, PhaseGravity, PhaseRefilling:
		if err := b.cascade.Step(); err != nil {
			return b.phase, err
		}
		if b.cascade.Done() {
			b.setPhase(PhaseChecking)
		} else {
			b.setPhase(b.cascade.Phase())
		}

	case PhaseChecking:
		if HasMove(b.grid) {
			b.finish()
			break
		}
		if b.opts.maxShuffles > 0 && b.shuffles >= b.opts.maxShuffles {
			b.opts.logger.Warn("shuffle limit reached", "shuffles", b.shuffles)
			if b.state == StateResolving {
				b.state = StateUnplayable
			}
			return b.phase, ErrUnplayable
		}
		b.setPhase(PhaseShuffling)

	case PhaseShuffling:
		Shuffle(b.grid, b.rng)
		b.shuffles++
		b.result.Shuffles = b.shuffles
		b.opts.logger.Debug("grid shuffled", "attempt", b.shuffles)
		b.emit(Shuffled{Attempt: b.shuffles})
		if err := b.startCascade(); err != nil {
			return b.phase, err
		}
	}

	return b.phase, nil
}

// fill populates the grid from the level, column by column.
func (b *Board) fill() error {
	for c := range b.level.Cols {
		for r := b.level.Rows - 1; r >= 0; r-- {
			kind, err := b.catalog.KindForID(Kind(b.level.Cell(r, c)))
			if err != nil {
				return err
			}
			if _, err := b.grid.Spawn(At(r, c), kind.ID); err != nil {
				return err
			}
		}
	}
	return nil
}

func (b *Board) startCascade() error {
	c, err := b.resolver.Begin(b.grid)
	if err != nil {
		return err
	}
	b.cascade = c
	b.setPhase(c.Phase())
	return nil
}

// finish settles the board after a creation or a valid move.
func (b *Board) finish() {
	wasMove := b.state == StateResolving
	b.cascade = nil
	b.state = StateReady
	b.setPhase(PhaseSettled)
	if wasMove {
		b.emit(CascadeFinished{Waves: len(b.result.Waves), Destroyed: b.result.Destroyed})
	}
	b.forward = false
}

func (b *Board) setPhase(p Phase) {
	if p == b.phase {
		return
	}
	from := b.phase
	b.phase = p
	b.opts.logger.Debug("phase", "from", from, "to", p)
	b.emit(PhaseChanged{From: from, To: p})
}

// onCascadeEvent receives resolver events. Removal waves are recorded and
// forwarded; the resolver's own CascadeFinished is replaced by one per
// settle cycle, emitted in finish.
func (b *Board) onCascadeEvent(e Event) {
	td, ok := e.(TilesDestroyed)
	if !ok {
		return
	}
	b.result.Waves = append(b.result.Waves, td.Count)
	b.result.Destroyed += td.Count
	b.emit(TilesDestroyed{Wave: len(b.result.Waves), Count: td.Count})
}

func (b *Board) emit(e Event) {
	if b.forward && b.opts.listener != nil {
		b.opts.listener(e)
	}
}
