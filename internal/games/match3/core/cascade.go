package core

// CascadeReport summarizes one cascade session.
type CascadeReport struct {
	Waves     []int // Tiles destroyed per removal wave, in order
	Destroyed int   // Sum of Waves
}

// Resolver runs the detect, remove, gravity, refill cycle until no match remains.
type Resolver struct {
	catalog Catalog
	opts    options
}

// NewResolver creates a resolver drawing refill kinds from catalog.
func NewResolver(catalog Catalog, opts ...Option) *Resolver {
	return &Resolver{
		catalog: catalog,
		opts:    buildOptions(opts),
	}
}

// Matcher returns the matching rules in use.
func (r *Resolver) Matcher() Matcher {
	return r.opts.matcher
}

// Resolve runs a full cascade on g and returns the per-wave destroyed counts.
// It always runs to quiescence: on return FindAllMatches(g) reports nothing.
func (r *Resolver) Resolve(g *Grid) (CascadeReport, error) {
	c, err := r.Begin(g)
	if err != nil {
		return CascadeReport{}, err
	}
	for !c.Done() {
		if err := c.Step(); err != nil {
			return c.Report(), err
		}
	}
	return c.Report(), nil
}

// Begin starts a step-wise cascade on g in the Detecting phase.
func (r *Resolver) Begin(g *Grid) (*Cascade, error) {
	if r.catalog == nil || r.catalog.Len() == 0 {
		return nil, ErrNoTileKinds
	}
	return &Cascade{r: r, g: g, phase: PhaseDetecting}, nil
}

// Cascade is one in-progress cascade. Each Step advances exactly one phase so
// a presenter can pause between transitions.
type Cascade struct {
	r       *Resolver
	g       *Grid
	phase   Phase
	pending MatchSet
	report  CascadeReport
}

// Phase returns the phase the next Step will execute.
func (c *Cascade) Phase() Phase {
	return c.phase
}

// Done returns true once the grid is quiescent.
func (c *Cascade) Done() bool {
	return c.phase == PhaseSettled
}

// Pending returns the matches about to be removed. Valid in PhaseRemoving.
func (c *Cascade) Pending() MatchSet {
	return c.pending
}

// Report returns the waves resolved so far.
func (c *Cascade) Report() CascadeReport {
	report := CascadeReport{
		Waves:     make([]int, len(c.report.Waves)),
		Destroyed: c.report.Destroyed,
	}
	copy(report.Waves, c.report.Waves)
	return report
}

// Step executes the current phase and moves to the next one.
func (c *Cascade) Step() error {
	switch c.phase {
	case PhaseDetecting:
		matches, found := c.r.opts.matcher.FindAllMatches(c.g)
		if !found {
			c.phase = PhaseSettled
			c.r.emit(CascadeFinished{
				Waves:     len(c.report.Waves),
				Destroyed: c.report.Destroyed,
			})
			return nil
		}
		c.pending = matches
		c.phase = PhaseRemoving

	case PhaseRemoving:
		count := RemoveMatches(c.g, c.pending)
		c.pending = MatchSet{}
		if count > 0 {
			c.report.Waves = append(c.report.Waves, count)
			c.report.Destroyed += count
			c.r.emit(TilesDestroyed{Wave: len(c.report.Waves), Count: count})
		}
		c.r.opts.logger.Debug("wave removed", "wave", len(c.report.Waves), "count", count)
		c.phase = PhaseGravity

	case PhaseGravity:
		ApplyGravity(c.g)
		c.phase = PhaseRefilling

	case PhaseRefilling:
		if _, err := Refill(c.g, c.r.catalog); err != nil {
			return err
		}
		c.phase = PhaseDetecting
	}
	return nil
}

func (r *Resolver) emit(e Event) {
	if r.opts.listener != nil {
		r.opts.listener(e)
	}
}

// RemoveMatches empties the cell of every matched tile and returns how many
// tiles were still on the grid at removal time.
func RemoveMatches(g *Grid, matches MatchSet) int {
	destroyed := 0
	for _, t := range matches.tiles {
		if g.tileAt(t.pos) != t {
			continue
		}
		//nolint:errcheck // t.pos is in range
		g.Set(t.pos, nil)
		destroyed++
	}
	return destroyed
}

// ApplyGravity compacts every column toward the bottom row, preserving order.
// Empty cells end up at the top of each column.
func ApplyGravity(g *Grid) {
	for c := range g.cols {
		write := g.rows - 1
		for r := g.rows - 1; r >= 0; r-- {
			from := At(r, c)
			if g.tileAt(from) == nil {
				continue
			}
			if r != write {
				//nolint:errcheck // Both cells are in range
				g.Move(from, At(write, c))
			}
			write--
		}
	}
}

// Refill spawns a random kind into every empty cell, bottom-most first in
// each column. Returns the number of tiles spawned.
func Refill(g *Grid, catalog Catalog) (int, error) {
	spawned := 0
	for c := range g.cols {
		for r := g.rows - 1; r >= 0; r-- {
			at := At(r, c)
			if g.tileAt(at) != nil {
				continue
			}
			kind, err := catalog.RandomKind()
			if err != nil {
				return spawned, err
			}
			//nolint:errcheck // at is in range
			g.Spawn(at, kind.ID)
			spawned++
		}
	}
	return spawned, nil
}
