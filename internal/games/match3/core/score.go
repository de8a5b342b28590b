package core

// DefaultScorePerTile is the base score of one destroyed tile.
const DefaultScorePerTile = 100

// Scorer accumulates a combo-weighted score from engine events.
// Each removal wave raises the combo; the end of a cascade session resets it.
type Scorer struct {
	perTile   int
	total     int
	combo     int
	bestCombo int
	destroyed int
}

// NewScorer creates a scorer. A non-positive perTile uses DefaultScorePerTile.
func NewScorer(perTile int) *Scorer {
	if perTile <= 0 {
		perTile = DefaultScorePerTile
	}
	return &Scorer{perTile: perTile}
}

// Listener returns the event listener feeding this scorer.
func (s *Scorer) Listener() Listener {
	return s.Handle
}

// Handle applies one event.
func (s *Scorer) Handle(e Event) {
	switch ev := e.(type) {
	case TilesDestroyed:
		s.combo++
		if s.combo > s.bestCombo {
			s.bestCombo = s.combo
		}
		s.total += s.perTile * ev.Count * s.combo
		s.destroyed += ev.Count
	case CascadeFinished:
		s.combo = 0
	}
}

// Total returns the accumulated score.
func (s *Scorer) Total() int {
	return s.total
}

// Combo returns the current combo multiplier. Zero outside a cascade.
func (s *Scorer) Combo() int {
	return s.combo
}

// BestCombo returns the highest combo reached.
func (s *Scorer) BestCombo() int {
	return s.bestCombo
}

// Destroyed returns the number of tiles scored.
func (s *Scorer) Destroyed() int {
	return s.destroyed
}

// Reset clears the score and combo.
func (s *Scorer) Reset() {
	s.total = 0
	s.combo = 0
	s.bestCombo = 0
	s.destroyed = 0
}
