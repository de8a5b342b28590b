package core

import "fmt"

// Rand is the random source the engine draws from.
// *math/rand.Rand satisfies it; tests may inject a scripted source.
type Rand interface {
	Intn(n int) int
}

// TileKind is the definition of one kind of tile.
type TileKind struct {
	ID     Kind
	Name   string
	Symbol rune   // Glyph used by text renderers
	Color  string // Color name understood by the presentation layer
}

// Catalog provides tile kind definitions to the engine.
type Catalog interface {
	// KindForID returns the definition for id, or ErrUnknownTileKind.
	KindForID(id Kind) (TileKind, error)

	// RandomKind returns a kind chosen uniformly, or ErrNoTileKinds.
	RandomKind() (TileKind, error)

	// Len returns the number of kinds.
	Len() int
}

// StaticCatalog is a fixed, in-memory Catalog.
type StaticCatalog struct {
	kinds []TileKind
	byID  map[Kind]int
	rng   Rand
}

// NewCatalog creates a catalog from the given kinds, in order.
// It fails on an empty list or a duplicate id.
func NewCatalog(kinds []TileKind, rng Rand) (*StaticCatalog, error) {
	if len(kinds) == 0 {
		return nil, ErrNoTileKinds
	}
	c := &StaticCatalog{
		kinds: make([]TileKind, len(kinds)),
		byID:  make(map[Kind]int, len(kinds)),
		rng:   rng,
	}
	copy(c.kinds, kinds)
	for i, k := range c.kinds {
		if _, exists := c.byID[k.ID]; exists {
			return nil, fmt.Errorf("catalog: duplicate tile kind id %d", k.ID)
		}
		c.byID[k.ID] = i
	}
	return c, nil
}

// KindForID returns the definition for id.
func (c *StaticCatalog) KindForID(id Kind) (TileKind, error) {
	i, ok := c.byID[id]
	if !ok {
		return TileKind{}, fmt.Errorf("%w: %d", ErrUnknownTileKind, id)
	}
	return c.kinds[i], nil
}

// RandomKind returns a uniformly chosen kind.
func (c *StaticCatalog) RandomKind() (TileKind, error) {
	if len(c.kinds) == 0 {
		return TileKind{}, ErrNoTileKinds
	}
	return c.kinds[c.rng.Intn(len(c.kinds))], nil
}

// Len returns the number of kinds.
func (c *StaticCatalog) Len() int {
	return len(c.kinds)
}

// Kinds returns a copy of all kinds in catalog order.
func (c *StaticCatalog) Kinds() []TileKind {
	out := make([]TileKind, len(c.kinds))
	copy(out, c.kinds)
	return out
}

// Subset returns a catalog restricted to the first n kinds, sharing the RNG.
// n is clamped to [1, Len()].
func (c *StaticCatalog) Subset(n int) *StaticCatalog {
	if n < 1 {
		n = 1
	}
	if n > len(c.kinds) {
		n = len(c.kinds)
	}
	sub, _ := NewCatalog(c.kinds[:n], c.rng)
	return sub
}

// DefaultKinds returns the built-in six-kind set.
func DefaultKinds() []TileKind {
	return []TileKind{
		{ID: 0, Name: "ruby", Symbol: 'R', Color: "red"},
		{ID: 1, Name: "emerald", Symbol: 'E', Color: "green"},
		{ID: 2, Name: "sapphire", Symbol: 'S', Color: "blue"},
		{ID: 3, Name: "topaz", Symbol: 'T', Color: "yellow"},
		{ID: 4, Name: "amethyst", Symbol: 'A', Color: "magenta"},
		{ID: 5, Name: "pearl", Symbol: 'P', Color: "white"},
	}
}
