package engine

import (
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
)

// Deck samples item cards from a catalog. The catalog is never depleted:
// every draw is independent and uniform, with replacement.
type Deck struct {
	catalog Catalog
	rng     *rand.Rand
}

// NewDeck constructs a Deck over catalog using rng, or a time-seeded source
// when rng is nil. Tests pass a seeded source for reproducible draws.
func NewDeck(catalog Catalog, rng *rand.Rand) *Deck {
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))
	}
	return &Deck{catalog: catalog, rng: rng}
}

// NewSeededRand returns a PCG-backed source for the given seed.
func NewSeededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))
}

// Draw returns n card instances. n <= 0 yields an empty slice.
func (d *Deck) Draw(n int) []Card {
	if n <= 0 || d.catalog.Len() == 0 {
		return []Card{}
	}
	out := make([]Card, n)
	for i := range out {
		out[i] = Card(d.catalog.at(d.rng.IntN(d.catalog.Len())))
	}
	return out
}

// Shuffle permutes ids in place.
func (d *Deck) Shuffle(ids []uuid.UUID) {
	d.rng.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })
}

// Catalog returns the catalog this deck draws from.
func (d *Deck) Catalog() Catalog { return d.catalog }
