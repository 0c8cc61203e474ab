package engine

import (
	"testing"

	"github.com/google/uuid"
)

// newTestGame returns a game with the default rules, a seeded deck and the
// named players registered in order.
func newTestGame(t *testing.T, names ...string) (*GameState, []uuid.UUID) {
	t.Helper()
	g, err := NewGame(DefaultHouseRules(), DefaultCatalog(), NewSeededRand(42))
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	ids := make([]uuid.UUID, len(names))
	for i, name := range names {
		ids[i] = mustAdd(t, g.Players(), name).ID
	}
	return g, ids
}

// mustAdd registers name in r and fails the test on error.
func mustAdd(t *testing.T, r *Registry, name string) *Player {
	t.Helper()
	p, err := r.Add(name)
	if err != nil {
		t.Fatalf("Add(%q): %v", name, err)
	}
	return p
}

// newActiveGame registers the named players and starts a round in
// registration order.
func newActiveGame(t *testing.T, names ...string) (*GameState, []uuid.UUID) {
	t.Helper()
	g, ids := newTestGame(t, names...)
	if err := g.StartRound(nil); err != nil {
		t.Fatalf("StartRound: %v", err)
	}
	return g, ids
}

// giveCatalogCards appends the catalog cards with the given ids to a hand.
func giveCatalogCards(t *testing.T, g *GameState, player uuid.UUID, cardIDs ...string) {
	t.Helper()
	cards := make([]Card, len(cardIDs))
	for i, cid := range cardIDs {
		def, ok := g.Catalog().Lookup(cid)
		if !ok {
			t.Fatalf("catalog has no card %q", cid)
		}
		cards[i] = Card(def)
	}
	if err := g.GiveCards(player, cards); err != nil {
		t.Fatalf("GiveCards: %v", err)
	}
}

// mustCurrent returns the current player or fails the test.
func mustCurrent(t *testing.T, g *GameState) uuid.UUID {
	t.Helper()
	id, err := g.Current()
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	return id
}

func mustNumber(t *testing.T, g *GameState, id uuid.UUID, v int) Result {
	t.Helper()
	res, err := g.ResolveNumericMove(id, v)
	if err != nil {
		t.Fatalf("ResolveNumericMove(%d): %v", v, err)
	}
	return res
}

func mustCard(t *testing.T, g *GameState, id uuid.UUID, idx int) Result {
	t.Helper()
	res, err := g.ResolveCardUse(id, idx)
	if err != nil {
		t.Fatalf("ResolveCardUse(%d): %v", idx, err)
	}
	return res
}

func handIDs(p *Player) []string {
	out := make([]string, len(p.Hand))
	for i, c := range p.Hand {
		out[i] = c.ID
	}
	return out
}
