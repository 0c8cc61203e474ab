package engine

import (
	"slices"
	"testing"

	"github.com/google/uuid"
)

func TestDrawNonPositive(t *testing.T) {
	d := NewDeck(DefaultCatalog(), NewSeededRand(1))
	for _, n := range []int{0, -3} {
		got := d.Draw(n)
		if got == nil || len(got) != 0 {
			t.Errorf("Draw(%d) = %v, want empty non-nil slice", n, got)
		}
	}
}

func TestDrawFromCatalogWithReplacement(t *testing.T) {
	cat := DefaultCatalog()
	d := NewDeck(cat, NewSeededRand(1))

	cards := d.Draw(2000)
	if len(cards) != 2000 {
		t.Fatalf("Draw(2000) returned %d cards", len(cards))
	}
	seen := make(map[string]int)
	for _, c := range cards {
		def, ok := cat.Lookup(c.ID)
		if !ok {
			t.Fatalf("drew card %q not in catalog", c.ID)
		}
		if def.Effect != c.Effect {
			t.Fatalf("card %q effect = %v, want %v", c.ID, c.Effect, def.Effect)
		}
		seen[c.ID]++
	}
	if len(seen) != cat.Len() {
		t.Errorf("drew %d distinct cards, want all %d", len(seen), cat.Len())
	}
}

func TestDrawSeededIsReproducible(t *testing.T) {
	a := NewDeck(DefaultCatalog(), NewSeededRand(99)).Draw(20)
	b := NewDeck(DefaultCatalog(), NewSeededRand(99)).Draw(20)
	for i := range a {
		if a[i].ID != b[i].ID {
			t.Fatalf("draw %d: %q vs %q with the same seed", i, a[i].ID, b[i].ID)
		}
	}
}

func TestShufflePreservesMembers(t *testing.T) {
	d := NewDeck(DefaultCatalog(), NewSeededRand(3))
	ids := makeIDs(6)
	shuffled := slices.Clone(ids)
	d.Shuffle(shuffled)

	less := func(a, b uuid.UUID) int { return slices.Compare(a[:], b[:]) }
	slices.SortFunc(ids, less)
	slices.SortFunc(shuffled, less)
	if !slices.Equal(ids, shuffled) {
		t.Error("Shuffle changed the set of ids")
	}
}

func TestShuffleSeededIsReproducible(t *testing.T) {
	ids := makeIDs(8)
	a, b := slices.Clone(ids), slices.Clone(ids)
	NewDeck(DefaultCatalog(), NewSeededRand(5)).Shuffle(a)
	NewDeck(DefaultCatalog(), NewSeededRand(5)).Shuffle(b)
	if !slices.Equal(a, b) {
		t.Error("same seed produced different shuffles")
	}
}

func TestCatalogLookup(t *testing.T) {
	cat := DefaultCatalog()
	if cat.Len() != 9 {
		t.Fatalf("Len = %d, want 9", cat.Len())
	}

	tests := []struct {
		id   string
		want Effect
	}{
		{"p10", Add{Amount: 10}},
		{"m50", Add{Amount: -50}},
		{"rev", Reverse{}},
		{"skip", Skip{}},
		{"poison", Poison{}},
	}
	for _, tt := range tests {
		def, ok := cat.Lookup(tt.id)
		if !ok {
			t.Errorf("Lookup(%q) not found", tt.id)
			continue
		}
		if def.Effect != tt.want {
			t.Errorf("Lookup(%q).Effect = %v, want %v", tt.id, def.Effect, tt.want)
		}
	}
	if _, ok := cat.Lookup("p40"); ok {
		t.Error("Lookup(p40) found a card that does not exist")
	}
}

func TestEffectString(t *testing.T) {
	tests := []struct {
		e    Effect
		want string
	}{
		{Add{Amount: 20}, "add(+20)"},
		{Add{Amount: -30}, "add(-30)"},
		{Reverse{}, "reverse"},
		{Skip{}, "skip"},
		{Poison{}, "poison"},
	}
	for _, tt := range tests {
		if got := tt.e.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
