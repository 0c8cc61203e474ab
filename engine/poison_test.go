package engine

import "testing"

func TestPoisonAddEntryRejectsNonPositiveDuration(t *testing.T) {
	var l PoisonLedger
	for _, d := range []int{0, -1} {
		if err := l.AddEntry(d, 5); err == nil {
			t.Errorf("AddEntry(%d, 5): expected error", d)
		}
	}
	if l.Len() != 0 {
		t.Errorf("Len = %d after rejected entries, want 0", l.Len())
	}
}

func TestPoisonBonusSumsEntries(t *testing.T) {
	var l PoisonLedger
	if got := l.CurrentBonus(); got != 0 {
		t.Fatalf("empty ledger bonus = %d, want 0", got)
	}
	_ = l.AddEntry(2, 5)
	_ = l.AddEntry(1, 3)
	if got := l.CurrentBonus(); got != 8 {
		t.Fatalf("bonus = %d, want 8", got)
	}

	l.Tick()
	if got := l.CurrentBonus(); got != 5 {
		t.Errorf("after one tick: bonus = %d, want 5", got)
	}
	if l.Len() != 1 {
		t.Errorf("after one tick: Len = %d, want 1", l.Len())
	}

	l.Tick()
	if got := l.CurrentBonus(); got != 0 {
		t.Errorf("after two ticks: bonus = %d, want 0", got)
	}
	if l.Len() != 0 {
		t.Errorf("after two ticks: Len = %d, want 0", l.Len())
	}
}

func TestPoisonEntriesIsCopy(t *testing.T) {
	var l PoisonLedger
	_ = l.AddEntry(3, 5)

	entries := l.Entries()
	entries[0].RemainingTurns = 99
	if got := l.Entries()[0].RemainingTurns; got != 3 {
		t.Errorf("RemainingTurns = %d, want 3", got)
	}
}

// TestPoisonDecaysOnNumericMoves checks a 2-turn entry adds its bonus to
// exactly two numeric moves.
func TestPoisonDecaysOnNumericMoves(t *testing.T) {
	g, ids := newActiveGame(t, "A", "B")
	if err := g.Poison().AddEntry(2, 5); err != nil {
		t.Fatalf("AddEntry: %v", err)
	}

	mustNumber(t, g, ids[0], 1) // 1 + 5
	mustNumber(t, g, ids[1], 1) // 1 + 5
	if got := g.Poison().CurrentBonus(); got != 0 {
		t.Errorf("bonus after two moves = %d, want 0", got)
	}
	mustNumber(t, g, ids[0], 1) // 1
	if got := g.Total(); got != 13 {
		t.Errorf("total = %d, want 13", got)
	}
}

func TestPoisonDoesNotDecayOnCardUse(t *testing.T) {
	g, ids := newActiveGame(t, "A", "B")
	giveCatalogCards(t, g, ids[0], "rev")
	if err := g.Poison().AddEntry(1, 5); err != nil {
		t.Fatalf("AddEntry: %v", err)
	}

	mustCard(t, g, ids[0], 0)
	if got := g.Poison().CurrentBonus(); got != 5 {
		t.Errorf("bonus after card use = %d, want 5", got)
	}
}
