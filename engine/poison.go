package engine

import "fmt"

// PoisonEntry is one active damage-over-time effect.
type PoisonEntry struct {
	RemainingTurns int
	BonusPerTurn   int
}

// PoisonLedger tracks active poison entries. No entry with zero remaining
// turns is ever kept.
type PoisonLedger struct {
	entries []PoisonEntry
}

// AddEntry appends an entry lasting duration numeric moves.
func (l *PoisonLedger) AddEntry(duration, bonusPerTurn int) error {
	if duration <= 0 {
		return fmt.Errorf("poison duration must be positive, got %d", duration)
	}
	l.entries = append(l.entries, PoisonEntry{RemainingTurns: duration, BonusPerTurn: bonusPerTurn})
	return nil
}

// CurrentBonus returns the sum of bonuses over all active entries.
func (l *PoisonLedger) CurrentBonus() int {
	sum := 0
	for _, e := range l.entries {
		sum += e.BonusPerTurn
	}
	return sum
}

// Tick decrements every entry and drops the ones that reach zero. Call it
// once per numeric move, after CurrentBonus has been applied.
func (l *PoisonLedger) Tick() {
	kept := l.entries[:0]
	for _, e := range l.entries {
		e.RemainingTurns--
		if e.RemainingTurns > 0 {
			kept = append(kept, e)
		}
	}
	l.entries = kept
}

// Len returns the number of active entries.
func (l *PoisonLedger) Len() int { return len(l.entries) }

// Entries returns a copy of the active entries.
func (l *PoisonLedger) Entries() []PoisonEntry {
	return append([]PoisonEntry(nil), l.entries...)
}

// Reset clears the ledger.
func (l *PoisonLedger) Reset() { l.entries = nil }
