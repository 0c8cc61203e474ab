package engine

import "fmt"

// Effect is the closed set of things an item card can do to a round.
// The unexported marker method keeps the set sealed to this package so
// effect handling can switch exhaustively on the concrete type.
type Effect interface {
	effect()
	String() string
}

// Add changes the running total by Amount (negative amounts subtract).
type Add struct {
	Amount int
}

// Reverse flips the turn direction.
type Reverse struct{}

// Skip makes the advance after the next turn step over one player.
type Skip struct{}

// Poison registers a damage-over-time entry on the round's ledger.
type Poison struct{}

func (Add) effect()     {}
func (Reverse) effect() {}
func (Skip) effect()    {}
func (Poison) effect()  {}

func (a Add) String() string {
	if a.Amount >= 0 {
		return fmt.Sprintf("add(+%d)", a.Amount)
	}
	return fmt.Sprintf("add(%d)", a.Amount)
}
func (Reverse) String() string { return "reverse" }
func (Skip) String() string    { return "skip" }
func (Poison) String() string  { return "poison" }

// CardDef is a catalog entry: a stable id, a display label and its effect.
type CardDef struct {
	ID     string
	Label  string
	Effect Effect
}

// Card is an instance dealt into a hand. Instances are values; using one
// deletes it from the hand, nothing is recycled.
type Card CardDef

// Def returns the catalog definition this instance was copied from.
func (c Card) Def() CardDef { return CardDef(c) }

// Direction is the signed unit the turn pointer moves by.
type Direction int

const (
	Clockwise        Direction = 1
	CounterClockwise Direction = -1
)

// Flip returns the opposite direction.
func (d Direction) Flip() Direction {
	if d == CounterClockwise {
		return Clockwise
	}
	return CounterClockwise
}

// Phase represents the lifecycle stage of a round.
type Phase string

const (
	// PhaseSetup is the state before the first round is built.
	PhaseSetup Phase = "setup"
	// PhaseActive is the state in which moves are accepted.
	PhaseActive Phase = "active"
	// PhaseEnded is the state after a loss has been recorded.
	PhaseEnded Phase = "ended"
)
