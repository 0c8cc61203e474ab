package engine

import (
	"errors"
	"fmt"
)

// HouseRules holds configurable game rule settings.
type HouseRules struct {
	Ceiling        int   // a total strictly above this ends the round
	PoisonDuration int   // numeric moves a Poison card lasts
	PoisonBonus    int   // added to every numeric move while active
	CardsPerPlayer int   // item cards drawn per player during distribution
	MoveValues     []int // numbers offered on a turn; the resolver does not enforce them
}

// DefaultHouseRules returns the standard rules.
func DefaultHouseRules() HouseRules {
	return HouseRules{
		Ceiling:        100,
		PoisonDuration: 5,
		PoisonBonus:    5,
		CardsPerPlayer: 3,
		MoveValues:     []int{1, 2, 3},
	}
}

// Validate reports rule combinations the engine cannot run with.
func (r HouseRules) Validate() error {
	var errs []error
	if r.Ceiling <= 0 {
		errs = append(errs, fmt.Errorf("ceiling must be positive, got %d", r.Ceiling))
	}
	if r.PoisonDuration <= 0 {
		errs = append(errs, fmt.Errorf("poison duration must be positive, got %d", r.PoisonDuration))
	}
	if r.CardsPerPlayer < 0 {
		errs = append(errs, fmt.Errorf("cards per player must not be negative, got %d", r.CardsPerPlayer))
	}
	if len(r.MoveValues) == 0 {
		errs = append(errs, errors.New("at least one move value is required"))
	}
	return errors.Join(errs...)
}

// clone copies the slice field so callers cannot alias engine rules.
func (r HouseRules) clone() HouseRules {
	r.MoveValues = append([]int(nil), r.MoveValues...)
	return r
}
