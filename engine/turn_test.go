package engine

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/google/uuid"
)

func makeIDs(n int) []uuid.UUID {
	ids := make([]uuid.UUID, n)
	for i := range ids {
		ids[i] = uuid.New()
	}
	return ids
}

func TestAdvanceClockwiseWraps(t *testing.T) {
	var o TurnOrder
	o.Build(makeIDs(3))

	for i, want := range []int{1, 2, 0, 1} {
		o.Advance()
		if got := o.Pointer(); got != want {
			t.Fatalf("after advance %d: pointer = %d, want %d", i+1, got, want)
		}
	}
}

// TestAdvanceCounterClockwiseWraps covers pointer 0, direction -1, len 4.
func TestAdvanceCounterClockwiseWraps(t *testing.T) {
	var o TurnOrder
	o.Build(makeIDs(4))
	o.SetDirection(CounterClockwise)

	o.Advance()
	if got := o.Pointer(); got != 3 {
		t.Errorf("pointer = %d, want 3", got)
	}
}

// TestAdvanceSkipDoublesStep covers pending skip, direction +1, pointer 0, len 5.
func TestAdvanceSkipDoublesStep(t *testing.T) {
	var o TurnOrder
	o.Build(makeIDs(5))
	o.RequestSkip()

	o.Advance()
	if got := o.Pointer(); got != 2 {
		t.Errorf("pointer = %d, want 2", got)
	}
	if o.PendingSkip() {
		t.Error("pending skip still set after advance")
	}

	o.Advance()
	if got := o.Pointer(); got != 3 {
		t.Errorf("second advance: pointer = %d, want 3", got)
	}
}

func TestAdvanceSkipCounterClockwise(t *testing.T) {
	var o TurnOrder
	o.Build(makeIDs(4))
	o.SetDirection(CounterClockwise)
	o.RequestSkip()

	o.Advance()
	if got := o.Pointer(); got != 2 {
		t.Errorf("pointer = %d, want 2", got)
	}
}

func TestAdvanceSkipTwoPlayers(t *testing.T) {
	var o TurnOrder
	o.Build(makeIDs(2))
	o.RequestSkip()

	o.Advance()
	if got := o.Pointer(); got != 0 {
		t.Errorf("pointer = %d, want 0 (skip wraps back to the same player)", got)
	}
}

func TestAdvanceSinglePlayerNoop(t *testing.T) {
	var o TurnOrder
	ids := makeIDs(1)
	o.Build(ids)

	o.Advance()
	o.Advance()
	got, err := o.Current()
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if got != ids[0] {
		t.Errorf("Current = %s, want %s", got, ids[0])
	}
}

func TestCurrentEmpty(t *testing.T) {
	var o TurnOrder
	if _, err := o.Current(); !errors.Is(err, ErrEmptyRound) {
		t.Errorf("Current on empty order: err = %v, want ErrEmptyRound", err)
	}
	o.Advance() // must not panic
	if o.Pointer() != 0 {
		t.Errorf("pointer = %d, want 0", o.Pointer())
	}
}

func TestSetDirectionNormalizes(t *testing.T) {
	var o TurnOrder
	o.Build(makeIDs(3))

	for _, d := range []Direction{0, 2, -7} {
		o.SetDirection(d)
		if got := o.Direction(); got != Clockwise {
			t.Errorf("SetDirection(%d): direction = %d, want Clockwise", d, got)
		}
	}
	o.SetDirection(CounterClockwise)
	if got := o.Direction(); got != CounterClockwise {
		t.Errorf("direction = %d, want CounterClockwise", got)
	}
}

func TestReverseFlips(t *testing.T) {
	var o TurnOrder
	o.Build(makeIDs(3))

	o.Reverse()
	if o.Direction() != CounterClockwise {
		t.Fatalf("after one Reverse: direction = %d, want -1", o.Direction())
	}
	o.Reverse()
	if o.Direction() != Clockwise {
		t.Fatalf("after two Reverses: direction = %d, want 1", o.Direction())
	}
}

func TestBuildResets(t *testing.T) {
	var o TurnOrder
	o.Build(makeIDs(3))
	o.Advance()
	o.Reverse()
	o.RequestSkip()

	ids := makeIDs(4)
	o.Build(ids)
	if o.Pointer() != 0 || o.Direction() != Clockwise || o.PendingSkip() {
		t.Errorf("Build did not reset: pointer=%d direction=%d skip=%v", o.Pointer(), o.Direction(), o.PendingSkip())
	}
	if o.Len() != 4 {
		t.Errorf("Len = %d, want 4", o.Len())
	}

	ids[0] = uuid.Nil
	if got, _ := o.Current(); got == uuid.Nil {
		t.Error("Build aliased the caller's slice")
	}
}

// TestPointerStaysInBounds runs random mixes of reverse, skip and advance.
func TestPointerStaysInBounds(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for n := 1; n <= 6; n++ {
		var o TurnOrder
		o.Build(makeIDs(n))
		for step := 0; step < 2000; step++ {
			switch rng.IntN(4) {
			case 0:
				o.Reverse()
			case 1:
				o.RequestSkip()
			}
			o.Advance()
			if p := o.Pointer(); p < 0 || p >= n {
				t.Fatalf("n=%d step=%d: pointer %d out of [0,%d)", n, step, p, n)
			}
		}
	}
}

func TestMod(t *testing.T) {
	tests := []struct{ a, n, want int }{
		{0, 3, 0},
		{-1, 3, 2},
		{-2, 4, 2},
		{5, 3, 2},
		{-7, 3, 2},
	}
	for _, tt := range tests {
		if got := mod(tt.a, tt.n); got != tt.want {
			t.Errorf("mod(%d, %d) = %d, want %d", tt.a, tt.n, got, tt.want)
		}
	}
}
