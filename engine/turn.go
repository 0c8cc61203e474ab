package engine

import "github.com/google/uuid"

// TurnOrder is the rotation over player ids: a permutation, a pointer into
// it, the current direction and the pending-skip flag.
type TurnOrder struct {
	ids         []uuid.UUID
	pointer     int
	direction   Direction
	pendingSkip bool
}

// Build installs ids as the rotation and resets pointer, direction and skip.
// Validation against the registry is the caller's job (see StartRound).
func (t *TurnOrder) Build(ids []uuid.UUID) {
	t.ids = append([]uuid.UUID(nil), ids...)
	t.pointer = 0
	t.direction = Clockwise
	t.pendingSkip = false
}

// Current returns the id at the pointer.
func (t *TurnOrder) Current() (uuid.UUID, error) {
	if len(t.ids) == 0 {
		return uuid.Nil, ErrEmptyRound
	}
	return t.ids[t.pointer], nil
}

// Advance moves the pointer one step in the current direction, or two when a
// skip is pending, and clears the skip. With one player or fewer the pointer
// and flag are left alone.
func (t *TurnOrder) Advance() {
	n := len(t.ids)
	if n <= 1 {
		return
	}
	step := int(t.direction)
	if t.pendingSkip {
		step *= 2
		t.pendingSkip = false
	}
	t.pointer = mod(t.pointer+step, n)
}

// SetDirection sets the direction; anything other than CounterClockwise is
// treated as Clockwise.
func (t *TurnOrder) SetDirection(d Direction) {
	if d != CounterClockwise {
		d = Clockwise
	}
	t.direction = d
}

// Reverse flips the direction.
func (t *TurnOrder) Reverse() { t.direction = t.direction.Flip() }

// RequestSkip arms the skip for the next Advance.
func (t *TurnOrder) RequestSkip() { t.pendingSkip = true }

// Direction returns the current step sign.
func (t *TurnOrder) Direction() Direction { return t.direction }

// PendingSkip reports whether the next Advance moves two steps.
func (t *TurnOrder) PendingSkip() bool { return t.pendingSkip }

// Pointer returns the index into the rotation of the current player.
func (t *TurnOrder) Pointer() int { return t.pointer }

// Len returns the number of players in the rotation.
func (t *TurnOrder) Len() int { return len(t.ids) }

// IDs returns a copy of the rotation.
func (t *TurnOrder) IDs() []uuid.UUID {
	return append([]uuid.UUID(nil), t.ids...)
}

// mod is a modulo whose result is always in [0, n).
func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
