package engine

import "errors"

var (
	ErrNotCurrentPlayer  = errors.New("not your turn")
	ErrCardNotFound      = errors.New("card not found")
	ErrRoundEnded        = errors.New("round has ended")
	ErrEmptyRound        = errors.New("round has no players")
	ErrInvalidRoundState = errors.New("invalid round state")
	ErrUnknownPlayer     = errors.New("player not found")
)
