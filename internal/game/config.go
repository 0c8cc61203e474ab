package game

import (
	"github.com/Potato-13-58/No9-game.com/internal/config"
)

// NewFromConfig creates a session with the rules, mode, logger and seed
// from cfg. Extra options are applied after the configured ones.
func NewFromConfig(cfg *config.Config, opts ...Option) (*HundredGame, error) {
	mode, err := ParseMode(cfg.Mode)
	if err != nil {
		return nil, err
	}
	logger, err := config.NewLogger(cfg)
	if err != nil {
		return nil, err
	}
	base := []Option{WithMode(mode), WithLogger(logger), WithRand(cfg.Rand())}
	return NewHundredGame(cfg.Rules(), append(base, opts...)...)
}
