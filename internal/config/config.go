// Package config loads game rules and logging settings from .env files, the
// environment and an optional config file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	engine "github.com/Potato-13-58/No9-game.com/engine"
)

// EnvPrefix is prepended to every environment variable, e.g. HUNDRED_CEILING.
const EnvPrefix = "HUNDRED"

// Config holds the resolved game rules, logging settings and seed.
type Config struct {
	Ceiling        int
	PoisonDuration int
	PoisonBonus    int
	CardsPerPlayer int
	MoveValues     []int
	Mode           string
	LogLevel       string
	LogFormat      string
	Seed           uint64 // 0 seeds from the clock
}

// Load reads the given .env files (".env" when none are given; missing files
// are skipped), then resolves every key from the environment, configFile if
// non-empty, and the defaults, in that order of precedence.
func Load(configFile string, envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", f, err)
		}
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", configFile, err)
		}
	}

	moves, err := intSlice(v, "move_values")
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Ceiling:        v.GetInt("ceiling"),
		PoisonDuration: v.GetInt("poison_duration"),
		PoisonBonus:    v.GetInt("poison_bonus"),
		CardsPerPlayer: v.GetInt("cards_per_player"),
		MoveValues:     moves,
		Mode:           strings.ToLower(v.GetString("mode")),
		LogLevel:       v.GetString("log_level"),
		LogFormat:      strings.ToLower(v.GetString("log_format")),
		Seed:           v.GetUint64("seed"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := engine.DefaultHouseRules()
	v.SetDefault("ceiling", d.Ceiling)
	v.SetDefault("poison_duration", d.PoisonDuration)
	v.SetDefault("poison_bonus", d.PoisonBonus)
	v.SetDefault("cards_per_player", d.CardsPerPlayer)
	v.SetDefault("move_values", d.MoveValues)
	v.SetDefault("mode", "normal")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("seed", 0)
}

// intSlice reads key as a list. Environment values are comma separated.
func intSlice(v *viper.Viper, key string) ([]int, error) {
	s, ok := v.Get(key).(string)
	if !ok {
		return v.GetIntSlice(key), nil
	}
	var out []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid %s entry %q: %w", key, part, err)
		}
		out = append(out, n)
	}
	return out, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error
	if err := c.Rules().Validate(); err != nil {
		errs = append(errs, err)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("invalid log format %q (want text or json)", c.LogFormat))
	}
	return errors.Join(errs...)
}

// Rules returns the engine rules described by the config.
func (c *Config) Rules() engine.HouseRules {
	return engine.HouseRules{
		Ceiling:        c.Ceiling,
		PoisonDuration: c.PoisonDuration,
		PoisonBonus:    c.PoisonBonus,
		CardsPerPlayer: c.CardsPerPlayer,
		MoveValues:     append([]int(nil), c.MoveValues...),
	}
}

// Rand returns a seeded source, or nil when Seed is 0.
func (c *Config) Rand() *rand.Rand {
	if c.Seed == 0 {
		return nil
	}
	return engine.NewSeededRand(c.Seed)
}

// NewLogger builds a logger writing to stderr at the configured level and format.
func NewLogger(c *Config) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(level)
	if c.LogFormat == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return l, nil
}
