// Package config loads the demonstration inputs: built-in defaults taken
// from the classic exercise set, optionally overridden by a TOML file and
// RECURSION_* environment variables, then validated.
package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/recursion/internal/logger"
)

// Config is the full set of demonstration inputs.
type Config struct {
	Log          LogConfig
	Ackermann    []AckermannCase `validate:"dive"`
	Digits       []string
	Hanoi        []int  `validate:"dive,max=20"`
	Pegs         string `validate:"len=3"`
	Permutations [][]int
	// PermutationLimit caps how many permutations are printed per input;
	// 0 prints all of them.
	PermutationLimit int `validate:"gte=0"`
	Harmonic         []int
	Power            []PowerCase
}

// LogConfig selects level and output format of the diagnostic log.
type LogConfig struct {
	Level  string `validate:"omitempty,oneof=trace debug info warn warning error off disabled"`
	Format string `validate:"omitempty,oneof=console json"`
	Caller bool
}

// AckermannCase is one A(x, y) evaluation; Want, when set, is checked.
type AckermannCase struct {
	X    int  `toml:"x"`
	Y    int  `toml:"y"`
	Want *int `toml:"want"`
}

// PowerCase is one x^n evaluation; Want, when set, is checked.
type PowerCase struct {
	X    float64  `toml:"x"`
	N    int      `toml:"n"`
	Want *float64 `toml:"want"`
}

// fileConfig mirrors the TOML layout.
type fileConfig struct {
	Log struct {
		Level  string `toml:"level"`
		Format string `toml:"format"`
		Caller bool   `toml:"caller"`
	} `toml:"log"`
	Ackermann        []AckermannCase `toml:"ackermann"`
	Digits           []string        `toml:"digits"`
	Hanoi            []int           `toml:"hanoi"`
	Pegs             string          `toml:"pegs"`
	Permutations     [][]int         `toml:"permutations"`
	PermutationLimit int             `toml:"permutation_limit"`
	Harmonic         []int           `toml:"harmonic"`
	Power            []PowerCase     `toml:"power"`
}

// Default returns the classic exercise inputs.
func Default() Config {
	return Config{
		Log: LogConfig{Level: "info", Format: "console"},
		Ackermann: []AckermannCase{
			{X: 0, Y: 5, Want: intp(10)},
			{X: 1, Y: 0, Want: intp(0)},
			{X: 2, Y: 1, Want: intp(2)},
			{X: 2, Y: 0, Want: intp(0)},
			{X: 3, Y: 1, Want: intp(2)},
			{X: 3, Y: 3},
			{X: 4, Y: 2},
		},
		Digits: []string{"1222222", "311", "2023", "1984", "12345"},
		Hanoi:  []int{3, 4},
		Pegs:   "ABC",
		Permutations: [][]int{
			{1},
			{1, 2},
			{1, 2, 3},
			{1, 2, 3, 4, 5},
			rangeInts(100),
		},
		PermutationLimit: 120,
		Harmonic:         []int{3, 2, 1, 4},
		Power: []PowerCase{
			{X: 2, N: 4, Want: floatp(16)},
			{X: 3, N: 3, Want: floatp(27)},
			{X: 2, N: -3, Want: floatp(0.125)},
		},
	}
}

// Load returns Default overlaid with the TOML file at path (skipped when
// path is empty) and the logging environment, then validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := overlayFile(&cfg, path); err != nil {
			return Config{}, err
		}
	}
	applyEnvOverrides(&cfg)

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks structural constraints (peg label count, log names,
// output bounds). Argument ranges of the algorithms themselves are left to
// the algorithm packages so their errors can be demonstrated.
func Validate(cfg Config) error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(cfg); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	return nil
}

func overlayFile(cfg *Config, path string) error {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("load config: unknown keys %v", undecoded)
	}

	if meta.IsDefined("log", "level") {
		cfg.Log.Level = strings.ToLower(strings.TrimSpace(raw.Log.Level))
	}
	if meta.IsDefined("log", "format") {
		cfg.Log.Format = strings.ToLower(strings.TrimSpace(raw.Log.Format))
	}
	if meta.IsDefined("log", "caller") {
		cfg.Log.Caller = raw.Log.Caller
	}
	if meta.IsDefined("ackermann") {
		cfg.Ackermann = raw.Ackermann
	}
	if meta.IsDefined("digits") {
		cfg.Digits = raw.Digits
	}
	if meta.IsDefined("hanoi") {
		cfg.Hanoi = raw.Hanoi
	}
	if meta.IsDefined("pegs") {
		cfg.Pegs = strings.TrimSpace(raw.Pegs)
	}
	if meta.IsDefined("permutations") {
		cfg.Permutations = raw.Permutations
	}
	if meta.IsDefined("permutation_limit") {
		cfg.PermutationLimit = raw.PermutationLimit
	}
	if meta.IsDefined("harmonic") {
		cfg.Harmonic = raw.Harmonic
	}
	if meta.IsDefined("power") {
		cfg.Power = raw.Power
	}

	return nil
}

func applyEnvOverrides(cfg *Config) {
	env := logger.FromEnv()
	if env.Level != "" {
		cfg.Log.Level = env.Level
	}
	if env.Format != "" {
		cfg.Log.Format = env.Format
	}
	if env.WithCaller {
		cfg.Log.Caller = true
	}
}

func intp(v int) *int { return &v }

func floatp(v float64) *float64 { return &v }

func rangeInts(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}
