package demo

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/recursion/internal/config"
	"github.com/katalvlaran/recursion/internal/logger"
)

func intp(v int) *int { return &v }

func TestRun_Defaults(t *testing.T) {
	var out bytes.Buffer
	rep, err := New(config.Default(), &out, zerolog.Nop()).Run(context.Background())
	require.NoError(t, err)

	assert.True(t, rep.OK())
	assert.Equal(t, Report{Checks: 15, Failed: 0, Errors: 0}, rep)

	text := out.String()
	for _, want := range []string{
		"Ackermann tests:",
		"A(0,5) = 10 (want 10: ok)",
		"A(3,3) = 65536",
		"A(4,2) = 4",
		`ToInt("1222222") = 1222222`,
		`ToInt("12345") = 12345`,
		"Tower of Hanoi with 3 disks:",
		"Move disk 1 from A to C",
		"Move disk 4 from A to C",
		"Hanoi(4,A,B,C) moves = 15 (want 15: ok)",
		"Permutations of 3 elements (6 total):",
		"[3 1 2]",
		"Permutations of 5 elements (120 total):",
		"... 120 of 93326215443944152681",
		"restore(len=100)",
		"H(4) = 2.08",
		"Pow(2,-3) = 0.125 (want 0.125: ok)",
	} {
		assert.Contains(t, text, want)
	}
	assert.Equal(t, 5, strings.Count(text, separator))
	assert.NotContains(t, text, "FAIL")
}

func TestRun_ErrorsAndFailures(t *testing.T) {
	cfg := config.Default()
	cfg.Ackermann = []config.AckermannCase{{X: 4, Y: 3}, {X: 0, Y: 5, Want: intp(11)}}
	cfg.Digits = []string{"12a", "99999999999999999999"}
	cfg.Hanoi = []int{-1}
	cfg.Permutations = [][]int{{2, 1}}
	cfg.PermutationLimit = 1
	cfg.Harmonic = []int{-1}
	cfg.Power = []config.PowerCase{{X: 0, N: 0}}

	var out, logs bytes.Buffer
	log := logger.New(logger.Options{Level: "debug", Format: "json", Writer: &logs})
	rep, err := New(cfg, &out, log).Run(context.Background())
	require.NoError(t, err)

	assert.False(t, rep.OK())
	assert.Equal(t, Report{Checks: 2, Failed: 1, Errors: 5}, rep)

	text := out.String()
	assert.Contains(t, text, "A(4,3): error:")
	assert.Contains(t, text, "A(0,5) = 10 (want 11: FAIL)")
	assert.Contains(t, text, `ToInt("12a"): error:`)
	assert.Contains(t, text, "exceeds int64; big value 99999999999999999999")
	assert.Contains(t, text, "Hanoi(-1,A,B,C): error:")
	assert.Contains(t, text, "[2 1]\n... 1 of 2 shown")
	assert.Contains(t, text, "H(-1): error:")
	assert.Contains(t, text, "Pow(0,0): error:")

	assert.Contains(t, logs.String(), `"kind":"overflow"`)
	assert.Contains(t, logs.String(), `"message":"check failed"`)
	assert.Contains(t, logs.String(), `"message":"section done"`)
	assert.Contains(t, logs.String(), `"component":"hanoi"`)
	assert.Contains(t, logs.String(), `"stack":[`)
}

func TestRun_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	_, err := New(config.Default(), &out, zerolog.Nop()).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

type failingWriter struct{}

var errDiskFull = errors.New("disk full")

func (failingWriter) Write([]byte) (int, error) { return 0, errDiskFull }

func TestRun_WriteError(t *testing.T) {
	_, err := New(config.Default(), failingWriter{}, zerolog.Nop()).Run(context.Background())
	assert.ErrorIs(t, err, errDiskFull)
	assert.Contains(t, err.Error(), "ackermann: write output")
}

func TestRun_BadPegs(t *testing.T) {
	cfg := config.Default()
	cfg.Pegs = "AB"

	var out bytes.Buffer
	rep, err := New(cfg, &out, zerolog.Nop()).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Errors)
	assert.Contains(t, out.String(), "need 3 peg labels")
}
