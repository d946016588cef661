// Package demo runs every algorithm against the configured inputs and
// writes human-readable results. Checks with an expected value are counted
// in the Report; algorithm errors are printed and counted, not fatal.
package demo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/big"
	"slices"
	"time"

	pkgerrs "github.com/pkg/errors"

	"github.com/katalvlaran/recursion/ackermann"
	"github.com/katalvlaran/recursion/digits"
	"github.com/katalvlaran/recursion/errs"
	"github.com/katalvlaran/recursion/hanoi"
	"github.com/katalvlaran/recursion/harmonic"
	"github.com/katalvlaran/recursion/internal/config"
	"github.com/katalvlaran/recursion/internal/logger"
	"github.com/katalvlaran/recursion/permute"
	"github.com/katalvlaran/recursion/power"
)

const separator = "-------------------------"

// Report summarises a run.
type Report struct {
	Checks int // evaluations compared with an expected value
	Failed int // checks whose result differed
	Errors int // evaluations that returned an error
}

// OK reports whether every check passed.
func (r Report) OK() bool { return r.Failed == 0 }

// Runner executes the demonstration sections in order.
type Runner struct {
	cfg  config.Config
	out  io.Writer
	log  logger.Logger
	rep  Report
	werr error
}

type section struct {
	name string
	run  func(context.Context)
}

// New returns a Runner writing results to out and diagnostics to log.
func New(cfg config.Config, out io.Writer, log logger.Logger) *Runner {
	return &Runner{cfg: cfg, out: out, log: log}
}

// Run executes all sections. It stops early when ctx is done or out fails.
func (r *Runner) Run(ctx context.Context) (Report, error) {
	sections := []section{
		{"ackermann", r.runAckermann},
		{"digits", r.runDigits},
		{"hanoi", r.runHanoi},
		{"permute", r.runPermutations},
		{"harmonic", r.runHarmonic},
		{"power", r.runPower},
	}

	for i, s := range sections {
		if err := ctx.Err(); err != nil {
			return r.rep, err
		}
		if i > 0 {
			r.printf("%s\n", separator)
		}

		start := time.Now()
		s.run(ctx)
		if r.werr != nil {
			return r.rep, fmt.Errorf("%s: write output: %w", s.name, r.werr)
		}
		logger.Named(r.log, s.name).Debug().Dur("elapsed", time.Since(start)).Msg("section done")
	}
	if err := ctx.Err(); err != nil {
		return r.rep, err
	}

	r.log.Info().
		Int("checks", r.rep.Checks).
		Int("failed", r.rep.Failed).
		Int("errors", r.rep.Errors).
		Msg("demonstration finished")

	return r.rep, nil
}

func (r *Runner) runAckermann(context.Context) {
	r.printf("Ackermann tests:\n")
	for _, c := range r.cfg.Ackermann {
		label := fmt.Sprintf("A(%d,%d)", c.X, c.Y)
		v, err := ackermann.Ackermann(c.X, c.Y)
		if err != nil {
			r.fail("ackermann", label, err)
			continue
		}
		if c.Want == nil {
			r.printf("%s = %d\n", label, v)
			continue
		}
		r.check("ackermann", label, fmt.Sprint(v), fmt.Sprint(*c.Want), v == *c.Want)
	}
}

func (r *Runner) runDigits(context.Context) {
	r.printf("Digit parsing tests:\n")
	for _, s := range r.cfg.Digits {
		label := fmt.Sprintf("ToInt(%q)", s)
		v, err := digits.ToInt(s)
		if errors.Is(err, errs.ErrOverflow) {
			// the value is valid, only too wide for int64
			if b, berr := digits.ToBig(s); berr == nil {
				r.printf("%s exceeds int64; big value %s\n", label, b)
				continue
			}
		}
		if err != nil {
			r.fail("digits", label, err)
			continue
		}
		r.printf("%s = %d\n", label, v)
	}
}

func (r *Runner) runHanoi(ctx context.Context) {
	pegs := []rune(r.cfg.Pegs)
	if len(pegs) != 3 {
		r.fail("hanoi", "pegs", fmt.Errorf("need 3 peg labels, got %q: %w", r.cfg.Pegs, errs.ErrInvalidArgument))
		return
	}
	from, spare, to := hanoi.Peg(pegs[0]), hanoi.Peg(pegs[1]), hanoi.Peg(pegs[2])

	for i, n := range r.cfg.Hanoi {
		if ctx.Err() != nil {
			return
		}
		if i > 0 {
			r.printf("\n")
		}
		r.printf("Tower of Hanoi with %d disks:\n", n)
		label := fmt.Sprintf("Hanoi(%d,%c,%c,%c)", n, from, spare, to)
		moves, err := hanoi.Moves(n, from, spare, to)
		if err != nil {
			r.fail("hanoi", label, err)
			continue
		}
		for _, m := range moves {
			r.printf("%v\n", m)
		}

		verr := hanoi.Verify(n, from, spare, to, moves)
		if verr != nil {
			r.log.Error().Err(verr).Str("case", label).Msg("solution rejected")
		}
		count, err := hanoi.Count(n)
		if err != nil {
			r.fail("hanoi", label+" count", err)
			continue
		}
		r.check("hanoi", label+" moves", fmt.Sprint(len(moves)), fmt.Sprint(count), verr == nil && uint64(len(moves)) == count)
	}
}

func (r *Runner) runPermutations(ctx context.Context) {
	limit := r.cfg.PermutationLimit
	for i, values := range r.cfg.Permutations {
		if i > 0 {
			r.printf("\n")
		}
		buf := slices.Clone(values)
		label := fmt.Sprintf("Permutations(len=%d)", len(buf))
		total, err := permute.Count(len(buf), 0)
		if err != nil {
			r.fail("permute", label, err)
			continue
		}
		r.printf("Permutations of %d elements (%s total):\n", len(buf), total)

		seq, err := permute.Permutations(buf, 0)
		if err != nil {
			r.fail("permute", label, err)
			continue
		}
		shown := 0
		for p := range seq {
			if ctx.Err() != nil || r.werr != nil {
				break
			}
			r.printf("%v\n", p)
			if shown++; limit > 0 && shown == limit {
				break
			}
		}
		if total.Cmp(big.NewInt(int64(shown))) > 0 {
			r.printf("... %d of %s shown\n", shown, total)
		}

		r.check("permute", fmt.Sprintf("restore(len=%d)", len(buf)), fmt.Sprint(buf), fmt.Sprint(values), slices.Equal(buf, values))
		if ctx.Err() != nil {
			return
		}
	}
}

func (r *Runner) runHarmonic(context.Context) {
	r.printf("Harmonic sums:\n")
	for _, n := range r.cfg.Harmonic {
		label := fmt.Sprintf("H(%d)", n)
		h, err := harmonic.Sum(n)
		if err != nil {
			r.fail("harmonic", label, err)
			continue
		}
		r.printf("%s = %v\n", label, h)
	}
}

func (r *Runner) runPower(context.Context) {
	r.printf("Power tests:\n")
	for _, c := range r.cfg.Power {
		label := fmt.Sprintf("Pow(%v,%d)", c.X, c.N)
		v, err := power.Pow(c.X, c.N)
		if err != nil {
			r.fail("power", label, err)
			continue
		}
		if c.Want == nil {
			r.printf("%s = %v\n", label, v)
			continue
		}
		r.check("power", label, fmt.Sprint(v), fmt.Sprint(*c.Want), v == *c.Want)
	}
}

// check prints a compared result and records it.
func (r *Runner) check(component, label, got, want string, ok bool) {
	r.rep.Checks++
	status := "ok"
	if !ok {
		status = "FAIL"
		r.rep.Failed++
		logger.Named(r.log, component).Error().
			Str("case", label).Str("got", got).Str("want", want).
			Msg("check failed")
	}
	r.printf("%s = %s (want %s: %s)\n", label, got, want, status)
}

// fail prints and records an algorithm error.
func (r *Runner) fail(component, label string, err error) {
	r.rep.Errors++
	kind := "invalid argument"
	if errors.Is(err, errs.ErrOverflow) {
		kind = "overflow"
	}
	logger.Named(r.log, component).Warn().Stack().
		Err(pkgerrs.WithStack(err)).
		Str("case", label).Str("kind", kind).
		Msg("evaluation failed")
	r.printf("%s: error: %v\n", label, err)
}

// printf writes to out, keeping the first write error.
func (r *Runner) printf(format string, args ...any) {
	if r.werr != nil {
		return
	}
	_, r.werr = fmt.Fprintf(r.out, format, args...)
}
