// Command recursiondemo runs every algorithm of the module against the
// classic exercise inputs and prints the results.
//
//	recursiondemo [-config ex.config.toml]
//
// Results go to stdout, diagnostics to stderr (RECURSION_LOG_LEVEL,
// RECURSION_LOG_FORMAT, RECURSION_LOG_CALLER). The exit status is 1 when a check fails and 2 when
// the configuration cannot be loaded.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/katalvlaran/recursion/internal/config"
	"github.com/katalvlaran/recursion/internal/demo"
	"github.com/katalvlaran/recursion/internal/logger"
)

func main() {
	configPath := flag.String("config", "", "TOML file overriding the demonstration inputs")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, *configPath, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, configPath string, stdout, stderr io.Writer) int {
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(stderr, "recursiondemo: %v\n", err)
		return 2
	}

	log := logger.New(logger.Options{
		Level:        cfg.Log.Level,
		Format:       cfg.Log.Format,
		Writer:       stderr,
		WithCaller:   cfg.Log.Caller,
		StaticFields: map[string]string{"run_id": uuid.NewString()},
	})
	log.Debug().Str("config", configPath).Msg("configuration loaded")

	rep, err := demo.New(cfg, stdout, log).Run(ctx)
	if err != nil {
		log.Error().Err(err).Msg("demonstration aborted")
		return 1
	}
	if !rep.OK() {
		return 1
	}

	return 0
}
