// Package main is the entry point for delve. It generates a dungeon floor
// from the environment's settings and prints it as text: the map with the
// player's field of view, and the walking route to the down staircase.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/samdwyer/delve/internal/config"
	"github.com/samdwyer/delve/internal/game"
	"github.com/samdwyer/delve/internal/gamedata"
	"github.com/samdwyer/delve/internal/logging"
	"github.com/samdwyer/delve/internal/rng"
	"github.com/samdwyer/delve/internal/telemetry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "delve: %v\n", err)
		os.Exit(1)
	}

	log := logging.New(cfg.Log)
	if err := run(context.Background(), cfg, log); err != nil {
		log.WithError(err).Fatal("delve failed")
	}
}

func run(ctx context.Context, cfg *config.Config, log *logrus.Logger) error {
	if cfg.Telemetry {
		setupOTelEnv()
	}
	shutdown, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		// Not fatal: the floor still generates without traces.
		log.WithError(err).Warn("telemetry setup failed, continuing without traces")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.WithError(err).Error("telemetry shutdown")
			}
		}()
	}

	seed := cfg.Seed
	if !cfg.HasSeed {
		seed = rng.NewRandom().Seed()
	}

	content, err := gamedata.LoadContent()
	if err != nil {
		return fmt.Errorf("load content: %w", err)
	}

	g, err := game.New(game.Config{
		Seed:       seed,
		Generation: cfg.Generation,
		FOVRadius:  cfg.FOVRadius,
		MaxDepth:   cfg.MaxDepth,
	}, content, log)
	if err != nil {
		return err
	}
	if err := g.Start(ctx); err != nil {
		return err
	}

	log.WithField("seed", seed).Info("dungeon ready")
	fmt.Print(Render(g))
	return nil
}

// setupOTelEnv points the OTLP exporter at Honeycomb when an API key is
// configured. Explicit OTEL_* settings win.
func setupOTelEnv() {
	apiKey := os.Getenv("HONEYCOMB_DELVE_API_KEY")
	if apiKey == "" {
		return
	}
	dataset := os.Getenv("HONEYCOMB_DELVE_DATASET")
	if dataset == "" {
		dataset = "delve"
	}

	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	}
	if os.Getenv("OTEL_EXPORTER_OTLP_HEADERS") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
