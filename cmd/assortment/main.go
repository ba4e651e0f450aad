// Command assortment selects k candidate products to add to an existing
// assortment from a cached product × customer score matrix.
//
// It is configured entirely through koanf layers (see package config):
//
//	ASSORTMENT_INPUT_PATH=data/car_sbs.csv ASSORTMENT_SELECTION_K=5 assortment
//
// The run logs every stage and finishes with the final selection. When
// metrics.textfile is set, Prometheus metrics are written there for a
// node_exporter textfile collector.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/assortment/config"
	"github.com/katalvlaran/assortment/coverage"
	"github.com/katalvlaran/assortment/logging"
	"github.com/katalvlaran/assortment/partition"
	"github.com/katalvlaran/assortment/pipeline"
	"github.com/katalvlaran/assortment/scorefile"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		logging.Err(err).Msg("assortment run failed")
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logging.Init(cfg.ToLogging())
	logging.Debug().
		Int("k", cfg.Selection.K).
		Int("existing_percent", cfg.Selection.ExistingPercent).
		Float64("sample_ratio", cfg.Sampling.Ratio).
		Str("fallback", cfg.Pipeline.Fallback).
		Str("final_algorithm", cfg.Selection.FinalAlgorithm).
		Msg("configuration loaded")

	var loadOpts []scorefile.Option
	if cfg.Input.CustomerRows {
		loadOpts = append(loadOpts, scorefile.CustomerRows())
	}
	m, err := scorefile.Load(cfg.Input.Path, loadOpts...)
	if err != nil {
		return fmt.Errorf("load scores: %w", err)
	}
	scores, err := coverage.NewScores(m)
	if err != nil {
		return fmt.Errorf("load scores: %w", err)
	}
	logging.Info().
		Str("input", cfg.Input.Path).
		Int("products", scores.Products()).
		Int("customers", scores.Customers()).
		Msg("score matrix loaded")

	pcfg, err := cfg.ToPipeline()
	if err != nil {
		return err
	}
	opts := []pipeline.Option{
		pipeline.WithLogger(logging.With().Str("component", "pipeline").Logger()),
	}
	if cfg.Pipeline.SeedFilter {
		opts = append(opts, pipeline.WithRefiner("seed_filter", partition.SeedFilter()))
	}
	var reg *prometheus.Registry
	if cfg.Metrics.Textfile != "" {
		reg = prometheus.NewRegistry()
		opts = append(opts, pipeline.WithMetrics(pipeline.NewMetrics(reg)))
	}

	p, err := pipeline.New(scores, pcfg, opts...)
	if err != nil {
		return err
	}
	rep, runErr := p.Run(ctx)

	if reg != nil {
		if err = prometheus.WriteToTextfile(cfg.Metrics.Textfile, reg); err != nil {
			logging.Warn().Err(err).Str("path", cfg.Metrics.Textfile).Msg("metrics textfile not written")
		}
	}
	if runErr != nil {
		return runErr
	}

	logging.Info().
		Ints("selection", rep.Final()).
		Ints("seed", rep.Seed).
		Int("failed_stages", len(rep.Failed())).
		Msg("best candidates")

	return nil
}
