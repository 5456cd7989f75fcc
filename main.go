package main

import (
	"context"
	"os"

	"qareview/adapters/reportstore"
	"qareview/adapters/rng"
	"qareview/adapters/tabular"
	"qareview/app"
	"qareview/internal"
	"qareview/internal/config"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env if present; real environments set variables directly.
	_ = godotenv.Load()

	logger := internal.NewDefaultLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration: %v", err)
		os.Exit(1)
	}

	ctx := context.Background()

	reader := tabular.NewDataReader(cfg.Paths.DatasetFile)
	rows, err := reader.ReadDataset(ctx)
	if err != nil {
		logger.Error("failed to load dataset: %v", err)
		os.Exit(1)
	}
	logger.Info("loaded %d rows from %s", len(rows), reader.Source())

	store := reportstore.New()

	sampler := app.NewSamplerService(rng.New(), logger)
	sampleReport, err := sampler.Sample(ctx, rows, app.SampleOptions{
		SampleSize:    cfg.Sampling.SampleSize,
		CategoryCount: cfg.Sampling.CategoryCount,
		Seed:          cfg.Sampling.Seed,
		SourceFile:    reader.Source(),
	})
	if err != nil {
		logger.Error("sampling failed: %v", err)
		os.Exit(1)
	}
	if err := store.Store(ctx, cfg.Paths.SampleFile, sampleReport); err != nil {
		logger.Error("failed to persist sample report: %v", err)
		os.Exit(1)
	}
	logger.Info("sample report written to %s (%d samples)", cfg.Paths.SampleFile, sampleReport.Metadata.TotalSamples)

	analyzer := app.NewAnalyzerService(logger)
	analysisReport, err := analyzer.Analyze(ctx, rows)
	if err != nil {
		logger.Error("analysis failed: %v", err)
		os.Exit(1)
	}
	if err := store.Store(ctx, cfg.Paths.ReportFile, analysisReport); err != nil {
		logger.Error("failed to persist analysis report: %v", err)
		os.Exit(1)
	}
	logger.Info("analysis report written to %s", cfg.Paths.ReportFile)
}
