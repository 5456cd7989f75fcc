package config

import (
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Paths.DatasetFile != "train.csv" {
		t.Errorf("expected default dataset file train.csv, got %q", cfg.Paths.DatasetFile)
	}
	if cfg.Paths.SampleFile != "qa_sample.json" {
		t.Errorf("expected default sample file qa_sample.json, got %q", cfg.Paths.SampleFile)
	}
	if cfg.Paths.ReportFile != "error_rate_report.json" {
		t.Errorf("expected default report file error_rate_report.json, got %q", cfg.Paths.ReportFile)
	}
	if cfg.Sampling.SampleSize != 50 {
		t.Errorf("expected default sample size 50, got %d", cfg.Sampling.SampleSize)
	}
	if cfg.Sampling.CategoryCount != 25 {
		t.Errorf("expected default category count 25, got %d", cfg.Sampling.CategoryCount)
	}
	if cfg.Sampling.Seed != 42 {
		t.Errorf("expected default seed 42, got %d", cfg.Sampling.Seed)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATASET_FILE", "eval.xlsx")
	t.Setenv("SAMPLE_SIZE", "100")
	t.Setenv("CATEGORY_COUNT", "10")
	t.Setenv("SAMPLE_SEED", "1234")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Paths.DatasetFile != "eval.xlsx" {
		t.Errorf("expected dataset file eval.xlsx, got %q", cfg.Paths.DatasetFile)
	}
	if cfg.Sampling.SampleSize != 100 {
		t.Errorf("expected sample size 100, got %d", cfg.Sampling.SampleSize)
	}
	if cfg.Sampling.CategoryCount != 10 {
		t.Errorf("expected category count 10, got %d", cfg.Sampling.CategoryCount)
	}
	if cfg.Sampling.Seed != 1234 {
		t.Errorf("expected seed 1234, got %d", cfg.Sampling.Seed)
	}
}

func TestLoadInvalidSampleSize(t *testing.T) {
	t.Setenv("SAMPLE_SIZE", "-5")

	if _, err := Load(); err == nil {
		t.Error("expected validation error for negative sample size")
	}
}

func TestLoadMalformedIntFallsBack(t *testing.T) {
	t.Setenv("SAMPLE_SIZE", "lots")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Sampling.SampleSize != 50 {
		t.Errorf("expected fallback to default 50, got %d", cfg.Sampling.SampleSize)
	}
}
