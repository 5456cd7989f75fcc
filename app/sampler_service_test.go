package app

import (
	"context"
	"reflect"
	"testing"

	"qareview/adapters/rng"
	"qareview/domain/review"
	"qareview/internal"
	"qareview/internal/testkit"
)

func quietLogger() *internal.Logger {
	return internal.NewLogger(internal.LogLevelError)
}

func testRows(t *testing.T) []review.Row {
	t.Helper()
	gen := testkit.NewQADatasetGenerator(testkit.DefaultQADatasetConfig())
	return gen.GenerateRows()
}

func defaultOptions() SampleOptions {
	return SampleOptions{
		SampleSize:    50,
		CategoryCount: 25,
		Seed:          42,
		SourceFile:    "train.csv",
	}
}

func TestSamplerDeterminism(t *testing.T) {
	rows := testRows(t)
	sampler := NewSamplerService(rng.New(), quietLogger())

	first, err := sampler.Sample(context.Background(), rows, defaultOptions())
	if err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	second, err := sampler.Sample(context.Background(), rows, defaultOptions())
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}

	if !reflect.DeepEqual(first.Samples, second.Samples) {
		t.Error("two runs with identical input and seed produced different sample sequences")
	}
	if !reflect.DeepEqual(first.Metadata.CategoriesIncluded, second.Metadata.CategoriesIncluded) {
		t.Error("two runs produced different category rankings")
	}
}

func TestSamplerSeedChangesOutput(t *testing.T) {
	rows := testRows(t)
	sampler := NewSamplerService(rng.New(), quietLogger())

	base, err := sampler.Sample(context.Background(), rows, defaultOptions())
	if err != nil {
		t.Fatalf("base run failed: %v", err)
	}

	opts := defaultOptions()
	opts.Seed = 7
	reseeded, err := sampler.Sample(context.Background(), rows, opts)
	if err != nil {
		t.Fatalf("reseeded run failed: %v", err)
	}

	if reflect.DeepEqual(base.Samples, reseeded.Samples) {
		t.Error("expected a different seed to change the drawn sample")
	}
}

func TestSamplerQuotaConservation(t *testing.T) {
	// Default testkit config: 30 categories with 4 unique pairs each, so
	// every one of the 25 included categories can fill its quota of 2.
	rows := testRows(t)
	sampler := NewSamplerService(rng.New(), quietLogger())

	report, err := sampler.Sample(context.Background(), rows, defaultOptions())
	if err != nil {
		t.Fatalf("sampling failed: %v", err)
	}

	if report.Metadata.TotalSamples != 50 {
		t.Errorf("expected exactly 50 samples, got %d", report.Metadata.TotalSamples)
	}
	if report.Metadata.TotalCategories != 25 {
		t.Errorf("expected 25 included categories, got %d", report.Metadata.TotalCategories)
	}
	if report.Metadata.SamplesPerCategory != 2 {
		t.Errorf("expected base quota of 2, got %d", report.Metadata.SamplesPerCategory)
	}

	counts := make(map[string]int)
	for _, sample := range report.Samples {
		counts[sample.Category]++
	}
	for _, category := range report.Metadata.CategoriesIncluded {
		if counts[category] != 2 {
			t.Errorf("category %q has %d samples, expected 2", category, counts[category])
		}
	}
}

func TestSamplerRemainderDistribution(t *testing.T) {
	rows := testRows(t)
	sampler := NewSamplerService(rng.New(), quietLogger())

	// 52 samples over 25 categories: base 2, first 2 ranked categories get 3.
	opts := defaultOptions()
	opts.SampleSize = 52
	report, err := sampler.Sample(context.Background(), rows, opts)
	if err != nil {
		t.Fatalf("sampling failed: %v", err)
	}

	if report.Metadata.TotalSamples != 52 {
		t.Fatalf("expected 52 samples, got %d", report.Metadata.TotalSamples)
	}

	counts := make(map[string]int)
	for _, sample := range report.Samples {
		counts[sample.Category]++
	}
	for i, category := range report.Metadata.CategoriesIncluded {
		want := 2
		if i < 2 {
			want = 3
		}
		if counts[category] != want {
			t.Errorf("rank %d category %q has %d samples, expected %d", i+1, category, counts[category], want)
		}
	}
}

func TestSamplerDeduplication(t *testing.T) {
	rows := []review.Row{
		{Question: "Q1", GroundTruth: "A1", Category: "Alpha", Chatbot: "bot-a"},
		{Question: "Q1", GroundTruth: "A1", Category: "Beta", Chatbot: "bot-b"},
		{Question: "Q1", GroundTruth: "A1", Category: "Gamma", Chatbot: "bot-c"},
	}
	sampler := NewSamplerService(rng.New(), quietLogger())

	report, err := sampler.Sample(context.Background(), rows, SampleOptions{SampleSize: 5, CategoryCount: 5, Seed: 42})
	if err != nil {
		t.Fatalf("sampling failed: %v", err)
	}

	if len(report.Samples) != 1 {
		t.Fatalf("expected 1 sample after deduplication, got %d", len(report.Samples))
	}
	if report.Samples[0].Category != "Alpha" {
		t.Errorf("expected first-seen category Alpha to win, got %q", report.Samples[0].Category)
	}
}

func TestSamplerShortfall(t *testing.T) {
	// Two categories, quota 2 each; Beta has only one unique pair.
	rows := []review.Row{
		{Question: "Q1", GroundTruth: "A1", Category: "Alpha", Chatbot: "bot-a"},
		{Question: "Q2", GroundTruth: "A2", Category: "Alpha", Chatbot: "bot-a"},
		{Question: "Q3", GroundTruth: "A3", Category: "Alpha", Chatbot: "bot-a"},
		{Question: "Q4", GroundTruth: "A4", Category: "Beta", Chatbot: "bot-a"},
	}
	sampler := NewSamplerService(rng.New(), quietLogger())

	report, err := sampler.Sample(context.Background(), rows, SampleOptions{SampleSize: 4, CategoryCount: 2, Seed: 42})
	if err != nil {
		t.Fatalf("shortfall must not be fatal: %v", err)
	}

	if report.Metadata.TotalSamples != 3 {
		t.Errorf("expected sample size reduced to 3, got %d", report.Metadata.TotalSamples)
	}
}

func TestSamplerFewerCategoriesThanRequested(t *testing.T) {
	rows := []review.Row{
		{Question: "Q1", GroundTruth: "A1", Category: "Alpha", Chatbot: "bot-a"},
		{Question: "Q2", GroundTruth: "A2", Category: "Alpha", Chatbot: "bot-a"},
		{Question: "Q3", GroundTruth: "A3", Category: "Beta", Chatbot: "bot-a"},
		{Question: "Q4", GroundTruth: "A4", Category: "Beta", Chatbot: "bot-a"},
	}
	sampler := NewSamplerService(rng.New(), quietLogger())

	report, err := sampler.Sample(context.Background(), rows, SampleOptions{SampleSize: 4, CategoryCount: 25, Seed: 42})
	if err != nil {
		t.Fatalf("sampling failed: %v", err)
	}

	if report.Metadata.TotalCategories != 2 {
		t.Errorf("expected effective category count 2, got %d", report.Metadata.TotalCategories)
	}
	if report.Metadata.TotalSamples != 4 {
		t.Errorf("expected 4 samples from 2 categories, got %d", report.Metadata.TotalSamples)
	}
}

func TestSamplerEmptyDataset(t *testing.T) {
	sampler := NewSamplerService(rng.New(), quietLogger())

	report, err := sampler.Sample(context.Background(), nil, defaultOptions())
	if err != nil {
		t.Fatalf("empty dataset must yield an empty report, not an error: %v", err)
	}

	if len(report.Samples) != 0 {
		t.Errorf("expected no samples, got %d", len(report.Samples))
	}
	if report.Metadata.TotalCategories != 0 {
		t.Errorf("expected no categories, got %d", report.Metadata.TotalCategories)
	}
}

func TestSamplerSequentialIDs(t *testing.T) {
	rows := testRows(t)
	sampler := NewSamplerService(rng.New(), quietLogger())

	report, err := sampler.Sample(context.Background(), rows, defaultOptions())
	if err != nil {
		t.Fatalf("sampling failed: %v", err)
	}

	for i, sample := range report.Samples {
		if sample.SampleID != i+1 {
			t.Fatalf("sample at position %d has id %d, expected %d", i, sample.SampleID, i+1)
		}
	}
}

func TestSamplerRanksByFrequency(t *testing.T) {
	// Beta has 3 unique pairs, Alpha 1; Beta must outrank Alpha even though
	// Alpha is encountered first.
	rows := []review.Row{
		{Question: "Q1", GroundTruth: "A1", Category: "Alpha", Chatbot: "bot-a"},
		{Question: "Q2", GroundTruth: "A2", Category: "Beta", Chatbot: "bot-a"},
		{Question: "Q3", GroundTruth: "A3", Category: "Beta", Chatbot: "bot-a"},
		{Question: "Q4", GroundTruth: "A4", Category: "Beta", Chatbot: "bot-a"},
	}
	sampler := NewSamplerService(rng.New(), quietLogger())

	report, err := sampler.Sample(context.Background(), rows, SampleOptions{SampleSize: 2, CategoryCount: 2, Seed: 42})
	if err != nil {
		t.Fatalf("sampling failed: %v", err)
	}

	want := []string{"Beta", "Alpha"}
	if !reflect.DeepEqual(report.Metadata.CategoriesIncluded, want) {
		t.Errorf("expected ranking %v, got %v", want, report.Metadata.CategoriesIncluded)
	}
}

func TestSamplerInvalidOptions(t *testing.T) {
	sampler := NewSamplerService(rng.New(), quietLogger())

	if _, err := sampler.Sample(context.Background(), nil, SampleOptions{SampleSize: 0, CategoryCount: 25}); err == nil {
		t.Error("expected error for zero sample size")
	}
	if _, err := sampler.Sample(context.Background(), nil, SampleOptions{SampleSize: 50, CategoryCount: 0}); err == nil {
		t.Error("expected error for zero category count")
	}
}
