package app

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"qareview/domain/core"
	"qareview/domain/review"
	"qareview/internal"
	"qareview/internal/errors"
	"qareview/ports"
)

// SampleOptions configures one sampling run
type SampleOptions struct {
	// SampleSize is the target number of records in the final sample
	SampleSize int
	// CategoryCount is the number of top categories to balance across
	CategoryCount int
	// Seed drives every random draw; fixed seed means bit-identical output
	Seed int64
	// SourceFile is recorded in report metadata
	SourceFile string
}

// SamplerService draws a reproducible, category-balanced sample of unique
// Q&A pairs for manual review.
type SamplerService struct {
	rng    ports.RNGPort
	logger *internal.Logger
}

// NewSamplerService creates a new sampler service
func NewSamplerService(rng ports.RNGPort, logger *internal.Logger) *SamplerService {
	return &SamplerService{rng: rng, logger: logger}
}

// Sample produces a sample report balanced as evenly as possible across the
// top categories by unique-pair frequency. The report contains exactly
// SampleSize records unless categories run short of available pairs, in
// which case it degrades with a logged warning rather than failing.
func (s *SamplerService) Sample(ctx context.Context, rows []review.Row, opts SampleOptions) (*review.SampleReport, error) {
	if opts.SampleSize <= 0 {
		return nil, errors.InvalidInput("sample size must be positive")
	}
	if opts.CategoryCount <= 0 {
		return nil, errors.InvalidInput("category count must be positive")
	}

	pairsByCategory, categoryOrder := deduplicate(rows)
	ranking := rankCategories(pairsByCategory, categoryOrder, opts.CategoryCount)

	s.logger.Info("top %d categories by unique Q&A pairs:", len(ranking))
	for _, rank := range ranking {
		s.logger.Info("  %d. %s: %d unique Q&A pairs", rank.Rank, rank.Category, rank.UniquePairs)
	}

	// Remainder-fair quota split over the effective category count: the
	// first (SampleSize mod N) ranked categories get one extra sample.
	base, remainder := 0, 0
	if len(ranking) > 0 {
		base = opts.SampleSize / len(ranking)
		remainder = opts.SampleSize % len(ranking)
	}

	drawn := make([]review.UniqueQAPair, 0, opts.SampleSize)
	for i, rank := range ranking {
		quota := base
		if i < remainder {
			quota++
		}

		available := pairsByCategory[rank.Category]
		if len(available) < quota {
			s.logger.Warn("category %q has only %d unique Q&A pairs, taking all available (requested %d)",
				rank.Category, len(available), quota)
			drawn = append(drawn, available...)
			continue
		}

		stream, err := s.rng.SeededStream(ctx, "draw:"+rank.Category, opts.Seed)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create draw stream")
		}
		for _, j := range stream.Perm(len(available))[:quota] {
			drawn = append(drawn, available[j])
		}
	}

	// One full shuffle pass so categories interleave in the output.
	stream, err := s.rng.SeededStream(ctx, "shuffle", opts.Seed)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create shuffle stream")
	}
	stream.Shuffle(len(drawn), func(i, j int) {
		drawn[i], drawn[j] = drawn[j], drawn[i]
	})

	samples := make([]review.SampleRecord, 0, len(drawn))
	for i, pair := range drawn {
		samples = append(samples, review.SampleRecord{
			SampleID:     i + 1,
			Category:     pair.Category,
			Question:     pair.Question,
			GoldenAnswer: pair.GroundTruth,
		})
	}

	included := make([]string, 0, len(ranking))
	for _, rank := range ranking {
		included = append(included, rank.Category)
	}

	report := &review.SampleReport{
		Metadata: review.SampleMetadata{
			GeneratedAt:        core.Now(),
			RunID:              core.NewRunID().String(),
			DatasetFingerprint: review.Fingerprint(rows).String(),
			TotalSamples:       len(samples),
			TotalCategories:    len(ranking),
			SamplesPerCategory: base,
			CategoriesIncluded: included,
			SourceFile:         opts.SourceFile,
		},
		Samples: samples,
	}

	s.logSampleDistribution(samples)
	return report, nil
}

// deduplicate collapses rows into unique Q&A pairs keyed by
// (question, ground-truth answer), retaining the category of the first
// occurrence. Pairs are grouped per category in encounter order, and
// categoryOrder records the first-encounter order of categories among the
// deduplicated pairs.
func deduplicate(rows []review.Row) (map[string][]review.UniqueQAPair, []string) {
	seen := make(map[string]struct{}, len(rows))
	pairsByCategory := make(map[string][]review.UniqueQAPair)
	var categoryOrder []string

	for _, row := range rows {
		key := row.Question + "\x1f" + row.GroundTruth
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		if _, ok := pairsByCategory[row.Category]; !ok {
			categoryOrder = append(categoryOrder, row.Category)
		}
		pairsByCategory[row.Category] = append(pairsByCategory[row.Category], review.UniqueQAPair{
			Question:    row.Question,
			GroundTruth: row.GroundTruth,
			Category:    row.Category,
		})
	}

	return pairsByCategory, categoryOrder
}

// rankCategories orders categories by unique-pair count descending and keeps
// the top limit entries. Ties keep first-encounter order (stable sort), so
// ranking never depends on map iteration order.
func rankCategories(pairsByCategory map[string][]review.UniqueQAPair, categoryOrder []string, limit int) []review.CategoryRank {
	ranking := make([]review.CategoryRank, 0, len(categoryOrder))
	for _, category := range categoryOrder {
		ranking = append(ranking, review.CategoryRank{
			Category:    category,
			UniquePairs: len(pairsByCategory[category]),
		})
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].UniquePairs > ranking[j].UniquePairs
	})

	if len(ranking) > limit {
		ranking = ranking[:limit]
	}
	for i := range ranking {
		ranking[i].Rank = i + 1
	}
	return ranking
}

func (s *SamplerService) logSampleDistribution(samples []review.SampleRecord) {
	if len(samples) == 0 {
		return
	}

	counts := make(map[string]int)
	for _, sample := range samples {
		counts[sample.Category]++
	}
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for i, name := range names {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(name)
		b.WriteString("=")
		b.WriteString(strconv.Itoa(counts[name]))
	}
	s.logger.Info("sampled %d Q&A pairs (%s)", len(samples), b.String())
}
