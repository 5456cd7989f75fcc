package app

import (
	"context"
	"math"
	"sort"

	"github.com/montanaflynn/stats"

	"qareview/domain/core"
	"qareview/domain/review"
	"qareview/internal"
	"qareview/internal/errors"
)

// AnalyzerService computes per-chatbot error-rate statistics and the
// error-cause distribution over the full row set.
type AnalyzerService struct {
	logger *internal.Logger
}

// NewAnalyzerService creates a new analyzer service
func NewAnalyzerService(logger *internal.Logger) *AnalyzerService {
	return &AnalyzerService{logger: logger}
}

type chatbotAccumulator struct {
	total  int
	errors int
}

// Analyze produces an analysis report for the dataset. An empty dataset is a
// named failure (core.ErrNoData): best/worst selection over zero chatbots is
// undefined and must not be silently computed.
func (a *AnalyzerService) Analyze(ctx context.Context, rows []review.Row) (*review.AnalysisReport, error) {
	if len(rows) == 0 {
		return nil, &errors.AppError{
			Code:    errors.CodeNoData,
			Message: "cannot analyze an empty dataset",
			Cause:   core.ErrNoData,
		}
	}

	// Single pass accumulation; chatbot order is first-seen so downstream
	// tie-breaking is deterministic.
	accumulators := make(map[string]*chatbotAccumulator)
	var chatbotOrder []string
	for _, row := range rows {
		acc, ok := accumulators[row.Chatbot]
		if !ok {
			acc = &chatbotAccumulator{}
			accumulators[row.Chatbot] = acc
			chatbotOrder = append(chatbotOrder, row.Chatbot)
		}
		acc.total++
		if row.HasError() {
			acc.errors++
		}
	}

	// Rates are rounded for display; the unrounded values feed the averages.
	summary := make([]review.ChatbotStats, 0, len(chatbotOrder))
	errorRates := make([]float64, 0, len(chatbotOrder))
	accuracies := make([]float64, 0, len(chatbotOrder))
	for _, chatbot := range chatbotOrder {
		acc := accumulators[chatbot]
		errorRate, accuracy := 0.0, 0.0
		if acc.total > 0 {
			errorRate = float64(acc.errors) / float64(acc.total) * 100
			accuracy = 100 - errorRate
		}
		errorRates = append(errorRates, errorRate)
		accuracies = append(accuracies, accuracy)

		summary = append(summary, review.ChatbotStats{
			Chatbot:          chatbot,
			TotalQuestions:   acc.total,
			Errors:           acc.errors,
			Correct:          acc.total - acc.errors,
			ErrorRatePercent: round2(errorRate),
			AccuracyPercent:  round2(accuracy),
		})
	}

	sort.SliceStable(summary, func(i, j int) bool {
		return summary[i].ErrorRatePercent > summary[j].ErrorRatePercent
	})

	best, worst := summary[0], summary[0]
	for _, cs := range summary[1:] {
		if cs.ErrorRatePercent < best.ErrorRatePercent {
			best = cs
		}
		if cs.ErrorRatePercent > worst.ErrorRatePercent {
			worst = cs
		}
	}

	avgErrorRate, err := stats.Mean(errorRates)
	if err != nil {
		return nil, errors.Wrap(err, "failed to average error rates")
	}
	avgAccuracy, err := stats.Mean(accuracies)
	if err != nil {
		return nil, errors.Wrap(err, "failed to average accuracy rates")
	}

	totalQuestions, totalErrors := 0, 0
	for _, acc := range accumulators {
		totalQuestions += acc.total
		totalErrors += acc.errors
	}

	analyzed := make([]string, len(chatbotOrder))
	copy(analyzed, chatbotOrder)
	sort.Strings(analyzed)

	report := &review.AnalysisReport{
		Metadata: review.AnalysisMetadata{
			GeneratedAt:        core.Now(),
			RunID:              core.NewRunID().String(),
			DatasetFingerprint: review.Fingerprint(rows).String(),
			TotalRowsInDataset: len(rows),
			TotalChatbots:      len(chatbotOrder),
			ChatbotsAnalyzed:   analyzed,
		},
		Summary: review.AnalysisSummary{
			Chatbots: summary,
			Statistics: review.AggregateStats{
				BestPerforming:                  best,
				WorstPerforming:                 worst,
				AverageErrorRatePercent:         avgErrorRate,
				AverageAccuracyPercent:          avgAccuracy,
				TotalQuestionsAcrossAllChatbots: totalQuestions,
				TotalErrorsAcrossAllChatbots:    totalErrors,
				TotalCorrectAcrossAllChatbots:   totalQuestions - totalErrors,
			},
		},
		ErrorTypeDistribution: a.causeDistribution(rows),
		ErrorTypeDescriptions: review.CauseDescriptions(),
	}

	a.logger.Info("analyzed %d rows across %d chatbots (best %s %.2f%%, worst %s %.2f%%)",
		len(rows), len(chatbotOrder), best.Chatbot, best.ErrorRatePercent, worst.Chatbot, worst.ErrorRatePercent)
	return report, nil
}

// causeDistribution cross-tabulates flagged rows by (chatbot, cause name),
// keeping positive counts only
func (a *AnalyzerService) causeDistribution(rows []review.Row) map[string]map[string]int {
	distribution := make(map[string]map[string]int)
	for _, row := range rows {
		if !row.HasError() {
			continue
		}
		name, ok := review.CauseName(*row.ErrorCode)
		if !ok {
			// Loader validates codes; a stray value here is worth surfacing.
			a.logger.Warn("skipping unknown error code %d for chatbot %q", *row.ErrorCode, row.Chatbot)
			continue
		}
		if distribution[row.Chatbot] == nil {
			distribution[row.Chatbot] = make(map[string]int)
		}
		distribution[row.Chatbot][name]++
	}
	return distribution
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
