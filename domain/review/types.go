package review

import (
	"qareview/domain/core"
)

// Row is one observation from the evaluation dataset: a question asked of one
// chatbot, the ground-truth answer, and an optional error code flagged by the
// reviewers. Rows are immutable once loaded.
type Row struct {
	Question    string
	GroundTruth string
	Category    string
	Chatbot     string
	// ErrorCode is nil when the answer was not flagged; otherwise 1-5.
	ErrorCode *int
}

// HasError reports whether the row was flagged as erroneous
func (r Row) HasError() bool {
	return r.ErrorCode != nil
}

// UniqueQAPair is the deduplicated identity of a row, keyed by
// (question, ground-truth answer). The category of the first-encountered row
// wins; later duplicates are dropped.
type UniqueQAPair struct {
	Question    string
	GroundTruth string
	Category    string
}

// CategoryRank is one entry of the category frequency ranking
type CategoryRank struct {
	Rank        int    `json:"rank"`
	Category    string `json:"category"`
	UniquePairs int    `json:"unique_pairs"`
}

// SampleRecord is one drawn Q&A pair in the final shuffled order
type SampleRecord struct {
	SampleID     int    `json:"sample_id"`
	Category     string `json:"category"`
	Question     string `json:"question"`
	GoldenAnswer string `json:"golden_answer"`
}

// SampleMetadata describes how a sample was drawn
type SampleMetadata struct {
	GeneratedAt        core.Timestamp `json:"generated_at"`
	RunID              string         `json:"run_id"`
	DatasetFingerprint string         `json:"dataset_fingerprint"`
	TotalSamples       int            `json:"total_samples"`
	TotalCategories    int            `json:"total_categories"`
	SamplesPerCategory int            `json:"samples_per_category"`
	CategoriesIncluded []string       `json:"categories_included"`
	SourceFile         string         `json:"source_file"`
}

// SampleReport is the persisted output of the sampler. Created once per run,
// written to a file, never mutated afterward.
type SampleReport struct {
	Metadata SampleMetadata `json:"metadata"`
	Samples  []SampleRecord `json:"samples"`
}

// ChatbotStats summarizes one chatbot's error performance. Rate fields are
// rounded to two decimals for display; error rate and accuracy sum to 100 by
// construction.
type ChatbotStats struct {
	Chatbot          string  `json:"chatbot"`
	TotalQuestions   int     `json:"total_questions"`
	Errors           int     `json:"errors"`
	Correct          int     `json:"correct"`
	ErrorRatePercent float64 `json:"error_rate_percent"`
	AccuracyPercent  float64 `json:"accuracy_percent"`
}

// AggregateStats is the cross-chatbot statistics block
type AggregateStats struct {
	BestPerforming                  ChatbotStats `json:"best_performing"`
	WorstPerforming                 ChatbotStats `json:"worst_performing"`
	AverageErrorRatePercent         float64      `json:"average_error_rate_percent"`
	AverageAccuracyPercent          float64      `json:"average_accuracy_percent"`
	TotalQuestionsAcrossAllChatbots int          `json:"total_questions_across_all_chatbots"`
	TotalErrorsAcrossAllChatbots    int          `json:"total_errors_across_all_chatbots"`
	TotalCorrectAcrossAllChatbots   int          `json:"total_correct_across_all_chatbots"`
}

// AnalysisSummary holds the per-chatbot records (sorted by descending error
// rate) and the aggregate statistics
type AnalysisSummary struct {
	Chatbots   []ChatbotStats `json:"chatbots"`
	Statistics AggregateStats `json:"statistics"`
}

// AnalysisMetadata describes the dataset an analysis was computed from
type AnalysisMetadata struct {
	GeneratedAt        core.Timestamp `json:"generated_at"`
	RunID              string         `json:"run_id"`
	DatasetFingerprint string         `json:"dataset_fingerprint"`
	TotalRowsInDataset int            `json:"total_rows_in_dataset"`
	TotalChatbots      int            `json:"total_chatbots"`
	ChatbotsAnalyzed   []string       `json:"chatbots_analyzed"`
}

// AnalysisReport is the persisted output of the error analyzer. The error
// type distribution maps chatbot to cause name to count, positive counts
// only.
type AnalysisReport struct {
	Metadata              AnalysisMetadata          `json:"metadata"`
	Summary               AnalysisSummary           `json:"summary"`
	ErrorTypeDistribution map[string]map[string]int `json:"error_type_distribution"`
	ErrorTypeDescriptions map[string]string         `json:"error_type_descriptions"`
}
