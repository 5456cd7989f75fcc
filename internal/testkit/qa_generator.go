package testkit

import (
	"fmt"
	"math/rand"

	"qareview/domain/review"
)

// QADatasetConfig configures the synthetic QA dataset generator
type QADatasetConfig struct {
	Chatbots             []string `json:"chatbots"`
	CategoryCount        int      `json:"category_count"`
	QuestionsPerCategory int      `json:"questions_per_category"`
	ErrorRate            float64  `json:"error_rate"`
	Seed                 int64    `json:"seed"`
}

// DefaultQADatasetConfig returns sensible defaults for dataset generation
func DefaultQADatasetConfig() QADatasetConfig {
	return QADatasetConfig{
		Chatbots:             []string{"atlas-v1", "beacon-2", "cairn", "delta-qa"},
		CategoryCount:        30,
		QuestionsPerCategory: 4,
		ErrorRate:            0.2,
		Seed:                 42,
	}
}

// QADatasetGenerator generates a deterministic evaluation dataset: every
// question is answered by every chatbot, so the same (question, answer) pair
// appears once per chatbot and exercises deduplication.
type QADatasetGenerator struct {
	config QADatasetConfig
	rng    *rand.Rand
}

// NewQADatasetGenerator creates a new dataset generator
func NewQADatasetGenerator(config QADatasetConfig) *QADatasetGenerator {
	return &QADatasetGenerator{
		config: config,
		rng:    rand.New(rand.NewSource(config.Seed)),
	}
}

var companyPool = []string{
	"Northwind", "Contoso", "Fabrikam", "Globex", "Initech", "Umbrella",
	"Stark Industries", "Wayne Enterprises", "Acme", "Hooli", "Vandelay",
	"Wonka", "Cyberdyne", "Tyrell", "Soylent", "Massive Dynamic", "Aperture",
	"Oscorp", "Dunder Mifflin", "Gringotts", "Monarch", "Virtucon", "Zorg",
	"Nakatomi", "Weyland", "Bluth", "Sterling Cooper", "Pied Piper",
	"Gekko & Co", "Duff", "Prestige Worldwide", "Oceanic", "Paper Street",
}

var metricPool = []string{"revenue", "net income", "operating margin", "EPS", "free cash flow"}

// GenerateRows generates the full synthetic row set in deterministic order
func (g *QADatasetGenerator) GenerateRows() []review.Row {
	var rows []review.Row

	for c := 0; c < g.config.CategoryCount; c++ {
		category := companyPool[c%len(companyPool)]
		if c >= len(companyPool) {
			category = fmt.Sprintf("%s %d", category, c/len(companyPool)+1)
		}

		for q := 0; q < g.config.QuestionsPerCategory; q++ {
			metric := metricPool[q%len(metricPool)]
			quarter := q%4 + 1
			question := fmt.Sprintf("What was %s's %s in Q%d FY2024?", category, metric, quarter)
			answer := fmt.Sprintf("$%d million", 100+g.rng.Intn(900))

			for _, chatbot := range g.config.Chatbots {
				row := review.Row{
					Question:    question,
					GroundTruth: answer,
					Category:    category,
					Chatbot:     chatbot,
				}
				if g.rng.Float64() < g.config.ErrorRate {
					code := 1 + g.rng.Intn(5)
					row.ErrorCode = &code
				}
				rows = append(rows, row)
			}
		}
	}

	return rows
}
