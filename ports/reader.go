package ports

import (
	"context"

	"qareview/domain/review"
)

// DatasetReaderPort loads the full evaluation dataset into memory. The whole
// input fits in one pass; there is no streaming contract.
type DatasetReaderPort interface {
	// ReadDataset parses the tabular source into rows, enforcing the schema
	// contract (question, gt_answer, category, chatbot, error)
	ReadDataset(ctx context.Context) ([]review.Row, error)

	// Source identifies the underlying file for report metadata
	Source() string
}
