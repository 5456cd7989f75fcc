package ports

import (
	"context"

	"qareview/domain/review"
)

// ReportStorePort persists finished reports as flat files. A failed write
// must never leave behind a file that could pass for a complete report.
type ReportStorePort interface {
	// Store serializes a report to pretty-printed UTF-8 JSON at path
	Store(ctx context.Context, path string, report any) error

	// StoreBytes writes raw artifact bytes (e.g. a rendered chart) at path
	StoreBytes(ctx context.Context, path string, data []byte) error

	// LoadAnalysis reads a previously written analysis report
	LoadAnalysis(ctx context.Context, path string) (*review.AnalysisReport, error)
}
