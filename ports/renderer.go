package ports

import (
	"context"

	"qareview/domain/review"
)

// RendererPort turns a finished analysis report into chart image bytes.
// Rendering is stateless and purely a function of the report, so the core
// pipelines never depend on a plotting library.
type RendererPort interface {
	Render(ctx context.Context, report *review.AnalysisReport) ([]byte, error)
}
