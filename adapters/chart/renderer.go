package chart

import (
	"bytes"
	"context"
	"sort"

	"qareview/domain/review"
	"qareview/internal/errors"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Renderer draws the two-panel comparison chart for an analysis report:
// overall error-rate bars per chatbot, and stacked error-cause bars.
type Renderer struct{}

// New creates a new chart renderer
func New() *Renderer {
	return &Renderer{}
}

// Render produces PNG bytes from a finished analysis report
func (r *Renderer) Render(ctx context.Context, report *review.AnalysisReport) ([]byte, error) {
	if report == nil || len(report.Summary.Chatbots) == 0 {
		return nil, errors.NoData("analysis report has no chatbot records to plot")
	}

	// Best performer first, as the original comparison orders its bars.
	bots := make([]review.ChatbotStats, len(report.Summary.Chatbots))
	copy(bots, report.Summary.Chatbots)
	sort.SliceStable(bots, func(i, j int) bool {
		return bots[i].ErrorRatePercent < bots[j].ErrorRatePercent
	})

	names := make([]string, len(bots))
	for i, b := range bots {
		names[i] = b.Chatbot
	}

	performance, err := performancePanel(bots, names)
	if err != nil {
		return nil, errors.RenderFailed(err)
	}
	distribution, err := distributionPanel(bots, names, report.ErrorTypeDistribution)
	if err != nil {
		return nil, errors.RenderFailed(err)
	}

	img := vgimg.New(16*vg.Inch, 8*vg.Inch)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: 1,
		Cols: 2,
		PadX: 8 * vg.Millimeter,
		PadY: 8 * vg.Millimeter,
	}
	plots := [][]*plot.Plot{{performance, distribution}}
	canvases := plot.Align(plots, tiles, dc)
	performance.Draw(canvases[0][0])
	distribution.Draw(canvases[0][1])

	var buf bytes.Buffer
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(&buf); err != nil {
		return nil, errors.RenderFailed(err)
	}
	return buf.Bytes(), nil
}

func performancePanel(bots []review.ChatbotStats, names []string) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Overall Performance Comparison"
	p.Y.Label.Text = "Error Rate (%)"
	p.X.Label.Text = "Chatbot"

	values := make(plotter.Values, len(bots))
	for i, b := range bots {
		values[i] = b.ErrorRatePercent
	}

	bars, err := plotter.NewBarChart(values, vg.Points(24))
	if err != nil {
		return nil, err
	}
	bars.LineStyle.Width = 0
	bars.Color = plotutil.Color(0)
	p.Add(bars)
	p.NominalX(names...)
	return p, nil
}

func distributionPanel(bots []review.ChatbotStats, names []string, dist map[string]map[string]int) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Error Type Distribution"
	p.Y.Label.Text = "Number of Errors"
	p.X.Label.Text = "Chatbot"

	var prev *plotter.BarChart
	for i, cause := range review.CauseOrder() {
		values := make(plotter.Values, len(bots))
		for j, b := range bots {
			values[j] = float64(dist[b.Chatbot][cause])
		}

		bars, err := plotter.NewBarChart(values, vg.Points(24))
		if err != nil {
			return nil, err
		}
		bars.LineStyle.Width = 0
		bars.Color = plotutil.Color(i + 1)
		if prev != nil {
			bars.StackOn(prev)
		}
		p.Add(bars)
		p.Legend.Add(cause, bars)
		prev = bars
	}

	p.Legend.Top = true
	p.NominalX(names...)
	return p, nil
}
