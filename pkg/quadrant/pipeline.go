package quadrant

import (
	"context"

	"github.com/insightgrid/insightgrid/pkg/insight"
	"github.com/insightgrid/insightgrid/pkg/logger"
)

// AnalyzeParams configures the full text-to-diagram pipeline. Zero values
// select the defaults: importance on the x axis, impact on the y axis,
// "Q1".."Q4" labels and a 500x500 professional canvas.
type AnalyzeParams struct {
	XAxis          AxisSpec        `json:"x_axis"`
	YAxis          AxisSpec        `json:"y_axis"`
	QuadrantLabels [4]string       `json:"quadrant_labels"`
	MaxPerQuadrant int             `json:"max_per_quadrant"`
	Extraction     insight.Options `json:"extraction"`
	Render         RenderOptions   `json:"render"`
}

// ComposeParams configures diagram assembly for insights that already
// carry coordinates. Axis dimensions are optional here because no scoring
// happens; when set they must still name a known dimension.
type ComposeParams struct {
	XAxis          AxisSpec      `json:"x_axis"`
	YAxis          AxisSpec      `json:"y_axis"`
	QuadrantLabels [4]string     `json:"quadrant_labels"`
	MaxPerQuadrant int           `json:"max_per_quadrant"`
	Render         RenderOptions `json:"render"`
}

// Analysis is the result of running the full pipeline: the diagram plus
// the extraction it was built from.
type Analysis struct {
	Diagram    Diagram        `json:"diagram"`
	Extraction insight.Result `json:"extraction"`
}

// Analyze runs extraction, scoring, classification, layout and rendering
// over the article text. Stage errors propagate unmodified, and the
// context is consulted between stages so cancellation takes effect at the
// next boundary.
func Analyze(ctx context.Context, text string, params AnalyzeParams) (*Analysis, error) {
	xAxis, yAxis := params.XAxis, params.YAxis
	if xAxis.Dimension == "" {
		xAxis.Dimension = DimensionImportance
	}
	if yAxis.Dimension == "" {
		yAxis.Dimension = DimensionImpact
	}
	if err := validateAxes(xAxis, yAxis); err != nil {
		return nil, err
	}
	opts := params.Render.withDefaults()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	result, err := insight.Extract(text, params.Extraction)
	if err != nil {
		return nil, err
	}
	logger.Debug("insight extraction complete", "insights", len(result.Insights), "language", result.Language)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	scored := make([]ScoredInsight, len(result.Insights))
	for i, in := range result.Insights {
		scored[i] = Score(in, xAxis, yAxis)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	assns, err := classifyAll(scored)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	diagram, err := assemble(scored, assns, xAxis, yAxis, params.QuadrantLabels, params.MaxPerQuadrant, opts)
	if err != nil {
		return nil, err
	}
	logger.Debug("quadrant analysis complete", "total", diagram.Summary.TotalInsights)
	return &Analysis{Diagram: *diagram, Extraction: *result}, nil
}

// Compose builds a diagram from caller-positioned insights, skipping
// extraction and scoring. Coordinates outside [-1, 1] are rejected with a
// ClassificationError.
func Compose(ctx context.Context, scored []ScoredInsight, params ComposeParams) (*Diagram, error) {
	if d := params.XAxis.Dimension; d != "" && !d.Valid() {
		return nil, &RenderError{Reason: ReasonInvalidOption, Field: "x_axis.dimension", Value: string(d)}
	}
	if d := params.YAxis.Dimension; d != "" && !d.Valid() {
		return nil, &RenderError{Reason: ReasonInvalidOption, Field: "y_axis.dimension", Value: string(d)}
	}
	opts := params.Render.withDefaults()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	assns, err := classifyAll(scored)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return assemble(scored, assns, params.XAxis, params.YAxis, params.QuadrantLabels, params.MaxPerQuadrant, opts)
}

func classifyAll(scored []ScoredInsight) ([]Assignment, error) {
	assns := make([]Assignment, len(scored))
	for i, s := range scored {
		a, err := Classify(s.X, s.Y)
		if err != nil {
			return nil, err
		}
		assns[i] = a
	}
	return assns, nil
}

// assemble runs layout and rendering and packages the diagram. opts must
// already have defaults resolved so layout and render agree on the canvas.
func assemble(scored []ScoredInsight, assns []Assignment, xAxis, yAxis AxisSpec, labels [4]string, maxPerQuadrant int, opts RenderOptions) (*Diagram, error) {
	layouts := BuildLayout(scored, assns, LayoutParams{
		Labels:         labels,
		MaxPerQuadrant: maxPerQuadrant,
		Width:          opts.Width,
		Height:         opts.Height,
	})
	svg, err := Render(layouts, xAxis, yAxis, opts)
	if err != nil {
		return nil, err
	}
	return &Diagram{
		Width:   opts.Width,
		Height:  opts.Height,
		XAxis:   xAxis,
		YAxis:   yAxis,
		Layouts: layouts,
		Summary: BuildSummary(layouts, opts.Title),
		SVG:     svg,
	}, nil
}

// validateAxes rejects unknown dimensions. Empty dimensions are the
// caller's to default before validation.
func validateAxes(xAxis, yAxis AxisSpec) error {
	if !xAxis.Dimension.Valid() {
		return &RenderError{Reason: ReasonInvalidOption, Field: "x_axis.dimension", Value: string(xAxis.Dimension)}
	}
	if !yAxis.Dimension.Valid() {
		return &RenderError{Reason: ReasonInvalidOption, Field: "y_axis.dimension", Value: string(yAxis.Dimension)}
	}
	return nil
}
