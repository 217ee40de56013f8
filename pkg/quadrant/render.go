package quadrant

import (
	"fmt"
	"html"
	"strconv"
	"strings"
)

// insightTextLimit is the longest insight label the renderer draws before
// truncating to 37 runes plus an ellipsis.
const insightTextLimit = 40

// RenderOptions controls the SVG output. Zero width, height and color
// scheme fall back to the package defaults, nil booleans mean enabled.
// An empty Title omits the title element entirely.
type RenderOptions struct {
	Width       int    `json:"width,omitempty"`
	Height      int    `json:"height,omitempty"`
	Title       string `json:"title,omitempty"`
	ColorScheme string `json:"color_scheme,omitempty"`
	ShowLabels  *bool  `json:"show_labels,omitempty"`
	ShowGrid    *bool  `json:"show_grid,omitempty"`
	ShowLegend  *bool  `json:"show_legend,omitempty"`
}

func (o RenderOptions) withDefaults() RenderOptions {
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.ColorScheme == "" {
		o.ColorScheme = SchemeProfessional
	}
	return o
}

// validate rejects dimensions that leave no drawable area and unknown
// color schemes. It expects defaults to be resolved already.
func (o RenderOptions) validate() error {
	if o.Width < 2*canvasPadding {
		return &RenderError{Reason: ReasonInvalidOption, Field: "width", Value: strconv.Itoa(o.Width)}
	}
	if o.Height < 2*canvasPadding {
		return &RenderError{Reason: ReasonInvalidOption, Field: "height", Value: strconv.Itoa(o.Height)}
	}
	if _, ok := colorSchemes[o.ColorScheme]; !ok {
		return &RenderError{Reason: ReasonInvalidOption, Field: "color_scheme", Value: o.ColorScheme}
	}
	return nil
}

func enabled(p *bool) bool {
	return p == nil || *p
}

// Render emits the diagram as a standalone SVG document. The output is a
// pure function of its inputs, newline separated, with all user supplied
// strings XML escaped. Options are validated before any element is
// emitted.
func Render(layouts [4]QuadrantLayout, xAxis, yAxis AxisSpec, opts RenderOptions) (string, error) {
	opts = opts.withDefaults()
	if err := opts.validate(); err != nil {
		return "", err
	}
	scheme := colorSchemes[opts.ColorScheme]

	width := opts.Width
	height := opts.Height
	centerX := width / 2
	centerY := height / 2
	drawableWidth := width - 2*canvasPadding
	drawableHeight := height - 2*canvasPadding

	parts := []string{
		fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`, width, height, width, height),
		fmt.Sprintf(`<rect width="%d" height="%d" fill="%s"/>`, width, height, scheme.Background),
		`<defs>`,
		`<style>`,
		`  .title { font-family: Arial, sans-serif; font-size: 16px; font-weight: bold; }`,
		`  .axis-label { font-family: Arial, sans-serif; font-size: 12px; fill: #666; }`,
		`  .quadrant-label { font-family: Arial, sans-serif; font-size: 14px; font-weight: bold; }`,
		`  .insight { font-family: Arial, sans-serif; font-size: 10px; }`,
		`  .grid-line { stroke: #e0e0e0; stroke-width: 1; stroke-dasharray: 2,2; }`,
		`  .axis-line { stroke: #333; stroke-width: 2; }`,
		`</style>`,
		`</defs>`,
	}

	if opts.Title != "" {
		parts = append(parts, fmt.Sprintf(`<text x="%d" y="25" text-anchor="middle" class="title" fill="%s">%s</text>`,
			centerX, scheme.Title, html.EscapeString(opts.Title)))
	}

	// Quadrant background rects, Q1 upper right through Q4 lower right.
	quadW := drawableWidth / 2
	quadH := drawableHeight / 2
	rectOrigins := [4][2]int{
		{centerX, canvasPadding},
		{canvasPadding, canvasPadding},
		{canvasPadding, centerY},
		{centerX, centerY},
	}
	for i, origin := range rectOrigins {
		opacity := "0.1"
		if len(layouts[i].Insights) > 0 {
			opacity = "0.3"
		}
		parts = append(parts, fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d" fill="%s" opacity="%s"/>`,
			origin[0], origin[1], quadW, quadH, scheme.QuadrantFills[i], opacity))
	}

	if enabled(opts.ShowGrid) {
		parts = append(parts,
			fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" class="grid-line"/>`, centerX, canvasPadding, centerX, height-canvasPadding),
			fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" class="grid-line"/>`, canvasPadding, centerY, width-canvasPadding, centerY),
		)
	}

	// Axis lines and arrowheads.
	parts = append(parts,
		fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" class="axis-line"/>`, canvasPadding, centerY, width-canvasPadding, centerY),
		fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" class="axis-line"/>`, centerX, canvasPadding, centerX, height-canvasPadding),
	)
	const arrowSize = 8
	parts = append(parts,
		fmt.Sprintf(`<polygon points="%d,%d %d,%d %d,%d" fill="%s"/>`,
			width-canvasPadding, centerY,
			width-canvasPadding-arrowSize, centerY-arrowSize/2,
			width-canvasPadding-arrowSize, centerY+arrowSize/2,
			scheme.Axes),
		fmt.Sprintf(`<polygon points="%d,%d %d,%d %d,%d" fill="%s"/>`,
			centerX, canvasPadding,
			centerX-arrowSize/2, canvasPadding+arrowSize,
			centerX+arrowSize/2, canvasPadding+arrowSize,
			scheme.Axes),
	)

	if enabled(opts.ShowLabels) {
		xLabel := defaultString(xAxis.Label, "X Axis")
		xMin := defaultString(xAxis.MinLabel, "Low")
		xMax := defaultString(xAxis.MaxLabel, "High")
		yLabel := defaultString(yAxis.Label, "Y Axis")
		yMin := defaultString(yAxis.MinLabel, "Low")
		yMax := defaultString(yAxis.MaxLabel, "High")

		parts = append(parts,
			fmt.Sprintf(`<text x="%d" y="%d" text-anchor="end" class="axis-label">%s</text>`, width-canvasPadding, centerY+20, html.EscapeString(xMax)),
			fmt.Sprintf(`<text x="%d" y="%d" text-anchor="middle" class="axis-label">%s</text>`, centerX, height-20, html.EscapeString(xLabel)),
			fmt.Sprintf(`<text x="%d" y="%d" text-anchor="start" class="axis-label">%s</text>`, canvasPadding, centerY+20, html.EscapeString(xMin)),
			fmt.Sprintf(`<text x="%d" y="%d" text-anchor="end" class="axis-label">%s</text>`, centerX-20, canvasPadding+10, html.EscapeString(yMax)),
			fmt.Sprintf(`<text x="20" y="%d" text-anchor="middle" transform="rotate(-90 20 %d)" class="axis-label">%s</text>`, centerY, centerY, html.EscapeString(yLabel)),
			fmt.Sprintf(`<text x="%d" y="%d" text-anchor="end" class="axis-label">%s</text>`, centerX-20, height-canvasPadding, html.EscapeString(yMin)),
		)

		labelPositions := [4][2]int{
			{width - canvasPadding - 40, canvasPadding + 20},
			{canvasPadding + 40, canvasPadding + 20},
			{canvasPadding + 40, height - canvasPadding - 20},
			{width - canvasPadding - 40, height - canvasPadding - 20},
		}
		for i, pos := range labelPositions {
			parts = append(parts, fmt.Sprintf(`<text x="%d" y="%d" text-anchor="middle" class="quadrant-label">%s</text>`,
				pos[0], pos[1], html.EscapeString(layouts[i].Label)))
		}
	}

	for _, layout := range layouts {
		for _, in := range layout.Insights {
			circleSize := int(4 + in.Salience*4)
			if circleSize < 3 {
				circleSize = 3
			}
			fontSize := int(10 + in.Salience*4)
			if fontSize < 8 {
				fontSize = 8
			}
			parts = append(parts,
				fmt.Sprintf(`<circle cx="%d" cy="%d" r="%d" fill="%s" stroke="%s" stroke-width="1"/>`,
					in.PX, in.PY, circleSize, scheme.Insight, scheme.InsightBorder),
				fmt.Sprintf(`<text x="%d" y="%d" class="insight" style="font-size:%dpx" fill="%s">%s</text>`,
					in.PX+circleSize+2, in.PY+3, fontSize, scheme.Text, html.EscapeString(truncateLabel(in.Text, insightTextLimit))),
			)
		}
	}

	if enabled(opts.ShowLegend) {
		legendY := height - 40
		parts = append(parts,
			`<g transform="translate(0, -10)">`,
			fmt.Sprintf(`<text x="%d" y="%d" class="axis-label">Quadrants:</text>`, canvasPadding, legendY),
		)
		for i := range layouts {
			x := canvasPadding + 80 + i*100
			parts = append(parts,
				fmt.Sprintf(`<rect x="%d" y="%d" width="12" height="12" fill="%s" opacity="0.5"/>`, x, legendY-8, scheme.QuadrantFills[i]),
				fmt.Sprintf(`<text x="%d" y="%d" class="axis-label">%s</text>`, x+16, legendY, html.EscapeString(layouts[i].Label)),
			)
		}
		parts = append(parts, `</g>`)
	}

	parts = append(parts, `</svg>`)
	return strings.Join(parts, "\n"), nil
}

// truncateLabel shortens text to limit runes, replacing the tail with an
// ellipsis. Truncation happens before escaping so entities stay intact.
func truncateLabel(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit-3]) + "..."
}

func defaultString(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
