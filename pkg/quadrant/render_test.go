package quadrant

import (
	"errors"
	"strings"
	"testing"
)

func boolPtr(v bool) *bool {
	return &v
}

func emptyLayouts() [4]QuadrantLayout {
	return BuildLayout(nil, nil, LayoutParams{})
}

func TestRenderDeterministic(t *testing.T) {
	scored := []ScoredInsight{
		scoredAt("first insight", 0.8, 0.5, 0.5),
		scoredAt("second insight", 0.3, -0.4, -0.9),
	}
	assns := mustClassifyAll(t, scored)
	layouts := BuildLayout(scored, assns, LayoutParams{})
	opts := RenderOptions{Title: "Determinism Check"}

	first, err := Render(layouts, AxisSpec{}, AxisSpec{}, opts)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	second, err := Render(layouts, AxisSpec{}, AxisSpec{}, opts)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if first != second {
		t.Error("Render is not deterministic for identical input")
	}
}

func TestRenderStructure(t *testing.T) {
	svg, err := Render(emptyLayouts(), AxisSpec{}, AxisSpec{}, RenderOptions{Title: "Strategy Review"})
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	if !strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg" width="500" height="500" viewBox="0 0 500 500">`) {
		t.Error("missing or malformed svg header")
	}
	if !strings.HasSuffix(svg, "</svg>") {
		t.Error("missing closing svg tag")
	}

	wantParts := []string{
		`<rect width="500" height="500" fill="#ffffff"/>`,
		`<text x="250" y="25" text-anchor="middle" class="title" fill="#1a1a1a">Strategy Review</text>`,
		`<line x1="60" y1="250" x2="440" y2="250" class="axis-line"/>`,
		`<line x1="250" y1="60" x2="250" y2="440" class="axis-line"/>`,
		`<polygon points="440,250 432,246 432,254" fill="#333333"/>`,
		`<polygon points="250,60 246,68 254,68" fill="#333333"/>`,
		`>X Axis</text>`,
		`>Y Axis</text>`,
		`>High</text>`,
		`>Low</text>`,
		`<text x="400" y="80" text-anchor="middle" class="quadrant-label">Q1</text>`,
		`<text x="100" y="80" text-anchor="middle" class="quadrant-label">Q2</text>`,
		`<text x="60" y="460" class="axis-label">Quadrants:</text>`,
		`<rect x="140" y="452" width="12" height="12" fill="#e3f2fd" opacity="0.5"/>`,
	}
	for _, part := range wantParts {
		if !strings.Contains(svg, part) {
			t.Errorf("svg missing %q", part)
		}
	}
}

func TestRenderAxisLabelsFromSpec(t *testing.T) {
	xAxis := AxisSpec{Dimension: DimensionUrgency, Label: "Urgency", MinLabel: "Later", MaxLabel: "Now"}
	yAxis := AxisSpec{Dimension: DimensionImpact, Label: "Impact", MinLabel: "Minor", MaxLabel: "Major"}

	svg, err := Render(emptyLayouts(), xAxis, yAxis, RenderOptions{})
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	for _, label := range []string{">Urgency</text>", ">Now</text>", ">Later</text>", ">Impact</text>", ">Major</text>", ">Minor</text>"} {
		if !strings.Contains(svg, label) {
			t.Errorf("svg missing axis label %q", label)
		}
	}
	if !strings.Contains(svg, `transform="rotate(-90 20 250)"`) {
		t.Error("y axis label is not rotated")
	}
}

func TestRenderQuadrantOpacity(t *testing.T) {
	scored := []ScoredInsight{scoredAt("occupied", 0.5, 0.5, 0.5)}
	assns := mustClassifyAll(t, scored)
	layouts := BuildLayout(scored, assns, LayoutParams{})

	svg, err := Render(layouts, AxisSpec{}, AxisSpec{}, RenderOptions{})
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	if !strings.Contains(svg, `<rect x="250" y="60" width="190" height="190" fill="#e3f2fd" opacity="0.3"/>`) {
		t.Error("occupied quadrant not rendered at full opacity")
	}
	if !strings.Contains(svg, `<rect x="60" y="250" width="190" height="190" fill="#fff3e0" opacity="0.1"/>`) {
		t.Error("empty quadrant not rendered at reduced opacity")
	}
}

func TestRenderInsightMarker(t *testing.T) {
	scored := []ScoredInsight{scoredAt("Expand the rooftop solar program", 1, 0.5, 0.5)}
	assns := mustClassifyAll(t, scored)
	layouts := BuildLayout(scored, assns, LayoutParams{})

	svg, err := Render(layouts, AxisSpec{}, AxisSpec{}, RenderOptions{})
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	if !strings.Contains(svg, `<circle cx="345" cy="155" r="8" fill="#1976d2" stroke="#0d47a1" stroke-width="1"/>`) {
		t.Error("insight circle missing or mispositioned")
	}
	if !strings.Contains(svg, `<text x="355" y="158" class="insight" style="font-size:14px" fill="#333333">Expand the rooftop solar program</text>`) {
		t.Error("insight label missing or mispositioned")
	}
}

func TestRenderEscapesText(t *testing.T) {
	scored := []ScoredInsight{scoredAt(`R&D <"priority">`, 0.5, 0.5, 0.5)}
	assns := mustClassifyAll(t, scored)
	layouts := BuildLayout(scored, assns, LayoutParams{})

	svg, err := Render(layouts, AxisSpec{Label: "Cost & Effort"}, AxisSpec{}, RenderOptions{Title: "Q&A Session"})
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	if !strings.Contains(svg, `R&amp;D &lt;&#34;priority&#34;&gt;`) {
		t.Error("insight text not escaped")
	}
	if strings.Contains(svg, `R&D <`) {
		t.Error("raw markup leaked into svg")
	}
	if !strings.Contains(svg, "Q&amp;A Session") {
		t.Error("title not escaped")
	}
	if !strings.Contains(svg, "Cost &amp; Effort") {
		t.Error("axis label not escaped")
	}
}

func TestRenderTruncatesLongText(t *testing.T) {
	long := strings.Repeat("a", 45)
	scored := []ScoredInsight{scoredAt(long, 0.5, 0.5, 0.5)}
	assns := mustClassifyAll(t, scored)
	layouts := BuildLayout(scored, assns, LayoutParams{})

	svg, err := Render(layouts, AxisSpec{}, AxisSpec{}, RenderOptions{})
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	if !strings.Contains(svg, strings.Repeat("a", 37)+"...") {
		t.Error("long insight text not truncated")
	}
	if strings.Contains(svg, long) {
		t.Error("untruncated text leaked into svg")
	}
}

func TestRenderOptionValidation(t *testing.T) {
	tests := []struct {
		name      string
		opts      RenderOptions
		wantField string
		wantValue string
	}{
		{name: "width too small", opts: RenderOptions{Width: 50}, wantField: "width", wantValue: "50"},
		{name: "negative width", opts: RenderOptions{Width: -1}, wantField: "width", wantValue: "-1"},
		{name: "height too small", opts: RenderOptions{Height: 100}, wantField: "height", wantValue: "100"},
		{name: "unknown scheme", opts: RenderOptions{ColorScheme: "neon"}, wantField: "color_scheme", wantValue: "neon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Render(emptyLayouts(), AxisSpec{}, AxisSpec{}, tt.opts)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			var rErr *RenderError
			if !errors.As(err, &rErr) {
				t.Fatalf("error type = %T, want *RenderError", err)
			}
			if rErr.Reason != ReasonInvalidOption {
				t.Errorf("Reason = %q, want %q", rErr.Reason, ReasonInvalidOption)
			}
			if rErr.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", rErr.Field, tt.wantField)
			}
			if rErr.Value != tt.wantValue {
				t.Errorf("Value = %q, want %q", rErr.Value, tt.wantValue)
			}
		})
	}
}

func TestRenderFlags(t *testing.T) {
	layouts := emptyLayouts()

	svg, err := Render(layouts, AxisSpec{}, AxisSpec{}, RenderOptions{
		ShowGrid:   boolPtr(false),
		ShowLegend: boolPtr(false),
		ShowLabels: boolPtr(false),
	})
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	if strings.Contains(svg, `class="grid-line"`) {
		t.Error("grid rendered despite ShowGrid=false")
	}
	if strings.Contains(svg, "Quadrants:") {
		t.Error("legend rendered despite ShowLegend=false")
	}
	if strings.Contains(svg, `class="quadrant-label"`) {
		t.Error("labels rendered despite ShowLabels=false")
	}
	if strings.Contains(svg, ">X Axis</text>") {
		t.Error("axis labels rendered despite ShowLabels=false")
	}
	if !strings.Contains(svg, `class="axis-line"`) {
		t.Error("axis lines should render regardless of flags")
	}
}

func TestRenderColorSchemes(t *testing.T) {
	tests := []struct {
		scheme         string
		wantBackground string
		wantSwatch     string
	}{
		{scheme: SchemeProfessional, wantBackground: `fill="#ffffff"`, wantSwatch: `fill="#e3f2fd"`},
		{scheme: SchemeVibrant, wantBackground: `fill="#fafafa"`, wantSwatch: `fill="#ff9800"`},
		{scheme: SchemeMonochrome, wantBackground: `fill="#ffffff"`, wantSwatch: `fill="#f5f5f5"`},
	}

	for _, tt := range tests {
		t.Run(tt.scheme, func(t *testing.T) {
			svg, err := Render(emptyLayouts(), AxisSpec{}, AxisSpec{}, RenderOptions{ColorScheme: tt.scheme})
			if err != nil {
				t.Fatalf("Render returned error: %v", err)
			}
			if !strings.Contains(svg, `<rect width="500" height="500" `+tt.wantBackground+`/>`) {
				t.Errorf("scheme %s missing background %s", tt.scheme, tt.wantBackground)
			}
			if !strings.Contains(svg, tt.wantSwatch) {
				t.Errorf("scheme %s missing quadrant fill %s", tt.scheme, tt.wantSwatch)
			}
		})
	}
}

func TestRenderOmitsEmptyTitle(t *testing.T) {
	svg, err := Render(emptyLayouts(), AxisSpec{}, AxisSpec{}, RenderOptions{})
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if strings.Contains(svg, `class="title"`) {
		t.Error("title element rendered for empty title")
	}
}

func TestRenderCustomCanvas(t *testing.T) {
	svg, err := Render(emptyLayouts(), AxisSpec{}, AxisSpec{}, RenderOptions{Width: 800, Height: 600})
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if !strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg" width="800" height="600" viewBox="0 0 800 600">`) {
		t.Error("custom canvas dimensions not applied")
	}
}
