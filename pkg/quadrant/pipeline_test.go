package quadrant

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/insightgrid/insightgrid/pkg/insight"
)

const pipelineArticle = `The city council approved an ambitious renewable energy plan on Tuesday.
Officials must implement rooftop solar incentives before the summer deadline.
Critics argue the proposal is too complex and difficult to administer fairly.
Supporters say the investment will create thousands of jobs across the region.
The mayor called the vote a critical milestone for urgent climate action.
Funding of $45 million comes from the state infrastructure program.`

func TestAnalyzeDefaults(t *testing.T) {
	got, err := Analyze(context.Background(), pipelineArticle, AnalyzeParams{})
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}

	if got.Diagram.Width != DefaultWidth || got.Diagram.Height != DefaultHeight {
		t.Errorf("canvas = %dx%d, want %dx%d", got.Diagram.Width, got.Diagram.Height, DefaultWidth, DefaultHeight)
	}
	if got.Diagram.XAxis.Dimension != DimensionImportance {
		t.Errorf("x dimension = %q, want %q", got.Diagram.XAxis.Dimension, DimensionImportance)
	}
	if got.Diagram.YAxis.Dimension != DimensionImpact {
		t.Errorf("y dimension = %q, want %q", got.Diagram.YAxis.Dimension, DimensionImpact)
	}
	if !strings.HasPrefix(got.Diagram.SVG, "<svg xmlns=") || !strings.HasSuffix(got.Diagram.SVG, "</svg>") {
		t.Error("svg output malformed")
	}
	if got.Extraction.Language != insight.LanguageEnglish {
		t.Errorf("language = %q, want %q", got.Extraction.Language, insight.LanguageEnglish)
	}
	if len(got.Extraction.Insights) == 0 {
		t.Fatal("no insights extracted")
	}

	placed := 0
	for _, layout := range got.Diagram.Layouts {
		placed += len(layout.Insights) + layout.OverflowCount
		for _, in := range layout.Insights {
			if in.Assignment.Quadrant != layout.Quadrant {
				t.Errorf("insight %q assigned %v but stored in %v", in.Text, in.Assignment.Quadrant, layout.Quadrant)
			}
			if in.X < -1 || in.X > 1 || in.Y < -1 || in.Y > 1 {
				t.Errorf("insight %q has coordinates (%v, %v) out of range", in.Text, in.X, in.Y)
			}
		}
	}
	if placed != len(got.Extraction.Insights) {
		t.Errorf("placed %d insights, extracted %d", placed, len(got.Extraction.Insights))
	}
	if got.Diagram.Summary.TotalInsights != placed {
		t.Errorf("Summary.TotalInsights = %d, want %d", got.Diagram.Summary.TotalInsights, placed)
	}
}

func TestAnalyzeDeterministic(t *testing.T) {
	params := AnalyzeParams{Render: RenderOptions{Title: "Energy Plan"}}

	first, err := Analyze(context.Background(), pipelineArticle, params)
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}
	second, err := Analyze(context.Background(), pipelineArticle, params)
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("Analyze is not deterministic for identical input")
	}
}

func TestAnalyzeExtractionErrors(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantReason insight.ExtractionReason
	}{
		{name: "empty text", text: "", wantReason: insight.ReasonEmptyContent},
		{name: "whitespace only", text: "   \n\t  ", wantReason: insight.ReasonEmptyContent},
		{name: "too short", text: "Too short to analyze.", wantReason: insight.ReasonTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Analyze(context.Background(), tt.text, AnalyzeParams{})
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			var extErr *insight.ExtractionError
			if !errors.As(err, &extErr) {
				t.Fatalf("error type = %T, want *insight.ExtractionError", err)
			}
			if extErr.Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", extErr.Reason, tt.wantReason)
			}
		})
	}
}

func TestAnalyzeRejectsUnknownDimension(t *testing.T) {
	params := AnalyzeParams{XAxis: AxisSpec{Dimension: "magic"}}

	_, err := Analyze(context.Background(), pipelineArticle, params)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	var rErr *RenderError
	if !errors.As(err, &rErr) {
		t.Fatalf("error type = %T, want *RenderError", err)
	}
	if rErr.Field != "x_axis.dimension" || rErr.Value != "magic" {
		t.Errorf("error = %v, want field x_axis.dimension value magic", rErr)
	}
}

func TestAnalyzeRejectsBadRenderOptions(t *testing.T) {
	params := AnalyzeParams{Render: RenderOptions{Width: 50}}

	_, err := Analyze(context.Background(), pipelineArticle, params)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	var rErr *RenderError
	if !errors.As(err, &rErr) {
		t.Fatalf("error type = %T, want *RenderError", err)
	}
	if rErr.Field != "width" {
		t.Errorf("Field = %q, want width", rErr.Field)
	}
}

func TestAnalyzeHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Analyze(ctx, pipelineArticle, AnalyzeParams{})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestAnalyzeCustomAxes(t *testing.T) {
	params := AnalyzeParams{
		XAxis: AxisSpec{Dimension: DimensionUrgency, Label: "Urgency"},
		YAxis: AxisSpec{Dimension: DimensionFeasibility, Label: "Feasibility"},
	}

	got, err := Analyze(context.Background(), pipelineArticle, params)
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}
	if got.Diagram.XAxis.Dimension != DimensionUrgency {
		t.Errorf("x dimension = %q, want %q", got.Diagram.XAxis.Dimension, DimensionUrgency)
	}
	if !strings.Contains(got.Diagram.SVG, ">Urgency</text>") {
		t.Error("custom x axis label missing from svg")
	}
	if !strings.Contains(got.Diagram.SVG, ">Feasibility</text>") {
		t.Error("custom y axis label missing from svg")
	}
}

func TestCompose(t *testing.T) {
	scored := []ScoredInsight{
		scoredAt("quick win", 0.9, 0.6, 0.7),
		scoredAt("money pit", 0.5, 0.4, -0.8),
	}
	params := ComposeParams{
		QuadrantLabels: [4]string{"Do", "Plan", "Delegate", "Drop"},
		Render:         RenderOptions{Title: "Custom Board"},
	}

	got, err := Compose(context.Background(), scored, params)
	if err != nil {
		t.Fatalf("Compose returned error: %v", err)
	}

	if len(got.Layouts[0].Insights) != 1 || got.Layouts[0].Insights[0].Text != "quick win" {
		t.Errorf("Q1 insights = %v", got.Layouts[0].Insights)
	}
	if len(got.Layouts[3].Insights) != 1 || got.Layouts[3].Insights[0].Text != "money pit" {
		t.Errorf("Q4 insights = %v", got.Layouts[3].Insights)
	}
	if got.Summary.TotalInsights != 2 {
		t.Errorf("TotalInsights = %d, want 2", got.Summary.TotalInsights)
	}
	if !strings.Contains(got.SVG, "Custom Board") {
		t.Error("title missing from svg")
	}
	if !strings.Contains(got.SVG, ">Do</text>") {
		t.Error("custom quadrant label missing from svg")
	}
}

func TestComposeRejectsOutOfRange(t *testing.T) {
	scored := []ScoredInsight{scoredAt("broken", 0.5, 1.5, 0)}

	_, err := Compose(context.Background(), scored, ComposeParams{})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	var cErr *ClassificationError
	if !errors.As(err, &cErr) {
		t.Fatalf("error type = %T, want *ClassificationError", err)
	}
	if cErr.Field != "x" {
		t.Errorf("Field = %q, want x", cErr.Field)
	}
}

func TestComposeRejectsUnknownDimension(t *testing.T) {
	params := ComposeParams{YAxis: AxisSpec{Dimension: "sorcery"}}

	_, err := Compose(context.Background(), nil, params)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	var rErr *RenderError
	if !errors.As(err, &rErr) {
		t.Fatalf("error type = %T, want *RenderError", err)
	}
	if rErr.Field != "y_axis.dimension" {
		t.Errorf("Field = %q, want y_axis.dimension", rErr.Field)
	}
}

func TestComposeEmptyInsights(t *testing.T) {
	got, err := Compose(context.Background(), nil, ComposeParams{})
	if err != nil {
		t.Fatalf("Compose returned error: %v", err)
	}
	if got.Summary.TotalInsights != 0 {
		t.Errorf("TotalInsights = %d, want 0", got.Summary.TotalInsights)
	}
	if got.Summary.DominantQuadrant != 0 {
		t.Errorf("DominantQuadrant = %v, want unset", got.Summary.DominantQuadrant)
	}
	if !strings.HasSuffix(got.SVG, "</svg>") {
		t.Error("svg output malformed")
	}
}

func TestComposeCapsQuadrant(t *testing.T) {
	scored := make([]ScoredInsight, 0, 20)
	for i := 0; i < 20; i++ {
		scored = append(scored, scoredAt(fmt.Sprintf("item %d", i), float64(i)/20, 0.5, 0.5))
	}
	params := ComposeParams{MaxPerQuadrant: 3}

	got, err := Compose(context.Background(), scored, params)
	if err != nil {
		t.Fatalf("Compose returned error: %v", err)
	}
	if len(got.Layouts[0].Insights) != 3 {
		t.Errorf("kept %d insights, want 3", len(got.Layouts[0].Insights))
	}
	if got.Layouts[0].OverflowCount != 17 {
		t.Errorf("OverflowCount = %d, want 17", got.Layouts[0].OverflowCount)
	}
	if got.Summary.QuadrantCounts["q1"] != 20 {
		t.Errorf("QuadrantCounts[q1] = %d, want 20", got.Summary.QuadrantCounts["q1"])
	}
	if got.Layouts[0].Insights[0].Text != "item 19" {
		t.Errorf("highest salience insight = %q, want item 19", got.Layouts[0].Insights[0].Text)
	}
}
