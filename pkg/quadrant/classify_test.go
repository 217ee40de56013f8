package quadrant

import (
	"errors"
	"math"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name           string
		x              float64
		y              float64
		wantQuadrant   Quadrant
		wantConfidence float64
	}{
		{
			name:           "upper right",
			x:              0.8,
			y:              0.6,
			wantQuadrant:   Q1,
			wantConfidence: 0.6,
		},
		{
			name:           "upper left",
			x:              -0.2,
			y:              0.9,
			wantQuadrant:   Q2,
			wantConfidence: 0.2,
		},
		{
			name:           "lower left",
			x:              -0.5,
			y:              -0.5,
			wantQuadrant:   Q3,
			wantConfidence: 0.5,
		},
		{
			name:           "lower right",
			x:              0.7,
			y:              -0.3,
			wantQuadrant:   Q4,
			wantConfidence: 0.3,
		},
		{
			name:           "on y axis goes right",
			x:              0,
			y:              0.5,
			wantQuadrant:   Q1,
			wantConfidence: 0,
		},
		{
			name:           "on x axis goes up",
			x:              0.5,
			y:              0,
			wantQuadrant:   Q1,
			wantConfidence: 0,
		},
		{
			name:           "origin",
			x:              0,
			y:              0,
			wantQuadrant:   Q1,
			wantConfidence: 0,
		},
		{
			name:           "negative x on x axis",
			x:              -0.3,
			y:              0,
			wantQuadrant:   Q2,
			wantConfidence: 0,
		},
		{
			name:           "on y axis below",
			x:              0,
			y:              -0.5,
			wantQuadrant:   Q4,
			wantConfidence: 0,
		},
		{
			name:           "extreme corner",
			x:              1,
			y:              1,
			wantQuadrant:   Q1,
			wantConfidence: 1,
		},
		{
			name:           "opposite extreme corner",
			x:              -1,
			y:              -1,
			wantQuadrant:   Q3,
			wantConfidence: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Classify(tt.x, tt.y)
			if err != nil {
				t.Fatalf("Classify(%v, %v) returned error: %v", tt.x, tt.y, err)
			}
			if got.Quadrant != tt.wantQuadrant {
				t.Errorf("Classify(%v, %v).Quadrant = %v, want %v", tt.x, tt.y, got.Quadrant, tt.wantQuadrant)
			}
			if got.Confidence != tt.wantConfidence {
				t.Errorf("Classify(%v, %v).Confidence = %v, want %v", tt.x, tt.y, got.Confidence, tt.wantConfidence)
			}
		})
	}
}

func TestClassifyRejectsOutOfRange(t *testing.T) {
	tests := []struct {
		name      string
		x         float64
		y         float64
		wantField string
	}{
		{name: "x too large", x: 1.5, y: 0, wantField: "x"},
		{name: "x too small", x: -1.01, y: 0, wantField: "x"},
		{name: "y too large", x: 0, y: 2, wantField: "y"},
		{name: "y too small", x: 0, y: -3, wantField: "y"},
		{name: "x NaN", x: math.NaN(), y: 0, wantField: "x"},
		{name: "y NaN", x: 0.5, y: math.NaN(), wantField: "y"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Classify(tt.x, tt.y)
			if err == nil {
				t.Fatalf("Classify(%v, %v) expected error, got nil", tt.x, tt.y)
			}
			var cErr *ClassificationError
			if !errors.As(err, &cErr) {
				t.Fatalf("Classify(%v, %v) error type = %T, want *ClassificationError", tt.x, tt.y, err)
			}
			if cErr.Reason != ReasonOutOfRange {
				t.Errorf("Reason = %q, want %q", cErr.Reason, ReasonOutOfRange)
			}
			if cErr.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", cErr.Field, tt.wantField)
			}
		})
	}
}

func TestQuadrantString(t *testing.T) {
	tests := []struct {
		quadrant Quadrant
		want     string
	}{
		{Q1, "q1"},
		{Q2, "q2"},
		{Q3, "q3"},
		{Q4, "q4"},
	}
	for _, tt := range tests {
		if got := tt.quadrant.String(); got != tt.want {
			t.Errorf("Quadrant(%d).String() = %q, want %q", tt.quadrant, got, tt.want)
		}
	}
}

func TestQuadrantMarshalJSON(t *testing.T) {
	got, err := Q2.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON returned error: %v", err)
	}
	if string(got) != `"q2"` {
		t.Errorf("MarshalJSON = %s, want %q", got, `"q2"`)
	}

	if _, err := Quadrant(9).MarshalJSON(); err == nil {
		t.Error("MarshalJSON on invalid quadrant expected error, got nil")
	}
}
