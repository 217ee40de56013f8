// Package quadrant turns extracted insights into a labeled 2x2 quadrant
// diagram. Scoring, classification, layout and rendering are pure functions
// over their inputs, so a given set of insights always produces the same
// diagram down to the byte.
package quadrant

import (
	"fmt"

	"github.com/insightgrid/insightgrid/pkg/insight"
)

// Quadrant identifies one of the four diagram regions. Q1 is the upper
// right, numbering continues counterclockwise.
type Quadrant uint8

const (
	Q1 Quadrant = iota + 1
	Q2
	Q3
	Q4
)

func (q Quadrant) String() string {
	if q < Q1 || q > Q4 {
		return fmt.Sprintf("q?(%d)", uint8(q))
	}
	return fmt.Sprintf("q%d", uint8(q))
}

// MarshalJSON encodes the quadrant as its lowercase name, e.g. "q1".
func (q Quadrant) MarshalJSON() ([]byte, error) {
	if q < Q1 || q > Q4 {
		return nil, fmt.Errorf("invalid quadrant %d", uint8(q))
	}
	return []byte(`"` + q.String() + `"`), nil
}

// index maps the quadrant onto 0..3 for array storage.
func (q Quadrant) index() int {
	return int(q) - 1
}

// ScoredInsight is an insight projected onto the two diagram axes.
// X and Y are in [-1, 1].
type ScoredInsight struct {
	insight.Insight
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Assignment places a scored insight in a quadrant. Confidence is the
// distance to the nearest axis, so a point on either axis has confidence 0.
type Assignment struct {
	Quadrant   Quadrant `json:"quadrant"`
	Confidence float64  `json:"confidence"`
}

// PlacedInsight is a scored insight with its assignment and canvas anchor
// in pixel coordinates.
type PlacedInsight struct {
	ScoredInsight
	Assignment Assignment `json:"assignment"`
	PX         int        `json:"px"`
	PY         int        `json:"py"`
}

// QuadrantLayout is the ordered content of one quadrant. Insights are
// sorted by descending salience and capped; OverflowCount records how many
// assigned insights did not fit.
type QuadrantLayout struct {
	Quadrant      Quadrant        `json:"quadrant"`
	Label         string          `json:"label"`
	Insights      []PlacedInsight `json:"insights"`
	OverflowCount int             `json:"overflow_count"`
}

// Summary aggregates the quadrant distribution for reporting. Counts
// include insights a quadrant could not display, so they reflect the full
// classification rather than the rendered subset.
type Summary struct {
	TotalInsights    int            `json:"total_insights"`
	QuadrantCounts   map[string]int `json:"quadrant_counts"`
	DominantQuadrant Quadrant       `json:"dominant_quadrant,omitempty"`
	AnalysisTitle    string         `json:"analysis_title,omitempty"`
	KeyFindings      []string       `json:"key_findings"`
	Recommendations  []string       `json:"recommendations"`
}

// Diagram is the complete result of a quadrant analysis. It is immutable
// once built.
type Diagram struct {
	Width   int               `json:"width"`
	Height  int               `json:"height"`
	XAxis   AxisSpec          `json:"x_axis"`
	YAxis   AxisSpec          `json:"y_axis"`
	Layouts [4]QuadrantLayout `json:"quadrants"`
	Summary Summary           `json:"summary"`
	SVG     string            `json:"svg"`
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
