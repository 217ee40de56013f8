package quadrant

// Dimension names a scoring strategy that projects an insight onto one
// axis of the diagram.
type Dimension string

const (
	DimensionImportance   Dimension = "importance"
	DimensionImpact       Dimension = "impact"
	DimensionSentiment    Dimension = "sentiment"
	DimensionNovelty      Dimension = "novelty"
	DimensionPracticality Dimension = "practicality"
	DimensionUrgency      Dimension = "urgency"
	DimensionFeasibility  Dimension = "feasibility"
	DimensionComplexity   Dimension = "complexity"
	DimensionCustom       Dimension = "custom"
)

// Valid reports whether the dimension is one of the known scoring
// strategies.
func (d Dimension) Valid() bool {
	switch d {
	case DimensionImportance, DimensionImpact, DimensionSentiment,
		DimensionNovelty, DimensionPracticality, DimensionUrgency,
		DimensionFeasibility, DimensionComplexity, DimensionCustom:
		return true
	}
	return false
}

// AxisSpec describes one diagram axis. The zero value of Label, MinLabel
// and MaxLabel means the renderer falls back to its defaults.
type AxisSpec struct {
	Dimension Dimension `json:"dimension"`
	Label     string    `json:"label,omitempty"`
	MinLabel  string    `json:"min_label,omitempty"`
	MaxLabel  string    `json:"max_label,omitempty"`
}

// axisRole distinguishes the two axes for the custom dimension, which
// combines salience and sentiment differently per axis.
type axisRole int

const (
	axisX axisRole = iota
	axisY
)
