package quadrant

import (
	"fmt"
	"sort"
)

const (
	// DefaultMaxPerQuadrant caps how many insights a quadrant displays.
	DefaultMaxPerQuadrant = 15

	// DefaultWidth and DefaultHeight are the canvas dimensions in pixels.
	DefaultWidth  = 500
	DefaultHeight = 500

	// canvasPadding is the margin between the canvas edge and the plot
	// area on every side.
	canvasPadding = 60
)

// LayoutParams controls how scored insights are arranged on the canvas.
// Zero values fall back to the package defaults, empty labels to
// "Q1".."Q4".
type LayoutParams struct {
	Labels         [4]string
	MaxPerQuadrant int
	Width          int
	Height         int
}

func (p LayoutParams) withDefaults() LayoutParams {
	if p.MaxPerQuadrant <= 0 {
		p.MaxPerQuadrant = DefaultMaxPerQuadrant
	}
	if p.Width == 0 {
		p.Width = DefaultWidth
	}
	if p.Height == 0 {
		p.Height = DefaultHeight
	}
	for i := range p.Labels {
		if p.Labels[i] == "" {
			p.Labels[i] = fmt.Sprintf("Q%d", i+1)
		}
	}
	return p
}

// BuildLayout groups scored insights by their assignment, orders each
// quadrant by descending salience, keeps the top MaxPerQuadrant entries
// and precomputes every kept insight's canvas anchor. scored and assns
// must have equal length and matching indices.
func BuildLayout(scored []ScoredInsight, assns []Assignment, params LayoutParams) [4]QuadrantLayout {
	params = params.withDefaults()

	groups := [4][]PlacedInsight{}
	for i, s := range scored {
		a := assns[i]
		px, py := anchor(s.X, s.Y, params.Width, params.Height)
		groups[a.Quadrant.index()] = append(groups[a.Quadrant.index()], PlacedInsight{
			ScoredInsight: s,
			Assignment:    a,
			PX:            px,
			PY:            py,
		})
	}

	var layouts [4]QuadrantLayout
	for i := range layouts {
		group := groups[i]
		sort.SliceStable(group, func(a, b int) bool {
			return group[a].Salience > group[b].Salience
		})
		kept := group
		overflow := 0
		if len(group) > params.MaxPerQuadrant {
			kept = group[:params.MaxPerQuadrant]
			overflow = len(group) - params.MaxPerQuadrant
		}
		if kept == nil {
			kept = []PlacedInsight{}
		}
		layouts[i] = QuadrantLayout{
			Quadrant:      Quadrant(i + 1),
			Label:         params.Labels[i],
			Insights:      kept,
			OverflowCount: overflow,
		}
	}
	return layouts
}

// anchor projects a coordinate pair in [-1, 1] onto the canvas. The y axis
// is flipped because SVG grows downward. Fractional pixels truncate toward
// zero, matching integer SVG coordinates.
func anchor(x, y float64, width, height int) (int, int) {
	centerX := width / 2
	centerY := height / 2
	px := centerX + int(x*float64(width/2-canvasPadding))
	py := centerY - int(y*float64(height/2-canvasPadding))
	return px, py
}
