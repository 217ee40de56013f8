package quadrant

import "fmt"

// Recommendation per dominant quadrant. Q1 is high impact and high
// effort, Q2 high impact low effort, Q3 low impact low effort, Q4 low
// impact high effort under the default axes.
var recommendations = [4]string{
	"Focus on strategic initiatives that require significant investment",
	"Prioritize quick wins that deliver high value",
	"Consider if low-effort items are worth pursuing",
	"Reevaluate high-effort, low-impact activities",
}

// BuildSummary aggregates the layout into counts, findings and a
// recommendation for the dominant quadrant. Counts include overflowed
// insights. Ties for dominance resolve toward the lowest quadrant number,
// and an empty diagram has no dominant quadrant.
func BuildSummary(layouts [4]QuadrantLayout, title string) Summary {
	s := Summary{
		QuadrantCounts:  make(map[string]int, 4),
		AnalysisTitle:   title,
		KeyFindings:     []string{},
		Recommendations: []string{},
	}

	var dominant Quadrant
	best := 0
	for i, layout := range layouts {
		count := len(layout.Insights) + layout.OverflowCount
		q := Quadrant(i + 1)
		s.QuadrantCounts[q.String()] = count
		s.TotalInsights += count
		if count > best {
			best = count
			dominant = q
		}
		if count > 0 {
			s.KeyFindings = append(s.KeyFindings, fmt.Sprintf("Quadrant Q%d contains %d insights", i+1, count))
		}
	}

	if dominant != 0 {
		s.DominantQuadrant = dominant
		s.Recommendations = append(s.Recommendations, recommendations[dominant.index()])
	}
	return s
}
