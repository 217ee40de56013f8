package quadrant

// colorScheme holds every color the renderer emits. Quadrant fills are
// indexed Q1..Q4.
type colorScheme struct {
	Background    string
	Grid          string
	Axes          string
	QuadrantFills [4]string
	Text          string
	Title         string
	Insight       string
	InsightBorder string
}

// Color scheme names accepted by RenderOptions.
const (
	SchemeProfessional = "professional"
	SchemeVibrant      = "vibrant"
	SchemeMonochrome   = "monochrome"
)

var colorSchemes = map[string]colorScheme{
	SchemeProfessional: {
		Background:    "#ffffff",
		Grid:          "#e0e0e0",
		Axes:          "#333333",
		QuadrantFills: [4]string{"#e3f2fd", "#f3e5f5", "#fff3e0", "#e8f5e8"},
		Text:          "#333333",
		Title:         "#1a1a1a",
		Insight:       "#1976d2",
		InsightBorder: "#0d47a1",
	},
	SchemeVibrant: {
		Background:    "#fafafa",
		Grid:          "#bdbdbd",
		Axes:          "#212121",
		QuadrantFills: [4]string{"#ff9800", "#2196f3", "#4caf50", "#f44336"},
		Text:          "#212121",
		Title:         "#000000",
		Insight:       "#7b1fa2",
		InsightBorder: "#4a148c",
	},
	SchemeMonochrome: {
		Background:    "#ffffff",
		Grid:          "#cccccc",
		Axes:          "#666666",
		QuadrantFills: [4]string{"#f5f5f5", "#e0e0e0", "#d0d0d0", "#c0c0c0"},
		Text:          "#333333",
		Title:         "#000000",
		Insight:       "#555555",
		InsightBorder: "#333333",
	},
}
