package routes

import (
	"net/http"

	"github.com/insightgrid/insightgrid/internal/server/middleware"
	"github.com/insightgrid/insightgrid/internal/server/util"
	"github.com/insightgrid/insightgrid/pkg/ai"
	"github.com/insightgrid/insightgrid/pkg/insight"
	"github.com/insightgrid/insightgrid/pkg/loader"
	"github.com/insightgrid/insightgrid/pkg/logger"
	"github.com/insightgrid/insightgrid/pkg/quadrant"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// CreateAnalysisHandler resolves the requested source to text and runs
// the full pipeline, returning the diagram together with the extraction
// it was built from.
func CreateAnalysisHandler(c echo.Context) error {
	type createAnalysisBody struct {
		Source         loader.Source          `json:"source" validate:"required"`
		XAxis          quadrant.AxisSpec      `json:"x_axis"`
		YAxis          quadrant.AxisSpec      `json:"y_axis"`
		QuadrantLabels [4]string              `json:"quadrant_labels"`
		MaxPerQuadrant int                    `json:"max_per_quadrant"`
		Extraction     insight.Options        `json:"extraction"`
		Render         quadrant.RenderOptions `json:"render"`
	}

	type createAnalysisResponse struct {
		ID         string            `json:"id"`
		Source     loader.Source     `json:"source"`
		Diagram    *quadrant.Diagram `json:"diagram"`
		Extraction *insight.Result   `json:"extraction"`
		Metrics    *ai.ModelMetrics  `json:"model_metrics,omitempty"`
	}

	data := new(createAnalysisBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, util.ValidationResponse())
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, util.ValidationResponse())
	}

	ctx := c.Request().Context()
	app := c.(*middleware.AppContext).App

	usesVision := app.Vision != nil && data.Source.Type == loader.SourceTypeImage
	if usesVision {
		app.Vision.ResetMetrics()
	}

	text, err := app.Resolver.Resolve(ctx, data.Source)
	if err != nil {
		status, body := util.ErrorStatus(err)
		return c.JSON(status, body)
	}

	analysis, err := quadrant.Analyze(ctx, text, quadrant.AnalyzeParams{
		XAxis:          data.XAxis,
		YAxis:          data.YAxis,
		QuadrantLabels: data.QuadrantLabels,
		MaxPerQuadrant: data.MaxPerQuadrant,
		Extraction:     data.Extraction,
		Render:         data.Render,
	})
	if err != nil {
		status, body := util.ErrorStatus(err)
		return c.JSON(status, body)
	}

	id, err := gonanoid.New()
	if err != nil {
		logger.Error("Failed to generate analysis id", "err", err)
		return c.JSON(http.StatusInternalServerError, util.ErrorResponse{
			Error: util.ErrorBody{Kind: "internal", Message: "internal server error"},
		})
	}

	resp := createAnalysisResponse{
		ID:         id,
		Source:     data.Source,
		Diagram:    &analysis.Diagram,
		Extraction: &analysis.Extraction,
	}
	if usesVision {
		metrics := app.Vision.GetMetrics()
		resp.Metrics = &metrics
	}

	return c.JSON(http.StatusOK, resp)
}
