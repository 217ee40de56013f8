package routes

import (
	"net/http"

	"github.com/insightgrid/insightgrid/internal/server/util"
	"github.com/insightgrid/insightgrid/pkg/logger"
	"github.com/insightgrid/insightgrid/pkg/quadrant"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// CreateDiagramHandler assembles a diagram from caller-positioned
// insights, entering the pipeline after scoring. Coordinates must be in
// [-1, 1].
func CreateDiagramHandler(c echo.Context) error {
	type createDiagramBody struct {
		Insights       []quadrant.ScoredInsight `json:"insights" validate:"required,min=1"`
		XAxis          quadrant.AxisSpec        `json:"x_axis"`
		YAxis          quadrant.AxisSpec        `json:"y_axis"`
		QuadrantLabels [4]string                `json:"quadrant_labels"`
		MaxPerQuadrant int                      `json:"max_per_quadrant"`
		Render         quadrant.RenderOptions   `json:"render"`
	}

	type createDiagramResponse struct {
		ID      string            `json:"id"`
		Diagram *quadrant.Diagram `json:"diagram"`
	}

	data := new(createDiagramBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, util.ValidationResponse())
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, util.ValidationResponse())
	}

	ctx := c.Request().Context()

	diagram, err := quadrant.Compose(ctx, data.Insights, quadrant.ComposeParams{
		XAxis:          data.XAxis,
		YAxis:          data.YAxis,
		QuadrantLabels: data.QuadrantLabels,
		MaxPerQuadrant: data.MaxPerQuadrant,
		Render:         data.Render,
	})
	if err != nil {
		status, body := util.ErrorStatus(err)
		return c.JSON(status, body)
	}

	id, err := gonanoid.New()
	if err != nil {
		logger.Error("Failed to generate diagram id", "err", err)
		return c.JSON(http.StatusInternalServerError, util.ErrorResponse{
			Error: util.ErrorBody{Kind: "internal", Message: "internal server error"},
		})
	}

	return c.JSON(http.StatusOK, createDiagramResponse{
		ID:      id,
		Diagram: diagram,
	})
}
