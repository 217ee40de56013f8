package routes

import (
	"net/http"

	"github.com/insightgrid/insightgrid/internal/server/middleware"
	"github.com/insightgrid/insightgrid/internal/server/util"
	"github.com/insightgrid/insightgrid/pkg/insight"
	"github.com/insightgrid/insightgrid/pkg/loader"
	"github.com/insightgrid/insightgrid/pkg/logger"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// CreateExtractionHandler resolves the requested source to text and runs
// insight extraction alone, without building a diagram.
func CreateExtractionHandler(c echo.Context) error {
	type createExtractionBody struct {
		Source  loader.Source   `json:"source" validate:"required"`
		Options insight.Options `json:"options"`
	}

	type createExtractionResponse struct {
		ID     string          `json:"id"`
		Source loader.Source   `json:"source"`
		Result *insight.Result `json:"result"`
	}

	data := new(createExtractionBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, util.ValidationResponse())
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, util.ValidationResponse())
	}

	ctx := c.Request().Context()
	app := c.(*middleware.AppContext).App

	text, err := app.Resolver.Resolve(ctx, data.Source)
	if err != nil {
		status, body := util.ErrorStatus(err)
		return c.JSON(status, body)
	}

	result, err := insight.Extract(text, data.Options)
	if err != nil {
		status, body := util.ErrorStatus(err)
		return c.JSON(status, body)
	}

	id, err := gonanoid.New()
	if err != nil {
		logger.Error("Failed to generate extraction id", "err", err)
		return c.JSON(http.StatusInternalServerError, util.ErrorResponse{
			Error: util.ErrorBody{Kind: "internal", Message: "internal server error"},
		})
	}

	return c.JSON(http.StatusOK, createExtractionResponse{
		ID:     id,
		Source: data.Source,
		Result: result,
	})
}
