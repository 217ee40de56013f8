package server

import (
	"github.com/insightgrid/insightgrid/internal/server/middleware"
	"github.com/insightgrid/insightgrid/internal/server/routes"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo) {
	// Health check route
	e.GET("/api/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})

	apiRoutes := e.Group("/api", middleware.AuthMiddleware)

	apiRoutes.POST("/analyses", routes.CreateAnalysisHandler)
	apiRoutes.POST("/extractions", routes.CreateExtractionHandler)
	apiRoutes.POST("/diagrams", routes.CreateDiagramHandler)
}
