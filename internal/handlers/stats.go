package handlers

import (
	"net/http"

	"lindash/internal/ingest"
	"lindash/internal/stats"

	"github.com/labstack/echo/v4"
)

// StatsHandler returns the combined per-kind statistics for the full dataset
// @Summary Get combined statistics
// @Description Get aggregate statistics for all record kinds of the current export. All-zero stats are returned when nothing has been ingested yet, so the dashboard always has something to render.
// @Tags stats
// @Accept json
// @Produce json
// @Success 200 {object} models.Stats
// @Router /api/stats [get]
func StatsHandler(svc *ingest.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, stats.Aggregate(svc.Current()))
	}
}
